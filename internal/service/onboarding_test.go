package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go.uber.org/zap"

	"lyrah/internal/catalog"
	"lyrah/internal/model"
	"lyrah/internal/store"
)

func newOnboardingFixture(profiles *stubProfiles, st store.Store) (*OnboardingController, *stubSession) {
	session := &stubSession{userID: "u1"}
	c := NewOnboardingController(context.Background(), profiles, st, session, zap.NewNop())
	return c, session
}

// completeSurveySection 用每题的第一个选项作答整个分区。
func completeSurveySection(ctx context.Context, c *OnboardingController, n int) {
	for _, q := range catalog.QuestionsForSurveySection(n) {
		opt := q.Options[0]
		c.AddOrReplaceSurveyResponse(ctx, q.ID, opt.ID, opt.Score)
	}
}

func TestFreshFlowStartsAtWelcome(t *testing.T) {
	c, _ := newOnboardingFixture(&stubProfiles{}, store.NewMemory())

	if c.CurrentSection() != model.Welcome() {
		t.Errorf("current = %+v, want welcome", c.CurrentSection())
	}
	if !c.IsFirstSection() {
		t.Error("welcome is the first section")
	}
	if got := c.Progress(); got != 0 {
		t.Errorf("progress = %v, want 0", got)
	}
}

func TestSectionCompletionPredicates(t *testing.T) {
	ctx := context.Background()
	c, _ := newOnboardingFixture(&stubProfiles{}, store.NewMemory())

	// 空草稿：除 welcome 外全部未完成
	if !c.IsSectionCompleted(model.Welcome()) {
		t.Error("welcome is always completed")
	}
	for _, section := range catalog.AllSections()[1:] {
		if c.IsSectionCompleted(section) {
			t.Errorf("empty draft: %+v must not be completed", section)
		}
	}

	c.UpdateName(ctx, "Ana", "")
	if !c.IsSectionCompleted(model.Name()) {
		t.Error("first name alone completes the name section")
	}

	c.UpdateAgeRange(ctx, model.Age25to34)
	if !c.IsSectionCompleted(model.Age()) {
		t.Error("age section should be completed")
	}

	c.UpdateGender(ctx, model.GenderFemale)
	if !c.IsSectionCompleted(model.Gender()) {
		t.Error("gender section should be completed")
	}

	c.AddArea(ctx, catalog.ImprovementAreaOptions()[0])
	if !c.IsSectionCompleted(model.ImprovementAreas()) {
		t.Error("improvement areas section should be completed")
	}

	// 问卷分区：答满才算完成
	questions := catalog.QuestionsForSurveySection(2)
	for i, q := range questions {
		if c.IsSectionCompleted(model.Survey(2)) {
			t.Fatalf("section 2 completed after %d of %d answers", i, len(questions))
		}
		c.AddOrReplaceSurveyResponse(ctx, q.ID, q.Options[0].ID, q.Options[0].Score)
	}
	if !c.IsSectionCompleted(model.Survey(2)) {
		t.Error("section 2 should be completed after all answers")
	}

	c.UpdateConsent(ctx, true)
	if !c.IsSectionCompleted(model.Consent()) {
		t.Error("consent section should be completed")
	}
}

func TestRepeatAnswerDoesNotDuplicate(t *testing.T) {
	ctx := context.Background()
	c, _ := newOnboardingFixture(&stubProfiles{}, store.NewMemory())

	c.AddOrReplaceSurveyResponse(ctx, 5, 501, 0)
	c.AddOrReplaceSurveyResponse(ctx, 5, 503, 10)

	draft := c.Draft()
	if len(draft.SurveyResponses) != 1 {
		t.Fatalf("responses = %d, want 1", len(draft.SurveyResponses))
	}
	if r, _ := draft.ResponseFor(5); r.SelectedOptionID != 503 || r.Score != 10 {
		t.Errorf("response = %+v, second answer must overwrite", r)
	}
}

func TestHasPartialData(t *testing.T) {
	ctx := context.Background()
	c, _ := newOnboardingFixture(&stubProfiles{}, store.NewMemory())

	// 移动到 Name 分段
	if err := c.MoveToNextSection(ctx); err != nil {
		t.Fatal(err)
	}
	if c.HasPartialData() {
		t.Error("empty name section has no partial data")
	}

	// 只填姓氏也算有数据，但不算完成
	c.UpdateName(ctx, "", "López")
	if !c.HasPartialData() {
		t.Error("last name alone is partial data")
	}
	if c.IsSectionCompleted(model.Name()) {
		t.Error("last name alone does not complete the section")
	}
	if c.CanAdvance() {
		t.Error("cannot advance with only partial data")
	}
}

func TestMoveGatingAndProgress(t *testing.T) {
	ctx := context.Background()
	c, _ := newOnboardingFixture(&stubProfiles{}, store.NewMemory())

	// welcome 永远可以前进
	if !c.CanAdvance() {
		t.Fatal("welcome must allow advancing")
	}
	if err := c.MoveToNextSection(ctx); err != nil {
		t.Fatal(err)
	}
	if c.CurrentSection() != model.Name() {
		t.Fatalf("current = %+v, want name", c.CurrentSection())
	}

	// 空 Name 分段不允许前进（界面用 CanAdvance 拦截）
	if c.CanAdvance() {
		t.Error("empty name section must block advancing")
	}

	prev := c.Progress()
	c.UpdateName(ctx, "Ana", "López")
	if err := c.MoveToNextSection(ctx); err != nil {
		t.Fatal(err)
	}
	if c.Progress() <= prev {
		t.Errorf("progress must increase: %v -> %v", prev, c.Progress())
	}

	c.MoveToPreviousSection(ctx)
	if c.CurrentSection() != model.Name() {
		t.Errorf("current = %+v, want name", c.CurrentSection())
	}

	// 在第一个分段后退是 no-op
	c.MoveToPreviousSection(ctx)
	c.MoveToPreviousSection(ctx)
	if c.CurrentSection() != model.Welcome() {
		t.Errorf("current = %+v, want welcome", c.CurrentSection())
	}
}

func TestImprovementAreaPriorityInvariant(t *testing.T) {
	ctx := context.Background()
	c, _ := newOnboardingFixture(&stubProfiles{}, store.NewMemory())

	options := catalog.ImprovementAreaOptions()
	c.AddArea(ctx, options[0])
	c.AddArea(ctx, options[1])
	c.AddArea(ctx, options[2])
	c.AddArea(ctx, options[0]) // 重复选择被忽略

	assertPriorities := func(wantIDs []int) {
		t.Helper()
		areas := c.Draft().ImprovementAreas
		if len(areas) != len(wantIDs) {
			t.Fatalf("areas = %d, want %d", len(areas), len(wantIDs))
		}
		for i, area := range areas {
			if area.ID != wantIDs[i] {
				t.Errorf("areas[%d].ID = %d, want %d", i, area.ID, wantIDs[i])
			}
			if area.PriorityOrder != i+1 {
				t.Errorf("areas[%d].PriorityOrder = %d, want %d", i, area.PriorityOrder, i+1)
			}
		}
	}

	assertPriorities([]int{1, 2, 3})

	c.MoveArea(ctx, 2, 0)
	assertPriorities([]int{3, 1, 2})

	c.RemoveArea(ctx, 1)
	assertPriorities([]int{3, 2})

	// 越界移动是 no-op
	c.MoveArea(ctx, 0, 5)
	c.MoveArea(ctx, -1, 0)
	assertPriorities([]int{3, 2})
}

func TestDraftPersistsAndRestores(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()

	c, _ := newOnboardingFixture(&stubProfiles{}, st)
	c.UpdateName(ctx, "Ana", "López")
	c.UpdateAgeRange(ctx, model.Age25to34)
	c.UpdateGender(ctx, model.GenderFemale)
	c.AddArea(ctx, catalog.ImprovementAreaOptions()[0])
	completeSurveySection(ctx, c, 2)

	// 模拟重启：同一存储上重建控制器
	restored, _ := newOnboardingFixture(&stubProfiles{}, st)

	if got, want := restored.Draft(), c.Draft(); len(got.SurveyResponses) != len(want.SurveyResponses) ||
		got.BasicProfile != want.BasicProfile ||
		len(got.ImprovementAreas) != len(want.ImprovementAreas) {
		t.Errorf("restored draft differs:\n got %+v\nwant %+v", got, want)
	}

	// 第一个未完成的分段是问卷分区 3
	if restored.CurrentSection() != model.Survey(3) {
		t.Errorf("restored current = %+v, want survey 3", restored.CurrentSection())
	}
}

func TestRestoreFullyCompletedDraftStaysAtLastSection(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()

	c, _ := newOnboardingFixture(&stubProfiles{}, st)
	c.UpdateName(ctx, "Ana", "López")
	c.UpdateAgeRange(ctx, model.Age25to34)
	c.UpdateGender(ctx, model.GenderFemale)
	c.AddArea(ctx, catalog.ImprovementAreaOptions()[0])
	for n := 2; n <= 9; n++ {
		completeSurveySection(ctx, c, n)
	}
	c.UpdateConsent(ctx, true)

	restored, _ := newOnboardingFixture(&stubProfiles{}, st)
	if restored.CurrentSection() != model.Consent() {
		t.Errorf("restored current = %+v, want consent", restored.CurrentSection())
	}
	if !restored.IsLastSection() {
		t.Error("consent is the last section")
	}
	if got := restored.Progress(); got != 1 {
		t.Errorf("progress = %v, want 1", got)
	}
}

func TestRestoreCorruptDraftStartsFresh(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	if err := st.Set(ctx, store.KeyDraft, []byte("{not json")); err != nil {
		t.Fatal(err)
	}

	c, _ := newOnboardingFixture(&stubProfiles{}, st)
	if c.CurrentSection() != model.Welcome() {
		t.Errorf("current = %+v, want welcome", c.CurrentSection())
	}
}

func fillCompleteDraft(ctx context.Context, c *OnboardingController) {
	c.UpdateName(ctx, "Ana", "López")
	c.UpdateAgeRange(ctx, model.Age25to34)
	c.UpdateGender(ctx, model.GenderFemale)
	c.AddArea(ctx, catalog.ImprovementAreaOptions()[0])
	for n := 2; n <= 9; n++ {
		completeSurveySection(ctx, c, n)
	}
	c.UpdateConsent(ctx, true)
}

func TestCompleteOnboarding(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	profiles := &stubProfiles{profile: &model.Profile{ID: "p1", UserID: "u1"}}

	c, session := newOnboardingFixture(profiles, st)
	fillCompleteDraft(ctx, c)

	if err := c.CompleteOnboarding(ctx); err != nil {
		t.Fatalf("CompleteOnboarding: %v", err)
	}

	if len(profiles.created) != 1 {
		t.Fatalf("CreateProfile calls = %d, want 1", len(profiles.created))
	}
	created := profiles.created[0]
	if created.UserID != "u1" || created.FirstName != "Ana" || created.LastName != "López" {
		t.Errorf("create request = %+v", created)
	}
	if created.Gender != string(model.GenderFemale) {
		t.Errorf("gender = %q", created.Gender)
	}

	if len(profiles.submitted) != 1 {
		t.Fatalf("SubmitSurvey calls = %d, want 1", len(profiles.submitted))
	}
	survey := profiles.submitted[0]
	if survey.ProfileID != "p1" || !survey.ConsentGiven {
		t.Errorf("survey request = %+v", survey)
	}
	if len(survey.Responses) != 27 {
		t.Errorf("responses = %d, want 27", len(survey.Responses))
	}

	// 建档和问卷提交带同一个幂等 key
	if profiles.createdKeys[0] == "" || profiles.createdKeys[0] != profiles.submitKeys[0] {
		t.Errorf("idempotency keys differ: %q vs %q", profiles.createdKeys[0], profiles.submitKeys[0])
	}

	if !session.profileCreated {
		t.Error("session must be notified")
	}
	if _, err := st.Get(ctx, store.KeyDraft); !errors.Is(err, store.ErrNotFound) {
		t.Error("draft must be cleared after submission")
	}

	// 重复提交是 no-op
	if err := c.CompleteOnboarding(ctx); err != nil {
		t.Fatalf("repeat CompleteOnboarding: %v", err)
	}
	if len(profiles.created) != 1 {
		t.Errorf("repeat submission must not create a second profile, calls = %d", len(profiles.created))
	}
}

func TestCompleteOnboardingWithoutGenderDefaults(t *testing.T) {
	ctx := context.Background()
	profiles := &stubProfiles{profile: &model.Profile{ID: "p1"}}

	c, _ := newOnboardingFixture(profiles, store.NewMemory())
	c.UpdateName(ctx, "Ana", "")

	if err := c.CompleteOnboarding(ctx); err != nil {
		t.Fatalf("CompleteOnboarding: %v", err)
	}
	if got := profiles.created[0].Gender; got != "No especificado" {
		t.Errorf("gender = %q, want default", got)
	}
	// 没有作答时不提交问卷
	if len(profiles.submitted) != 0 {
		t.Errorf("SubmitSurvey calls = %d, want 0", len(profiles.submitted))
	}
}

func TestCompleteOnboardingRequiresUser(t *testing.T) {
	c, session := newOnboardingFixture(&stubProfiles{}, store.NewMemory())
	session.userID = ""

	if err := c.CompleteOnboarding(context.Background()); err == nil {
		t.Fatal("expected error without an authenticated user")
	}
}

func TestCompleteOnboardingFailureKeepsDraftAndKey(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	profiles := &stubProfiles{createErr: errors.New("backend down")}

	c, session := newOnboardingFixture(profiles, st)
	fillCompleteDraft(ctx, c)

	if err := c.CompleteOnboarding(ctx); err == nil {
		t.Fatal("expected error")
	}
	if session.profileCreated {
		t.Error("session must not be notified on failure")
	}

	// 草稿仍在，幂等 key 已持久化，重试复用
	data, err := st.Get(ctx, store.KeyDraft)
	if err != nil {
		t.Fatalf("draft must survive a failed submission: %v", err)
	}
	var draft model.OnboardingDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		t.Fatal(err)
	}
	if draft.IdempotencyKey == "" {
		t.Fatal("idempotency key must be persisted before the first attempt")
	}

	profiles.createErr = nil
	profiles.profile = &model.Profile{ID: "p1"}
	if err := c.CompleteOnboarding(ctx); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if profiles.createdKeys[0] != draft.IdempotencyKey {
		t.Errorf("retry must reuse the persisted key: %q vs %q", profiles.createdKeys[0], draft.IdempotencyKey)
	}
}

func TestMoveToNextSectionAtLastTriggersSubmission(t *testing.T) {
	ctx := context.Background()
	profiles := &stubProfiles{profile: &model.Profile{ID: "p1"}}

	c, _ := newOnboardingFixture(profiles, store.NewMemory())
	fillCompleteDraft(ctx, c)

	// 跳到最后一个分段再前进
	for !c.IsLastSection() {
		if err := c.MoveToNextSection(ctx); err != nil {
			t.Fatal(err)
		}
	}
	if err := c.MoveToNextSection(ctx); err != nil {
		t.Fatalf("final advance: %v", err)
	}

	if len(profiles.created) != 1 {
		t.Errorf("CreateProfile calls = %d, want 1", len(profiles.created))
	}
	if !c.IsLastSection() {
		t.Error("current section stays at the last entry after submission")
	}
}
