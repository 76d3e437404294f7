package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lyrah/internal/catalog"
	"lyrah/internal/model"
	"lyrah/internal/model/dto"
	"lyrah/internal/store"
)

// UserSession 引导流程对会话层的全部依赖：当前用户 ID 和建档成功回调。
// SessionController 实现它，由调用方在构造时显式注入。
type UserSession interface {
	UserID() string
	MarkProfileCreated()
}

// OnboardingController 引导流程控制器。以目录的分段顺序为状态转移表，
// currentSection 为活动状态；草稿的每次修改都立即写穿到本地存储。
type OnboardingController struct {
	profiles ProfileAPI
	store    store.Store
	session  UserSession
	log      *zap.Logger

	draft     model.OnboardingDraft
	current   model.Section
	submitted bool // 本次进程内已提交成功，防止重复建档
}

// NewOnboardingController 构造控制器并恢复已保存的草稿：存在草稿时定位到
// 目录顺序里第一个未完成的分段，全部完成则停在最后一个分段；没有草稿从
// Welcome 开始。
func NewOnboardingController(ctx context.Context, profiles ProfileAPI, st store.Store, session UserSession, log *zap.Logger) *OnboardingController {
	c := &OnboardingController{
		profiles: profiles,
		store:    st,
		session:  session,
		log:      log,
		current:  model.Welcome(),
	}

	c.restore(ctx)

	return c
}

func (c *OnboardingController) restore(ctx context.Context) {
	data, err := c.store.Get(ctx, store.KeyDraft)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			c.log.Warn("Failed to load onboarding draft", zap.Error(err))
		}
		return
	}

	var draft model.OnboardingDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		c.log.Warn("Onboarding draft is corrupt, starting fresh", zap.Error(err))
		return
	}

	c.draft = draft

	sections := catalog.AllSections()
	for _, section := range sections {
		if !c.IsSectionCompleted(section) {
			c.current = section
			return
		}
	}
	c.current = sections[len(sections)-1]
}

func (c *OnboardingController) CurrentSection() model.Section {
	return c.current
}

// Draft 返回草稿的快照，仅供读取。
func (c *OnboardingController) Draft() model.OnboardingDraft {
	return c.draft
}

// IsSectionCompleted 分段是否已满足完成条件。
func (c *OnboardingController) IsSectionCompleted(section model.Section) bool {
	switch section.Kind {
	case model.SectionWelcome:
		return true
	case model.SectionName:
		return c.draft.BasicProfile.FirstName != ""
	case model.SectionAge:
		return c.draft.BasicProfile.AgeRange != ""
	case model.SectionGender:
		return c.draft.BasicProfile.Gender != ""
	case model.SectionImprovementAreas:
		return len(c.draft.ImprovementAreas) > 0
	case model.SectionSurvey:
		return c.responsesInSection(section.SurveyNumber) == catalog.QuestionCount(section.SurveyNumber)
	case model.SectionConsent:
		return c.draft.ConsentGiven
	default:
		return false
	}
}

// CanAdvance 当前分段是否允许前进，界面层用它控制「继续」按钮。
func (c *OnboardingController) CanAdvance() bool {
	return c.IsSectionCompleted(c.current)
}

// HasPartialData 当前分段是否已有部分数据。对年龄/性别这类单值分段，
// 「有数据」即「已完成」，两个判定等价。同意分段没有部分态，恒为 false。
func (c *OnboardingController) HasPartialData() bool {
	switch c.current.Kind {
	case model.SectionName:
		return c.draft.BasicProfile.FirstName != "" || c.draft.BasicProfile.LastName != ""
	case model.SectionAge:
		return c.draft.BasicProfile.AgeRange != ""
	case model.SectionGender:
		return c.draft.BasicProfile.Gender != ""
	case model.SectionImprovementAreas:
		return len(c.draft.ImprovementAreas) > 0
	case model.SectionSurvey:
		return c.responsesInSection(c.current.SurveyNumber) > 0
	default:
		return false
	}
}

func (c *OnboardingController) responsesInSection(sectionNumber int) int {
	count := 0
	for _, r := range c.draft.SurveyResponses {
		if catalog.SectionNumberOf(r.QuestionID) == sectionNumber {
			count++
		}
	}
	return count
}

// Progress 流程进度，第一个分段为 0，最后一个为 1。
func (c *OnboardingController) Progress() float64 {
	index := catalog.IndexOf(c.current)
	if index < 0 {
		return 0
	}
	return float64(index) / float64(catalog.TotalSections-1)
}

func (c *OnboardingController) IsFirstSection() bool {
	return catalog.IndexOf(c.current) == 0
}

func (c *OnboardingController) IsLastSection() bool {
	return catalog.IndexOf(c.current) == catalog.TotalSections-1
}

// MoveToNextSection 保存草稿并前进一个分段；已在最后一个分段时触发提交。
func (c *OnboardingController) MoveToNextSection(ctx context.Context) error {
	c.persist(ctx)

	sections := catalog.AllSections()
	index := catalog.IndexOf(c.current)
	if index >= 0 && index < len(sections)-1 {
		c.current = sections[index+1]
		return nil
	}

	return c.CompleteOnboarding(ctx)
}

// MoveToPreviousSection 保存草稿并后退一个分段，已在第一个分段时不动。
func (c *OnboardingController) MoveToPreviousSection(ctx context.Context) {
	c.persist(ctx)

	index := catalog.IndexOf(c.current)
	if index > 0 {
		c.current = catalog.AllSections()[index-1]
	}
}

// UpdateName 更新姓名。
func (c *OnboardingController) UpdateName(ctx context.Context, firstName, lastName string) {
	c.draft.BasicProfile.FirstName = firstName
	c.draft.BasicProfile.LastName = lastName
	c.persist(ctx)
}

func (c *OnboardingController) UpdateAgeRange(ctx context.Context, ageRange model.AgeRange) {
	c.draft.BasicProfile.AgeRange = ageRange
	c.persist(ctx)
}

func (c *OnboardingController) UpdateGender(ctx context.Context, gender model.GenderOption) {
	c.draft.BasicProfile.Gender = gender
	c.persist(ctx)
}

// UpdateImprovementAreas 整体替换改善领域列表并重排优先级。
func (c *OnboardingController) UpdateImprovementAreas(ctx context.Context, areas []model.ImprovementAreaSelection) {
	c.draft.ImprovementAreas = append([]model.ImprovementAreaSelection(nil), areas...)
	c.renumberAreas()
	c.persist(ctx)
}

// AddArea 追加一个改善领域，优先级为当前长度 +1。重复选择同一领域为 no-op。
func (c *OnboardingController) AddArea(ctx context.Context, option catalog.ImprovementAreaOption) {
	for _, area := range c.draft.ImprovementAreas {
		if area.ID == option.ID {
			return
		}
	}

	c.draft.ImprovementAreas = append(c.draft.ImprovementAreas, model.ImprovementAreaSelection{
		ID:            option.ID,
		Name:          option.Name,
		Description:   option.Description,
		PriorityOrder: len(c.draft.ImprovementAreas) + 1,
	})
	c.persist(ctx)
}

// RemoveArea 按 ID 删除并重排剩余项的优先级。
func (c *OnboardingController) RemoveArea(ctx context.Context, optionID int) {
	areas := c.draft.ImprovementAreas[:0]
	for _, area := range c.draft.ImprovementAreas {
		if area.ID != optionID {
			areas = append(areas, area)
		}
	}
	c.draft.ImprovementAreas = areas
	c.renumberAreas()
	c.persist(ctx)
}

// MoveArea 把下标 from 的领域移动到下标 to，然后重排优先级。
// 下标越界时为 no-op。
func (c *OnboardingController) MoveArea(ctx context.Context, from, to int) {
	areas := c.draft.ImprovementAreas
	if from < 0 || from >= len(areas) || to < 0 || to >= len(areas) || from == to {
		return
	}

	moved := areas[from]
	areas = append(areas[:from], areas[from+1:]...)
	areas = append(areas[:to], append([]model.ImprovementAreaSelection{moved}, areas[to:]...)...)

	c.draft.ImprovementAreas = areas
	c.renumberAreas()
	c.persist(ctx)
}

// renumberAreas 重新推导优先级，保证第 i 项的 PriorityOrder == i+1。
func (c *OnboardingController) renumberAreas() {
	for i := range c.draft.ImprovementAreas {
		c.draft.ImprovementAreas[i].PriorityOrder = i + 1
	}
}

// AddOrReplaceSurveyResponse 写入一条问卷作答，同一问题重复作答覆盖旧值。
func (c *OnboardingController) AddOrReplaceSurveyResponse(ctx context.Context, questionID, optionID, score int) {
	c.draft.SetResponse(model.SurveyResponse{
		QuestionID:       questionID,
		SelectedOptionID: optionID,
		Score:            score,
	})
	c.persist(ctx)
}

func (c *OnboardingController) UpdateConsent(ctx context.Context, consent bool) {
	c.draft.ConsentGiven = consent
	c.persist(ctx)
}

// CompleteOnboarding 提交引导结果：建档、取回画像 ID、提交问卷、清掉草稿、
// 通知会话层。任一步失败时草稿和当前分段保持不变，调用方可以重试；
// 重试沿用草稿里持久化的幂等 key。
func (c *OnboardingController) CompleteOnboarding(ctx context.Context) error {
	if c.submitted {
		c.log.Info("Onboarding already submitted, ignoring")
		return nil
	}

	userID := c.session.UserID()
	if userID == "" {
		return fmt.Errorf("complete onboarding: no authenticated user")
	}

	if c.draft.IdempotencyKey == "" {
		c.draft.IdempotencyKey = uuid.NewString()
		c.persist(ctx)
	}

	gender := string(c.draft.BasicProfile.Gender)
	if gender == "" {
		gender = "No especificado"
	}

	req := dto.CreateProfileRequest{
		UserID:    userID,
		FirstName: c.draft.BasicProfile.FirstName,
		LastName:  c.draft.BasicProfile.LastName,
		Gender:    gender,
		Bio:       "",
	}

	if err := c.profiles.CreateProfile(ctx, req, c.draft.IdempotencyKey); err != nil {
		return fmt.Errorf("create profile: %w", err)
	}

	profile, err := c.profiles.GetProfile(ctx, userID)
	if err != nil {
		return fmt.Errorf("fetch created profile: %w", err)
	}
	if profile == nil {
		return fmt.Errorf("profile missing after creation")
	}

	if len(c.draft.SurveyResponses) > 0 {
		survey := dto.SubmitSurveyRequest{
			ProfileID:    profile.ID,
			ConsentGiven: c.draft.ConsentGiven,
			Responses:    make([]dto.SurveyResponseItem, 0, len(c.draft.SurveyResponses)),
		}
		for _, r := range c.draft.SurveyResponses {
			survey.Responses = append(survey.Responses, dto.SurveyResponseItem{
				QuestionID:       r.QuestionID,
				SelectedOptionID: r.SelectedOptionID,
				Score:            r.Score,
			})
		}

		if err := c.profiles.SubmitSurvey(ctx, survey, c.draft.IdempotencyKey); err != nil {
			return fmt.Errorf("submit survey: %w", err)
		}
	}

	if err := c.store.Delete(ctx, store.KeyDraft); err != nil {
		c.log.Warn("Failed to clear onboarding draft", zap.Error(err))
	}

	c.submitted = true
	c.session.MarkProfileCreated()
	c.log.Info("Onboarding completed", zap.String("user_id", userID))

	return nil
}

// persist 把草稿整体写入本地存储。写失败只记日志，不打断流程，
// 下一次修改会再次尝试。
func (c *OnboardingController) persist(ctx context.Context) {
	data, err := json.Marshal(c.draft)
	if err != nil {
		c.log.Warn("Failed to encode onboarding draft", zap.Error(err))
		return
	}

	if err := c.store.Set(ctx, store.KeyDraft, data); err != nil {
		c.log.Warn("Failed to persist onboarding draft", zap.Error(err))
	}
}
