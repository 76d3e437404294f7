package catalog

import (
	"testing"

	"lyrah/internal/model"
)

func TestAllSectionsOrder(t *testing.T) {
	sections := AllSections()

	if len(sections) != TotalSections {
		t.Fatalf("expected %d sections, got %d", TotalSections, len(sections))
	}

	want := []model.Section{
		model.Welcome(),
		model.Name(),
		model.Age(),
		model.Gender(),
		model.ImprovementAreas(),
		model.Survey(2),
		model.Survey(3),
		model.Survey(4),
		model.Survey(5),
		model.Survey(6),
		model.Survey(7),
		model.Survey(8),
		model.Survey(9),
		model.Consent(),
	}
	if len(want) != TotalSections {
		t.Fatalf("broken expectation table")
	}

	// 前 5 个与最后一个固定，问卷分区按 2~9 排列
	for i, section := range want[:5] {
		if sections[i] != section {
			t.Errorf("section %d: got %+v, want %+v", i, sections[i], section)
		}
	}
	for n := 2; n <= 9; n++ {
		if sections[3+n] != model.Survey(n) {
			t.Errorf("section %d: got %+v, want survey %d", 3+n, sections[3+n], n)
		}
	}
	if sections[TotalSections-1] != model.Consent() {
		t.Errorf("last section: got %+v, want consent", sections[TotalSections-1])
	}
}

func TestAllSectionsReturnsCopy(t *testing.T) {
	first := AllSections()
	first[0] = model.Consent()

	if AllSections()[0] != model.Welcome() {
		t.Fatal("mutating the returned slice must not affect the catalog")
	}
}

func TestIndexOf(t *testing.T) {
	if got := IndexOf(model.Welcome()); got != 0 {
		t.Errorf("IndexOf(welcome) = %d, want 0", got)
	}
	if got := IndexOf(model.Consent()); got != TotalSections-1 {
		t.Errorf("IndexOf(consent) = %d, want %d", got, TotalSections-1)
	}
	if got := IndexOf(model.Survey(2)); got != 5 {
		t.Errorf("IndexOf(survey 2) = %d, want 5", got)
	}
	if got := IndexOf(model.Survey(42)); got != -1 {
		t.Errorf("IndexOf(survey 42) = %d, want -1", got)
	}
}

func TestSectionNumberOf(t *testing.T) {
	cases := []struct {
		questionID int
		want       int
	}{
		{1, 1}, {4, 1},
		{5, 2}, {7, 2},
		{8, 3}, {11, 3},
		{12, 4}, {14, 4},
		{15, 5}, {18, 5},
		{19, 6}, {20, 6},
		{21, 7}, {24, 7},
		{25, 8}, {26, 8},
		{27, 9}, {31, 9},
		{32, 10}, {0, 10}, {100, 10},
	}

	for _, tc := range cases {
		if got := SectionNumberOf(tc.questionID); got != tc.want {
			t.Errorf("SectionNumberOf(%d) = %d, want %d", tc.questionID, got, tc.want)
		}
	}
}

func TestSurveyQuestionsMatchSectionCounts(t *testing.T) {
	total := 0
	for n := 2; n <= 9; n++ {
		questions := QuestionsForSurveySection(n)
		if len(questions) != QuestionCount(n) {
			t.Errorf("section %d: %d questions, count table says %d", n, len(questions), QuestionCount(n))
		}
		total += len(questions)

		for _, q := range questions {
			if q.SectionNumber != n {
				t.Errorf("question %d carries section %d, belongs to %d", q.ID, q.SectionNumber, n)
			}
			if SectionNumberOf(q.ID) != n {
				t.Errorf("question %d maps to section %d via ranges, listed under %d", q.ID, SectionNumberOf(q.ID), n)
			}
			if len(q.Options) == 0 {
				t.Errorf("question %d has no options", q.ID)
			}
		}
	}

	if total != 27 {
		t.Errorf("expected 27 survey questions, got %d", total)
	}
}

func TestQuestionIDsUnique(t *testing.T) {
	seen := map[int]bool{}
	for n := 2; n <= 9; n++ {
		for _, q := range QuestionsForSurveySection(n) {
			if seen[q.ID] {
				t.Errorf("duplicate question id %d", q.ID)
			}
			seen[q.ID] = true
		}
	}
}

func TestQuestionsForSurveySectionOutOfRange(t *testing.T) {
	for _, n := range []int{0, 1, 10, -3} {
		if got := QuestionsForSurveySection(n); len(got) != 0 {
			t.Errorf("section %d: expected no questions, got %d", n, len(got))
		}
	}
}

func TestQuestionByID(t *testing.T) {
	q, ok := QuestionByID(5)
	if !ok {
		t.Fatal("question 5 should exist")
	}
	if q.ID != 5 || q.SectionNumber != 2 {
		t.Errorf("unexpected question: %+v", q)
	}

	if _, ok := QuestionByID(999); ok {
		t.Error("question 999 should not exist")
	}
}

func TestImprovementAreaOptions(t *testing.T) {
	options := ImprovementAreaOptions()
	if len(options) != 8 {
		t.Fatalf("expected 8 improvement areas, got %d", len(options))
	}

	seen := map[int]bool{}
	for _, o := range options {
		if seen[o.ID] {
			t.Errorf("duplicate option id %d", o.ID)
		}
		seen[o.ID] = true
		if o.Name == "" {
			t.Errorf("option %d has empty name", o.ID)
		}
	}

	options[0].Name = "mutated"
	if ImprovementAreaOptions()[0].Name == "mutated" {
		t.Error("mutating the returned slice must not affect the catalog")
	}
}
