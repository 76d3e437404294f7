// Package catalog 持有引导流程的全部静态参考数据：分段顺序、问卷题库、
// 改善领域选项，以及问题到分区的归属表。只读，无任何可变状态。
package catalog

import "lyrah/internal/model"

// TotalSections 引导流程分段总数：5 个资料分段 + 8 个问卷分区 + 同意确认。
const TotalSections = 14

var allSections = buildSections()

func buildSections() []model.Section {
	sections := []model.Section{
		model.Welcome(),
		model.Name(),
		model.Age(),
		model.Gender(),
		model.ImprovementAreas(),
	}

	// 问卷分区 2~9
	for n := 2; n <= 9; n++ {
		sections = append(sections, model.Survey(n))
	}

	return append(sections, model.Consent())
}

// AllSections 按固定顺序返回全部分段，返回副本以保证目录只读。
func AllSections() []model.Section {
	out := make([]model.Section, len(allSections))
	copy(out, allSections)
	return out
}

// IndexOf 返回分段在流程中的下标，不在流程内返回 -1。
func IndexOf(section model.Section) int {
	for i, s := range allSections {
		if s == section {
			return i
		}
	}
	return -1
}

// sectionRanges 问题 ID 到分区号的归属表。区间固定且互不相交，
// 命中不到任何区间的 ID 一律归入分区 10（同意与隐私）。
var sectionRanges = []struct {
	lo, hi  int
	section int
}{
	{1, 4, 1},   // Datos básicos
	{5, 7, 2},   // Bienestar Emocional y Mental
	{8, 11, 3},  // Bienestar Físico y Vitalidad
	{12, 14, 4}, // Conexión Espiritual y Energética
	{15, 18, 5}, // Relaciones Personales y Sociales
	{19, 20, 6}, // Crecimiento y Desarrollo Personal
	{21, 24, 7}, // Salud Financiera y Económica
	{25, 26, 8}, // Estabilidad y Satisfacción Profesional
	{27, 31, 9}, // Desarrollo Educativo y Personal
}

// SectionNumberOf 返回问题所属的分区号。
func SectionNumberOf(questionID int) int {
	for _, r := range sectionRanges {
		if questionID >= r.lo && questionID <= r.hi {
			return r.section
		}
	}
	return 10 // Consentimiento y Privacidad
}

// questionCounts 各分区的题目数。分区 1 的 4 「题」对应姓名/年龄/性别/改善领域
// 四个资料子步骤，分区 10 的 1 题对应同意确认。
var questionCounts = map[int]int{
	1:  4,
	2:  3,
	3:  4,
	4:  3,
	5:  4,
	6:  2,
	7:  4,
	8:  2,
	9:  5,
	10: 1,
}

// QuestionCount 返回分区的题目数，未知分区返回 0。
func QuestionCount(sectionNumber int) int {
	return questionCounts[sectionNumber]
}

// QuestionsForSurveySection 返回问卷分区（2~9）的题目，越界分区返回空切片而非错误。
func QuestionsForSurveySection(sectionNumber int) []Question {
	questions := surveyQuestions[sectionNumber]
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}

// QuestionByID 按 ID 查找题目。
func QuestionByID(questionID int) (Question, bool) {
	for _, questions := range surveyQuestions {
		for _, q := range questions {
			if q.ID == questionID {
				return q, true
			}
		}
	}
	return Question{}, false
}

// ImprovementAreaOption 可供选择的改善领域。
type ImprovementAreaOption struct {
	ID          int    `json:"option_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ImprovementAreaOptions 预定义的 8 个改善领域。
func ImprovementAreaOptions() []ImprovementAreaOption {
	out := make([]ImprovementAreaOption, len(improvementAreas))
	copy(out, improvementAreas)
	return out
}

var improvementAreas = []ImprovementAreaOption{
	{ID: 1, Name: "Dormir mejor y sentirme con más energía en el día", Description: "Mejora del sueño y energía diaria"},
	{ID: 2, Name: "Aprender a gestionar mejor el estrés y las preocupaciones diarias", Description: "Manejo del estrés y preocupaciones"},
	{ID: 3, Name: "Mantenerme motivado/a y enfocado/a en mis metas", Description: "Motivación y enfoque en metas"},
	{ID: 4, Name: "Organizar mejor mi tiempo para equilibrar mis responsabilidades y mi bienestar", Description: "Gestión del tiempo y equilibrio"},
	{ID: 5, Name: "Sentirme más seguro/a en mis decisiones y fortalecer mi crecimiento personal", Description: "Seguridad en decisiones y crecimiento"},
	{ID: 6, Name: "Mejorar mi relación con el dinero y lograr mayor estabilidad financiera", Description: "Relación con el dinero y estabilidad"},
	{ID: 7, Name: "Conectar mejor con los demás y fortalecer mis relaciones personales", Description: "Conexión y relaciones personales"},
	{ID: 8, Name: "Tener más claridad en mi propósito y fortalecer mi conexión espiritual", Description: "Propósito y conexión espiritual"},
}
