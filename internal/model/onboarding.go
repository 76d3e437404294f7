package model

// AgeRange 问卷定义的年龄段。
type AgeRange string

const (
	AgeUnder18 AgeRange = "Menos de 18 años"
	Age18to24  AgeRange = "18 - 24 años"
	Age25to34  AgeRange = "25 - 34 años"
	Age35to44  AgeRange = "35 - 44 años"
	Age45to54  AgeRange = "45 - 54 años"
	Age55to64  AgeRange = "55 - 64 años"
	Age65Plus  AgeRange = "65 años o más"
)

// AgeRanges 按展示顺序排列的全部年龄段。
var AgeRanges = []AgeRange{
	AgeUnder18, Age18to24, Age25to34, Age35to44, Age45to54, Age55to64, Age65Plus,
}

// GenderOption 问卷定义的性别选项。
type GenderOption string

const (
	GenderMale           GenderOption = "Masculino"
	GenderFemale         GenderOption = "Femenino"
	GenderNeutral        GenderOption = "Neutro"
	GenderPreferNotToSay GenderOption = "Prefiero no decirlo"
)

var GenderOptions = []GenderOption{
	GenderMale, GenderFemale, GenderNeutral, GenderPreferNotToSay,
}

// BasicProfile 前几个分段收集的基础资料。ageRange/gender 为空字符串表示未选择。
type BasicProfile struct {
	FirstName string       `json:"first_name"`
	LastName  string       `json:"last_name"`
	AgeRange  AgeRange     `json:"age_range,omitempty"`
	Gender    GenderOption `json:"gender,omitempty"`
}

// ImprovementAreaSelection 用户选中的改善领域及其优先级。
// PriorityOrder 恒等于该项在列表中的下标 +1，每次增删移动后重新推导。
type ImprovementAreaSelection struct {
	ID            int    `json:"option_id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	PriorityOrder int    `json:"priority_order"`
}

// SurveyResponse 一条问卷作答，question_id 唯一，重复作答覆盖。
type SurveyResponse struct {
	QuestionID       int `json:"question_id"`
	SelectedOptionID int `json:"selected_option_id"`
	Score            int `json:"score"`
}

// OnboardingDraft 引导流程的草稿数据，每次修改后整体写入本地存储，
// 提交成功后删除。
type OnboardingDraft struct {
	BasicProfile       BasicProfile               `json:"basic_profile"`
	ImprovementAreas   []ImprovementAreaSelection `json:"improvement_areas"`
	WellnessActivities []int                      `json:"wellness_activities"` // 预留字段，当前没有下游使用方
	SurveyResponses    []SurveyResponse           `json:"survey_responses"`
	ConsentGiven       bool                       `json:"consent_given"`

	// 提交幂等 key，首次尝试提交时生成并随草稿持久化，重试复用。
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

// ResponseFor 返回指定问题的作答，不存在时第二个返回值为 false。
func (d *OnboardingDraft) ResponseFor(questionID int) (SurveyResponse, bool) {
	for _, r := range d.SurveyResponses {
		if r.QuestionID == questionID {
			return r, true
		}
	}
	return SurveyResponse{}, false
}

// SetResponse 写入一条作答，已存在同 question_id 的作答则覆盖。
func (d *OnboardingDraft) SetResponse(resp SurveyResponse) {
	for i, r := range d.SurveyResponses {
		if r.QuestionID == resp.QuestionID {
			d.SurveyResponses[i] = resp
			return
		}
	}
	d.SurveyResponses = append(d.SurveyResponses, resp)
}
