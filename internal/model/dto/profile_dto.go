package dto

// ========== Profile / Survey 相关 DTO ==========

// CreateProfileRequest 由草稿生成的建档请求。
type CreateProfileRequest struct {
	UserID    string `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Gender    string `json:"gender,omitempty"`
	Bio       string `json:"bio"`
}

// SurveyResponseItem 问卷提交里的一条作答。
type SurveyResponseItem struct {
	QuestionID       int `json:"question_id"`
	SelectedOptionID int `json:"selected_option_id"`
	Score            int `json:"score"`
}

// SubmitSurveyRequest 建档后提交的完整问卷。
type SubmitSurveyRequest struct {
	ProfileID    string               `json:"profile_id"`
	ConsentGiven bool                 `json:"consent_given"`
	Responses    []SurveyResponseItem `json:"responses"`
}
