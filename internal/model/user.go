package model

// User 登录后服务端返回的用户信息。
type User struct {
	ID         string `json:"user_id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	IsActive   bool   `json:"is_active"`
	IsVerified bool   `json:"is_verified"`
	HasProfile bool   `json:"has_profile"` // 服务端不返回时默认 false，由 profile 查询结果回填
}

// Profile 用户画像，由 onboarding 完成后创建。
type Profile struct {
	ID                string `json:"profile_id"`
	UserID            string `json:"user_id"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Birthdate         string `json:"birthdate,omitempty"`
	Gender            string `json:"gender,omitempty"`
	ProfilePictureURL string `json:"profile_picture_url,omitempty"`
	Bio               string `json:"bio,omitempty"`

	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	Country    string `json:"country,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`

	ImprovementAreas []ProfileAreaOption `json:"improvement_areas,omitempty"`
	WellnessActivity []ProfileAreaOption `json:"wellness_activities,omitempty"`
}

// ProfileAreaOption profile 内嵌的改善领域/健康活动选项。
type ProfileAreaOption struct {
	ID          int    `json:"option_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
