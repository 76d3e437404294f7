package dto

import "lyrah/internal/model"

// ========== Auth 相关 DTO ==========

// LoginRequest 登录请求，email 和 username 二选一。
type LoginRequest struct {
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password"`
}

// LoginData 登录接口 data 字段的规范结构：用户信息 + token。
// 历史版本存在 token 顶层返回等变体，客户端只支持这一种。
type LoginData struct {
	User  model.User `json:"user"`
	Token string     `json:"token"`
}

// RegisterRequest 注册请求。RoleID 固定为普通用户角色。
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   int    `json:"role_id"`
}

// RegularUserRoleID 普通用户角色。
const RegularUserRoleID = 2
