package utils

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,64}$`)

func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidatePassword 注册密码最少 6 位。
func ValidatePassword(password string) bool {
	return len(password) >= 6
}

// IsEmailIdentifier 登录标识既可以是邮箱也可以是用户名，带 @ 的按邮箱处理。
func IsEmailIdentifier(identifier string) bool {
	return strings.Contains(identifier, "@")
}
