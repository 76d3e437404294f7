// Package service 持有客户端的两个流程控制器：认证会话和 onboarding 引导。
// 控制器假定同一时刻只有一个用户操作在执行（由界面层禁用触发控件保证），
// 不做并发保护。
package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"lyrah/internal/model"
	"lyrah/internal/model/dto"
	"lyrah/internal/store"
	"lyrah/pkg/apierr"
	"lyrah/utils"
)

// AuthStateKind 认证状态机的状态类型。
type AuthStateKind int

const (
	AuthUnauthenticated AuthStateKind = iota
	AuthAuthenticating
	AuthAuthenticated
	AuthError
)

// AuthState 认证状态。AuthAuthenticated 携带用户，AuthError 携带文案，
// 其余变体无负载。
type AuthState struct {
	Kind    AuthStateKind
	User    *model.User
	Message string
}

// Equal 按变体比较：类型一致且对应负载逐字段相等。
func (s AuthState) Equal(other AuthState) bool {
	if s.Kind != other.Kind {
		return false
	}
	switch s.Kind {
	case AuthAuthenticated:
		if s.User == nil || other.User == nil {
			return s.User == other.User
		}
		return *s.User == *other.User
	case AuthError:
		return s.Message == other.Message
	default:
		return true
	}
}

// OnboardingState 用户是否已有画像。
type OnboardingState int

const (
	OnboardingNotStarted OnboardingState = iota // 新用户，需要走引导建档
	OnboardingCompleted                         // 已有画像
)

// AuthAPI 会话控制器需要的认证接口。
type AuthAPI interface {
	Login(ctx context.Context, email, username, password string) (*model.User, string, error)
	Register(ctx context.Context, username, email, password string) (*model.User, error)
	SetAuthToken(token string)
	ClearAuthToken()
}

// ProfileAPI 画像相关接口。GetProfile 对「画像不存在」返回 (nil, nil)。
type ProfileAPI interface {
	GetProfile(ctx context.Context, userID string) (*model.Profile, error)
	CreateProfile(ctx context.Context, req dto.CreateProfileRequest, idempotencyKey string) error
	SubmitSurvey(ctx context.Context, req dto.SubmitSurveyRequest, idempotencyKey string) error
}

// ValidationError 本地校验失败，未发起任何网络请求。Error() 即用户文案。
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func newValidationError(msg string) error {
	return &ValidationError{msg: msg}
}

// IsValidation 判断 err 是否为本地校验错误。
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// SessionController 认证状态机：
// Unauthenticated -> Authenticating -> Authenticated | Error，
// Error 只能手动复位回 Unauthenticated，登出回 Unauthenticated。
type SessionController struct {
	auth     AuthAPI
	profiles ProfileAPI
	store    store.Store
	log      *zap.Logger

	state      AuthState
	onboarding OnboardingState
}

func NewSessionController(auth AuthAPI, profiles ProfileAPI, st store.Store, log *zap.Logger) *SessionController {
	return &SessionController{
		auth:       auth,
		profiles:   profiles,
		store:      st,
		log:        log,
		state:      AuthState{Kind: AuthUnauthenticated},
		onboarding: OnboardingNotStarted,
	}
}

func (s *SessionController) State() AuthState {
	return s.state
}

func (s *SessionController) Onboarding() OnboardingState {
	return s.onboarding
}

// CurrentUser 已认证时返回用户，否则返回 nil。
func (s *SessionController) CurrentUser() *model.User {
	if s.state.Kind == AuthAuthenticated {
		return s.state.User
	}
	return nil
}

// UserID 当前用户 ID，未认证返回空串。
func (s *SessionController) UserID() string {
	if user := s.CurrentUser(); user != nil {
		return user.ID
	}
	return ""
}

// Login 用邮箱或用户名登录。identifier 带 @ 按邮箱处理，否则按用户名。
// 校验失败返回 ValidationError 且状态不变；远端失败状态进入 AuthError。
func (s *SessionController) Login(ctx context.Context, identifier, password string) error {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return newValidationError("Por favor ingresa tu email o nombre de usuario")
	}
	if password == "" {
		return newValidationError("Por favor ingresa tu contraseña")
	}

	s.state = AuthState{Kind: AuthAuthenticating}

	var email, username string
	if utils.IsEmailIdentifier(identifier) {
		email = identifier
	} else {
		username = identifier
	}

	user, token, err := s.auth.Login(ctx, email, username, password)
	if err != nil {
		msg := apierr.UserMessage(err)
		s.state = AuthState{Kind: AuthError, Message: msg}
		s.log.Warn("Login failed", zap.Error(err))
		return err
	}

	s.persistSession(ctx, user, token)
	s.state = AuthState{Kind: AuthAuthenticated, User: user}
	s.log.Info("Session established", zap.String("user_id", user.ID))

	s.probeProfile(ctx, user)

	return nil
}

// Register 注册并用同一组凭证自动登录。注册返回的数据不作为会话凭证。
func (s *SessionController) Register(ctx context.Context, username, email, password string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return newValidationError("Por favor ingresa un nombre de usuario")
	}
	if !utils.ValidateEmail(email) {
		return newValidationError("Por favor ingresa un email válido")
	}
	if !utils.ValidatePassword(password) {
		return newValidationError("La contraseña debe tener al menos 6 caracteres")
	}

	s.state = AuthState{Kind: AuthAuthenticating}

	user, err := s.auth.Register(ctx, username, email, password)
	if err != nil {
		msg := apierr.UserMessage(err)
		s.state = AuthState{Kind: AuthError, Message: msg}
		s.log.Warn("Registration failed", zap.Error(err))
		return err
	}

	s.log.Info("User registered", zap.String("username", user.Username))

	return s.Login(ctx, email, password)
}

// Logout 清除持久化凭证并复位状态。
func (s *SessionController) Logout(ctx context.Context) {
	if err := s.store.Delete(ctx, store.KeyUser); err != nil {
		s.log.Warn("Failed to delete stored user", zap.Error(err))
	}
	if err := s.store.Delete(ctx, store.KeyToken); err != nil {
		s.log.Warn("Failed to delete stored token", zap.Error(err))
	}

	s.auth.ClearAuthToken()
	s.state = AuthState{Kind: AuthUnauthenticated}
	s.onboarding = OnboardingNotStarted
}

// ResetError 从 AuthError 复位回 Unauthenticated，其余状态下为 no-op。
func (s *SessionController) ResetError() {
	if s.state.Kind == AuthError {
		s.state = AuthState{Kind: AuthUnauthenticated}
	}
}

// Restore 启动时恢复持久化会话。token 或用户缺失不是错误，保持未登录；
// token 已过期时丢弃本地凭证。
func (s *SessionController) Restore(ctx context.Context) error {
	tokenBytes, err := s.store.Get(ctx, store.KeyToken)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	userBytes, err := s.store.Get(ctx, store.KeyUser)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	var user model.User
	if err := json.Unmarshal(userBytes, &user); err != nil {
		s.log.Warn("Stored user record is corrupt, discarding session", zap.Error(err))
		s.Logout(ctx)
		return nil
	}

	token := string(tokenBytes)
	if tokenExpired(token) {
		s.log.Info("Stored token expired, discarding session")
		s.Logout(ctx)
		return nil
	}

	s.auth.SetAuthToken(token)
	s.state = AuthState{Kind: AuthAuthenticated, User: &user}
	s.log.Info("Session restored", zap.String("user_id", user.ID))

	s.probeProfile(ctx, &user)

	return nil
}

// MarkProfileCreated 引导流程提交成功后的回调，hasProfile 由 false 翻到 true。
func (s *SessionController) MarkProfileCreated() {
	user := s.CurrentUser()
	if user == nil {
		return
	}

	user.HasProfile = true
	s.onboarding = OnboardingCompleted

	if data, err := json.Marshal(user); err == nil {
		if err := s.store.Set(context.Background(), store.KeyUser, data); err != nil {
			s.log.Warn("Failed to persist user after profile creation", zap.Error(err))
		}
	}
}

// probeProfile 查询画像是否已存在，回填 hasProfile 并决定引导入口状态。
// 查询失败按「没有画像」处理，不影响登录结果。
func (s *SessionController) probeProfile(ctx context.Context, user *model.User) {
	profile, err := s.profiles.GetProfile(ctx, user.ID)
	if err != nil {
		s.log.Warn("Profile lookup failed, assuming no profile", zap.Error(err))
		s.onboarding = OnboardingNotStarted
		return
	}

	if profile == nil {
		s.onboarding = OnboardingNotStarted
		return
	}

	s.onboarding = OnboardingCompleted
	if !user.HasProfile {
		user.HasProfile = true
		if data, err := json.Marshal(user); err == nil {
			if err := s.store.Set(ctx, store.KeyUser, data); err != nil {
				s.log.Warn("Failed to persist user", zap.Error(err))
			}
		}
	}
}

func (s *SessionController) persistSession(ctx context.Context, user *model.User, token string) {
	data, err := json.Marshal(user)
	if err != nil {
		s.log.Warn("Failed to encode user for persistence", zap.Error(err))
		return
	}

	if err := s.store.Set(ctx, store.KeyUser, data); err != nil {
		s.log.Warn("Failed to persist user", zap.Error(err))
	}
	if err := s.store.Set(ctx, store.KeyToken, []byte(token)); err != nil {
		s.log.Warn("Failed to persist token", zap.Error(err))
	}
}

// tokenExpired 不验签地检查 JWT 的 exp。后端 token 不是 JWT 或没有 exp 时
// 视为未过期，交给服务端判定。
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return exp.Before(time.Now())
}
