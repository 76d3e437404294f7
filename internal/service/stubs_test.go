package service

import (
	"context"

	"lyrah/internal/model"
	"lyrah/internal/model/dto"
)

type stubAuth struct {
	user  *model.User
	token string
	err   error

	registerErr error

	loginCalls   int
	lastEmail    string
	lastUsername string
	lastPassword string

	setTokens []string
	cleared   bool
}

func (a *stubAuth) Login(ctx context.Context, email, username, password string) (*model.User, string, error) {
	a.loginCalls++
	a.lastEmail = email
	a.lastUsername = username
	a.lastPassword = password
	if a.err != nil {
		return nil, "", a.err
	}
	return a.user, a.token, nil
}

func (a *stubAuth) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	if a.registerErr != nil {
		return nil, a.registerErr
	}
	return &model.User{ID: "new-user", Username: username, Email: email, IsActive: true}, nil
}

func (a *stubAuth) SetAuthToken(token string) {
	a.setTokens = append(a.setTokens, token)
}

func (a *stubAuth) ClearAuthToken() {
	a.cleared = true
}

type stubProfiles struct {
	profile *model.Profile
	getErr  error

	createErr error
	submitErr error

	created     []dto.CreateProfileRequest
	createdKeys []string
	submitted   []dto.SubmitSurveyRequest
	submitKeys  []string
}

func (p *stubProfiles) GetProfile(ctx context.Context, userID string) (*model.Profile, error) {
	if p.getErr != nil {
		return nil, p.getErr
	}
	return p.profile, nil
}

func (p *stubProfiles) CreateProfile(ctx context.Context, req dto.CreateProfileRequest, idempotencyKey string) error {
	if p.createErr != nil {
		return p.createErr
	}
	p.created = append(p.created, req)
	p.createdKeys = append(p.createdKeys, idempotencyKey)
	return nil
}

func (p *stubProfiles) SubmitSurvey(ctx context.Context, req dto.SubmitSurveyRequest, idempotencyKey string) error {
	if p.submitErr != nil {
		return p.submitErr
	}
	p.submitted = append(p.submitted, req)
	p.submitKeys = append(p.submitKeys, idempotencyKey)
	return nil
}

type stubSession struct {
	userID         string
	profileCreated bool
}

func (s *stubSession) UserID() string {
	return s.userID
}

func (s *stubSession) MarkProfileCreated() {
	s.profileCreated = true
}
