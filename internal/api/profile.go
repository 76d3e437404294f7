package api

import (
	"context"

	"go.uber.org/zap"

	"lyrah/internal/model"
	"lyrah/internal/model/dto"
	"lyrah/pkg/apierr"
)

// GetProfile 查询用户画像。画像不存在不算错误，返回 (nil, nil)；
// 判定依据是 404 状态码。
func (c *Client) GetProfile(ctx context.Context, userID string) (*model.Profile, error) {
	env, err := c.request(ctx, getProfileEndpoint(userID), nil, nil)
	if err != nil {
		if apierr.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil, nil
	}

	var profile model.Profile
	if err := decodeData(env, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

// CreateProfile 建档。idempotencyKey 随请求头传给后端，重试时复用同一个 key。
func (c *Client) CreateProfile(ctx context.Context, req dto.CreateProfileRequest, idempotencyKey string) error {
	headers := map[string]string{headerIdempotencyKey: idempotencyKey}

	if _, err := c.request(ctx, createProfileEndpoint(), req, headers); err != nil {
		return err
	}

	c.log.Info("Profile created", zap.String("user_id", req.UserID))
	return nil
}

// SubmitSurvey 提交完整问卷。
func (c *Client) SubmitSurvey(ctx context.Context, req dto.SubmitSurveyRequest, idempotencyKey string) error {
	headers := map[string]string{headerIdempotencyKey: idempotencyKey}

	if _, err := c.request(ctx, submitSurveyEndpoint(), req, headers); err != nil {
		return err
	}

	c.log.Info("Survey submitted",
		zap.String("profile_id", req.ProfileID),
		zap.Int("responses", len(req.Responses)),
	)
	return nil
}
