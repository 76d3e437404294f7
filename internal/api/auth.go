package api

import (
	"context"

	"go.uber.org/zap"

	"lyrah/internal/model"
	"lyrah/internal/model/dto"
)

// Login 登录，email 和 username 只会有一个非空。成功后把 token 留在客户端
// 供后续请求使用。
func (c *Client) Login(ctx context.Context, email, username, password string) (*model.User, string, error) {
	body := dto.LoginRequest{
		Email:    email,
		Username: username,
		Password: password,
	}

	env, err := c.request(ctx, loginEndpoint(), body, nil)
	if err != nil {
		return nil, "", err
	}

	var data dto.LoginData
	if err := decodeData(env, &data); err != nil {
		return nil, "", err
	}

	c.SetAuthToken(data.Token)
	c.log.Info("Login succeeded", zap.String("user_id", data.User.ID))

	return &data.User, data.Token, nil
}

// Register 注册新用户。注册接口不返回可信的会话凭证，调用方注册成功后
// 需要用同一组凭证重新登录。
func (c *Client) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	body := dto.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
		RoleID:   dto.RegularUserRoleID,
	}

	env, err := c.request(ctx, registerEndpoint(), body, nil)
	if err != nil {
		return nil, err
	}

	var user model.User
	if err := decodeData(env, &user); err != nil {
		return nil, err
	}

	c.log.Info("Registration succeeded", zap.String("username", user.Username))

	return &user, nil
}
