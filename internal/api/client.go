// Package api 封装对 Lyrah 后端的全部 REST 调用：统一的 envelope 解码、
// bearer token 注入和错误分类。调用方只看到类型化的结果或 apierr.Error。
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/protocol"
	"go.uber.org/zap"

	"lyrah/config"
	"lyrah/internal/model"
	"lyrah/pkg/apierr"
	"lyrah/pkg/snowflake"
)

const headerIdempotencyKey = "Idempotency-Key"

// Client Lyrah 后端的 HTTP 客户端。同一实例在登录后持有 token，
// 供后续请求复用。
type Client struct {
	http *client.Client
	log  *zap.Logger

	mu    sync.RWMutex
	token string
}

func NewClient(log *zap.Logger) (*Client, error) {
	httpClient, err := client.NewClient(
		client.WithDialTimeout(config.Cfg.APITimeout()),
	)
	if err != nil {
		return nil, err
	}

	return &Client{http: httpClient, log: log}, nil
}

// SetAuthToken 记录登录后获得的 token，之后的请求带 Bearer 头。
func (c *Client) SetAuthToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) ClearAuthToken() {
	c.SetAuthToken("")
}

func (c *Client) authToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// request 发起一次调用并解码统一 envelope。body 为 nil 时不带请求体。
// 返回的 envelope 一定是 success=true 的；其余情况都映射为 apierr.Error。
func (c *Client) request(ctx context.Context, ep Endpoint, body interface{}, headers map[string]string) (*model.Envelope, error) {
	rawURL := config.Cfg.APIURL(ep.Path)
	if _, err := url.ParseRequestURI(rawURL); err != nil {
		return nil, apierr.InvalidURL(err)
	}

	req := protocol.AcquireRequest()
	res := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(res)
	}()

	req.SetMethod(ep.Method)
	req.SetRequestURI(rawURL)
	req.Header.Set("Accept", "application/json")

	if id, err := snowflake.NextID(); err == nil {
		req.Header.Set("X-Request-ID", strconv.FormatInt(id, 10))
	}

	if token := c.authToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, apierr.Unknown(err)
		}
		req.SetBody(payload)
		req.Header.SetContentTypeBytes([]byte("application/json"))
	}

	if err := c.http.DoTimeout(ctx, req, res, config.Cfg.APITimeout()); err != nil {
		c.log.Warn("Request failed",
			zap.String("method", ep.Method),
			zap.String("path", ep.Path),
			zap.Error(err),
		)
		return nil, apierr.Network(err)
	}

	status := res.StatusCode()
	env, err := decodeEnvelope(status, res.Body())
	if err != nil {
		c.log.Debug("Request rejected",
			zap.String("method", ep.Method),
			zap.String("path", ep.Path),
			zap.Int("status", status),
			zap.Error(err),
		)
		return nil, err
	}

	return env, nil
}

// decodeEnvelope 把原始响应解析为 success=true 的 envelope。
// 404 在解码前单独处理，profile 查询依赖状态码而非文案判断「不存在」。
func decodeEnvelope(status int, body []byte) (*model.Envelope, error) {
	if len(body) == 0 {
		if status == http.StatusNotFound {
			return nil, apierr.Server(status, "")
		}
		return nil, apierr.InvalidResponse()
	}

	var env model.Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		if status == http.StatusNotFound {
			return nil, apierr.Server(status, "")
		}
		return nil, apierr.Decoding(err)
	}

	if !env.Success {
		return nil, apierr.Server(status, env.ErrorMessage())
	}

	return &env, nil
}

// decodeData 解出 envelope 的 data 字段。
func decodeData(env *model.Envelope, out interface{}) error {
	if len(env.Data) == 0 {
		return apierr.InvalidResponse()
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return apierr.Decoding(err)
	}
	return nil
}
