package api

import (
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"lyrah/config"
)

// Endpoint 一个 REST 接口的动词和路径。
type Endpoint struct {
	Method string
	Path   string
}

// 登录和注册路径在不同后端版本间不一致，走配置。
func loginEndpoint() Endpoint {
	return Endpoint{Method: consts.MethodPost, Path: config.Cfg.APILoginPath}
}

func registerEndpoint() Endpoint {
	return Endpoint{Method: consts.MethodPost, Path: config.Cfg.APIRegisterPath}
}

func getProfileEndpoint(userID string) Endpoint {
	return Endpoint{Method: consts.MethodGet, Path: "/profiles/user/" + userID}
}

func createProfileEndpoint() Endpoint {
	return Endpoint{Method: consts.MethodPost, Path: "/profiles"}
}

func submitSurveyEndpoint() Endpoint {
	return Endpoint{Method: consts.MethodPost, Path: "/surveys"}
}
