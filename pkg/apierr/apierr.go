package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind 表示 API 错误分类。
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidURL
	KindInvalidResponse
	KindNetwork
	KindDecoding
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindInvalidURL:
		return "invalid_url"
	case KindInvalidResponse:
		return "invalid_response"
	case KindNetwork:
		return "network_error"
	case KindDecoding:
		return "decoding_error"
	case KindServer:
		return "server_error"
	default:
		return "unknown"
	}
}

// 每种错误分类对应一条固定的用户提示文案，server_error 透传服务端 message。
const (
	msgNetwork  = "Error de red. Por favor verifica tu conexión a internet."
	msgDecoding = "Error al procesar la respuesta del servidor."
	msgUnknown  = "Ha ocurrido un error inesperado."
)

// Error API 调用错误，携带分类、HTTP 状态码、服务端 message 以及底层原因。
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string // 服务端返回的 message，仅 KindServer 使用
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("api: %s: %v", e.Kind, e.Err)
	}
	if e.Message != "" {
		return fmt.Sprintf("api: %s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("api: %s", e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func InvalidURL(err error) *Error {
	return &Error{Kind: KindInvalidURL, Err: err}
}

func InvalidResponse() *Error {
	return &Error{Kind: KindInvalidResponse}
}

func Network(err error) *Error {
	return &Error{Kind: KindNetwork, Err: err}
}

func Decoding(err error) *Error {
	return &Error{Kind: KindDecoding, Err: err}
}

func Server(statusCode int, message string) *Error {
	return &Error{Kind: KindServer, StatusCode: statusCode, Message: message}
}

func Unknown(err error) *Error {
	return &Error{Kind: KindUnknown, Err: err}
}

// KindOf 返回 err 的分类，非本包错误归为 KindUnknown。
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnknown
}

// IsNotFound 判断 err 是否为 404 的服务端错误，profile 查询用它区分「不存在」和真正的失败。
func IsNotFound(err error) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind == KindServer && apiErr.StatusCode == http.StatusNotFound
	}
	return false
}

// UserMessage 把任意错误映射为一条可展示的文案。
func UserMessage(err error) string {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return msgUnknown
	}

	switch apiErr.Kind {
	case KindNetwork:
		return msgNetwork
	case KindDecoding, KindInvalidResponse:
		return msgDecoding
	case KindServer:
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return msgUnknown
	default:
		return msgUnknown
	}
}
