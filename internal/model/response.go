package model

import "encoding/json"

// Envelope 服务端所有接口统一的响应包装。
// data 的具体结构由各接口自行解码。
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// ErrorMessage 取错误文案，message 优先，其次 error 字段。
func (e *Envelope) ErrorMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}
