// Package store 提供本地键值持久化。整个客户端只持久化三条记录：
// 已登录用户、auth token、onboarding 草稿。
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lyrah/config"
)

// 持久化键名，与历史客户端保持一致。
const (
	KeyUser  = "loggedInUser"
	KeyToken = "authToken"
	KeyDraft = "onboardingData"
)

// ErrNotFound 键不存在。调用方据此区分「还没有存过」和真正的存储故障。
var ErrNotFound = errors.New("store: key not found")

// Store 字符串键到二进制值的读写删。
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Open 按配置选择后端。
func Open() (Store, error) {
	switch config.Cfg.StorageBackend {
	case "sqlite":
		return OpenSQLite(config.Cfg.StoragePath)
	case "redis":
		return OpenRedis()
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", config.Cfg.StorageBackend)
	}
}

// prefixedKey 给键加上实例前缀，redis 等共享后端用它隔离命名空间。
func prefixedKey(parts ...string) string {
	prefix := config.Cfg.StoragePrefix
	if prefix == "" {
		prefix = "lyrah"
	}

	var sb strings.Builder
	sb.WriteString(prefix)
	for _, part := range parts {
		if part != "" {
			sb.WriteString(":")
			sb.WriteString(part)
		}
	}

	return sb.String()
}
