package config

import (
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

var Cfg Config

type Config struct {
	// 应用配置
	Environment string `env:"ENVIRONMENT" envDefault:"development"` // development, staging, production
	ServiceName string `env:"SERVICE_NAME" envDefault:"lyrah"`

	// API 配置
	APIBaseURL        string `env:"API_BASE_URL" envDefault:"http://localhost:3000/api"`
	APILoginPath      string `env:"AUTH_LOGIN_PATH" envDefault:"/auth/login"`
	APIRegisterPath   string `env:"AUTH_REGISTER_PATH" envDefault:"/users"` // 部分后端版本使用 /users/register
	APITimeoutSeconds int    `env:"API_TIMEOUT_SECONDS" envDefault:"15"`

	// 本地存储配置，backend 可选 sqlite / redis / memory
	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"sqlite"`
	StoragePath    string `env:"STORAGE_PATH" envDefault:"lyrah.db"`
	StoragePrefix  string `env:"STORAGE_PREFIX" envDefault:"lyrah"`

	// Redis 配置（仅 STORAGE_BACKEND=redis 时使用）
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Snowflake ID 生成器配置，用于请求标识
	SnowflakeMachineID  int64 `env:"SNOWFLAKE_MACHINE_ID" envDefault:"1"`
	SnowflakeDataCenter int64 `env:"SNOWFLAKE_DATACENTER_ID" envDefault:"1"`

	// 日志配置
	LoggerLevel      string `env:"LOGGER_LEVEL" envDefault:"INFO"`
	LoggerFormat     string `env:"LOGGER_FORMAT" envDefault:"text"` // json, text
	LoggerOutputPath string `env:"LOGGER_OUTPUT_PATH" envDefault:"stdout"`
}

func init() {

	if err := godotenv.Load(); err != nil {
		log.Printf("WARN: Cannot load .env file: %v, using environment variables", err)
	}

	Cfg = Config{}
	if err := env.Parse(&Cfg); err != nil {
		log.Fatalf("Failed to parse environment variables: %v", err)
	}

	validateConfig()
}

func validateConfig() {
	if Cfg.APIBaseURL == "" {
		log.Fatal("API_BASE_URL is required")
	}

	switch Cfg.StorageBackend {
	case "sqlite", "redis", "memory":
	default:
		log.Fatalf("STORAGE_BACKEND must be one of sqlite/redis/memory, got %q", Cfg.StorageBackend)
	}

	if Cfg.StorageBackend == "sqlite" && Cfg.StoragePath == "" {
		log.Fatal("STORAGE_PATH is required when STORAGE_BACKEND=sqlite")
	}
}

// APIURL 拼接 base URL 和 endpoint path。
func (c *Config) APIURL(path string) string {
	return strings.TrimRight(c.APIBaseURL, "/") + path
}

func (c *Config) APITimeout() time.Duration {
	return time.Duration(c.APITimeoutSeconds) * time.Second
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
