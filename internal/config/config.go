package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Learner  LearnerConfig
	Engine   EngineConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	Debug       bool
	LogJSON     bool
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

type AuthConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

// LearnerConfig points at the external relation-learning process. An empty
// base URL disables it; the engine then learns from co-occurrence only.
type LearnerConfig struct {
	BaseURL      string
	FetchTimeout time.Duration
	LearnTimeout time.Duration
}

type EngineConfig struct {
	// FactsPath materializes each published snapshot to a fact file when
	// non-empty.
	FactsPath string
	// LockWait bounds how long a regeneration or merge waits for the
	// serialization lock before reporting a conflict.
	LockWait time.Duration
	// CacheTTL is the lifetime of cached ranking/recommendation responses.
	CacheTTL time.Duration
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_NAME", "talentmatch")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("APP_DEBUG", false)
	v.SetDefault("LOG_JSON", false)

	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_CONNECT_TIMEOUT", "5s")
	v.SetDefault("DB_POOL_MAX_CONNS", 10)
	v.SetDefault("DB_POOL_MIN_CONNS", 0)
	v.SetDefault("DB_POOL_MAX_CONN_LIFETIME", "1h")
	v.SetDefault("DB_POOL_MAX_CONN_IDLE_TIME", "30m")
	v.SetDefault("DB_POOL_HEALTH_CHECK_PERIOD", "1m")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_TTL", "10m")

	v.SetDefault("JWT_ACCESS_EXPIRES_IN", "15m")
	v.SetDefault("JWT_REFRESH_EXPIRES_IN", "168h")

	v.SetDefault("LEARNER_URL", "")
	v.SetDefault("LEARNER_FETCH_TIMEOUT", "10s")
	v.SetDefault("LEARNER_LEARN_TIMEOUT", "30s")

	v.SetDefault("ENGINE_FACTS_PATH", "")
	v.SetDefault("ENGINE_LOCK_WAIT", "5s")
	v.SetDefault("ENGINE_CACHE_TTL", "5m")

	var missing []string
	req := func(key string) string {
		val := strings.TrimSpace(v.GetString(key))
		if val == "" {
			missing = append(missing, key)
		}
		return val
	}

	cfg := Config{
		App: AppConfig{
			AppName:     v.GetString("APP_NAME"),
			Environment: v.GetString("APP_ENV"),
			HTTPPort:    v.GetString("HTTP_PORT"),
			Debug:       v.GetBool("APP_DEBUG"),
			LogJSON:     v.GetBool("LOG_JSON"),
		},
		Database: DatabaseConfig{
			DBHost:                req("DB_HOST"),
			DBPort:                req("DB_PORT"),
			DBName:                req("DB_NAME"),
			DBUser:                req("DB_USER"),
			DBPassword:            v.GetString("DB_PASSWORD"),
			DBSSLMode:             v.GetString("DB_SSL_MODE"),
			ConnectTimeout:        v.GetDuration("DB_CONNECT_TIMEOUT"),
			PoolMaxConns:          v.GetInt32("DB_POOL_MAX_CONNS"),
			PoolMinConns:          v.GetInt32("DB_POOL_MIN_CONNS"),
			PoolMaxConnLifetime:   v.GetDuration("DB_POOL_MAX_CONN_LIFETIME"),
			PoolMaxConnIdleTime:   v.GetDuration("DB_POOL_MAX_CONN_IDLE_TIME"),
			PoolHealthCheckPeriod: v.GetDuration("DB_POOL_HEALTH_CHECK_PERIOD"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			TTL:      v.GetDuration("REDIS_TTL"),
		},
		Auth: AuthConfig{
			AccessSecret:     req("JWT_ACCESS_SECRET"),
			RefreshSecret:    req("JWT_REFRESH_SECRET"),
			AccessExpiresIn:  v.GetDuration("JWT_ACCESS_EXPIRES_IN"),
			RefreshExpiresIn: v.GetDuration("JWT_REFRESH_EXPIRES_IN"),
		},
		Learner: LearnerConfig{
			BaseURL:      v.GetString("LEARNER_URL"),
			FetchTimeout: v.GetDuration("LEARNER_FETCH_TIMEOUT"),
			LearnTimeout: v.GetDuration("LEARNER_LEARN_TIMEOUT"),
		},
		Engine: EngineConfig{
			FactsPath: v.GetString("ENGINE_FACTS_PATH"),
			LockWait:  v.GetDuration("ENGINE_LOCK_WAIT"),
			CacheTTL:  v.GetDuration("ENGINE_CACHE_TTL"),
		},
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}
