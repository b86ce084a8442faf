package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "development"
	AppEnvProd = "production"
)

type Config struct {
	App            AppConfig
	HTTP           HTTPConfig
	Data           DataConfig
	DB             DBConfig
	Redis          RedisConfig
	Recommendation RecommendationConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SPORTSHOP_APP_ENV" default:"development"`
	Port         string `envconfig:"SPORTSHOP_APP_PORT" default:"3001"`
	LogLevel     string `envconfig:"SPORTSHOP_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SPORTSHOP_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type HTTPConfig struct {
	AllowedOrigins []string `envconfig:"SPORTSHOP_ALLOWED_ORIGINS" default:"http://localhost:5173"`
}

type DataConfig struct {
	Dir string `envconfig:"SPORTSHOP_DATA_DIR" default:"./data"`
}

// DBConfig describes the optional relational backend for the catalog. When no
// DSN is configured the catalog runs from the in-memory seed alone.
type DBConfig struct {
	DSN    string `envconfig:"SPORTSHOP_DB_DSN"`
	Driver string `envconfig:"SPORTSHOP_DB_DRIVER" default:"sqlite"`

	MaxOpenConns    int           `envconfig:"SPORTSHOP_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"SPORTSHOP_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"SPORTSHOP_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SPORTSHOP_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db DBConfig) Enabled() bool {
	return strings.TrimSpace(db.DSN) != ""
}

// RedisConfig describes the optional cart backend. When neither URL nor
// address is configured carts live in the in-memory repository.
type RedisConfig struct {
	URL          string        `envconfig:"SPORTSHOP_REDIS_URL"`
	Address      string        `envconfig:"SPORTSHOP_REDIS_ADDR"`
	Password     string        `envconfig:"SPORTSHOP_REDIS_PASSWORD"`
	DB           int           `envconfig:"SPORTSHOP_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SPORTSHOP_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SPORTSHOP_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SPORTSHOP_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SPORTSHOP_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SPORTSHOP_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

type RecommendationConfig struct {
	SimilarLimit int     `envconfig:"SPORTSHOP_RECOMMENDATION_SIMILAR_LIMIT" default:"5"`
	PriceWindow  float64 `envconfig:"SPORTSHOP_RECOMMENDATION_PRICE_WINDOW" default:"50"`
}
