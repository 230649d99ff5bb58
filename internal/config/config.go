package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/DanRulev/vocamission.git/pkg/validator"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig     `mapstructure:"app" validate:"required"`
	BotToken string        `mapstructure:"bot_token" validate:"required"`
	DB       DBConfig      `mapstructure:"db" validate:"required"`
	Backend  BackendConfig `mapstructure:"backend" validate:"required"`
	Cache    CacheConfig   `mapstructure:"cache"`
	Env      string        `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	Timeout time.Duration `mapstructure:"timeout" validate:"min=1"`
}

type BackendConfig struct {
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	Timeout time.Duration `mapstructure:"timeout" validate:"min=1"`
}

type CacheConfig struct {
	Driver string        `mapstructure:"driver" validate:"oneof=memory redis"`
	TTL    time.Duration `mapstructure:"ttl" validate:"min=0"`
	Redis  RedisConfig   `mapstructure:"redis"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"min=0,max=15"`
}

type DBConfig struct {
	Conn DBConn `mapstructure:"conn"`
	Cfg  DBCfg  `mapstructure:"cfg"`
}

type DBConn struct {
	Host     string `mapstructure:"host" validate:"required"`
	Port     string `mapstructure:"port" validate:"required"`
	User     string `mapstructure:"user" validate:"required"`
	Password string `mapstructure:"password" validate:"required"`
	Name     string `mapstructure:"name" validate:"required"`
	SSL      string `mapstructure:"ssl" validate:"oneof=disable require verify-full"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

var envBindings = map[string]string{
	"bot_token":            "BOT_TOKEN",
	"db.conn.host":         "DB_HOST",
	"db.conn.port":         "DB_PORT",
	"db.conn.user":         "DB_USER",
	"db.conn.password":     "DB_PASSWORD",
	"db.conn.name":         "DB_NAME",
	"db.conn.ssl":          "DB_SSL",
	"backend.base_url":     "BACKEND_URL",
	"cache.driver":         "CACHE_DRIVER",
	"cache.redis.addr":     "REDIS_ADDR",
	"cache.redis.password": "REDIS_PASSWORD",
}

func Init() (*Config, error) {
	// .env is optional, real env vars win.
	_ = godotenv.Load()

	v := viper.New()

	v.AutomaticEnv()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath("configs")
	v.SetConfigName(configName)

	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Backend.BaseURL = strings.TrimRight(cfg.Backend.BaseURL, "/")

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	if cfg.Cache.Driver == "redis" && cfg.Cache.Redis.Addr == "" {
		return nil, fmt.Errorf("validation failed: cache.redis.addr is required for the redis driver")
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("app.timeout", 10*time.Second)
	v.SetDefault("backend.base_url", "http://localhost:8000")
	v.SetDefault("backend.timeout", 10*time.Second)
	v.SetDefault("cache.driver", "memory")
	v.SetDefault("cache.ttl", 24*time.Hour)
}
