package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const configFileEnvName = "STOREFRONT_CONFIG_FILE"

// Mirror backends.
const (
	MirrorFile     = "file"
	MirrorRedis    = "redis"
	MirrorPostgres = "postgres"
	MirrorMemory   = "memory"
)

// Gateway modes.
const (
	GatewayMock = "mock"
	GatewayHTTP = "http"
)

type mirrorConfig struct {
	Backend     string `mapstructure:"backend"`
	Dir         string `mapstructure:"dir"`
	RedisAddr   string `mapstructure:"redis_addr"`
	DatabaseURL string `mapstructure:"database_url"`
}

type gatewayConfig struct {
	Mode     string        `mapstructure:"mode"`
	BaseURL  string        `mapstructure:"base_url"`
	MinDelay time.Duration `mapstructure:"min_delay"`
	MaxDelay time.Duration `mapstructure:"max_delay"`
}

type Config struct {
	Addr            string        `mapstructure:"addr"`
	JWTSecret       string        `mapstructure:"jwt_secret"`
	NotificationTTL time.Duration `mapstructure:"notification_ttl"`
	Mirror          mirrorConfig  `mapstructure:"mirror"`
	Gateway         gatewayConfig `mapstructure:"gateway"`
}

// Load reads configuration from an optional config file plus
// STOREFRONT_* environment variable overrides.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("addr", ":8080")
	v.SetDefault("jwt_secret", "storefront-dev-secret")
	v.SetDefault("notification_ttl", 5*time.Second)
	v.SetDefault("mirror.backend", MirrorFile)
	v.SetDefault("mirror.dir", "data")
	v.SetDefault("mirror.redis_addr", "localhost:6379")
	v.SetDefault("mirror.database_url", "")
	v.SetDefault("gateway.mode", GatewayMock)
	v.SetDefault("gateway.base_url", "")
	v.SetDefault("gateway.min_delay", 300*time.Millisecond)
	v.SetDefault("gateway.max_delay", 800*time.Millisecond)

	v.SetEnvPrefix("STOREFRONT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file := os.Getenv(configFileEnvName); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}
