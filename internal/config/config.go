package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// Values are read from app.env in the given path and overridden by environment variables.
type Config struct {
	DBSource      string `mapstructure:"DB_SOURCE"`
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`

	RedisAddr     string        `mapstructure:"REDIS_ADDR"`
	RedisPassword string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int           `mapstructure:"REDIS_DB"`
	StatsCacheTTL time.Duration `mapstructure:"STATS_CACHE_TTL"`

	StoreAPIBaseURL string        `mapstructure:"STORE_API_BASE_URL"`
	StoreAPIKey     string        `mapstructure:"STORE_API_KEY"`
	StoreAPITimeout time.Duration `mapstructure:"STORE_API_TIMEOUT"`

	SyncPageSize     int           `mapstructure:"SYNC_PAGE_SIZE"`
	SyncMaxPerRegion int           `mapstructure:"SYNC_MAX_PER_REGION"`
	SyncRegionDelay  time.Duration `mapstructure:"SYNC_REGION_DELAY"`
	SyncProvinceCode string        `mapstructure:"SYNC_PROVINCE_CODE"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`
}

// MaxUpstreamPageSize is the largest page the store registry serves.
const MaxUpstreamPageSize = 1000

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("STATS_CACHE_TTL", 10*time.Minute)
	v.SetDefault("STORE_API_BASE_URL", "https://apis.data.go.kr/B553077/api/open/sdsc2")
	v.SetDefault("STORE_API_TIMEOUT", 30*time.Second)
	v.SetDefault("SYNC_PAGE_SIZE", MaxUpstreamPageSize)
	v.SetDefault("SYNC_MAX_PER_REGION", 1000)
	v.SetDefault("SYNC_REGION_DELAY", time.Second)
	v.SetDefault("SYNC_PROVINCE_CODE", "11")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	// AutomaticEnv only applies to keys viper already knows about
	for _, key := range []string{"DB_SOURCE", "REDIS_ADDR", "REDIS_PASSWORD", "STORE_API_KEY"} {
		if err = v.BindEnv(key); err != nil {
			return
		}
	}

	if err = v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return config, fmt.Errorf("config: read config: %w", err)
		}
		err = nil
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err = config.validate(); err != nil {
		return config, err
	}
	return config, nil
}

func (c *Config) validate() error {
	if c.DBSource == "" {
		return fmt.Errorf("config: DB_SOURCE is required")
	}
	if c.SyncPageSize <= 0 || c.SyncPageSize > MaxUpstreamPageSize {
		return fmt.Errorf("config: SYNC_PAGE_SIZE must be between 1 and %d", MaxUpstreamPageSize)
	}
	if c.SyncMaxPerRegion <= 0 {
		return fmt.Errorf("config: SYNC_MAX_PER_REGION must be positive")
	}
	if c.SyncRegionDelay < 0 {
		return fmt.Errorf("config: SYNC_REGION_DELAY must not be negative")
	}
	return nil
}
