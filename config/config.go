package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Log    Logger   `mapstructure:"logger"`
	DB     Database `mapstructure:"database"`
	API    API      `mapstructure:"api"`
	Cache  Cache    `mapstructure:"cache"`
	Oracle Oracle   `mapstructure:"oracle"`
	Market Market   `mapstructure:"market"`
}

type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type Database struct {
	URL                 string        `mapstructure:"url"`
	MaxIdleConns        int           `mapstructure:"max_idle_conns"`
	MaxOpenConns        int           `mapstructure:"max_open_conns"`
	ConnMaxLifetime     string        `mapstructure:"conn_max_lifetime"`
	ConnectTimeout      time.Duration `mapstructure:"connect_timeout"`
	LogLevel            string        `mapstructure:"log_level"`
	HealthCheckSchedule string        `mapstructure:"health_check_schedule"`
}

type API struct {
	Port             int           `mapstructure:"port"`
	CORSAllowOrigins []string      `mapstructure:"cors_allow_origins"`
	ShutdownTimeout  time.Duration `mapstructure:"shutdown_timeout"`
}

type Cache struct {
	DefaultExpiration time.Duration `mapstructure:"default_expiration"`
	CleanupInterval   time.Duration `mapstructure:"cleanup_interval"`
}

type Oracle struct {
	BaseURL          string        `mapstructure:"base_url"`
	Timeout          time.Duration `mapstructure:"timeout"`
	MaxRequestPerMin int           `mapstructure:"max_request_per_min"`
}

// Market holds the simulated snapshot served by GET /market-data.
type Market struct {
	Price     float64 `mapstructure:"price"`
	Liquidity float64 `mapstructure:"liquidity"`
	Volume    float64 `mapstructure:"volume"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.encoding", "json")

	v.SetDefault("api.port", 3000)
	v.SetDefault("api.cors_allow_origins", []string{"*"})
	v.SetDefault("api.shutdown_timeout", 10*time.Second)

	v.SetDefault("database.url", "")
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.conn_max_lifetime", "5m")
	v.SetDefault("database.connect_timeout", 5*time.Second)
	v.SetDefault("database.log_level", "Warn")
	v.SetDefault("database.health_check_schedule", "@every 30s")

	v.SetDefault("cache.default_expiration", 5*time.Minute)
	v.SetDefault("cache.cleanup_interval", 10*time.Minute)

	v.SetDefault("oracle.base_url", "")
	v.SetDefault("oracle.timeout", 10*time.Second)
	v.SetDefault("oracle.max_request_per_min", 60)

	v.SetDefault("market.price", 123.45)
	v.SetDefault("market.liquidity", 5000000)
	v.SetDefault("market.volume", 2500000)
}

// Load reads config.yaml (optional) and the environment. PORT and DATABASE_URL
// are honoured directly so the service runs with the conventional variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file loaded:", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("config")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AddConfigPath(".")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.BindEnv("api.port", "PORT", "API_PORT"); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		fmt.Println("No config file loaded:", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.API.Port <= 0 {
		return nil, fmt.Errorf("invalid api port %d", cfg.API.Port)
	}

	return &cfg, nil
}
