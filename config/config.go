package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"hotelpms/constants"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type Config struct {
	Env  string `yaml:"env"`
	Port string `yaml:"port"`
	// DatabaseDSN, when set, wins over the per-environment DB_* variables.
	DatabaseDSN          string        `yaml:"database_dsn"`
	Redis                RedisConfig   `yaml:"redis"`
	JWTSecret            string        `yaml:"jwt_secret"`
	CORSOrigins          []string      `yaml:"cors_origins"`
	Timezone             string        `yaml:"timezone"`
	DigestCron           string        `yaml:"digest_cron"`
	CleaningTaskMinutes  int           `yaml:"cleaning_task_minutes"`
	RepriceAtCurrentRate bool          `yaml:"reprice_at_current_rate"`
	CacheTTL             time.Duration `yaml:"cache_ttl"`
	LogLevel             string        `yaml:"log_level"`
}

func defaults() Config {
	return Config{
		Env:                 "dev",
		Port:                "8083",
		Timezone:            "UTC",
		DigestCron:          "0 6 * * *",
		CleaningTaskMinutes: constants.DefaultCleaningMinutes,
		CacheTTL:            constants.DefaultCacheTTL,
		LogLevel:            "info",
	}
}

func LoadEnv() {
	// A missing .env is normal outside development.
	_ = godotenv.Load()
}

// Load reads .env, then the YAML file named by CONFIG_FILE if any, then the environment.
func Load() (*Config, error) {
	LoadEnv()
	return LoadFrom(os.Getenv("CONFIG_FILE"), os.Getenv)
}

// LoadFrom builds a Config from an optional YAML file overlaid with getenv.
func LoadFrom(path string, getenv func(string) string) (*Config, error) {
	cfg := defaults()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}
	if err := cfg.applyEnv(getenv); err != nil {
		return nil, err
	}
	if cfg.DatabaseDSN == "" {
		dsn, err := getDBConfigByEnv(cfg.Env, cfg.Timezone, getenv)
		if err != nil {
			return nil, err
		}
		cfg.DatabaseDSN = dsn
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	setString := func(key string, dst *string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}
	setString("ENV", &c.Env)
	setString("PORT", &c.Port)
	setString("DATABASE_URL", &c.DatabaseDSN)
	setString("REDIS_ADDR", &c.Redis.Addr)
	setString("REDIS_USER", &c.Redis.Username)
	setString("REDIS_PASSWORD", &c.Redis.Password)
	setString("JWT_SECRET", &c.JWTSecret)
	setString("TIMEZONE", &c.Timezone)
	setString("DIGEST_CRON", &c.DigestCron)
	setString("LOG_LEVEL", &c.LogLevel)

	if v := getenv("CORS_ORIGINS"); v != "" {
		c.CORSOrigins = nil
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				c.CORSOrigins = append(c.CORSOrigins, origin)
			}
		}
	}
	if v := getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("REDIS_DB: %w", err)
		}
		c.Redis.DB = n
	}
	if v := getenv("CLEANING_TASK_MINUTES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CLEANING_TASK_MINUTES: %w", err)
		}
		c.CleaningTaskMinutes = n
	}
	if v := getenv("REPRICE_AT_CURRENT_RATE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("REPRICE_AT_CURRENT_RATE: %w", err)
		}
		c.RepriceAtCurrentRate = b
	}
	if v := getenv("CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("CACHE_TTL: %w", err)
		}
		c.CacheTTL = d
	}
	return nil
}

func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.CleaningTaskMinutes <= 0 {
		return fmt.Errorf("cleaning task minutes must be positive, got %d", c.CleaningTaskMinutes)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return nil
}

// Location is the hotel's local timezone, used to decide what "today" is.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// getDBConfigByEnv reads <ENV>_DB_* variables (DEV_, QC_ or PROD_).
func getDBConfigByEnv(env, timezone string, getenv func(string) string) (string, error) {
	var prefix string
	switch env {
	case "dev":
		prefix = "DEV_"
	case "qc":
		prefix = "QC_"
	case "prod":
		prefix = "PROD_"
	default:
		return "", fmt.Errorf("unknown environment: %s", env)
	}

	sslmode := getenv(prefix + "DB_SSLMODE")
	if sslmode == "" {
		sslmode = "require"
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		getenv(prefix+"DB_HOST"), getenv(prefix+"DB_USER"), getenv(prefix+"DB_PASSWORD"),
		getenv(prefix+"DB_NAME"), getenv(prefix+"DB_PORT"), sslmode, timezone), nil
}
