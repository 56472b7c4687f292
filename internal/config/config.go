package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env    string // "production" or "development"
	Server struct {
		Port string
	}
	DB struct {
		URL          string
		MaxOpenConns int
		ConnLifetime time.Duration
	}
	Storage struct {
		Mode    string // "postgres" or "file"
		DataDir string
	}
	Auth struct {
		JWTSecret string
	}
	Coach struct {
		APIKey  string
		Model   string
		Timeout time.Duration
	}
	BodyFat struct {
		WeightsPath string
	}
	ShutdownTimeout time.Duration
}

// Load reads configuration from the environment, with .env support.
// A missing coach API key is a valid configuration state, not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("ENV", "production")
	v.SetDefault("PORT", "8080")
	v.SetDefault("STORAGE_MODE", "postgres")
	v.SetDefault("DATA_DIR", "user_data")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_CONN_LIFETIME", 2*time.Hour)
	v.SetDefault("COACH_MODEL", "gpt-4o-mini")
	v.SetDefault("COACH_TIMEOUT", 30*time.Second)
	v.SetDefault("BODYFAT_WEIGHTS_PATH", "models/bodyfat_weights.json")
	v.SetDefault("SHUTDOWN_TIMEOUT", 5*time.Second)

	v.AutomaticEnv()

	var cfg Config
	cfg.Env = v.GetString("ENV")
	cfg.Server.Port = v.GetString("PORT")
	cfg.DB.URL = v.GetString("DATABASE_URL")
	cfg.DB.MaxOpenConns = v.GetInt("DB_MAX_OPEN_CONNS")
	cfg.DB.ConnLifetime = v.GetDuration("DB_CONN_LIFETIME")
	cfg.Storage.Mode = v.GetString("STORAGE_MODE")
	cfg.Storage.DataDir = v.GetString("DATA_DIR")
	cfg.Auth.JWTSecret = v.GetString("JWT_SECRET")
	cfg.Coach.APIKey = v.GetString("COACH_API_KEY")
	cfg.Coach.Model = v.GetString("COACH_MODEL")
	cfg.Coach.Timeout = v.GetDuration("COACH_TIMEOUT")
	cfg.BodyFat.WeightsPath = v.GetString("BODYFAT_WEIGHTS_PATH")
	cfg.ShutdownTimeout = v.GetDuration("SHUTDOWN_TIMEOUT")

	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	switch cfg.Storage.Mode {
	case "postgres":
		if cfg.DB.URL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required when STORAGE_MODE=postgres")
		}
	case "file":
	default:
		return nil, fmt.Errorf("unknown STORAGE_MODE %q", cfg.Storage.Mode)
	}

	return &cfg, nil
}
