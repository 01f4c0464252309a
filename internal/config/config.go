package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

const (
	defaultAccessTokenTTL  = 15 * time.Minute
	defaultRefreshTokenTTL = 7 * 24 * time.Hour

	// Development-only fallback secrets. Refused outside development.
	devAccessSecret  = "dev-access-secret-change-in-production"
	devRefreshSecret = "dev-refresh-secret-change-in-production"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		Driver  string `yaml:"driver"`   // postgres, jsonfile
		DSN     string `yaml:"dsn"`      // for postgres
		DataDir string `yaml:"data_dir"` // for jsonfile
	} `yaml:"database"`

	JWT struct {
		AccessSecret     string `yaml:"access_secret"`
		RefreshSecret    string `yaml:"refresh_secret"`
		AccessTTLMinutes int    `yaml:"access_ttl_minutes"`
		RefreshTTLHours  int    `yaml:"refresh_ttl_hours"`
	} `yaml:"jwt"`

	Storage struct {
		BasePath string `yaml:"base_path"` // uploads directory
		BaseURL  string `yaml:"base_url"`  // public URL prefix
	} `yaml:"storage"`

	Upload struct {
		MaxSize      int64 `yaml:"max_size"`      // bytes
		ImageQuality int   `yaml:"image_quality"` // JPEG quality 1-100
		MaxDimension int   `yaml:"max_dimension"` // longest edge in pixels
	} `yaml:"upload"`
}

// AccessTokenTTL returns the configured access token lifetime.
func (c *Config) AccessTokenTTL() time.Duration {
	if c.JWT.AccessTTLMinutes <= 0 {
		return defaultAccessTokenTTL
	}
	return time.Duration(c.JWT.AccessTTLMinutes) * time.Minute
}

// RefreshTokenTTL returns the configured refresh token lifetime.
func (c *Config) RefreshTokenTTL() time.Duration {
	if c.JWT.RefreshTTLHours <= 0 {
		return defaultRefreshTokenTTL
	}
	return time.Duration(c.JWT.RefreshTTLHours) * time.Hour
}

// IsDevelopment reports whether the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development" || c.Server.Env == ""
}

var AppConfig *Config

func LoadConfig() {
	var cfg Config

	// Environment variables take precedence over the yaml file, so tests
	// and containers can run without a config file on disk.
	if os.Getenv("DATABASE_DRIVER") == "" && os.Getenv("DATABASE_URL") == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		validateSecrets(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Host = os.Getenv("SERVER_HOST")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.Database.Driver = os.Getenv("DATABASE_DRIVER")
	cfg.Database.DSN = os.Getenv("DATABASE_URL")
	cfg.Database.DataDir = os.Getenv("DATA_DIR")
	cfg.JWT.AccessSecret = os.Getenv("JWT_ACCESS_SECRET")
	cfg.JWT.RefreshSecret = os.Getenv("JWT_REFRESH_SECRET")

	applyDefaults(&cfg)
	validateSecrets(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.Database.Driver == "" {
		if cfg.Database.DSN != "" {
			cfg.Database.Driver = "postgres"
		} else {
			cfg.Database.Driver = "jsonfile"
		}
	}
	if cfg.Database.DataDir == "" {
		cfg.Database.DataDir = "./data/storage"
	}
	if cfg.Storage.BasePath == "" {
		cfg.Storage.BasePath = "./uploads"
	}
	if cfg.Storage.BaseURL == "" {
		cfg.Storage.BaseURL = "/uploads"
	}
	if cfg.Upload.MaxSize == 0 {
		cfg.Upload.MaxSize = 5 * 1024 * 1024 // 5MB
	}
	if cfg.Upload.ImageQuality == 0 {
		cfg.Upload.ImageQuality = 85
	}
	if cfg.Upload.MaxDimension == 0 {
		cfg.Upload.MaxDimension = 800
	}
}

// validateSecrets enforces the startup contract for signing keys: outside
// development, missing secrets abort the process instead of silently
// substituting a known value.
func validateSecrets(cfg *Config) {
	if cfg.JWT.AccessSecret != "" && cfg.JWT.RefreshSecret != "" {
		return
	}

	if !cfg.IsDevelopment() {
		log.Fatalf("JWT secrets are required outside development (env=%q): set jwt.access_secret and jwt.refresh_secret", cfg.Server.Env)
	}

	log.Println("WARNING: JWT secrets not set, using development fallbacks (not secure for production)")
	if cfg.JWT.AccessSecret == "" {
		cfg.JWT.AccessSecret = devAccessSecret
	}
	if cfg.JWT.RefreshSecret == "" {
		cfg.JWT.RefreshSecret = devRefreshSecret
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
