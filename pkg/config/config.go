package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreRedis  = "redis"

	RemoteNone      = "none"
	RemoteSupabase  = "supabase"
	RemotePostgres  = "postgres"
	RemoteFirestore = "firestore"
)

type Config struct {
	ServerPort    string `env:"SERVER_PORT" envDefault:"8080"`
	Environment   string `env:"ENVIRONMENT" envDefault:"development"`
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"https://paksupply.pk"`

	StoreDriver   string `env:"STORE_DRIVER" envDefault:"file"`
	DataDir       string `env:"DATA_DIR" envDefault:"./data"`
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisPrefix   string `env:"REDIS_PREFIX" envDefault:"ps"`

	RemoteDriver               string        `env:"REMOTE_DRIVER" envDefault:"none"`
	RemoteTimeout              time.Duration `env:"REMOTE_TIMEOUT" envDefault:"3s"`
	SupabaseURL                string        `env:"SUPABASE_URL"`
	SupabaseAnonKey            string        `env:"SUPABASE_ANON_KEY"`
	PostgresDSN                string        `env:"POSTGRES_DSN"`
	FirebaseProject            string        `env:"FIREBASE_PROJECT_ID"`
	FirebaseServiceAccountPath string        `env:"FIREBASE_SERVICE_ACCOUNT_PATH"`
	FirebaseServiceAccountJSON string        `env:"FIREBASE_SERVICE_ACCOUNT_JSON"`

	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@paksupply.pk"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
	AdminWhatsApp string `env:"ADMIN_WHATSAPP" envDefault:"03463904137"`

	CatalogPath        string        `env:"CATALOG_PATH"`
	SessionTTL         time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	WriteRatePerMinute int           `env:"WRITE_RATE_PER_MINUTE" envDefault:"30"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config.Load: load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case StoreMemory, StoreFile, StoreRedis:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}

	switch c.RemoteDriver {
	case RemoteNone:
	case RemoteSupabase:
		if c.SupabaseURL == "" || c.SupabaseAnonKey == "" {
			return errors.New("SUPABASE_URL and SUPABASE_ANON_KEY are required for the supabase remote")
		}
	case RemotePostgres:
		if c.PostgresDSN == "" {
			return errors.New("POSTGRES_DSN is required for the postgres remote")
		}
	case RemoteFirestore:
		if c.FirebaseProject == "" {
			return errors.New("FIREBASE_PROJECT_ID is required for the firestore remote")
		}
	default:
		return fmt.Errorf("unknown REMOTE_DRIVER %q", c.RemoteDriver)
	}

	if c.RemoteTimeout <= 0 {
		return errors.New("REMOTE_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
