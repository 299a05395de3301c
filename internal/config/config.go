package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Addr            string        `env:"ADDR"                  envDefault:":5000"`
	DBPath          string        `env:"DB_PATH"               envDefault:"db.sqlite"`
	DataTTL         time.Duration `env:"DATA_TTL"              envDefault:"1h"`
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL"      envDefault:"1h"`
	MaxRecords      int64         `env:"MAX_RECORDS_PER_TABLE" envDefault:"1000"`
	CORSOrigins     []string      `env:"CORS_ORIGINS"          envDefault:"http://localhost:3000"`
	OpenAIAPIKey    string        `env:"OPENAI_API_KEY"`
}

// LoadConfig reads configuration from environment variables, falling back
// to defaults. It panics on malformed values.
func LoadConfig() Config {
	return env.Must(env.ParseAs[Config]())
}
