// Package config reads the service configuration from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Storage backends for the recipe document.
const (
	BackendFile     = "file"
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendS3       = "s3"
	BackendRedis    = "redis"
)

var backends = []string{BackendFile, BackendMemory, BackendSQLite, BackendPostgres, BackendS3, BackendRedis}

// Config is the resolved service configuration.
type Config struct {
	AppPort string

	Backend     string
	RecipesFile string
	DatabaseDSN string
	DocumentKey string // row name, object key or redis key of the document

	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3PathStyle bool

	RedisURL string

	RabbitMQURL string // empty disables event publishing

	JWTSecret     string
	OwnerUsername string
	OwnerPassword string
}

// Load applies defaults, overlays environment variables and validates the result.
func Load(v *viper.Viper) (Config, error) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("RECIPES_BACKEND", BackendFile)
	v.SetDefault("RECIPES_FILE", "data/recipes.json")
	v.SetDefault("RECIPES_KEY", "recipes.json")
	v.SetDefault("DATABASE_DSN", "recipes.db")
	v.SetDefault("S3_REGION", "us-east-1")
	v.SetDefault("S3_PATH_STYLE", false)
	v.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("OWNER_USERNAME", "owner")
	v.AutomaticEnv()

	cfg := Config{
		AppPort:       v.GetString("APP_PORT"),
		Backend:       strings.ToLower(strings.TrimSpace(v.GetString("RECIPES_BACKEND"))),
		RecipesFile:   v.GetString("RECIPES_FILE"),
		DatabaseDSN:   v.GetString("DATABASE_DSN"),
		DocumentKey:   v.GetString("RECIPES_KEY"),
		S3Bucket:      v.GetString("S3_BUCKET"),
		S3Region:      v.GetString("S3_REGION"),
		S3Endpoint:    v.GetString("S3_ENDPOINT"),
		S3PathStyle:   v.GetBool("S3_PATH_STYLE"),
		RedisURL:      v.GetString("REDIS_URL"),
		RabbitMQURL:   v.GetString("RABBITMQ_URL"),
		JWTSecret:     v.GetString("JWT_SECRET"),
		OwnerUsername: v.GetString("OWNER_USERNAME"),
		OwnerPassword: v.GetString("OWNER_PASSWORD"),
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	known := false
	for _, b := range backends {
		if c.Backend == b {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown RECIPES_BACKEND %q, want one of %s", c.Backend, strings.Join(backends, ", "))
	}

	switch {
	case c.Backend == BackendFile && c.RecipesFile == "":
		return fmt.Errorf("RECIPES_FILE is required for the file backend")
	case (c.Backend == BackendSQLite || c.Backend == BackendPostgres) && c.DatabaseDSN == "":
		return fmt.Errorf("DATABASE_DSN is required for the %s backend", c.Backend)
	case c.Backend == BackendS3 && c.S3Bucket == "":
		return fmt.Errorf("S3_BUCKET is required for the s3 backend")
	case c.Backend == BackendRedis && c.RedisURL == "":
		return fmt.Errorf("REDIS_URL is required for the redis backend")
	}

	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.OwnerUsername == "" || c.OwnerPassword == "" {
		return fmt.Errorf("OWNER_USERNAME and OWNER_PASSWORD are required")
	}
	return nil
}
