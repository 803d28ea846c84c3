// Package config loads application configuration from environment variables.
// A .env file in the working directory is loaded first when present.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds all runtime configuration for the API server.
// Each koanf key is the lowercased environment variable name.
type Config struct {
	Env         string `koanf:"app_env"`
	Port        string `koanf:"port" validate:"required"`
	DatabaseURL string `koanf:"database_url" validate:"required"`
	LogLevel    string `koanf:"log_level"`
	// CORSOrigins is a comma-separated list in the environment.
	CORSOrigins []string `koanf:"-"`
	RawCORS     string   `koanf:"cors_origins"`

	JWTSecret    string        `koanf:"jwt_secret" validate:"required"`
	JWTTTL       time.Duration `koanf:"jwt_ttl" validate:"gt=0"`
	MaxBodyBytes int64         `koanf:"max_body_bytes" validate:"gt=0"`

	RedisURL           string `koanf:"redis_url"`
	RateLimitPerMinute int    `koanf:"rate_limit_per_minute" validate:"gte=1"`

	S3Bucket    string `koanf:"s3_bucket"`
	S3Region    string `koanf:"s3_region"`
	S3Endpoint  string `koanf:"s3_endpoint"`
	S3AccessKey string `koanf:"s3_access_key"`
	S3SecretKey string `koanf:"s3_secret_key"`

	ResendAPIKey  string `koanf:"resend_api_key"`
	MailFrom      string `koanf:"mail_from"`
	OperatorEmail string `koanf:"operator_email"`

	OrphanSweepSchedule string `koanf:"orphan_sweep_schedule" validate:"required"`
	OTPPurgeSchedule    string `koanf:"otp_purge_schedule" validate:"required"`

	OTelExporter string `koanf:"otel_exporter" validate:"oneof=none stdout otlp"`
	OTelEndpoint string `koanf:"otel_endpoint"`
}

// IsProduction reports whether error details must be hidden from clients.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

var defaults = map[string]any{
	"app_env":               "development",
	"port":                  "8080",
	"log_level":             "info",
	"cors_origins":          "http://localhost:5173",
	"jwt_ttl":               "24h",
	"max_body_bytes":        1 << 20,
	"rate_limit_per_minute": 10,
	"s3_region":             "us-east-1",
	"mail_from":             "Travel Desk <no-reply@example.com>",
	"orphan_sweep_schedule": "@every 15m",
	"otp_purge_schedule":    "@hourly",
	"otel_exporter":         "none",
}

// Load reads configuration from environment variables.
// Empty variables count as unset. An error naming every missing
// variable is returned when required values are absent.
func Load() (Config, error) {
	k := koanf.New(".")
	for key, v := range defaults {
		if err := k.Set(key, v); err != nil {
			return Config{}, fmt.Errorf("config: default %s: %w", key, err)
		}
	}

	err := k.Load(env.ProviderWithValue("", ".", func(key, value string) (string, any) {
		if value == "" {
			return "", nil
		}
		return strings.ToLower(key), value
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("config: load env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	cfg.CORSOrigins = splitCSV(cfg.RawCORS)

	if err := check(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// check validates cfg and reports failures by environment variable name.
func check(cfg Config) error {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.ToUpper(f.Tag.Get("koanf"))
	})

	err := v.Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("config: %w", err)
	}

	var missing, invalid []string
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		} else {
			invalid = append(invalid, fmt.Sprintf("%s=%v", fe.Field(), fe.Value()))
		}
	}
	var msgs []string
	if len(missing) > 0 {
		msgs = append(msgs, "missing required environment variables: "+strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		msgs = append(msgs, "invalid environment variables: "+strings.Join(invalid, ", "))
	}
	return errors.New("config: " + strings.Join(msgs, "; "))
}

// splitCSV splits a comma-separated string into a trimmed, non-empty slice.
func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
