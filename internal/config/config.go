package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort        string
	ShutdownTimeout time.Duration
	Database        DatabaseConfig
	Auth            AuthConfig
	Translation     TranslationConfig
}

type DatabaseConfig struct {
	Path string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type TranslationConfig struct {
	APIKey  string
	BaseURL string
	// Model names per direction; both default to the same model when only
	// one is configured.
	ModelEn2Vi     string
	ModelVi2En     string
	RequestTimeout time.Duration
}

// Load reads configuration from the environment. Every key has a default so
// the server can start with nothing but TRANSLATION_API_KEY set.
func Load() Config {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("http.port", "8080")
	v.SetDefault("http.shutdown_timeout", 10*time.Second)
	v.SetDefault("database.path", "data/translator.db")
	v.SetDefault("auth.jwt_secret", "dev-secret-change-me")
	v.SetDefault("auth.token_ttl", 30*time.Minute)
	v.SetDefault("translation.api_key", "")
	v.SetDefault("translation.base_url", "")
	v.SetDefault("translation.model_en2vi", "vinai/vinai-translate-en2vi")
	v.SetDefault("translation.model_vi2en", "vinai/vinai-translate-vi2en")
	v.SetDefault("translation.request_timeout", 60*time.Second)

	return Config{
		HTTPPort:        v.GetString("http.port"),
		ShutdownTimeout: v.GetDuration("http.shutdown_timeout"),
		Database: DatabaseConfig{
			Path: v.GetString("database.path"),
		},
		Auth: AuthConfig{
			JWTSecret: v.GetString("auth.jwt_secret"),
			TokenTTL:  v.GetDuration("auth.token_ttl"),
		},
		Translation: TranslationConfig{
			APIKey:         v.GetString("translation.api_key"),
			BaseURL:        v.GetString("translation.base_url"),
			ModelEn2Vi:     v.GetString("translation.model_en2vi"),
			ModelVi2En:     v.GetString("translation.model_vi2en"),
			RequestTimeout: v.GetDuration("translation.request_timeout"),
		},
	}
}
