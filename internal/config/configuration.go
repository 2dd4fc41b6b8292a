package config

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	// WebServer Configuration
	WebServerPort int    `mapstructure:"WEBSERVER_PORT" validate:"min=1,max=65535"`
	SessionSecret string `mapstructure:"SESSION_SECRET" validate:"omitempty,min=16"`

	// Provider credentials. A provider without a key is skipped.
	PexelsKey     string `mapstructure:"PEXELS_KEY"`
	PixabayKey    string `mapstructure:"PIXABAY_KEY"`
	YouTubeAPIKey string `mapstructure:"YOUTUBE_API_KEY"`

	// Video search backend
	SearchEndpoint string        `mapstructure:"YT_SEARCH_ENDPOINT" validate:"omitempty,url"`
	BackendTimeout time.Duration `mapstructure:"BACKEND_TIMEOUT" validate:"gt=0"`

	// Outbound requests
	FetchTimeout     time.Duration `mapstructure:"FETCH_TIMEOUT" validate:"gt=0"`
	UserAgent        string        `mapstructure:"USER_AGENT"`
	WikidataLanguage string        `mapstructure:"WIKIDATA_LANGUAGE" validate:"required,bcp47_language_tag"`

	// Response cache. Disabled when REDIS_URL is empty.
	RedisURL string        `mapstructure:"REDIS_URL" validate:"omitempty,url"`
	CacheTTL time.Duration `mapstructure:"CACHE_TTL" validate:"gte=0"`

	// Per-session result workspaces
	WorkspaceTTL time.Duration `mapstructure:"WORKSPACE_TTL" validate:"gt=0"`
}

// LogValue keeps credentials out of logs.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("webserver_port", c.WebServerPort),
		slog.Bool("session_secret_set", c.SessionSecret != ""),
		slog.Bool("pexels_key_set", c.PexelsKey != ""),
		slog.Bool("pixabay_key_set", c.PixabayKey != ""),
		slog.Bool("youtube_api_key_set", c.YouTubeAPIKey != ""),
		slog.String("search_endpoint", c.SearchEndpoint),
		slog.Duration("backend_timeout", c.BackendTimeout),
		slog.Duration("fetch_timeout", c.FetchTimeout),
		slog.String("wikidata_language", c.WikidataLanguage),
		slog.Bool("redis_enabled", c.RedisURL != ""),
		slog.Duration("cache_ttl", c.CacheTTL),
		slog.Duration("workspace_ttl", c.WorkspaceTTL),
	)
}

// use reflect to bind environment variables based on mapstructure tags
func bindEnv(c Config) {
	typ := reflect.TypeOf(c)
	for i := 0; i < typ.NumField(); i++ {
		if tag := typ.Field(i).Tag.Get("mapstructure"); tag != "" {
			_ = viper.BindEnv(tag)
		}
	}
	slog.Debug("Environment variables bound", "fields", typ.NumField())
}

func LoadConfig(ctx context.Context) (*Config, error) {
	bindEnv(Config{})
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("WEBSERVER_PORT", 8080)
	viper.SetDefault("BACKEND_TIMEOUT", 60*time.Second)
	viper.SetDefault("FETCH_TIMEOUT", 20*time.Second)
	viper.SetDefault("WIKIDATA_LANGUAGE", "ko")
	viper.SetDefault("CACHE_TTL", 10*time.Minute)
	viper.SetDefault("WORKSPACE_TTL", 2*time.Hour)
	viper.SetDefault("USER_AGENT", "reelscout/1.0")

	cfg := Config{}
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	slog.InfoContext(ctx, "Loaded configuration", "config", cfg)

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
