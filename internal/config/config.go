package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host string
	Port int
}

type AuthConfig struct {
	AccessSecret string
}

type TelegramConfig struct {
	BotToken    string
	AdminIDs    []int64
	PollTimeout int
}

type SourceConfig struct {
	SheetCSVURL string
	XLSXPath    string
	ObjectKey   string
	SheetName   string
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	Auth        AuthConfig
	Telegram    TelegramConfig
	Source      SourceConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AddConfigPath("./internal/config")

	v.AutomaticEnv()

	_ = v.ReadInConfig()

	adminIDs, err := parseAdminIDs(v.GetString("TELEGRAM_ADMIN_IDS"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		Auth: AuthConfig{
			AccessSecret: v.GetString("JWT_ACCESS_SECRET"),
		},
		Telegram: TelegramConfig{
			BotToken:    v.GetString("BOT_TOKEN"),
			AdminIDs:    adminIDs,
			PollTimeout: v.GetInt("TELEGRAM_POLL_TIMEOUT"),
		},
		Source: SourceConfig{
			SheetCSVURL: v.GetString("SHEET_CSV_URL"),
			XLSXPath:    v.GetString("XLSX_PATH"),
			ObjectKey:   v.GetString("R2_OBJECT_KEY"),
			SheetName:   v.GetString("SHEET_NAME"),
		},
	}

	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 8080
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.Telegram.PollTimeout == 0 {
		cfg.Telegram.PollTimeout = 30
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Telegram.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.Auth.AccessSecret == "" {
		return fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	return nil
}

func parseAdminIDs(raw string) ([]int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("TELEGRAM_ADMIN_IDS contains invalid id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
