package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host string
	Port int
}

type ReminderConfig struct {
	ExpiryDays     int
	LeadDays       int
	ConfirmBaseURL string
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	Reminder    ReminderConfig
	Districts   []string
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

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		Reminder: ReminderConfig{
			ExpiryDays:     v.GetInt("REMINDER_EXPIRY_DAYS"),
			LeadDays:       v.GetInt("REMINDER_LEAD_DAYS"),
			ConfirmBaseURL: v.GetString("CONFIRM_BASE_URL"),
		},
		Districts: splitCodes(v.GetString("DISTRICT_CODES")),
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
	if cfg.Reminder.ExpiryDays == 0 {
		cfg.Reminder.ExpiryDays = 365
	}
	if cfg.Reminder.LeadDays == 0 {
		cfg.Reminder.LeadDays = 14
	}
	if cfg.Reminder.ConfirmBaseURL == "" {
		cfg.Reminder.ConfirmBaseURL = "https://reminder.local/confirm"
	}
	if len(cfg.Districts) == 0 {
		cfg.Districts = []string{"W", "KU", "L", "B", "G", "Z", "AM", "H", "M", "K"}
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func splitCodes(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	codes := make([]string, 0, len(parts))
	for _, p := range parts {
		if code := strings.TrimSpace(p); code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}

func validate(cfg *Config) error {
	if cfg.Reminder.ExpiryDays <= 0 {
		return fmt.Errorf("REMINDER_EXPIRY_DAYS must be positive")
	}
	if cfg.Reminder.LeadDays < 0 || cfg.Reminder.LeadDays >= cfg.Reminder.ExpiryDays {
		return fmt.Errorf("REMINDER_LEAD_DAYS must be between 0 and REMINDER_EXPIRY_DAYS")
	}
	return nil
}
