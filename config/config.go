package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig

	Gemini         GeminiConfig
	Timezone       string // IANA name, "" for the host zone, "none" for no zone
	Countdown      CountdownConfig
	Notification   NotificationConfig
	Telegram       TelegramConfig
	GoogleCalendar GoogleCalendarConfig
	Database       DatabaseConfig
	RateLimit      RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	APIURL  string
	Timeout time.Duration
}

type CountdownConfig struct {
	Tick     time.Duration
	LeadTime time.Duration
	Trigger  string // "range" or "exact"
}

type NotificationConfig struct {
	Enabled bool
	// Permission is the initial decision: "default", "granted" or "denied".
	Permission     string
	TelegramChatID int64
	Icon           string
}

type TelegramConfig struct {
	BotToken    string
	WebhookURL  string
	// NgrokAPIURL is the local ngrok API queried when WebhookURL is empty.
	NgrokAPIURL string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

type DatabaseConfig struct {
	Path string
}

type RateLimitConfig struct {
	PerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/.
// A .env file in the working directory is loaded into the environment first.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	cfg.Gemini.APIKey = v.GetString("gemini.api_key")
	if key := v.GetString("gemini_api_key"); key != "" {
		cfg.Gemini.APIKey = key
	}
	cfg.Gemini.Model = v.GetString("gemini.model")
	cfg.Gemini.APIURL = v.GetString("gemini.api_url")
	cfg.Gemini.Timeout = v.GetDuration("gemini.timeout")

	cfg.Timezone = v.GetString("timezone")

	cfg.Countdown.Tick = v.GetDuration("countdown.tick")
	cfg.Countdown.LeadTime = v.GetDuration("countdown.lead_time")
	cfg.Countdown.Trigger = v.GetString("countdown.trigger")

	cfg.Notification.Enabled = v.GetBool("notification.enabled")
	cfg.Notification.Permission = v.GetString("notification.permission")
	cfg.Notification.TelegramChatID = v.GetInt64("notification.telegram_chat_id")
	cfg.Notification.Icon = v.GetString("notification.icon")

	cfg.Telegram.BotToken = v.GetString("telegram.bot_token")
	if token := v.GetString("telegram_bot_token"); token != "" {
		cfg.Telegram.BotToken = token
	}
	cfg.Telegram.WebhookURL = v.GetString("telegram.webhook_url")
	cfg.Telegram.NgrokAPIURL = v.GetString("telegram.ngrok_api_url")

	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	if creds := v.GetString("google_calendar_credentials"); creds != "" {
		cfg.GoogleCalendar.CredentialsPath = creds
	}
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")

	cfg.Database.Path = v.GetString("database.path")
	cfg.RateLimit.PerMin = v.GetInt("rate_limit.per_min")

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("gemini.model", "gemini-2.0-flash")
	v.SetDefault("gemini.timeout", "30s")

	v.SetDefault("countdown.tick", "1s")
	v.SetDefault("countdown.lead_time", "15m")
	v.SetDefault("countdown.trigger", "range")

	v.SetDefault("notification.enabled", true)
	v.SetDefault("notification.permission", "default")
	v.SetDefault("notification.icon", "/notification-icon.png")

	v.SetDefault("google_calendar.calendar_id", "primary")
	v.SetDefault("database.path", "smart-notes.db")
	v.SetDefault("rate_limit.per_min", 30)
}

// Validate checks the values the service cannot start without.
func (c *Config) Validate() error {
	return validation.Errors{
		"http_server": validation.ValidateStruct(&c.HTTPServer,
			validation.Field(&c.HTTPServer.Port, validation.Required, validation.Min(1), validation.Max(65535)),
			validation.Field(&c.HTTPServer.Mode, validation.Required, validation.In("debug", "release", "test")),
		),
		"countdown": validation.ValidateStruct(&c.Countdown,
			validation.Field(&c.Countdown.Tick, validation.Required, validation.Min(time.Millisecond)),
			validation.Field(&c.Countdown.LeadTime, validation.Required, validation.Min(time.Second)),
			validation.Field(&c.Countdown.Trigger, validation.In("range", "exact")),
		),
		"notification": validation.ValidateStruct(&c.Notification,
			validation.Field(&c.Notification.Permission, validation.In("default", "granted", "denied")),
		),
		"database": validation.ValidateStruct(&c.Database,
			validation.Field(&c.Database.Path, validation.Required),
		),
		"rate_limit": validation.ValidateStruct(&c.RateLimit,
			validation.Field(&c.RateLimit.PerMin, validation.Min(0)),
		),
	}.Filter()
}
