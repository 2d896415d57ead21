package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App           AppConfig
	Logger        LoggerConfig
	Channel       ChannelConfig
	Tickets       TicketsConfig
	Dashboard     DashboardConfig
	Notifications NotificationsConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// ChannelConfig tunes the simulated real-time channel.
type ChannelConfig struct {
	EchoDelayMS          int
	ReconnectMaxAttempts int
	ReconnectDelayMS     int
}

// TicketsConfig tunes the ticket store's simulated backend.
type TicketsConfig struct {
	FetchDelayMS int
}

// DashboardConfig tunes stats fetching and the refresh schedule.
type DashboardConfig struct {
	FetchDelayMS           int
	RefreshIntervalSeconds int
	MaxRecentActivity      int
}

// NotificationsConfig tunes the toast lifecycle.
type NotificationsConfig struct {
	DismissAfterMS int
	ExitAfterMS    int
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "ticket-dashboard"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Channel: ChannelConfig{
			EchoDelayMS:          getEnvAsInt("CHANNEL_ECHO_DELAY_MS", 500),
			ReconnectMaxAttempts: getEnvAsInt("CHANNEL_RECONNECT_MAX_ATTEMPTS", 5),
			ReconnectDelayMS:     getEnvAsInt("CHANNEL_RECONNECT_DELAY_MS", 1000),
		},
		Tickets: TicketsConfig{
			FetchDelayMS: getEnvAsInt("TICKETS_FETCH_DELAY_MS", 1000),
		},
		Dashboard: DashboardConfig{
			FetchDelayMS:           getEnvAsInt("DASHBOARD_FETCH_DELAY_MS", 1000),
			RefreshIntervalSeconds: getEnvAsInt("DASHBOARD_REFRESH_INTERVAL_SECONDS", 30),
			MaxRecentActivity:      getEnvAsInt("DASHBOARD_MAX_RECENT_ACTIVITY", 50),
		},
		Notifications: NotificationsConfig{
			DismissAfterMS: getEnvAsInt("NOTIFICATIONS_DISMISS_AFTER_MS", 5000),
			ExitAfterMS:    getEnvAsInt("NOTIFICATIONS_EXIT_AFTER_MS", 300),
		},
	}

	if cfg.Channel.ReconnectMaxAttempts < 0 {
		return nil, fmt.Errorf("invalid CHANNEL_RECONNECT_MAX_ATTEMPTS: %d", cfg.Channel.ReconnectMaxAttempts)
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// EchoDelay returns the simulated round-trip delay.
func (c ChannelConfig) EchoDelay() time.Duration {
	return time.Duration(c.EchoDelayMS) * time.Millisecond
}

// ReconnectDelay returns the base reconnect delay.
func (c ChannelConfig) ReconnectDelay() time.Duration {
	return time.Duration(c.ReconnectDelayMS) * time.Millisecond
}

// FetchDelay returns the simulated ticket fetch latency.
func (t TicketsConfig) FetchDelay() time.Duration {
	return time.Duration(t.FetchDelayMS) * time.Millisecond
}

// FetchDelay returns the simulated stats fetch latency.
func (d DashboardConfig) FetchDelay() time.Duration {
	return time.Duration(d.FetchDelayMS) * time.Millisecond
}

// RefreshInterval returns the periodic refresh cadence.
func (d DashboardConfig) RefreshInterval() time.Duration {
	return time.Duration(d.RefreshIntervalSeconds) * time.Second
}

// DismissAfter returns the auto-dismiss delay for toasts.
func (n NotificationsConfig) DismissAfter() time.Duration {
	return time.Duration(n.DismissAfterMS) * time.Millisecond
}

// ExitAfter returns the exit-animation delay before removal.
func (n NotificationsConfig) ExitAfter() time.Duration {
	return time.Duration(n.ExitAfterMS) * time.Millisecond
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
