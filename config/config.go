// File: /config/config.go
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string

	// Calendar feed
	CalendarEmail   string
	CalendarICSURL  string
	CORSProxies     []string // ordered, first success wins; empty = direct fetch
	CacheTTL        time.Duration
	RefreshInterval time.Duration

	// Email Configuration
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
	AdminEmail   string
}

func Load() *Config {
	// Optional .env for local development; a missing file is fine.
	_ = godotenv.Load()

	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "2525"))
	cacheTTL, _ := time.ParseDuration(getEnv("EVENTS_CACHE_TTL", "5m"))
	refresh, _ := time.ParseDuration(getEnv("FEED_REFRESH_INTERVAL", "5m"))

	calendarEmail := getEnv("CALENDAR_EMAIL", "events@example.com")

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", "user:password@tcp(localhost:3306)/eventshub?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key"),

		CalendarEmail:   calendarEmail,
		CalendarICSURL:  getEnv("CALENDAR_ICS_URL", defaultICSURL(calendarEmail)),
		CORSProxies:     splitList(getEnv("CORS_PROXIES", "")),
		CacheTTL:        cacheTTL,
		RefreshInterval: refresh,

		// Email settings
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     smtpPort,
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		FromEmail:    getEnv("FROM_EMAIL", "noreply@eventshub.local"),
		FromName:     getEnv("FROM_NAME", "Events Hub"),
		AdminEmail:   getEnv("ADMIN_EMAIL", calendarEmail),
	}
}

func defaultICSURL(calendarEmail string) string {
	return "https://calendar.google.com/calendar/ical/" + calendarEmail + "/public/basic.ics"
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
