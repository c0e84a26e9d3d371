package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/idna"
)

// Store drivers selected from the DATABASE_URL scheme.
const (
	StorePostgres = "postgres"
	StoreMongo    = "mongo"
)

const (
	envDevelopment       = "development"
	defaultMongoDatabase = "hanzala-project"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// MailConfig selects and configures the outbound email provider.
type MailConfig struct {
	Provider       string
	FromEmail      string
	FromName       string
	AdminEmail     string
	SendGridAPIKey string
	AWSRegion      string
	WebhookURL     string
	Timeout        time.Duration
}

// AdminAuthConfig holds the single admin credential used to issue tokens.
type AdminAuthConfig struct {
	Email        string
	PasswordHash string
	JWTSecret    string
	TokenTTL     time.Duration
}

// Enabled reports whether admin routes must be protected.
func (a AdminAuthConfig) Enabled() bool {
	return a.PasswordHash != "" && a.JWTSecret != ""
}

// Config aggregates application-wide configuration values.
type Config struct {
	Env                 string
	Port                string
	DatabaseURL         string
	MongoDatabase       string
	AllowedOrigins      []string
	Mail                MailConfig
	RedisURL            string
	ReviewsCacheTTL     time.Duration
	ReviewDefaultStatus string
	LeadServices        []string
	LeadDefaultService  string
	PhoneDefaultRegion  string
	RateLimitSubmit     RateLimitConfig
	Admin               AdminAuthConfig
	LogLevel            string
	LogFile             string
}

// IsDevelopment reports whether error details may be exposed to clients.
func (c *Config) IsDevelopment() bool {
	return c.Env == envDevelopment
}

// StoreDriver derives the persistence backend from the database URL scheme.
func (c *Config) StoreDriver() (string, error) {
	return storeDriver(c.DatabaseURL)
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Env:                 strings.ToLower(getEnv("APP_ENV", envDevelopment)),
		Port:                getEnv("PORT", "4000"),
		DatabaseURL:         getEnv("DATABASE_URL", "mongodb://localhost:27017/"+defaultMongoDatabase),
		RedisURL:            os.Getenv("REDIS_URL"),
		ReviewsCacheTTL:     parseDuration(getEnv("REVIEWS_CACHE_TTL", "5m"), 5*time.Minute),
		ReviewDefaultStatus: strings.ToLower(getEnv("REVIEW_DEFAULT_STATUS", "pending")),
		LeadServices:        splitList(getEnv("LEAD_SERVICES", "website-creation,marketing,general")),
		LeadDefaultService:  getEnv("LEAD_DEFAULT_SERVICE", "general"),
		PhoneDefaultRegion:  strings.ToUpper(getEnv("PHONE_DEFAULT_REGION", "US")),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFile:             os.Getenv("LOG_FILE"),
		Mail: MailConfig{
			Provider:       strings.ToLower(getEnv("MAIL_PROVIDER", "log")),
			FromEmail:      os.Getenv("MAIL_FROM"),
			FromName:       getEnv("MAIL_FROM_NAME", "Hanzala Project Team"),
			AdminEmail:     os.Getenv("ADMIN_EMAIL"),
			SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
			AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
			WebhookURL:     os.Getenv("MAIL_WEBHOOK_URL"),
			Timeout:        parseDuration(getEnv("NOTIFY_TIMEOUT", "10s"), 10*time.Second),
		},
		Admin: AdminAuthConfig{
			Email:        strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_LOGIN_EMAIL"))),
			PasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
			JWTSecret:    os.Getenv("ADMIN_JWT_SECRET"),
			TokenTTL:     parseDuration(getEnv("ADMIN_JWT_TTL", "24h"), 24*time.Hour),
		},
	}

	if _, err := cfg.StoreDriver(); err != nil {
		return nil, err
	}
	cfg.MongoDatabase = getEnv("MONGODB_DATABASE", mongoDatabaseFromURL(cfg.DatabaseURL))

	origins, err := normalizeOrigins(splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:3001")))
	if err != nil {
		return nil, fmt.Errorf("invalid CORS_ALLOWED_ORIGINS value: %w", err)
	}
	cfg.AllowedOrigins = origins

	rl, err := parseRateLimit(getEnv("RATE_LIMIT_SUBMIT", "20/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_SUBMIT value: %w", err)
	}
	cfg.RateLimitSubmit = rl

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.ReviewDefaultStatus {
	case "pending", "approved":
	default:
		return fmt.Errorf("invalid REVIEW_DEFAULT_STATUS %q: expected pending or approved", c.ReviewDefaultStatus)
	}

	if len(c.LeadServices) == 0 {
		return errors.New("LEAD_SERVICES must list at least one service")
	}
	if !contains(c.LeadServices, c.LeadDefaultService) {
		return fmt.Errorf("LEAD_DEFAULT_SERVICE %q is not listed in LEAD_SERVICES", c.LeadDefaultService)
	}

	switch c.Mail.Provider {
	case "log":
	case "sendgrid":
		if c.Mail.SendGridAPIKey == "" {
			return errors.New("SENDGRID_API_KEY is required for the sendgrid mail provider")
		}
	case "ses":
		if c.Mail.FromEmail == "" {
			return errors.New("MAIL_FROM is required for the ses mail provider")
		}
	case "webhook":
		if c.Mail.WebhookURL == "" {
			return errors.New("MAIL_WEBHOOK_URL is required for the webhook mail provider")
		}
	default:
		return fmt.Errorf("unsupported MAIL_PROVIDER %q", c.Mail.Provider)
	}

	if c.Admin.PasswordHash != "" && c.Admin.JWTSecret == "" {
		return errors.New("ADMIN_JWT_SECRET is required when ADMIN_PASSWORD_HASH is set")
	}
	return nil
}

func storeDriver(dsn string) (string, error) {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return StorePostgres, nil
	case strings.HasPrefix(lower, "mongodb://"), strings.HasPrefix(lower, "mongodb+srv://"):
		return StoreMongo, nil
	default:
		return "", fmt.Errorf("unsupported DATABASE_URL scheme in %q", redactDSN(dsn))
	}
}

func mongoDatabaseFromURL(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil {
		return defaultMongoDatabase
	}
	if name := strings.Trim(u.Path, "/"); name != "" {
		return name
	}
	return defaultMongoDatabase
}

func redactDSN(dsn string) string {
	if i := strings.Index(dsn, "://"); i >= 0 {
		return dsn[:i+3] + "..."
	}
	return "..."
}

// normalizeOrigins converts internationalised hostnames to their ASCII form so
// they compare equal to the Origin header browsers send.
func normalizeOrigins(values []string) ([]string, error) {
	origins := make([]string, 0, len(values))
	for _, raw := range values {
		if raw == "*" {
			origins = append(origins, raw)
			continue
		}
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("malformed origin %q", raw)
		}
		host, err := idna.Lookup.ToASCII(u.Hostname())
		if err != nil {
			return nil, fmt.Errorf("origin %q: %w", raw, err)
		}
		if port := u.Port(); port != "" {
			host += ":" + port
		}
		origins = append(origins, strings.ToLower(u.Scheme)+"://"+host)
	}
	return origins, nil
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	if strings.EqualFold(strings.TrimSpace(value), "off") {
		return RateLimitConfig{}, nil
	}

	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseDuration(input string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(input)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
