package config

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// MinSessionKeyLen is the shortest accepted cookie signing key.
const MinSessionKeyLen = 32

type Config struct {
	ListenPort      string        `env:"HUB_LISTEN_PORT" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"HUB_SHUTDOWN_TIMEOUT" envDefault:"5s"`

	LogLevel  string `env:"HUB_LOG_LEVEL" envDefault:"info"` // "debug" | "info" | "warn" | "error"
	PrettyLog bool   `env:"HUB_PRETTY_LOG" envDefault:"true"` // true => zap dev (color), false => zap prod (JSON)

	// Backend API
	APIURL     string        `env:"HUB_API_URL,required,notEmpty"`
	APITimeout time.Duration `env:"HUB_API_TIMEOUT" envDefault:"0s"` // 0 = no client timeout

	// Admin gating
	AdminIDs      IDList `env:"HUB_ADMIN_IDS"`                                  // suggestions review allow-list
	NotifyAdminID string `env:"HUB_NOTIFY_ADMIN_ID" envDefault:"641407863"` // composer admin id

	// Telegram session
	BotToken       string        `env:"HUB_BOT_TOKEN"` // optional, enables init-data verification
	InitDataMaxAge time.Duration `env:"HUB_INIT_DATA_MAX_AGE" envDefault:"24h"`
	SessionKey     string        `env:"HUB_SESSION_KEY,required,notEmpty"`
	SessionName    string        `env:"HUB_SESSION_NAME" envDefault:"linkhub_session"`
	SecureCookies  bool          `env:"HUB_SECURE_COOKIES" envDefault:"true"`

	// Link catalog
	LinksFile      string        `env:"HUB_LINKS_FILE"` // optional override of the embedded catalog
	ReloadInterval time.Duration `env:"HUB_RELOAD_INTERVAL" envDefault:"1h"`
	GCInterval     time.Duration `env:"HUB_GC_INTERVAL" envDefault:"24h"`

	// Presentation
	Timezone    string `env:"HUB_TIMEZONE" envDefault:"Europe/Moscow"`
	DefaultLang string `env:"HUB_DEFAULT_LANG" envDefault:"ru"`
	location    *time.Location

	// Redis (optional, empty address disables it)
	RedisAddr             string        `env:"HUB_REDIS_ADDR"`
	RedisUser             string        `env:"HUB_REDIS_USERNAME" envDefault:"default"`
	RedisPassword         string        `env:"HUB_REDIS_PASSWORD"`
	RedisPasswordRequired bool          `env:"HUB_REDIS_PASSWORD_REQUIRED" envDefault:"false"`
	RedisDB               int           `env:"HUB_REDIS_DB" envDefault:"0"`
	RedisDT               time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"5s"`
	RedisRT               time.Duration `env:"REDIS_READ_TIMEOUT" envDefault:"3s"`
	RedisWT               time.Duration `env:"REDIS_WRITE_TIMEOUT" envDefault:"3s"`
	RedisMaxWait          time.Duration `env:"REDIS_MAX_WAIT" envDefault:"10s"`
	RedisPingTimeout      time.Duration `env:"REDIS_PING_TIMEOUT" envDefault:"5s"`
	RedisPoolSize         int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	RedisConnectTimeout   time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
	RedisRetryInterval    time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"2s"`
	RedisWarnThreshold    int           `env:"REDIS_WARN_THRESHOLD" envDefault:"3"`

	// Access restrictions
	AllowedHosts   List `env:"HUB_ALLOWED_HOSTS"`   // optional, restrict ops endpoints to these Host headers
	AllowedCIDRS   List `env:"HUB_ALLOWED_CIDRS"`   // optional, restrict ops endpoints to these IPs/CIDRs
	TrustProxy     bool `env:"HUB_TRUST_PROXY" envDefault:"true"`
	AllowedOrigins List `env:"HUB_ALLOWED_ORIGINS"` // CORS allow-list

	// Tracing
	OTelEndpoint string `env:"HUB_OTEL_ENDPOINT"` // empty = tracing off
}

// Load reads an optional .env file, parses the environment and panics on invalid configuration.
func Load() *Config {
	// A missing .env is the normal case in containers.
	_ = godotenv.Load()

	cfg, err := Parse()
	if err != nil {
		panic(fmt.Sprintf("❌ FATAL: %v", err))
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		log.Printf("[DEBUG] cfg: %+v\n", cfg.Redacted())
	}

	return cfg
}

// Parse builds a Config from the current environment.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid HUB_TIMEZONE %q: %w", cfg.Timezone, err)
	}
	cfg.location = loc

	return &cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if len(c.SessionKey) < MinSessionKeyLen {
		errs = append(errs, fmt.Errorf("HUB_SESSION_KEY must be at least %d bytes", MinSessionKeyLen))
	}
	if c.RedisEnabled() && c.RedisPasswordRequired && c.RedisPassword == "" {
		errs = append(errs, errors.New("HUB_REDIS_PASSWORD is required when HUB_REDIS_PASSWORD_REQUIRED=true"))
	}
	if c.ReloadInterval <= 0 {
		errs = append(errs, errors.New("HUB_RELOAD_INTERVAL must be > 0"))
	}
	if c.GCInterval <= 0 {
		errs = append(errs, errors.New("HUB_GC_INTERVAL must be > 0"))
	}
	if c.APITimeout < 0 {
		errs = append(errs, errors.New("HUB_API_TIMEOUT must be >= 0"))
	}
	return errors.Join(errs...)
}

// Location returns the display time zone resolved from Timezone.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

// RedisEnabled reports whether a Redis address is configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

// Redacted returns a copy safe to print.
func (c *Config) Redacted() Config {
	cp := *c
	cp.SessionKey = "***REDACTED***"
	if cp.BotToken != "" {
		cp.BotToken = "***REDACTED***"
	}
	if cp.RedisPassword != "" {
		cp.RedisPassword = "***REDACTED***"
	}
	if cp.RedisUser != "" {
		cp.RedisUser = "***REDACTED***"
	}
	return cp
}

// List is a comma-separated environment value.
// Surrounding spaces and quotes are stripped from each entry, empty entries dropped.
type List []string

func (l *List) UnmarshalText(text []byte) error {
	*l = splitAndTrim(string(text))
	return nil
}

// IDList is a comma-separated list of numeric user ids.
type IDList []int64

func (l *IDList) UnmarshalText(text []byte) error {
	parts := splitAndTrim(string(text))
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid user id %q", part)
		}
		ids = append(ids, id)
	}
	*l = ids
	return nil
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
