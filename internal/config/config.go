package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API       *APIConfig       `mapstructure:"api"`
	Gin       *GinConfig       `mapstructure:"gin"`
	Postgres  *PostgresConfig  `mapstructure:"postgres"`
	Redis     *RedisConfig     `mapstructure:"redis"`
	RateLimit *RateLimitConfig `mapstructure:"rate_limit"`
	Cache     *CacheConfig     `mapstructure:"cache"`
	RabbitMQ  *RabbitMQConfig  `mapstructure:"rabbitmq"`
	SMS       *SMSConfig       `mapstructure:"sms"`
	OAuth     *OAuthConfig     `mapstructure:"oauth"`
	Booking   *BookingConfig   `mapstructure:"booking"`
	Payment   *PaymentConfig   `mapstructure:"payment"`
	Jobs      *JobsConfig      `mapstructure:"jobs"`
}

type APIConfig struct {
	Port               string        `mapstructure:"port"`
	BaseURL            string        `mapstructure:"base_url"`
	Environment        string        `mapstructure:"environment"`
	JWTSigningKey      string        `mapstructure:"jwt_signing_key"`
	JWTTTL             time.Duration `mapstructure:"jwt_ttl"`
	AllowedCORSDomains []string      `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

func (c *PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DB, c.SSLMode)
}

// RedisConfig is optional. An empty Addr disables rate limiting and caching.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type RateLimitConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	Capacity       int           `mapstructure:"capacity"`
	RefillTokens   int           `mapstructure:"refill_tokens"`
	RefillInterval time.Duration `mapstructure:"refill_interval"`
	TTL            time.Duration `mapstructure:"ttl"`
	KeyStrategy    string        `mapstructure:"key_strategy"`
	Prefix         string        `mapstructure:"prefix"`
}

type CacheConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	TTL          time.Duration `mapstructure:"ttl"`
	Prefix       string        `mapstructure:"prefix"`
	MaxBodyBytes int           `mapstructure:"max_body_bytes"`
}

// RabbitMQConfig is optional. An empty URL disables event publishing.
type RabbitMQConfig struct {
	URL         string        `mapstructure:"url"`
	Queue       string        `mapstructure:"queue"`
	DialTimeout time.Duration `mapstructure:"dial_timeout"`
}

// SMSConfig is optional. An empty URL makes every notification a logged no-op.
type SMSConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type OAuthConfig struct {
	GoogleClientID     string `mapstructure:"google_client_id"`
	GoogleClientSecret string `mapstructure:"google_client_secret"`
	RedirectURL        string `mapstructure:"redirect_url"`
	FrontendRedirect   string `mapstructure:"frontend_redirect_url"`
}

type BookingConfig struct {
	EnforceCapacity bool `mapstructure:"enforce_capacity"`
}

type PaymentConfig struct {
	WebhookSecret string `mapstructure:"webhook_secret"`
}

type JobsConfig struct {
	RemindersEnabled bool          `mapstructure:"reminders_enabled"`
	ReminderSchedule string        `mapstructure:"reminder_schedule"`
	ReminderLead     time.Duration `mapstructure:"reminder_lead"`
	ReminderWindow   time.Duration `mapstructure:"reminder_window"`
}

func Load(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	conf := &AppConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	// Only a restart applies changes; the watcher makes edits visible in the logs.
	v.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Warn("config file changed, restart to apply", zap.String("file", e.Name), zap.String("op", e.Op.String()))
	})
	v.WatchConfig()

	return conf, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.port", "8080")
	v.SetDefault("api.environment", "development")
	v.SetDefault("api.jwt_ttl", 24*time.Hour)
	v.SetDefault("gin.mode", "debug")
	v.SetDefault("postgres.ssl_mode", "disable")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.capacity", 60)
	v.SetDefault("rate_limit.refill_tokens", 1)
	v.SetDefault("rate_limit.refill_interval", time.Second)
	v.SetDefault("rate_limit.ttl", 10*time.Minute)
	v.SetDefault("rate_limit.key_strategy", "ip_route")
	v.SetDefault("rate_limit.prefix", "rl")
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.ttl", 30*time.Second)
	v.SetDefault("cache.prefix", "cache")
	v.SetDefault("cache.max_body_bytes", 1<<20)
	v.SetDefault("rabbitmq.url", "")
	v.SetDefault("rabbitmq.queue", "payment.confirmed")
	v.SetDefault("rabbitmq.dial_timeout", 2*time.Second)
	v.SetDefault("sms.url", "")
	v.SetDefault("sms.timeout", 5*time.Second)
	v.SetDefault("oauth.google_client_id", "")
	v.SetDefault("oauth.google_client_secret", "")
	v.SetDefault("oauth.redirect_url", "")
	v.SetDefault("oauth.frontend_redirect_url", "http://localhost:3000/oauth2/redirect")
	v.SetDefault("booking.enforce_capacity", true)
	v.SetDefault("payment.webhook_secret", "")
	v.SetDefault("jobs.reminders_enabled", false)
	v.SetDefault("jobs.reminder_schedule", "*/5 * * * *")
	v.SetDefault("jobs.reminder_lead", time.Hour)
	v.SetDefault("jobs.reminder_window", 5*time.Minute)
}
