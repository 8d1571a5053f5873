package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds every environment-driven setting of the API server.
type Config struct {
	Port           string
	Env            string
	MongoURI       string
	MongoDatabase  string
	JWTSecret      string
	TokenTTL       time.Duration
	RequestTimeout time.Duration
	CORSOrigins    string
	MemberBadgeURL string

	Payment PaymentConfig
	Minio   MinioConfig
	Redis   RedisConfig
}

type PaymentConfig struct {
	StripeSecretKey string
	AmountCents     int64
	Currency        string
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	PublicURL string
}

type RedisConfig struct {
	Addr            string
	Password        string
	DB              int
	WritesPerMinute int
}

const defaultBadgeURL = "https://i.ibb.co.com/PmPQ4Qr/gold.jpg"

// Load reads .env (if present) and the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it, using environment variables")
	}
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "5000")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("MONGO_DB", "threadHive")
	v.SetDefault("TOKEN_TTL", "4h")
	v.SetDefault("REQUEST_TIMEOUT", "10s")
	v.SetDefault("CORS_ORIGINS", "http://localhost:5173")
	v.SetDefault("MEMBER_BADGE_URL", defaultBadgeURL)
	v.SetDefault("MEMBERSHIP_PRICE_CENTS", 20000)
	v.SetDefault("MEMBERSHIP_CURRENCY", "usd")
	v.SetDefault("MINIO_ENDPOINT", "localhost:9000")
	v.SetDefault("MINIO_ACCESS_KEY", "minioadmin")
	v.SetDefault("MINIO_SECRET_KEY", "minioadmin")
	v.SetDefault("MINIO_BUCKET", "thread-hive-media")
	v.SetDefault("MINIO_USE_SSL", false)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("RATE_LIMIT_WRITES_PER_MINUTE", 30)
	return v
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Port:           v.GetString("PORT"),
		Env:            v.GetString("APP_ENV"),
		MongoURI:       mongoURI(v),
		MongoDatabase:  v.GetString("MONGO_DB"),
		JWTSecret:      v.GetString("ACCESS_TOKEN_SECRET"),
		TokenTTL:       v.GetDuration("TOKEN_TTL"),
		RequestTimeout: v.GetDuration("REQUEST_TIMEOUT"),
		CORSOrigins:    v.GetString("CORS_ORIGINS"),
		MemberBadgeURL: v.GetString("MEMBER_BADGE_URL"),
		Payment: PaymentConfig{
			StripeSecretKey: v.GetString("STRIPE_SECRET_KEY"),
			AmountCents:     v.GetInt64("MEMBERSHIP_PRICE_CENTS"),
			Currency:        strings.ToLower(v.GetString("MEMBERSHIP_CURRENCY")),
		},
		Minio: MinioConfig{
			Endpoint:  v.GetString("MINIO_ENDPOINT"),
			AccessKey: v.GetString("MINIO_ACCESS_KEY"),
			SecretKey: v.GetString("MINIO_SECRET_KEY"),
			Bucket:    v.GetString("MINIO_BUCKET"),
			UseSSL:    v.GetBool("MINIO_USE_SSL"),
			PublicURL: v.GetString("MINIO_PUBLIC_URL"),
		},
		Redis: RedisConfig{
			Addr:            v.GetString("REDIS_ADDR"),
			Password:        v.GetString("REDIS_PASSWORD"),
			DB:              v.GetInt("REDIS_DB"),
			WritesPerMinute: v.GetInt("RATE_LIMIT_WRITES_PER_MINUTE"),
		},
	}

	if cfg.Minio.PublicURL == "" {
		scheme := "http"
		if cfg.Minio.UseSSL {
			scheme = "https"
		}
		cfg.Minio.PublicURL = fmt.Sprintf("%s://%s", scheme, cfg.Minio.Endpoint)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.JWTSecret == "" {
		return errors.New("ACCESS_TOKEN_SECRET is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", c.RequestTimeout)
	}
	if c.Payment.AmountCents <= 0 {
		return fmt.Errorf("MEMBERSHIP_PRICE_CENTS must be positive, got %d", c.Payment.AmountCents)
	}
	return nil
}

// IsDevelopment reports whether the server runs with development logging.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// mongoURI prefers MONGO_URI and falls back to the Atlas cluster form built from
// DB_USER and DB_PASS, then to a local server.
func mongoURI(v *viper.Viper) string {
	if uri := v.GetString("MONGO_URI"); uri != "" {
		return uri
	}
	user, pass := v.GetString("DB_USER"), v.GetString("DB_PASS")
	if user != "" && pass != "" {
		host := v.GetString("DB_HOST")
		if host == "" {
			host = "cluster0.fdepx.mongodb.net"
		}
		return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority&appName=Cluster0", url.QueryEscape(user), url.QueryEscape(pass), host)
	}
	return "mongodb://localhost:27017"
}
