package config

import (
	"errors"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Port      string `env:"PORT" envDefault:"4000"`
	ClientURL string `env:"CLIENT_URL" envDefault:"*"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`

	PostgresURI string `env:"POSTGRES_URI"`
	RedisAddr   string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass   string `env:"REDIS_PASSWORD"`
	RedisDB     int    `env:"REDIS_DB" envDefault:"0"`

	// Secrets. EncryptionKey feeds the scrypt KDF of the field codec,
	// RSAPrivateKey is the PEM used by the transport decryption middleware,
	// JWTSecret signs capability tokens.
	EncryptionKey string `env:"ENCRYPTION_KEY"`
	RSAPrivateKey string `env:"RSA_PRIVATE_KEY"`
	JWTSecret     string `env:"JWT_SECRET_KEY" envDefault:"your-secret-key"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SMTPFrom     string `env:"SMTP_FROM_EMAIL"`
	APILink      string `env:"API_LINK"`

	UploadDir     string   `env:"UPLOAD_DIR" envDefault:"./uploads"`
	RetentionDays int      `env:"RETENTION_DAYS" envDefault:"45"`
	TrustedIPs    []string `env:"TRUSTED_IPS" envSeparator:","`

	// Token minting is an operator-only surface; the route is not registered
	// unless this is set.
	EnableTokenMint bool `env:"ENABLE_TOKEN_MINT"`
}

func New() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if cfg.PostgresURI == "" {
		return nil, errors.New("POSTGRES_URI environment variable is not set")
	}
	if cfg.EncryptionKey == "" {
		return nil, errors.New("ENCRYPTION_KEY environment variable is not set")
	}
	return cfg, nil
}
