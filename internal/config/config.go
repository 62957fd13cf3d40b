package config

import (
	"errors"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const DefaultJWTSecret = "change-me-in-production"

type Config struct {
	AppEnv            string        `env:"APP_ENV" env-default:"development"`
	AppPort           string        `env:"APP_PORT" env-default:"8080"`
	AppName           string        `env:"APP_NAME" env-default:"taskflow"`
	AppVersion        string        `env:"APP_VERSION" env-default:"dev"`
	LogLevel          string        `env:"LOG_LEVEL" env-default:"info"`
	DbHost            string        `env:"MYSQL_HOST" env-default:"db"`
	DbPort            string        `env:"MYSQL_PORT" env-default:"3306"`
	DbUser            string        `env:"MYSQL_USER" env-default:"taskflow"`
	DbPassword        string        `env:"MYSQL_PASSWORD" env-default:"taskflow"`
	DbName            string        `env:"MYSQL_DATABASE" env-default:"taskflow"`
	DbParams          string        `env:"MYSQL_PARAMS" env-default:"parseTime=true&multiStatements=true&clientFoundRows=true"`
	DbMaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" env-default:"25"`
	DbMaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" env-default:"5"`
	DbAutoMigrate     bool          `env:"DB_AUTO_MIGRATE" env-default:"true"`
	JWTSecret         string        `env:"JWT_SECRET" env-default:"change-me-in-production"`
	JWTIssuer         string        `env:"JWT_ISSUER" env-default:"taskflow"`
	JWTTTL            time.Duration `env:"JWT_TTL" env-default:"168h"`
	BcryptCost        int           `env:"BCRYPT_COST" env-default:"10"`
	TrustedProxiesRaw string        `env:"TRUSTED_PROXIES"`
	CorsOriginsRaw    string        `env:"CORS_ORIGINS" env-default:"*"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
	TranslationFolder string        `env:"TRANSLATION_FOLDER" env-default:"pkg/translator/translation"`

	TrustedProxies []string
	CorsOrigins    []string
}

// LoadConfig reads an optional .env file, then the process environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}

	cfg.TrustedProxies = splitList(cfg.TrustedProxiesRaw)
	cfg.CorsOrigins = splitList(cfg.CorsOriginsRaw)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET must not be empty")
	}
	if c.IsProduction() && c.JWTSecret == DefaultJWTSecret {
		return errors.New("JWT_SECRET must be set in production")
	}
	if c.JWTTTL <= 0 {
		return errors.New("JWT_TTL must be positive")
	}
	return nil
}

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil
	}

	return items
}
