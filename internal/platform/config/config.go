package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultJWTSecret = "super-secret-key"

type Config struct {
	APIPort  string
	AppEnv   string
	LogLevel string

	JWTKey          []byte
	JWTAlgorithm    string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	BcryptCost      int

	BasicAuthUsername string
	BasicAuthPassword string
	BasicAuthRealm    string

	LoginRateLimitPerMinute int
	LoginRateLimitBurst     int

	SeedDemoUsers bool

	// TrustProxyHeaders enables X-Forwarded-For / X-Real-IP handling. Only set
	// it when the service sits behind a proxy that overwrites those headers.
	TrustProxyHeaders bool
}

// Load reads an optional .env file and then the environment. The result is
// passed explicitly to the components that need it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		APIPort:                 getEnv("API_PORT", "8080"),
		AppEnv:                  strings.ToLower(getEnv("APP_ENV", "development")),
		LogLevel:                getEnv("LOG_LEVEL", "info"),
		JWTKey:                  []byte(getEnv("JWT_SECRET", defaultJWTSecret)),
		JWTAlgorithm:            strings.ToUpper(getEnv("JWT_ALGORITHM", "HS256")),
		AccessTokenTTL:          time.Duration(getEnvAsInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30)) * time.Minute,
		RefreshTokenTTL:         time.Duration(getEnvAsInt("REFRESH_TOKEN_EXPIRE_DAYS", 7)) * 24 * time.Hour,
		BcryptCost:              getEnvAsInt("BCRYPT_COST", 10),
		BasicAuthUsername:       getEnv("BASIC_AUTH_USERNAME", "admin"),
		BasicAuthPassword:       getEnv("BASIC_AUTH_PASSWORD", "secret"),
		BasicAuthRealm:          getEnv("BASIC_AUTH_REALM", "Restricted"),
		LoginRateLimitPerMinute: getEnvAsInt("LOGIN_RATE_LIMIT_PER_MINUTE", 20),
		LoginRateLimitBurst:     getEnvAsInt("LOGIN_RATE_LIMIT_BURST", 5),
		SeedDemoUsers:           getEnvAsBool("SEED_DEMO_USERS", true),
		TrustProxyHeaders:       getEnvAsBool("TRUST_PROXY_HEADERS", false),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if _, err := strconv.Atoi(c.APIPort); err != nil {
		return fmt.Errorf("invalid API_PORT: %s", c.APIPort)
	}
	if len(c.JWTKey) == 0 {
		return errors.New("JWT_SECRET must not be empty")
	}
	switch c.JWTAlgorithm {
	case "HS256", "HS384", "HS512":
	default:
		return fmt.Errorf("unsupported JWT_ALGORITHM: %s", c.JWTAlgorithm)
	}
	if c.AccessTokenTTL <= 0 || c.RefreshTokenTTL <= 0 {
		return errors.New("token lifetimes must be positive")
	}
	if c.IsProduction() && string(c.JWTKey) == defaultJWTSecret {
		return errors.New("JWT_SECRET must be set in production")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production" || c.AppEnv == "prod"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return fallback
}
