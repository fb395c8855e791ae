package configs

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type DatabaseConfig struct {
	URL string
}

type RESTConfig struct {
	Port           string
	AllowedOrigins []string
}

type AuthConfig struct {
	JWTSigningKey  string
	AccessTokenTTL int // minutes
	TrialDays      int
}

type RabbitMQConfig struct {
	Enabled bool
	URL     string
}

type StdoutLogConfig struct {
	Level string
}

type FluentBitConfig struct {
	Enabled bool
	Host    string
	Port    int
	Level   string
}

// AppConfig holds the whole service configuration.
type AppConfig struct {
	AppName      string
	Database     DatabaseConfig
	Rest         RESTConfig
	Auth         AuthConfig
	RabbitMQ     RabbitMQConfig
	StdoutLogger StdoutLogConfig
	FluentBit    FluentBitConfig
}

// LoadConfig reads the configuration from environment variables, loading a
// .env file first when one is present.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		log.Printf("Info: no .env file loaded (path: %v): %v", envPath, err)
	}

	cfg := &AppConfig{}

	cfg.AppName = getEnvAsString("APP_NAME", "listings-service")

	cfg.Database.URL = os.Getenv("DATABASE_URL")
	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	cfg.Rest.Port = getEnvAsString("PORT", "8080")
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.Rest.AllowedOrigins = splitAndTrim(origins)
	} else {
		cfg.Rest.AllowedOrigins = []string{"http://localhost:5173"}
	}

	cfg.Auth.JWTSigningKey = os.Getenv("JWT_SIGNING_KEY")
	if cfg.Auth.JWTSigningKey == "" {
		return nil, fmt.Errorf("JWT_SIGNING_KEY environment variable is required")
	}
	cfg.Auth.AccessTokenTTL = getEnvAsInt("ACCESS_TOKEN_TTL_MINUTES", 60)
	cfg.Auth.TrialDays = getEnvAsInt("TRIAL_DAYS", 14)

	cfg.RabbitMQ.Enabled = getEnvAsBool("RABBITMQ_ENABLED", false)
	if cfg.RabbitMQ.Enabled {
		cfg.RabbitMQ.URL = os.Getenv("RABBITMQ_URL")
		if cfg.RabbitMQ.URL == "" {
			log.Println("WARNING: RABBITMQ_ENABLED is true, but RABBITMQ_URL is not set. Disabling event publishing.")
			cfg.RabbitMQ.Enabled = false
		}
	}

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "debug")

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}
		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	return cfg, nil
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt reads an env variable as int, logging and falling back to the
// default when the value cannot be parsed.
func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: environment variable %s (value: %s) could not be parsed as int: %v. Using default: %d", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueBool, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: environment variable %s (value: %s) could not be parsed as bool: %v. Using default: %t", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueBool
}

func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
