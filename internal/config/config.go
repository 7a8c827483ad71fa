package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // APP_TIMEZONE must resolve on hosts without zoneinfo

	"github.com/joho/godotenv"
)

// Database drivers understood by the database package.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// CORSAllowedOrigins lists browser origins allowed to call the API.
	// "*" allows any origin.
	CORSAllowedOrigins []string

	// Database
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBPath     string
	DBLog      bool

	MigrationsPath string

	// Timezone is the IANA name of the zone in which "today" is evaluated
	// for transaction dates.
	Timezone string
	location *time.Location
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// Database
		DBDriver:   getEnv("DB_DRIVER", DriverPostgres),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "ledger"),
		DBPassword: getEnv("DB_PASSWORD", "ledger"),
		DBName:     getEnv("DB_NAME", "ledger"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		DBPath:     getEnv("DB_PATH", "data/ledger.db"),

		MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations"),
		Timezone:       getEnv("APP_TIMEZONE", "UTC"),

		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}

	logSQL, err := strconv.ParseBool(getEnv("DB_LOG", "false"))
	if err != nil {
		log.Printf("Warning: invalid DB_LOG value '%s', SQL logging disabled\n", os.Getenv("DB_LOG"))
	}
	config.DBLog = logSQL

	if config.DBDriver != DriverPostgres && config.DBDriver != DriverSQLite {
		log.Printf("Warning: unknown DB_DRIVER '%s', falling back to %s\n", config.DBDriver, DriverPostgres)
		config.DBDriver = DriverPostgres
	}

	loc, err := time.LoadLocation(config.Timezone)
	if err != nil {
		log.Printf("Warning: invalid APP_TIMEZONE value '%s', falling back to UTC\n", config.Timezone)
		config.Timezone = "UTC"
		loc = time.UTC
	}
	config.location = loc

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// Location returns the zone used to decide where "today" ends.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

// IsProduction reports whether ENV is "production".
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// splitList splits a comma-separated value, dropping blank entries.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
