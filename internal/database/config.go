package database

import (
	"fmt"
	"net/url"

	"github.com/jiks2239/mytns-finance-manager-sub000/internal/config"
)

// Config holds database configuration
type Config struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string

	// Path is the SQLite file, or ":memory:".
	Path string

	LogSQL         bool
	MigrationsPath string
}

// NewConfig builds the database configuration from the application config.
func NewConfig(cfg *config.Config) *Config {
	return &Config{
		Driver:         cfg.DBDriver,
		Host:           cfg.DBHost,
		Port:           cfg.DBPort,
		User:           cfg.DBUser,
		Password:       cfg.DBPassword,
		DBName:         cfg.DBName,
		SSLMode:        cfg.DBSSLMode,
		Path:           cfg.DBPath,
		LogSQL:         cfg.DBLog,
		MigrationsPath: cfg.MigrationsPath,
	}
}

// DSN returns the PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// MigrateURL returns the postgres:// URL golang-migrate connects with.
func (c *Config) MigrateURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	return u.String()
}

// SourceURL returns the file:// URL of the migrations directory.
func (c *Config) SourceURL() string {
	return "file://" + c.MigrationsPath
}
