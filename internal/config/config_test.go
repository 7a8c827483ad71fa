package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "DB_DRIVER", "DB_LOG", "APP_TIMEZONE", "MIGRATIONS_PATH", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.Port)
	}
	if cfg.DBDriver != DriverPostgres {
		t.Errorf("expected driver %s, got %s", DriverPostgres, cfg.DBDriver)
	}
	if cfg.DBLog {
		t.Error("expected SQL logging off by default")
	}
	if cfg.MigrationsPath != "migrations" {
		t.Errorf("expected migrations path 'migrations', got %s", cfg.MigrationsPath)
	}
	if cfg.Location() != time.UTC {
		t.Errorf("expected UTC location, got %s", cfg.Location())
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Errorf("expected any origin by default, got %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_LOG", "true")
	t.Setenv("APP_TIMEZONE", "Asia/Kolkata")
	t.Setenv("ENV", "production")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, https://books.example.com,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DBDriver != DriverSQLite {
		t.Errorf("expected driver sqlite, got %s", cfg.DBDriver)
	}
	if !cfg.DBLog {
		t.Error("expected SQL logging on")
	}
	if !cfg.IsProduction() {
		t.Error("expected production env")
	}
	if cfg.Location().String() != "Asia/Kolkata" {
		t.Errorf("expected Asia/Kolkata, got %s", cfg.Location())
	}
	want := []string{"http://localhost:5173", "https://books.example.com"}
	if len(cfg.CORSAllowedOrigins) != len(want) {
		t.Fatalf("expected origins %v, got %v", want, cfg.CORSAllowedOrigins)
	}
	for i := range want {
		if cfg.CORSAllowedOrigins[i] != want[i] {
			t.Errorf("expected origin %s, got %s", want[i], cfg.CORSAllowedOrigins[i])
		}
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("DB_LOG", "sometimes")
	t.Setenv("APP_TIMEZONE", "Mars/Olympus")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DBDriver != DriverPostgres {
		t.Errorf("expected fallback driver postgres, got %s", cfg.DBDriver)
	}
	if cfg.DBLog {
		t.Error("expected SQL logging off on invalid value")
	}
	if cfg.Timezone != "UTC" || cfg.Location() != time.UTC {
		t.Errorf("expected UTC fallback, got %s", cfg.Timezone)
	}
}
