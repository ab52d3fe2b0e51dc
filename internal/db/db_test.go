package db

import (
	"strings"
	"testing"

	"github.com/Leganyst/sitter-search/internal/config"
)

func TestBuildDSN(t *testing.T) {
	cfg := &config.DBConfig{
		Host:     "localhost",
		Port:     5433,
		User:     "u",
		Password: "p",
		Name:     "sitters_db",
		SSLMode:  "disable",
		TimeZone: "UTC",
	}

	dsn := buildDSN(cfg)
	for _, part := range []string{
		"host=localhost",
		"port=5433",
		"dbname=sitters_db",
		"application_name=sitter-search",
	} {
		if !strings.Contains(dsn, part) {
			t.Fatalf("DSN missing %q: %s", part, dsn)
		}
	}
}
