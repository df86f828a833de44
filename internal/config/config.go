// Package config loads application configuration from environment
// variables. A .env file, when present, is read by main before Load is
// called.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Backend selects which persistence adapter the server runs on. All
// three are interchangeable implementations of the same store contract.
type Backend string

const (
	BackendFile   Backend = "file"   // flat JSON documents under DataDir
	BackendSQLite Backend = "sqlite" // embedded database at SQLitePath
	BackendMySQL  Backend = "mysql"  // hosted database via DB_* vars
)

// Config holds all runtime configuration values. Strings for
// identifiers and secrets, ints for durations.
type Config struct {
	Env     string  // application environment (e.g. "dev", "prod")
	Port    string  // HTTP port to listen on
	Backend Backend // storage backend: file | sqlite | mysql

	DataDir    string // directory for the file backend's JSON documents
	SQLitePath string // database file for the sqlite backend

	DBUser string // mysql username
	DBPass string // mysql password (optional)
	DBHost string // mysql host address
	DBPort string // mysql port number
	DBName string // mysql database name

	JWTSecret     string // secret used to sign admin session tokens
	AccessTTLMin  int    // admin token time-to-live in minutes
	AdminPassword string // static admin password, or a bcrypt hash of it
}

// Load reads configuration from environment variables. Variables
// without a sensible default are enforced by must() and missing values
// cause the program to exit with a fatal log message. The mysql
// connection variables are only required when that backend is selected.
func Load() Config {
	cfg := Config{
		Env:           getenvDefault("APP_ENV", "dev"),
		Port:          getenvDefault("APP_PORT", "8080"),
		Backend:       Backend(strings.ToLower(getenvDefault("STORAGE_BACKEND", string(BackendFile)))),
		DataDir:       getenvDefault("DATA_DIR", "data"),
		SQLitePath:    getenvDefault("SQLITE_PATH", "data/reservations.db"),
		JWTSecret:     must("JWT_SECRET"),
		AccessTTLMin:  mustInt("ACCESS_TOKEN_TTL_MIN"),
		AdminPassword: must("ADMIN_PASSWORD"),
	}
	switch cfg.Backend {
	case BackendFile, BackendSQLite:
	case BackendMySQL:
		cfg.DBUser = must("DB_USER")
		cfg.DBPass = os.Getenv("DB_PASS") // empty allowed
		cfg.DBHost = must("DB_HOST")
		cfg.DBPort = must("DB_PORT")
		cfg.DBName = must("DB_NAME")
	default:
		log.Fatalf("unknown STORAGE_BACKEND: %q (want file, sqlite or mysql)", cfg.Backend)
	}
	return cfg
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and
// exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the retrieved string into an
// integer.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
