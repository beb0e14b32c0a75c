// Package config resolves runtime configuration from environment
// variables.
package config

import (
	"os"
	"strings"
)

// Store backends for the lexicon.
const (
	StaticStore   = "static"
	PostgresStore = "postgres"
)

// Config holds the resolved runtime settings.
type Config struct {
	APIKey           string
	Model            string
	StoreType        string
	ConnectionString string
	Permissive       bool
}

// Load reads configuration from the environment. Every field has a
// working default; a missing API key selects the mock collaborator
// downstream rather than failing here.
func Load() Config {
	return Config{
		APIKey:           GetAPIKey(),
		Model:            getModel(),
		StoreType:        getStoreType(),
		ConnectionString: GetConnectionString(),
		Permissive:       isPermissive(),
	}
}

// GetAPIKey returns the collaborator API key, preferring GEMINI_API_KEY
// over GOOGLE_API_KEY.
func GetAPIKey() string {
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		return apiKey
	}
	return os.Getenv("GOOGLE_API_KEY")
}

// getModel returns the collaborator model name override, if any.
func getModel() string {
	return os.Getenv("YADUHA_MODEL")
}

// getStoreType selects the lexicon backend.
func getStoreType() string {
	storeType := os.Getenv("YADUHA_VOCAB_STORE")
	switch strings.ToLower(storeType) {
	case "postgres", "postgresql", "db":
		return PostgresStore
	default:
		return StaticStore
	}
}

// GetConnectionString returns the database connection string.
func GetConnectionString() string {
	connStr := os.Getenv("DB_CONN_STRING")
	if connStr == "" {
		// Default connection string for local development
		return "postgres://localhost:5432/postgres?sslmode=disable"
	}
	return connStr
}

// isPermissive reports whether unknown lemmas render as placeholders
// instead of failing.
func isPermissive() bool {
	v := os.Getenv("YADUHA_PERMISSIVE")
	return strings.EqualFold(v, "true") || v == "1"
}

// IsPostgres returns true when the lexicon is database-backed.
func (c Config) IsPostgres() bool {
	return c.StoreType == PostgresStore
}
