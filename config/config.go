package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

type Config struct {
	Port      string
	LogMode   string
	HotelName string

	StorageDriver string
	SQLitePath    string
	MySQLDSN      string
	MySQLDBName   string

	CORSOrigins []string

	// APIKeyHash is a bcrypt hash; APIKey is hashed at start-up when no hash
	// is configured. Both empty leaves the API open.
	APIKey     string
	APIKeyHash string

	SeedDemo bool
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func envBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

// Load reads the process environment. Call godotenv.Load before it to pick up
// a .env file.
func Load() (Config, error) {
	cfg := Config{
		Port:          envOrDefault("PORT", "8080"),
		LogMode:       envOrDefault("LOG_MODE", "dev"),
		HotelName:     envOrDefault("HOTEL_NAME", "Grand Hotel"),
		StorageDriver: strings.ToLower(envOrDefault("STORAGE_DRIVER", DriverMemory)),
		SQLitePath:    envOrDefault("SQLITE_PATH", "hotel.db"),
		CORSOrigins:   parseCorsOrigins(os.Getenv("CORS_ORIGINS")),
		APIKey:        strings.TrimSpace(os.Getenv("HOTEL_API_KEY")),
		APIKeyHash:    strings.TrimSpace(os.Getenv("HOTEL_API_KEY_HASH")),
		SeedDemo:      envBool("SEED_DEMO", false),
	}

	switch cfg.StorageDriver {
	case DriverMemory, DriverSQLite:
	case DriverMySQL:
		dsn, dbName, err := resolveMySQLDSN()
		if err != nil {
			return Config{}, fmt.Errorf("resolve mysql dsn: %w", err)
		}
		cfg.MySQLDSN = dsn
		cfg.MySQLDBName = dbName
	default:
		return Config{}, fmt.Errorf("unknown STORAGE_DRIVER %q (want memory, sqlite or mysql)", cfg.StorageDriver)
	}

	return cfg, nil
}

func parseCorsOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
