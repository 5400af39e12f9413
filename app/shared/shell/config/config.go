package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// Storage backends selectable with STORAGE.
const (
	StoragePostgres = "postgres" // database/sql with lib/pq
	StoragePGX      = "pgx"
	StorageSQLX     = "sqlx"
	StorageMySQL    = "mysql"
	StorageMemory   = "memory"
)

const (
	defaultPort                = 8080
	defaultStorage             = StoragePGX
	defaultOverdueScanInterval = 24 * time.Hour
	defaultServiceName         = "library-circulation"
)

// Configuration errors.
var (
	ErrUnknownStorage      = errors.New("unknown STORAGE")
	ErrMissingDatabaseURL  = errors.New("DATABASE_URL is required for this STORAGE")
	ErrMissingMySQLDSN     = errors.New("MYSQL_DSN is required for STORAGE=mysql")
	ErrReplicaNeedsPGX     = errors.New("DATABASE_REPLICA_URL is only supported with STORAGE=pgx")
	ErrInvalidPort         = errors.New("invalid PORT")
	ErrInvalidLogLevel     = errors.New("invalid LOG_LEVEL")
	ErrInvalidScanInterval = errors.New("invalid OVERDUE_SCAN_INTERVAL")
	ErrInvalidSeedCatalog  = errors.New("invalid SEED_CATALOG")
)

// Config is the process configuration.
type Config struct {
	Port                int
	Storage             string
	DatabaseURL         string
	DatabaseReplicaURL  string
	MySQLDSN            string
	LogLevel            slog.Level
	OTLPEndpoint        string
	OverdueScanInterval time.Duration
	SeedCatalog         bool
	ServiceName         string
	ServiceVersion      string
}

// Load reads the configuration through getenv, usually os.Getenv.
func Load(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:                defaultPort,
		Storage:             defaultStorage,
		DatabaseURL:         getenv("DATABASE_URL"),
		DatabaseReplicaURL:  getenv("DATABASE_REPLICA_URL"),
		MySQLDSN:            getenv("MYSQL_DSN"),
		LogLevel:            slog.LevelInfo,
		OTLPEndpoint:        getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		OverdueScanInterval: defaultOverdueScanInterval,
		ServiceName:         defaultServiceName,
		ServiceVersion:      getenv("SERVICE_VERSION"),
	}

	if v := getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return Config{}, fmt.Errorf("%w: %q", ErrInvalidPort, v)
		}

		cfg.Port = port
	}

	if v := getenv("STORAGE"); v != "" {
		cfg.Storage = strings.ToLower(strings.TrimSpace(v))
	}

	if v := getenv("LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Config{}, errors.Join(ErrInvalidLogLevel, err)
		}
	}

	if v := getenv("OVERDUE_SCAN_INTERVAL"); v != "" {
		interval, err := time.ParseDuration(v)
		if err != nil || interval <= 0 {
			return Config{}, fmt.Errorf("%w: %q", ErrInvalidScanInterval, v)
		}

		cfg.OverdueScanInterval = interval
	}

	if v := getenv("SEED_CATALOG"); v != "" {
		seed, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %q", ErrInvalidSeedCatalog, v)
		}

		cfg.SeedCatalog = seed
	}

	if v := getenv("OTEL_SERVICE_NAME"); v != "" {
		cfg.ServiceName = v
	}

	if err := cfg.validateStorage(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validateStorage() error {
	switch c.Storage {
	case StoragePostgres, StoragePGX, StorageSQLX:
		if c.DatabaseURL == "" {
			return ErrMissingDatabaseURL
		}
	case StorageMySQL:
		if c.MySQLDSN == "" {
			return ErrMissingMySQLDSN
		}
	case StorageMemory:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStorage, c.Storage)
	}

	if c.DatabaseReplicaURL != "" && c.Storage != StoragePGX {
		return ErrReplicaNeedsPGX
	}

	return nil
}

// Addr returns the listen address of the HTTP server.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// ObservabilityEnabled reports whether OTLP exporters should be set up.
func (c Config) ObservabilityEnabled() bool {
	return c.OTLPEndpoint != ""
}
