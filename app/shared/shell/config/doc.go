// Package config reads the process configuration from the environment and builds the
// database pools and OpenTelemetry providers the server runs with.
//
// Each pool factory keeps its tuning constants next to the code that applies them, so
// the pgx, database/sql (lib/pq), sqlx and MySQL pools can be tuned independently.
package config
