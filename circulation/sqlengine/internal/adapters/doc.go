// Package adapters provide database adapter implementations for the SQL circulation engine.
//
// This package implements the adapter pattern to support multiple database libraries:
// pgxpool.Pool, sql.DB (lib/pq or go-sql-driver/mysql), and sqlx.DB. All adapters provide equivalent
// functionality through the common DBAdapter interface, including transactions, so the engine works
// with any supported connection type.
package adapters
