// Package sqlengine provides a relational circulation.Engine for PostgreSQL and MySQL.
//
// The engine supports three connection types for PostgreSQL (pgxpool.Pool, sql.DB with lib/pq,
// sqlx.DB) and sql.DB or sqlx.DB with go-sql-driver/mysql. All SQL is built with goqu for the
// selected dialect and executed through the internal adapters.
//
// Transactions lock the rows a decision depends on with SELECT ... FOR UPDATE, and counter updates
// are guarded in their WHERE clause, so concurrent approvals of the last copy cannot both succeed.
// Deadlocks and serialization failures are reported as circulation.ErrConcurrencyConflict
// and can be retried by the caller.
//
// Usage:
//
//	engine, err := sqlengine.NewEngineFromPGXPool(pool, sqlengine.WithLogger(logger))
//	if err != nil { ... }
//	if err := engine.Migrate(ctx); err != nil { ... }
//
//	err = engine.WithinTx(ctx, func(ctx context.Context, tx circulation.Tx) error {
//		book, err := tx.LockBook(ctx, bookID)
//		...
//	})
//
// Observability is optional and configured with WithLogger, WithContextualLogger, WithMetrics
// and WithTracing, following the same dependency-free interfaces as the circulation package.
package sqlengine
