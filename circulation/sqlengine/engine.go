package sqlengine

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/rishithapentyala/Library-Management-System/circulation"
	"github.com/rishithapentyala/Library-Management-System/circulation/sqlengine/internal/adapters"
)

const driverNameMySQL = "mysql"

// Engine is a circulation.Engine on top of a PostgreSQL or MySQL database.
type Engine struct {
	db               adapters.DBAdapter
	statements       statements
	dialect          string
	logger           circulation.Logger
	contextualLogger circulation.ContextualLogger
	metricsCollector circulation.MetricsCollector
	tracingCollector circulation.TracingCollector
}

// NewEngineFromPGXPool creates a new PostgreSQL Engine using a pgx Pool with optional configuration.
func NewEngineFromPGXPool(pool *pgxpool.Pool, options ...Option) (*Engine, error) {
	if pool == nil {
		return nil, circulation.ErrNilDatabaseConnection
	}

	return newEngine(adapters.NewPGXAdapter(pool), dialectPostgres, options)
}

// NewEngineFromPGXPoolWithReplica creates a new PostgreSQL Engine that serves reads from the replica
// pool when the context asks for circulation.EventualConsistency. Transactions always use the primary.
func NewEngineFromPGXPoolWithReplica(pool *pgxpool.Pool, replica *pgxpool.Pool, options ...Option) (*Engine, error) {
	if pool == nil || replica == nil {
		return nil, circulation.ErrNilDatabaseConnection
	}

	return newEngine(adapters.NewPGXAdapterWithReplica(pool, replica), dialectPostgres, options)
}

// NewEngineFromSQLDB creates a new PostgreSQL Engine using a sql.DB (lib/pq) with optional configuration.
func NewEngineFromSQLDB(db *sql.DB, options ...Option) (*Engine, error) {
	if db == nil {
		return nil, circulation.ErrNilDatabaseConnection
	}

	return newEngine(adapters.NewSQLAdapter(db), dialectPostgres, options)
}

// NewEngineFromMySQL creates a new MySQL Engine using a sql.DB opened with go-sql-driver/mysql.
// The DSN must enable parseTime and clientFoundRows, see config.MySQLDSN.
func NewEngineFromMySQL(db *sql.DB, options ...Option) (*Engine, error) {
	if db == nil {
		return nil, circulation.ErrNilDatabaseConnection
	}

	return newEngine(adapters.NewSQLAdapter(db), dialectMySQL, options)
}

// NewEngineFromSQLX creates a new Engine using a sqlx.DB. The SQL dialect follows the driver name.
func NewEngineFromSQLX(db *sqlx.DB, options ...Option) (*Engine, error) {
	if db == nil {
		return nil, circulation.ErrNilDatabaseConnection
	}

	dialect := dialectPostgres
	if db.DriverName() == driverNameMySQL {
		dialect = dialectMySQL
	}

	return newEngine(adapters.NewSQLXAdapter(db), dialect, options)
}

func newEngine(db adapters.DBAdapter, dialect string, options []Option) (*Engine, error) {
	e := &Engine{
		db:         db,
		statements: newStatements(dialect),
		dialect:    dialect,
	}

	for _, option := range options {
		if err := option(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// WithinTx runs fn in a database transaction on the primary and commits if fn returns nil.
// Any error rolls the transaction back. Deadlocks and serialization failures are joined with
// circulation.ErrConcurrencyConflict.
func (e *Engine) WithinTx(ctx context.Context, fn circulation.TxFunc) error {
	ctx, span := e.startSpan(ctx, spanNameTx, operationTx)
	start := time.Now()

	dbTx, beginErr := e.db.BeginTx(ctx)
	if beginErr != nil {
		err := classify(errors.Join(circulation.ErrBeginningTxFailed, beginErr))
		e.logError(ctx, logMsgBeginTxFailed, err)
		e.observe(ctx, span, operationTx, metricTxDuration, time.Since(start), err)

		return err
	}

	if fnErr := fn(ctx, &sqlTx{engine: e, db: dbTx}); fnErr != nil {
		e.rollback(ctx, dbTx)
		err := classify(fnErr)
		e.observe(ctx, span, operationTx, metricTxDuration, time.Since(start), err)

		return err
	}

	if commitErr := dbTx.Commit(ctx); commitErr != nil {
		e.rollback(ctx, dbTx)
		err := classify(errors.Join(circulation.ErrCommittingTxFailed, commitErr))
		e.logError(ctx, logMsgCommitFailed, err)
		e.observe(ctx, span, operationTx, metricTxDuration, time.Since(start), err)

		return err
	}

	duration := time.Since(start)
	e.logOperation(ctx, logMsgTxCommitted, logAttrDurationMS, toMilliseconds(duration))
	e.observe(ctx, span, operationTx, metricTxDuration, duration, nil)

	return nil
}

func (e *Engine) rollback(ctx context.Context, dbTx adapters.DBTx) {
	if err := dbTx.Rollback(context.WithoutCancel(ctx)); err != nil {
		e.logWarn(ctx, logMsgRollbackFailed, err)
	}
}

// queryRows executes sqlQuery on q and logs it with its duration.
func (e *Engine) queryRows(ctx context.Context, q adapters.DBQuerier, sqlQuery, action string) (adapters.DBRows, error) {
	start := time.Now()
	rows, err := q.Query(ctx, sqlQuery)
	e.logSQL(ctx, sqlQuery, action, time.Since(start))

	if err != nil {
		e.logError(ctx, logMsgDBQueryFailed, err, logAttrQuery, sqlQuery)
		return nil, errors.Join(circulation.ErrQueryingFailed, err)
	}

	return rows, nil
}

// exec executes sqlQuery on q and returns the number of affected rows.
func (e *Engine) exec(ctx context.Context, q adapters.DBQuerier, sqlQuery, action string) (int64, error) {
	start := time.Now()
	result, err := q.Exec(ctx, sqlQuery)
	e.logSQL(ctx, sqlQuery, action, time.Since(start))

	if err != nil {
		e.logError(ctx, logMsgDBExecFailed, err, logAttrQuery, sqlQuery)
		return 0, errors.Join(circulation.ErrExecutingFailed, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		e.logError(ctx, logMsgRowsAffectedFailed, err)
		return 0, errors.Join(circulation.ErrGettingRowsAffectedFail, err)
	}

	return rowsAffected, nil
}

// queryInts runs a query that returns exactly one row of integer columns.
func (e *Engine) queryInts(ctx context.Context, q adapters.DBQuerier, sqlQuery, action string, dest ...*int64) error {
	rows, err := e.queryRows(ctx, q, sqlQuery, action)
	if err != nil {
		return err
	}
	defer e.closeRows(ctx, rows)

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return errors.Join(circulation.ErrScanningDBRowFailed, err)
		}

		return errors.Join(circulation.ErrScanningDBRowFailed, sql.ErrNoRows)
	}

	scanDest := make([]any, 0, len(dest))
	for _, d := range dest {
		scanDest = append(scanDest, d)
	}

	if err := rows.Scan(scanDest...); err != nil {
		e.logError(ctx, logMsgScanRowFailed, err)
		return errors.Join(circulation.ErrScanningDBRowFailed, err)
	}

	return nil
}

func (e *Engine) queryCount(ctx context.Context, q adapters.DBQuerier, sqlQuery, action string) (int, error) {
	var count int64
	if err := e.queryInts(ctx, q, sqlQuery, action, &count); err != nil {
		return 0, err
	}

	return int(count), nil
}

// closeRows safely closes database rows and logs any errors.
func (e *Engine) closeRows(ctx context.Context, rows adapters.DBRows) {
	if err := rows.Close(); err != nil {
		e.logWarn(ctx, logMsgCloseRowsFailed, err)
	}
}

// queryOne runs sqlQuery and scans the first row, failing with circulation.ErrNotFound on an empty result.
func queryOne[T any](
	ctx context.Context,
	e *Engine,
	q adapters.DBQuerier,
	sqlQuery, action string,
	scan func(adapters.DBRows) (T, error),
) (T, error) {

	var empty T

	rows, err := e.queryRows(ctx, q, sqlQuery, action)
	if err != nil {
		return empty, err
	}
	defer e.closeRows(ctx, rows)

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return empty, errors.Join(circulation.ErrScanningDBRowFailed, err)
		}

		return empty, circulation.ErrNotFound
	}

	item, err := scan(rows)
	if err != nil {
		e.logError(ctx, logMsgScanRowFailed, err)
		return empty, errors.Join(circulation.ErrScanningDBRowFailed, err)
	}

	return item, nil
}

// queryAll runs sqlQuery and scans every row.
func queryAll[T any](
	ctx context.Context,
	e *Engine,
	q adapters.DBQuerier,
	sqlQuery, action string,
	scan func(adapters.DBRows) (T, error),
) ([]T, error) {

	rows, err := e.queryRows(ctx, q, sqlQuery, action)
	if err != nil {
		return nil, err
	}
	defer e.closeRows(ctx, rows)

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			e.logError(ctx, logMsgScanRowFailed, err)
			return nil, errors.Join(circulation.ErrScanningDBRowFailed, err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Join(circulation.ErrScanningDBRowFailed, err)
	}

	return items, nil
}
