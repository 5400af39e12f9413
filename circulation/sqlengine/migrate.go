package sqlengine

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/rishithapentyala/Library-Management-System/circulation"
	"github.com/rishithapentyala/Library-Management-System/circulation/sqlengine/internal/adapters"
)

const (
	actionMigrate = "migrate"
	actionSeed    = "seed"
)

//go:embed schema
var schemaFS embed.FS

var (
	// ErrMigrationFailed is returned when a schema file cannot be applied.
	ErrMigrationFailed = errors.New("applying schema migration failed")

	migrationsTableDDL = map[string]string{
		dialectPostgres: `CREATE TABLE IF NOT EXISTS schema_migrations (
			filename   VARCHAR(255) PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL
		)`,
		dialectMySQL: `CREATE TABLE IF NOT EXISTS schema_migrations (
			filename   VARCHAR(255) NOT NULL PRIMARY KEY,
			applied_at DATETIME(6) NOT NULL
		) ENGINE = InnoDB`,
	}

	schemaDirs = map[string]string{
		dialectPostgres: "schema/postgres",
		dialectMySQL:    "schema/mysql",
	}
)

// Migrate applies the embedded schema files of the engine's dialect that were not applied yet.
// Each file runs in its own transaction. MySQL commits DDL implicitly, so a failing MySQL file
// may leave earlier statements of that file applied; they are all idempotent.
func (e *Engine) Migrate(ctx context.Context) error {
	if _, err := e.exec(ctx, e.db, migrationsTableDDL[e.dialect], actionMigrate); err != nil {
		return errors.Join(ErrMigrationFailed, err)
	}

	files, err := schemaFiles(schemaDirs[e.dialect])
	if err != nil {
		return errors.Join(ErrMigrationFailed, err)
	}

	for _, file := range files {
		if err := e.applyMigration(ctx, file); err != nil {
			return errors.Join(ErrMigrationFailed, err)
		}
	}

	return nil
}

func (e *Engine) applyMigration(ctx context.Context, file string) error {
	filename := path.Base(file)

	appliedQuery, err := e.statements.selectAppliedMigration(filename)
	if err != nil {
		return err
	}

	applied, err := e.queryCount(ctx, e.db, appliedQuery, actionMigrate)
	if err != nil {
		return err
	}

	if applied > 0 {
		return nil
	}

	content, err := fs.ReadFile(schemaFS, file)
	if err != nil {
		return err
	}

	recordQuery, err := e.statements.insertAppliedMigration(filename, time.Now())
	if err != nil {
		return err
	}

	dbTx, err := e.db.BeginTx(ctx)
	if err != nil {
		return err
	}

	for _, statement := range splitStatements(string(content)) {
		if _, err := e.exec(ctx, dbTx, statement, actionMigrate); err != nil {
			e.rollback(ctx, dbTx)
			return err
		}
	}

	if _, err := e.exec(ctx, dbTx, recordQuery, actionMigrate); err != nil {
		e.rollback(ctx, dbTx)
		return err
	}

	if err := dbTx.Commit(ctx); err != nil {
		e.rollback(ctx, dbTx)
		return errors.Join(circulation.ErrCommittingTxFailed, err)
	}

	e.logOperation(ctx, logMsgMigrationApplied, logAttrFilename, filename)

	return nil
}

// Seed loads circulation.SeedBooks and circulation.SeedUsers into empty tables.
func (e *Engine) Seed(ctx context.Context) error {
	return e.WithinTx(ctx, func(ctx context.Context, tx circulation.Tx) error {
		st, ok := tx.(*sqlTx)
		if !ok {
			return nil
		}

		return e.seedEmptyTables(ctx, st.db)
	})
}

func (e *Engine) seedEmptyTables(ctx context.Context, q adapters.DBQuerier) error {
	booksQuery, err := e.statements.countBooks()
	if err != nil {
		return err
	}

	usersQuery, err := e.statements.countUsers()
	if err != nil {
		return err
	}

	bookCount, err := e.queryCount(ctx, q, booksQuery, actionSeed)
	if err != nil {
		return err
	}

	userCount, err := e.queryCount(ctx, q, usersQuery, actionSeed)
	if err != nil {
		return err
	}

	var seededBooks, seededUsers int

	if bookCount == 0 {
		books := circulation.SeedBooks()

		insertQuery, err := e.statements.insertBooks(books...)
		if err != nil {
			return err
		}

		if _, err := e.exec(ctx, q, insertQuery, actionSeed); err != nil {
			return err
		}

		seededBooks = len(books)
	}

	if userCount == 0 {
		users := circulation.SeedUsers()

		insertQuery, err := e.statements.insertUsers(users...)
		if err != nil {
			return err
		}

		if _, err := e.exec(ctx, q, insertQuery, actionSeed); err != nil {
			return err
		}

		seededUsers = len(users)
	}

	e.logOperation(ctx, logMsgCatalogSeeded, logAttrBookCount, seededBooks, logAttrUserCount, seededUsers)

	return nil
}

func schemaFiles(dir string) ([]string, error) {
	entries, err := fs.ReadDir(schemaFS, dir)
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, path.Join(dir, entry.Name()))
		}
	}

	sort.Strings(files)

	return files, nil
}

// splitStatements splits a schema file on semicolons that end a line.
func splitStatements(content string) []string {
	statements := make([]string, 0)

	for _, part := range strings.Split(content, ";\n") {
		statement := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(part), ";"))
		if statement != "" {
			statements = append(statements, statement)
		}
	}

	return statements
}
