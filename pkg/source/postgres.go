package source

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/devzarghami/translate/pkg/i18n"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// defaultTable is the table Postgres sources read from; created by Migrate.
const defaultTable = "translations"

// PostgresOption configures a Postgres source.
type PostgresOption func(*postgresOptions)

type postgresOptions struct {
	table string
}

// WithTable overrides the table name. Defaults to "translations".
func WithTable(table string) PostgresOption {
	return func(o *postgresOptions) {
		if table != "" {
			o.table = table
		}
	}
}

// Postgres reads one language's translations from a table of
// (language, key, value) rows. Keys are dot-delimited; rows are assembled
// back into a nested tree, so "navbar.title" becomes {"navbar":{"title":…}}.
func Postgres(pool *pgxpool.Pool, lang i18n.Language, opts ...PostgresOption) (i18n.Source, error) {
	if pool == nil {
		return nil, ErrNilPool
	}

	o := &postgresOptions{table: defaultTable}
	for _, opt := range opts {
		opt(o)
	}

	query := fmt.Sprintf(`SELECT key, value FROM %s WHERE language = $1`, o.table)

	return i18n.SourceFunc(func(ctx context.Context) (i18n.Tree, error) {
		rows, err := pool.Query(ctx, query, string(lang))
		if err != nil {
			return nil, fmt.Errorf("source: querying translations for %q: %w", lang, err)
		}
		defer rows.Close()

		tree := make(i18n.Tree)
		for rows.Next() {
			var key, value string
			if err := rows.Scan(&key, &value); err != nil {
				return nil, fmt.Errorf("source: scanning translation row: %w", err)
			}
			tree.Set(key, value)
		}
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("source: reading translation rows: %w", err)
		}

		return tree, nil
	}), nil
}

// Migrate creates the translations table. The pgx pool is bridged to the
// database/sql interface goose expects; the shared pool stays open.
func Migrate(ctx context.Context, pool *pgxpool.Pool, log *slog.Logger) error {
	if pool == nil {
		return ErrNilPool
	}

	db := stdlib.OpenDBFromPool(pool)

	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(&gooseLoggerAdapter{log})

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Join(ErrApplyMigrations, err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return errors.Join(ErrApplyMigrations, err)
	}

	return nil
}

type gooseLoggerAdapter struct {
	log *slog.Logger
}

func (g *gooseLoggerAdapter) Printf(format string, args ...any) {
	if g.log != nil {
		g.log.Info(fmt.Sprintf(format, args...))
	}
}

func (g *gooseLoggerAdapter) Fatalf(format string, args ...any) {
	// Error level only: goose returns the error, which propagates up.
	if g.log != nil {
		g.log.Error(fmt.Sprintf(format, args...))
	}
}
