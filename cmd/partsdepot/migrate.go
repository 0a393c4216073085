package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/partsdepot/internal/migrations"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if cfg.Database.URL == "" {
			return fmt.Errorf("database.url is empty (set PARTSDEPOT_DATABASE_URL)")
		}

		pool, err := pgxpool.New(cmd.Context(), cfg.Database.URL)
		if err != nil {
			return fmt.Errorf("pgxpool.New: %w", err)
		}
		defer pool.Close()

		applied, err := migrate(cmd.Context(), pool)
		if err != nil {
			return err
		}

		logger.Info("migrations done", zap.Int("applied", applied))
		return nil
	},
}

const createMigrationsTable = `CREATE TABLE IF NOT EXISTS schema_migrations
(
    name       TEXT PRIMARY KEY,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// migrate applies every embedded migration not yet recorded in
// schema_migrations, each in its own transaction.
func migrate(ctx context.Context, pool *pgxpool.Pool) (int, error) {
	all, err := migrations.Up()
	if err != nil {
		return 0, fmt.Errorf("migrations.Up: %w", err)
	}

	if _, err := pool.Exec(ctx, createMigrationsTable); err != nil {
		return 0, fmt.Errorf("pool.Exec: %w", err)
	}

	var applied int
	for _, m := range all {
		var done bool
		if err := pool.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE name = $1)", m.Name).Scan(&done); err != nil {
			return applied, fmt.Errorf("pool.QueryRow[%s]: %w", m.Name, err)
		}
		if done {
			logger.Debug("migration already applied", zap.String("name", m.Name))
			continue
		}

		err := pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, m.SQL); err != nil {
				return err
			}
			_, err := tx.Exec(ctx, "INSERT INTO schema_migrations (name) VALUES ($1)", m.Name)
			return err
		})
		if err != nil {
			return applied, fmt.Errorf("migration[%s]: %w", m.Name, err)
		}

		logger.Info("migration applied", zap.String("name", m.Name))
		applied++
	}

	return applied, nil
}
