package pg

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/pointpay/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.Migrations)
	if err != nil {
		return fmt.Errorf("failed to create goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	for _, res := range results {
		zap.L().Info("migration applied",
			zap.Int64("version", res.Source.Version),
			zap.String("path", res.Source.Path),
			zap.Duration("duration", res.Duration),
		)
	}
	return nil
}
