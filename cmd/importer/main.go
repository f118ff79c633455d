// Command importer replays a CSV of "customer_id,amount" payments against the
// pointpay database.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/GlebRadaev/pointpay/internal/app"
	"github.com/GlebRadaev/pointpay/internal/config"
	"github.com/GlebRadaev/pointpay/internal/importer"
	"github.com/GlebRadaev/pointpay/internal/pg"
	"github.com/GlebRadaev/pointpay/internal/repo"
	"github.com/GlebRadaev/pointpay/internal/service/paymentservice"
	"github.com/GlebRadaev/pointpay/internal/tier"
	"github.com/GlebRadaev/pointpay/pkg/clients"
	"github.com/GlebRadaev/pointpay/pkg/logger"
	"github.com/rs/zerolog/log"
	"go.uber.org/zap"
)

func main() {
	source := flag.String("i", "", "payments csv: file path or http(s) url")
	cfg := config.New()

	if *source == "" {
		log.Error().Msg("no input, use -i <file|url>")
		os.Exit(2)
	}
	if err := logger.InitLogger(cfg, "pointpay-importer"); err != nil {
		log.Fatal().Err(err).Msg("Can't init logger")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rates, err := tier.Parse(cfg.PointTiers)
	if err != nil {
		zap.L().Fatal("invalid point tiers", zap.Error(err))
	}
	pool, err := app.GetPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Fatal("can't build pgx pool", zap.Error(err))
	}
	defer pool.Close()
	if err := pg.RunMigrations(ctx, pool); err != nil {
		zap.L().Fatal("migrations failed", zap.Error(err))
	}

	repos := repo.New(pg.New(pool), pg.NewTXManager(pool))
	payments := paymentservice.New(repos.CustomerRepo, repos.ReceiptRepo, rates)

	imp := importer.New(payments, clients.NewHTTPClient(0), cfg.ImportWorkers)
	defer imp.Close()

	summary, err := imp.Import(ctx, *source)
	zap.L().Info("import summary",
		zap.Int64("processed", summary.Processed),
		zap.Int64("failed", summary.Failed),
		zap.Int64("points", summary.Points),
	)
	if err != nil {
		zap.L().Error("import stopped", zap.Error(err))
		os.Exit(1)
	}
}
