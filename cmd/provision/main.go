package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/anselusd/internal/logging"
	"github.com/dmitrijs2005/anselusd/internal/provision"
	"github.com/dmitrijs2005/anselusd/internal/provision/config"
)

func main() {
	// .env is optional; deployments normally use the environment directly.
	_ = godotenv.Load()

	ctx := context.Background()
	logger := logging.NewTextLogger(os.Stderr)

	if err := run(ctx, logger); err != nil {
		logger.Error(ctx, err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, logger logging.Logger) error {
	cfg, warnings, err := config.LoadConfig()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		logger.Warn(ctx, w)
	}

	app, err := provision.NewApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	return app.Run(ctx)
}
