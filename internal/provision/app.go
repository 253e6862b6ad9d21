// Package provision runs the account-provisioning bootstrap: reset the
// workspace schema, then generate and persist a batch of synthetic accounts,
// dumping each one's secrets for the operator. The tool is for disposable
// test databases only.
package provision

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/dmitrijs2005/anselusd/internal/common"
	"github.com/dmitrijs2005/anselusd/internal/identity"
	"github.com/dmitrijs2005/anselusd/internal/logging"
	"github.com/dmitrijs2005/anselusd/internal/provision/config"
	"github.com/dmitrijs2005/anselusd/internal/report"
	"github.com/dmitrijs2005/anselusd/internal/repositories/workspaces"
)

type App struct {
	config    *config.Config
	logger    logging.Logger
	generator *identity.Generator
	repo      workspaces.Repository
	db        *sql.DB
	out       io.Writer
}

// NewApp validates the KDF profile, connects to the database, and wires the
// components. Both failure modes are startup-fatal; nothing is generated
// before they pass.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	generator, err := identity.NewGenerator(cfg.KDFParams())
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorConnectionFailed, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %w", common.ErrorConnectionFailed, err)
	}

	return &App{
		config:    cfg,
		logger:    logger,
		generator: generator,
		repo:      workspaces.NewPostgresRepository(db),
		db:        db,
		out:       os.Stdout,
	}, nil
}

func (app *App) Close() {
	if app.db != nil {
		_ = app.db.Close()
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run resets the schema and provisions the configured number of accounts.
// The first failed account aborts the batch; its rows are already rolled
// back by the repository.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	app.logger.Info(ctx, "resetting schema", "database", app.config.Database.Name)
	if err := app.repo.Reset(ctx); err != nil {
		return err
	}

	return app.provision(ctx)
}

func (app *App) provision(ctx context.Context) error {
	for i := 0; i < app.config.AccountCount; i++ {
		account, err := app.generator.NewAccount()
		if err != nil {
			return fmt.Errorf("account generation: %w", err)
		}

		if err := app.repo.CreateAccount(ctx, account); err != nil {
			app.logger.Error(ctx, "account persistence failed",
				"wid", account.WorkspaceID, "error", err.Error())
			return err
		}

		app.logger.Info(ctx, "account persisted",
			"wid", account.WorkspaceID,
			"status", string(account.Status),
			"devices", len(account.Devices))

		if err := report.DumpAccount(app.out, account); err != nil {
			return fmt.Errorf("operator report: %w", err)
		}
	}

	app.logger.Info(ctx, "provisioning complete", "accounts", app.config.AccountCount)
	return nil
}

var _ workspaces.Repository = (*workspaces.PostgresRepository)(nil)
