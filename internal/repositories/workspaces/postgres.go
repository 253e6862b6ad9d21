// Package workspaces stores provisioned accounts in the three workspace
// tables (iwkspc_main, iwkspc_folders, iwkspc_sessions) and owns the
// destructive schema reset used in bootstrap mode.
package workspaces

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/anselusd/internal/common"
	"github.com/dmitrijs2005/anselusd/internal/dbx"
	"github.com/dmitrijs2005/anselusd/internal/migrations"
	"github.com/dmitrijs2005/anselusd/internal/models"
)

// dropAllTablesStmt removes every table in the current schema, not just the
// three provisioning tables, so a reset always starts from a clean slate.
// It runs inside one transaction; an interrupted reset leaves no half-dropped
// schema behind.
const dropAllTablesStmt = `DO $$ DECLARE
	r RECORD;
BEGIN
	FOR r IN (SELECT tablename FROM pg_tables WHERE schemaname = current_schema()) LOOP
		EXECUTE 'DROP TABLE IF EXISTS ' || quote_ident(r.tablename) || ' CASCADE';
	END LOOP;
END $$;`

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Reset drops everything and recreates the schema from the embedded
// migrations. Safe to run repeatedly.
func (r *PostgresRepository) Reset(ctx context.Context) error {
	if err := r.dropAllTables(ctx); err != nil {
		return fmt.Errorf("%w: %w", common.ErrorSchemaReset, err)
	}
	if err := r.migrate(ctx); err != nil {
		return fmt.Errorf("%w: %w", common.ErrorSchemaReset, err)
	}
	return nil
}

func (r *PostgresRepository) dropAllTables(ctx context.Context) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, dropAllTablesStmt)
		return err
	})
}

func (r *PostgresRepository) migrate(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	return goose.UpContext(ctx, r.db, ".")
}

// CreateAccount inserts one main row, one row per encrypted folder record,
// and one row per device, all within a single transaction. Every value is
// bound as a statement parameter; none of the inserted fields are trusted to
// be delimiter-free.
func (r *PostgresRepository) CreateAccount(ctx context.Context, account *models.Account) error {
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO iwkspc_main (wid, friendly_address, password, status)
			 VALUES ($1, $2, $3, $4)`,
			account.WorkspaceID, account.FriendlyAddress,
			account.PasswordHashB85, string(account.Status))
		if err != nil {
			return fmt.Errorf("main row insert: %w", err)
		}

		for _, folder := range account.Folders {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO iwkspc_folders (fid, wid, enc_name, enc_key)
				 VALUES ($1, $2, $3, $4)`,
				folder.FolderID, account.WorkspaceID, folder.EncName, folder.KeyID)
			if err != nil {
				return fmt.Errorf("folder row insert: %w", err)
			}
		}

		for _, device := range account.Devices {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO iwkspc_sessions (wid, devid, device_key)
				 VALUES ($1, $2, $3)`,
				account.WorkspaceID, device.ID, device.Key.PublicB85)
			if err != nil {
				return fmt.Errorf("session row insert: %w", err)
			}
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrorWriteFailed, err)
	}
	return nil
}
