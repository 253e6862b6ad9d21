package workspaces

import (
	"context"

	"github.com/dmitrijs2005/anselusd/internal/models"
)

// Repository persists provisioned accounts.
type Repository interface {
	// Reset drops every table in the current schema and recreates the
	// provisioning tables. Destructive; test databases only.
	Reset(ctx context.Context) error

	// CreateAccount writes the account's main, folder, and session rows in
	// one transaction. On failure nothing from the account remains visible.
	CreateAccount(ctx context.Context, account *models.Account) error
}
