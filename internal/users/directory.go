// Package users keeps the registered accounts as one JSON collection in the
// local store, keyed by normalized email.
package users

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/taskflow/internal/common"
	"github.com/dmitrijs2005/taskflow/internal/localstore"
	"github.com/dmitrijs2005/taskflow/internal/logging"
	"github.com/dmitrijs2005/taskflow/internal/models"
)

// Directory is append-only: accounts are never updated or deleted.
type Directory interface {
	List(ctx context.Context) []models.User
	FindByEmail(ctx context.Context, email string) (models.User, bool)
	Insert(ctx context.Context, user models.User)
}

type localDirectory struct {
	store  localstore.Store
	logger logging.Logger
}

func NewDirectory(store localstore.Store, logger logging.Logger) Directory {
	return &localDirectory{store: store, logger: logger}
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (d *localDirectory) List(ctx context.Context) []models.User {
	list, err := localstore.LoadJSON[models.User](ctx, d.store, common.UsersStorageKey)
	if err != nil {
		d.logger.Warn(ctx, "ignoring unreadable user list", "error", err)
	}
	return list
}

// FindByEmail compares against lower-cased stored emails, so records written
// with mixed case still match.
func (d *localDirectory) FindByEmail(ctx context.Context, email string) (models.User, bool) {
	want := NormalizeEmail(email)
	for _, u := range d.List(ctx) {
		if strings.ToLower(u.Email) == want {
			return u, true
		}
	}
	return models.User{}, false
}

func (d *localDirectory) Insert(ctx context.Context, user models.User) {
	list := append(d.List(ctx), user)
	if err := localstore.SaveJSON(ctx, d.store, common.UsersStorageKey, list); err != nil {
		d.logger.Error(ctx, "failed to save user list", "error", err)
	}
}
