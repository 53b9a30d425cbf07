// Package localstore is the string key/value store the auth and task layers
// persist to. Reads, writes and removals never fail: backend errors are
// logged and degrade to "absent" or a no-op.
//
// A Store is chosen once at construction: New wraps a kv.Repository, Null
// stands in when no persistent storage exists and reports Available false.
package localstore

import (
	"context"

	"github.com/dmitrijs2005/taskflow/internal/logging"
	"github.com/dmitrijs2005/taskflow/internal/repositories/kv"
)

type Store interface {
	// Available reports whether values survive between calls.
	Available() bool
	Read(ctx context.Context, key string) (string, bool)
	Write(ctx context.Context, key, value string)
	Remove(ctx context.Context, key string)
}

type persistentStore struct {
	repo   kv.Repository
	logger logging.Logger
}

// New returns a Store backed by repo, or the null store when repo is nil.
func New(repo kv.Repository, logger logging.Logger) Store {
	if repo == nil {
		return Null()
	}
	return &persistentStore{repo: repo, logger: logger}
}

func (s *persistentStore) Available() bool { return true }

func (s *persistentStore) Read(ctx context.Context, key string) (string, bool) {
	v, err := s.repo.Get(ctx, key)
	if err != nil {
		s.logger.Warn(ctx, "store read failed", "key", key, "error", err)
		return "", false
	}
	if v == nil {
		return "", false
	}
	return string(v), true
}

func (s *persistentStore) Write(ctx context.Context, key, value string) {
	if err := s.repo.Set(ctx, key, []byte(value)); err != nil {
		s.logger.Warn(ctx, "store write failed", "key", key, "error", err)
	}
}

func (s *persistentStore) Remove(ctx context.Context, key string) {
	if err := s.repo.Delete(ctx, key); err != nil {
		s.logger.Warn(ctx, "store remove failed", "key", key, "error", err)
	}
}

type nullStore struct{}

// Null returns the store used when there is no persistent storage.
func Null() Store { return nullStore{} }

func (nullStore) Available() bool { return false }

func (nullStore) Read(context.Context, string) (string, bool) { return "", false }

func (nullStore) Write(context.Context, string, string) {}

func (nullStore) Remove(context.Context, string) {}
