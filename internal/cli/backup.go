package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/taskflow/internal/filex"
)

var ErrNoBackend = errors.New("no persistent storage configured")

// Export writes every key of the local store to path as a JSON object of
// string values.
func (a *App) Export(ctx context.Context, path string) error {
	if a.repo == nil {
		return ErrNoBackend
	}

	entries, err := a.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	dump := make(map[string]string, len(entries))
	for k, v := range entries {
		dump[k] = string(v)
	}

	data, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	if err := filex.EnsureParentDir(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	a.logger.Info(ctx, "store exported", "path", path, "keys", len(dump))
	printlnFn(fmt.Sprintf("Exported %d keys to %s.", len(dump), path))
	return nil
}

// Import replaces the whole local store with the JSON object in path. The
// session is re-derived afterwards since the token may have changed.
func (a *App) Import(ctx context.Context, path string) error {
	if a.repo == nil {
		return ErrNoBackend
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	var dump map[string]string
	if err := json.Unmarshal(data, &dump); err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	entries := make(map[string][]byte, len(dump))
	for k, v := range dump {
		entries[k] = []byte(v)
	}

	if err := a.repo.Replace(ctx, entries); err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	a.refreshMode(ctx)
	a.logger.Info(ctx, "store imported", "path", path, "keys", len(entries))
	printlnFn(fmt.Sprintf("Imported %d keys from %s.", len(entries), path))
	return nil
}
