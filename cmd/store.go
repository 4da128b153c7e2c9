package cmd

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/HaiFongPan/panes-cli/internal/config"
	"github.com/HaiFongPan/panes-cli/internal/persist"
	"github.com/HaiFongPan/panes-cli/internal/r2"
)

// buildStore creates the layout store selected by persist.backend. It returns
// nil when persistence is disabled.
func buildStore(ctx context.Context, cfg *config.Config) (persist.Store, error) {
	var store persist.Store
	switch cfg.Persist.Backend {
	case config.BackendNone:
		return nil, nil
	case config.BackendMemory:
		store = persist.NewMemoryStore()
	case config.BackendFile:
		store = persist.NewFileStore(cfg.Persist.Dir)
	case config.BackendR2:
		client, err := r2.NewClient(ctx, &cfg.R2)
		if err != nil {
			return nil, fmt.Errorf("failed to create R2 client: %w", err)
		}
		store = client.LayoutStore(cfg.Persist.Prefix)
	default:
		return nil, fmt.Errorf("unknown persist backend: %s", cfg.Persist.Backend)
	}

	logrus.WithField("backend", cfg.Persist.Backend).Debug("Layout store ready")
	return persist.NewTracedStore(store), nil
}

// describeStore names the backend behind store for command output.
func describeStore(store persist.Store) string {
	if traced, ok := store.(*persist.TracedStore); ok {
		store = traced.Unwrap()
	}
	switch s := store.(type) {
	case *persist.FileStore:
		return "file " + s.Dir()
	case *persist.R2Store:
		return "r2"
	case *persist.MemoryStore:
		return "memory"
	}
	return "unknown"
}
