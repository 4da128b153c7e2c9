package persist

import (
	"context"
	"fmt"
	"strings"
)

// SavedLayouts maps a serialization key to the sizes last committed for that
// panel set. One auto-save id may hold layouts for several panel sets.
type SavedLayouts map[string][]float64

// Store reads and writes saved layouts for an auto-save id.
type Store interface {
	Load(ctx context.Context, autoSaveID string) (SavedLayouts, error)
	Save(ctx context.Context, autoSaveID string, layouts SavedLayouts) error
}

// Deleter is implemented by stores that can drop everything saved under an id.
type Deleter interface {
	Delete(ctx context.Context, autoSaveID string) error
}

// Key builds the serialization key of a panel set from its ids in panel order.
// The saved vector is aligned to that order, so reordered panels get a new key.
func Key(ids []string) string {
	return strings.Join(ids, ",")
}

// LoadLayout returns the saved sizes for exactly this panel set, or nil.
func LoadLayout(ctx context.Context, store Store, autoSaveID string, ids []string) ([]float64, error) {
	layouts, err := store.Load(ctx, autoSaveID)
	if err != nil {
		return nil, err
	}

	sizes, ok := layouts[Key(ids)]
	if !ok || len(sizes) != len(ids) {
		return nil, nil
	}

	out := make([]float64, len(sizes))
	copy(out, sizes)
	return out, nil
}

// SaveLayout stores sizes for the panel set, keeping layouts saved for other sets.
func SaveLayout(ctx context.Context, store Store, autoSaveID string, ids []string, sizes []float64) error {
	layouts, err := store.Load(ctx, autoSaveID)
	if err != nil {
		return fmt.Errorf("failed to load layouts: %w", err)
	}
	if layouts == nil {
		layouts = SavedLayouts{}
	}

	snapshot := make([]float64, len(sizes))
	copy(snapshot, sizes)
	layouts[Key(ids)] = snapshot

	return store.Save(ctx, autoSaveID, layouts)
}
