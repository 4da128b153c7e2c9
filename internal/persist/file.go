package persist

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

// layoutFile is the on-disk document for one auto-save id.
type layoutFile struct {
	AutoSaveID string       `json:"auto_save_id"`
	Layouts    SavedLayouts `json:"layouts"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// FileStore keeps one JSON file per auto-save id in a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a store rooted at dir. An empty dir uses DefaultDir.
func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = DefaultDir()
	}
	return &FileStore{dir: dir}
}

// DefaultDir returns ~/.panes-cli/layouts, or a relative fallback without a home.
func DefaultDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".panes-cli", "layouts")
	}
	return filepath.Join(homeDir, ".panes-cli", "layouts")
}

// Dir returns the directory holding the layout files.
func (f *FileStore) Dir() string {
	return f.dir
}

func (f *FileStore) path(autoSaveID string) string {
	return filepath.Join(f.dir, unsafeName.ReplaceAllString(autoSaveID, "_")+".json")
}

// Load reads the saved layouts. A missing file is an empty result.
func (f *FileStore) Load(_ context.Context, autoSaveID string) (SavedLayouts, error) {
	data, err := os.ReadFile(f.path(autoSaveID))
	if os.IsNotExist(err) {
		return SavedLayouts{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file: %w", err)
	}

	var doc layoutFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse layout file: %w", err)
	}
	if doc.Layouts == nil {
		doc.Layouts = SavedLayouts{}
	}
	return doc.Layouts, nil
}

// Save writes the layouts, replacing the previous file atomically.
func (f *FileStore) Save(_ context.Context, autoSaveID string, layouts SavedLayouts) error {
	if err := os.MkdirAll(f.dir, 0700); err != nil {
		return fmt.Errorf("failed to create layout directory: %w", err)
	}

	data, err := json.MarshalIndent(layoutFile{
		AutoSaveID: autoSaveID,
		Layouts:    layouts,
		UpdatedAt:  time.Now(),
	}, "", "  ")
	if err != nil {
		return err
	}

	target := f.path(autoSaveID)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write layout file: %w", err)
	}
	return os.Rename(tmp, target)
}

// Delete removes the file for autoSaveID. Deleting a missing file is not an error.
func (f *FileStore) Delete(_ context.Context, autoSaveID string) error {
	err := os.Remove(f.path(autoSaveID))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
