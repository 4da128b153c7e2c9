package persist

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey_FollowsPanelOrder(t *testing.T) {
	assert.Equal(t, "c,a,b", Key([]string{"c", "a", "b"}))
	assert.NotEqual(t, Key([]string{"x", "y"}), Key([]string{"y", "x"}))
}

// TestLoadLayout_ReorderedPanelsMiss 测试面板顺序变化后不会套用旧尺寸
func TestLoadLayout_ReorderedPanelsMiss(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, SaveLayout(ctx, store, "main", []string{"tree", "code"}, []float64{25, 75}))

	sizes, err := LoadLayout(ctx, store, "main", []string{"code", "tree"})
	require.NoError(t, err)
	assert.Nil(t, sizes)
}

func TestLoadLayout_MatchesPanelSet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, SaveLayout(ctx, store, "main", []string{"left", "right"}, []float64{30, 70}))

	sizes, err := LoadLayout(ctx, store, "main", []string{"left", "right"})
	require.NoError(t, err)
	assert.Equal(t, []float64{30, 70}, sizes)

	// a different panel set falls back to nothing
	sizes, err = LoadLayout(ctx, store, "main", []string{"left", "middle", "right"})
	require.NoError(t, err)
	assert.Nil(t, sizes)

	sizes, err = LoadLayout(ctx, store, "other", []string{"left", "right"})
	require.NoError(t, err)
	assert.Nil(t, sizes)
}

func TestSaveLayout_KeepsOtherPanelSets(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, SaveLayout(ctx, store, "main", []string{"a", "b"}, []float64{50, 50}))
	require.NoError(t, SaveLayout(ctx, store, "main", []string{"a", "b", "c"}, []float64{20, 30, 50}))

	layouts, err := store.Load(ctx, "main")
	require.NoError(t, err)
	assert.Len(t, layouts, 2)
	assert.Equal(t, []float64{50, 50}, layouts["a,b"])
	assert.Equal(t, []float64{20, 30, 50}, layouts["a,b,c"])
}

func TestLoadLayout_RejectsWrongLength(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Save(ctx, "main", SavedLayouts{"a,b": {100}}))

	sizes, err := LoadLayout(ctx, store, "main", []string{"a", "b"})
	require.NoError(t, err)
	assert.Nil(t, sizes)
}

type failingStore struct{}

func (failingStore) Load(context.Context, string) (SavedLayouts, error) {
	return nil, errors.New("boom")
}

func (failingStore) Save(context.Context, string, SavedLayouts) error {
	return errors.New("boom")
}

// flakyStore fails Load while broken is set.
type flakyStore struct {
	*MemoryStore
	broken bool
}

func (f *flakyStore) Load(ctx context.Context, autoSaveID string) (SavedLayouts, error) {
	if f.broken {
		return nil, errors.New("read timeout")
	}
	return f.MemoryStore.Load(ctx, autoSaveID)
}

// TestSaveLayout_LoadErrorKeepsSavedLayouts 测试读取失败时不会覆盖已保存的其它布局
func TestSaveLayout_LoadErrorKeepsSavedLayouts(t *testing.T) {
	ctx := context.Background()
	store := &flakyStore{MemoryStore: NewMemoryStore()}
	require.NoError(t, SaveLayout(ctx, store, "main", []string{"a", "b"}, []float64{30, 70}))

	store.broken = true
	err := SaveLayout(ctx, store, "main", []string{"a", "b", "c"}, []float64{20, 30, 50})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load layouts")
	assert.Contains(t, err.Error(), "read timeout")

	store.broken = false
	layouts, err := store.Load(ctx, "main")
	require.NoError(t, err)
	assert.Equal(t, SavedLayouts{"a,b": {30, 70}}, layouts)
}

func TestLoadLayout_StoreError(t *testing.T) {
	sizes, err := LoadLayout(context.Background(), failingStore{}, "main", []string{"a"})
	assert.Error(t, err)
	assert.Nil(t, sizes)
}

func TestFileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "layouts")
	store := NewFileStore(dir)

	layouts, err := store.Load(ctx, "editor")
	require.NoError(t, err)
	assert.Empty(t, layouts)

	require.NoError(t, SaveLayout(ctx, store, "editor", []string{"tree", "code"}, []float64{25, 75}))

	_, err = os.Stat(filepath.Join(dir, "editor.json"))
	require.NoError(t, err)

	sizes, err := LoadLayout(ctx, store, "editor", []string{"tree", "code"})
	require.NoError(t, err)
	assert.Equal(t, []float64{25, 75}, sizes)

	require.NoError(t, store.Delete(ctx, "editor"))
	require.NoError(t, store.Delete(ctx, "editor"))

	layouts, err = store.Load(ctx, "editor")
	require.NoError(t, err)
	assert.Empty(t, layouts)
}

func TestFileStore_SanitizesName(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)

	require.NoError(t, store.Save(context.Background(), "../weird id", SavedLayouts{"a": {100}}))

	_, err := os.Stat(filepath.Join(dir, ".._weird_id.json"))
	assert.NoError(t, err)
}

func TestFileStore_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0644))

	_, err := NewFileStore(dir).Load(context.Background(), "broken")
	assert.Error(t, err)
}
