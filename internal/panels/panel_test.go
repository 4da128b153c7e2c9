package panels

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPanel_Defaults(t *testing.T) {
	p, err := NewPanel(Config{ID: "left"})
	require.NoError(t, err)

	assert.Equal(t, "left", p.ID)
	assert.Equal(t, 10.0, p.MinSize)
	assert.Equal(t, 100.0, p.MaxSize)
	assert.Nil(t, p.DefaultSize)
	assert.False(t, p.Collapsible)
}

func TestNewPanel_GeneratesUniqueIDs(t *testing.T) {
	a, err := NewPanel(Config{})
	require.NoError(t, err)
	b, err := NewPanel(Config{})
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestNewPanel_ConstructionErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"min above max", Config{MinSize: Size(60), MaxSize: Size(50)}, ErrMinExceedsMax},
		{"min above default", Config{MinSize: Size(30), DefaultSize: Size(20)}, ErrMinExceedsDefault},
		{"min out of range", Config{MinSize: Size(-1)}, ErrOutOfRange},
		{"max out of range", Config{MaxSize: Size(101)}, ErrOutOfRange},
		{"default out of range", Config{DefaultSize: Size(120)}, ErrOutOfRange},
		{"default above max", Config{MaxSize: Size(40), DefaultSize: Size(80)}, ErrDefaultExceedsMax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPanel(tt.cfg)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)

			var cfgErr *ConfigError
			assert.True(t, errors.As(err, &cfgErr))
		})
	}
}

func TestNewPanel_CollapsibleMayDefaultBelowMin(t *testing.T) {
	p, err := NewPanel(Config{MinSize: Size(30), DefaultSize: Size(0), Collapsible: true})
	require.NoError(t, err)
	assert.Equal(t, 0.0, *p.DefaultSize)
}

func TestSortPanels_ByOrderThenInputOrder(t *testing.T) {
	list := []*Panel{
		{ID: "c", Order: 2},
		{ID: "x", Order: 1},
		{ID: "a", Order: 0},
		{ID: "y", Order: 1},
	}

	sorted := SortPanels(list)
	assert.Equal(t, []string{"a", "x", "y", "c"}, IDs(sorted))
	// input untouched
	assert.Equal(t, "c", list[0].ID)
}

func TestBeforeAndAfter(t *testing.T) {
	sorted := []*Panel{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	before, after, ok := BeforeAndAfter("a", sorted)
	assert.True(t, ok)
	assert.Equal(t, "a", before)
	assert.Equal(t, "b", after)

	before, after, ok = BeforeAndAfter("c", sorted)
	assert.True(t, ok)
	assert.Equal(t, "b", before)
	assert.Equal(t, "c", after)

	_, _, ok = BeforeAndAfter("zzz", sorted)
	assert.False(t, ok)

	_, _, ok = BeforeAndAfter("a", sorted[:1])
	assert.False(t, ok)
}

func TestDividerPanels(t *testing.T) {
	sorted := []*Panel{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	before, after, ok := DividerPanels(1, sorted)
	assert.True(t, ok)
	assert.Equal(t, "b", before)
	assert.Equal(t, "c", after)

	_, _, ok = DividerPanels(2, sorted)
	assert.False(t, ok)
	_, _, ok = DividerPanels(-1, sorted)
	assert.False(t, ok)
}

func TestSizesEqual(t *testing.T) {
	assert.True(t, SizesEqual(20, 19.999999999999996))
	assert.True(t, SizesEqual(0.1+0.2, 0.3))
	assert.False(t, SizesEqual(20, 20.001))
	assert.Equal(t, "33.33333333", FormatSize(100.0/3))
}
