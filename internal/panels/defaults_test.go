package panels

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSizes_EqualSplit(t *testing.T) {
	sizes, err := DefaultSizes(threePanels(t))
	require.NoError(t, err)

	require.Len(t, sizes, 3)
	for _, s := range sizes {
		assert.InDelta(t, 33.33, s, 0.01)
	}
	assert.True(t, SizesEqual(100, Total(sizes)))
}

func TestDefaultSizes_ExplicitAndAuto(t *testing.T) {
	sorted := []*Panel{
		mustPanel(t, Config{ID: "a", DefaultSize: Size(50)}),
		mustPanel(t, Config{ID: "b", Order: 1}),
		mustPanel(t, Config{ID: "c", Order: 2}),
	}

	sizes, err := DefaultSizes(sorted)
	require.NoError(t, err)
	assert.Equal(t, []float64{50, 25, 25}, sizes)
}

func TestDefaultSizes_AllExplicitScaled(t *testing.T) {
	sorted := []*Panel{
		mustPanel(t, Config{ID: "a", DefaultSize: Size(20)}),
		mustPanel(t, Config{ID: "b", Order: 1, DefaultSize: Size(30)}),
	}

	sizes, err := DefaultSizes(sorted)
	require.NoError(t, err)
	assertSizes(t, []float64{40, 60}, sizes)
}

func TestDefaultSizes_ValidationErrors(t *testing.T) {
	tooMuchDefault := []*Panel{
		mustPanel(t, Config{ID: "a", DefaultSize: Size(70)}),
		mustPanel(t, Config{ID: "b", Order: 1, DefaultSize: Size(40)}),
	}
	_, err := DefaultSizes(tooMuchDefault)
	assert.True(t, errors.Is(err, ErrDefaultSumExceeded))

	tooMuchMin := []*Panel{
		mustPanel(t, Config{ID: "a", MinSize: Size(60)}),
		mustPanel(t, Config{ID: "b", Order: 1, MinSize: Size(50)}),
	}
	_, err = DefaultSizes(tooMuchMin)
	assert.True(t, errors.Is(err, ErrMinSumExceeded))
}

func TestDefaultSizes_SharedSpaceOutsideBounds(t *testing.T) {
	belowMin := []*Panel{
		mustPanel(t, Config{ID: "a", MinSize: Size(5), DefaultSize: Size(95)}),
		mustPanel(t, Config{ID: "b", Order: 1, MinSize: Size(10)}),
	}
	_, err := DefaultSizes(belowMin)
	require.ErrorIs(t, err, ErrDefaultOutOfBounds)
	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "b", cfgErr.PanelID)

	aboveMax := []*Panel{
		mustPanel(t, Config{ID: "a", DefaultSize: Size(20)}),
		mustPanel(t, Config{ID: "b", Order: 1, MaxSize: Size(50)}),
	}
	_, err = DefaultSizes(aboveMax)
	assert.ErrorIs(t, err, ErrDefaultOutOfBounds)

	scaledAboveMax := []*Panel{
		mustPanel(t, Config{ID: "a", MaxSize: Size(40), DefaultSize: Size(40)}),
		mustPanel(t, Config{ID: "b", Order: 1, DefaultSize: Size(40)}),
	}
	_, err = DefaultSizes(scaledAboveMax)
	assert.ErrorIs(t, err, ErrDefaultOutOfBounds)

	// 折叠面板可以从 0 开始
	collapsed := []*Panel{
		mustPanel(t, Config{ID: "a", MinSize: Size(20), DefaultSize: Size(0), Collapsible: true}),
		mustPanel(t, Config{ID: "b", Order: 1, DefaultSize: Size(100)}),
	}
	sizes, err := DefaultSizes(collapsed)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 100}, sizes)
}

func TestFitSizes(t *testing.T) {
	sorted := []*Panel{
		mustPanel(t, Config{ID: "a", MaxSize: Size(40)}),
		mustPanel(t, Config{ID: "b", Order: 1, MinSize: Size(20), MaxSize: Size(50)}),
		mustPanel(t, Config{ID: "c", Order: 2, MinSize: Size(10)}),
	}

	assertSizes(t, []float64{40, 50, 10}, FitSizes(sorted, []float64{80, 10, 10}))
	assertSizes(t, []float64{30, 30, 40}, FitSizes(sorted, []float64{30, 30, 40}))
	assertSizes(t, []float64{10, 20, 70}, FitSizes(sorted, []float64{100, 100, 100}))

	collapsible := []*Panel{
		mustPanel(t, Config{ID: "a", MinSize: Size(20), Collapsible: true}),
		mustPanel(t, Config{ID: "b", Order: 1, MaxSize: Size(60)}),
		mustPanel(t, Config{ID: "c", Order: 2}),
	}
	assertSizes(t, []float64{0, 60, 40}, FitSizes(collapsible, []float64{0, 80, 20}))
}

func TestDefaultSizes_Empty(t *testing.T) {
	sizes, err := DefaultSizes(nil)
	assert.NoError(t, err)
	assert.Empty(t, sizes)
}
