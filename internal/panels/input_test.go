package panels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyMovement_Orientation(t *testing.T) {
	assert.Equal(t, -2.0, KeyMovement(KeyArrowLeft, false, Horizontal, 200))
	assert.Equal(t, 2.0, KeyMovement(KeyArrowRight, false, Horizontal, 200))
	assert.Equal(t, 0.0, KeyMovement(KeyArrowUp, false, Horizontal, 200))
	assert.Equal(t, -20.0, KeyMovement(KeyArrowUp, true, Vertical, 200))
	assert.Equal(t, 20.0, KeyMovement(KeyArrowDown, true, Vertical, 200))
	assert.Equal(t, 0.0, KeyMovement(KeyArrowRight, false, Vertical, 200))
	assert.Equal(t, -200.0, KeyMovement(KeyHome, false, Vertical, 200))
	assert.Equal(t, 200.0, KeyMovement(KeyEnd, false, Horizontal, 200))
}

func TestKeyboardDelta_Steps(t *testing.T) {
	sorted := threePanels(t)
	sizes := []float64{30, 40, 30}

	assert.InDelta(t, 1, KeyboardDelta(KeyArrowRight, false, Horizontal, 80, sorted, sizes, "a", "b"), 1e-9)
	assert.InDelta(t, -10, KeyboardDelta(KeyArrowLeft, true, Horizontal, 80, sorted, sizes, "a", "b"), 1e-9)
	assert.InDelta(t, 100, KeyboardDelta(KeyEnd, false, Horizontal, 80, sorted, sizes, "a", "b"), 1e-9)
	assert.Equal(t, 0.0, KeyboardDelta(KeyArrowUp, false, Horizontal, 80, sorted, sizes, "a", "b"))
}

func TestKeyboardDelta_CollapsesPanelAtMinSize(t *testing.T) {
	sorted := []*Panel{
		mustPanel(t, Config{ID: "side", MinSize: Size(20), Collapsible: true}),
		mustPanel(t, Config{ID: "main", Order: 1}),
	}
	sizes := []float64{20, 80}

	delta := KeyboardDelta(KeyArrowLeft, false, Horizontal, 120, sorted, sizes, "side", "main")
	assert.Equal(t, -20.0, delta)

	next := AdjustByDelta(sorted, "side", "main", delta, sizes, CollapseMemory{})
	require.False(t, Same(sizes, next))
	assert.Equal(t, 0.0, next[0], "must land exactly on 0, never inside (0, 20)")
	assert.InDelta(t, 100, next[1], 1e-9)
}

func TestKeyboardDelta_ExpandsCollapsedPanel(t *testing.T) {
	sorted := []*Panel{
		mustPanel(t, Config{ID: "side", MinSize: Size(20), Collapsible: true}),
		mustPanel(t, Config{ID: "main", Order: 1}),
	}
	sizes := []float64{0, 100}

	delta := KeyboardDelta(KeyArrowRight, false, Horizontal, 120, sorted, sizes, "side", "main")
	assert.Equal(t, 20.0, delta)

	next := AdjustByDelta(sorted, "side", "main", delta, sizes, CollapseMemory{})
	assertSizes(t, []float64{20, 80}, next)
}

func TestKeyboardDelta_HomeEndNotOverridden(t *testing.T) {
	sorted := []*Panel{
		mustPanel(t, Config{ID: "side", MinSize: Size(20), Collapsible: true}),
		mustPanel(t, Config{ID: "main", Order: 1}),
	}
	sizes := []float64{20, 80}

	assert.Equal(t, -100.0, KeyboardDelta(KeyHome, false, Horizontal, 120, sorted, sizes, "side", "main"))
}

func TestDragMovementAndPercent(t *testing.T) {
	movement := DragMovement(52, 40, 2)
	assert.Equal(t, 10.0, movement)
	assert.Equal(t, 12.5, PercentDelta(movement, 80))
	assert.Equal(t, 0.0, PercentDelta(10, 0))
}

func TestToggleDelta(t *testing.T) {
	sorted := threePanels(t)

	assert.Equal(t, 100.0, ToggleDelta(sorted, []float64{10, 50, 40}, "a"))
	assert.Equal(t, -100.0, ToggleDelta(sorted, []float64{30, 30, 40}, "a"))
	assert.Equal(t, 0.0, ToggleDelta(sorted, []float64{30, 30, 40}, "missing"))
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("Vertical")
	require.NoError(t, err)
	assert.Equal(t, Vertical, d)
	assert.Equal(t, "vertical", d.String())

	_, err = ParseDirection("diagonal")
	assert.Error(t, err)
}
