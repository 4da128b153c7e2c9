package group

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HaiFongPan/panes-cli/internal/panels"
)

func newPairGroup(t *testing.T, a, b panels.Config) (*Group, string) {
	t.Helper()
	g := New(Options{ID: "g"})
	_, err := g.RegisterAll(a, b)
	require.NoError(t, err)
	g.SetBounds(Bounds{Offset: 0, Length: 101})
	return g, "g-divider-0"
}

// TestKeyDown_CollapsesAtMinSize 测试键盘一步折叠到 0
func TestKeyDown_CollapsesAtMinSize(t *testing.T) {
	g, divider := newPairGroup(t,
		panels.Config{ID: "a", Collapsible: true, MinSize: panels.Size(20), DefaultSize: panels.Size(20)},
		panels.Config{ID: "b", DefaultSize: panels.Size(80)},
	)

	require.True(t, g.KeyDown(divider, panels.KeyArrowLeft, false))
	assertSizes(t, []float64{0, 100}, g.Sizes())

	require.True(t, g.KeyDown(divider, panels.KeyArrowRight, false))
	assertSizes(t, []float64{20, 80}, g.Sizes())
}

func TestKeyDown_Steps(t *testing.T) {
	g, divider := newPairGroup(t, panels.Config{ID: "a"}, panels.Config{ID: "b"})

	require.True(t, g.KeyDown(divider, panels.KeyArrowRight, false))
	assertSizes(t, []float64{51, 49}, g.Sizes())

	require.True(t, g.KeyDown(divider, panels.KeyArrowLeft, true))
	assertSizes(t, []float64{41, 59}, g.Sizes())

	// vertical keys do nothing on a horizontal group
	assert.False(t, g.KeyDown(divider, panels.KeyArrowUp, false))

	require.True(t, g.KeyDown(divider, panels.KeyEnd, false))
	assertSizes(t, []float64{90, 10}, g.Sizes())
	assert.False(t, g.KeyDown(divider, panels.KeyEnd, false))

	require.True(t, g.KeyDown(divider, panels.KeyHome, false))
	assertSizes(t, []float64{10, 90}, g.Sizes())
}

func TestKeyDown_EnterToggles(t *testing.T) {
	g, divider := newPairGroup(t,
		panels.Config{ID: "a", Collapsible: true, MinSize: panels.Size(20)},
		panels.Config{ID: "b"},
	)

	require.True(t, g.KeyDown(divider, panels.KeyEnter, false))
	assertSizes(t, []float64{0, 100}, g.Sizes())

	require.True(t, g.KeyDown(divider, panels.KeyEnter, false))
	assert.Greater(t, g.Sizes()[0], 20.0)
}

func TestKeyDown_DisabledDivider(t *testing.T) {
	g, divider := newPairGroup(t, panels.Config{ID: "a"}, panels.Config{ID: "b"})

	require.True(t, g.SetDividerDisabled(divider, true))
	assert.False(t, g.KeyDown(divider, panels.KeyArrowRight, false))
	assert.False(t, g.StartDragging(divider, 50))
	assert.False(t, g.SetDividerDisabled("nope", true))
}

// TestDrag_FollowsPointer 测试拖拽时分隔条跟随指针
func TestDrag_FollowsPointer(t *testing.T) {
	g, divider := newPairGroup(t,
		panels.Config{ID: "a", MaxSize: panels.Size(60)},
		panels.Config{ID: "b"},
	)
	assert.Equal(t, 50, g.DividerOffset(divider))

	require.True(t, g.StartDragging(divider, 50))
	assert.True(t, g.Dragging())
	assert.Equal(t, divider, g.ActiveDivider())

	require.True(t, g.Drag(60))
	assertSizes(t, []float64{60, 40}, g.Sizes())
	assert.Equal(t, 60, g.DividerOffset(divider))
	assert.Equal(t, LimitNone, g.Limit())

	// a is at its maxSize
	assert.False(t, g.Drag(70))
	assert.Equal(t, LimitMax, g.Limit())

	require.True(t, g.Drag(45))
	assertSizes(t, []float64{45, 55}, g.Sizes())
	assert.Equal(t, LimitNone, g.Limit())

	require.True(t, g.Drag(0))
	assertSizes(t, []float64{10, 90}, g.Sizes())
	assert.False(t, g.Drag(0))
	assert.Equal(t, LimitMin, g.Limit())

	g.StopDragging()
	assert.False(t, g.Dragging())
	assert.Equal(t, LimitNone, g.Limit())
	assert.False(t, g.Drag(80))
}

func TestDrag_KeepsGrabOffset(t *testing.T) {
	g, divider := newPairGroup(t, panels.Config{ID: "a"}, panels.Config{ID: "b"})

	// grabbed one cell to the right of the divider
	require.True(t, g.StartDragging(divider, 51))
	assert.False(t, g.Drag(51))
	require.True(t, g.Drag(61))
	assertSizes(t, []float64{60, 40}, g.Sizes())

	assert.False(t, g.StartDragging(divider, 10))
}

func TestNextDivider_Wraps(t *testing.T) {
	log := newCallbackLog()
	g, _ := newThreePanelGroup(t, log)

	assert.Equal(t, "g-divider-0", g.NextDivider("", false))
	assert.Equal(t, "g-divider-1", g.NextDivider("", true))
	assert.Equal(t, "g-divider-1", g.NextDivider("g-divider-0", false))
	assert.Equal(t, "g-divider-0", g.NextDivider("g-divider-1", false))
	assert.Equal(t, "g-divider-1", g.NextDivider("g-divider-0", true))

	assert.Equal(t, "", New(Options{}).NextDivider("", false))
}

func TestSeparator_Values(t *testing.T) {
	log := newCallbackLog()
	g, _ := newThreePanelGroup(t, log)

	values, ok := g.Separator("g-divider-0")
	require.True(t, ok)
	assert.Equal(t, "separator", values.Role)
	assert.Equal(t, "left", values.Controls)
	assert.Equal(t, 10, values.Min)
	assert.Equal(t, 80, values.Max)
	assert.Equal(t, 33, values.Now)
	assert.Equal(t, 0, values.TabIndex)

	_, ok = g.Separator("missing")
	assert.False(t, ok)
}

func TestGeometry_CellsAndHitTesting(t *testing.T) {
	log := newCallbackLog()
	g, _ := newThreePanelGroup(t, log)
	g.SetBounds(Bounds{Offset: 2, Length: 102})

	cells := g.PanelCells()
	require.Len(t, cells, 3)
	assert.Equal(t, 100, cells[0]+cells[1]+cells[2])

	first := 2 + cells[0]
	second := first + 1 + cells[1]
	id, ok := g.HitDivider(first)
	require.True(t, ok)
	assert.Equal(t, "g-divider-0", id)

	id, ok = g.HitDivider(second)
	require.True(t, ok)
	assert.Equal(t, "g-divider-1", id)

	_, ok = g.HitDivider(first + 1)
	assert.False(t, ok)

	assert.Equal(t, panels.FormatSize(100.0/3), g.FlexGrow("left"))
	assert.Equal(t, "0", g.FlexGrow("missing"))
}
