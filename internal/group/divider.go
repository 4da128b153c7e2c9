package group

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/HaiFongPan/panes-cli/internal/panels"
)

func (g *Group) syncDividers(panelCount int) {
	n := panelCount - 1
	if n < 0 {
		n = 0
	}
	for len(g.dividers) < n {
		g.dividers = append(g.dividers, Divider{ID: fmt.Sprintf("%s-divider-%d", g.id, len(g.dividers))})
	}
	if len(g.dividers) > n {
		for _, d := range g.dividers[n:] {
			if d.ID == g.activeDivider {
				g.StopDragging()
			}
		}
		g.dividers = g.dividers[:n]
	}
}

// Dividers returns the dividers in order.
func (g *Group) Dividers() []Divider {
	out := make([]Divider, len(g.dividers))
	copy(out, g.dividers)
	return out
}

func (g *Group) dividerIndex(id string) int {
	for i, d := range g.dividers {
		if d.ID == id {
			return i
		}
	}
	return -1
}

// SetDividerDisabled enables or disables a divider. Disabled dividers ignore
// drags and key presses.
func (g *Group) SetDividerDisabled(id string, disabled bool) bool {
	i := g.dividerIndex(id)
	if i < 0 {
		return false
	}
	g.dividers[i].Disabled = disabled
	if disabled && g.activeDivider == id {
		g.StopDragging()
	}
	return true
}

// DividerPanels returns the ids of the panels on both sides of divider id.
func (g *Group) DividerPanels(id string) (idBefore, idAfter string, ok bool) {
	i := g.dividerIndex(id)
	if i < 0 {
		return "", "", false
	}
	return panels.DividerPanels(i, g.Panels())
}

// NextDivider returns the divider after current, or before it when backward
// is set, wrapping around. An unknown current starts from either end.
func (g *Group) NextDivider(current string, backward bool) string {
	n := len(g.dividers)
	if n == 0 {
		return ""
	}

	i := g.dividerIndex(current)
	switch {
	case i < 0 && backward:
		i = n - 1
	case i < 0:
		i = 0
	case backward:
		i = (i - 1 + n) % n
	default:
		i = (i + 1) % n
	}
	return g.dividers[i].ID
}

// KeyDown applies a key press on divider id. Enter toggles the panel before
// the divider between collapsed and expanded.
func (g *Group) KeyDown(id string, key panels.Key, coarse bool) bool {
	i := g.dividerIndex(id)
	if i < 0 || g.dividers[i].Disabled || !g.Stabilized() {
		return false
	}

	sorted := g.Panels()
	idBefore, idAfter, ok := panels.DividerPanels(i, sorted)
	if !ok {
		return false
	}

	var delta float64
	if key == panels.KeyEnter {
		delta = panels.ToggleDelta(sorted, g.sizes, idBefore)
	} else {
		extent := float64(g.extent())
		if extent <= 0 {
			extent = 100
		}
		delta = panels.KeyboardDelta(key, coarse, g.direction, extent, sorted, g.sizes, idBefore, idAfter)
	}
	if delta == 0 {
		return false
	}
	return g.adjust(idBefore, idAfter, delta)
}

// StartDragging activates divider id. pointer is the pointer position along
// the group axis, in cells.
func (g *Group) StartDragging(id string, pointer int) bool {
	i := g.dividerIndex(id)
	if i < 0 || g.dividers[i].Disabled || g.activeDivider != "" {
		return false
	}

	g.activeDivider = id
	g.initialOffset = pointer - g.DividerOffset(id)
	g.limit = LimitNone
	logrus.WithFields(logrus.Fields{
		"group":   g.id,
		"divider": id,
	}).Debug("Drag started")
	return true
}

// Drag moves the active divider towards pointer.
func (g *Group) Drag(pointer int) bool {
	if g.activeDivider == "" {
		return false
	}
	idBefore, idAfter, ok := g.DividerPanels(g.activeDivider)
	if !ok {
		return false
	}

	movement := panels.DragMovement(float64(pointer), float64(g.DividerOffset(g.activeDivider)), float64(g.initialOffset))
	delta := panels.PercentDelta(movement, float64(g.extent()))
	if delta == 0 {
		return false
	}

	if !g.adjust(idBefore, idAfter, delta) {
		if delta < 0 {
			g.limit = LimitMin
		} else {
			g.limit = LimitMax
		}
		return false
	}
	g.limit = LimitNone
	return true
}

// StopDragging deactivates the active divider.
func (g *Group) StopDragging() {
	if g.activeDivider == "" {
		return
	}
	logrus.WithFields(logrus.Fields{
		"group":   g.id,
		"divider": g.activeDivider,
	}).Debug("Drag stopped")
	g.activeDivider = ""
	g.initialOffset = 0
	g.limit = LimitNone
}

// Dragging reports whether a divider is being dragged.
func (g *Group) Dragging() bool {
	return g.activeDivider != ""
}

// ActiveDivider returns the id of the dragged divider, or "".
func (g *Group) ActiveDivider() string {
	return g.activeDivider
}

// Limit returns the bound that stopped the last drag move.
func (g *Group) Limit() Limit {
	return g.limit
}

// Separator returns the accessibility values of divider id.
func (g *Group) Separator(id string) (panels.SeparatorValues, bool) {
	idBefore, _, ok := g.DividerPanels(id)
	if !ok {
		return panels.SeparatorValues{}, false
	}
	return panels.Separator(g.Panels(), g.sizes, idBefore), true
}
