package group

import "github.com/HaiFongPan/panes-cli/internal/panels"

// SetBounds records where the group is drawn along its axis.
func (g *Group) SetBounds(b Bounds) {
	if b.Length < 0 {
		b.Length = 0
	}
	g.bounds = b
}

// Bounds returns the container bounds.
func (g *Group) Bounds() Bounds {
	return g.bounds
}

// extent is the number of cells shared by panels: the container minus one
// cell per divider.
func (g *Group) extent() int {
	n := g.bounds.Length - len(g.dividers)
	if n < 0 {
		return 0
	}
	return n
}

// FlexGrow returns the relative growth value of panel id.
func (g *Group) FlexGrow(id string) string {
	return panels.FlexGrow(g.Panels(), id, g.sizes)
}

// PanelCells returns the cells given to each panel in order. Before the group
// stabilizes the panels share the space equally.
func (g *Group) PanelCells() []int {
	n := len(g.registered)
	sizes := g.sizes
	if len(sizes) != n {
		sizes = make([]float64, n)
		for i := range sizes {
			sizes[i] = 100 / float64(n)
		}
	}
	return panels.Allocate(sizes, g.extent())
}

// DividerOffset returns the cell position of divider id, or -1.
func (g *Group) DividerOffset(id string) int {
	i := g.dividerIndex(id)
	if i < 0 {
		return -1
	}

	offset := g.bounds.Offset
	cells := g.PanelCells()
	for k := 0; k <= i && k < len(cells); k++ {
		offset += cells[k]
	}
	return offset + i
}

// HitDivider returns the divider drawn at cell pos.
func (g *Group) HitDivider(pos int) (string, bool) {
	for _, d := range g.dividers {
		if g.DividerOffset(d.ID) == pos {
			return d.ID, true
		}
	}
	return "", false
}
