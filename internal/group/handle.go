package group

// PanelHandle controls one registered panel.
type PanelHandle struct {
	group *Group
	id    string
}

// ID returns the panel id.
func (h *PanelHandle) ID() string {
	return h.id
}

// Collapse collapses the panel if it is collapsible.
func (h *PanelHandle) Collapse() bool {
	return h.group.CollapsePanel(h.id)
}

// Expand restores a collapsed panel.
func (h *PanelHandle) Expand() bool {
	return h.group.ExpandPanel(h.id)
}

// Collapsed reports whether the committed size is exactly 0.
func (h *PanelHandle) Collapsed() bool {
	_, size, ok := h.group.panelSize(h.id)
	return ok && size == 0
}

// Size returns the committed size in percent.
func (h *PanelHandle) Size() float64 {
	_, size, _ := h.group.panelSize(h.id)
	return size
}

// Resize sets the panel size in percent, as far as its neighbors allow.
func (h *PanelHandle) Resize(size float64) bool {
	return h.group.ResizePanel(h.id, size)
}

// Dragging reports whether any divider of the panel's group is being dragged.
func (h *PanelHandle) Dragging() bool {
	return h.group.Dragging()
}

// Unregister removes the panel from its group.
func (h *PanelHandle) Unregister() bool {
	return h.group.Unregister(h.id)
}
