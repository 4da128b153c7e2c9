package panels

// BeforeAndAfter returns the divider pair used to resize panel id: the panel
// itself and the one after it, or for the last panel the one before it and the
// panel itself.
func BeforeAndAfter(id string, sorted []*Panel) (idBefore, idAfter string, ok bool) {
	if len(sorted) < 2 {
		return "", "", false
	}

	index := IndexOf(sorted, id)
	if index < 0 {
		return "", "", false
	}

	if index == len(sorted)-1 {
		return sorted[index-1].ID, id, true
	}
	return id, sorted[index+1].ID, true
}

// DividerPanels returns the two panels separated by the divider at index.
// The n-th divider separates the n-th and (n+1)-th panels.
func DividerPanels(index int, sorted []*Panel) (idBefore, idAfter string, ok bool) {
	if index < 0 || index+1 >= len(sorted) {
		return "", "", false
	}
	return sorted[index].ID, sorted[index+1].ID, true
}

// IsLast reports whether id is the last panel in sorted.
func IsLast(id string, sorted []*Panel) bool {
	return len(sorted) > 0 && sorted[len(sorted)-1].ID == id
}
