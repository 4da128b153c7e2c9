package panels

import "math"

// CollapseMemory maps a panel id to its last size before it collapsed to 0.
type CollapseMemory map[string]float64

type collapseRecord struct {
	id   string
	size float64
}

// AdjustByDelta moves the divider between idBefore and idAfter by delta percent.
//
// A positive delta grows idBefore and shrinks the panels from idAfter onwards;
// a negative delta grows idAfter and shrinks the panels from idBefore backwards.
// The growing panel is sized first to find how much it can take, then panels on
// the other side give up space one by one, walking away from the divider, until
// that amount is met or the walk runs out of panels. The growing panel only gets
// what the others actually gave up.
//
// When nothing can move, prev itself is returned (check with Same). Panels that
// collapse to 0 in the committed result have their previous size recorded in memory.
func AdjustByDelta(sorted []*Panel, idBefore, idAfter string, delta float64, prev []float64, memory CollapseMemory) []float64 {
	if delta == 0 || len(prev) != len(sorted) {
		return prev
	}

	growID, shrinkID := idBefore, idAfter
	step := 1
	if delta < 0 {
		growID, shrinkID = idAfter, idBefore
		step = -1
	}

	pivot := IndexOf(sorted, growID)
	start := IndexOf(sorted, shrinkID)
	if pivot < 0 || start < 0 || (start-pivot)*step <= 0 {
		return prev
	}

	// Max-bounds check the growing panel first.
	grower := sorted[pivot]
	growerSize := prev[pivot]
	grown := safeResizePanel(grower, math.Abs(delta), growerSize)
	if grown <= growerSize || SizesEqual(grown, growerSize) {
		return prev
	}
	requested := grown - growerSize

	next := make([]float64, len(prev))
	copy(next, prev)

	var collapsed []collapseRecord
	applied := 0.0
	for i := start; i >= 0 && i < len(sorted); i += step {
		size := prev[i]
		shrunk := safeResizePanel(sorted[i], -(requested - applied), size)
		if shrunk >= size {
			continue
		}
		if shrunk == 0 && size > 0 {
			collapsed = append(collapsed, collapseRecord{id: sorted[i].ID, size: size})
		}
		applied += size - shrunk
		next[i] = shrunk

		if sizeAtLeast(applied, requested) {
			break
		}
	}

	// Nothing could shrink; ignore the request.
	if applied == 0 {
		return prev
	}

	target := growerSize + applied
	if grower.Collapsible && growerSize == 0 && !sizeAtLeast(target, grower.MinSize) {
		// A collapsed panel may not stop inside (0, minSize).
		return prev
	}
	next[pivot] = target

	if memory != nil {
		for _, c := range collapsed {
			memory[c.id] = c.size
		}
	}
	return next
}

// safeResizePanel applies delta to a panel's size, honouring its bounds.
// Collapsible panels snap to 0 when the unclamped size would reach 0, and stay
// at 0 until the unclamped size reaches minSize.
func safeResizePanel(p *Panel, delta, prevSize float64) float64 {
	nextSizeUnsafe := prevSize + delta

	if p.Collapsible {
		// Compare the delta against the size rather than the difference against 0,
		// so drift near zero does not defeat Precision.
		if prevSize > 0 {
			if sizeAtLeast(-delta, prevSize) {
				return 0
			}
		} else if !sizeAtLeast(nextSizeUnsafe, p.MinSize) {
			return 0
		}
	}

	return math.Min(p.MaxSize, math.Max(p.MinSize, nextSizeUnsafe))
}
