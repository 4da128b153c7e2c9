package panels

import (
	"fmt"
	"math"
	"strings"
)

// Direction is the axis a group lays its panels out on.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

func (d Direction) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseDirection parses "horizontal" or "vertical".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "h", "row":
		return Horizontal, nil
	case "vertical", "v", "column":
		return Vertical, nil
	default:
		return Horizontal, fmt.Errorf("invalid direction: %q (valid: horizontal, vertical)", s)
	}
}

// Key is a keyboard input understood by dividers.
type Key int

const (
	KeyNone Key = iota
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyHome
	KeyEnd
	KeyEnter
)

// Keyboard step denominators: a keystroke moves 1/100 of the extent, or 1/10
// with the coarse modifier held.
const (
	FineStepDenominator   = 100
	CoarseStepDenominator = 10
)

// PercentDelta converts a movement along the axis into a percentage of extent.
func PercentDelta(movement, extent float64) float64 {
	if extent <= 0 {
		return 0
	}
	return movement / extent * 100
}

// DragMovement is the pointer displacement relative to the divider, corrected by
// the offset captured when the drag started so the divider does not jump.
func DragMovement(pointer, handleOffset, initialOffset float64) float64 {
	return pointer - handleOffset - initialOffset
}

// KeyMovement returns the raw movement, in extent units, for a key press.
func KeyMovement(key Key, coarse bool, dir Direction, extent float64) float64 {
	denominator := float64(FineStepDenominator)
	if coarse {
		denominator = CoarseStepDenominator
	}
	step := extent / denominator

	horizontal := dir == Horizontal
	switch key {
	case KeyArrowLeft:
		if horizontal {
			return -step
		}
	case KeyArrowRight:
		if horizontal {
			return step
		}
	case KeyArrowUp:
		if !horizontal {
			return -step
		}
	case KeyArrowDown:
		if !horizontal {
			return step
		}
	case KeyHome:
		return -extent
	case KeyEnd:
		return extent
	}
	return 0
}

// KeyboardDelta converts a key press on the divider between idBefore and idAfter
// into a percentage delta for AdjustByDelta.
//
// Collapsible panels get a boundary step: a panel that would shrink while
// sitting at 0 or at its minSize, or a collapsed panel that would grow, moves by
// exactly its minSize so a single keystroke crosses the (0, minSize) gap.
func KeyboardDelta(key Key, coarse bool, dir Direction, extent float64, sorted []*Panel, sizes []float64, idBefore, idAfter string) float64 {
	movement := KeyMovement(key, coarse, dir, extent)
	if movement == 0 {
		return 0
	}
	delta := PercentDelta(movement, extent)

	shrinkID, growID := idAfter, idBefore
	if delta < 0 {
		shrinkID, growID = idBefore, idAfter
	}

	boundary := 0.0
	if i := IndexOf(sorted, shrinkID); i >= 0 && i < len(sizes) {
		p := sorted[i]
		if p.Collapsible && (sizes[i] == 0 || SizesEqual(sizes[i], p.MinSize)) {
			boundary = p.MinSize
		}
	}
	if i := IndexOf(sorted, growID); i >= 0 && i < len(sizes) {
		p := sorted[i]
		if p.Collapsible && sizes[i] == 0 {
			boundary = math.Max(boundary, p.MinSize)
		}
	}

	if boundary > 0 && math.Abs(delta) < 100 {
		return math.Copysign(boundary, delta)
	}
	return delta
}

// ToggleDelta is the delta for Enter on a divider: grow the panel before the
// divider fully when it sits at or below its minSize, otherwise shrink it fully.
func ToggleDelta(sorted []*Panel, sizes []float64, idBefore string) float64 {
	i := IndexOf(sorted, idBefore)
	if i < 0 || i >= len(sizes) {
		return 0
	}
	if sizeAtMost(sizes[i], sorted[i].MinSize) {
		return 100
	}
	return -100
}
