package panels

import "fmt"

// ValidateGroup checks constraints that span all panels of a group: the sum
// rules, then that the resolved default layout keeps every panel in bounds.
func ValidateGroup(sorted []*Panel) error {
	totalDefault, totalMin := 0.0, 0.0
	for _, p := range sorted {
		totalMin += p.MinSize
		if p.DefaultSize != nil {
			totalDefault += *p.DefaultSize
		}
	}

	if roundSize(totalDefault) > 100 {
		return &ConfigError{Err: fmt.Errorf("%w (got %v)", ErrDefaultSumExceeded, totalDefault)}
	}
	if roundSize(totalMin) > 100 {
		return &ConfigError{Err: fmt.Errorf("%w (got %v)", ErrMinSumExceeded, totalMin)}
	}

	for i, size := range ResolveDefaults(sorted) {
		p := sorted[i]
		if !inBounds(p, size) {
			return &ConfigError{PanelID: p.ID, Field: "defaultSize", Err: fmt.Errorf("%w (%s not in [%s, %s])",
				ErrDefaultOutOfBounds, FormatSize(size), FormatSize(p.MinSize), FormatSize(p.MaxSize))}
		}
	}
	return nil
}

// DefaultSizes computes the initial layout: explicit defaults are kept and the
// remaining space is split equally between panels without one. When every
// panel has an explicit default that does not add up to 100 the defaults are
// scaled proportionally so the layout still fills the group.
func DefaultSizes(sorted []*Panel) ([]float64, error) {
	if err := ValidateGroup(sorted); err != nil {
		return nil, err
	}
	return ResolveDefaults(sorted), nil
}

// ResolveDefaults is DefaultSizes without validation.
func ResolveDefaults(sorted []*Panel) []float64 {
	if len(sorted) == 0 {
		return nil
	}

	auto := 0
	totalDefault := 0.0
	for _, p := range sorted {
		if p.DefaultSize == nil {
			auto++
		} else {
			totalDefault += *p.DefaultSize
		}
	}

	sizes := make([]float64, len(sorted))
	if auto == 0 {
		for i, p := range sorted {
			switch {
			case totalDefault == 0:
				sizes[i] = 100 / float64(len(sorted))
			case SizesEqual(totalDefault, 100):
				sizes[i] = *p.DefaultSize
			default:
				sizes[i] = *p.DefaultSize * 100 / totalDefault
			}
		}
		return sizes
	}

	share := (100 - totalDefault) / float64(auto)
	for i, p := range sorted {
		if p.DefaultSize == nil {
			sizes[i] = share
		} else {
			sizes[i] = *p.DefaultSize
		}
	}
	return sizes
}

// inBounds reports whether size is a legal committed size for p: within
// [minSize, maxSize], or 0 for a collapsible panel.
func inBounds(p *Panel, size float64) bool {
	if p.Collapsible && SizesEqual(size, 0) {
		return true
	}
	return sizeAtLeast(size, p.MinSize) && sizeAtMost(size, p.MaxSize)
}

// FitSizes clamps sizes into each panel's bounds and moves the difference to
// panels that still have room, in order, so the layout sums to 100 whenever the
// bounds allow it. Collapsed collapsible panels stay collapsed.
func FitSizes(sorted []*Panel, sizes []float64) []float64 {
	out := make([]float64, len(sizes))
	total := 0.0
	for i, size := range sizes {
		p := sorted[i]
		switch {
		case p.Collapsible && SizesEqual(size, 0):
			out[i] = 0
		case size < p.MinSize:
			out[i] = p.MinSize
		case size > p.MaxSize:
			out[i] = p.MaxSize
		default:
			out[i] = size
		}
		total += out[i]
	}

	diff := 100 - total
	for i, p := range sorted {
		if SizesEqual(diff, 0) {
			break
		}
		if out[i] == 0 && p.Collapsible {
			continue
		}
		if diff > 0 {
			step := min(diff, p.MaxSize-out[i])
			out[i] += step
			diff -= step
		} else {
			step := min(-diff, out[i]-p.MinSize)
			out[i] -= step
			diff += step
		}
	}
	return out
}
