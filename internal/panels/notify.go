package panels

// NotifyChanges fires panel callbacks for every index whose size differs
// between prev and next. A missing prev entry counts as changed; this is how
// the initial sizes are announced after the group first stabilizes.
func NotifyChanges(sorted []*Panel, prev, next []float64) {
	for i, nextSize := range next {
		if i >= len(sorted) {
			return
		}

		known := i < len(prev)
		if known && SizesEqual(prev[i], nextSize) {
			continue
		}

		p := sorted[i]
		if p.OnResize != nil {
			p.OnResize(nextSize)
		}

		if p.OnCollapse != nil {
			switch {
			case known && prev[i] == 0 && nextSize != 0:
				p.OnCollapse(false)
			case (!known || prev[i] != 0) && nextSize == 0:
				p.OnCollapse(true)
			}
		}
	}
}
