package panels

import "math"

// SeparatorValues are the accessibility attributes of a divider.
type SeparatorValues struct {
	Role     string
	Min      int
	Max      int
	Now      int
	Controls string
	TabIndex int
}

// Separator computes the accessibility values for the divider whose first panel
// is idBefore. Min and Max describe the range idBefore can actually reach given
// the other panels' bounds.
func Separator(sorted []*Panel, sizes []float64, idBefore string) SeparatorValues {
	minSize, maxSize := 0.0, 100.0
	totalMin, totalMax := 0.0, 0.0
	now := 0.0

	for i, p := range sorted {
		if p.ID == idBefore {
			minSize = p.MinSize
			maxSize = p.MaxSize
			if i < len(sizes) {
				now = sizes[i]
			}
			continue
		}
		totalMin += p.MinSize
		totalMax += p.MaxSize
	}

	valueMax := math.Min(maxSize, 100-totalMin)
	valueMin := math.Max(minSize, float64(len(sorted)-1)*100-totalMax)

	return SeparatorValues{
		Role:     "separator",
		Min:      int(math.Round(valueMin)),
		Max:      int(math.Round(valueMax)),
		Now:      int(math.Round(now)),
		Controls: idBefore,
		TabIndex: 0,
	}
}
