package panels

import (
	"math"
	"sort"
)

// FlexGrow is the relative growth value a renderer gives panel id: "100" for a
// lone panel, "0" before the group has sizes, and the committed size otherwise.
func FlexGrow(sorted []*Panel, id string, sizes []float64) string {
	if len(sorted) == 1 {
		return "100"
	}
	i := IndexOf(sorted, id)
	if i < 0 || i >= len(sizes) {
		return "0"
	}
	return FormatSize(sizes[i])
}

// Allocate splits cells between panels in proportion to their percentage sizes.
// The result always adds up to cells: floors are taken first and the leftover
// cells go to the largest remainders, earlier panels winning ties. Collapsed
// panels never receive a cell.
func Allocate(sizes []float64, cells int) []int {
	out := make([]int, len(sizes))
	if cells <= 0 || len(sizes) == 0 {
		return out
	}

	total := Total(sizes)
	if total <= 0 {
		return out
	}

	type remainder struct {
		index int
		frac  float64
	}
	rems := make([]remainder, 0, len(sizes))
	used := 0
	for i, s := range sizes {
		if s <= 0 {
			continue
		}
		exact := s / total * float64(cells)
		whole := math.Floor(roundSize(exact))
		out[i] = int(whole)
		used += out[i]
		rems = append(rems, remainder{index: i, frac: exact - whole})
	}

	sort.SliceStable(rems, func(a, b int) bool {
		return rems[a].frac > rems[b].frac
	})
	for k := 0; used < cells && len(rems) > 0; k = (k + 1) % len(rems) {
		out[rems[k].index]++
		used++
	}
	return out
}
