package breaker

// prefixSums holds the cumulative natural width, stretch, and shrink over a
// paragraph's item sequence, letting the search measure any segment [a, b)
// in O(1). sums[i] covers items 0..i-1, so sums[b]-sums[a] is the segment
// [a, b). Penalty widths are left out of the width sums; adjustmentRatio adds
// a penalty's width only when that penalty is the break.
type prefixSums struct {
	width   []float64
	stretch []float64
	shrink  []float64
}

// buildPrefixSums computes the three running totals once per Solve call.
func buildPrefixSums(items []Item) prefixSums {
	m := len(items)
	ps := prefixSums{
		width:   make([]float64, m),
		stretch: make([]float64, m),
		shrink:  make([]float64, m),
	}
	var w, y, z float64
	for i, it := range items {
		ps.width[i] = w
		ps.stretch[i] = y
		ps.shrink[i] = z

		if it.Kind != KindPenalty {
			w += it.Width
		}
		if it.Kind == KindGlue {
			y += it.Stretch
			z += it.Shrink
		}
	}
	return ps
}

// segment returns the natural width, stretch, and shrink accumulated over
// the half-open range [a, b).
func (ps prefixSums) segment(a, b int) (width, stretch, shrink float64) {
	return ps.width[b] - ps.width[a], ps.stretch[b] - ps.stretch[a], ps.shrink[b] - ps.shrink[a]
}
