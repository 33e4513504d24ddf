package breaker

// isFeasibleBreak reports whether item index i may serve as a line break:
// either it is a penalty that isn't forbidden, or it is glue immediately
// following a box.
func isFeasibleBreak(items []Item, i int) bool {
	it := items[i]
	if it.Kind == KindPenalty && it.Penalty < Inf {
		return true
	}
	if i > 0 && items[i-1].Kind == KindBox && it.Kind == KindGlue {
		return true
	}
	return false
}
