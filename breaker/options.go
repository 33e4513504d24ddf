package breaker

// Options tunes the search: how much a line may stretch or shrink before a
// break is rejected outright, how heavily flagged and fitness-class
// transitions are punished, and how many lines the finished paragraph is
// allowed to deviate from the minimum-demerits solution.
type Options struct {
	// Tolerance is the largest adjustment ratio a break may use before it is
	// discarded as infeasible. It bounds stretching only: a ratio below -1
	// (more shrink than the glue allows) is rejected whatever Tolerance is. Knuth and Plass's own tables use
	// 1.0 for tightly set text and up to 10 for a first, forgiving pass.
	Tolerance float64

	// FitnessDemerit is added whenever adjacent chosen lines land more than
	// one fitness class apart.
	FitnessDemerit float64

	// FlaggedDemerit is added whenever two consecutive chosen lines both end
	// on a flagged penalty (e.g. two hyphenated line ends in a row).
	FlaggedDemerit float64

	// Looseness, when non-zero, selects the surviving candidate whose line
	// count is closest to the minimum-demerits solution's line count plus
	// Looseness (negative values aim for fewer lines), breaking ties toward
	// fewer demerits. Zero picks strictly on minimum total demerits.
	Looseness int

	// CostFunc, when set, replaces the canonical cubic demerit formula for
	// a candidate line. It receives the adjustment ratio and penalty value
	// and returns the base line demerits before flagged/fitness surcharges.
	// Nil uses the built-in formula. Excluded from marshaling: a function
	// value has no wire representation.
	CostFunc func(ratio, penalty float64) float64 `json:"-" bson:"-"`
}

// DefaultOptions returns the tuning Knuth and Plass describe as producing
// well-set text for ordinary prose.
func DefaultOptions() Options {
	return Options{
		Tolerance:      1.0,
		FitnessDemerit: 100,
		FlaggedDemerit: 100,
		Looseness:      0,
	}
}
