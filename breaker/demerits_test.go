package breaker

import "testing"

func TestClassifyFitness(t *testing.T) {
	cases := []struct {
		r    float64
		want FitnessClass
	}{
		{-2, FitnessVeryTight},
		{-0.5, FitnessNormal},
		{0, FitnessNormal},
		{0.5, FitnessNormal},
		{0.75, FitnessLoose},
		{1.0, FitnessLoose},
		{1.5, FitnessVeryLoose},
	}
	for _, c := range cases {
		if got := classifyFitness(c.r); got != c.want {
			t.Errorf("classifyFitness(%v) = %v, want %v", c.r, got, c.want)
		}
	}
}

func TestLineDemeritsPositivePenaltyIncreasesCost(t *testing.T) {
	opts := DefaultOptions()
	low := lineDemerits(0, 0, opts)
	high := lineDemerits(0, 50, opts)
	if !(high > low) {
		t.Fatalf("expected higher penalty to raise demerits: low=%v high=%v", low, high)
	}
}

func TestLineDemeritsNegativePenaltyReducesCost(t *testing.T) {
	opts := DefaultOptions()
	neutral := lineDemerits(0, 0, opts)
	discouraged := lineDemerits(0, -50, opts)
	if !(discouraged < neutral) {
		t.Fatalf("expected negative penalty to lower demerits: neutral=%v discouraged=%v", neutral, discouraged)
	}
}

func TestLineDemeritsForcedBreakIgnoresPenaltyMagnitude(t *testing.T) {
	opts := DefaultOptions()
	a := lineDemerits(0, -Inf, opts)
	b := lineDemerits(0, -Inf, opts)
	if a != b {
		t.Fatalf("forced-break demerits should be deterministic: %v vs %v", a, b)
	}
	// A forced break's cost depends only on badness, matching the flat term
	// used for any penalty at or below the forced-break sentinel.
	want := (1 + 100*0.0) * (1 + 100*0.0)
	if a != want {
		t.Fatalf("forced-break demerits = %v, want %v", a, want)
	}
}

func TestBreakDemeritsFlaggedPenaltyAddsCost(t *testing.T) {
	opts := DefaultOptions()
	items := []Item{
		Penalty(0, 0, true, nil),
		Box(10, nil),
		Penalty(0, 0, true, nil),
	}
	a := breakNode{position: 0, fitnessClass: FitnessNormal}
	withFlag, _ := breakDemerits(items, a, 2, 0, opts)

	items[0].Flagged = false
	withoutFlag, _ := breakDemerits(items, a, 2, 0, opts)

	if withFlag-withoutFlag != opts.FlaggedDemerit {
		t.Fatalf("flagged demerit delta = %v, want %v", withFlag-withoutFlag, opts.FlaggedDemerit)
	}
}

func TestBreakDemeritsFitnessJumpAddsCost(t *testing.T) {
	opts := DefaultOptions()
	items := []Item{
		Box(0, nil),
		Box(0, nil),
	}
	near := breakNode{position: 0, fitnessClass: FitnessNormal}
	far := breakNode{position: 0, fitnessClass: FitnessVeryTight}

	// r = 1.5 classifies as FitnessVeryLoose, two classes from FitnessNormal
	// and three from FitnessVeryTight.
	dNear, _ := breakDemerits(items, near, 1, 1.5, opts)
	dFar, _ := breakDemerits(items, far, 1, 1.5, opts)

	if dNear-lineDemerits(1.5, 0, opts) != opts.FitnessDemerit {
		t.Fatalf("expected fitness jump demerit from normal, got delta %v", dNear-lineDemerits(1.5, 0, opts))
	}
	if dFar != dNear {
		t.Fatalf("expected the same flat fitness demerit for any gap over one class: near=%v far=%v", dNear, dFar)
	}
}
