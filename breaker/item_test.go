package breaker

import (
	"math"
	"testing"
)

func TestPenaltyClampsInfinities(t *testing.T) {
	p := Penalty(0, math.Inf(1), false, nil)
	if p.Penalty != Inf {
		t.Fatalf("Penalty = %v, want %v", p.Penalty, Inf)
	}
	n := Penalty(0, math.Inf(-1), false, nil)
	if n.Penalty != -Inf {
		t.Fatalf("Penalty = %v, want %v", n.Penalty, -Inf)
	}
}

func TestIsForcedAndForbiddenBreak(t *testing.T) {
	forced := Penalty(0, -Inf, false, nil)
	if !forced.IsForcedBreak() {
		t.Fatalf("expected forced break")
	}
	if forced.IsForbiddenBreak() {
		t.Fatalf("did not expect forbidden break")
	}

	forbidden := Penalty(0, Inf, false, nil)
	if !forbidden.IsForbiddenBreak() {
		t.Fatalf("expected forbidden break")
	}
	if forbidden.IsForcedBreak() {
		t.Fatalf("did not expect forced break")
	}
}

func TestParagraphAppendHelpers(t *testing.T) {
	p := NewParagraph()
	p.AppendBox(10, "hello")
	p.AppendGlue(3, 2, 1, nil)
	p.AppendPenalty(0, -Inf, false, nil)

	if p.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", p.Len())
	}
	if p.Item(0).Kind != KindBox || p.Item(0).Width != 10 {
		t.Fatalf("unexpected box item: %+v", p.Item(0))
	}
	if p.Item(1).Kind != KindGlue || p.Item(1).Stretch != 2 || p.Item(1).Shrink != 1 {
		t.Fatalf("unexpected glue item: %+v", p.Item(1))
	}
	if !p.Item(2).IsForcedBreak() {
		t.Fatalf("expected trailing penalty to be a forced break")
	}
}

func TestParagraphItemAtOutOfRange(t *testing.T) {
	p := NewParagraph()
	p.AppendBox(1, nil)

	if _, err := p.ItemAt(0); err != nil {
		t.Fatalf("ItemAt(0) unexpected error: %v", err)
	}
	_, err := p.ItemAt(5)
	if err == nil {
		t.Fatalf("expected error for out-of-range index")
	}
	if !Is(err, ErrCodeIndexOutOfRange) {
		t.Fatalf("expected ErrCodeIndexOutOfRange, got %v", err)
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		KindBox:     "box",
		KindGlue:    "glue",
		KindPenalty: "penalty",
		Kind(99):    "unknown",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
