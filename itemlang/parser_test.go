package itemlang

import (
	"testing"

	"github.com/alex-panda/knuthplass/breaker"
)

func TestParseMinimalDocument(t *testing.T) {
	src := `
lines 100pt
box 20pt
glue 3pt 2pt 1pt
box 15pt
`
	doc, err := ParseString(src)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if doc.Lines == nil || len(doc.Lines.Lengths) != 1 || doc.Lines.Lengths[0] != 100 {
		t.Fatalf("unexpected lines decl: %+v", doc.Lines)
	}
	if len(doc.Items) != 3 {
		t.Fatalf("len(Items) = %d, want 3", len(doc.Items))
	}
	if doc.Items[0].Box == nil || float64(doc.Items[0].Box.Width) != 20 {
		t.Fatalf("unexpected first item: %+v", doc.Items[0])
	}
	if doc.Items[1].Glue == nil || float64(doc.Items[1].Glue.Stretch) != 2 {
		t.Fatalf("unexpected glue item: %+v", doc.Items[1])
	}
}

func TestParsePenaltyWithInfinities(t *testing.T) {
	src := `
box 10pt
penalty 0pt -inf
`
	doc, err := ParseString(src)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	pen := doc.Items[1].Penalty
	if pen == nil {
		t.Fatalf("expected a penalty item")
	}
	if float64(pen.Value) != -breaker.Inf {
		t.Fatalf("penalty value = %v, want %v", pen.Value, -breaker.Inf)
	}
}

func TestParseFlaggedPenalty(t *testing.T) {
	doc, err := ParseString("penalty 5pt 50 flagged\n")
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	pen := doc.Items[0].Penalty
	if pen == nil || !pen.Flagged {
		t.Fatalf("expected a flagged penalty, got %+v", pen)
	}
}

func TestParseOptionsBlock(t *testing.T) {
	src := `
options {
  tolerance: 2
  looseness: 1
}
box 10pt
`
	doc, err := ParseString(src)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if doc.Options == nil || len(doc.Options.Entries) != 2 {
		t.Fatalf("unexpected options: %+v", doc.Options)
	}
}

func TestParseSyntaxErrorIsStructured(t *testing.T) {
	_, err := ParseString("box\n")
	if err == nil {
		t.Fatalf("expected a syntax error")
	}
	var itemErr *Error
	if e, ok := err.(*Error); !ok {
		t.Fatalf("expected *itemlang.Error, got %T", err)
	} else {
		itemErr = e
	}
	if itemErr.Code != ErrCodeSyntax {
		t.Fatalf("code = %v, want %v", itemErr.Code, ErrCodeSyntax)
	}
}

func TestBuildAppendsClosingSequenceWhenMissing(t *testing.T) {
	doc, err := ParseString("box 10pt\nglue 3pt 2pt 1pt\nbox 10pt\n")
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	p, _, _, err := doc.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !p.Item(p.Len() - 1).IsForcedBreak() {
		t.Fatalf("expected Build to append a closing forced break")
	}
}

func TestBuildAppliesOptionsAndLineLengths(t *testing.T) {
	doc, err := ParseString("lines 50pt 60pt\noptions {\n  tolerance: 3\n  looseness: 1\n}\nbox 10pt\n")
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	_, lineLengths, opts, err := doc.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(lineLengths) != 2 || lineLengths[0] != 50 || lineLengths[1] != 60 {
		t.Fatalf("lineLengths = %v, want [50 60]", lineLengths)
	}
	if opts.Tolerance != 3 || opts.Looseness != 1 {
		t.Fatalf("opts = %+v, want Tolerance=3 Looseness=1", opts)
	}
}

func TestBuildRoundTripsThroughSolve(t *testing.T) {
	doc, err := ParseString("lines 25pt\nbox 10pt\nglue 3pt 2pt 1pt\nbox 10pt\n")
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	p, lineLengths, opts, err := doc.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	breaks, err := breaker.Solve(p, lineLengths, opts)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(breaks) == 0 {
		t.Fatalf("expected at least one break")
	}
}
