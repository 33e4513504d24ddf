// Package breaker implements the Knuth-Plass total-fit line-breaking search:
// a dynamic program over active candidate breaks that minimizes a global
// demerit score across a paragraph of boxes, glue, and penalties.
package breaker

import "math"

// Inf is the sentinel used for "must not break here" (+Inf) and "must break
// here" (-Inf) penalties. It is a large finite value, not a floating-point
// infinity, so it participates in ordinary arithmetic without producing NaN.
const Inf = 10000.0

// InfiniteStretch is a glue stretch large enough to treat as unbounded
// relative to ordinary word and space widths, used to close a paragraph so
// its final line always has somewhere to put the leftover space.
const InfiniteStretch = 1e6

// Kind tags the variant of an Item.
type Kind int

const (
	// KindBox is unbreakable material of fixed width.
	KindBox Kind = iota
	// KindGlue is stretchable/shrinkable space between boxes.
	KindGlue
	// KindPenalty is an optional or forced breakpoint.
	KindPenalty
)

func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindGlue:
		return "glue"
	case KindPenalty:
		return "penalty"
	default:
		return "unknown"
	}
}

// Item is a single element of a paragraph's tagged item stream. Only the
// fields relevant to its Kind are meaningful; the rest are zero.
type Item struct {
	Kind Kind

	// Width is the natural width for Box and Glue, and the width of the
	// material added when a Penalty is the chosen break (e.g. a hyphen).
	Width float64

	// Stretch and Shrink apply to Glue only.
	Stretch float64
	Shrink  float64

	// Penalty is the signed break cost for Penalty items. Penalty <= -Inf
	// forces a break here; Penalty >= Inf forbids a break here.
	Penalty float64

	// Flagged marks a Penalty as hyphen-like, for double-flagged demerit
	// accounting when two flagged breaks are chosen back to back.
	Flagged bool

	// Payload is opaque client data the algorithm never inspects.
	Payload any
}

// IsForcedBreak reports whether the item is a penalty whose value has
// saturated the forced-break sentinel (penalty <= -Inf).
func (it Item) IsForcedBreak() bool {
	return it.Kind == KindPenalty && it.Penalty <= -Inf
}

// IsForbiddenBreak reports whether the item is a penalty whose value has
// saturated the forbidden-break sentinel (penalty >= +Inf).
func (it Item) IsForbiddenBreak() bool {
	return it.Kind == KindPenalty && it.Penalty >= Inf
}

// Box returns an unbreakable item of fixed width.
func Box(width float64, payload any) Item {
	return Item{Kind: KindBox, Width: width, Payload: payload}
}

// Glue returns a flexible spacing item.
func Glue(width, stretch, shrink float64, payload any) Item {
	return Item{Kind: KindGlue, Width: width, Stretch: stretch, Shrink: shrink, Payload: payload}
}

// Penalty returns an optional or forced breakpoint. Callers pass math.Inf(1)
// or math.Inf(-1) freely; they are clamped to the Inf sentinel so downstream
// arithmetic never produces NaN or an actual float64 infinity.
func Penalty(width, penalty float64, flagged bool, payload any) Item {
	return Item{Kind: KindPenalty, Width: width, Penalty: clampPenalty(penalty), Flagged: flagged, Payload: payload}
}

func clampPenalty(p float64) float64 {
	if math.IsInf(p, 1) || p > Inf {
		return Inf
	}
	if math.IsInf(p, -1) || p < -Inf {
		return -Inf
	}
	return p
}

// Paragraph is an ordered, finite sequence of items. Once Solve begins on a
// paragraph, its item sequence must not be mutated until Solve returns.
type Paragraph struct {
	items []Item
}

// NewParagraph returns an empty paragraph ready to be appended to.
func NewParagraph() *Paragraph {
	return &Paragraph{}
}

// Len returns the number of items currently in the paragraph.
func (p *Paragraph) Len() int { return len(p.items) }

// Item returns the item at index i.
func (p *Paragraph) Item(i int) Item { return p.items[i] }

// ItemAt returns the item at index i, or an IndexOutOfRange error if i falls
// outside the paragraph.
func (p *Paragraph) ItemAt(i int) (Item, error) {
	if i < 0 || i >= len(p.items) {
		return Item{}, newError(ErrCodeIndexOutOfRange, "item index %d out of range [0, %d)", i, len(p.items))
	}
	return p.items[i], nil
}

// Items returns the full item slice. Callers must not mutate it.
func (p *Paragraph) Items() []Item { return p.items }

// AppendBox appends an unbreakable box of the given width.
func (p *Paragraph) AppendBox(width float64, payload any) {
	p.items = append(p.items, Box(width, payload))
}

// AppendGlue appends a stretchable/shrinkable glue item.
func (p *Paragraph) AppendGlue(width, stretch, shrink float64, payload any) {
	p.items = append(p.items, Glue(width, stretch, shrink, payload))
}

// AppendPenalty appends an optional or forced breakpoint.
func (p *Paragraph) AppendPenalty(width, penalty float64, flagged bool, payload any) {
	p.items = append(p.items, Penalty(width, penalty, flagged, payload))
}

// AppendEnd appends the three-item closing sequence a tokenizer owes the
// core: a forbidden break so the infinite glue below can't be taken early,
// the infinite glue itself so the final line can always be stretched to
// fill its target width, and the forced break that ends the paragraph.
func (p *Paragraph) AppendEnd() {
	p.AppendPenalty(0, Inf, false, nil)
	p.AppendGlue(0, InfiniteStretch, 0, nil)
	p.AppendPenalty(0, -Inf, false, nil)
}

// AppendItem appends a pre-built item verbatim (penalty values are clamped).
func (p *Paragraph) AppendItem(it Item) {
	if it.Kind == KindPenalty {
		it.Penalty = clampPenalty(it.Penalty)
	}
	p.items = append(p.items, it)
}
