package itemlang

import (
	"github.com/alex-panda/knuthplass/breaker"
)

// Build converts a parsed document into a paragraph, line-length schedule,
// and options ready for breaker.Solve. If the source's item list doesn't
// already end on a forced break, the standard closing sequence
// (breaker.Paragraph.AppendEnd) is appended automatically.
func (d *Document) Build() (*breaker.Paragraph, []float64, breaker.Options, error) {
	opts := breaker.DefaultOptions()
	if d.Options != nil {
		if err := applyOptions(&opts, d.Options); err != nil {
			return nil, nil, breaker.Options{}, err
		}
	}

	var lineLengths []float64
	if d.Lines != nil {
		for _, l := range d.Lines.Lengths {
			lineLengths = append(lineLengths, float64(l))
		}
	}

	p := breaker.NewParagraph()
	for _, item := range d.Items {
		switch {
		case item.Box != nil:
			p.AppendBox(float64(item.Box.Width), nil)
		case item.Glue != nil:
			p.AppendGlue(float64(item.Glue.Width), float64(item.Glue.Stretch), float64(item.Glue.Shrink), nil)
		case item.Penalty != nil:
			p.AppendPenalty(float64(item.Penalty.Width), float64(item.Penalty.Value), item.Penalty.Flagged, nil)
		}
	}

	if p.Len() == 0 || !p.Item(p.Len()-1).IsForcedBreak() {
		p.AppendEnd()
	}

	return p, lineLengths, opts, nil
}

func applyOptions(opts *breaker.Options, decl *OptionsDecl) error {
	for _, e := range decl.Entries {
		switch e.Key {
		case "tolerance":
			opts.Tolerance = e.Value
		case "looseness":
			opts.Looseness = int(e.Value)
		case "fitness_demerit":
			opts.FitnessDemerit = e.Value
		case "flagged_demerit":
			opts.FlaggedDemerit = e.Value
		default:
			return &Error{Code: ErrCodeUnknownOption, Message: "unrecognized option " + e.Key}
		}
	}
	return nil
}
