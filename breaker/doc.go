package breaker

// Typical usage builds a Paragraph item by item, closes it with AppendEnd,
// and calls Solve with the target line lengths and a set of Options:
//
//	p := breaker.NewParagraph()
//	p.AppendBox(width, "word")
//	p.AppendGlue(spaceWidth, stretch, shrink, nil)
//	p.AppendBox(width2, "word2")
//	p.AppendEnd()
//	breaks, err := breaker.Solve(p, lineLengths, breaker.DefaultOptions())
