package breaker

// Break is one chosen line ending: the item index the line breaks at, the
// number of the line it ends (1 for the first line), the fitness class of
// that line, the adjustment ratio used to fill it, and the demerits
// accumulated from the start of the paragraph through this line.
type Break struct {
	Position     int
	Line         int
	FitnessClass FitnessClass
	Ratio        float64
	Demerits     float64
}

// Solve runs the Knuth-Plass forward pass over paragraph, breaking it into
// lines of the given target lengths. lineLengths[i] is the target width of
// line i; its final entry repeats for any line beyond len(lineLengths).
//
// The paragraph should end on a forced break (a penalty with Penalty <=
// -Inf) so that the final line is measured and scored like any other. For a
// paragraph that doesn't, the chain ends at whichever surviving candidate
// selectTerminal picks, which need not be the last item; if the origin
// itself is still active, its zero demerits usually make it the pick and
// Solve returns an empty break list.
func Solve(paragraph *Paragraph, lineLengths []float64, opts Options) ([]Break, error) {
	if len(lineLengths) == 0 {
		return nil, newError(ErrCodeEmptyLineLengths, "no line lengths supplied")
	}

	items := paragraph.Items()
	if len(items) == 0 {
		return nil, nil
	}

	ps := buildPrefixSums(items)
	origin := &breakNode{position: 0, line: 0, fitnessClass: FitnessNormal}
	active := newFrontier(origin)

	for i := 0; i < len(items); i++ {
		if !isFeasibleBreak(items, i) {
			continue
		}
		forced := items[i].IsForcedBreak()

		candidates := active.nodes
		var toRemove []*breakNode
		var toInsert []*breakNode

		for _, a := range candidates {
			r := adjustmentRatio(items, ps, a.position, i, a.line, lineLengths)

			if r < -1 || forced {
				toRemove = append(toRemove, a)
			}

			if r < -1 || r > opts.Tolerance {
				continue
			}

			d, fc := breakDemerits(items, *a, i, r, opts)
			total := a.demerits + d
			line := a.line + 1

			replaced := false
			for j, n := range toInsert {
				if n.line == line && n.fitnessClass == fc {
					if total < n.demerits {
						toInsert[j] = &breakNode{position: i, line: line, fitnessClass: fc, ratio: r, demerits: total, previous: a}
					}
					replaced = true
					break
				}
			}
			if !replaced {
				toInsert = append(toInsert, &breakNode{position: i, line: line, fitnessClass: fc, ratio: r, demerits: total, previous: a})
			}
		}

		active.removeAll(toRemove)
		for _, n := range toInsert {
			active.insert(n)
		}

		if active.len() == 0 {
			return nil, newError(ErrCodeNoFeasibleBreak, "no active break survived item %d; tolerance %.2f may be too tight", i, opts.Tolerance)
		}
	}

	if active.len() == 1 && active.nodes[0] == origin {
		return nil, newError(ErrCodeNoFeasibleBreak, "no feasible break found for paragraph of %d items", len(items))
	}

	best := selectTerminal(active.nodes, opts.Looseness)
	return reconstructChain(best, origin), nil
}

// selectTerminal picks the break chain's final node. With looseness zero it
// is the node with minimum total demerits. Otherwise it is the node whose
// line count is closest to the minimum-demerits solution's line count
// offset by looseness, breaking ties toward fewer demerits.
func selectTerminal(nodes []*breakNode, looseness int) *breakNode {
	best := nodes[0]
	for _, n := range nodes[1:] {
		if n.demerits < best.demerits {
			best = n
		}
	}
	if looseness == 0 {
		return best
	}

	target := best.line + looseness
	chosen := nodes[0]
	chosenDiff := absInt(chosen.line - target)
	for _, n := range nodes[1:] {
		diff := absInt(n.line - target)
		if diff < chosenDiff || (diff == chosenDiff && n.demerits < chosen.demerits) {
			chosen = n
			chosenDiff = diff
		}
	}
	return chosen
}

// reconstructChain walks previous links from terminal back to origin and
// returns them in forward (line 1, line 2, ...) order, excluding origin.
func reconstructChain(terminal, origin *breakNode) []Break {
	var reversed []Break
	for n := terminal; n != origin && n != nil; n = n.previous {
		reversed = append(reversed, Break{
			Position:     n.position,
			Line:         n.line,
			FitnessClass: n.fitnessClass,
			Ratio:        n.ratio,
			Demerits:     n.demerits,
		})
	}

	out := make([]Break, len(reversed))
	for i, b := range reversed {
		out[len(reversed)-1-i] = b
	}
	return out
}
