// Package graph renders a chosen break chain as a Graphviz node-link
// diagram: one node per line, edges following the chain in order, labeled
// with the fitness class and adjustment ratio that produced it.
package graph

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/alex-panda/knuthplass/breaker"
)

// ToDOT converts breaks into Graphviz DOT source. Each node is labeled with
// its line number, fitness class, and adjustment ratio; edges connect
// consecutive breaks in chain order.
func ToDOT(breaks []breaker.Break) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12];\n\n")

	for i, b := range breaks {
		label := fmt.Sprintf("line %d\\n%s\\nr=%.2f", b.Line, b.FitnessClass, b.Ratio)
		fmt.Fprintf(&buf, "  %q [label=%q%s];\n", nodeID(i), label, fillFor(b.FitnessClass))
	}

	buf.WriteString("\n")
	for i := 1; i < len(breaks); i++ {
		fmt.Fprintf(&buf, "  %q -> %q;\n", nodeID(i-1), nodeID(i))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(i int) string {
	return fmt.Sprintf("break%d", i)
}

func fillFor(fc breaker.FitnessClass) string {
	switch fc {
	case breaker.FitnessVeryTight:
		return `, fillcolor=lightpink`
	case breaker.FitnessLoose:
		return `, fillcolor=lightyellow`
	case breaker.FitnessVeryLoose:
		return `, fillcolor=lightsalmon`
	default:
		return ""
	}
}

// RenderSVG renders a break chain directly to SVG bytes.
func RenderSVG(breaks []breaker.Break) ([]byte, error) {
	return renderDOT(ToDOT(breaks), graphviz.SVG)
}

// RenderPNG renders a break chain directly to PNG bytes.
func RenderPNG(breaks []breaker.Break) ([]byte, error) {
	return renderDOT(ToDOT(breaks), graphviz.PNG)
}

func renderDOT(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("graph: init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("graph: parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("graph: render: %w", err)
	}
	return buf.Bytes(), nil
}
