// Package diagram draws a schematic view of a solved paragraph via
// github.com/tdewolff/canvas: one bar per chosen line, shaded by fitness
// class and sized in proportion to how far its adjustment ratio pushed the
// line from an exact fit.
package diagram

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/svg"

	"github.com/alex-panda/knuthplass/breaker"
)

const (
	rowHeight  = 24.0
	rowGap     = 6.0
	leftMargin = 8.0
	topMargin  = 8.0
	labelWidth = 60.0
)

// Renderer draws a break chain to SVG. It holds no state beyond
// configuration and is safe for concurrent use.
type Renderer struct {
	// Scale converts a target line length in points to pixels of bar
	// width. Zero uses 1.0.
	Scale float64
}

// Render draws one bar per break in breaks, using lineLengths[i] (repeating
// its last entry) as each bar's full-width reference, and returns the
// rendered SVG document.
func (r Renderer) Render(breaks []breaker.Break, lineLengths []float64) ([]byte, error) {
	if len(breaks) == 0 {
		return nil, fmt.Errorf("diagram: no breaks to render")
	}

	scale := r.Scale
	if scale == 0 {
		scale = 1.0
	}

	maxWidth := 0.0
	for _, l := range lineLengths {
		if l*scale > maxWidth {
			maxWidth = l * scale
		}
	}

	width := labelWidth + leftMargin*2 + maxWidth
	height := topMargin*2 + float64(len(breaks))*(rowHeight+rowGap)

	c := canvas.New(width, height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV)

	for i, b := range breaks {
		target := lastOrIndex(lineLengths, i) * scale
		y := topMargin + float64(i)*(rowHeight+rowGap)

		barWidth := target * fillFraction(b.Ratio)
		if barWidth < 0 {
			barWidth = 0
		}

		ctx.SetFillColor(fitnessColor(b.FitnessClass))
		ctx.SetStrokeColor(color.Black)
		ctx.SetStrokeWidth(0.5)
		ctx.DrawPath(labelWidth+leftMargin, y, canvas.Rectangle(barWidth, rowHeight))
	}

	var buf bytes.Buffer
	writer := svg.New(&buf, width, height, nil)
	c.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("diagram: close writer: %w", err)
	}
	return buf.Bytes(), nil
}

func lastOrIndex(lengths []float64, i int) float64 {
	if len(lengths) == 0 {
		return 0
	}
	if i < len(lengths) {
		return lengths[i]
	}
	return lengths[len(lengths)-1]
}

// fillFraction maps an adjustment ratio to a bar-fill fraction of the
// target width: 1.0 at ratio 0 (exact fit), falling by 0.3 per unit of ratio
// as the line stretches and rising as it shrinks, clamped to [0, 1.5].
func fillFraction(ratio float64) float64 {
	f := 1.0 - ratio*0.3
	if f < 0 {
		return 0
	}
	if f > 1.5 {
		return 1.5
	}
	return f
}

func fitnessColor(fc breaker.FitnessClass) color.RGBA {
	switch fc {
	case breaker.FitnessVeryTight:
		return canvas.Hex("#e57373")
	case breaker.FitnessLoose:
		return canvas.Hex("#fff176")
	case breaker.FitnessVeryLoose:
		return canvas.Hex("#ffb74d")
	default:
		return canvas.Hex("#81c784")
	}
}
