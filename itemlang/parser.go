// Package itemlang is a small text format for authoring breaker.Paragraph
// item streams: a line-length schedule, an optional options block, and a
// sequence of box/glue/penalty declarations.
package itemlang

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/alex-panda/knuthplass/breaker"
	"github.com/alex-panda/knuthplass/units"
)

var (
	itemLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "Number", Pattern: `\d+(?:\.\d+)?(?:pt|mm|cm|in)?`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
		{Name: "Symbol", Pattern: `[{}:+\-]`},
	})

	documentParser = participle.MustBuild[Document](
		participle.Lexer(itemLexer),
		participle.Elide("Whitespace", "LineComment"),
	)
)

// Document is the parsed form of an item-stream source file.
type Document struct {
	Lines   *LinesDecl    `parser:"Newline* @@?"`
	Options *OptionsDecl  `parser:"Newline* @@?"`
	Items   []*ItemDecl   `parser:"Newline* ( @@ Newline* )*"`
}

// LinesDecl is the "lines <len> <len> ..." schedule declaration.
type LinesDecl struct {
	Lengths []Length `parser:"'lines' @Number+"`
}

// OptionsDecl overrides fields of breaker.DefaultOptions.
type OptionsDecl struct {
	Entries []*OptionEntry `parser:"'options' '{' Newline* ( @@ Newline* )* '}'"`
}

// OptionEntry is a single "key: value" pair inside an options block.
type OptionEntry struct {
	Key   string  `parser:"@Ident ':'"`
	Value float64 `parser:"@Number"`
}

// ItemDecl is one box, glue, or penalty declaration.
type ItemDecl struct {
	Box     *BoxDecl     `parser:"(  @@"`
	Glue    *GlueDecl    `parser:"|  @@"`
	Penalty *PenaltyDecl `parser:"|  @@ )"`
}

// BoxDecl is "box <width>".
type BoxDecl struct {
	Width Length `parser:"'box' @Number"`
}

// GlueDecl is "glue <width> <stretch> <shrink>".
type GlueDecl struct {
	Width   Length `parser:"'glue' @Number"`
	Stretch Length `parser:"@Number"`
	Shrink  Length `parser:"@Number"`
}

// PenaltyDecl is "penalty <width> <value> [flagged]", where value is a
// number or +inf/-inf.
type PenaltyDecl struct {
	Width   Length       `parser:"'penalty' @Number"`
	Value   PenaltyValue `parser:"@@"`
	Flagged bool         `parser:"@'flagged'?"`
}

// Length captures a units-suffixed number as a point value.
type Length float64

// Capture implements participle.Capture.
func (l *Length) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("itemlang: length capture requires a value")
	}
	pts, err := units.ParsePoints(values[0])
	if err != nil {
		return err
	}
	*l = Length(pts)
	return nil
}

// PenaltyValue is a signed penalty, including the +inf/-inf sentinels.
type PenaltyValue float64

// Parse implements participle.Parseable, consuming an optional sign, then
// either "inf" or a numeric literal.
func (v *PenaltyValue) Parse(lex *lexer.PeekingLexer) error {
	tok := lex.Peek()
	if tok.EOF() {
		return participle.NextMatch
	}

	negative := false
	if tok.Value == "-" || tok.Value == "+" {
		negative = tok.Value == "-"
		lex.Next()
		tok = lex.Peek()
	}

	if tok.Value == "inf" {
		lex.Next()
		if negative {
			*v = PenaltyValue(-breaker.Inf)
		} else {
			*v = PenaltyValue(breaker.Inf)
		}
		return nil
	}

	numTok := lex.Next()
	n, err := strconv.ParseFloat(numTok.Value, 64)
	if err != nil {
		return fmt.Errorf("itemlang: invalid penalty value %q: %w", numTok.Value, err)
	}
	if negative {
		n = -n
	}
	*v = PenaltyValue(n)
	return nil
}

// Parse reads an item-stream document from r.
func Parse(r io.Reader) (*Document, error) {
	doc, err := documentParser.Parse("", r)
	if err != nil {
		return nil, &Error{Code: ErrCodeSyntax, Message: "failed to parse item stream", Cause: err}
	}
	return doc, nil
}

// ParseString reads an item-stream document from a string.
func ParseString(src string) (*Document, error) {
	doc, err := documentParser.ParseString("", src)
	if err != nil {
		return nil, &Error{Code: ErrCodeSyntax, Message: "failed to parse item stream", Cause: err}
	}
	return doc, nil
}
