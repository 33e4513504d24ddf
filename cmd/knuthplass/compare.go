package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/alex-panda/knuthplass/breaker"
	"github.com/alex-panda/knuthplass/itemlang"
)

func newCompareCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "compare <a.kp> <b.kp>",
		Short: "Diff the break chains produced by two itemlang source files",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			}

			aBreaks, err := solveFile(args[0])
			if err != nil {
				return fmt.Errorf("solve %s: %w", args[0], err)
			}
			bBreaks, err := solveFile(args[1])
			if err != nil {
				return fmt.Errorf("solve %s: %w", args[1], err)
			}

			printDiff(breakSummary(aBreaks), breakSummary(bBreaks))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored diff output")
	return cmd
}

func solveFile(path string) ([]breaker.Break, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := itemlang.Parse(f)
	if err != nil {
		return nil, err
	}

	p, lineLengths, opts, err := doc.Build()
	if err != nil {
		return nil, err
	}

	return breaker.Solve(p, lineLengths, opts)
}

func breakSummary(breaks []breaker.Break) string {
	lines := make([]string, len(breaks))
	for i, b := range breaks {
		lines[i] = fmt.Sprintf("line %d: pos=%d fitness=%s ratio=%.3f demerits=%.1f",
			b.Line, b.Position, b.FitnessClass, b.Ratio, b.Demerits)
	}
	return strings.Join(lines, "\n")
}

func printDiff(a, b string) {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)

	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			color.New(color.FgGreen).Print(d.Text)
		case diffmatchpatch.DiffDelete:
			color.New(color.FgRed).Print(d.Text)
		default:
			fmt.Print(d.Text)
		}
	}
	fmt.Println()
}
