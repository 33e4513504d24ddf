package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/alex-panda/knuthplass/breaker"
	"github.com/alex-panda/knuthplass/diagram"
	"github.com/alex-panda/knuthplass/itemlang"
)

func newSolveCmd() *cobra.Command {
	var svgOut string

	cmd := &cobra.Command{
		Use:   "solve <file.kp>",
		Short: "Solve an itemlang source file and print the chosen breaks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer f.Close()

			doc, err := itemlang.Parse(f)
			if err != nil {
				return err
			}

			p, lineLengths, opts, err := doc.Build()
			if err != nil {
				return err
			}

			logger.Debug("solving", "items", p.Len(), "lines", len(lineLengths))

			breaks, err := breaker.Solve(p, lineLengths, opts)
			if err != nil {
				return err
			}

			printBreaks(breaks)

			if svgOut != "" {
				out, err := (diagram.Renderer{}).Render(breaks, lineLengths)
				if err != nil {
					return fmt.Errorf("render diagram: %w", err)
				}
				if err := os.WriteFile(svgOut, out, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", svgOut, err)
				}
				logger.Info("wrote diagram", "path", svgOut)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&svgOut, "svg", "", "write an SVG diagram of the chosen breaks to this path")
	return cmd
}

func printBreaks(breaks []breaker.Break) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(os.Stdout)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"line", "position", "fitness", "ratio", "demerits"})

	for _, b := range breaks {
		tbl.AppendRow(table.Row{b.Line, b.Position, b.FitnessClass, fmt.Sprintf("%.3f", b.Ratio), fmt.Sprintf("%.1f", b.Demerits)})
	}

	tbl.AppendFooter(table.Row{"", "", "", "total lines", len(breaks)})
	tbl.Render()
}
