package main

import (
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/alex-panda/knuthplass/config"
)

func newConfigCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved engine configuration",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			printConfig(cfg)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a knuthplass config file")
	return cmd
}

func printConfig(cfg *config.EngineConfig) {
	fmt.Printf("tolerance=%.2f looseness=%d fitness_demerit=%.1f flagged_demerit=%.1f\n",
		cfg.DefaultOptions.Tolerance, cfg.DefaultOptions.Looseness,
		cfg.DefaultOptions.FitnessDemerit, cfg.DefaultOptions.FlaggedDemerit)

	fmt.Printf("cache: enabled=%v address=%s ttl=%s\n", cfg.Cache.Enabled, cfg.Cache.Address, cfg.Cache.TTL)
	fmt.Printf("audit: enabled=%v uri=%s database=%s\n", cfg.Audit.Enabled, cfg.Audit.URI, cfg.Audit.Database)

	names := make([]string, 0, len(cfg.Schedules))
	for name := range cfg.Schedules {
		names = append(names, name)
	}
	sort.Strings(names)

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"schedule", "lines", "total width (pt)"})

	for _, name := range names {
		sched := cfg.Schedules[name]
		total := 0.0
		for _, l := range sched.Lengths {
			total += l
		}
		tbl.AppendRow(table.Row{name, len(sched.Lengths), humanize.Commaf(total)})
	}

	fmt.Println(tbl.Render())
}
