package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"mad-rd/internal/sweep"
)

func newSweepCmd() *cobra.Command {
	var opts sweep.Options
	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "run several presets in parallel and compare their textures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := sweep.Run(cmd.Context(), opts)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PRESET\tFEED\tKILL\tMEAN B\tCOVERAGE\tEDGES\tUNIFORM")
			for _, r := range results {
				fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.4f\t%.1f%%\t%.4f\t%v\n",
					r.Preset,
					r.Params.Feed,
					r.Params.Kill,
					r.Summary.MeanB,
					r.Summary.CoverageB*100,
					r.EdgeDensity,
					r.Uniform,
				)
			}
			return w.Flush()
		},
	}
	f := sweepCmd.Flags()
	f.IntVar(&opts.Width, "width", 128, "grid width")
	f.IntVar(&opts.Height, "height", 128, "grid height")
	f.IntVar(&opts.Steps, "steps", 2000, "field steps per preset")
	f.IntVar(&opts.Workers, "workers", 0, "parallel fields (0 = one per CPU)")
	f.StringSliceVar(&opts.Presets, "presets", nil, "presets to compare (default all)")
	return sweepCmd
}
