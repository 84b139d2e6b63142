package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"mad-rd/internal/core"
	"mad-rd/internal/sims/grayscott"
)

var dataDir string

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "rd",
		Short:        "headless reaction-diffusion runs, sweeps and saved results",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".mad-rd", "data directory")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list feed/kill presets",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, p := range grayscott.Presets() {
				fmt.Fprintf(out, "  %s  feed=%.4f kill=%.4f\n", labelStyle.Render(p.Name), p.Feed, p.Kill)
			}
		},
	}

	sketchesCmd := &cobra.Command{
		Use:   "sketches",
		Short: "list registered sketches",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range core.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a saved run and its MeanB graph",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	rootCmd.AddCommand(newRunCmd(), newSweepCmd(), presetsCmd, sketchesCmd, listCmd, showCmd)
	return rootCmd
}
