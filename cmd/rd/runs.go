package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"mad-rd/internal/plot"
	"mad-rd/internal/storage"
)

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tSIZE\tSTEPS\tMEAN B\tEDGES")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%dx%d\t%d\t%.4f\t%.4f\n",
			run.ID,
			run.Preset,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Width,
			run.Height,
			run.Steps,
			run.Summary.MeanB,
			run.EdgeRatio,
		)
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headerStyle.Render(meta.ID))
	printField(out, "sketch", "%s", meta.Sketch)
	printField(out, "preset", "%s", meta.Preset)
	printField(out, "time", "%s", meta.Timestamp.Format("2006-01-02 15:04:05"))
	printField(out, "size", "%dx%d", meta.Width, meta.Height)
	printField(out, "params", "feed=%.4f kill=%.4f da=%.2f db=%.2f", meta.Params.Feed, meta.Params.Kill, meta.Params.DA, meta.Params.DB)
	printSummary(out, meta.Summary, meta.EdgeRatio, false)
	printField(out, "image", "%s", st.ImagePath(meta.ID))

	series, err := st.LoadSeries(meta.ID)
	if err != nil {
		return err
	}
	if graph := plot.Terminal(series, "mean B", 60, 10); graph != "" {
		fmt.Fprintln(out, graphStyle.Render(graph))
	}
	return nil
}
