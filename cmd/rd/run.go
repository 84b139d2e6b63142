package main

import (
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"mad-rd/internal/config"
	"mad-rd/internal/plot"
	"mad-rd/internal/record"
	"mad-rd/internal/render"
	"mad-rd/internal/sims/grayscott"
	"mad-rd/internal/stats"
	"mad-rd/internal/storage"
	"mad-rd/internal/sweep"
)

// seriesSamples is the target number of MeanB samples per run.
const seriesSamples = 200

type runOptions struct {
	configFile    string
	preset        string
	width         int
	height        int
	steps         int
	seed          int64
	feed          float64
	kill          float64
	da            float64
	db            float64
	stepsPerFrame int
	paints        []string
	palette       string
	scale         int
	out           string
	recordPath    string
	recordEvery   int
	chartPath     string
	save          bool
	quiet         bool
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}
	defaults := config.DefaultConfig()
	rates := grayscott.DefaultParams()

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a field headless and write the requested artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(cmd, opts)
		},
	}
	f := runCmd.Flags()
	f.StringVar(&opts.configFile, "config", "", "run file path (yaml)")
	f.StringVar(&opts.preset, "preset", defaults.Preset, "feed/kill preset")
	f.IntVar(&opts.width, "width", defaults.Width, "grid width")
	f.IntVar(&opts.height, "height", defaults.Height, "grid height")
	f.IntVar(&opts.steps, "steps", defaults.Steps, "field steps to run")
	f.Int64Var(&opts.seed, "seed", defaults.Seed, "seed for scattered seeds")
	f.Float64Var(&opts.feed, "feed", rates.Feed, "feed rate")
	f.Float64Var(&opts.kill, "kill", rates.Kill, "kill rate")
	f.Float64Var(&opts.da, "da", rates.DA, "diffusion rate of A")
	f.Float64Var(&opts.db, "db", rates.DB, "diffusion rate of B")
	f.IntVar(&opts.stepsPerFrame, "steps-per-frame", rates.StepsPerFrame, "field steps per frame, also the default --record-every")
	f.StringArrayVar(&opts.paints, "paint", nil, "paint a disk of B at x,y,r before running (repeatable)")
	f.StringVar(&opts.palette, "palette", defaults.Palette, "palette for images and recordings")
	f.IntVar(&opts.scale, "scale", defaults.Scale, "pixel scale for images and recordings")
	f.StringVar(&opts.out, "out", "", "write the final frame as PNG")
	f.StringVar(&opts.recordPath, "record", "", "record an MJPEG AVI")
	f.IntVar(&opts.recordEvery, "record-every", 0, "field steps per recorded frame")
	f.StringVar(&opts.chartPath, "chart", "", "write a MeanB chart as PNG")
	f.BoolVar(&opts.save, "save", false, "save the run under --data")
	f.BoolVarP(&opts.quiet, "quiet", "q", false, "skip the terminal graph")
	return runCmd
}

// resolveConfig loads the run file, if any, and applies the flags the user
// set explicitly on top of it.
func resolveConfig(cmd *cobra.Command, opts *runOptions) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if opts.configFile != "" {
		loaded, err := config.Load(opts.configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("preset") {
		cfg.Preset = opts.preset
		cfg.Params = nil
	}
	if flags.Changed("width") {
		cfg.Width = opts.width
		cfg.SurfaceWidth = 0
	}
	if flags.Changed("height") {
		cfg.Height = opts.height
		cfg.SurfaceHeight = 0
	}
	if flags.Changed("steps") {
		cfg.Steps = opts.steps
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if flags.Changed("palette") {
		cfg.Palette = opts.palette
	}
	if flags.Changed("scale") {
		cfg.Scale = opts.scale
	}

	if anyChanged(cmd, "feed", "kill", "da", "db", "steps-per-frame") {
		p := cfg.Rates()
		if flags.Changed("feed") {
			p.Feed = opts.feed
		}
		if flags.Changed("kill") {
			p.Kill = opts.kill
		}
		if flags.Changed("da") {
			p.DA = opts.da
		}
		if flags.Changed("db") {
			p.DB = opts.db
		}
		if flags.Changed("steps-per-frame") {
			p.StepsPerFrame = opts.stepsPerFrame
		}
		cfg.Params = &p
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func anyChanged(cmd *cobra.Command, names ...string) bool {
	for _, name := range names {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func runSimulation(cmd *cobra.Command, opts *runOptions) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}
	paints, err := parsePaints(opts.paints)
	if err != nil {
		return err
	}
	palette, err := render.PaletteByName(cfg.Palette)
	if err != nil {
		return err
	}

	sim := grayscott.NewWithConfig(cfg.SimConfig())
	for _, p := range paints {
		sim.Paint(p.X, p.Y, p.R)
	}
	field := sim.Field()
	params := sim.Params()
	w, h := field.Size()
	scale := max(cfg.Scale, 1)

	var rec *record.Recorder
	if opts.recordPath != "" {
		rec, err = record.New(opts.recordPath, w*scale, h*scale, 30, 90)
		if err != nil {
			return err
		}
		defer func() {
			if err := rec.Close(); err != nil {
				log.Printf("close recording: %v", err)
			}
		}()
	}
	every := opts.recordEvery
	if every <= 0 {
		every = max(params.StepsPerFrame, 1)
	}
	sampleEvery := max(cfg.Steps/seriesSamples, 1)

	var series stats.Series
	series.Observe(field)
	start := time.Now()
	for i := 1; i <= cfg.Steps; i++ {
		field.Step(params)
		if i%sampleEvery == 0 || i == cfg.Steps {
			series.Observe(field)
		}
		if rec != nil && i%every == 0 {
			if err := rec.AddFrame(render.Frame(w, h, field.Render(), palette, scale)); err != nil {
				return err
			}
		}
	}
	elapsed := time.Since(start)

	gray := field.Render()
	summary := stats.Summarize(field)
	edges := stats.EdgeDensity(gray, w, h, sweep.EdgeThreshold)
	final := render.Frame(w, h, gray, palette, scale)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("grayscott %dx%d  %s", w, h, sim.Config().Preset)))
	printField(out, "params", "feed=%.4f kill=%.4f da=%.2f db=%.2f", params.Feed, params.Kill, params.DA, params.DB)
	printSummary(out, summary, edges, stats.Uniform(gray))
	printField(out, "elapsed", "%s (%.0f steps/s)", elapsed.Round(time.Millisecond), float64(cfg.Steps)/max(elapsed.Seconds(), 1e-9))
	if rec != nil {
		printField(out, "frames", "%d -> %s", rec.Frames(), opts.recordPath)
	}
	if !opts.quiet {
		fmt.Fprintln(out, graphStyle.Render(plot.Terminal(series, "mean B", 60, 10)))
	}

	if opts.out != "" {
		if err := writePNG(opts.out, final); err != nil {
			return fmt.Errorf("write %s: %w", opts.out, err)
		}
	}
	if opts.chartPath != "" {
		if err := writeChart(opts.chartPath, sim.Config().Preset, series); err != nil {
			return fmt.Errorf("write %s: %w", opts.chartPath, err)
		}
	}
	if opts.save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		id, err := st.Save(storage.RunMetadata{
			Sketch:    sim.Name(),
			Preset:    sim.Config().Preset,
			Width:     w,
			Height:    h,
			Steps:     cfg.Steps,
			Seed:      cfg.Seed,
			Params:    params,
			Summary:   summary,
			EdgeRatio: edges,
			Elapsed:   elapsed,
		}, final, series)
		if err != nil {
			return err
		}
		printField(out, "saved", "%s", id)
	}
	return nil
}

func printSummary(out io.Writer, s stats.Summary, edges float64, uniform bool) {
	printField(out, "steps", "%d", s.Step)
	printField(out, "mean A", "%.4f", s.MeanA)
	printField(out, "mean B", "%.4f", s.MeanB)
	printField(out, "B range", "%.4f .. %.4f", s.MinB, s.MaxB)
	printField(out, "coverage", "%.1f%%", s.CoverageB*100)
	printField(out, "edges", "%.4f", edges)
	if uniform {
		fmt.Fprintln(out, dimStyle.Render("field is uniform"))
	}
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.EncodePNG(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeChart(path, name string, series stats.Series) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := plot.WriteChart(f, 800, 400, plot.Named{Name: name, Series: series}); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
