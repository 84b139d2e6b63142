// Package sweep runs several presets side by side on independent fields and
// compares the textures they settle into.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"mad-rd/internal/sims/grayscott"
	"mad-rd/internal/stats"
)

// ErrUnknownPreset is returned when Options names a preset that does not exist.
var ErrUnknownPreset = errors.New("sweep: unknown preset")

// EdgeThreshold is the intensity step counted as an edge by EdgeDensity.
const EdgeThreshold = 32

// cancelCheckInterval is how many steps run between context checks.
const cancelCheckInterval = 64

// Options configures a sweep. Zero values fall back to defaults.
type Options struct {
	Width    int
	Height   int
	Steps    int
	SeedSize int
	Presets  []string
	Workers  int
}

// Result holds the outcome for one preset.
type Result struct {
	Preset      string
	Params      grayscott.Params
	Summary     stats.Summary
	EdgeDensity float64
	Uniform     bool
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 128
	}
	if o.Height <= 0 {
		o.Height = 128
	}
	if o.Steps <= 0 {
		o.Steps = 2000
	}
	if o.SeedSize == 0 {
		o.SeedSize = grayscott.DefaultSeedSize
	}
	if len(o.Presets) == 0 {
		o.Presets = grayscott.PresetNames()
	}
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	return o
}

// Run evaluates every preset on its own field. Each field is owned by a
// single goroutine. Results are returned in the order of Options.Presets.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	opts = opts.withDefaults()

	params := make([]grayscott.Params, len(opts.Presets))
	for i, name := range opts.Presets {
		p, ok := grayscott.PresetByName(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
		}
		params[i] = p.Apply(grayscott.DefaultParams())
	}

	results := make([]Result, len(opts.Presets))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i := range opts.Presets {
		g.Go(func() error {
			res, err := runOne(ctx, opts, opts.Presets[i], params[i])
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runOne(ctx context.Context, opts Options, name string, p grayscott.Params) (Result, error) {
	f := grayscott.NewFieldWithSeed(opts.Width, opts.Height, opts.SeedSize)
	for done := 0; done < opts.Steps; {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("sweep: preset %s: %w", name, err)
		}
		n := min(cancelCheckInterval, opts.Steps-done)
		f.StepN(p, n)
		done += n
	}
	img := f.Render()
	return Result{
		Preset:      name,
		Params:      p,
		Summary:     stats.Summarize(f),
		EdgeDensity: stats.EdgeDensity(img, opts.Width, opts.Height, EdgeThreshold),
		Uniform:     stats.Uniform(img),
	}, nil
}
