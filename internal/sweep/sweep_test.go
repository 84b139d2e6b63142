package sweep

import (
	"context"
	"testing"

	. "github.com/onsi/gomega"

	"mad-rd/internal/sims/grayscott"
)

func TestRunKeepsPresetOrder(t *testing.T) {
	g := NewWithT(t)

	results, err := Run(context.Background(), Options{
		Width:   24,
		Height:  24,
		Steps:   50,
		Presets: []string{"spots", "coral", "maze"},
		Workers: 2,
	})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(results).To(HaveLen(3))
	g.Expect(results[0].Preset).To(Equal("spots"))
	g.Expect(results[1].Preset).To(Equal("coral"))
	g.Expect(results[2].Preset).To(Equal("maze"))
	for _, r := range results {
		g.Expect(r.Summary.Step).To(BeEquivalentTo(50))
		g.Expect(r.Summary.MinB).To(BeNumerically(">=", 0))
		g.Expect(r.Summary.MaxB).To(BeNumerically("<=", 1))
	}
}

func TestRunMatchesSequentialField(t *testing.T) {
	g := NewWithT(t)

	results, err := Run(context.Background(), Options{Width: 16, Height: 16, Steps: 30, Presets: []string{"worms"}})
	g.Expect(err).NotTo(HaveOccurred())

	preset, _ := grayscott.PresetByName("worms")
	f := grayscott.NewField(16, 16)
	f.StepN(preset.Apply(grayscott.DefaultParams()), 30)
	var sum float64
	for _, b := range f.B() {
		sum += b
	}
	g.Expect(results[0].Summary.MeanB).To(BeNumerically("~", sum/256, 1e-12))
}

func TestRunUnknownPreset(t *testing.T) {
	g := NewWithT(t)

	_, err := Run(context.Background(), Options{Presets: []string{"coral", "plaid"}})
	g.Expect(err).To(MatchError(ErrUnknownPreset))
}

func TestRunCanceled(t *testing.T) {
	g := NewWithT(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, Options{Width: 8, Height: 8, Steps: 500, Presets: []string{"coral"}})
	g.Expect(err).To(MatchError(context.Canceled))
}
