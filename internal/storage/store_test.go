package storage

import (
	"os"
	"testing"
	"time"

	. "github.com/onsi/gomega"

	"mad-rd/internal/render"
	"mad-rd/internal/sims/grayscott"
	"mad-rd/internal/stats"
)

func TestStoreSaveLoad(t *testing.T) {
	g := NewWithT(t)
	st := New(t.TempDir())
	g.Expect(st.Init()).To(Succeed())

	f := grayscott.NewField(16, 16)
	var series stats.Series
	series.Observe(f)
	f.StepN(grayscott.DefaultParams(), 10)
	series.Observe(f)

	meta := RunMetadata{
		Sketch:  "grayscott",
		Preset:  "coral",
		Width:   16,
		Height:  16,
		Steps:   10,
		Seed:    42,
		Params:  grayscott.DefaultParams(),
		Summary: stats.Summarize(f),
	}
	img := render.Frame(16, 16, f.Render(), nil, 1)

	id, err := st.Save(meta, img, series)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(id).To(HavePrefix("coral_"))

	loaded, err := st.Load(id)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(loaded.ID).To(Equal(id))
	g.Expect(loaded.Params).To(Equal(grayscott.DefaultParams()))
	g.Expect(loaded.Summary.Step).To(BeEquivalentTo(10))

	back, err := st.LoadSeries(id)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(back.Steps).To(Equal([]float64{0, 10}))
	g.Expect(back.MeanB[1]).To(BeNumerically("~", series.MeanB[1], 1e-8))

	_, err = os.Stat(st.ImagePath(id))
	g.Expect(err).NotTo(HaveOccurred())
}

func TestStoreListOrdersByTime(t *testing.T) {
	g := NewWithT(t)
	st := New(t.TempDir())
	g.Expect(st.Init()).To(Succeed())

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	tick := 0
	st.now = func() time.Time {
		tick++
		return base.Add(time.Duration(-tick) * time.Minute)
	}

	for _, preset := range []string{"maze", "spots"} {
		_, err := st.Save(RunMetadata{Preset: preset}, nil, stats.Series{})
		g.Expect(err).NotTo(HaveOccurred())
	}

	runs, err := st.List()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(runs).To(HaveLen(2))
	g.Expect(runs[0].Preset).To(Equal("spots"))
	g.Expect(runs[1].Preset).To(Equal("maze"))
}

func TestStoreMissingRun(t *testing.T) {
	g := NewWithT(t)
	st := New(t.TempDir())

	runs, err := st.List()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(runs).To(BeEmpty())

	_, err = st.Load("nope")
	g.Expect(err).To(MatchError(ErrRunNotFound))
	_, err = st.LoadSeries("nope")
	g.Expect(err).To(MatchError(ErrRunNotFound))
}
