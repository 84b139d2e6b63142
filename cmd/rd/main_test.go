package main

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"

	"mad-rd/internal/config"
	"mad-rd/internal/storage"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParsePaint(t *testing.T) {
	g := NewWithT(t)

	p, err := parsePaint("10, 20,3")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(p).To(Equal(paintSpec{X: 10, Y: 20, R: 3}))

	p, err = parsePaint("1,2")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(p.R).To(Equal(4))

	for _, bad := range []string{"", "1", "1,2,3,4", "a,2", "1,2,-1"} {
		_, err := parsePaint(bad)
		g.Expect(err).To(HaveOccurred(), bad)
	}
}

func TestRunWritesArtifactsAndSaves(t *testing.T) {
	g := NewWithT(t)
	dir := t.TempDir()
	png := filepath.Join(dir, "final.png")
	chart := filepath.Join(dir, "chart.png")
	avi := filepath.Join(dir, "run.avi")

	out, err := execute(t, "run",
		"--width", "32", "--height", "32", "--steps", "40",
		"--paint", "4,4,2", "--palette", "inferno", "--scale", "2",
		"--out", png, "--chart", chart, "--record", avi, "--record-every", "10",
		"--save", "--data", dir, "-q",
	)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(out).To(ContainSubstring("mean B"))
	g.Expect(out).To(ContainSubstring("saved"))
	g.Expect(png).To(BeARegularFile())
	g.Expect(chart).To(BeARegularFile())
	g.Expect(avi).To(BeARegularFile())
	g.Expect(out).To(ContainSubstring("4 -> " + avi))

	runs, err := storage.New(dir).List()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(runs).To(HaveLen(1))
	g.Expect(runs[0].Preset).To(Equal("coral"))
	g.Expect(runs[0].Steps).To(Equal(40))

	out, err = execute(t, "list", "--data", dir)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(out).To(ContainSubstring(runs[0].ID))

	out, err = execute(t, "show", runs[0].ID, "--data", dir)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(out).To(ContainSubstring("coral"))
}

func TestRunFlagsOverrideConfigFile(t *testing.T) {
	g := NewWithT(t)
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "run.yaml")
	cfg := config.DefaultConfig()
	cfg.Preset = "maze"
	cfg.Width, cfg.Height = 24, 24
	cfg.Steps = 10
	g.Expect(config.Save(cfgPath, cfg)).To(Succeed())

	_, err := execute(t, "run", "--config", cfgPath, "--kill", "0.06", "--save", "--data", dir, "-q")
	g.Expect(err).NotTo(HaveOccurred())

	runs, err := storage.New(dir).List()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(runs).To(HaveLen(1))
	g.Expect(runs[0].Preset).To(Equal("custom"))
	g.Expect(runs[0].Width).To(Equal(24))
	g.Expect(runs[0].Steps).To(Equal(10))
	g.Expect(runs[0].Params.Feed).To(Equal(0.029))
	g.Expect(runs[0].Params.Kill).To(Equal(0.06))
}

func TestRunFailsWhenArtifactCannotBeWritten(t *testing.T) {
	g := NewWithT(t)
	missing := filepath.Join(t.TempDir(), "missing", "final.png")
	_, err := execute(t, "run", "--width", "16", "--height", "16", "--steps", "2", "-q", "--out", missing)
	g.Expect(err).To(HaveOccurred())
	g.Expect(missing).NotTo(BeAnExistingFile())

	chart := filepath.Join(t.TempDir(), "missing", "chart.png")
	_, err = execute(t, "run", "--width", "16", "--height", "16", "--steps", "2", "-q", "--chart", chart)
	g.Expect(err).To(HaveOccurred())
}

func TestRunChartsUniformField(t *testing.T) {
	g := NewWithT(t)
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "run.yaml")
	cfg := config.DefaultConfig()
	cfg.Width, cfg.Height = 16, 16
	cfg.SeedSize = 0
	cfg.Steps = 20
	g.Expect(config.Save(cfgPath, cfg)).To(Succeed())

	chart := filepath.Join(dir, "chart.png")
	out, err := execute(t, "run", "--config", cfgPath, "--chart", chart, "-q")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(out).To(ContainSubstring("field is uniform"))
	g.Expect(chart).To(BeARegularFile())
}

func TestRunRejectsUnknownPreset(t *testing.T) {
	g := NewWithT(t)
	_, err := execute(t, "run", "--preset", "nope", "--steps", "1")
	g.Expect(err).To(MatchError(config.ErrUnknownPreset))
}

func TestSweepPrintsTable(t *testing.T) {
	g := NewWithT(t)
	out, err := execute(t, "sweep", "--width", "24", "--height", "24", "--steps", "20", "--presets", "maze,spots", "--workers", "2")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(out).To(ContainSubstring("maze"))
	g.Expect(out).To(ContainSubstring("spots"))

	_, err = execute(t, "sweep", "--presets", "nope")
	g.Expect(err).To(HaveOccurred())
}

func TestListingCommands(t *testing.T) {
	g := NewWithT(t)
	out, err := execute(t, "presets")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(out).To(ContainSubstring("mitosis"))

	out, err = execute(t, "sketches")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(out).To(ContainSubstring("grayscott"))

	out, err = execute(t, "list", "--data", filepath.Join(t.TempDir(), "missing"))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(out).To(ContainSubstring("no runs found"))
}
