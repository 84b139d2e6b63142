// Package storage saves headless runs to disk: metadata, the final frame and
// the MeanB series.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"mad-rd/internal/render"
	"mad-rd/internal/sims/grayscott"
	"mad-rd/internal/stats"
)

const (
	metadataFile = "metadata.json"
	imageFile    = "final.png"
	seriesFile   = "series.csv"
)

// ErrRunNotFound is returned by Load for unknown run IDs.
var ErrRunNotFound = errors.New("storage: run not found")

type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string           `json:"id"`
	Sketch    string           `json:"sketch"`
	Preset    string           `json:"preset"`
	Timestamp time.Time        `json:"timestamp"`
	Width     int              `json:"width"`
	Height    int              `json:"height"`
	Steps     int              `json:"steps"`
	Seed      int64            `json:"seed"`
	Params    grayscott.Params `json:"params"`
	Summary   stats.Summary    `json:"summary"`
	EdgeRatio float64          `json:"edge_density"`
	Elapsed   time.Duration    `json:"elapsed_ns"`
}

// Save writes a run directory and returns its ID. meta.ID and
// meta.Timestamp are filled in.
func (s *Store) Save(meta RunMetadata, img image.Image, series stats.Series) (string, error) {
	now := s.now()
	name := meta.Preset
	if name == "" {
		name = "custom"
	}
	meta.ID = fmt.Sprintf("%s_%d", name, now.UnixNano())
	meta.Timestamp = now
	runDir := filepath.Join(s.baseDir, meta.ID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", fmt.Errorf("storage: create run dir: %w", err)
	}
	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}
	if img != nil {
		if err := writePNG(filepath.Join(runDir, imageFile), img); err != nil {
			return "", err
		}
	}
	if err := writeSeries(filepath.Join(runDir, seriesFile), series); err != nil {
		return "", err
	}
	return meta.ID, nil
}

func writeJSON(path string, meta RunMetadata) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return fmt.Errorf("storage: encode metadata: %w", err)
	}
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	defer f.Close()
	return render.EncodePNG(f, img)
}

func writeSeries(path string, series stats.Series) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"step", "mean_b"}); err != nil {
		return fmt.Errorf("storage: write series: %w", err)
	}
	for i := range series.MeanB {
		row := []string{
			strconv.FormatFloat(series.Steps[i], 'f', 0, 64),
			strconv.FormatFloat(series.MeanB[i], 'f', 8, 64),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("storage: write series: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// List returns the metadata of every saved run, oldest first. Directories
// without readable metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("storage: decode %s: %w", runID, err)
	}
	return &meta, nil
}

// LoadSeries reads back the MeanB series of a run. Malformed rows are skipped.
func (s *Store) LoadSeries(runID string) (stats.Series, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, seriesFile))
	if err != nil {
		if os.IsNotExist(err) {
			return stats.Series{}, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return stats.Series{}, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return stats.Series{}, fmt.Errorf("storage: read series: %w", err)
	}

	var series stats.Series
	for i := 1; i < len(records); i++ {
		if len(records[i]) < 2 {
			continue
		}
		step, err := strconv.ParseFloat(records[i][0], 64)
		if err != nil {
			continue
		}
		mean, err := strconv.ParseFloat(records[i][1], 64)
		if err != nil {
			continue
		}
		series.Steps = append(series.Steps, step)
		series.MeanB = append(series.MeanB, mean)
	}
	return series, nil
}

// ImagePath returns the path of a run's final frame.
func (s *Store) ImagePath(runID string) string {
	return filepath.Join(s.baseDir, runID, imageFile)
}
