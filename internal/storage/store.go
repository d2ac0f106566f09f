package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/stochsim/internal/stats"
)

// Store persists simulation runs under a base directory, one subdirectory
// per run: metadata.json plus the ensemble mean path as CSV.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string        `json:"id"`
	Model     string        `json:"model"`
	Timestamp time.Time     `json:"timestamp"`
	Seed      uint64        `json:"seed"`
	NrPaths   int           `json:"nr_paths"`
	NrSteps   int           `json:"nr_steps"`
	Dt        float64       `json:"dt"`
	Summary   stats.Summary `json:"summary"`
}

func (s *Store) Save(model string, seed uint64, nrPaths, nrSteps int, dt float64, summary stats.Summary, meanPath []float64) (string, error) {
	runID := fmt.Sprintf("%s_%d", model, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Model:     model,
		Timestamp: time.Now(),
		Seed:      seed,
		NrPaths:   nrPaths,
		NrSteps:   nrSteps,
		Dt:        dt,
		Summary:   summary,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "mean_path.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"step", "time", "mean"}); err != nil {
		return "", err
	}
	for i, v := range meanPath {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(float64(i)*dt, 'f', 6, 64),
			strconv.FormatFloat(v, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

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
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadMeanPath reads back the stored mean path of a run.
func (s *Store) LoadMeanPath(runID string) ([]float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "mean_path.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}

	mean := make([]float64, 0, len(records))
	for i := 1; i < len(records); i++ {
		if len(records[i]) < 3 {
			continue
		}
		v, err := strconv.ParseFloat(records[i][2], 64)
		if err != nil {
			continue
		}
		mean = append(mean, v)
	}
	return mean, nil
}
