// Package storage persists sweep runs under a base directory, one
// subdirectory per run with a metadata.json and a sweep.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/kiimicoum5/Astrale/internal/impact"
	"github.com/kiimicoum5/Astrale/internal/sweep"
)

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
	ID        string                   `json:"id"`
	Field     string                   `json:"field"`
	Timestamp time.Time                `json:"timestamp"`
	Steps     int                      `json:"steps"`
	Base      impact.Params            `json:"base"`
	Summaries map[string]sweep.Summary `json:"summaries"`
}

// Save writes one sweep run and returns its generated id. The id
// embeds the swept field and a unix timestamp, so ids sort by age.
func (s *Store) Save(result *sweep.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", result.Field, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Field:     string(result.Field),
		Timestamp: time.Now(),
		Steps:     len(result.Points),
		Base:      result.Base,
		Summaries: result.Summaries,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "sweep.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := WriteCSV(csvFile, result); err != nil {
		return "", err
	}

	return runID, nil
}

// Values span twenty orders of magnitude, so rows use the shortest
// exact form rather than a fixed decimal count.
func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
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

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadResult rebuilds a full sweep result from a stored run, for
// re-export and plotting.
func (s *Store) LoadResult(runID string) (*sweep.Result, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	values, columns, err := s.LoadPoints(runID)
	if err != nil {
		return nil, err
	}

	return sweep.ResultFromSeries(impact.Field(meta.Field), meta.Base, values, columns, meta.Summaries), nil
}

// LoadPoints reads a run's sweep.csv back into the swept values and
// one series per indicator column, keyed by header name.
func (s *Store) LoadPoints(runID string) ([]float64, map[string][]float64, error) {
	csvPath := filepath.Join(s.baseDir, runID, "sweep.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) < 2 {
		return []float64{}, map[string][]float64{}, nil
	}

	header := records[0]
	values := make([]float64, 0, len(records)-1)
	columns := make(map[string][]float64, len(header)-1)

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) == 0 {
			continue
		}

		v, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		values = append(values, v)

		for j := 1; j < len(record) && j < len(header); j++ {
			val, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				continue
			}
			columns[header[j]] = append(columns[header[j]], val)
		}
	}

	return values, columns, nil
}
