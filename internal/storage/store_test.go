package storage

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kiimicoum5/Astrale/internal/impact"
	"github.com/kiimicoum5/Astrale/internal/sweep"
)

func sampleRun(t *testing.T) *sweep.Result {
	t.Helper()
	result, err := sweep.Run(impact.DefaultParams(), impact.FieldVelocity, 5)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	return result
}

func TestStoreSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	result := sampleRun(t)

	runID, err := st.Save(result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if runID == "" {
		t.Error("expected non-empty run id")
	}
	if !strings.HasPrefix(runID, "velocity_") {
		t.Errorf("expected run id prefixed with field, got %q", runID)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if meta.Field != "velocity" {
		t.Errorf("expected field 'velocity', got '%s'", meta.Field)
	}
	if meta.Steps != 5 {
		t.Errorf("expected 5 steps, got %d", meta.Steps)
	}
	if meta.Base != impact.DefaultParams() {
		t.Errorf("base params changed through save/load: %+v", meta.Base)
	}
	if meta.Summaries["energy"] != result.Summaries["energy"] {
		t.Errorf("energy summary changed through save/load")
	}
}

func TestStoreLoadPoints(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	result := sampleRun(t)

	runID, err := st.Save(result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	values, columns, err := st.LoadPoints(runID)
	if err != nil {
		t.Fatalf("load points failed: %v", err)
	}

	if len(values) != len(result.Points) {
		t.Fatalf("expected %d values, got %d", len(result.Points), len(values))
	}
	for i, v := range values {
		if v != result.Points[i].Value {
			t.Errorf("value %d: expected %v, got %v", i, result.Points[i].Value, v)
		}
	}

	richter := result.Column("richter")
	for i, v := range columns["richter"] {
		if v != richter[i] {
			t.Errorf("richter %d: expected %v, got %v", i, richter[i], v)
		}
	}
}

func TestStoreLoadResult(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	result := sampleRun(t)

	runID, err := st.Save(result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := st.LoadResult(runID)
	if err != nil {
		t.Fatalf("load result failed: %v", err)
	}

	if loaded.Field != result.Field {
		t.Errorf("expected field %q, got %q", result.Field, loaded.Field)
	}
	if len(loaded.Points) != len(result.Points) {
		t.Fatalf("expected %d points, got %d", len(result.Points), len(loaded.Points))
	}
	for i := range result.Points {
		if loaded.Points[i] != result.Points[i] {
			t.Fatalf("point %d changed through save/load", i)
		}
	}
}

func TestStoreList(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	if _, err := st.Save(sampleRun(t)); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(sampleRun(t))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runDir := filepath.Join(tmpDir, runID)
	metaPath := filepath.Join(runDir, "metadata.json")
	csvPath := filepath.Join(runDir, "sweep.csv")

	if _, err := os.Stat(metaPath); os.IsNotExist(err) {
		t.Error("metadata.json not created")
	}
	if _, err := os.Stat(csvPath); os.IsNotExist(err) {
		t.Error("sweep.csv not created")
	}
}

func TestExportJSON(t *testing.T) {
	result := sampleRun(t)
	path := filepath.Join(t.TempDir(), "run.json")

	if err := ExportJSON(path, result); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if data.Field != "velocity" {
		t.Errorf("expected field 'velocity', got '%s'", data.Field)
	}
	if data.Steps != 5 {
		t.Errorf("expected 5 steps, got %d", data.Steps)
	}
	if len(data.Values) != 5 {
		t.Errorf("expected 5 values, got %d", len(data.Values))
	}

	energy := result.Column("energy")
	for i, v := range data.Series["energy"] {
		if v != energy[i] {
			t.Errorf("energy %d: expected %v, got %v", i, energy[i], v)
		}
	}
}

func TestExportCSV(t *testing.T) {
	result := sampleRun(t)
	path := filepath.Join(t.TempDir(), "run.csv")

	if err := ExportCSV(path, result); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if len(records) != len(result.Points)+1 {
		t.Fatalf("expected %d rows, got %d", len(result.Points)+1, len(records))
	}

	header := records[0]
	if header[0] != "value" {
		t.Errorf("expected first header column 'value', got '%s'", header[0])
	}
	for i, col := range sweep.Columns() {
		if header[i+1] != col {
			t.Errorf("header %d: expected '%s', got '%s'", i+1, col, header[i+1])
		}
	}
}
