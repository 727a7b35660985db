package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"

	"github.com/kiimicoum5/Astrale/internal/impact"
	"github.com/kiimicoum5/Astrale/internal/sweep"
)

// ExportData is the standalone JSON form of a sweep run, for piping
// into other tools without going through a stored run directory.
type ExportData struct {
	Field     string                   `json:"field"`
	Base      impact.Params            `json:"base"`
	Steps     int                      `json:"steps"`
	Values    []float64                `json:"values"`
	Series    map[string][]float64     `json:"series"`
	Summaries map[string]sweep.Summary `json:"summaries"`
}

func buildExport(result *sweep.Result) ExportData {
	data := ExportData{
		Field:     string(result.Field),
		Base:      result.Base,
		Steps:     len(result.Points),
		Values:    make([]float64, len(result.Points)),
		Series:    make(map[string][]float64, len(sweep.Columns())),
		Summaries: result.Summaries,
	}

	for i, pt := range result.Points {
		data.Values[i] = pt.Value
	}
	for _, col := range sweep.Columns() {
		data.Series[col] = result.Column(col)
	}

	return data
}

func ExportJSON(path string, result *sweep.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return writeJSON(file, result)
}

func ExportJSONStdout(result *sweep.Result) error {
	return writeJSON(os.Stdout, result)
}

func writeJSON(w io.Writer, result *sweep.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildExport(result))
}

// ExportCSV writes a sweep run as CSV to the given path, same layout
// as the stored sweep.csv.
func ExportCSV(path string, result *sweep.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteCSV(file, result)
}

// WriteCSV writes the sweep table to w: a header row of "value" plus
// the indicator columns, then one row per point.
func WriteCSV(w io.Writer, result *sweep.Result) error {
	cw := csv.NewWriter(w)

	cols := sweep.Columns()
	series := make([][]float64, len(cols))
	for i, col := range cols {
		series[i] = result.Column(col)
	}

	header := append([]string{"value"}, cols...)
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, pt := range result.Points {
		row := make([]string, 0, len(header))
		row = append(row, fmtFloat(pt.Value))
		for j := range cols {
			row = append(row, fmtFloat(series[j][i]))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
