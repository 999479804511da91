package loader

import (
	"encoding/csv"
	"os"
)

// readCSV reads a CSV file as raw cells. Rows may be ragged; short rows
// NaN-pad downstream.
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	return r.ReadAll()
}
