package loader

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/nvelichkova/Multi-viewer/src/trace"
)

// Loader turns data files into trace sources. It owns every file-format
// concern so the model only ever sees parsed tables.
type Loader struct {
	log *zap.Logger
}

// New returns a loader logging through log (nil for silent).
func New(log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{log: log}
}

// Load reads one recording file. The format is chosen by extension:
// .xlsx/.xls workbooks and .csv files are supported. hz is the sampling
// rate recorded on the source; <=0 lets the session default apply.
func (l *Loader) Load(path string, hz float64) (trace.Source, error) {
	var (
		rows [][]string
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xls":
		rows, err = readWorkbook(path)
	case ".csv":
		rows, err = readCSV(path)
	default:
		err = fmt.Errorf("unsupported file format %q", ext)
	}
	if err != nil {
		return trace.Source{}, fmt.Errorf("load %s: %w", path, err)
	}
	tbl, dropped := tableFromRows(rows)
	for _, name := range dropped {
		l.log.Debug("dropping non-numeric column",
			zap.String("file", filepath.Base(path)),
			zap.String("column", name))
	}
	l.log.Debug("file parsed",
		zap.String("file", filepath.Base(path)),
		zap.Int("columns", len(tbl.Columns)),
		zap.Int("rows", tbl.Rows()))
	return trace.Source{
		Label:      trace.DisplayName(path),
		Path:       path,
		SamplingHz: hz,
		Table:      tbl,
	}, nil
}

// tableFromRows builds a rectangular table from raw string cells. The
// first row is the header. Blank cells become NaN, short columns are
// NaN-padded, empty header cells get pandas-style "Unnamed: n" names,
// and columns holding non-numeric data are dropped (returned for
// logging).
func tableFromRows(rows [][]string) (trace.Table, []string) {
	if len(rows) == 0 {
		return trace.Table{}, nil
	}
	header := rows[0]
	body := rows[1:]
	var tbl trace.Table
	var dropped []string
	for ci, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", ci)
		}
		samples := make([]float64, len(body))
		numeric := true
		for ri := range body {
			cell := ""
			if ci < len(body[ri]) {
				cell = strings.TrimSpace(body[ri][ci])
			}
			if cell == "" {
				samples[ri] = math.NaN()
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				numeric = false
				break
			}
			samples[ri] = v
		}
		if !numeric {
			dropped = append(dropped, name)
			continue
		}
		tbl.Columns = append(tbl.Columns, trace.Column{Name: name, Samples: samples})
	}
	return tbl, dropped
}
