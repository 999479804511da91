package loader

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/nvelichkova/Multi-viewer/src/trace"
)

func writeWorkbook(t *testing.T, name string, rows [][]interface{}) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("set row %d: %v", i, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func TestLoadWorkbook(t *testing.T) {
	path := writeWorkbook(t, "RP3_May_14_n5_axon.xlsx", [][]interface{}{
		{"Time", "Mean(t1l)", "Mean(t1r)"},
		{0.0, 1.0, 3.0},
		{0.2, 2.0, 2.0},
		{0.4, 3.0, 1.0},
	})
	src, err := New(zap.NewNop()).Load(path, 5)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if src.Label != "RP3_May_14_n5 - axon" {
		t.Fatalf("label = %q", src.Label)
	}
	if len(src.Table.Columns) != 3 {
		t.Fatalf("columns = %d want 3", len(src.Table.Columns))
	}
	t1l := src.Table.Columns[1]
	want := []float64{1, 2, 3}
	for i, v := range t1l.Samples {
		if v != want[i] {
			t.Fatalf("t1l[%d] = %v want %v", i, v, want[i])
		}
	}
}

func TestLoadWorkbookSparseCells(t *testing.T) {
	path := writeWorkbook(t, "gaps.xlsx", [][]interface{}{
		{"Mean(a1l)", "Mean(a1r)"},
		{1.0, 5.0},
		{2.0, nil},
		{3.0, 7.0},
	})
	src, err := New(nil).Load(path, 5)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	a1r := src.Table.Columns[1]
	if !math.IsNaN(a1r.Samples[1]) {
		t.Fatalf("empty cell should be NaN, got %v", a1r.Samples[1])
	}
}

func TestLoadedWorkbookFeedsModel(t *testing.T) {
	path := writeWorkbook(t, "exp9_dend.xlsx", [][]interface{}{
		{"Time", "Mean(d1l)"},
		{0.0, 4.0},
		{0.5, 5.0},
	})
	src, err := New(nil).Load(path, 2)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	rec, err := trace.NewRecording(src)
	if err != nil {
		t.Fatalf("NewRecording: %v", err)
	}
	if rec.Region != "dend" || rec.Sample != "exp9" {
		t.Fatalf("sample/region = %q/%q", rec.Sample, rec.Region)
	}
	if tv := rec.Traces[0].TimeValues(); tv[1] != 0.5 {
		t.Fatalf("time base = %v", tv)
	}
}
