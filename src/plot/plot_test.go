package plot

import (
	"image/color"
	"math"
	"testing"

	"github.com/nvelichkova/Multi-viewer/src/trace"
)

func testSeries(label string, vals ...float64) Series {
	return Series{
		Label:  label,
		Times:  trace.TimeBase(len(vals), 5),
		Values: vals,
		Color:  color.RGBA{R: 200, A: 255},
	}
}

func TestRenderOverlay(t *testing.T) {
	series := []Series{
		testSeries("a1 (L) - exp1", 1, 2, 3, 2, 1),
		testSeries("a1 (R) - exp1", 3, 2, 1, 2, 3),
	}
	img, err := RenderOverlay(series, Options{Title: "traces", YLabel: "Signal", Width: 640, Height: 300})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 640 || b.Dy() != 300 {
		t.Fatalf("bounds = %v", b)
	}
}

func TestRenderOverlaySkipsNaNPoints(t *testing.T) {
	series := []Series{
		testSeries("gappy", 1, math.NaN(), 3, math.NaN(), 5),
		testSeries("empty", math.NaN(), math.NaN()),
	}
	img, err := RenderOverlay(series, Options{Width: 400, Height: 200})
	if err != nil {
		t.Fatalf("render with NaN gaps: %v", err)
	}
	if img == nil {
		t.Fatal("nil image")
	}
}

func TestRenderOverlayNothingDrawable(t *testing.T) {
	img, err := RenderOverlay([]Series{testSeries("empty", math.NaN())}, Options{Width: 320, Height: 100})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 100 {
		t.Fatalf("blank fallback bounds = %v", b)
	}
}

func TestRenderOverlaySinglePoint(t *testing.T) {
	img, err := RenderOverlay([]Series{testSeries("dot", 7)}, Options{Width: 320, Height: 200})
	if err != nil {
		t.Fatalf("single point render: %v", err)
	}
	if img == nil {
		t.Fatal("nil image")
	}
}

func TestRenderOverlayFooter(t *testing.T) {
	plain, err := RenderOverlay([]Series{testSeries("s", 1, 2, 3)}, Options{Width: 320, Height: 200})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	noted, err := RenderOverlay([]Series{testSeries("s", 1, 2, 3)}, Options{Width: 320, Height: 200, Footer: "normalize=mean"})
	if err != nil {
		t.Fatalf("render with footer: %v", err)
	}
	if plain.Bounds() != noted.Bounds() {
		t.Fatalf("footer changed bounds: %v vs %v", plain.Bounds(), noted.Bounds())
	}
}

func TestCompact(t *testing.T) {
	xs, ys := compact(
		[]float64{0, 1, 2, 3},
		[]float64{5, math.NaN(), math.Inf(1), 8},
	)
	if len(xs) != 2 || xs[0] != 0 || xs[1] != 3 || ys[0] != 5 || ys[1] != 8 {
		t.Fatalf("compact = %v %v", xs, ys)
	}
}

func TestFromTraceLabel(t *testing.T) {
	src := trace.Source{
		Path:       "RP3_May_14_n5_soma.xlsx",
		SamplingHz: 5,
		Table: trace.Table{Columns: []trace.Column{
			{Name: "Mean(a1l)", Samples: []float64{1, 2}},
			{Name: "raw", Samples: []float64{0, 0}},
		}},
	}
	rec, err := trace.NewRecording(src)
	if err != nil {
		t.Fatalf("NewRecording: %v", err)
	}
	s := FromTrace(rec.Traces[0], color.RGBA{R: 1, A: 255})
	if s.Label != "a1 (L) (soma) - RP3_May_14" {
		t.Fatalf("label = %q", s.Label)
	}
	if s.Region != "soma" {
		t.Fatalf("region = %q", s.Region)
	}
	if s.Kind != "" {
		t.Fatalf("kind = %q", s.Kind)
	}
	sideless := FromTrace(rec.Traces[1], color.RGBA{A: 255})
	if sideless.Label != "raw (soma) - RP3_May_14" {
		t.Fatalf("sideless label = %q", sideless.Label)
	}
}

func TestFromDerived(t *testing.T) {
	d := &trace.Derived{
		Trace: trace.Trace{
			Column:  "mean(a1 (L))",
			Seg:     trace.SegmentID{Segment: "a1", Side: trace.SideLeft},
			Samples: []float64{1, 2},
			Times:   []float64{0, 0.2},
		},
		Kind: trace.KindMean,
	}
	s := FromDerived(d, color.RGBA{A: 255})
	if s.Label != "mean(a1 (L))" || s.Kind != trace.KindMean {
		t.Fatalf("derived series = %q kind %q", s.Label, s.Kind)
	}
}

func TestLineStyleDistinguishesDerived(t *testing.T) {
	col := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	base := lineStyle(col, "")
	mean := lineStyle(col, trace.KindMean)
	delta := lineStyle(col, trace.KindDelta)
	if mean.StrokeWidth <= base.StrokeWidth {
		t.Fatal("mean should draw thicker than plain traces")
	}
	if len(delta.StrokeDashArray) == 0 {
		t.Fatal("delta should draw dashed")
	}
	if base.StrokeColor.R != 10 || base.StrokeColor.A != 255 {
		t.Fatalf("stroke color = %+v", base.StrokeColor)
	}
}
