package plot

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/nvelichkova/Multi-viewer/src/trace"
)

// Series is one renderable line: a trace's samples on its time base
// plus a display label and color.
type Series struct {
	Label  string
	Seg    trace.SegmentID
	Region string
	Times  []float64
	Values []float64
	Color  color.RGBA
	Kind   trace.DerivedKind // "" for plain traces, mean/delta for derived
}

// FromTrace builds a series from a model trace using the viewer label
// format "<segment>[ (L)|(R)][ (<region>)] - <sample>".
func FromTrace(tr *trace.Trace, col color.RGBA) Series {
	s := Series{
		Label:  TraceLabel(tr),
		Seg:    tr.Seg,
		Times:  tr.TimeValues(),
		Values: tr.Samples,
		Color:  col,
	}
	if tr.Rec != nil {
		s.Region = tr.Rec.Region
	}
	return s
}

// FromDerived builds a series from a session-computed trace; the
// computation name doubles as the legend label.
func FromDerived(d *trace.Derived, col color.RGBA) Series {
	s := FromTrace(&d.Trace, col)
	s.Label = d.Column
	s.Kind = d.Kind
	return s
}

// TraceLabel renders the per-trace legend label.
func TraceLabel(tr *trace.Trace) string {
	label := tr.Seg.String()
	if tr.Rec != nil {
		if tr.Rec.Region != "" {
			label += " (" + tr.Rec.Region + ")"
		}
		label += " - " + tr.Rec.SampleShort()
	}
	return label
}

// Options sizes and titles a rendered chart.
type Options struct {
	Title  string
	YLabel string
	Width  int
	Height int    // full height for the overlay view, per-panel height when stacked
	Footer string // optional processing-note line stamped bottom-left
}

const (
	defaultWidth  = 1100
	defaultHeight = 420
)

func (o Options) size() (int, int) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

// lineStyle renders a colored line; means draw thicker and deltas
// dashed so computed series stand out among raw traces.
func lineStyle(col color.RGBA, kind trace.DerivedKind) chart.Style {
	st := chart.Style{
		StrokeWidth: 1.4,
		StrokeColor: drawingColor(col),
	}
	switch kind {
	case trace.KindMean:
		st.StrokeWidth = 2.6
	case trace.KindDelta:
		st.StrokeWidth = 1.8
		st.StrokeDashArray = []float64{5, 3}
	}
	return st
}

func drawingColor(c color.RGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// compact drops non-finite points so gaps from NaN-padded recordings do
// not break line drawing.
func compact(ts, vs []float64) ([]float64, []float64) {
	n := len(vs)
	if len(ts) < n {
		n = len(ts)
	}
	xs := make([]float64, 0, n)
	ys := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if math.IsNaN(vs[i]) || math.IsInf(vs[i], 0) || math.IsNaN(ts[i]) {
			continue
		}
		xs = append(xs, ts[i])
		ys = append(ys, vs[i])
	}
	return xs, ys
}

// RenderOverlay draws every series into one chart. Series without a
// single finite point are skipped; when nothing at all is drawable a
// blank placeholder comes back so callers still have an image to write.
func RenderOverlay(series []Series, opt Options) (image.Image, error) {
	w, h := opt.size()
	var (
		out  []chart.Series
		minY = math.MaxFloat64
		maxY = -math.MaxFloat64
	)
	for _, s := range series {
		xs, ys := compact(s.Times, s.Values)
		if len(xs) == 0 {
			continue
		}
		for _, v := range ys {
			if v < minY {
				minY = v
			}
			if v > maxY {
				maxY = v
			}
		}
		if len(xs) == 1 {
			// pad to two points so go-chart accepts the series
			xs = append(xs, xs[0]+1)
			ys = append(ys, ys[0])
		}
		out = append(out, chart.ContinuousSeries{
			Name:    s.Label,
			XValues: xs,
			YValues: ys,
			Style:   lineStyle(s.Color, s.Kind),
		})
	}
	if len(out) == 0 {
		return Blank(w, h), nil
	}
	nMin, nMax := niceAxisBounds(minY, maxY)
	padBottom := 28
	if opt.Footer != "" {
		padBottom += 18
	}
	ch := chart.Chart{
		Title:      opt.Title,
		Width:      w,
		Height:     h,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: padBottom}},
		XAxis:      chart.XAxis{Name: "Time (s)"},
		YAxis: chart.YAxis{
			Name:  opt.YLabel,
			Range: &chart.ContinuousRange{Min: nMin, Max: nMax},
			Ticks: niceTicks(nMin, nMax, 6),
		},
		Series: out,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	img, err := renderPNG(&ch)
	if err != nil {
		return nil, err
	}
	if opt.Footer != "" {
		img = drawNote(img, opt.Footer, 8, img.Bounds().Max.Y-6)
	}
	return img, nil
}

func renderPNG(ch *chart.Chart) (image.Image, error) {
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode rendered chart: %w", err)
	}
	return img, nil
}
