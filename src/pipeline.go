package main

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/nvelichkova/Multi-viewer/src/plot"
	"github.com/nvelichkova/Multi-viewer/src/session"
	"github.com/nvelichkova/Multi-viewer/src/signal"
	"github.com/nvelichkova/Multi-viewer/src/trace"
)

// normMode is the per-trace value transform selected for a render.
type normMode int

const (
	normNone normMode = iota
	normMean
	normBaseline
)

func parseNormMode(s string) (normMode, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return normNone, nil
	case "mean":
		return normMean, nil
	case "baseline":
		return normBaseline, nil
	}
	return normNone, fmt.Errorf("unknown normalization %q", s)
}

// yLabel names the value axis for the chosen normalization.
func (m normMode) yLabel() string {
	switch m {
	case normMean:
		return "Signal (% of mean)"
	case normBaseline:
		return "dF/F0 (%)"
	}
	return "Signal"
}

// buildSeries turns the selected traces, plus any requested derived
// traces, into renderable series. The view transform chain runs before
// deriving so that means and deltas compare like with like: a mean of
// percent-normalized traces is itself in percent.
func buildSeries(sess *session.Session, traces []*trace.Trace, cfg runConfig, norm normMode, scheme plot.Scheme, log *zap.Logger) ([]plot.Series, error) {
	prepared := make([]*trace.Trace, len(traces))
	for i, tr := range traces {
		clone := *tr
		clone.Samples = applyTransforms(tr, cfg, norm, log)
		prepared[i] = &clone
	}

	var series []plot.Series
	for _, tr := range prepared {
		series = append(series, plot.FromTrace(tr, seriesColor(sess, scheme, tr)))
	}

	groups := session.Groups(prepared)
	if cfg.Mean {
		for _, g := range groups {
			m, err := sess.ComputeMean(g)
			if err != nil {
				return nil, err
			}
			series = append(series, plot.FromDerived(m, seriesColor(sess, scheme, &m.Trace)))
		}
	}
	if cfg.Delta {
		a, b, err := deltaPair(sess, groups)
		if err != nil {
			return nil, err
		}
		d, err := sess.ComputeDelta(a, b)
		if err != nil {
			return nil, err
		}
		series = append(series, plot.FromDerived(d, seriesColor(sess, scheme, &d.Trace)))
	}
	return series, nil
}

// applyTransforms runs the view transform chain on one trace's samples:
// normalization first, then smoothing, matching the order the exported
// data was processed with originally. The input slice is left intact.
func applyTransforms(tr *trace.Trace, cfg runConfig, norm normMode, log *zap.Logger) []float64 {
	var vals []float64
	switch norm {
	case normMean:
		out, ok := signal.NormalizeByMean(tr.Samples)
		if !ok {
			log.Warn("mean normalization skipped",
				zap.String("trace", string(tr.ID())),
				zap.String("reason", "zero or undefined mean"))
		}
		vals = out
	case normBaseline:
		hz := trace.DefaultSamplingHz
		if tr.Rec != nil && tr.Rec.SamplingHz > 0 {
			hz = tr.Rec.SamplingHz
		}
		lo, hi, fellBack := signal.BaselineWindow(len(tr.Samples), cfg.BaselineStart, cfg.BaselineDuration, hz)
		if fellBack {
			log.Warn("baseline window out of range, using first 10% of samples",
				zap.String("trace", string(tr.ID())))
		}
		out, ok := signal.NormalizeToBaseline(tr.Samples, lo, hi)
		if !ok {
			log.Warn("baseline normalization skipped",
				zap.String("trace", string(tr.ID())),
				zap.String("reason", "zero or undefined baseline"))
		}
		vals = out
	default:
		vals = append([]float64(nil), tr.Samples...)
	}
	if cfg.SmoothPct > 0 {
		vals = signal.GaussianSmooth(vals, cfg.SmoothPct)
	}
	return vals
}

// seriesColor resolves a trace's draw color under the active scheme.
// Identity coloring goes through the session so repeated renders keep
// the same assignment; anatomy coloring is a pure function of side and
// region.
func seriesColor(sess *session.Session, scheme plot.Scheme, tr *trace.Trace) color.RGBA {
	if scheme == plot.SchemeAnatomy {
		region := ""
		if tr.Rec != nil {
			region = tr.Rec.Region
		}
		return plot.AnatomyColor(tr.Seg.Side, region)
	}
	return sess.AssignColor(tr.Seg)
}

// deltaPair picks what the delta compares: the means of the first two
// segment groups, or the two traces of a lone two-trace group.
func deltaPair(sess *session.Session, groups []*session.Group) (*trace.Trace, *trace.Trace, error) {
	if len(groups) >= 2 {
		ma, err := sess.ComputeMean(groups[0])
		if err != nil {
			return nil, nil, err
		}
		mb, err := sess.ComputeMean(groups[1])
		if err != nil {
			return nil, nil, err
		}
		return &ma.Trace, &mb.Trace, nil
	}
	if len(groups) == 1 && len(groups[0].Traces) == 2 {
		return groups[0].Traces[0], groups[0].Traces[1], nil
	}
	return nil, nil, fmt.Errorf("delta needs two segment groups, or one group with exactly two traces")
}

// footerNote summarizes the processing chain so exported charts stay
// self-describing.
func footerNote(cfg runConfig) string {
	parts := []string{"hz=" + strconv.FormatFloat(cfg.SamplingHz, 'g', -1, 64)}
	if cfg.Normalize != "" && cfg.Normalize != "none" {
		parts = append(parts, "normalize="+cfg.Normalize)
	}
	if cfg.SmoothPct > 0 {
		parts = append(parts, fmt.Sprintf("smooth=%g%%", cfg.SmoothPct))
	}
	if cfg.Align != "" && cfg.Align != "strict" {
		parts = append(parts, "align="+cfg.Align)
	}
	return strings.Join(parts, "  ")
}
