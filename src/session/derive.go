package session

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/nvelichkova/Multi-viewer/src/signal"
	"github.com/nvelichkova/Multi-viewer/src/trace"
)

// AlignPolicy decides what happens when an operation combines traces
// with differing sample counts.
type AlignPolicy int

const (
	// AlignStrict rejects mismatched inputs with a trace.AlignmentError.
	AlignStrict AlignPolicy = iota
	// AlignTruncate cuts every input to the shortest one.
	AlignTruncate
	// AlignResample linearly resamples every input onto the first
	// input's time base.
	AlignResample
)

func (p AlignPolicy) String() string {
	switch p {
	case AlignTruncate:
		return "truncate"
	case AlignResample:
		return "resample"
	}
	return "strict"
}

// ParseAlignPolicy maps the CLI/config spelling onto a policy.
func ParseAlignPolicy(s string) (AlignPolicy, error) {
	switch s {
	case "", "strict":
		return AlignStrict, nil
	case "truncate":
		return AlignTruncate, nil
	case "resample":
		return AlignResample, nil
	}
	return AlignStrict, fmt.Errorf("unknown alignment policy %q", s)
}

// aligned is a set of equal-length sample vectors on a shared time base.
type aligned struct {
	times   []float64
	samples [][]float64
}

// align reconciles the inputs' sample counts per the session policy.
// The first trace is the reference for time base and length.
func (s *Session) align(traces []*trace.Trace) (*aligned, error) {
	if len(traces) == 0 {
		return nil, fmt.Errorf("align: no traces")
	}
	ref := traces[0]
	out := &aligned{times: ref.TimeValues()}
	switch s.cfg.Align {
	case AlignTruncate:
		n := len(ref.Samples)
		for _, tr := range traces[1:] {
			if len(tr.Samples) < n {
				n = len(tr.Samples)
			}
		}
		out.times = out.times[:n]
		for _, tr := range traces {
			out.samples = append(out.samples, tr.Samples[:n])
		}
	case AlignResample:
		for _, tr := range traces {
			if sameBase(tr.TimeValues(), out.times) {
				out.samples = append(out.samples, tr.Samples)
				continue
			}
			ys, err := signal.Resample(tr.TimeValues(), tr.Samples, out.times)
			if err != nil {
				return nil, fmt.Errorf("align %s: %w", tr.ID(), err)
			}
			out.samples = append(out.samples, ys)
		}
	default:
		for _, tr := range traces[1:] {
			if len(tr.Samples) != len(ref.Samples) {
				return nil, &trace.AlignmentError{
					A: string(ref.ID()), LenA: len(ref.Samples),
					B: string(tr.ID()), LenB: len(tr.Samples),
				}
			}
		}
		for _, tr := range traces {
			out.samples = append(out.samples, tr.Samples)
		}
	}
	return out, nil
}

// ComputeMean returns the elementwise arithmetic mean across the
// group's traces as a session-owned derived trace. NaN in any input
// propagates to the same position of the result. The result keeps the
// group's segment identity so it shares the group's color.
func (s *Session) ComputeMean(g *Group) (*trace.Derived, error) {
	if g == nil || len(g.Traces) == 0 {
		return nil, fmt.Errorf("compute mean: empty group")
	}
	al, err := s.align(g.Traces)
	if err != nil {
		return nil, err
	}
	mean := make([]float64, len(al.times))
	for i := range mean {
		sum := 0.0
		for _, ys := range al.samples {
			sum += ys[i]
		}
		mean[i] = sum / float64(len(al.samples))
	}
	d := &trace.Derived{
		Trace: trace.Trace{
			Column:  fmt.Sprintf("mean(%s)", g.ID),
			Seg:     g.ID,
			Samples: mean,
			Times:   al.times,
		},
		Kind:   trace.KindMean,
		Inputs: traceIDs(g.Traces),
	}
	s.log.Debug("computed mean",
		zap.String("segment", g.ID.String()),
		zap.Int("traces", len(g.Traces)),
		zap.Int("samples", len(mean)))
	return d, nil
}

// ComputeDelta returns the elementwise difference a-b as a
// session-owned derived trace under a synthetic segment identity (the
// same pair always maps to the same identity, keeping its color
// stable).
func (s *Session) ComputeDelta(a, b *trace.Trace) (*trace.Derived, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("compute delta: nil trace")
	}
	al, err := s.align([]*trace.Trace{a, b})
	if err != nil {
		return nil, err
	}
	diff := make([]float64, len(al.times))
	for i := range diff {
		diff[i] = al.samples[0][i] - al.samples[1][i]
	}
	name := fmt.Sprintf("delta(%s, %s)", a.Seg, b.Seg)
	d := &trace.Derived{
		Trace: trace.Trace{
			Column:  name,
			Seg:     trace.SegmentID{Segment: name},
			Samples: diff,
			Times:   al.times,
		},
		Kind:   trace.KindDelta,
		Inputs: []trace.ID{a.ID(), b.ID()},
	}
	s.log.Debug("computed delta",
		zap.String("a", string(a.ID())),
		zap.String("b", string(b.ID())),
		zap.Int("samples", len(diff)))
	return d, nil
}

// sameBase reports whether two time bases are identical, so resampling
// a trace onto its own base can be skipped.
func sameBase(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func traceIDs(traces []*trace.Trace) []trace.ID {
	ids := make([]trace.ID, len(traces))
	for i, tr := range traces {
		ids[i] = tr.ID()
	}
	return ids
}
