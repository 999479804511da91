package session

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nvelichkova/Multi-viewer/src/trace"
)

// Selection is the declarative trace filter built from sample, segment
// and side choices. Empty fields match everything, so a zero Selection
// selects every loaded trace.
type Selection struct {
	Samples  []string // sample names; a recording matches when its sample is listed
	Segments []string // segment names, side-independent
	Sides    SideFilter
}

// SideFilter restricts traces by measurement side. Sideless traces
// always match.
type SideFilter int

const (
	SidesBoth SideFilter = iota
	SidesLeft
	SidesRight
)

// ParseSideFilter maps the CLI/config spelling onto a filter.
func ParseSideFilter(s string) (SideFilter, error) {
	switch strings.ToLower(s) {
	case "", "both":
		return SidesBoth, nil
	case "left", "l":
		return SidesLeft, nil
	case "right", "r":
		return SidesRight, nil
	}
	return SidesBoth, fmt.Errorf("unknown side filter %q", s)
}

func (f SideFilter) matches(s trace.Side) bool {
	switch f {
	case SidesLeft:
		return s == trace.SideLeft || s == trace.SideNone
	case SidesRight:
		return s == trace.SideRight || s == trace.SideNone
	default:
		return true
	}
}

// Resolve returns the ids of the traces matching sel, in recording
// order then column order.
func (s *Session) Resolve(sel Selection) []trace.ID {
	samples := toSet(sel.Samples)
	segments := toSet(sel.Segments)
	var ids []trace.ID
	for _, rec := range s.recordings {
		if samples != nil && !samples[rec.Sample] {
			continue
		}
		for _, tr := range rec.Traces {
			if segments != nil && !segments[tr.Seg.Segment] {
				continue
			}
			if !sel.Sides.matches(tr.Seg.Side) {
				continue
			}
			ids = append(ids, tr.ID())
		}
	}
	return ids
}

func toSet(xs []string) map[string]bool {
	if len(xs) == 0 {
		return nil
	}
	set := make(map[string]bool, len(xs))
	for _, x := range xs {
		set[x] = true
	}
	return set
}

// Samples returns the distinct sample names across loaded recordings,
// sorted.
func (s *Session) Samples() []string {
	seen := map[string]bool{}
	var out []string
	for _, rec := range s.recordings {
		if !seen[rec.Sample] {
			seen[rec.Sample] = true
			out = append(out, rec.Sample)
		}
	}
	sort.Strings(out)
	return out
}

// SegmentNames returns the distinct segment names across loaded
// recordings in stacked-view order.
func (s *Session) SegmentNames() []string {
	seen := map[string]bool{}
	var out []string
	for _, rec := range s.recordings {
		for _, tr := range rec.Traces {
			if !seen[tr.Seg.Segment] {
				seen[tr.Seg.Segment] = true
				out = append(out, tr.Seg.Segment)
			}
		}
	}
	trace.SortSegments(out)
	return out
}

// Group is a segment group: every trace sharing one segment identity,
// in encounter order across recordings.
type Group struct {
	ID     trace.SegmentID
	Traces []*trace.Trace
}

// Groups partitions traces into segment groups, first-seen order.
func Groups(traces []*trace.Trace) []*Group {
	index := map[trace.SegmentID]*Group{}
	var out []*Group
	for _, tr := range traces {
		g, ok := index[tr.Seg]
		if !ok {
			g = &Group{ID: tr.Seg}
			index[tr.Seg] = g
			out = append(out, g)
		}
		g.Traces = append(g.Traces, tr)
	}
	return out
}
