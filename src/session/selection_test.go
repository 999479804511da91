package session

import (
	"reflect"
	"testing"

	"github.com/nvelichkova/Multi-viewer/src/trace"
)

// loadPair fills a session with two samples worth of recordings.
func loadPair(t *testing.T) *Session {
	t.Helper()
	s := New(Config{})
	one := trace.Source{
		Path:       "exp1_soma.xlsx",
		SamplingHz: 5,
		Table: trace.Table{Columns: []trace.Column{
			c("Mean(t1l)", 1, 2),
			c("Mean(t1r)", 2, 1),
			c("raw", 0, 0),
		}},
	}
	two := trace.Source{
		Path:       "exp2_axon.xlsx",
		SamplingHz: 5,
		Table: trace.Table{Columns: []trace.Column{
			c("Mean(t1l)", 5, 6),
			c("Mean(a2r)", 6, 5),
		}},
	}
	if _, err := s.AddRecording(one); err != nil {
		t.Fatalf("add exp1: %v", err)
	}
	if _, err := s.AddRecording(two); err != nil {
		t.Fatalf("add exp2: %v", err)
	}
	return s
}

func TestResolveEmptySelectionMatchesAll(t *testing.T) {
	s := loadPair(t)
	ids := s.Resolve(Selection{})
	if len(ids) != 5 {
		t.Fatalf("ids = %d want 5", len(ids))
	}
}

func TestResolveBySample(t *testing.T) {
	s := loadPair(t)
	ids := s.Resolve(Selection{Samples: []string{"exp2"}})
	want := []trace.ID{
		trace.MakeID("exp2 - axon", "Mean(t1l)"),
		trace.MakeID("exp2 - axon", "Mean(a2r)"),
	}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("ids = %v want %v", ids, want)
	}
}

func TestResolveBySegmentAndSide(t *testing.T) {
	s := loadPair(t)
	ids := s.Resolve(Selection{Segments: []string{"t1", "raw"}, Sides: SidesLeft})
	// left filter keeps left traces and sideless ones
	want := []trace.ID{
		trace.MakeID("exp1 - soma", "Mean(t1l)"),
		trace.MakeID("exp1 - soma", "raw"),
		trace.MakeID("exp2 - axon", "Mean(t1l)"),
	}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("ids = %v want %v", ids, want)
	}
}

func TestGroupsSpanRecordings(t *testing.T) {
	s := loadPair(t)
	traces, err := s.Select(s.Resolve(Selection{Segments: []string{"t1"}})...)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	groups := Groups(traces)
	if len(groups) != 2 {
		t.Fatalf("groups = %d want 2", len(groups))
	}
	left := groups[0]
	if left.ID != (trace.SegmentID{Segment: "t1", Side: trace.SideLeft}) {
		t.Fatalf("first group = %+v", left.ID)
	}
	if len(left.Traces) != 2 {
		t.Fatalf("left group traces = %d want 2", len(left.Traces))
	}
	if len(groups[1].Traces) != 1 {
		t.Fatalf("right group traces = %d want 1", len(groups[1].Traces))
	}
}

func TestSamplesSortedUnique(t *testing.T) {
	s := loadPair(t)
	got := s.Samples()
	want := []string{"exp1", "exp2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("samples = %v want %v", got, want)
	}
}

func TestSegmentNamesStackOrder(t *testing.T) {
	s := loadPair(t)
	got := s.SegmentNames()
	// t-prefixed first, then alphabetical
	want := []string{"t1", "a2", "raw"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("segments = %v want %v", got, want)
	}
}

func TestParseSideFilter(t *testing.T) {
	cases := []struct {
		in   string
		want SideFilter
		err  bool
	}{
		{"", SidesBoth, false},
		{"both", SidesBoth, false},
		{"left", SidesLeft, false},
		{"R", SidesRight, false},
		{"middle", SidesBoth, true},
	}
	for _, cse := range cases {
		got, err := ParseSideFilter(cse.in)
		if (err != nil) != cse.err {
			t.Fatalf("ParseSideFilter(%q) err = %v", cse.in, err)
		}
		if err == nil && got != cse.want {
			t.Fatalf("ParseSideFilter(%q) = %v want %v", cse.in, got, cse.want)
		}
	}
}
