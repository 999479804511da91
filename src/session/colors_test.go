package session

import (
	"testing"

	"github.com/nvelichkova/Multi-viewer/src/trace"
)

func TestAssignColorStable(t *testing.T) {
	s := New(Config{})
	id := trace.SegmentID{Segment: "a1", Side: trace.SideLeft}
	first := s.AssignColor(id)
	for i := 0; i < 5; i++ {
		if got := s.AssignColor(id); got != first {
			t.Fatalf("call %d returned %v, first was %v", i, got, first)
		}
	}
}

func TestAssignColorFirstSeenOrder(t *testing.T) {
	m := NewColorMap(nil)
	ids := []trace.SegmentID{
		{Segment: "a1", Side: trace.SideLeft},
		{Segment: "a1", Side: trace.SideRight},
		{Segment: "t2", Side: trace.SideLeft},
	}
	for i, id := range ids {
		if got := m.Assign(id); got != DefaultPalette[i] {
			t.Fatalf("identity %d got %v want palette[%d]", i, got, i)
		}
	}
	// earlier assignments keep their colors
	if got := m.Assign(ids[0]); got != DefaultPalette[0] {
		t.Fatalf("reassigned: %v", got)
	}
	if m.Len() != 3 {
		t.Fatalf("len = %d", m.Len())
	}
}

func TestAssignColorWrapsPalette(t *testing.T) {
	m := NewColorMap(nil)
	n := len(DefaultPalette)
	for i := 0; i < n; i++ {
		m.Assign(trace.SegmentID{Segment: string(rune('a' + i))})
	}
	over := m.Assign(trace.SegmentID{Segment: "overflow"})
	if over != DefaultPalette[0] {
		t.Fatalf("wrap got %v want palette[0]", over)
	}
}

func TestColorsSeededAtIngest(t *testing.T) {
	s := New(Config{})
	if _, err := s.AddRecording(src("rec", c("Mean(a1l)", 1), c("Mean(a1r)", 2))); err != nil {
		t.Fatalf("add: %v", err)
	}
	// querying the second column's identity first still yields the
	// ingest-order color
	right := s.AssignColor(trace.SegmentID{Segment: "a1", Side: trace.SideRight})
	if right != DefaultPalette[1] {
		t.Fatalf("right = %v want palette[1]", right)
	}
	left := s.AssignColor(trace.SegmentID{Segment: "a1", Side: trace.SideLeft})
	if left != DefaultPalette[0] {
		t.Fatalf("left = %v want palette[0]", left)
	}
}

func TestSharedSegmentSharesColorAcrossRecordings(t *testing.T) {
	s := New(Config{})
	if _, err := s.AddRecording(src("recA", c("Mean(a1l)", 1))); err != nil {
		t.Fatalf("add recA: %v", err)
	}
	if _, err := s.AddRecording(src("recB", c("Mean(a1l)", 2), c("Mean(b2l)", 3))); err != nil {
		t.Fatalf("add recB: %v", err)
	}
	a1 := trace.SegmentID{Segment: "a1", Side: trace.SideLeft}
	b2 := trace.SegmentID{Segment: "b2", Side: trace.SideLeft}
	if s.AssignColor(a1) != DefaultPalette[0] {
		t.Fatal("shared segment should keep the first color")
	}
	if s.AssignColor(b2) != DefaultPalette[1] {
		t.Fatal("new segment should take the next color")
	}
}
