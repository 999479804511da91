package trace

import "strings"

// DefaultSamplingHz is assumed when a source does not carry its own
// sampling rate.
const DefaultSamplingHz = 5.0

// Column is one named series of samples from a parsed input table.
type Column struct {
	Name    string
	Samples []float64
}

// Table is an already-parsed rectangular table: ordered columns of
// equal length with NaN in missing cells. Producing tables from files
// is the loader's concern; the model never touches file formats.
type Table struct {
	Columns []Column
}

// Rows returns the table's sample count (0 for an empty table).
func (t Table) Rows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Samples)
}

// Source is the unit of ingestion: a label, where the data came from,
// the sampling rate and the parsed table.
type Source struct {
	Label      string  // unique within a session; empty derives the display name from Path
	Path       string  // origin file, informational
	SamplingHz float64 // samples per second; <=0 falls back to DefaultSamplingHz
	Table      Table
}

// ID uniquely identifies a trace within a session.
type ID string

// MakeID builds the session-wide trace id from a recording label and a
// column name.
func MakeID(label, column string) ID {
	return ID(label + "::" + column)
}

// Trace is one named time series owned by exactly one Recording.
type Trace struct {
	Column  string    // original column name, unique within the owning recording
	Seg     SegmentID // grouping identity (segment name + side)
	Samples []float64
	Times   []float64  // explicit per-trace time base; nil derives one from the recording
	Rec     *Recording // owning recording; nil for session-owned derived traces
}

// ID returns the session-wide identifier of the trace. Derived traces,
// which have no owning recording, are identified by their name alone.
func (t *Trace) ID() ID {
	if t.Rec == nil {
		return ID(t.Column)
	}
	return MakeID(t.Rec.Label, t.Column)
}

// TimeValues returns the time coordinate of every sample: the trace's
// own time base when set, else the recording's explicit Time column,
// else sample index over the sampling rate.
func (t *Trace) TimeValues() []float64 {
	if t.Times != nil {
		return t.Times
	}
	if t.Rec != nil {
		if t.Rec.TimeBase != nil {
			return t.Rec.TimeBase
		}
		return TimeBase(len(t.Samples), t.Rec.SamplingHz)
	}
	return TimeBase(len(t.Samples), 0)
}

// TimeBase generates time coordinates for n samples at the given rate,
// starting at zero. Rates <= 0 fall back to DefaultSamplingHz.
func TimeBase(n int, hz float64) []float64 {
	if hz <= 0 {
		hz = DefaultSamplingHz
	}
	ts := make([]float64, n)
	for i := range ts {
		ts[i] = float64(i) / hz
	}
	return ts
}

// DerivedKind tags how a derived trace was computed.
type DerivedKind string

const (
	KindMean  DerivedKind = "mean"
	KindDelta DerivedKind = "delta"
)

// Derived is a computed series owned by the comparison session, never
// attached to a recording. A mean keeps its group's segment identity; a
// delta gets a fresh synthetic one.
type Derived struct {
	Trace
	Kind   DerivedKind
	Inputs []ID // ids of the traces the series was computed from
}

// Recording is one loaded source: a uniquely labeled set of traces
// sharing a sampling rate and an optional explicit time base.
type Recording struct {
	Label      string
	Path       string
	Sample     string // sample name parsed from the filename
	Region     string // anatomy region parsed from the filename, "" when none
	SamplingHz float64
	TimeBase   []float64 // explicit Time column, when the source had one
	Traces     []*Trace  // column order
}

// SampleShort returns the leading sample identifier used in chart
// labels: at most the first three underscore-separated tokens of the
// sample name.
func (r *Recording) SampleShort() string {
	parts := strings.Split(r.Sample, "_")
	if len(parts) > 3 {
		parts = parts[:3]
	}
	return strings.Join(parts, "_")
}

// NewRecording validates a source and maps its columns onto traces.
//
// Mapping rules: Mean(<seg><l|r>) columns carry a segment and side; the
// first column named exactly "Time" becomes the recording's time base;
// other columns containing "Time" or starting with "Unnamed:" are
// dropped; any remaining column is a sideless trace named after itself.
func NewRecording(src Source) (*Recording, error) {
	label := src.Label
	if label == "" {
		label = DisplayName(src.Path)
	}
	if src.Table.Rows() == 0 {
		return nil, &MalformedDataError{Recording: label, Reason: "table has no samples"}
	}
	hz := src.SamplingHz
	if hz <= 0 {
		hz = DefaultSamplingHz
	}
	sample, region := ParseFilename(src.Path)
	if src.Path == "" {
		sample = label
	}
	rec := &Recording{
		Label:      label,
		Path:       src.Path,
		Sample:     sample,
		Region:     region,
		SamplingHz: hz,
	}
	seen := make(map[string]bool, len(src.Table.Columns))
	for _, col := range src.Table.Columns {
		if col.Name == "" {
			return nil, &MalformedDataError{Recording: label, Reason: "empty column name"}
		}
		if col.Name == "Time" && rec.TimeBase == nil {
			rec.TimeBase = col.Samples
			continue
		}
		seg, ok := ParseColumn(col.Name)
		if !ok {
			continue
		}
		if seen[col.Name] {
			return nil, &MalformedDataError{Recording: label, Column: col.Name, Reason: "duplicate trace name"}
		}
		seen[col.Name] = true
		rec.Traces = append(rec.Traces, &Trace{
			Column:  col.Name,
			Seg:     seg,
			Samples: col.Samples,
			Rec:     rec,
		})
	}
	if len(rec.Traces) == 0 {
		return nil, &MalformedDataError{Recording: label, Reason: "no trace columns"}
	}
	return rec, nil
}
