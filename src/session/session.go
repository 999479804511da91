package session

import (
	"fmt"
	"image/color"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nvelichkova/Multi-viewer/src/trace"
)

// Config carries session construction options. Zero values fall back to
// a nop logger, strict alignment and the model's default sampling rate.
type Config struct {
	Logger     *zap.Logger
	SamplingHz float64 // default rate for sources that do not carry one
	Align      AlignPolicy
}

// Session owns the loaded recordings, the active trace selection, the
// color assignment and the alignment policy. It is a single-threaded
// in-memory model: operations run synchronously, nothing is persisted,
// and no goroutines are spawned.
type Session struct {
	log        *zap.Logger
	id         string
	cfg        Config
	recordings []*trace.Recording
	byLabel    map[string]*trace.Recording
	byID       map[trace.ID]*trace.Trace
	selected   []trace.ID
	colors     *ColorMap
}

// New creates an empty session.
func New(cfg Config) *Session {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	id := uuid.NewString()[:8]
	return &Session{
		log:     log.With(zap.String("session", id)),
		id:      id,
		cfg:     cfg,
		byLabel: map[string]*trace.Recording{},
		byID:    map[trace.ID]*trace.Trace{},
		colors:  NewColorMap(nil),
	}
}

// ID returns the short session identifier carried on log lines.
func (s *Session) ID() string { return s.id }

// AddRecording ingests one source. Sources without a sampling rate take
// the session default. Re-adding an existing label replaces the prior
// recording, as reloading the same file should. Color identities are
// seeded in column order at ingestion so assignment never depends on
// later query order.
func (s *Session) AddRecording(src trace.Source) (*trace.Recording, error) {
	if src.SamplingHz <= 0 {
		src.SamplingHz = s.cfg.SamplingHz
	}
	rec, err := trace.NewRecording(src)
	if err != nil {
		return nil, err
	}
	if old, ok := s.byLabel[rec.Label]; ok {
		s.log.Warn("replacing recording", zap.String("label", rec.Label))
		s.removeRecording(old)
	}
	s.recordings = append(s.recordings, rec)
	s.byLabel[rec.Label] = rec
	for _, tr := range rec.Traces {
		s.byID[tr.ID()] = tr
		s.colors.Assign(tr.Seg)
	}
	s.log.Info("recording added",
		zap.String("label", rec.Label),
		zap.String("sample", rec.Sample),
		zap.String("region", rec.Region),
		zap.Int("traces", len(rec.Traces)),
		zap.Float64("hz", rec.SamplingHz))
	return rec, nil
}

func (s *Session) removeRecording(rec *trace.Recording) {
	for i, r := range s.recordings {
		if r == rec {
			s.recordings = append(s.recordings[:i], s.recordings[i+1:]...)
			break
		}
	}
	delete(s.byLabel, rec.Label)
	for _, tr := range rec.Traces {
		delete(s.byID, tr.ID())
	}
	kept := s.selected[:0]
	for _, id := range s.selected {
		if _, ok := s.byID[id]; ok {
			kept = append(kept, id)
		}
	}
	s.selected = kept
}

// Recordings returns the loaded recordings in insertion order.
func (s *Session) Recordings() []*trace.Recording { return s.recordings }

// Recording looks up a recording by label.
func (s *Session) Recording(label string) (*trace.Recording, bool) {
	rec, ok := s.byLabel[label]
	return rec, ok
}

// Trace looks up a trace by session-wide id.
func (s *Session) Trace(id trace.ID) (*trace.Trace, bool) {
	tr, ok := s.byID[id]
	return tr, ok
}

// Select validates ids, makes them the active selection and returns
// their traces in the given order.
func (s *Session) Select(ids ...trace.ID) ([]*trace.Trace, error) {
	traces := make([]*trace.Trace, 0, len(ids))
	for _, id := range ids {
		tr, ok := s.byID[id]
		if !ok {
			return nil, fmt.Errorf("select: unknown trace id %q", id)
		}
		traces = append(traces, tr)
	}
	s.selected = append(s.selected[:0:0], ids...)
	s.log.Debug("selection changed", zap.Int("traces", len(ids)))
	return traces, nil
}

// Selected returns the traces of the active selection.
func (s *Session) Selected() []*trace.Trace {
	out := make([]*trace.Trace, 0, len(s.selected))
	for _, id := range s.selected {
		if tr, ok := s.byID[id]; ok {
			out = append(out, tr)
		}
	}
	return out
}

// AssignColor returns the stable session color of a segment identity:
// the first identity seen takes the next unused palette color, the
// mapping never changes afterwards, and assignment wraps around once
// the palette is exhausted.
func (s *Session) AssignColor(id trace.SegmentID) color.RGBA {
	return s.colors.Assign(id)
}
