package session

import (
	"image/color"

	"github.com/nvelichkova/Multi-viewer/src/trace"
)

// DefaultPalette is the fixed assignment palette: ten distinguishable
// colors matching the matplotlib tab10 cycle the exported data was
// originally plotted with.
var DefaultPalette = []color.RGBA{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}, // blue
	{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}, // orange
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}, // green
	{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}, // red
	{R: 0x94, G: 0x67, B: 0xbd, A: 0xff}, // purple
	{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff}, // brown
	{R: 0xe3, G: 0x77, B: 0xc2, A: 0xff}, // pink
	{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff}, // gray
	{R: 0xbc, G: 0xbd, B: 0x22, A: 0xff}, // olive
	{R: 0x17, G: 0xbe, B: 0xcf, A: 0xff}, // cyan
}

// ColorMap assigns palette colors to segment identities. The first
// identity seen takes the next unused color, the mapping never changes
// for the rest of the session, and assignment wraps around once the
// palette is exhausted.
type ColorMap struct {
	palette  []color.RGBA
	assigned map[trace.SegmentID]color.RGBA
	next     int
}

// NewColorMap builds a color map over the given palette; nil or empty
// uses DefaultPalette.
func NewColorMap(palette []color.RGBA) *ColorMap {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return &ColorMap{
		palette:  palette,
		assigned: map[trace.SegmentID]color.RGBA{},
	}
}

// Assign returns the color for a segment identity, assigning the next
// unused palette color on first sight.
func (m *ColorMap) Assign(id trace.SegmentID) color.RGBA {
	if c, ok := m.assigned[id]; ok {
		return c
	}
	c := m.palette[m.next%len(m.palette)]
	m.next++
	m.assigned[id] = c
	return c
}

// Len reports how many identities have been assigned so far.
func (m *ColorMap) Len() int { return len(m.assigned) }
