package plot

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/nvelichkova/Multi-viewer/src/trace"
)

// Scheme decides how traces are colored.
type Scheme int

const (
	// SchemeIdentity colors every trace by its segment identity through
	// the session color map: one color per identity, stable across all
	// views.
	SchemeIdentity Scheme = iota
	// SchemeAnatomy reproduces the classic viewer look: left traces in
	// the red family by region, right traces in the blue family,
	// sideless traces green.
	SchemeAnatomy
)

func (s Scheme) String() string {
	if s == SchemeAnatomy {
		return "anatomy"
	}
	return "identity"
}

// ParseScheme maps the CLI/config spelling onto a scheme.
func ParseScheme(s string) (Scheme, error) {
	switch strings.ToLower(s) {
	case "", "identity":
		return SchemeIdentity, nil
	case "anatomy":
		return SchemeAnatomy, nil
	}
	return SchemeIdentity, fmt.Errorf("unknown color scheme %q", s)
}

var (
	leftColors = map[string]color.RGBA{
		"soma":      {R: 255, A: 255},               // red
		"axon":      {R: 139, A: 255},               // dark red
		"axons":     {R: 139, A: 255},               // dark red
		"dendrite":  {R: 205, G: 92, B: 92, A: 255}, // indian red
		"dendrites": {R: 205, G: 92, B: 92, A: 255}, // indian red
		"dend":      {R: 205, G: 92, B: 92, A: 255}, // indian red
		"mix":       {R: 178, G: 34, B: 34, A: 255}, // firebrick
	}
	rightColors = map[string]color.RGBA{
		"soma":      {B: 255, A: 255},                // blue
		"axon":      {B: 139, A: 255},                // dark blue
		"axons":     {B: 139, A: 255},                // dark blue
		"dendrite":  {R: 65, G: 105, B: 225, A: 255}, // royal blue
		"dendrites": {R: 65, G: 105, B: 225, A: 255}, // royal blue
		"dend":      {R: 65, G: 105, B: 225, A: 255}, // royal blue
		"mix":       {R: 70, G: 130, B: 180, A: 255}, // steel blue
	}
	sidelessColor = color.RGBA{G: 128, A: 255} // green
)

// AnatomyColor returns the anatomy-scheme color for a trace's side and
// its recording's region. Unknown regions fall back to plain red or
// blue; sideless traces are always green.
func AnatomyColor(side trace.Side, region string) color.RGBA {
	switch side {
	case trace.SideLeft:
		if c, ok := leftColors[region]; ok {
			return c
		}
		return color.RGBA{R: 255, A: 255}
	case trace.SideRight:
		if c, ok := rightColors[region]; ok {
			return c
		}
		return color.RGBA{B: 255, A: 255}
	}
	return sidelessColor
}
