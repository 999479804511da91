package plot

import (
	"image"
	"image/draw"
	"sort"

	"github.com/nvelichkova/Multi-viewer/src/trace"
)

// Panel is one stacked sub-chart: every series of one segment name,
// both sides and all regions together.
type Panel struct {
	Segment string
	Series  []Series
}

// regionRank orders regions within a stacked panel; unknown regions and
// regionless traces sink below the known anatomy.
var regionRank = map[string]int{
	"soma":      0,
	"axon":      1,
	"axons":     2,
	"dendrite":  3,
	"dendrites": 4,
	"dend":      5,
	"spine":     6,
	"spines":    7,
	"mix":       8,
}

// regionOffsetStep vertically separates regions within one panel, in
// signal units.
const regionOffsetStep = 20.0

// BuildPanels groups series by segment name in stacked-view order
// (t-prefixed segments first, then alphabetical).
func BuildPanels(series []Series) []Panel {
	bySeg := map[string][]Series{}
	var names []string
	for _, s := range series {
		if _, ok := bySeg[s.Seg.Segment]; !ok {
			names = append(names, s.Seg.Segment)
		}
		bySeg[s.Seg.Segment] = append(bySeg[s.Seg.Segment], s)
	}
	trace.SortSegments(names)
	panels := make([]Panel, 0, len(names))
	for _, n := range names {
		panels = append(panels, Panel{Segment: n, Series: bySeg[n]})
	}
	return panels
}

// RenderStacked draws one sub-chart per panel with regions offset
// vertically inside each panel, then composes the panels top to bottom.
// opt.Height is the per-panel height; the title goes on the first panel
// and the footer on the last.
func RenderStacked(panels []Panel, opt Options) (image.Image, error) {
	w, h := opt.size()
	if len(panels) == 0 {
		return Blank(w, h), nil
	}
	imgs := make([]image.Image, 0, len(panels))
	for i, p := range panels {
		po := opt
		po.Width, po.Height = w, h
		po.Title = ""
		po.Footer = ""
		if i == 0 {
			po.Title = opt.Title
		}
		if i == len(panels)-1 {
			po.Footer = opt.Footer
		}
		img, err := renderPanel(p, po)
		if err != nil {
			return nil, err
		}
		imgs = append(imgs, img)
	}
	out := image.NewRGBA(image.Rect(0, 0, w, h*len(imgs)))
	for i, img := range imgs {
		r := image.Rect(0, i*h, w, (i+1)*h)
		draw.Draw(out, r, img, img.Bounds().Min, draw.Src)
	}
	return out, nil
}

// renderPanel renders one segment's series with per-region offsets and
// stamps the segment name top-left.
func renderPanel(p Panel, opt Options) (image.Image, error) {
	offsets := regionOffsets(p.Series)
	shifted := make([]Series, len(p.Series))
	for i, s := range p.Series {
		shifted[i] = s
		if off := offsets[s.Region]; off != 0 {
			vs := make([]float64, len(s.Values))
			for j, v := range s.Values {
				vs[j] = v + off
			}
			shifted[i].Values = vs
		}
	}
	img, err := RenderOverlay(shifted, opt)
	if err != nil {
		return nil, err
	}
	return drawNote(img, p.Segment, 8, 20), nil
}

// regionOffsets assigns each region present a vertical offset in rank
// order.
func regionOffsets(series []Series) map[string]float64 {
	seen := map[string]bool{}
	var regions []string
	for _, s := range series {
		if !seen[s.Region] {
			seen[s.Region] = true
			regions = append(regions, s.Region)
		}
	}
	sort.Slice(regions, func(i, j int) bool {
		ri, iok := regionRank[regions[i]]
		rj, jok := regionRank[regions[j]]
		if iok != jok {
			return iok
		}
		if ri != rj {
			return ri < rj
		}
		return regions[i] < regions[j]
	})
	offsets := make(map[string]float64, len(regions))
	for i, r := range regions {
		offsets[r] = float64(i) * regionOffsetStep
	}
	return offsets
}
