package trace

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// Side distinguishes duplicate segment names measured on both sides of
// a preparation. Sideless traces use SideNone.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "none"
}

// SegmentID identifies a segment family across recordings: the segment
// name plus the side it was measured on. Two traces with the same
// SegmentID belong to the same group and render in the same color.
type SegmentID struct {
	Segment string
	Side    Side
}

func (id SegmentID) String() string {
	switch id.Side {
	case SideLeft:
		return id.Segment + " (L)"
	case SideRight:
		return id.Segment + " (R)"
	}
	return id.Segment
}

// meanColumnRe matches measurement columns exported as Mean(<segment><side>),
// e.g. Mean(a1l) or Mean(t3r). Matched as a substring, so decorated
// headers still map. The side letter is mandatory; anything else falls
// through to a plain sideless column.
var meanColumnRe = regexp.MustCompile(`Mean\((.*?)([lr])\)`)

// ParseColumn maps a column name onto a segment identity. ok is false
// for columns that are not traces: anything containing "Time" and
// pandas-style "Unnamed:" spill columns.
func ParseColumn(name string) (SegmentID, bool) {
	if strings.Contains(name, "Time") || strings.HasPrefix(name, "Unnamed:") {
		return SegmentID{}, false
	}
	if m := meanColumnRe.FindStringSubmatch(name); m != nil {
		side := SideLeft
		if m[2] == "r" {
			side = SideRight
		}
		return SegmentID{Segment: m[1], Side: side}, true
	}
	return SegmentID{Segment: name, Side: SideNone}, true
}

// regionNames is the anatomy vocabulary recognized as a filename suffix.
var regionNames = []string{"soma", "axon", "axons", "dendrite", "dendrites", "dend", "spine", "spines", "mix"}

// ParseFilename splits a recording filename into sample name and
// anatomy region. The region is the final underscore-separated token
// when it is a recognized anatomy name (case-insensitive, stored
// lowercase); otherwise the whole base name is the sample and region is
// empty.
func ParseFilename(path string) (sample, region string) {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	parts := strings.Split(base, "_")
	if len(parts) > 1 {
		last := strings.ToLower(parts[len(parts)-1])
		for _, r := range regionNames {
			if last == r {
				return strings.Join(parts[:len(parts)-1], "_"), last
			}
		}
	}
	return base, ""
}

// DisplayName is the human-facing name for a loaded file:
// "<sample> - <region>" when a region suffix was recognized, else the
// file's base name.
func DisplayName(path string) string {
	sample, region := ParseFilename(path)
	if region != "" {
		return sample + " - " + region
	}
	return filepath.Base(path)
}

// SortSegments orders segment names the way stacked views stack their
// panels: names starting with "t" first, each block alphabetical.
func SortSegments(names []string) {
	sort.Slice(names, func(i, j int) bool {
		ti := strings.HasPrefix(names[i], "t")
		tj := strings.HasPrefix(names[j], "t")
		if ti != tj {
			return ti
		}
		return names[i] < names[j]
	})
}
