package render

import (
	"baymap/internal/dataset"
	"baymap/internal/geo"
	"baymap/internal/scale"
)

// Glyph is a station halo in pixel space, used both for drawing and
// for pointer hit-testing.
type Glyph struct {
	Code string
	X    float64
	Y    float64
	R    float64
}

// StationGlyphs projects every station and sizes its halo from the
// ridership maximum. Recomputed each frame; the view never pans or
// zooms within a session, so there is nothing worth caching.
func StationGlyphs(ds *dataset.Dataset, p geo.Projector) []Glyph {
	glyphs := make([]Glyph, 0, len(ds.Stations))
	maxCount := ds.MaxStationCount()
	for _, st := range ds.Stations {
		x, y := p.Project(st.Longitude, st.Latitude)
		glyphs = append(glyphs, Glyph{
			Code: st.Code,
			X:    x,
			Y:    y,
			R:    scale.HaloRadius(st.Count, maxCount),
		})
	}
	return glyphs
}

// Highlighted returns the codes of every glyph containing the pointer.
// Containment is inclusive: distance equal to the radius still counts.
// Overlapping glyphs can highlight several stations at once.
func Highlighted(px, py float64, glyphs []Glyph) []string {
	var codes []string
	for _, g := range glyphs {
		dx := px - g.X
		dy := py - g.Y
		if dx*dx+dy*dy <= g.R*g.R {
			codes = append(codes, g.Code)
		}
	}
	return codes
}
