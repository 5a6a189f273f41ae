package render

import (
	"github.com/charmbracelet/lipgloss"

	"baymap/internal/dataset"
	"baymap/internal/geo"
	"baymap/internal/scale"
)

// Frame colors.
var (
	landColor   = lipgloss.Color("#3D5A73")
	edgeColor   = lipgloss.Color("#4C6E91")
	haloColor   = lipgloss.Color("#7C3AED")
	accentColor = lipgloss.Color("#FFA500")
	textColor   = lipgloss.Color("#E6E6E6")
	titleColor  = lipgloss.Color("#7C3AED")
	borderColor = lipgloss.Color("#243141")
)

// mapMargin keeps the projected extent off the surface edges.
const mapMargin = 8.0

// geohashCellDeg is the angular size of a precision-5 geohash cell:
// 13 longitude bits and 12 latitude bits both come out to the same
// 0.0439 degrees.
const geohashCellDeg = 360.0 / 8192

// Fit builds the frame's projector for a surface of the given pixel
// size. The parameters are constant for a fixed window; they are still
// cheap enough to recompute on every redraw.
func Fit(ds *dataset.Dataset, w, h float64) geo.Projector {
	return geo.Fit(ds.Bounds(), w, h, mapMargin)
}

// Frame composes one full frame: land outline, population layer when
// shown, journeys, station halos, then the legend panels. hl holds the
// station codes to draw highlighted.
func Frame(s Surface, ds *dataset.Dataset, hl []string, showPopulation bool) {
	w, h := s.Size()
	proj := Fit(ds, w, h)

	drawLand(s, ds, proj)
	if showPopulation {
		drawPopulation(s, ds, proj)
	}
	drawJourneys(s, ds, proj)
	drawHalos(s, StationGlyphs(ds, proj), hl)
	drawPanels(s, ds, hl, showPopulation, w)
}

func drawLand(s Surface, ds *dataset.Dataset, proj geo.Projector) {
	if len(ds.Land) == 0 {
		return
	}
	pts := make([][2]float64, 0, len(ds.Land)+1)
	for _, p := range ds.Land {
		x, y := proj.Project(p[0], p[1])
		pts = append(pts, [2]float64{x, y})
	}
	pts = append(pts, pts[0]) // closed outline
	s.Polyline(pts, 1, landColor)
}

func drawPopulation(s Surface, ds *dataset.Dataset, proj geo.Projector) {
	maxPop := ds.MaxPopulation()
	side := geohashCellDeg * proj.Scale
	if side < 2 {
		side = 2
	}
	for _, cell := range ds.Population {
		x, y := proj.Project(cell.Longitude, cell.Latitude)
		s.FillRect(x-side/2, y-side/2, side, side, scale.PopulationColor(cell.Count, maxPop))
	}
}

func drawJourneys(s Surface, ds *dataset.Dataset, proj geo.Projector) {
	maxCount := ds.MaxJourneyCount()
	for _, j := range ds.Journeys {
		src, err := ds.Station(j.Source)
		if err != nil {
			panic(err) // endpoints are validated at load
		}
		dst, err := ds.Station(j.Destination)
		if err != nil {
			panic(err)
		}
		x0, y0 := proj.Project(src.Longitude, src.Latitude)
		x1, y1 := proj.Project(dst.Longitude, dst.Latitude)
		s.Line(x0, y0, x1, y1, scale.EdgeWidth(j.Count, maxCount), edgeColor)
	}
}

func drawHalos(s Surface, glyphs []Glyph, hl []string) {
	lit := make(map[string]bool, len(hl))
	for _, code := range hl {
		lit[code] = true
	}
	for _, g := range glyphs {
		if lit[g.Code] {
			continue
		}
		s.FillCircle(g.X, g.Y, g.R, haloColor)
	}
	// highlighted halos draw last so overlaps cannot bury them
	for _, g := range glyphs {
		if !lit[g.Code] {
			continue
		}
		s.FillCircle(g.X, g.Y, g.R, accentColor)
		s.StrokeCircle(g.X, g.Y, g.R+2, accentColor)
	}
}

func drawPanels(s Surface, ds *dataset.Dataset, hl []string, showPopulation bool, w float64) {
	x := w - PanelWidth - 4
	y := panelGutter
	for _, p := range Panels(ds, x, showPopulation) {
		DrawPanel(s, p, y, hl)
		y += p.Height() + panelGutter
	}
}
