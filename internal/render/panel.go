package render

import (
	"math"
	"strconv"

	"baymap/internal/dataset"
	"baymap/internal/scale"
)

// Panel layout constants in pixels. Every panel shares the same frame:
// a title bar of TitleBarHeight at the panel's top edge, then the body
// region offset 2 below it and inset 2 from the bottom.
const (
	TitleBarHeight = 14.0
	PanelWidth     = 100.0
	panelGutter    = 4.0
)

// Panel is one legend unit. Panels own their size and content; the
// shared frame renderer owns where the title bar and body sit.
type Panel interface {
	X() float64
	Width() float64
	Height() float64
	Title() string
	// DrawContent draws onto a surface whose origin is the panel body
	// and whose size is the body size. hl is the currently highlighted
	// station code set.
	DrawContent(s Surface, hl []string)
}

// BodyRect returns the body region of a panel placed at vertical
// offset y: full width, below the title bar, with the bottom inset.
func BodyRect(p Panel, y float64) (bx, by, bw, bh float64) {
	return p.X(), y + TitleBarHeight + 2, p.Width(), p.Height() - TitleBarHeight - 2 - 2
}

// DrawPanel renders one panel at vertical offset y: clear footprint,
// border, title bar, then the panel's own content in body-local
// coordinates.
func DrawPanel(s Surface, p Panel, y float64, hl []string) {
	x, w, h := p.X(), p.Width(), p.Height()
	s.Clear(x, y, w, h)
	s.StrokeRect(x, y, w, h, borderColor)
	s.Text(x+4, y+4, p.Title(), titleColor)
	s.Line(x, y+TitleBarHeight, x+w-1, y+TitleBarHeight, 1, borderColor)
	bx, by, bw, bh := BodyRect(p, y)
	p.DrawContent(translated{parent: s, dx: bx, dy: by, w: bw, h: bh}, hl)
}

// sampleSeries returns n values evenly spaced over [0, max], endpoints
// included.
func sampleSeries(n int, max float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = max * float64(i) / float64(n-1)
	}
	return out
}

func roundLabel(v float64) string {
	return strconv.Itoa(int(math.Round(v)))
}

// SelectedPanel lists the names of the highlighted stations.
type SelectedPanel struct {
	PanelX float64
	DS     *dataset.Dataset
}

func (p *SelectedPanel) X() float64      { return p.PanelX }
func (p *SelectedPanel) Width() float64  { return PanelWidth }
func (p *SelectedPanel) Height() float64 { return 42 }
func (p *SelectedPanel) Title() string   { return "Selected" }

// Names resolves highlighted codes to station names. Codes come from
// glyphs built out of the same dataset, so lookups cannot fail; a miss
// would be a data-integrity bug and panics via the error path upstream.
func (p *SelectedPanel) Names(hl []string) []string {
	if len(hl) == 0 {
		return []string{"None"}
	}
	names := make([]string, 0, len(hl))
	for _, code := range hl {
		st, err := p.DS.Station(code)
		if err != nil {
			panic(err)
		}
		names = append(names, st.Name)
	}
	return names
}

func (p *SelectedPanel) DrawContent(s Surface, hl []string) {
	for i, name := range p.Names(hl) {
		s.Text(2, float64(i*4), name, textColor)
	}
}

// HaloLegend shows what halo sizes mean: five sample counts drawn at
// their actual radii.
type HaloLegend struct {
	PanelX   float64
	MaxCount float64
}

func (p *HaloLegend) X() float64      { return p.PanelX }
func (p *HaloLegend) Width() float64  { return PanelWidth }
func (p *HaloLegend) Height() float64 { return 44 }
func (p *HaloLegend) Title() string   { return "Riders / station" }

func (p *HaloLegend) DrawContent(s Surface, hl []string) {
	samples := sampleSeries(5, p.MaxCount)
	w, _ := s.Size()
	step := w / float64(len(samples))
	for i, v := range samples {
		cx := step * (float64(i) + 0.5)
		s.FillCircle(cx, 10, scale.HaloRadius(v, p.MaxCount), haloColor)
		s.Text(cx-4, 22, roundLabel(v), textColor)
	}
}

// EdgeLegend shows journey stroke widths for five sample counts.
type EdgeLegend struct {
	PanelX   float64
	MaxCount float64
}

func (p *EdgeLegend) X() float64      { return p.PanelX }
func (p *EdgeLegend) Width() float64  { return PanelWidth }
func (p *EdgeLegend) Height() float64 { return 48 }
func (p *EdgeLegend) Title() string   { return "Riders / journey" }

func (p *EdgeLegend) DrawContent(s Surface, hl []string) {
	samples := sampleSeries(5, p.MaxCount)
	for i, v := range samples {
		y := float64(i*6 + 3)
		s.Line(4, y, 44, y, scale.EdgeWidth(v, p.MaxCount), edgeColor)
		s.Text(50, y, roundLabel(v), textColor)
	}
}

// SymbolLegend is static: one row per glyph kind.
type SymbolLegend struct {
	PanelX float64
}

func (p *SymbolLegend) X() float64      { return p.PanelX }
func (p *SymbolLegend) Width() float64  { return PanelWidth }
func (p *SymbolLegend) Height() float64 { return 36 }
func (p *SymbolLegend) Title() string   { return "Symbols" }

func (p *SymbolLegend) DrawContent(s Surface, hl []string) {
	s.FillCircle(6, 3, 2.5, haloColor)
	s.Text(14, 2, "station", textColor)
	s.Line(2, 9, 10, 9, 1, edgeColor)
	s.Text(14, 8, "journey", textColor)
	s.Line(2, 15, 10, 15, 1, landColor)
	s.Text(14, 14, "shoreline", textColor)
}

// PopulationLegend shows the population color ramp: one row per
// palette bucket with a sample count.
type PopulationLegend struct {
	PanelX   float64
	MaxCount float64
}

func (p *PopulationLegend) X() float64      { return p.PanelX }
func (p *PopulationLegend) Width() float64  { return PanelWidth }
func (p *PopulationLegend) Height() float64 { return 46 }
func (p *PopulationLegend) Title() string   { return "Population" }

func (p *PopulationLegend) DrawContent(s Surface, hl []string) {
	samples := sampleSeries(scale.PaletteSize, p.MaxCount)
	for i, v := range samples {
		y := float64(i * 4)
		s.FillRect(2, y, 12, 4, scale.PopulationColor(v, p.MaxCount))
		s.Text(18, y, roundLabel(v), textColor)
	}
}

// Panels returns the frame's panel stack in render order. The
// population legend joins only while that layer is shown.
func Panels(ds *dataset.Dataset, x float64, showPopulation bool) []Panel {
	panels := []Panel{
		&SelectedPanel{PanelX: x, DS: ds},
		&HaloLegend{PanelX: x, MaxCount: ds.MaxStationCount()},
		&EdgeLegend{PanelX: x, MaxCount: ds.MaxJourneyCount()},
		&SymbolLegend{PanelX: x},
	}
	if showPopulation {
		panels = append(panels, &PopulationLegend{PanelX: x, MaxCount: ds.MaxPopulation()})
	}
	return panels
}
