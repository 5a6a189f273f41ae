package render

import (
	"strings"
	"testing"

	"baymap/internal/dataset"
)

func panelFixture(t *testing.T) *dataset.Dataset {
	t.Helper()
	stations := []dataset.Station{
		{Name: "Ashby", Code: "AS", Latitude: 37.85, Longitude: -122.27},
		{Name: "Downtown Berkeley", Code: "BK", Latitude: 37.87, Longitude: -122.27},
	}
	journeys := []dataset.Journey{{Source: "AS", Destination: "BK", Count: 12}}
	pop := []dataset.PopulationCell{{Geohash: "9q9p3", Count: 300, Latitude: 37.86, Longitude: -122.29}}
	land := [][2]float64{{-122.5, 37.7}, {-122.1, 37.7}, {-122.1, 38.0}}
	ds, err := dataset.New(stations, journeys, pop, land)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return ds
}

func TestBodyRectGeometry(t *testing.T) {
	p := &SymbolLegend{PanelX: 200}
	bx, by, bw, bh := BodyRect(p, 40)
	if bx != 200 {
		t.Errorf("body x = %v, want the panel x", bx)
	}
	if by != 40+TitleBarHeight+2 {
		t.Errorf("body y = %v, want title bar height + 2 below the panel top", by)
	}
	if bw != p.Width() {
		t.Errorf("body width = %v, want the panel width", bw)
	}
	if want := p.Height() - TitleBarHeight - 2 - 2; bh != want {
		t.Errorf("body height = %v, want %v", bh, want)
	}
}

func TestSampleSeries(t *testing.T) {
	s := sampleSeries(5, 100)
	want := []float64{0, 25, 50, 75, 100}
	if len(s) != len(want) {
		t.Fatalf("sampleSeries returned %d values, want %d", len(s), len(want))
	}
	for i := range want {
		if s[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, s[i], want[i])
		}
	}
}

func TestSelectedPanelNames(t *testing.T) {
	p := &SelectedPanel{DS: panelFixture(t)}
	if names := p.Names(nil); len(names) != 1 || names[0] != "None" {
		t.Errorf("Names(nil) = %v, want [None]", names)
	}
	names := p.Names([]string{"AS", "BK"})
	if len(names) != 2 || names[0] != "Ashby" || names[1] != "Downtown Berkeley" {
		t.Errorf("Names = %v, want the two station names", names)
	}
}

func TestPanelsIncludePopulationOnlyWhenShown(t *testing.T) {
	ds := panelFixture(t)
	hidden := Panels(ds, 0, false)
	shown := Panels(ds, 0, true)
	if len(shown) != len(hidden)+1 {
		t.Fatalf("population legend not added: %d vs %d panels", len(shown), len(hidden))
	}
	if _, ok := shown[len(shown)-1].(*PopulationLegend); !ok {
		t.Error("last panel with layer shown should be the population legend")
	}
	for _, p := range hidden {
		if _, ok := p.(*PopulationLegend); ok {
			t.Error("population legend present while the layer is hidden")
		}
	}
}

func TestDrawPanelWritesTitle(t *testing.T) {
	ds := panelFixture(t)
	s := NewCellSurface(80, 20)
	DrawPanel(s, &SelectedPanel{PanelX: 10, DS: ds}, 4, nil)
	plain := s.RenderPlain()
	if !strings.Contains(plain, "Selected") {
		t.Error("panel title missing from the rendered surface")
	}
	if !strings.Contains(plain, "None") {
		t.Error("empty highlight set should render None in the body")
	}
}

func TestDrawPanelListsHighlighted(t *testing.T) {
	ds := panelFixture(t)
	s := NewCellSurface(80, 20)
	DrawPanel(s, &SelectedPanel{PanelX: 10, DS: ds}, 4, []string{"AS"})
	if !strings.Contains(s.RenderPlain(), "Ashby") {
		t.Error("highlighted station name missing from the panel body")
	}
}

func TestFrameComposes(t *testing.T) {
	ds := panelFixture(t)
	s := NewCellSurface(160, 64)
	Frame(s, ds, nil, false)
	plain := s.RenderPlain()
	for _, title := range []string{"Selected", "Riders / station", "Riders / journey", "Symbols"} {
		if !strings.Contains(plain, title) {
			t.Errorf("frame missing panel title %q", title)
		}
	}
	if strings.Contains(plain, "Population") {
		t.Error("population legend rendered while the layer is hidden")
	}

	s2 := NewCellSurface(160, 64)
	Frame(s2, ds, nil, true)
	if !strings.Contains(s2.RenderPlain(), "Population") {
		t.Error("population legend missing while the layer is shown")
	}
}
