package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"baymap/internal/dataset"
)

func fixture(t *testing.T) *dataset.Dataset {
	t.Helper()
	stations := []dataset.Station{
		{Name: "Ashby", Code: "AS", Latitude: 37.85, Longitude: -122.27},
		{Name: "Downtown Berkeley", Code: "BK", Latitude: 37.87, Longitude: -122.27},
	}
	journeys := []dataset.Journey{{Source: "AS", Destination: "BK", Count: 12}}
	ds, err := dataset.New(stations, journeys, nil, [][2]float64{{-122.5, 37.7}, {-122.1, 38.0}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return ds
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPopulationTogglesIndefinitely(t *testing.T) {
	m := New(fixture(t))
	if m.showPopulation {
		t.Fatal("population layer must start hidden")
	}
	for i := 0; i < 3; i++ {
		next, _ := m.Update(keyPress("p"))
		m = next.(Model)
		want := i%2 == 0
		if m.showPopulation != want {
			t.Fatalf("after %d toggles showPopulation = %v, want %v", i+1, m.showPopulation, want)
		}
	}
}

func TestMouseHoverInsideMap(t *testing.T) {
	m := New(fixture(t))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	// header is one row; cell (10, 5) is inside the map
	next, _ = m.Update(tea.MouseMsg{X: 10, Y: 5})
	m = next.(Model)
	if !m.hovering {
		t.Fatal("pointer inside the map must set hover state")
	}
	if m.pointerX != 21 || m.pointerY != 18 {
		t.Errorf("pointer = (%v, %v), want cell center (21, 18)", m.pointerX, m.pointerY)
	}

	// header row is outside the map
	next, _ = m.Update(tea.MouseMsg{X: 10, Y: 0})
	m = next.(Model)
	if m.hovering {
		t.Error("pointer over the header must clear hover state")
	}
}

func TestHighlightedMergesPinned(t *testing.T) {
	m := New(fixture(t))
	m.pinned = "BK"
	got := m.highlighted([]string{"AS"})
	if len(got) != 2 || got[0] != "AS" || got[1] != "BK" {
		t.Errorf("highlighted = %v, want [AS BK]", got)
	}
	// no duplicate when the pinned station is already hovered
	got = m.highlighted([]string{"BK"})
	if len(got) != 1 || got[0] != "BK" {
		t.Errorf("highlighted = %v, want [BK]", got)
	}
}

func TestViewRendersAfterSize(t *testing.T) {
	m := New(fixture(t))
	if m.View() != "" {
		t.Error("zero-size view must render empty")
	}
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)
	if m.View() == "" {
		t.Error("sized view must render a frame")
	}
}

func TestNewWithHighlightPins(t *testing.T) {
	m := NewWithHighlight(fixture(t), "AS")
	got := m.highlighted(nil)
	if len(got) != 1 || got[0] != "AS" {
		t.Errorf("highlighted = %v, want [AS]", got)
	}
}
