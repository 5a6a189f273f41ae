package tui

import (
	"sort"

	"github.com/charmbracelet/bubbles/key"
	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"baymap/internal/dataset"
)

const sidebarWidth = 28

type keyMap struct {
	Population key.Binding
	Sidebar    key.Binding
	Pin        key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Population: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "population")),
		Sidebar:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "stations")),
		Pin:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "pin")),
		Help:       key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type Model struct {
	width  int
	height int

	ds *dataset.Dataset

	// population layer toggle; hidden at start
	showPopulation bool

	showSidebar bool
	helpVisible bool

	status string

	// Station picker
	l      list.Model
	pinned string // pinned station code, "" when none

	// Pointer state in map pixel space
	hovering bool
	pointerX float64
	pointerY float64

	keys keyMap
}

func New(ds *dataset.Dataset) Model {
	m := Model{
		ds:          ds,
		helpVisible: true,
		status:      "baymap ready",
		keys:        defaultKeyMap(),
	}
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	items := make([]list.Item, 0, len(ds.Stations))
	for _, s := range ds.Stations {
		items = append(items, stationItem{name: s.Name, code: s.Code})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].(stationItem).name < items[j].(stationItem).name
	})
	m.l = list.New(items, d, 0, 0)
	m.l.Title = "Stations"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	return m
}

// NewWithHighlight pins a station at launch.
func NewWithHighlight(ds *dataset.Dataset, code string) Model {
	m := New(ds)
	m.pinned = code
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// layout is the single source of the screen arithmetic: Update uses it
// for mouse hit-testing, View for composition, so the two can never
// disagree about where the map sits.
func (m Model) layout() (sbWidth, mapCols, mapRows, originX, originY int) {
	if m.showSidebar {
		sbWidth = sidebarWidth
	}
	headerHeight := 1
	footerHeight := 2
	mapRows = m.height - headerHeight - footerHeight
	if mapRows < 4 {
		mapRows = 4
	}
	mapCols = m.width - sbWidth
	if sbWidth > 0 {
		mapCols-- // gutter between sidebar and map
	}
	if mapCols < 10 {
		mapCols = 10
	}
	originX = sbWidth
	if sbWidth > 0 {
		originX++
	}
	originY = headerHeight
	return
}

// highlighted is the per-frame highlight set: stations under the
// pointer plus the pinned station, if any.
func (m Model) highlighted(hover []string) []string {
	if m.pinned == "" {
		return hover
	}
	for _, code := range hover {
		if code == m.pinned {
			return hover
		}
	}
	return append(append([]string(nil), hover...), m.pinned)
}

type stationItem struct {
	name string
	code string
}

func (s stationItem) Title() string       { return s.name }
func (s stationItem) Description() string { return s.code }
func (s stationItem) FilterValue() string { return s.name }
