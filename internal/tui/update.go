package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			_, _, mapRows, _, _ := m.layout()
			m.l.SetSize(sidebarWidth-2, mapRows-2)
		}
	case tea.KeyMsg:
		// While the station list is filtering it owns the keyboard.
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Population):
			m.showPopulation = !m.showPopulation
			if m.showPopulation {
				m.status = "population layer shown"
			} else {
				m.status = "population layer hidden"
			}
		case key.Matches(msg, m.keys.Sidebar):
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				_, _, mapRows, _, _ := m.layout()
				m.l.SetSize(sidebarWidth-2, mapRows-2)
			}
		case key.Matches(msg, m.keys.Help):
			m.helpVisible = !m.helpVisible
		case key.Matches(msg, m.keys.Pin):
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(stationItem); ok {
					if m.pinned == it.code {
						m.pinned = ""
						m.status = "unpinned " + it.name
					} else {
						m.pinned = it.code
						m.status = "pinned " + it.name
					}
				}
			}
		}
	case tea.MouseMsg:
		_, mapCols, mapRows, originX, originY := m.layout()
		cx, cy := msg.X, msg.Y
		if cx >= originX && cx < originX+mapCols && cy >= originY && cy < originY+mapRows {
			m.hovering = true
			// pointer at the hovered cell's center on the dot grid
			m.pointerX = float64((cx-originX)*2 + 1)
			m.pointerY = float64((cy-originY)*4 + 2)
		} else {
			m.hovering = false
		}
	}
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) hoverStatus(names []string) string {
	if len(names) == 0 {
		return ""
	}
	if len(names) == 1 {
		return names[0]
	}
	return fmt.Sprintf("%s +%d", names[0], len(names)-1)
}
