package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"baymap/internal/render"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	sbWidth, mapCols, mapRows, _, _ := m.layout()

	// Header
	header := titleStyle.Render(" baymap ─ BART ridership map ")
	header = lipgloss.NewStyle().Width(m.width).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sbWidth).Render(m.l.View())
	}

	// Map canvas: one full frame composed from scratch
	s := render.NewCellSurface(mapCols, mapRows)
	var hover []string
	if m.hovering {
		w, h := s.Size()
		glyphs := render.StationGlyphs(m.ds, render.Fit(m.ds, w, h))
		hover = render.Highlighted(m.pointerX, m.pointerY, glyphs)
	}
	hl := m.highlighted(hover)
	render.Frame(s, m.ds, hl, m.showPopulation)
	mapView := lipgloss.NewStyle().Width(mapCols).Height(mapRows).
		Render(strings.Join(s.Render(), "\n"))

	var body string
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	} else {
		body = mapView
	}

	// Footer / help
	status := m.status
	if m.hovering {
		if hs := m.hoverStatus(m.selectedNames(hover)); hs != "" {
			status = hs
		}
	}
	footer := lipgloss.NewStyle().Width(m.width).Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, dimStyle.Render(" "+status+" "), m.renderHelp()),
	)

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(m.width).Height(m.height).Render(ui)
}

func (m Model) selectedNames(hl []string) []string {
	names := make([]string, 0, len(hl))
	for _, code := range hl {
		if st, err := m.ds.Station(code); err == nil {
			names = append(names, st.Name)
		}
	}
	return names
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	bindings := []string{
		m.keys.Population.Help().Key + " " + m.keys.Population.Help().Desc,
		m.keys.Sidebar.Help().Key + " " + m.keys.Sidebar.Help().Desc,
		m.keys.Pin.Help().Key + " " + m.keys.Pin.Help().Desc,
		m.keys.Help.Help().Key + " " + m.keys.Help.Help().Desc,
		m.keys.Quit.Help().Key + " " + m.keys.Quit.Help().Desc,
	}
	return dimStyle.Render("  " + strings.Join(bindings, "  "))
}
