// Package render composes map frames on an abstract pixel surface.
//
// The concrete surface is a braille microgrid: every terminal cell is a
// 2x4 block of dots, so one "pixel" here is one braille dot. Glyph
// sizes and panel geometry are all expressed in these pixels.
package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Surface is the 2D drawing capability the frame composer draws on.
// Coordinates are pixels with the origin at the top-left, y growing
// downward. Out-of-range drawing is clipped, never an error.
type Surface interface {
	Size() (w, h float64)
	SetPixel(x, y float64, c lipgloss.Color)
	Line(x0, y0, x1, y1, width float64, c lipgloss.Color)
	Polyline(pts [][2]float64, width float64, c lipgloss.Color)
	FillCircle(cx, cy, r float64, c lipgloss.Color)
	StrokeCircle(cx, cy, r float64, c lipgloss.Color)
	FillRect(x, y, w, h float64, c lipgloss.Color)
	StrokeRect(x, y, w, h float64, c lipgloss.Color)
	Text(x, y float64, s string, c lipgloss.Color)
	Clear(x, y, w, h float64)
}

// CellSurface implements Surface on a grid of terminal cells. Dots
// accumulate into per-cell braille masks; text overrides the braille
// rune for the cells it lands on. Color is per cell, last writer wins.
type CellSurface struct {
	cols, rows int
	mask       [][]uint8
	fg         [][]lipgloss.Color
	ch         [][]rune
}

// NewCellSurface makes a surface of cols x rows terminal cells, which
// is cols*2 x rows*4 pixels.
func NewCellSurface(cols, rows int) *CellSurface {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	s := &CellSurface{cols: cols, rows: rows}
	s.mask = make([][]uint8, rows)
	s.fg = make([][]lipgloss.Color, rows)
	s.ch = make([][]rune, rows)
	for y := range s.mask {
		s.mask[y] = make([]uint8, cols)
		s.fg[y] = make([]lipgloss.Color, cols)
		s.ch[y] = make([]rune, cols)
	}
	return s
}

func (s *CellSurface) Size() (float64, float64) {
	return float64(s.cols * 2), float64(s.rows * 4)
}

func (s *CellSurface) SetPixel(x, y float64, c lipgloss.Color) {
	s.set(int(math.Round(x)), int(math.Round(y)), c)
}

// set flips one braille dot. Dot-to-bit layout follows U+2800.
func (s *CellSurface) set(px, py int, c lipgloss.Color) {
	if px < 0 || py < 0 {
		return
	}
	cx, rx := px/2, px%2
	cy, ry := py/4, py%4
	if cx >= s.cols || cy >= s.rows {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	s.mask[cy][cx] |= bit
	if c != "" {
		s.fg[cy][cx] = c
	}
}

// line is Bresenham on the dot grid.
func (s *CellSurface) line(x0, y0, x1, y1 int, c lipgloss.Color) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		s.set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Line draws a stroke of the given width by laying unit lines side by
// side along the perpendicular.
func (s *CellSurface) Line(x0, y0, x1, y1, width float64, c lipgloss.Color) {
	n := int(math.Round(width))
	if n < 1 {
		n = 1
	}
	dx := x1 - x0
	dy := y1 - y0
	length := math.Hypot(dx, dy)
	nx, ny := 0.0, 1.0
	if length > 0 {
		nx, ny = -dy/length, dx/length
	}
	for i := 0; i < n; i++ {
		off := float64(i) - float64(n-1)/2
		s.line(
			int(math.Round(x0+nx*off)), int(math.Round(y0+ny*off)),
			int(math.Round(x1+nx*off)), int(math.Round(y1+ny*off)),
			c,
		)
	}
}

func (s *CellSurface) Polyline(pts [][2]float64, width float64, c lipgloss.Color) {
	for i := 1; i < len(pts); i++ {
		s.Line(pts[i-1][0], pts[i-1][1], pts[i][0], pts[i][1], width, c)
	}
}

func (s *CellSurface) FillCircle(cx, cy, r float64, c lipgloss.Color) {
	if r <= 0 {
		s.SetPixel(cx, cy, c)
		return
	}
	minY := int(math.Floor(cy - r))
	maxY := int(math.Ceil(cy + r))
	for py := minY; py <= maxY; py++ {
		dy := float64(py) - cy
		if math.Abs(dy) > r {
			continue
		}
		half := math.Sqrt(r*r - dy*dy)
		for px := int(math.Floor(cx - half)); px <= int(math.Ceil(cx+half)); px++ {
			if dx := float64(px) - cx; dx*dx+dy*dy <= r*r {
				s.set(px, py, c)
			}
		}
	}
}

func (s *CellSurface) StrokeCircle(cx, cy, r float64, c lipgloss.Color) {
	if r <= 0 {
		s.SetPixel(cx, cy, c)
		return
	}
	steps := int(2 * math.Pi * r)
	if steps < 12 {
		steps = 12
	}
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		s.SetPixel(cx+r*math.Cos(a), cy+r*math.Sin(a), c)
	}
}

func (s *CellSurface) FillRect(x, y, w, h float64, c lipgloss.Color) {
	for py := int(math.Round(y)); py < int(math.Round(y+h)); py++ {
		for px := int(math.Round(x)); px < int(math.Round(x+w)); px++ {
			s.set(px, py, c)
		}
	}
}

func (s *CellSurface) StrokeRect(x, y, w, h float64, c lipgloss.Color) {
	s.Line(x, y, x+w-1, y, 1, c)
	s.Line(x, y+h-1, x+w-1, y+h-1, 1, c)
	s.Line(x, y, x, y+h-1, 1, c)
	s.Line(x+w-1, y, x+w-1, y+h-1, 1, c)
}

// Text places a string into the cells under (x, y). Each character
// claims a whole cell, replacing any braille dots drawn there.
func (s *CellSurface) Text(x, y float64, txt string, c lipgloss.Color) {
	cx := int(math.Round(x)) / 2
	cy := int(math.Round(y)) / 4
	if cy < 0 || cy >= s.rows {
		return
	}
	for _, r := range txt {
		if cx >= s.cols {
			break
		}
		if cx >= 0 {
			s.ch[cy][cx] = r
			if c != "" {
				s.fg[cy][cx] = c
			}
		}
		cx++
	}
}

// Clear wipes every cell the pixel rect touches, dots and text both.
// Panels clear their footprint before drawing so the map does not show
// through.
func (s *CellSurface) Clear(x, y, w, h float64) {
	x0 := int(math.Floor(x)) / 2
	y0 := int(math.Floor(y)) / 4
	x1 := (int(math.Ceil(x+w)) - 1) / 2
	y1 := (int(math.Ceil(y+h)) - 1) / 4
	for cy := max(0, y0); cy <= y1 && cy < s.rows; cy++ {
		for cx := max(0, x0); cx <= x1 && cx < s.cols; cx++ {
			s.mask[cy][cx] = 0
			s.fg[cy][cx] = ""
			s.ch[cy][cx] = 0
		}
	}
}

// Render returns the surface as styled terminal lines, coloring runs
// of equally colored cells together.
func (s *CellSurface) Render() []string {
	out := make([]string, s.rows)
	for y := 0; y < s.rows; y++ {
		var b strings.Builder
		var run strings.Builder
		var runColor lipgloss.Color
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runColor != "" {
				b.WriteString(lipgloss.NewStyle().Foreground(runColor).Render(run.String()))
			} else {
				b.WriteString(run.String())
			}
			run.Reset()
		}
		for x := 0; x < s.cols; x++ {
			r := s.cellRune(x, y)
			c := s.fg[y][x]
			if r == ' ' {
				c = ""
			}
			if c != runColor {
				flush()
				runColor = c
			}
			run.WriteRune(r)
		}
		flush()
		out[y] = b.String()
	}
	return out
}

// RenderPlain returns the frame without any styling, one string per
// row. This is what batch mode persists.
func (s *CellSurface) RenderPlain() string {
	lines := make([]string, s.rows)
	for y := 0; y < s.rows; y++ {
		row := make([]rune, s.cols)
		for x := 0; x < s.cols; x++ {
			row[x] = s.cellRune(x, y)
		}
		lines[y] = string(row)
	}
	return strings.Join(lines, "\n")
}

func (s *CellSurface) cellRune(x, y int) rune {
	if s.ch[y][x] != 0 {
		return s.ch[y][x]
	}
	if m := s.mask[y][x]; m != 0 {
		return rune(0x2800 + int(m))
	}
	return ' '
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// translated offsets all drawing into a sub-region of a parent
// surface, giving panel content a local origin.
type translated struct {
	parent Surface
	dx, dy float64
	w, h   float64
}

func (t translated) Size() (float64, float64) { return t.w, t.h }
func (t translated) SetPixel(x, y float64, c lipgloss.Color) {
	t.parent.SetPixel(x+t.dx, y+t.dy, c)
}
func (t translated) Line(x0, y0, x1, y1, width float64, c lipgloss.Color) {
	t.parent.Line(x0+t.dx, y0+t.dy, x1+t.dx, y1+t.dy, width, c)
}
func (t translated) Polyline(pts [][2]float64, width float64, c lipgloss.Color) {
	moved := make([][2]float64, len(pts))
	for i, p := range pts {
		moved[i] = [2]float64{p[0] + t.dx, p[1] + t.dy}
	}
	t.parent.Polyline(moved, width, c)
}
func (t translated) FillCircle(cx, cy, r float64, c lipgloss.Color) {
	t.parent.FillCircle(cx+t.dx, cy+t.dy, r, c)
}
func (t translated) StrokeCircle(cx, cy, r float64, c lipgloss.Color) {
	t.parent.StrokeCircle(cx+t.dx, cy+t.dy, r, c)
}
func (t translated) FillRect(x, y, w, h float64, c lipgloss.Color) {
	t.parent.FillRect(x+t.dx, y+t.dy, w, h, c)
}
func (t translated) StrokeRect(x, y, w, h float64, c lipgloss.Color) {
	t.parent.StrokeRect(x+t.dx, y+t.dy, w, h, c)
}
func (t translated) Text(x, y float64, s string, c lipgloss.Color) {
	t.parent.Text(x+t.dx, y+t.dy, s, c)
}
func (t translated) Clear(x, y, w, h float64) {
	t.parent.Clear(x+t.dx, y+t.dy, w, h)
}
