// Package scale maps ridership and population counts to visual
// attributes: halo radius, edge stroke width, and a discrete color
// bucket for the population layer.
package scale

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

// Glyph extents in pixels on the map surface.
const (
	MinHaloRadius = 1.5
	MaxHaloRadius = 9

	MinEdgeWidth = 1
	MaxEdgeWidth = 5
)

// Linear remaps v from [d0, d1] to [r0, r1]. A collapsed domain would
// divide by zero; it clamps to r0 instead, which is what a map with an
// empty or degenerate dataset should draw.
func Linear(v, d0, d1, r0, r1 float64) float64 {
	if d1 == d0 {
		return r0
	}
	return r0 + (v-d0)/(d1-d0)*(r1-r0)
}

// HaloRadius returns the radius for a station halo. The linear remap
// runs in area space and the square root comes last, so halo area (the
// perceived size) is linear in ridership: Linear(0)=MinHaloRadius,
// Linear(maxCount)=MaxHaloRadius.
func HaloRadius(count, maxCount float64) float64 {
	return math.Sqrt(Linear(count, 0, maxCount, MinHaloRadius*MinHaloRadius, MaxHaloRadius*MaxHaloRadius))
}

// EdgeWidth returns the stroke width for a journey line.
func EdgeWidth(count, maxCount float64) float64 {
	return Linear(count, 0, maxCount, MinEdgeWidth, MaxEdgeWidth)
}

// palette runs light to dark; one swatch per population bucket.
var palette = [7]lipgloss.Color{
	"#F8F8E8",
	"#E8E3C9",
	"#D5C9A5",
	"#BFA87F",
	"#A5855C",
	"#875F3D",
	"#653A24",
}

// PaletteSize is the number of discrete population color buckets.
const PaletteSize = len(palette)

// Palette returns the ordered swatches for the population legend.
func Palette() []lipgloss.Color {
	out := make([]lipgloss.Color, PaletteSize)
	copy(out, palette[:])
	return out
}

// PopulationIndex buckets a population count into [0, PaletteSize-1].
// The top bucket is clamped so count == maxCount (or anything above)
// stays in range.
func PopulationIndex(count, maxCount float64) int {
	i := int(math.Round(Linear(count, 0, maxCount, 0, float64(PaletteSize))))
	if i < 0 {
		i = 0
	}
	if i >= PaletteSize {
		i = PaletteSize - 1
	}
	return i
}

// PopulationColor returns the swatch for a population count.
func PopulationColor(count, maxCount float64) lipgloss.Color {
	return palette[PopulationIndex(count, maxCount)]
}
