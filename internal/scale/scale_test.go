package scale

import (
	"math"
	"testing"
)

func TestLinear(t *testing.T) {
	if got := Linear(5, 0, 10, 0, 100); got != 50 {
		t.Errorf("Linear(5, 0..10, 0..100) = %v, want 50", got)
	}
	if got := Linear(0, 0, 10, 2, 4); got != 2 {
		t.Errorf("Linear at domain start = %v, want 2", got)
	}
	if got := Linear(10, 0, 10, 2, 4); got != 4 {
		t.Errorf("Linear at domain end = %v, want 4", got)
	}
}

func TestLinearDegenerateDomain(t *testing.T) {
	// collapsed domain must clamp to the range minimum, not divide by zero
	if got := Linear(3, 0, 0, 7, 9); got != 7 {
		t.Errorf("Linear with zero-width domain = %v, want 7", got)
	}
}

func TestHaloRadiusEndpoints(t *testing.T) {
	const maxCount = 2000.0
	if r := HaloRadius(0, maxCount); math.Abs(r-MinHaloRadius) > 1e-9 {
		t.Errorf("HaloRadius(0) = %v, want %v", r, MinHaloRadius)
	}
	if r := HaloRadius(maxCount, maxCount); math.Abs(r-MaxHaloRadius) > 1e-9 {
		t.Errorf("HaloRadius(max) = %v, want %v", r, MaxHaloRadius)
	}
}

func TestHaloRadiusMonotone(t *testing.T) {
	const maxCount = 1234.0
	prev := -1.0
	for i := 0; i <= 100; i++ {
		r := HaloRadius(maxCount*float64(i)/100, maxCount)
		if r < prev {
			t.Fatalf("HaloRadius decreased at sample %d: %v < %v", i, r, prev)
		}
		prev = r
	}
}

func TestHaloAreaLinearInCount(t *testing.T) {
	// r^2 must be linear in the count so halo area tracks ridership
	const maxCount = 800.0
	r0 := HaloRadius(0, maxCount)
	r1 := HaloRadius(maxCount, maxCount)
	rh := HaloRadius(maxCount/2, maxCount)
	wantSq := (r0*r0 + r1*r1) / 2
	if math.Abs(rh*rh-wantSq) > 1e-9 {
		t.Errorf("HaloRadius(max/2)^2 = %v, want midpoint %v", rh*rh, wantSq)
	}
}

func TestHaloRadiusDegenerateMax(t *testing.T) {
	if r := HaloRadius(0, 0); math.Abs(r-MinHaloRadius) > 1e-9 {
		t.Errorf("HaloRadius with zero max = %v, want %v", r, MinHaloRadius)
	}
}

func TestEdgeWidthEndpoints(t *testing.T) {
	const maxCount = 500.0
	if w := EdgeWidth(0, maxCount); w != MinEdgeWidth {
		t.Errorf("EdgeWidth(0) = %v, want %v", w, float64(MinEdgeWidth))
	}
	if w := EdgeWidth(maxCount, maxCount); w != MaxEdgeWidth {
		t.Errorf("EdgeWidth(max) = %v, want %v", w, float64(MaxEdgeWidth))
	}
	if w := EdgeWidth(10, 0); w != MinEdgeWidth {
		t.Errorf("EdgeWidth with zero max = %v, want %v", w, float64(MinEdgeWidth))
	}
}

func TestPopulationIndexInRange(t *testing.T) {
	const maxCount = 9000.0
	for i := 0; i <= 200; i++ {
		count := maxCount * float64(i) / 100 // runs up to 2x the max
		idx := PopulationIndex(count, maxCount)
		if idx < 0 || idx >= PaletteSize {
			t.Fatalf("PopulationIndex(%v) = %d, outside [0, %d)", count, idx, PaletteSize)
		}
	}
}

func TestPopulationIndexAtMax(t *testing.T) {
	// count == max must clamp into the top bucket, not index past it
	if idx := PopulationIndex(100, 100); idx != PaletteSize-1 {
		t.Errorf("PopulationIndex(max) = %d, want %d", idx, PaletteSize-1)
	}
}

func TestPopulationIndexDegenerateMax(t *testing.T) {
	if idx := PopulationIndex(5, 0); idx != 0 {
		t.Errorf("PopulationIndex with zero max = %d, want 0", idx)
	}
}

func TestPaletteOrderStable(t *testing.T) {
	p := Palette()
	if len(p) != PaletteSize {
		t.Fatalf("Palette() has %d swatches, want %d", len(p), PaletteSize)
	}
	if PopulationColor(0, 100) != p[0] {
		t.Errorf("lowest bucket color = %v, want first swatch %v", PopulationColor(0, 100), p[0])
	}
	if PopulationColor(100, 100) != p[PaletteSize-1] {
		t.Errorf("top bucket color = %v, want last swatch %v", PopulationColor(100, 100), p[PaletteSize-1])
	}
}
