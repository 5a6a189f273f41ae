// Package geo converts geographic coordinates to pixel space.
package geo

// Bounds is a geographic bounding box in degrees.
type Bounds struct {
	MinLon float64
	MinLat float64
	MaxLon float64
	MaxLat float64
}

// Center returns the midpoint of the box.
func (b Bounds) Center() (lon, lat float64) {
	return (b.MinLon + b.MaxLon) / 2, (b.MinLat + b.MaxLat) / 2
}

// Projector maps lon/lat to pixel coordinates with an equirectangular
// approximation: a reference center point lands exactly on the pixel
// anchor and everything else scales linearly around it. Good enough for
// an extent the size of the Bay Area; no distortion correction.
type Projector struct {
	CenterLon float64
	CenterLat float64
	AnchorX   float64
	AnchorY   float64
	Scale     float64 // pixels per degree
}

// Project converts a lon/lat pair to pixel coordinates. Pixel y grows
// downward while latitude grows northward, hence the sign flip.
func (p Projector) Project(lon, lat float64) (x, y float64) {
	x = p.AnchorX + (lon-p.CenterLon)*p.Scale
	y = p.AnchorY - (lat-p.CenterLat)*p.Scale
	return x, y
}

// Fit derives a projector that centers b in a w-by-h pixel view and
// scales it to fit inside the given margin. A degenerate box gets unit
// scale rather than a divide-by-zero.
func Fit(b Bounds, w, h, margin float64) Projector {
	lon, lat := b.Center()
	p := Projector{
		CenterLon: lon,
		CenterLat: lat,
		AnchorX:   w / 2,
		AnchorY:   h / 2,
		Scale:     1,
	}
	dLon := b.MaxLon - b.MinLon
	dLat := b.MaxLat - b.MinLat
	if dLon <= 0 || dLat <= 0 {
		return p
	}
	sx := (w - 2*margin) / dLon
	sy := (h - 2*margin) / dLat
	if sx < sy {
		p.Scale = sx
	} else {
		p.Scale = sy
	}
	if p.Scale <= 0 {
		p.Scale = 1
	}
	return p
}
