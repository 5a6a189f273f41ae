package dataset

import (
	"fmt"

	"baymap/internal/geo"
)

// Station is a rail station with its aggregated ridership.
// Count is the sum of the counts of all journeys touching the station;
// journey counts are daily averages, so the sum can be fractional.
type Station struct {
	Name      string
	Code      string // two-character station code, unique
	Latitude  float64
	Longitude float64
	Journeys  []Journey
	Count     float64
}

// Journey is an undirected weighted edge between two stations. The
// upstream aggregation collapses both travel directions into a single
// record, so Source/Destination order carries no meaning.
type Journey struct {
	Source      string
	Destination string
	Count       float64
}

// Touches reports whether code is one of the journey's endpoints.
func (j Journey) Touches(code string) bool {
	return j.Source == code || j.Destination == code
}

// Other returns the endpoint opposite to code. It is an error to ask
// with a code that is not part of the journey.
func (j Journey) Other(code string) (string, error) {
	switch code {
	case j.Source:
		return j.Destination, nil
	case j.Destination:
		return j.Source, nil
	default:
		return "", fmt.Errorf("journey %s-%s does not touch %q", j.Source, j.Destination, code)
	}
}

// PopulationCell is an aggregated population estimate for a geohash
// grid square, located at the square's centroid.
type PopulationCell struct {
	Geohash   string
	Count     float64
	Latitude  float64
	Longitude float64
}

// Dataset holds everything the map draws. It is assembled once at
// startup and never mutated; all accessors are read-only.
type Dataset struct {
	Stations   []Station
	Journeys   []Journey
	Population []PopulationCell
	Land       [][2]float64 // ordered lon/lat outline points

	byCode     map[string]int
	maxStation float64
	maxJourney float64
	maxPop     float64
}

// New assembles a dataset from its raw tables. Every journey endpoint
// must resolve to a station; a dangling code means the source data is
// corrupt and assembly fails.
func New(stations []Station, journeys []Journey, population []PopulationCell, land [][2]float64) (*Dataset, error) {
	d := &Dataset{
		Stations:   stations,
		Journeys:   journeys,
		Population: population,
		Land:       land,
		byCode:     make(map[string]int, len(stations)),
	}
	for i, s := range stations {
		if _, dup := d.byCode[s.Code]; dup {
			return nil, fmt.Errorf("duplicate station code %q", s.Code)
		}
		d.byCode[s.Code] = i
	}
	for _, j := range journeys {
		for _, code := range []string{j.Source, j.Destination} {
			i, ok := d.byCode[code]
			if !ok {
				return nil, fmt.Errorf("journey %s-%s references unknown station %q", j.Source, j.Destination, code)
			}
			d.Stations[i].Journeys = append(d.Stations[i].Journeys, j)
			d.Stations[i].Count += j.Count
		}
		if j.Count > d.maxJourney {
			d.maxJourney = j.Count
		}
	}
	for _, s := range d.Stations {
		if s.Count > d.maxStation {
			d.maxStation = s.Count
		}
	}
	for _, p := range population {
		if p.Count > d.maxPop {
			d.maxPop = p.Count
		}
	}
	return d, nil
}

// Station looks a station up by its two-character code. An unknown
// code signals a data-integrity bug; callers treat it as fatal.
func (d *Dataset) Station(code string) (*Station, error) {
	i, ok := d.byCode[code]
	if !ok {
		return nil, fmt.Errorf("unknown station code %q", code)
	}
	return &d.Stations[i], nil
}

func (d *Dataset) MaxStationCount() float64 { return d.maxStation }
func (d *Dataset) MaxJourneyCount() float64 { return d.maxJourney }
func (d *Dataset) MaxPopulation() float64   { return d.maxPop }

// Bounds is the lon/lat box enclosing the land outline and all
// stations. Population centroids are excluded so far-flung grid cells
// cannot stretch the view.
func (d *Dataset) Bounds() geo.Bounds {
	var b geo.Bounds
	first := true
	grow := func(lon, lat float64) {
		if first {
			b = geo.Bounds{MinLon: lon, MinLat: lat, MaxLon: lon, MaxLat: lat}
			first = false
			return
		}
		if lon < b.MinLon {
			b.MinLon = lon
		}
		if lat < b.MinLat {
			b.MinLat = lat
		}
		if lon > b.MaxLon {
			b.MaxLon = lon
		}
		if lat > b.MaxLat {
			b.MaxLat = lat
		}
	}
	for _, p := range d.Land {
		grow(p[0], p[1])
	}
	for _, s := range d.Stations {
		grow(s.Longitude, s.Latitude)
	}
	return b
}
