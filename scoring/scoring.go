// Package scoring ranks layouts by footprint compactness, room separation
// and exterior exposure, and computes the structural rule score.
package scoring

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/floorplan/geometry"
	"github.com/katalvlaran/floorplan/layout"
)

// Metric weights.
const (
	PrivacyPerMetre     = 8.0
	CirculationPerMetre = 3.5
	DaylightPerMetre    = 1.2

	RejectedPenalty = 10
	EntrancePenalty = 20

	// fallbackHullRatio approximates the hull when the union fails.
	fallbackHullRatio = 1.2
)

// Features are the geometric aggregates metrics are computed from,
// rounded to two decimals.
type Features struct {
	TotalArea    float64 `json:"total_area"`
	HullArea     float64 `json:"convex_hull_area"`
	Exposure     float64 `json:"exterior_exposure"`
	AvgDistance  float64 `json:"avg_distance"`
	RoomCount    int     `json:"room_count"`
	Approximated bool    `json:"approximated,omitempty"`
}

// Scores are the four quality metrics and their mean, each in [0,100].
type Scores struct {
	Efficiency  int `json:"efficiency"`
	Privacy     int `json:"privacy"`
	Circulation int `json:"circulation"`
	Daylight    int `json:"daylight"`
	Average     int `json:"average"`
}

// Extract measures the union of the room polygons of l. If the overlay
// fails, area and exposure fall back to per-room sums and the hull to a
// fixed ratio of the area.
func Extract(l *layout.Layout) Features {
	rooms := l.RoomList()
	if len(rooms) == 0 {
		return Features{}
	}

	var f Features
	f.RoomCount = len(rooms)
	polys := make([]orb.Polygon, len(rooms))
	for i, r := range rooms {
		polys[i] = r.Polygon()
	}
	if fp, err := geometry.MeasureFootprint(polys); err == nil {
		f.TotalArea, f.HullArea, f.Exposure = fp.Area, fp.HullArea, fp.Perimeter
	} else {
		for _, r := range rooms {
			f.TotalArea += r.Area()
			f.Exposure += r.Rect.Perimeter()
		}
		f.HullArea = f.TotalArea * fallbackHullRatio
		f.Approximated = true
	}

	if n := len(rooms); n > 1 {
		var sum float64
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				a, b := rooms[i].Rect.Center(), rooms[j].Rect.Center()
				sum += math.Hypot(a[0]-b[0], a[1]-b[1])
			}
		}
		f.AvgDistance = sum / float64(n*(n-1)/2)
	}

	f.TotalArea = round2(f.TotalArea)
	f.HullArea = round2(f.HullArea)
	f.Exposure = round2(f.Exposure)
	f.AvgDistance = round2(f.AvgDistance)

	return f
}

// Score maps features to metrics. privacy rewards separation while
// circulation penalises it; both read the same distance.
func Score(f Features) Scores {
	if f.RoomCount == 0 {
		return Scores{}
	}
	efficiency := 100.0
	if f.HullArea > 0 {
		efficiency = 100 * f.TotalArea / f.HullArea
	}
	privacy := math.Min(100, f.AvgDistance*PrivacyPerMetre)
	circulation := math.Max(0, 100-f.AvgDistance*CirculationPerMetre)
	daylight := math.Min(100, f.Exposure*DaylightPerMetre)

	return Scores{
		Efficiency:  clamp(int(efficiency)),
		Privacy:     clamp(int(privacy)),
		Circulation: clamp(int(circulation)),
		Daylight:    clamp(int(daylight)),
		Average:     clamp(int((efficiency + privacy + circulation + daylight) / 4)),
	}
}

// Evaluate is Score(Extract(l)).
func Evaluate(l *layout.Layout) Scores { return Score(Extract(l)) }

// Structural starts at 100, subtracts 10 per rejected adjacency and 20
// when no entrance was cut, and clamps to [0,100].
func Structural(rejected int, entrance bool) int {
	s := 100 - RejectedPenalty*rejected
	if !entrance {
		s -= EntrancePenalty
	}

	return clamp(s)
}

func clamp(v int) int { return max(0, min(100, v)) }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
