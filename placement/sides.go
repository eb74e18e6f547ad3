package placement

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/floorplan/geometry"
)

// Side is a face of a reference room's bounding box.
type Side int

const (
	Right Side = iota
	Left
	Top
	Bottom
)

// allSides is the canonical candidate order; ties keep the earlier side.
var allSides = [4]Side{Right, Left, Top, Bottom}

func (s Side) String() string {
	switch s {
	case Right:
		return "right"
	case Left:
		return "left"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	}

	return "unknown"
}

// against returns the w×h rectangle flush with side s of ref, aligned to
// ref's minimum corner along the shared axis.
func (s Side) against(ref geometry.Rect, w, h float64) geometry.Rect {
	switch s {
	case Right:
		return geometry.NewRect(ref.MaxX, ref.MinY, ref.MaxX+w, ref.MinY+h)
	case Left:
		return geometry.NewRect(ref.MinX-w, ref.MinY, ref.MinX, ref.MinY+h)
	case Top:
		return geometry.NewRect(ref.MinX, ref.MaxY, ref.MinX+w, ref.MaxY+h)
	default:
		return geometry.NewRect(ref.MinX, ref.MinY-h, ref.MinX+w, ref.MinY)
	}
}

// compactSides orders sides so that growth keeps the footprint near square:
// a wide footprint grows vertically, a tall one horizontally, and a
// roughly square one in random order.
func compactSides(b *Builder, rng *rand.Rand) []Side {
	box, ok := b.Bounds()
	if !ok {
		return []Side{Right, Left, Top, Bottom}
	}
	aspect := box.Width() / (box.Height() + 1e-6)
	switch {
	case aspect > 1.2:
		return []Side{Top, Bottom, Right, Left}
	case aspect < 0.8:
		return []Side{Right, Left, Top, Bottom}
	}
	sides := []Side{Top, Bottom, Right, Left}
	rng.Shuffle(len(sides), func(i, j int) { sides[i], sides[j] = sides[j], sides[i] })

	return sides
}

// randomAspect draws a width/height ratio around base, clamped to [0.8, 2.0].
func randomAspect(rng *rand.Rand, base, variance float64) float64 {
	lo := max(0.8, base-variance)
	hi := min(2.0, base+variance)

	return lo + rng.Float64()*(hi-lo)
}

// dims returns width and height of a rectangle with the given area and aspect.
func dims(area, aspect float64) (w, h float64) {
	h = math.Sqrt(area / aspect)

	return aspect * h, h
}
