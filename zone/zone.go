// Package zone classifies room types into coarse privacy zones and fixes
// the order in which zones are placed.
//
// The lookup tables are immutable: Classify is a pure switch over the room
// type, so it is safe for concurrent use without synchronization.
package zone

import "strings"

// Zone is a coarse privacy classification of a room type.
type Zone string

const (
	// Public rooms form the core of the plan; the first one is the hub.
	Public Zone = "public"
	// SemiPublic rooms (kitchen) attach to the public core.
	SemiPublic Zone = "semi_public"
	// Private rooms (bedroom, study) branch from the hub.
	Private Zone = "private"
	// Service rooms (bathroom, storage, utility) are terminal nodes.
	Service Zone = "service"
	// Outdoor rooms (balcony, garden, terrace) sit on the exterior.
	Outdoor Zone = "outdoor"
	// Other holds every room type not listed above.
	Other Zone = "other"
)

// ordered is the placement order of zones, hub zone first.
var ordered = [...]Zone{Public, SemiPublic, Private, Service, Outdoor, Other}

// Ordered returns the zones in placement order.
// The returned slice is a fresh copy.
func Ordered() []Zone {
	out := make([]Zone, len(ordered))
	copy(out, ordered[:])

	return out
}

// String implements fmt.Stringer.
func (z Zone) String() string { return string(z) }

// Rank returns the position of z in placement order (0 = public).
// Unknown values rank with Other.
func (z Zone) Rank() int {
	for i, o := range ordered {
		if o == z {
			return i
		}
	}

	return len(ordered) - 1
}

// Classify maps a room type to its zone. The comparison is case- and
// whitespace-insensitive; unknown types map to Other.
func Classify(roomType string) Zone {
	switch strings.ToLower(strings.TrimSpace(roomType)) {
	case "living", "dining", "hall":
		return Public
	case "kitchen":
		return SemiPublic
	case "bedroom", "study":
		return Private
	case "bathroom", "storage", "utility", "laundry", "pantry":
		return Service
	case "balcony", "garden", "terrace":
		return Outdoor
	default:
		return Other
	}
}

// IsOutdoor reports whether roomType belongs to the Outdoor zone.
func IsOutdoor(roomType string) bool { return Classify(roomType) == Outdoor }

// Group partitions indices 0..n-1 by the zone of typeOf(i), preserving the
// original relative order inside each zone. The result is keyed by zone and
// is meant to be walked with Ordered().
func Group(n int, typeOf func(i int) string) map[Zone][]int {
	out := make(map[Zone][]int, len(ordered))
	for i := 0; i < n; i++ {
		z := Classify(typeOf(i))
		out[z] = append(out[z], i)
	}

	return out
}
