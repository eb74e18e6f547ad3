package zone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floorplan/zone"
)

// TestClassify covers every listed type plus normalisation and the fallback.
func TestClassify(t *testing.T) {
	cases := []struct {
		in   string
		want zone.Zone
	}{
		{"living", zone.Public},
		{"dining", zone.Public},
		{"hall", zone.Public},
		{"kitchen", zone.SemiPublic},
		{"bedroom", zone.Private},
		{"study", zone.Private},
		{"bathroom", zone.Service},
		{"storage", zone.Service},
		{"utility", zone.Service},
		{"balcony", zone.Outdoor},
		{"garden", zone.Outdoor},
		{"  Living ", zone.Public},
		{"pooja", zone.Other},
		{"", zone.Other},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, zone.Classify(tc.in))
		})
	}
}

// TestOrdered checks the hub zone leads and the slice is a copy.
func TestOrdered(t *testing.T) {
	o := zone.Ordered()
	require.Len(t, o, 6)
	assert.Equal(t, zone.Public, o[0])
	assert.Equal(t, zone.Other, o[5])

	o[0] = zone.Other
	assert.Equal(t, zone.Public, zone.Ordered()[0], "Ordered must not expose internal state")
	assert.Equal(t, 0, zone.Public.Rank())
	assert.Equal(t, 5, zone.Zone("bogus").Rank())
}

// TestGroup verifies stable grouping.
func TestGroup(t *testing.T) {
	types := []string{"bedroom", "living", "bathroom", "bedroom", "dining"}
	g := zone.Group(len(types), func(i int) string { return types[i] })

	assert.Equal(t, []int{1, 4}, g[zone.Public])
	assert.Equal(t, []int{0, 3}, g[zone.Private])
	assert.Equal(t, []int{2}, g[zone.Service])
	assert.Empty(t, g[zone.Outdoor])
}
