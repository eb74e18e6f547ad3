package placement_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/floorplan/layout"
	"github.com/katalvlaran/floorplan/placement"
)

// ExampleSynthesize places a living room and a kitchen.
func ExampleSynthesize() {
	specs := []layout.RoomSpec{{Type: "living", Area: 24}, {Type: "kitchen", Area: 9}}
	res, err := placement.Synthesize(specs, rand.New(rand.NewSource(42)))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, r := range res.Rooms {
		fmt.Printf("%s %s %.0f\n", r.Name, r.Zone, r.Area())
	}
	// Output:
	// living_1 public 24
	// kitchen_1 semi_public 9
}
