package scoring_test

import (
	"fmt"

	"github.com/katalvlaran/floorplan/geometry"
	"github.com/katalvlaran/floorplan/scoring"
)

// ExampleEvaluate scores an L-shaped two-room footprint.
func ExampleEvaluate() {
	l := build(geometry.NewRect(0, 0, 6, 4), geometry.NewRect(0, 4, 3, 7))
	fmt.Printf("%+v\n", scoring.Evaluate(l))
	fmt.Println(scoring.Structural(1, true))
	// Output:
	// {Efficiency:88 Privacy:30 Circulation:86 Daylight:31 Average:59}
	// 90
}
