// File: percolation/example_test.go
package percolation_test

import (
	"fmt"

	"github.com/katalvlaran/porenet/core"
	"github.com/katalvlaran/porenet/percolation"
)

// ExampleEngine_Run demonstrates the minimal breakthrough experiment:
// two pores, one throat with entry pressure 5, swept at {1,3,5,7}.
// The throat admits at 5, connecting inlet to outlet, so the network
// percolates at 5 and the intrusion curve steps from 0 to 1 there.
func ExampleEngine_Run() {
	net := core.NewNetwork(2, 1)
	inlet := core.NewPore(0, 0, 0)
	inlet.Volume = 1
	outlet := core.NewPore(1, 0, 0)
	outlet.Volume = 1
	net.AddPore(inlet)
	net.AddPore(outlet)
	_, _ = net.AddThroat(0, 1, core.NewThroat(1, 1, 1))
	_ = net.SetThroatEntryPressure(0, 5)

	eng, _ := percolation.NewEngine(net)
	_ = eng.Configure(percolation.Bond, []int{0}, []int{1})
	res, _ := eng.Run(percolation.Pressures(1, 3, 5, 7))

	fmt.Println("threshold:", res.Threshold)
	for _, pt := range res.Curve {
		fmt.Printf("p=%v saturation=%v\n", pt.Pressure, pt.Saturation)
	}

	// Output:
	// threshold: 5
	// p=1 saturation=0
	// p=3 saturation=0
	// p=5 saturation=1
	// p=7 saturation=1
}
