package fractal

import "github.com/BikS2013/mandelbrot/engine/viewport"

// Location is a named preset view over a notable region of the set.
type Location struct {
	Name string
	View viewport.Viewport
}

// Classic landmarks, reachable from the viewer's quick-jump keys.
var (
	// Home – the whole set
	Home = Location{
		Name: "Home",
		View: viewport.Default(),
	}

	// Seahorse Valley – dense filaments and repeating seahorse curls
	SeahorseValley = Location{
		Name: "Seahorse Valley",
		View: viewport.Viewport{CenterX: -0.75, CenterY: 0.1, Zoom: 40},
	}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Location{
		Name: "Elephant Valley",
		View: viewport.Viewport{CenterX: -1.8, CenterY: -0.06, Zoom: 40},
	}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Location{
		Name: "Spiral Minibrot",
		View: viewport.Viewport{CenterX: -0.74275, CenterY: 0.13175, Zoom: 2600},
	}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Location{
		Name: "Triple Spiral",
		View: viewport.Viewport{CenterX: -0.7465, CenterY: 0.0965, Zoom: 1300},
	}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Location{
		Name: "Valley of the Dragon",
		View: viewport.Viewport{CenterX: -0.7375, CenterY: 0.1825, Zoom: 800},
	}
)

// Locations returns the quick-jump presets in keyboard order.
func Locations() []Location {
	return []Location{
		SeahorseValley,
		ElephantValley,
		SpiralMinibrot,
		TripleSpiral,
		ValleyOfTheDragon,
	}
}
