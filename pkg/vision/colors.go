package vision

import (
	"fmt"

	"gocv.io/x/gocv"
)

// ColorBand is a named HSV color range used to segment the marker.
// Bounds are inclusive on both ends, each component in [0,255].
type ColorBand struct {
	Name  string
	Lower gocv.Scalar
	Upper gocv.Scalar
}

// Marker colors supported by the exercises. The bounds were measured
// against the physical markers used on the tabletop.
var (
	// Yellow is the default marker color.
	Yellow = ColorBand{
		Name:  "yellow",
		Lower: gocv.NewScalar(15, 210, 20, 0),
		Upper: gocv.NewScalar(35, 255, 255, 0),
	}

	// Blue works well under most lighting.
	Blue = ColorBand{
		Name:  "blue",
		Lower: gocv.NewScalar(110, 50, 50, 0),
		Upper: gocv.NewScalar(130, 255, 255, 0),
	}

	// Black is not recommended: it picks up large amounts of noise.
	Black = ColorBand{
		Name:  "black",
		Lower: gocv.NewScalar(60, 15, 0, 0),
		Upper: gocv.NewScalar(105, 170, 110, 0),
	}
)

var colorsByName = map[string]ColorBand{
	"yellow": Yellow,
	"blue":   Blue,
	"black":  Black,
}

// ParseColor resolves a color name to its band.
// Unknown names are a configuration error.
func ParseColor(name string) (ColorBand, error) {
	band, ok := colorsByName[name]
	if !ok {
		return ColorBand{}, fmt.Errorf("vision: unknown marker color %q", name)
	}
	return band, nil
}

// ColorNames returns the supported color names.
func ColorNames() []string {
	return []string{"yellow", "blue", "black"}
}
