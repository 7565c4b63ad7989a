package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// clamp clamps v between minVal and maxVal.
func clamp(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// clamp01 clamps v to the [0, 1] range.
func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

// LateralDistance returns the distance from the origin to pos projected on
// whichever horizontal axis gives the larger distance.
func LateralDistance(pos r3.Vec) float64 {
	return math.Max(math.Abs(pos.X), math.Abs(pos.Z))
}

// Horizontal drops the vertical component of v.
func Horizontal(v r3.Vec) r3.Vec {
	return r3.Vec{X: v.X, Z: v.Z}
}
