package components

import "image/color"

// Frog marks a passive creature the player herds out of bounds.
type Frog struct {
	Index int        // spawn order, stable for the process lifetime
	Tint  color.RGBA // display color
}

// Ball marks a thrown projectile.
type Ball struct {
	Serial  uint64 // throw number, increasing
	Strikes int    // frogs hit so far
}
