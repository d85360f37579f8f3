package common

import "math"

const (
	TwoPi   = math.Pi * 2
	OneHalf = 1.0 / 2.0 // 0.5

	// ArcSegments is how many straight segments approximate a full ellipse.
	ArcSegments = 96
)

// Sincos32 is math.Sincos narrowed to canvas precision.
func Sincos32(angle float64) (sin, cos float32) {
	s, c := math.Sincos(angle)
	return float32(s), float32(c)
}
