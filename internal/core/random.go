package core

import "math"

// Rand is the random source consumed by spawning helpers.
// *math/rand.Rand satisfies it; games create one per session from
// RuntimeConfig.Seed so runs are reproducible.
type Rand interface {
	Float64() float64
}

// RandomPosition returns a point uniformly distributed over
// [0, width) x [0, height).
func RandomPosition(rng Rand, width, height float64) Vec {
	return Vec{
		X: Wrap(rng.Float64()*width, 0, width),
		Y: Wrap(rng.Float64()*height, 0, height),
	}
}

// RandomVelocity returns a vector whose magnitude is uniform in
// [minSpeed, maxSpeed] and whose direction is uniform over a full turn.
func RandomVelocity(rng Rand, minSpeed, maxSpeed float64) Vec {
	speed := minSpeed + rng.Float64()*(maxSpeed-minSpeed)
	angle := rng.Float64() * 2 * math.Pi
	return Polar(speed, angle)
}
