package core

import "math/rand"

// Sampler provides random sampling for ray generation.
// Can be swapped out for deterministic testing or different sampling patterns.
// A Sampler belongs to exactly one worker and is never shared.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own stream seeded from seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// SampleInUnitDisk returns a uniformly distributed point inside the unit disk
// in the z = 0 plane, using rejection sampling over [-1,1]².
func SampleInUnitDisk(sampler Sampler) Vec3 {
	for {
		sample := sampler.Get2D()
		p := NewVec3(2*sample.X-1, 2*sample.Y-1, 0)
		if p.Dot(p) < 1.0 {
			return p
		}
	}
}

// SampleRange returns a uniform value in [lo, hi]
func SampleRange(sampler Sampler, lo, hi float64) float64 {
	return lo + (hi-lo)*sampler.Get1D()
}
