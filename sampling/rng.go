package sampling

// RNG policy shared by every sampler.
//
//   - Determinism: same seed ⇒ identical draws across platforms.
//   - math/rand.Rand is NOT goroutine-safe; Fork derives independent streams.

import "math/rand"

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier with a
// SplitMix64-style finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// deriveRNG creates an independent stream from base and stream. base==nil
// uses defaultRNGSeed as the parent; otherwise base.Int63() is consumed once
// so repeated derivations with the same stream id still differ.
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	parent := defaultRNGSeed
	if base != nil {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}
