package world

import (
	"fmt"
	"math"

	perlin "github.com/aquilax/go-perlin"
)

// NoiseSource samples a deterministic, continuous scalar field in [-1, 1].
type NoiseSource interface {
	Noise2D(x, z float64) float64
	Noise3D(x, y, z float64) float64
}

const (
	NoiseKindPerlin = "perlin"
	NoiseKindValue  = "value"
)

// NewNoiseSource builds a sampler of the named kind. An empty kind means perlin.
func NewNoiseSource(kind string, seed int64, frequency float64) (NoiseSource, error) {
	switch kind {
	case "", NoiseKindPerlin:
		return NewPerlinNoise(seed, frequency), nil
	case NoiseKindValue:
		return NewValueNoise(seed, frequency), nil
	default:
		return nil, fmt.Errorf("unknown noise kind %q", kind)
	}
}

// Octave parameters shared by both samplers.
const (
	noiseOctaves     = 3
	noisePersistence = 0.5
	noiseLacunarity  = 2.0
)

// PerlinNoise is gradient noise from go-perlin scaled by a sampling frequency.
type PerlinNoise struct {
	gen       *perlin.Perlin
	frequency float64
}

// NewPerlinNoise returns a seeded Perlin sampler.
func NewPerlinNoise(seed int64, frequency float64) *PerlinNoise {
	return &PerlinNoise{
		gen:       perlin.NewPerlin(1/noisePersistence, noiseLacunarity, noiseOctaves, seed),
		frequency: frequency,
	}
}

func (p *PerlinNoise) Noise2D(x, z float64) float64 {
	return clampUnit(p.gen.Noise2D(x*p.frequency, z*p.frequency))
}

func (p *PerlinNoise) Noise3D(x, y, z float64) float64 {
	return clampUnit(p.gen.Noise3D(x*p.frequency, y*p.frequency, z*p.frequency))
}

// ValueNoise is hashed lattice value noise with octaves. No tables, so
// construction is free and results are stable across platforms.
type ValueNoise struct {
	seed      int64
	frequency float64
}

// NewValueNoise returns a seeded value-noise sampler.
func NewValueNoise(seed int64, frequency float64) *ValueNoise {
	return &ValueNoise{seed: seed, frequency: frequency}
}

func (v *ValueNoise) Noise2D(x, z float64) float64 {
	n := octaveNoise2D(x*v.frequency, z*v.frequency, v.seed, noiseOctaves, noisePersistence, noiseLacunarity)
	return clampUnit(n*2 - 1)
}

func (v *ValueNoise) Noise3D(x, y, z float64) float64 {
	n := octaveNoise3D(x*v.frequency, y*v.frequency, z*v.frequency, v.seed, noiseOctaves, noisePersistence, noiseLacunarity)
	return clampUnit(n*2 - 1)
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

// fade is the quintic smoothstep 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// SplitMix64 finalizer.
func mix64(v uint64) uint64 {
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	return v ^ (v >> 31)
}

func hash2(x, z, seed int64) uint64 {
	return mix64(uint64(x)*0x9E3779B97F4A7C15 + uint64(z)*0x6C62272E07BB0142 + uint64(seed))
}

func hash3(x, y, z, seed int64) uint64 {
	return mix64(uint64(x)*0x9E3779B97F4A7C15 + uint64(y)*0x517CC1B727220A95 + uint64(z)*0x6C62272E07BB0142 + uint64(seed))
}

// lattice maps a hash to [0,1].
func lattice(h uint64) float64 {
	return float64(h&0xFFFFFFFF) / float64(0xFFFFFFFF)
}

func valueNoise2D(x, z float64, seed int64) float64 {
	x0, z0 := math.Floor(x), math.Floor(z)
	ix, iz := int64(x0), int64(z0)
	fx, fz := fade(x-x0), fade(z-z0)

	v00 := lattice(hash2(ix, iz, seed))
	v10 := lattice(hash2(ix+1, iz, seed))
	v01 := lattice(hash2(ix, iz+1, seed))
	v11 := lattice(hash2(ix+1, iz+1, seed))

	return lerp(lerp(v00, v10, fx), lerp(v01, v11, fx), fz)
}

func valueNoise3D(x, y, z float64, seed int64) float64 {
	x0, y0, z0 := math.Floor(x), math.Floor(y), math.Floor(z)
	ix, iy, iz := int64(x0), int64(y0), int64(z0)
	fx, fy, fz := fade(x-x0), fade(y-y0), fade(z-z0)

	corner := func(dx, dy, dz int64) float64 {
		return lattice(hash3(ix+dx, iy+dy, iz+dz, seed))
	}

	i00 := lerp(corner(0, 0, 0), corner(1, 0, 0), fx)
	i10 := lerp(corner(0, 1, 0), corner(1, 1, 0), fx)
	i01 := lerp(corner(0, 0, 1), corner(1, 0, 1), fx)
	i11 := lerp(corner(0, 1, 1), corner(1, 1, 1), fx)

	return lerp(lerp(i00, i10, fy), lerp(i01, i11, fy), fz)
}

func octaveNoise2D(x, z float64, seed int64, octaves int, persistence, lacunarity float64) float64 {
	amplitude, frequency := 1.0, 1.0
	sum, norm := 0.0, 0.0
	for i := 0; i < octaves; i++ {
		sum += valueNoise2D(x*frequency, z*frequency, seed+int64(i*131)) * amplitude
		norm += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}

func octaveNoise3D(x, y, z float64, seed int64, octaves int, persistence, lacunarity float64) float64 {
	amplitude, frequency := 1.0, 1.0
	sum, norm := 0.0, 0.0
	for i := 0; i < octaves; i++ {
		sum += valueNoise3D(x*frequency, y*frequency, z*frequency, seed+int64(i*131)) * amplitude
		norm += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}
