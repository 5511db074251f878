package core

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
	"math/rand/v2"
	"time"
)

// Source yields uniform draws in [0, 1). Implementations must replay the
// same sequence for the same seed and call count.
type Source interface {
	Float64() float64
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG from the provided 64-bit state.
func NewRNG(state uint64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(state, 0))}
}

// NewSeededRNG derives the generator state from seed. See DeriveState for
// the accepted seed kinds.
func NewSeededRNG(seed any) *RNG {
	return NewRNG(DeriveState(seed))
}

// Float64 returns the next uniform draw in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// DeriveState maps a seed onto a reproducible 64-bit generator state. Equal
// seeds always produce equal states; a string and its raw bytes agree. A nil
// seed draws fresh entropy instead, so two nil-seeded states are unrelated.
func DeriveState(seed any) uint64 {
	switch s := seed.(type) {
	case nil:
		return entropyState()
	case string:
		return hashBytes([]byte(s))
	case []byte:
		return hashBytes(s)
	case int:
		return uint64(int64(s))
	case int32:
		return uint64(int64(s))
	case int64:
		return uint64(s)
	case uint:
		return uint64(s)
	case uint32:
		return uint64(s)
	case uint64:
		return s
	case float32:
		return mix64(uint64(math.Float32bits(s)))
	case float64:
		return mix64(math.Float64bits(s))
	default:
		return hashBytes([]byte(fmt.Sprint(seed)))
	}
}

func hashBytes(b []byte) uint64 {
	h := fnv.New64a()
	h.Write(b)
	return h.Sum64()
}

// mix64 runs a SplitMix64-style avalanche so numerically close float seeds
// land on unrelated states.
func mix64(v uint64) uint64 {
	v += 0x9e3779b97f4a7c15
	v = (v ^ (v >> 30)) * 0xbf58476d1ce4e5b9
	v = (v ^ (v >> 27)) * 0x94d049bb133111eb
	return v ^ (v >> 31)
}

func entropyState() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(b[:])
}
