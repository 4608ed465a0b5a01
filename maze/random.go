package maze

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"slices"
	"time"

	"github.com/zyedidia/generic/mapset"
)

// Randomizer is the source of every random decision made by the generator and
// the view helpers. Implementations need not be safe for concurrent use.
type Randomizer interface {
	// Int returns a uniform integer in [0, max]. Int(0) is always 0.
	Int(max int) int
	// Bool returns a uniform boolean.
	Bool() bool
	// IntExcluding returns a uniform integer in [0, max] that is not in excluding,
	// or -1 when every candidate is excluded.
	IntExcluding(max int, excluding mapset.Set[int]) int
	// Opening returns a random cell on the outer boundary of dims.
	Opening(dims Dimensions) []int
	// OpeningExcluding is Opening but never returns excluding.
	OpeningExcluding(dims Dimensions, excluding []int) []int
}

var _ Randomizer = &Random{}

// Random is a Randomizer backed by math/rand.
type Random struct {
	rng  *rand.Rand
	seed int64
}

// NewRandom creates a Random. A zero seed picks a fresh one.
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = newSeed()
	}
	return &Random{rng: rand.New(rand.NewSource(seed)), seed: seed}
}

// Seed returns the seed the generator was created with.
func (r *Random) Seed() int64 {
	return r.seed
}

func newSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	if s := int64(binary.LittleEndian.Uint64(b[:])); s != 0 {
		return s
	}
	return 1
}

// Int returns a uniform integer in [0, max].
func (r *Random) Int(max int) int {
	if max <= 0 {
		return 0
	}
	return r.rng.Intn(max + 1)
}

// Bool returns a uniform boolean.
func (r *Random) Bool() bool {
	return r.rng.Intn(2) == 1
}

// IntExcluding returns a uniform integer in [0, max] outside excluding, or -1.
func (r *Random) IntExcluding(max int, excluding mapset.Set[int]) int {
	candidates := make([]int, 0, max+1)
	for v := 0; v <= max; v++ {
		if !excluding.Has(v) {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		return -1
	}
	return candidates[r.rng.Intn(len(candidates))]
}

// Opening picks a random axis and side, then random values on the other axes.
func (r *Random) Opening(dims Dimensions) []int {
	coord := make([]int, len(dims))
	for d, e := range dims {
		coord[d] = r.rng.Intn(e)
	}
	axis := r.rng.Intn(len(dims))
	if r.Bool() {
		coord[axis] = dims[axis] - 1
	} else {
		coord[axis] = 0
	}
	return coord
}

// OpeningExcluding draws openings until one differs from excluding. Both corner
// cells 0 and CellCount-1 are reachable, so a maze with two or more cells
// always terminates.
func (r *Random) OpeningExcluding(dims Dimensions, excluding []int) []int {
	for {
		if c := r.Opening(dims); !slices.Equal(c, excluding) {
			return c
		}
	}
}
