package quasirand

import (
	"time"

	"golang.org/x/exp/rand"
)

// NewRand turns seed into a *rand.Rand, following the same tri-state
// contract as numpy's check_random_state (see
// _examples/original_source/scipy/stats/_qmc.py check_random_state):
//
//   - nil creates a fresh generator seeded from the current time;
//   - an int, int64, or uint64 seeds a fresh, independent generator;
//   - an existing *rand.Rand or rand.Source is used by reference, so that
//     callers sharing a generator observe a single advancing stream.
//
// Any other type returns ErrBadSeed.
func NewRand(seed interface{}) (*rand.Rand, error) {
	switch s := seed.(type) {
	case nil:
		return rand.New(rand.NewSource(uint64(time.Now().UnixNano()))), nil
	case int:
		return rand.New(rand.NewSource(uint64(s))), nil
	case int64:
		return rand.New(rand.NewSource(uint64(s))), nil
	case uint64:
		return rand.New(rand.NewSource(s)), nil
	case *rand.Rand:
		return s, nil
	case rand.Source:
		return rand.New(s), nil
	default:
		return nil, ErrBadSeed
	}
}

// seedCopy returns a value suitable for re-seeding a fresh generator that
// must reproduce the same stream as one derived from seed, without aliasing
// any mutable state seed itself might hold. This is the Go counterpart of
// the original's copy.deepcopy(seed) in Halton.random (see
// _examples/original_source/scipy/stats/_qmc.py:772-776): an integer seed is
// copied by value, and an existing generator is snapshotted into a fresh,
// independently-advancing copy seeded from it once, at construction time.
func seedCopy(seed interface{}) interface{} {
	switch s := seed.(type) {
	case *rand.Rand:
		// Snapshot: draw a fresh 64-bit seed from s once, deterministically
		// deriving an independent stream rather than sharing s's cursor.
		return int64(s.Uint64())
	default:
		return s
	}
}
