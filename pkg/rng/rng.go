// Package rng provides the reproducible pseudo-random source used by every
// stochastic operator in the engine: tournament selection, variation
// kernels, and the benchmark harness's demo solutions.
//
// Unlike Rust, Go has no ambient thread-local storage, so the "thread-local,
// seedable PRNG" from the original source (repro_thread_rng.rs) is realized
// here as a single mutex-guarded, process-wide generator. It is seeded
// exactly once, from EVIOLITE_SEED if present and parseable, otherwise from
// crypto/rand, and is never reseeded afterward. Because the engine's own
// concurrency model confines variation and selection to the driver
// goroutine (evaluation, the only parallel phase, never consumes
// randomness), this single generator sees none of the contention a true
// thread-local would have avoided.
package rng

import (
	"crypto/rand"
	"encoding/binary"
	"math/bits"
	"os"
	"strconv"
	"sync"

	"go.uber.org/zap"
)

// SeedEnvVar is the environment variable consulted for a fixed seed.
const SeedEnvVar = "EVIOLITE_SEED"

// logger defaults to zap's production config, which writes JSON to stderr,
// so that seed disclosure (spec requirement, see resolveSeed) happens out
// of the box for any consumer of this package, not just the benchmark
// harness. SetLogger overrides this, e.g. to redirect into a larger
// application's own logger.
var logger = newDefaultLogger()

func newDefaultLogger() *zap.Logger {
	l, err := zap.NewProduction()
	if err != nil {
		// zap.NewProduction only fails to build its stderr sink, which
		// isn't a real failure mode on any supported platform; fall back
		// to a no-op rather than panicking out of a library init path.
		return zap.NewNop()
	}
	return l
}

// SetLogger installs the logger used to disclose OS-generated seeds. Tests
// and the benchmark harness call this to redirect the message somewhere
// other than the default stderr sink.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// Source is a Xoshiro256** generator, guarded for concurrent use.
type Source struct {
	mu    sync.Mutex
	state [4]uint64
}

var (
	defaultOnce   sync.Once
	defaultSource *Source
)

// Default returns the process-wide reproducible generator, seeding it on
// first use.
func Default() *Source {
	defaultOnce.Do(func() {
		defaultSource = NewSource(resolveSeed())
	})
	return defaultSource
}

func resolveSeed() uint64 {
	if raw, ok := os.LookupEnv(SeedEnvVar); ok {
		if seed, err := strconv.ParseUint(raw, 10, 64); err == nil {
			return seed
		}
	}

	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand failing is effectively unrecoverable on any real
		// platform; fall back to a fixed constant rather than panicking
		// out of a library init path.
		seed := uint64(0x9E3779B97F4A7C15)
		logger.Error("eviolite: unable to read OS entropy for RNG seed, falling back to fixed seed",
			zap.Error(err), zap.Uint64("seed", seed))
		return seed
	}

	seed := binary.LittleEndian.Uint64(buf[:])
	logger.Info("eviolite: unable to read preset RNG seed from environment, using OS-generated seed",
		zap.String("env_var", SeedEnvVar), zap.Uint64("seed", seed))
	return seed
}

// NewSource creates a standalone Xoshiro256** generator seeded via
// SplitMix64, the same seeding strategy rand_xoshiro uses for
// seed_from_u64. Standalone sources are useful in tests that need
// independent, non-shared randomness.
func NewSource(seed uint64) *Source {
	s := &Source{}
	sm := seed
	for i := range s.state {
		sm += 0x9E3779B97F4A7C15
		z := sm
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		z = z ^ (z >> 31)
		s.state[i] = z
	}
	return s
}

// Uint64 returns the next pseudo-random 64-bit value.
func (s *Source) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next()
}

// next implements Xoshiro256**. Callers must hold s.mu.
func (s *Source) next() uint64 {
	result := bits.RotateLeft64(s.state[1]*5, 7) * 9

	t := s.state[1] << 17

	s.state[2] ^= s.state[0]
	s.state[3] ^= s.state[1]
	s.state[1] ^= s.state[2]
	s.state[0] ^= s.state[3]

	s.state[2] ^= t

	s.state[3] = bits.RotateLeft64(s.state[3], 45)

	return result
}

// Float64 returns a pseudo-random value in [0, 1).
func (s *Source) Float64() float64 {
	// Use the top 53 bits, matching the precision of a float64 mantissa.
	return float64(s.Uint64()>>11) / (1 << 53)
}

// Intn returns a pseudo-random value in [0, n). Panics if n <= 0.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn called with n <= 0")
	}
	// Lemire's method, avoiding modulo bias.
	bound := uint64(n)
	thresh := -bound % bound
	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		x := s.next()
		hi, lo := bits.Mul64(x, bound)
		if lo < thresh {
			continue
		}
		return int(hi)
	}
}

// Bool returns true with probability p. Values of p outside [0, 1] saturate.
func (s *Source) Bool(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.Float64() < p
}

// SampleIndices draws k distinct indices from [0, n) uniformly without
// replacement, using partial Fisher-Yates over a scratch permutation. It
// panics if k > n.
func (s *Source) SampleIndices(n, k int) []int {
	if k > n {
		panic("rng: SampleIndices requires k <= n")
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < k; i++ {
		j := i + int(s.next()%uint64(n-i))
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm[:k]
}
