package ring

import (
	"iter"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
)

// RingPosition is a point on the circular keyspace of size 2^64.
// Arithmetic on positions is modular: it wraps at MaxPosition back to zero.
type RingPosition = uint64

// MaxPosition is the largest position on the ring.
const MaxPosition RingPosition = ^RingPosition(0)

// Seeds deriving the two independent hash functions behind double hashing.
// Any fixed pair works; changing either changes every placement.
const (
	DefaultSeed1 uint64 = 12345
	DefaultSeed2 uint64 = 67890
)

// Partitioner maps keys to positions on the ring, i.e. it knows how to
// partition the keyspace. Implementations must be deterministic: the same
// key under the same seed always hashes to the same position.
type Partitioner interface {
	// Position returns the ring position of key under the default seed.
	Position(key []byte) RingPosition

	// PositionSeeded returns the ring position of key under an arbitrary
	// seed, deriving an independent hash function from the same key.
	PositionSeeded(key []byte, seed uint64) RingPosition

	// Positions yields the probe sequence h1 + i*h2 for i in [0, k), with
	// wraparound addition and multiplication. h1 and h2 are derived once
	// per sequence, not per element.
	Positions(key []byte, k int) iter.Seq[RingPosition]
}

// XXHashPartitioner partitions the keyspace with seeded XXH64. It is the
// default strategy: fast, non-cryptographic, with good avalanche behavior.
type XXHashPartitioner struct{}

func (p XXHashPartitioner) Position(key []byte) RingPosition {
	return p.PositionSeeded(key, DefaultSeed1)
}

func (XXHashPartitioner) PositionSeeded(key []byte, seed uint64) RingPosition {
	d := xxhash.NewWithSeed(seed)
	d.Write(key)
	return d.Sum64()
}

func (p XXHashPartitioner) Positions(key []byte, k int) iter.Seq[RingPosition] {
	return probeSequence(p, key, k)
}

// Murmur3Partitioner partitions the keyspace with seeded 64-bit murmur3.
// Ownership and replica selection behave identically under any partitioner;
// only the concrete position values differ.
type Murmur3Partitioner struct{}

func (p Murmur3Partitioner) Position(key []byte) RingPosition {
	return p.PositionSeeded(key, DefaultSeed1)
}

// PositionSeeded truncates the seed to 32 bits, murmur3's seed width.
func (Murmur3Partitioner) PositionSeeded(key []byte, seed uint64) RingPosition {
	return murmur3.Sum64WithSeed(key, uint32(seed))
}

func (p Murmur3Partitioner) Positions(key []byte, k int) iter.Seq[RingPosition] {
	return probeSequence(p, key, k)
}

// probeSequence lazily yields the k double-hashing probes for key. The
// sequence is reusable; each range re-derives h1 and h2 once.
func probeSequence(p Partitioner, key []byte, k int) iter.Seq[RingPosition] {
	return func(yield func(RingPosition) bool) {
		h1 := p.PositionSeeded(key, DefaultSeed1)
		h2 := p.PositionSeeded(key, DefaultSeed2)
		for i := 0; i < k; i++ {
			if !yield(h1 + RingPosition(i)*h2) {
				return
			}
		}
	}
}
