package ring

import (
	"iter"
	"sync"

	"github.com/zeromicro/go-zero/core/lang"
)

// DefaultProbeCount is the number of candidate positions tried per key
// before selecting its owner.
const DefaultProbeCount = 23

// HashRing maps keys onto nodes with multi-probe consistent hashing.
//
// Each node holds exactly one position, derived from its own value; a node
// owns the keyspace from its counter-clockwise neighbor up to and including
// its own position.
//
// All methods are safe for concurrent use. Mutations serialize behind a
// mutex and replace the token slice wholesale, so a lookup or traversal
// reads the consistent snapshot current when it started and never observes
// a torn entry; it is not guaranteed to observe a mutation racing with it.
type HashRing[N comparable] struct {
	partitioner Partitioner
	probeCount  int

	mu     sync.RWMutex
	tokens []RingToken[N] // ascending by position, positions unique
}

// New creates an empty ring with the default partitioner and probe count.
func New[N comparable]() *HashRing[N] {
	return NewCustom[N](nil, 0)
}

// NewCustom creates an empty ring with a specific partitioner and probe
// count. A nil partitioner selects seeded XXH64; a non-positive probeCount
// selects DefaultProbeCount.
func NewCustom[N comparable](partitioner Partitioner, probeCount int) *HashRing[N] {
	if partitioner == nil {
		partitioner = XXHashPartitioner{}
	}
	if probeCount <= 0 {
		probeCount = DefaultProbeCount
	}
	return &HashRing[N]{
		partitioner: partitioner,
		probeCount:  probeCount,
	}
}

// Add places node at the position derived from its own value under the
// default seed. Adding the same node twice is a no-op beyond overwriting the
// same entry; an unrelated occupant at the same position is displaced (last
// write wins) and returned.
func (r *HashRing[N]) Add(node N) (prev N, replaced bool) {
	return r.Insert(r.Position(node), node)
}

// Insert places node at an exact position, bypassing the partitioner.
// Mostly useful for testing and simulation; use Add in all other cases.
func (r *HashRing[N]) Insert(pos RingPosition, node N) (prev N, replaced bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := search(r.tokens, pos)
	next := make([]RingToken[N], 0, len(r.tokens)+1)
	next = append(next, r.tokens[:idx]...)
	next = append(next, RingToken[N]{Position: pos, Node: node})
	if idx < len(r.tokens) && r.tokens[idx].Position == pos {
		prev, replaced = r.tokens[idx].Node, true
		next = append(next, r.tokens[idx+1:]...)
	} else {
		next = append(next, r.tokens[idx:]...)
	}
	r.tokens = next
	return prev, replaced
}

// Remove deletes the entry at the position node would be assigned by Add,
// returning its occupant. A node placed with Insert at a position other than
// its natural hash position is not found this way; removing such an entry is
// the caller's responsibility.
func (r *HashRing[N]) Remove(node N) (prev N, removed bool) {
	pos := r.Position(node)

	r.mu.Lock()
	defer r.mu.Unlock()

	idx := search(r.tokens, pos)
	if idx == len(r.tokens) || r.tokens[idx].Position != pos {
		return prev, false
	}
	prev = r.tokens[idx].Node
	next := make([]RingToken[N], 0, len(r.tokens)-1)
	next = append(next, r.tokens[:idx]...)
	next = append(next, r.tokens[idx+1:]...)
	r.tokens = next
	return prev, true
}

// PrimaryNode returns the node owning key, or false on an empty ring.
func (r *HashRing[N]) PrimaryNode(key any) (N, bool) {
	token, ok := r.PrimaryToken(key)
	return token.Node, ok
}

// PrimaryToken returns the ring entry owning key.
//
// The key is hashed to probeCount candidate positions via double hashing;
// for each candidate the clockwise distance to the first occupied position
// is measured, and the candidate with the minimal distance selects the
// owner, the earliest probe winning ties. Probe distances do not depend on
// how much keyspace each node controls, which is what keeps load even
// without virtual nodes.
func (r *HashRing[N]) PrimaryToken(key any) (RingToken[N], bool) {
	return primaryToken(r.snapshot(), r.partitioner, r.probeCount, key)
}

func primaryToken[N comparable](tokens []RingToken[N], p Partitioner, probeCount int, key any) (RingToken[N], bool) {
	if len(tokens) == 0 {
		return RingToken[N]{}, false
	}

	var (
		best        RingToken[N]
		found       bool
		minDistance = MaxPosition
	)
	for probe := range p.Positions(keyBytes(key), probeCount) {
		idx := search(tokens, probe)
		if idx == len(tokens) {
			// Wrap past the maximum position.
			idx = 0
		}
		owner := tokens[idx]
		if d := distance(probe, owner.Position); !found || d < minDistance {
			best, found, minDistance = owner, true, d
		}
	}
	return best, found
}

// Replicas returns up to k distinct nodes for key, starting at the primary
// owner and continuing clockwise without repetition. Fewer than k are
// returned when the ring holds fewer distinct nodes.
func (r *HashRing[N]) Replicas(key any, k int) []N {
	if k <= 0 {
		return nil
	}
	tokens := r.snapshot()
	primary, ok := primaryToken(tokens, r.partitioner, r.probeCount, key)
	if !ok {
		return nil
	}

	seen := make(map[N]struct{}, k)
	replicas := make([]N, 0, k)
	for token := range tokensFrom(tokens, primary.Position, Clockwise) {
		if _, dup := seen[token.Node]; dup {
			continue
		}
		seen[token.Node] = struct{}{}
		replicas = append(replicas, token.Node)
		if len(replicas) == k {
			break
		}
	}
	return replicas
}

// Tokens returns a lazy traversal of ring entries starting at start and
// moving in dir, wrapping so that every entry is visited exactly once. The
// sequence is reusable: each range restarts it over the snapshot taken when
// Tokens was called.
func (r *HashRing[N]) Tokens(start RingPosition, dir Direction) iter.Seq[RingToken[N]] {
	return tokensFrom(r.snapshot(), start, dir)
}

// KeyRange returns the keyspace interval a node located at pos would own:
// from the counter-clockwise neighboring position up to and not including
// pos itself. Reports false only on an empty ring.
func (r *HashRing[N]) KeyRange(pos RingPosition) (KeyRange, bool) {
	tokens := r.snapshot()
	if len(tokens) == 0 {
		return KeyRange{}, false
	}
	start := RingPosition(0)
	if prev, ok := predecessor(tokens, pos); ok {
		start = prev.Position
	}
	return NewKeyRange(start, pos), true
}

// Intervals returns the ownership intervals of node. Without virtual nodes a
// member owns a single contiguous interval, so the slice holds exactly one
// range ending at the node's position. Reports false when node does not
// occupy its natural position on the ring.
func (r *HashRing[N]) Intervals(node N) ([]KeyRange, bool) {
	pos := r.Position(node)
	tokens := r.snapshot()

	idx := search(tokens, pos)
	if idx == len(tokens) || tokens[idx].Position != pos || tokens[idx].Node != node {
		return nil, false
	}
	start := RingPosition(0)
	if prev, ok := predecessor(tokens, pos); ok {
		start = prev.Position
	}
	return []KeyRange{NewKeyRange(start, pos)}, true
}

// Position returns the ring position key hashes to under the default seed.
func (r *HashRing[N]) Position(key any) RingPosition {
	return r.partitioner.Position(keyBytes(key))
}

// Len returns the number of entries on the ring.
func (r *HashRing[N]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tokens)
}

// IsEmpty reports whether the ring holds no entries.
func (r *HashRing[N]) IsEmpty() bool {
	return r.Len() == 0
}

// snapshot returns the current token slice. Mutators never modify a
// published slice in place, so the snapshot stays consistent for as long as
// the caller iterates it.
func (r *HashRing[N]) snapshot() []RingToken[N] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tokens
}

// keyBytes reduces an arbitrary key or node value to the deterministic byte
// form fed to the partitioner.
func keyBytes(key any) []byte {
	return []byte(lang.Repr(key))
}

// distance measures how far b is from a when moving clockwise.
func distance(a, b RingPosition) RingPosition {
	if a > b {
		return MaxPosition - a + b
	}
	return b - a
}
