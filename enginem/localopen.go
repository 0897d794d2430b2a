package enginem

import "github.com/oclpath/parastar/search"

// bytesPerOpenEntry estimates the footprint of one (id, f, g) open-list
// slot, used to size localOpenList's fast portion from a backend's
// advertised LocalMemoryPerGroupBytes.
const bytesPerOpenEntry = 24

// minLocalCapacity is the floor applied when a backend advertises too
// little local memory to be useful, so tiny grids still get a workable
// local buffer.
const minLocalCapacity = 16

// openEntry is one (node, f-score, g-score) open-list slot. g is carried
// alongside f purely to break ties: the spec requires ties in f to be
// broken by the lower g.
type openEntry struct {
	id search.NodeID
	f  float64
	g  float64
}

// less reports whether a should be popped before b: lower f first, ties
// broken by lower g.
func less(a, b openEntry) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	return a.g < b.g
}

// localOpenList is the per-agent open list: a fixed-capacity flat array
// that fits in the backend's advertised fast local memory, scanned for
// its minimum entry, with an overflow slice for anything beyond that
// capacity. The spec's design notes call out that a flat array scanned
// for min beats a heap on small GPU frontiers, and that correctness must
// not depend on where the local/global split falls — popMin scans both
// regions uniformly, so behavior is identical regardless of capacity.
//
// Like dijkstra's heap, entries are never updated in place: a relaxed
// node is pushed again and stale entries are simply skipped by the
// caller once popped (lazy decrease-key): popMin returns the entry as it
// was pushed, and the caller checks state[] for its id rather than
// trusting the entry's own f-score.
type localOpenList struct {
	local    []openEntry
	count    int
	overflow []openEntry
}

// newLocalOpenList sizes the local region from localMemoryBytes.
func newLocalOpenList(localMemoryBytes int) *localOpenList {
	capacity := localMemoryBytes / bytesPerOpenEntry
	if capacity < minLocalCapacity {
		capacity = minLocalCapacity
	}
	return &localOpenList{local: make([]openEntry, capacity)}
}

// push inserts e, preferring the local region while it has room.
func (l *localOpenList) push(e openEntry) {
	if l.count < len(l.local) {
		l.local[l.count] = e
		l.count++
		return
	}
	l.overflow = append(l.overflow, e)
}

// len reports the total number of entries across both regions.
func (l *localOpenList) len() int {
	return l.count + len(l.overflow)
}

// popMin removes and returns the entry with the smallest f, scanning
// both regions. ok is false iff the list is empty.
func (l *localOpenList) popMin() (e openEntry, ok bool) {
	if l.len() == 0 {
		return openEntry{}, false
	}

	bestInLocal := -1
	for i := 0; i < l.count; i++ {
		if bestInLocal == -1 || less(l.local[i], l.local[bestInLocal]) {
			bestInLocal = i
		}
	}
	bestInOverflow := -1
	for i := range l.overflow {
		if bestInOverflow == -1 || less(l.overflow[i], l.overflow[bestInOverflow]) {
			bestInOverflow = i
		}
	}

	if bestInOverflow == -1 || (bestInLocal != -1 && !less(l.overflow[bestInOverflow], l.local[bestInLocal])) {
		e = l.local[bestInLocal]
		l.count--
		l.local[bestInLocal] = l.local[l.count]
		return e, true
	}

	e = l.overflow[bestInOverflow]
	last := len(l.overflow) - 1
	l.overflow[bestInOverflow] = l.overflow[last]
	l.overflow = l.overflow[:last]
	return e, true
}
