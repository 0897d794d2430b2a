package engines

import "github.com/oclpath/parastar/search"

// qEntry is one partitioned open-list slot: (node, f-score, g-score). g
// is carried alongside f purely to break ties: the spec requires ties in
// f to be broken by the lower g.
type qEntry struct {
	id search.NodeID
	f  float64
	g  float64
}

// less reports whether a should be popped before b: lower f first, ties
// broken by lower g.
func less(a, b qEntry) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	return a.g < b.g
}

// partitionQueue is one of Engine-S's Q open lists: a bounded,
// deduplicating min structure. Only the workgroup that owns this queue
// ever writes to it (home-queue routing, see computeAndPushBack), so no
// synchronization is needed inside the queue itself.
type partitionQueue struct {
	entries  []qEntry
	index    map[search.NodeID]int
	capacity int
}

func newPartitionQueue(capacity int) *partitionQueue {
	return &partitionQueue{
		index:    make(map[search.NodeID]int),
		capacity: capacity,
	}
}

func (q *partitionQueue) len() int { return len(q.entries) }

// pushOrUpdate inserts (id,f,g), or lowers the existing entry's (f,g) if
// id is already present and f is an improvement, matching the spec's
// "deduplicating against entries already present (update the existing f
// if lower)" rule. Reports false if id is new and the queue is already
// at capacity (QUEUE_OVERFLOW).
func (q *partitionQueue) pushOrUpdate(id search.NodeID, f, g float64) (ok bool) {
	if i, exists := q.index[id]; exists {
		if f < q.entries[i].f {
			q.entries[i].f = f
			q.entries[i].g = g
		}
		return true
	}
	if len(q.entries) >= q.capacity {
		return false
	}
	q.index[id] = len(q.entries)
	q.entries = append(q.entries, qEntry{id: id, f: f, g: g})
	return true
}

// popMin removes and returns the entry with smallest f (ties broken by
// lower g). ok is false iff the queue is empty.
func (q *partitionQueue) popMin() (e qEntry, ok bool) {
	if len(q.entries) == 0 {
		return qEntry{}, false
	}
	best := 0
	for i := 1; i < len(q.entries); i++ {
		if less(q.entries[i], q.entries[best]) {
			best = i
		}
	}
	e = q.entries[best]
	delete(q.index, e.id)

	last := len(q.entries) - 1
	q.entries[best] = q.entries[last]
	q.entries = q.entries[:last]
	if best < len(q.entries) {
		q.index[q.entries[best].id] = best
	}
	return e, true
}
