package pathfind

// indexQueue is a binary min-heap of node ids keyed by float64 priority.
// A side table maps every node id in [0, capacity) to its current heap
// slot, so membership tests and priority lookups are O(1) and
// changePriority is O(log n). A plain container/heap does not give us
// decrease-key by node id, which the search needs on every relaxation.
type indexQueue struct {
	entries []ipqEntry
	indexOf []int // node id -> heap slot, -1 when absent
}

type ipqEntry struct {
	node     int
	priority float64
}

// newIndexQueue creates an empty queue for node ids in [0, capacity).
func newIndexQueue(capacity int) *indexQueue {
	q := &indexQueue{
		entries: make([]ipqEntry, 0, 64),
		indexOf: make([]int, capacity),
	}
	for i := range q.indexOf {
		q.indexOf[i] = -1
	}
	return q
}

func (q *indexQueue) size() int {
	return len(q.entries)
}

func (q *indexQueue) exists(node int) bool {
	return q.indexOf[node] >= 0
}

// insert adds a node that must not already be present.
func (q *indexQueue) insert(node int, priority float64) {
	if q.exists(node) {
		panic("pathfind: node already in index queue")
	}
	q.entries = append(q.entries, ipqEntry{node: node, priority: priority})
	slot := len(q.entries) - 1
	q.indexOf[node] = slot
	q.siftUp(slot)
}

// findMin returns the node with the lowest priority. The queue must be
// non-empty.
func (q *indexQueue) findMin() (int, float64) {
	e := q.entries[0]
	return e.node, e.priority
}

// deleteMin removes the root, moves the last entry into its place and
// sifts it down.
func (q *indexQueue) deleteMin() {
	last := len(q.entries) - 1
	q.indexOf[q.entries[0].node] = -1
	q.entries[0] = q.entries[last]
	q.entries = q.entries[:last]
	if last > 0 {
		q.indexOf[q.entries[0].node] = 0
		q.siftDown(0)
	}
}

// priorityOf returns the current priority of a node that must be present.
func (q *indexQueue) priorityOf(node int) float64 {
	return q.entries[q.indexOf[node]].priority
}

// changePriority may raise or lower a node's priority; heap order is
// restored by sifting in whichever direction is needed.
func (q *indexQueue) changePriority(node int, priority float64) {
	slot := q.indexOf[node]
	if slot < 0 {
		panic("pathfind: changePriority on absent node")
	}
	q.entries[slot].priority = priority
	slot = q.siftUp(slot)
	q.siftDown(slot)
}

func (q *indexQueue) siftUp(slot int) int {
	for slot > 0 {
		parent := (slot - 1) / 2
		if q.entries[parent].priority <= q.entries[slot].priority {
			break
		}
		q.swap(parent, slot)
		slot = parent
	}
	return slot
}

func (q *indexQueue) siftDown(slot int) {
	for {
		left := 2*slot + 1
		right := 2*slot + 2
		smallest := slot
		if left < len(q.entries) && q.entries[left].priority < q.entries[smallest].priority {
			smallest = left
		}
		if right < len(q.entries) && q.entries[right].priority < q.entries[smallest].priority {
			smallest = right
		}
		if smallest == slot {
			return
		}
		q.swap(slot, smallest)
		slot = smallest
	}
}

func (q *indexQueue) swap(i, j int) {
	q.entries[i], q.entries[j] = q.entries[j], q.entries[i]
	q.indexOf[q.entries[i].node] = i
	q.indexOf[q.entries[j].node] = j
}
