package sweep

import (
	"strings"

	"github.com/google/btree"
)

// eventQueue is the priority queue of pending sweep events, ordered by
// compareEvents. It is backed by a balanced B-tree rather than a binary
// heap: compareEvents falls back to the construction-order id, so the tree
// holds a strict total order and equal-priority events leave in the order
// they were constructed, whatever order they were enqueued in, which a plain
// heap would not guarantee.
//
// The queue grows during the sweep as subdivision enqueues new event pairs.
type eventQueue struct {
	tree *btree.BTreeG[*event]
}

func newEventQueue() *eventQueue {
	return &eventQueue{tree: btree.NewG[*event](2, eventLess)}
}

// eventLess defines the ordering of queue entries for the B-tree: true if a
// is processed before b. Distinct events never compare equal, so
// ReplaceOrInsert can never silently replace one.
func eventLess(a, b *event) bool {
	return compareEvents(a, b) < 0
}

// enqueue adds an event to the queue.
func (q *eventQueue) enqueue(e *event) {
	q.tree.ReplaceOrInsert(e)
}

// dequeue removes and returns the next event in processing order.
func (q *eventQueue) dequeue() (*event, bool) {
	return q.tree.DeleteMin()
}

// remove takes a pending event back out of the queue. The subdivision
// rounding fix-up needs this: it may flip the left flag of an event that is
// still queued, and the flag participates in the ordering, so the event has
// to leave the tree before the flip and re-enter after.
func (q *eventQueue) remove(e *event) {
	q.tree.Delete(e)
}

// size returns the number of pending events.
func (q *eventQueue) size() int {
	return q.tree.Len()
}

// String drains a clone of the queue in processing order. Debug aid.
func (q *eventQueue) String() string {
	out := strings.Builder{}
	out.WriteString("Event queue:\n")
	clone := q.tree.Clone()
	for clone.Len() > 0 {
		e, _ := clone.DeleteMin()
		out.WriteString("  - ")
		out.WriteString(e.String())
		out.WriteString("\n")
	}
	return out.String()
}
