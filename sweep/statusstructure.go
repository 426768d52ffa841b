package sweep

import (
	"fmt"
	"strings"

	rbt "github.com/emirpasic/gods/trees/redblacktree"
)

// statusLine holds the left events of the segments currently intersecting
// the sweep line, ordered bottom-to-top by compareSegments. It is backed by
// a red-black tree; neighbour queries locate the event's node and step the
// tree's in-order iterator from there.
//
// The comparator consults segment geometry, so an entry's key is only valid
// while its geometry is unchanged. Subdivision honours that by removing the
// affected event before rewiring it and reinserting afterwards; every
// resident therefore always sits where its current geometry says it should.
type statusLine struct {
	tree *rbt.Tree
}

func newStatusLine() *statusLine {
	return &statusLine{
		tree: rbt.NewWith(func(a, b interface{}) int {
			return compareSegments(a.(*event), b.(*event))
		}),
	}
}

// insert adds a left event to the status line.
func (sl *statusLine) insert(e *event) {
	sl.tree.Put(e, nil)
	e.inSL = true
}

// remove takes a left event out of the status line.
func (sl *statusLine) remove(e *event) {
	sl.tree.Remove(e)
	e.inSL = false
}

// prev returns the event immediately below e on the sweep line, or nil if e
// is the lowest or not resident.
func (sl *statusLine) prev(e *event) *event {
	node := sl.tree.GetNode(e)
	if node == nil {
		return nil
	}
	iter := sl.tree.IteratorAt(node)
	if !iter.Prev() {
		return nil
	}
	return iter.Key().(*event)
}

// next returns the event immediately above e on the sweep line, or nil if e
// is the highest or not resident.
func (sl *statusLine) next(e *event) *event {
	node := sl.tree.GetNode(e)
	if node == nil {
		return nil
	}
	iter := sl.tree.IteratorAt(node)
	if !iter.Next() {
		return nil
	}
	return iter.Key().(*event)
}

// size returns the number of active segments.
func (sl *statusLine) size() int {
	return sl.tree.Size()
}

// String lists the active segments bottom-to-top. Debug aid.
func (sl *statusLine) String() string {
	out := strings.Builder{}
	out.WriteString("Status line:\n")
	iter := sl.tree.Iterator()
	i := 0
	for iter.Next() {
		e := iter.Key().(*event)
		out.WriteString(fmt.Sprintf("  %d: %s\n", i, e))
		i++
	}
	return out.String()
}
