package pathfind

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/queue"
)

type entry struct {
	pos      Point
	cost     float64
	priority float64
	seq      uint64
}

// frontier is the open set of a search. Implementations differ only in the
// order entries come back out.
type frontier interface {
	push(e entry)
	pop() (entry, bool)
}

// priorityFrontier pops the lowest priority first; equal priorities come
// out in insertion order.
type priorityFrontier struct {
	h   *heap.Heap[entry]
	seq uint64
}

func newPriorityFrontier() *priorityFrontier {
	return &priorityFrontier{
		h: heap.New[entry](func(a, b entry) bool {
			if a.priority != b.priority {
				return a.priority < b.priority
			}
			return a.seq < b.seq
		}),
	}
}

func (f *priorityFrontier) push(e entry) {
	f.seq++
	e.seq = f.seq
	f.h.Push(e)
}

func (f *priorityFrontier) pop() (entry, bool) {
	return f.h.Pop()
}

type fifoFrontier struct {
	q *queue.Queue[entry]
}

func newFIFOFrontier() *fifoFrontier {
	return &fifoFrontier{q: queue.New[entry]()}
}

func (f *fifoFrontier) push(e entry) { f.q.Enqueue(e) }

func (f *fifoFrontier) pop() (entry, bool) {
	if f.q.Empty() {
		return entry{}, false
	}
	return f.q.Dequeue(), true
}
