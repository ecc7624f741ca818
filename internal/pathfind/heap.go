package pathfind

import "container/heap"

// openSet is a min-heap of *node ordered by score, index-tracking so
// that the main A* loop can heapify-up an already-queued node in place
// when a cheaper route to it is found.
type openSet []*node

func (s openSet) Len() int { return len(s) }

func (s openSet) Less(i, j int) bool { return s[i].score < s[j].score }

func (s openSet) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
	s[i].heapIndex = i
	s[j].heapIndex = j
}

func (s *openSet) Push(x any) {
	n := len(*s)
	item := x.(*node)
	item.heapIndex = n
	*s = append(*s, item)
}

func (s *openSet) Pop() any {
	old := *s
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.heapIndex = -1
	*s = old[:n-1]
	return item
}

// fixUp re-establishes the heap invariant after n's score decreased in
// place, without a full push/pop.
func (s *openSet) fixUp(n *node) {
	heap.Fix(s, n.heapIndex)
}
