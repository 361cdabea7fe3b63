package engine

import "container/heap"

// Merge combines k result streams, each already internally ordered, into one
// globally ordered sequence via a k-way heap merge in O(total * log k).
//
// A full re-sort would discard the ordering already guaranteed by the
// contiguous-increasing-chunk construction, so Merge never sorts.
func Merge(streams [][]int) []int {
	total := 0
	nonEmpty := 0
	for _, s := range streams {
		total += len(s)
		if len(s) > 0 {
			nonEmpty++
		}
	}
	if total == 0 {
		return nil
	}
	if nonEmpty == 1 {
		for _, s := range streams {
			if len(s) > 0 {
				return s
			}
		}
	}

	h := make(streamHeap, 0, nonEmpty)
	for _, s := range streams {
		if len(s) > 0 {
			h = append(h, streamCursor{stream: s})
		}
	}
	heap.Init(&h)

	merged := make([]int, 0, total)
	for h.Len() > 0 {
		cur := &h[0]
		merged = append(merged, cur.stream[cur.pos])
		cur.pos++
		if cur.pos == len(cur.stream) {
			heap.Pop(&h)
		} else {
			heap.Fix(&h, 0)
		}
	}

	return merged
}

// streamCursor tracks the read position within one ordered stream.
type streamCursor struct {
	stream []int
	pos    int
}

type streamHeap []streamCursor

func (h streamHeap) Len() int { return len(h) }

func (h streamHeap) Less(i, j int) bool {
	return h[i].stream[h[i].pos] < h[j].stream[h[j].pos]
}

func (h streamHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *streamHeap) Push(x any) {
	*h = append(*h, x.(streamCursor))
}

func (h *streamHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
