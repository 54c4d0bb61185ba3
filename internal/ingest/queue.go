package ingest

import (
	"container/heap"
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/lingbai-i/YueLi/internal/metrics"
)

type queueItem struct {
	priority int
	seq      uint64
	queuedAt time.Time
	event    Event
}

// eventHeap orders by descending priority; equal priorities keep
// arrival order.
type eventHeap []*queueItem

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority > h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) { *h = append(*h, x.(*queueItem)) }

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// Queue is a blocking priority queue of live-room events.
type Queue struct {
	clock clockwork.Clock

	mu    sync.Mutex
	items eventHeap
	seq   uint64
	wake  chan struct{}
}

func NewQueue(clock clockwork.Clock) *Queue {
	return &Queue{
		clock: clock,
		wake:  make(chan struct{}, 1),
	}
}

func (q *Queue) Push(priority int, event Event) {
	q.mu.Lock()
	q.seq++
	heap.Push(&q.items, &queueItem{
		priority: priority,
		seq:      q.seq,
		queuedAt: q.clock.Now(),
		event:    event,
	})
	metrics.IngestQueueDepth.Set(float64(len(q.items)))
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// Pop blocks until an event is available or ctx is cancelled.
func (q *Queue) Pop(ctx context.Context) (Event, error) {
	for {
		q.mu.Lock()
		if len(q.items) > 0 {
			item := heap.Pop(&q.items).(*queueItem)
			metrics.IngestQueueDepth.Set(float64(len(q.items)))
			q.mu.Unlock()
			return item.event, nil
		}
		q.mu.Unlock()

		select {
		case <-q.wake:
		case <-ctx.Done():
			return Event{}, ctx.Err()
		}
	}
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
