package duetvm

import "github.com/emirpasic/gods/queues/linkedlistqueue"

// Queue is an unbounded FIFO of values passed between two programs.
type Queue struct {
	items *linkedlistqueue.Queue
}

func NewQueue() *Queue {
	return &Queue{
		items: linkedlistqueue.New(),
	}
}

func (q *Queue) Push(value int64) {
	q.items.Enqueue(value)
}

func (q *Queue) Pop() (int64, bool) {
	v, ok := q.items.Dequeue()
	if !ok {
		return 0, false
	}
	return v.(int64), true
}

func (q *Queue) Len() int {
	return q.items.Size()
}

func (q *Queue) Values() []int64 {
	values := q.items.Values()
	ret := make([]int64, len(values))
	for i, v := range values {
		ret[i] = v.(int64)
	}
	return ret
}
