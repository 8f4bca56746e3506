// Package notify queues transient toast messages for a page.
package notify

import "sync"

// Kind distinguishes toast styles.
type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
)

// Toast is one transient message.
type Toast struct {
	Kind    Kind
	Message string
}

// Notifier accepts toasts.
type Notifier interface {
	Notify(kind Kind, message string)
}

// Queue holds toasts until the next render drains them. There is no history.
type Queue struct {
	mu     sync.Mutex
	toasts []Toast
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) Notify(kind Kind, message string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.toasts = append(q.toasts, Toast{Kind: kind, Message: message})
}

// Drain returns pending toasts and empties the queue.
func (q *Queue) Drain() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.toasts
	q.toasts = nil
	return out
}

// Len returns the number of pending toasts.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.toasts)
}
