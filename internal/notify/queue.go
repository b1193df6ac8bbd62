// Package notify provides the bounded in-memory notification log that UI
// surfaces poll.
package notify

import (
	"sync"
	"time"

	"github.com/vivi-ai/persona-engine/internal/model"
)

// DefaultCapacity is the retention bound for the queue.
const DefaultCapacity = 50

// Clock abstracts time for testability.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Auditor mirrors pushed entries to a durable sink. Best-effort: audit
// failures never affect the queue.
type Auditor interface {
	Audit(entry model.NotificationEntry)
}

// Queue is a bounded, most-recent-first log of notification entries. It is
// an explicitly owned instance (one per host), not a process-wide singleton.
// Push and List are safe for concurrent use.
type Queue struct {
	mu       sync.Mutex
	entries  []model.NotificationEntry
	capacity int
	nextID   uint64
	clock    Clock
	auditor  Auditor
}

// Option configures a Queue.
type Option func(*Queue)

// WithClock overrides the wall clock. For testing.
func WithClock(c Clock) Option {
	return func(q *Queue) { q.clock = c }
}

// WithAuditor mirrors every pushed entry to the given auditor.
func WithAuditor(a Auditor) Option {
	return func(q *Queue) { q.auditor = a }
}

// NewQueue creates a queue retaining at most capacity entries. A
// non-positive capacity uses DefaultCapacity.
func NewQueue(capacity int, opts ...Option) *Queue {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	q := &Queue{
		capacity: capacity,
		clock:    realClock{},
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Push records an event notification. It never fails: identifiers come from
// a monotonic counter (unique even for pushes within the same clock tick),
// the entry is inserted at the front, and anything beyond capacity is
// discarded silently.
func (q *Queue) Push(typ model.NotificationType, message, actionLink string) model.NotificationEntry {
	q.mu.Lock()
	q.nextID++
	entry := model.NotificationEntry{
		ID:         q.nextID,
		Type:       typ,
		Message:    message,
		ActionLink: actionLink,
		Timestamp:  q.clock.Now(),
	}

	q.entries = append([]model.NotificationEntry{entry}, q.entries...)
	if len(q.entries) > q.capacity {
		q.entries = q.entries[:q.capacity]
	}
	auditor := q.auditor
	q.mu.Unlock()

	if auditor != nil {
		auditor.Audit(entry)
	}
	return entry
}

// List returns the current entries, most-recent-first. The returned slice is
// a snapshot: callers may mutate it without affecting the queue.
func (q *Queue) List() []model.NotificationEntry {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]model.NotificationEntry, len(q.entries))
	copy(out, q.entries)
	return out
}

// Len returns the number of retained entries.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}
