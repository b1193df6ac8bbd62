package notify

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivi-ai/persona-engine/internal/model"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type recordingAuditor struct {
	mu      sync.Mutex
	entries []model.NotificationEntry
}

func (a *recordingAuditor) Audit(entry model.NotificationEntry) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, entry)
}

func TestPushBoundedAtCapacity(t *testing.T) {
	q := NewQueue(50)

	for i := 0; i < 60; i++ {
		q.Push(model.NotificationTypePost, fmt.Sprintf("post %d", i), "")
	}

	entries := q.List()
	require.Len(t, entries, 50)

	// Most recent first; the ten oldest were discarded silently.
	assert.Equal(t, "post 59", entries[0].Message)
	assert.Equal(t, "post 10", entries[49].Message)
}

func TestIDsUniqueWithinSameClockTick(t *testing.T) {
	q := NewQueue(10, WithClock(fixedClock{now: time.Unix(1700000000, 0)}))

	a := q.Push(model.NotificationTypeCampaign, "first", "")
	b := q.Push(model.NotificationTypeCampaign, "second", "")

	assert.Equal(t, a.Timestamp, b.Timestamp)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Greater(t, b.ID, a.ID)
}

func TestListReturnsSnapshot(t *testing.T) {
	q := NewQueue(10)
	q.Push(model.NotificationTypeTrend, "original", "")

	snapshot := q.List()
	snapshot[0].Message = "mutated"

	assert.Equal(t, "original", q.List()[0].Message)
}

func TestPushFieldsAndOrder(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	q := NewQueue(10, WithClock(fixedClock{now: now}))

	q.Push(model.NotificationTypeCRM, "lead captured", "/crm/leads/7")
	entry := q.List()[0]

	assert.Equal(t, model.NotificationTypeCRM, entry.Type)
	assert.Equal(t, "lead captured", entry.Message)
	assert.Equal(t, "/crm/leads/7", entry.ActionLink)
	assert.Equal(t, now, entry.Timestamp)
}

func TestAuditorSeesEveryPush(t *testing.T) {
	auditor := &recordingAuditor{}
	q := NewQueue(2, WithAuditor(auditor))

	for i := 0; i < 5; i++ {
		q.Push(model.NotificationTypePost, fmt.Sprintf("post %d", i), "")
	}

	// Queue is bounded, audit trail is not.
	assert.Equal(t, 2, q.Len())
	auditor.mu.Lock()
	defer auditor.mu.Unlock()
	assert.Len(t, auditor.entries, 5)
}

func TestConcurrentPushAndList(t *testing.T) {
	q := NewQueue(50)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				q.Push(model.NotificationTypePost, fmt.Sprintf("w%d-%d", n, j), "")
				q.List()
			}
		}(i)
	}
	wg.Wait()

	entries := q.List()
	require.Len(t, entries, 50)

	seen := make(map[uint64]bool, len(entries))
	for _, e := range entries {
		assert.False(t, seen[e.ID], "duplicate id %d", e.ID)
		seen[e.ID] = true
	}
}
