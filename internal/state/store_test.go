package state

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yordy2001/Smart-parkin/internal/domain"
)

// fakeNotifier ghi lại mọi broadcast để test kiểm tra delta nào được phát.
type fakeNotifier struct {
	mu     sync.Mutex
	events []string
	loads  []any
}

func (f *fakeNotifier) Broadcast(event string, payload any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	f.loads = append(f.loads, payload)
}

func (f *fakeNotifier) names() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.events))
	copy(out, f.events)
	return out
}

func newTestStore(opts ...Option) (*Store, *fakeNotifier) {
	notifier := &fakeNotifier{}
	opts = append([]Option{WithNotifier(notifier)}, opts...)
	return NewStore(10, 20, opts...), notifier
}

func fixedClock(value string) func() time.Time {
	t, err := time.Parse("2006-01-02 15:04:05", value)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func TestEventLogNeverExceedsCap(t *testing.T) {
	store, _ := newTestStore()

	for i := 0; i < 150; i++ {
		_, err := store.RecordGateEvent(GateEntry, fmt.Sprintf("veh-%d", i))
		require.NoError(t, err)
	}

	events := store.RecentEvents(-1)
	assert.Len(t, events, 100)
}

func TestEventLogNewestFirst(t *testing.T) {
	store, _ := newTestStore()

	for i := 0; i < 101; i++ {
		_, err := store.RecordGateEvent(GateEntry, fmt.Sprintf("veh-%d", i))
		require.NoError(t, err)
	}

	events := store.RecentEvents(-1)
	require.Len(t, events, 100)

	// Event thứ 101 (id 101) ở đầu, event đầu tiên (id 1) đã bị đẩy ra.
	assert.Equal(t, int64(101), events[0].ID)
	assert.Equal(t, int64(2), events[len(events)-1].ID)
	for i := 1; i < len(events); i++ {
		assert.Greater(t, events[i-1].ID, events[i].ID)
	}
}

func TestRecentEventsDoesNotMutate(t *testing.T) {
	store, _ := newTestStore()

	for i := 0; i < 5; i++ {
		store.RecordGateEvent(GateEntry, "")
	}

	first := store.RecentEvents(3)
	second := store.RecentEvents(3)
	assert.Equal(t, first, second)
	assert.Len(t, store.RecentEvents(-1), 5)
}

func TestRecentEventsLimit(t *testing.T) {
	store, _ := newTestStore()

	store.RecordGateEvent(GateEntry, "")
	store.RecordGateEvent(GateExit, "")

	assert.Len(t, store.RecentEvents(1), 1)
	assert.Len(t, store.RecentEvents(10), 2)
	assert.Equal(t, domain.EventExit, store.RecentEvents(1)[0].Type)
}

func TestConcurrentMutatorsKeepInvariants(t *testing.T) {
	store, _ := newTestStore()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				store.RecordGateEvent(GateEntry, "")
				store.SetOccupancy(w%10+1, i%2 == 0)
				store.AppendImage("1", domain.CameraImage{Filename: fmt.Sprintf("w%d-%d.jpg", w, i)})
			}
		}(w)
	}
	wg.Wait()

	counters, err := store.RecordGateEvent(GateExit, "")
	require.NoError(t, err)
	assert.Equal(t, 400, counters.EntryCount)
	assert.Equal(t, 1, counters.ExitCount)
	assert.LessOrEqual(t, len(store.RecentEvents(-1)), 100)
	assert.LessOrEqual(t, len(store.CameraImages("1")), 20)
}
