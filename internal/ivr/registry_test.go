package ivr

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_CreateGetRemove(t *testing.T) {
	r := NewRegistry()
	now := time.Now()

	s := r.create(testPhone, testCatalog, now)
	require.NotEmpty(t, s.callID)
	assert.Equal(t, 1, r.Len())

	snap, ok := r.Get(s.callID)
	require.True(t, ok)
	assert.Equal(t, StateSelectService, snap.State)
	assert.Equal(t, testPhone, snap.CallerPhone)

	_, ok = r.Get("unknown")
	assert.False(t, ok)

	assert.True(t, r.Remove(s.callID))
	assert.False(t, r.Remove(s.callID))
	assert.Equal(t, 0, r.Len())
	assert.True(t, s.removed)
}

func TestRegistry_SnapshotIsACopy(t *testing.T) {
	r := NewRegistry()
	s := r.create(testPhone, testCatalog, time.Now())
	s.state = selectTime{offering: testCatalog[0], slots: []string{"Måndag 09:00"}}
	s.record(LogSystem, "hej", time.Now())

	snap, ok := r.Get(s.callID)
	require.True(t, ok)
	snap.CandidateSlots[0] = "changed"
	snap.Log[0].Message = "changed"

	again, _ := r.Get(s.callID)
	assert.Equal(t, "Måndag 09:00", again.CandidateSlots[0])
	assert.Equal(t, "hej", again.Log[0].Message)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	ids := make(chan string, 100)

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := r.create(testPhone, testCatalog, time.Now())
			ids <- s.callID
			_, _ = r.Get(s.callID)
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]struct{})
	for id := range ids {
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, 100)
	assert.Equal(t, 100, r.Len())
	assert.Len(t, r.IDs(), 100)
}
