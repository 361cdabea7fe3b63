package progress

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounter_ConcurrentAdds(t *testing.T) {
	var counter Counter
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				counter.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(8000), counter.Load())
}

func TestMonitor_DeliversAllDeltas(t *testing.T) {
	var counter Counter

	var mu sync.Mutex
	var sum int
	m := StartMonitor(&counter, func(delta int) {
		mu.Lock()
		defer mu.Unlock()
		require.Positive(t, delta)
		sum += delta
	}, 5*time.Millisecond)

	total := 250
	for i := 0; i < total; i++ {
		counter.Add(1)
		if i%50 == 0 {
			time.Sleep(time.Millisecond)
		}
	}

	m.Stop(time.Second)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, total, sum)
}

func TestMonitor_FinalFlushOnStop(t *testing.T) {
	var counter Counter

	var mu sync.Mutex
	var sum int
	// A long interval guarantees no tick fires; only the stop-path flush
	// can deliver the delta.
	m := StartMonitor(&counter, func(delta int) {
		mu.Lock()
		defer mu.Unlock()
		sum += delta
	}, time.Hour)

	counter.Add(42)
	m.Stop(time.Second)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 42, sum)
}

func TestMonitor_StopIdempotent(t *testing.T) {
	var counter Counter
	m := StartMonitor(&counter, func(int) {}, time.Millisecond)

	m.Stop(time.Second)
	m.Stop(time.Second)
}

func TestMonitor_BoundedJoin(t *testing.T) {
	var counter Counter
	block := make(chan struct{})

	m := StartMonitor(&counter, func(int) {
		<-block
	}, time.Hour)
	counter.Add(1)

	// The callback blocks on the stop-path flush; Stop must still return
	// within its timeout.
	done := make(chan struct{})
	go func() {
		m.Stop(20 * time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not respect its timeout")
	}
	close(block)
}
