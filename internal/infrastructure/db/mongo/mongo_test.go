package mongo

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandle_ConcurrentConnectsDoNotQueue(t *testing.T) {
	if testing.Short() {
		t.Skip("dials an unreachable address")
	}

	const (
		callers = 6
		timeout = 300 * time.Millisecond
	)
	h := NewHandle(Config{URI: "mongodb://127.0.0.1:1/?connectTimeoutMS=100", Timeout: timeout})

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		worst   time.Duration
		errs    int
		release = make(chan struct{})
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-release
			start := time.Now()
			_, err := h.Database(context.Background())
			elapsed := time.Since(start)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs++
			}
			worst = max(worst, elapsed)
		}()
	}
	close(release)
	wg.Wait()

	assert.Equal(t, callers, errs)
	// Serialized attempts would take callers*timeout.
	assert.Less(t, worst, 3*timeout, "callers waited on each other's connect attempts")
}

func TestHandle_FailedConnectIsNotCached(t *testing.T) {
	h := NewHandle(Config{URI: "mongodb://127.0.0.1:1/?connectTimeoutMS=50", Timeout: 100 * time.Millisecond})

	_, err := h.Database(context.Background())
	require.Error(t, err)
	assert.Nil(t, h.cached())

	_, err = h.Database(context.Background())
	require.Error(t, err)
	require.NoError(t, h.Disconnect(context.Background()))
}
