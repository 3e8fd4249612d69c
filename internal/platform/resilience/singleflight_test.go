package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_Do(t *testing.T) {
	var g SingleFlight
	var counter int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err, _ := g.Do("2024casj", func() (any, error) {
				atomic.AddInt32(&counter, 1)
				time.Sleep(20 * time.Millisecond)
				return "ok", nil
			})
			if err != nil {
				t.Errorf("singleflight call failed: %v", err)
			}
			if v != "ok" {
				t.Errorf("unexpected value %v", v)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&counter); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
	if n := g.InFlight(); n != 0 {
		t.Fatalf("expected no in-flight keys, got %d", n)
	}
}

func TestSingleFlight_Forget(t *testing.T) {
	var g SingleFlight
	release := make(chan struct{})
	started := make(chan struct{})

	go func() {
		_, _, _ = g.Do("k", func() (any, error) {
			close(started)
			<-release
			return 1, nil
		})
	}()
	<-started

	g.Forget("k")
	v, _, shared := g.Do("k", func() (any, error) { return 2, nil })
	close(release)

	if shared || v != 2 {
		t.Fatalf("expected fresh call after Forget, got v=%v shared=%v", v, shared)
	}
}
