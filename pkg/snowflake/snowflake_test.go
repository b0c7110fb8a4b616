package snowflake

import (
	"strings"
	"sync"
	"testing"
)

func TestGenID(t *testing.T) {
	id := GenID()
	if id <= 0 {
		t.Fatalf("expected id > 0, got %d", id)
	}
}

func TestGenID_Unique(t *testing.T) {
	const n = 10000
	ids := make(map[int64]struct{}, n)

	for i := 0; i < n; i++ {
		id := GenID()
		if _, exists := ids[id]; exists {
			t.Fatalf("duplicate id found: %d", id)
		}
		ids[id] = struct{}{}
	}
}

func TestGenID_Concurrent(t *testing.T) {
	const (
		goroutines = 20
		perRoutine = 5000
		total      = goroutines * perRoutine
	)

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = make(map[int64]struct{}, total)
	)

	wg.Add(goroutines)

	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perRoutine; i++ {
				id := GenID()

				mu.Lock()
				if _, exists := ids[id]; exists {
					t.Errorf("duplicate id found in concurrent test: %d", id)
					mu.Unlock()
					return
				}
				ids[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
}

func TestGenOrderNumber(t *testing.T) {
	sn := GenOrderNumber()
	if !strings.HasPrefix(sn, "WD") {
		t.Fatalf("expected WD prefix, got %s", sn)
	}
	if sn == GenOrderNumber() {
		t.Fatal("order numbers should not repeat")
	}
}
