package search

import (
	"bytes"
	"math/rand"
	"strings"
	"sync"
	"testing"
)

// TestBlockTrackerSinglePartialBlock: a search capped below one full block
// reports once, at the cap.
func TestBlockTrackerSinglePartialBlock(t *testing.T) {
	var out bytes.Buffer
	bt := newBlockTracker(3, 100, &out)

	bt.finished(2)
	if out.Len() != 0 {
		t.Fatalf("premature report: %q", out.String())
	}
	bt.finished(3)
	if want := "Finished searching at 3 digits\n"; out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}

// TestBlockTrackerReportsEachBlockOnce completes digit counts 2..250 in a
// shuffled order and expects exactly one line per block, the last one
// clamped to the maximum digit count.
func TestBlockTrackerReportsEachBlockOnce(t *testing.T) {
	var out bytes.Buffer
	bt := newBlockTracker(250, 100, &out)

	order := rand.Perm(249) // values 0..248 -> digit counts 2..250
	for _, v := range order {
		bt.finished(v + 2)
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %q", len(lines), out.String())
	}
	seen := map[string]bool{}
	for _, l := range lines {
		seen[l] = true
	}
	for _, want := range []string{
		"Finished searching at 100 digits",
		"Finished searching at 200 digits",
		"Finished searching at 250 digits",
	} {
		if !seen[want] {
			t.Errorf("missing line %q", want)
		}
	}
}

// TestBlockTrackerConcurrent drives one block's countdown from many
// goroutines; the zero crossing is atomic, so exactly one report appears.
func TestBlockTrackerConcurrent(t *testing.T) {
	var mu sync.Mutex
	var out bytes.Buffer
	w := writerFunc(func(p []byte) (int, error) {
		mu.Lock()
		defer mu.Unlock()
		return out.Write(p)
	})
	bt := newBlockTracker(100, 100, w)

	var wg sync.WaitGroup
	for d := 2; d <= 100; d++ {
		wg.Add(1)
		go func(d int) {
			defer wg.Done()
			bt.finished(d)
		}(d)
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if want := "Finished searching at 100 digits\n"; out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}

type writerFunc func([]byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }
