package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type leagueRow struct {
	ID   string `json:"id"`
	Fee  int    `json:"fee"`
	Tags []string
}

func TestGetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	c := New(NewMemoryStore(time.Minute), nil)
	var calls atomic.Int32

	loader := func(context.Context) ([]leagueRow, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return []leagueRow{{ID: "mega", Fee: 49}}, nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			got, err := GetOrLoad(context.Background(), c, "league:list", loader)
			if err != nil {
				errCh <- err
				return
			}
			if len(got) != 1 || got[0].ID != "mega" {
				errCh <- errors.New("unexpected loaded value")
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestGetOrLoad_ReloadsAfterInvalidate(t *testing.T) {
	t.Parallel()

	c := New(NewMemoryStore(time.Minute), nil)
	var calls atomic.Int32
	loader := func(context.Context) (leagueRow, error) {
		n := calls.Add(1)
		return leagueRow{ID: "mega", Fee: int(n)}, nil
	}

	first, err := GetOrLoad(context.Background(), c, "league:id:mega", loader)
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	cached, err := GetOrLoad(context.Background(), c, "league:id:mega", loader)
	if err != nil {
		t.Fatalf("cached load: %v", err)
	}
	if first.Fee != 1 || cached.Fee != 1 {
		t.Fatalf("expected cached value, got first=%d cached=%d", first.Fee, cached.Fee)
	}

	c.Invalidate(context.Background(), "league:")
	reloaded, err := GetOrLoad(context.Background(), c, "league:id:mega", loader)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Fee != 2 {
		t.Fatalf("expected reload after invalidate, got fee=%d", reloaded.Fee)
	}
}

func TestGetOrLoad_PropagatesLoaderError(t *testing.T) {
	t.Parallel()

	c := New(NewMemoryStore(time.Minute), nil)
	wantErr := errors.New("db down")
	_, err := GetOrLoad(context.Background(), c, "k", func(context.Context) (int, error) {
		return 0, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected loader error, got %v", err)
	}
}

func TestMemoryStore_Expires(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore(time.Second)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	_ = store.Set(context.Background(), "k", []byte("v"))
	if _, ok, _ := store.Get(context.Background(), "k"); !ok {
		t.Fatalf("expected hit before expiry")
	}

	now = now.Add(2 * time.Second)
	if _, ok, _ := store.Get(context.Background(), "k"); ok {
		t.Fatalf("expected miss after expiry")
	}
}
