package cache

import (
	"errors"
	"testing"
	"time"
)

// fakeClock is a manually-advanced clock for staleness tests.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestCacheGet(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 4, 5, 12, 0, 0, 0, time.UTC)}
	c := NewWithClock(clock.Now)

	computes := 0
	compute := func() (interface{}, error) {
		computes++
		return computes, nil
	}

	t.Run("first get computes", func(t *testing.T) {
		got, err := c.Get("calendar", time.Hour, compute)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got != 1 {
			t.Errorf("Get = %v, want 1", got)
		}
	})

	t.Run("fresh value served from cache", func(t *testing.T) {
		clock.Advance(30 * time.Minute)
		got, _ := c.Get("calendar", time.Hour, compute)
		if got != 1 || computes != 1 {
			t.Errorf("Get = %v with %d computes, want cached value and 1 compute", got, computes)
		}
	})

	t.Run("expired value recomputed", func(t *testing.T) {
		clock.Advance(time.Hour)
		got, _ := c.Get("calendar", time.Hour, compute)
		if got != 2 || computes != 2 {
			t.Errorf("Get = %v with %d computes, want recompute after TTL", got, computes)
		}
	})
}

func TestCacheKeysIndependent(t *testing.T) {
	c := New()

	c.Get("calendar", time.Hour, func() (interface{}, error) { return "a", nil })
	got, _ := c.Get("guide", time.Hour, func() (interface{}, error) { return "b", nil })

	if got != "b" {
		t.Errorf("Get(guide) = %v, want its own value", got)
	}
	if c.Size() != 2 {
		t.Errorf("Size = %d, want 2", c.Size())
	}
}

func TestCacheComputeErrorNotCached(t *testing.T) {
	c := New()

	computes := 0
	failing := func() (interface{}, error) {
		computes++
		return nil, errors.New("site down")
	}

	if _, err := c.Get("calendar", time.Hour, failing); err == nil {
		t.Fatal("Get should propagate compute errors")
	}
	if c.Size() != 0 {
		t.Error("failed compute must not be cached")
	}

	// The next Get retries instead of serving the failure.
	c.Get("calendar", time.Hour, failing)
	if computes != 2 {
		t.Errorf("computes = %d, want a retry after failure", computes)
	}
}

func TestCacheInvalidate(t *testing.T) {
	c := New()

	computes := 0
	compute := func() (interface{}, error) {
		computes++
		return computes, nil
	}

	c.Get("calendar", time.Hour, compute)
	c.Invalidate("calendar")
	got, _ := c.Get("calendar", time.Hour, compute)

	if got != 2 {
		t.Errorf("Get after Invalidate = %v, want recomputed value", got)
	}
}

func TestFetchTyped(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 4, 5, 12, 0, 0, 0, time.UTC)}
	c := NewWithClock(clock.Now)

	got, err := Fetch(c, "labels", time.Hour, func() ([]string, error) {
		return []string{"燃やすごみ", "資源A"}, nil
	})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(got) != 2 || got[0] != "燃やすごみ" {
		t.Errorf("Fetch = %v, want the computed slice", got)
	}

	// Snapshot swap: a recompute after expiry replaces the whole value.
	clock.Advance(2 * time.Hour)
	got, _ = Fetch(c, "labels", time.Hour, func() ([]string, error) {
		return []string{"ペットボトル"}, nil
	})
	if len(got) != 1 || got[0] != "ペットボトル" {
		t.Errorf("Fetch after expiry = %v, want the new snapshot", got)
	}
}
