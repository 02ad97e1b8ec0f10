// README: UI config tests (row normalization, cache expiry, read-through behavior).
package uiconfig

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNormalizeRow_HeaderAliases(t *testing.T) {
	item := normalizeRow(map[string]string{
		"Label":     "Book now",
		"TYPE":      "Link",
		"Icon":      "calendar",
		"Action":    "open_booking",
		"Groups":    "guest",
		"Priority":  "5",
		"AVAILABLE": "Yes",
	})

	if item.Label != "Book now" {
		t.Errorf("label = %q", item.Label)
	}
	if item.Type != "link" {
		t.Errorf("type = %q, want lowercased", item.Type)
	}
	if item.Payload != "open_booking" {
		t.Errorf("payload = %q, want the action alias", item.Payload)
	}
	if item.Priority != 5 {
		t.Errorf("priority = %d", item.Priority)
	}
	if !item.Available {
		t.Error("available = false, want true for \"Yes\"")
	}
}

func TestNormalizeRow_Defaults(t *testing.T) {
	item := normalizeRow(map[string]string{"name": "Help"})

	if item.Label != "Help" {
		t.Errorf("label = %q, want the name alias", item.Label)
	}
	if item.Type != "action" {
		t.Errorf("type = %q, want default \"action\"", item.Type)
	}
	if item.Payload != "Help" {
		t.Errorf("payload = %q, want fallback to label", item.Payload)
	}
	if item.Priority != 0 || item.Available {
		t.Errorf("defaults wrong: %+v", item)
	}
}

func TestNormalizeRow_AvailableTruthyForms(t *testing.T) {
	for _, v := range []string{"true", "TRUE", "yes", "1", "y"} {
		if !normalizeRow(map[string]string{"label": "x", "available": v}).Available {
			t.Errorf("available %q should be truthy", v)
		}
	}
	for _, v := range []string{"", "false", "no", "0", "maybe"} {
		if normalizeRow(map[string]string{"label": "x", "available": v}).Available {
			t.Errorf("available %q should be falsy", v)
		}
	}
}

func TestPrepare_FiltersAndSorts(t *testing.T) {
	items := []ActionItem{
		{Label: "low", Available: true, Priority: 1},
		{Label: "", Available: true, Priority: 9},        // no label: dropped
		{Label: "hidden", Available: false, Priority: 9}, // unavailable: dropped
		{Label: "high", Available: true, Priority: 7},
	}

	got := prepare(items)
	if len(got) != 2 {
		t.Fatalf("prepared = %d items, want 2: %+v", len(got), got)
	}
	if got[0].Label != "high" || got[1].Label != "low" {
		t.Errorf("order = [%s, %s], want priority descending", got[0].Label, got[1].Label)
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(5 * time.Minute)

	if _, ok := cache.Get(ctx); ok {
		t.Error("empty cache should miss")
	}

	cache.Set(ctx, []ActionItem{{Label: "a"}})
	if items, ok := cache.Get(ctx); !ok || len(items) != 1 {
		t.Errorf("fresh cache should hit: ok=%v items=%v", ok, items)
	}

	// Age the entry past the TTL.
	cache.fetchedAt = time.Now().Add(-6 * time.Minute)
	if _, ok := cache.Get(ctx); ok {
		t.Error("expired cache should miss")
	}
}

type countingFetcher struct {
	calls int
	items []ActionItem
	err   error
}

func (f *countingFetcher) Fetch(_ context.Context) ([]ActionItem, error) {
	f.calls++
	return f.items, f.err
}

func TestService_ReadThrough(t *testing.T) {
	ctx := context.Background()
	fetcher := &countingFetcher{items: []ActionItem{{Label: "a", Available: true}}}
	svc := NewService(fetcher, NewMemoryCache(5*time.Minute))

	items, cached, err := svc.Actions(ctx)
	if err != nil {
		t.Fatalf("first read: %v", err)
	}
	if cached || len(items) != 1 {
		t.Errorf("first read: cached=%v items=%d, want fresh fetch", cached, len(items))
	}

	_, cached, err = svc.Actions(ctx)
	if err != nil {
		t.Fatalf("second read: %v", err)
	}
	if !cached {
		t.Error("second read should be served from cache")
	}
	if fetcher.calls != 1 {
		t.Errorf("fetcher called %d times, want 1", fetcher.calls)
	}
}

func TestService_FetchErrorSurfaced(t *testing.T) {
	fetcher := &countingFetcher{err: errors.New("sheet unreachable")}
	svc := NewService(fetcher, NewMemoryCache(time.Minute))

	if _, _, err := svc.Actions(context.Background()); err == nil {
		t.Error("fetch failure with a cold cache should surface")
	}
}
