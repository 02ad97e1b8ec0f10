// README: UI config service; read-through cached access to the sheet-backed actions.
package uiconfig

import "context"

// Fetcher is the slow path behind the cache.
type Fetcher interface {
	Fetch(ctx context.Context) ([]ActionItem, error)
}

// Service serves the UI action list from cache, refreshing on expiry.
type Service struct {
	fetcher Fetcher
	cache   Cache
}

// NewService wires the fetcher behind the given cache.
func NewService(fetcher Fetcher, cache Cache) *Service {
	return &Service{fetcher: fetcher, cache: cache}
}

// Actions returns the prepared item list and whether it was served from
// cache. A fetch failure with a stale-empty cache is surfaced to the caller.
func (s *Service) Actions(ctx context.Context) ([]ActionItem, bool, error) {
	if items, ok := s.cache.Get(ctx); ok {
		return items, true, nil
	}
	items, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return nil, false, err
	}
	s.cache.Set(ctx, items)
	return items, false, nil
}
