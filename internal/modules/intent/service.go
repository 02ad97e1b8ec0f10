// README: Intent classification service; picks remote extraction or the heuristic fallback.
package intent

import "context"

// Extractor is the remote schema-constrained extraction capability.
// Implementations must return a sanitized Record for any successful call and
// an error only for transport-level failures.
type Extractor interface {
	Extract(ctx context.Context, message string) (*Record, error)
}

// Service classifies raw messages into intent records.
type Service struct {
	extractor Extractor
}

// NewService creates a classifier. extractor may be nil, in which case the
// deterministic heuristic fallback handles every message.
func NewService(extractor Extractor) *Service {
	return &Service{extractor: extractor}
}

// Classify resolves message into a Record. With an extractor configured, a
// transport failure is surfaced to the caller; without one, classification is
// purely deterministic and never fails.
func (s *Service) Classify(ctx context.Context, message string) (*Record, error) {
	if s.extractor == nil {
		return classifyHeuristic(message), nil
	}
	return s.extractor.Extract(ctx, message)
}
