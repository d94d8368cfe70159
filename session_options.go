package toybox

import (
	"log/slog"
	"time"
)

// SessionOption configures the Session.
type SessionOption func(*Session)

// WithLogger sets a structured logger for the session.
// When set, the session logs operation starts, completions, degraded
// assistive calls, and failures.
func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithHistoryCapacity overrides the number of retained past generations.
func WithHistoryCapacity(capacity int) SessionOption {
	return func(s *Session) {
		s.history = NewHistory(capacity)
	}
}

// WithAspectRatio sets the initial aspect ratio.
func WithAspectRatio(ratio AspectRatio) SessionOption {
	return func(s *Session) {
		s.aspectRatio = ratio
	}
}

// WithClock overrides the time source. Used in tests to make history item
// identifiers and timestamps deterministic.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}
