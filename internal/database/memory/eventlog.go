package memory

import (
	"context"
	"time"

	"github.com/osse101/CraftPanel_Go/internal/eventlog"
)

func (s *Store) LogEvent(ctx context.Context, eventType string, userID *string, payload, metadata map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextEventID++
	s.events = append(s.events, eventlog.Event{
		ID:        s.nextEventID,
		EventType: eventType,
		UserID:    userID,
		Payload:   payload,
		Metadata:  metadata,
		CreatedAt: s.now().UTC(),
	})
	return nil
}

// GetEvents returns matching events newest first
func (s *Store) GetEvents(ctx context.Context, filter eventlog.EventFilter) ([]eventlog.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []eventlog.Event
	for i := len(s.events) - 1; i >= 0; i-- {
		e := s.events[i]
		if filter.UserID != nil && (e.UserID == nil || *e.UserID != *filter.UserID) {
			continue
		}
		if filter.EventType != nil && e.EventType != *filter.EventType {
			continue
		}
		if filter.Since != nil && e.CreatedAt.Before(*filter.Since) {
			continue
		}
		if filter.Until != nil && e.CreatedAt.After(*filter.Until) {
			continue
		}
		out = append(out, e)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (s *Store) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().UTC().Add(-time.Duration(retentionDays) * 24 * time.Hour)
	kept := s.events[:0]
	var removed int64
	for _, e := range s.events {
		if e.CreatedAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	s.events = kept
	return removed, nil
}
