package ivr

import (
	"context"
	"time"
)

// StartJanitor periodically ends idle calls and forgets finished ones
func (e *Engine) StartJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				e.sweep(ctx)
			}
		}
	}()
}

// sweep возвращает количество завершенных и удаленных звонков
func (e *Engine) sweep(ctx context.Context) (expired, removed int) {
	now := e.clock.Now()
	var stale []string

	for _, id := range e.registry.IDs() {
		s, ok := e.registry.lookup(id)
		if !ok {
			continue
		}

		s.mu.Lock()
		if s.removed {
			s.mu.Unlock()
			continue
		}

		idle := now.Sub(s.updatedAt)
		if _, terminal := s.state.(done); terminal {
			if e.retention > 0 && idle >= e.retention {
				stale = append(stale, id)
			}
		} else if e.idleTimeout > 0 && idle >= e.idleTimeout {
			e.releaseIfHeld(ctx, s)
			s.state = finish(s.state, OutcomeExpired)
			s.updatedAt = now
			s.record(LogSystem, e.prompts.Expired, now)
			e.metrics.CallEnded(string(OutcomeExpired))
			e.logger.Info("IVR janitor: call=%s expired after %s idle", id, idle)
			expired++
		}
		s.mu.Unlock()
	}

	for _, id := range stale {
		if e.registry.Remove(id) {
			removed++
		}
	}
	if removed > 0 {
		e.metrics.ActiveCalls(e.registry.Len())
	}
	return expired, removed
}
