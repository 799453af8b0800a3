package engine

import (
	"log"
	"time"

	"raycaster/internal/threading/monitoring"
)

// alertThrottle limits performance alert logging to one batch per interval.
type alertThrottle struct {
	interval time.Duration
	last     time.Time
}

func (a *alertThrottle) due(now time.Time) bool {
	if a.interval <= 0 {
		return false
	}
	if !a.last.IsZero() && now.Sub(a.last) < a.interval {
		return false
	}
	a.last = now
	return true
}

// LogAlerts logs current performance alerts, at most once per configured interval.
// It returns the alerts that were logged.
func (s *Session) LogAlerts(now time.Time) []monitoring.PerformanceAlert {
	if !s.alerts.due(now) {
		return nil
	}
	alerts := s.threading.CheckPerformanceAlerts()
	for _, a := range alerts {
		log.Printf("Performance: %s (%.1f, threshold %.1f)", a.Message, a.Value, a.Threshold)
	}
	return alerts
}
