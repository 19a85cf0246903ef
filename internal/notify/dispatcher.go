package notify

import (
	"context"
	"sync"

	pkgLog "smart-notes/pkg/log"
	"smart-notes/pkg/metrics"
)

// Dispatcher gates notifications on a permission and fans them out to sinks.
type Dispatcher struct {
	l     pkgLog.Logger
	sinks []Sink

	mu         sync.RWMutex
	permission Permission
	once       sync.Once
}

// NewDispatcher creates a Dispatcher starting from the given permission.
func NewDispatcher(l pkgLog.Logger, initial Permission, sinks ...Sink) *Dispatcher {
	return &Dispatcher{
		l:          l,
		sinks:      sinks,
		permission: initial,
	}
}

// RequestPermission decides an undecided permission once. It is granted when
// at least one sink is configured. Later calls return the stored decision.
func (d *Dispatcher) RequestPermission(ctx context.Context) Permission {
	d.once.Do(func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if d.permission != PermissionDefault {
			return
		}
		if len(d.sinks) == 0 {
			d.permission = PermissionDenied
		} else {
			d.permission = PermissionGranted
		}
		d.l.Infof(ctx, "notify: permission %s (%d sink(s))", d.permission, len(d.sinks))
	})
	return d.Permission()
}

// Permission returns the current decision.
func (d *Dispatcher) Permission() Permission {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.permission
}

// Notify sends n to every sink. Without a granted permission it does nothing.
// Sink failures are logged, never returned.
func (d *Dispatcher) Notify(ctx context.Context, n Notification) {
	if d.Permission() != PermissionGranted {
		metrics.AlertsTotal.WithLabelValues(metrics.AlertSkipped).Inc()
		d.l.Debugf(ctx, "notify: permission %s, skipping alert for note %s", d.Permission(), n.NoteID)
		return
	}

	for _, s := range d.sinks {
		if err := s.Send(ctx, n); err != nil {
			metrics.AlertsTotal.WithLabelValues(metrics.AlertFailed).Inc()
			d.l.Warnf(ctx, "notify: sink %s failed for note %s: %v", s.Name(), n.NoteID, err)
			continue
		}
		metrics.AlertsTotal.WithLabelValues(metrics.AlertSent).Inc()
	}
}
