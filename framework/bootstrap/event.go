package bootstrap

import "github.com/km-arc/go-bootstrap/framework/container"

// ── Close event ──────────────────────────────────────────────────────────────

// ClosedEvent is delivered to close listeners when the bootstrap phase ends.
// It carries the retiring bootstrap context and the now-prepared container,
// so listeners can promote bootstrap instances into the container:
//
//	boot.AddCloseListener(func(ev bootstrap.ClosedEvent) {
//	    cfg := bootstrap.MustResolve[*config.Config](ev.Bootstrap, "config")
//	    ev.App.Instance("config", cfg)
//	})
type ClosedEvent struct {
	// Bootstrap is the registry being closed. Still readable — listeners may
	// resolve (and thereby materialize) values from it.
	Bootstrap Context

	// App is the fully prepared container the application hands off to.
	App *container.Container
}

// CloseListener reacts to the one-shot close event. A panicking listener
// aborts delivery to the listeners after it; there is no isolation.
type CloseListener func(event ClosedEvent)

// AddCloseListener appends listener to the delivery list. Listeners fire in
// registration order; duplicates fire once per registration.
func (b *Bootstrap) AddCloseListener(listener CloseListener) {
	if listener == nil {
		panic("bootstrap: listener must not be nil")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = append(b.listeners, listener)
}

// Close marks the end of the bootstrap phase: it delivers one ClosedEvent to
// every registered listener, synchronously and in registration order.
//
// Close is expected to run exactly once, after the container is prepared.
// There is no idempotence guard — a second call would re-deliver the event,
// so the host must ensure a single invocation.
func (b *Bootstrap) Close(app *container.Container) {
	b.mu.Lock()
	listeners := make([]CloseListener, len(b.listeners))
	copy(listeners, b.listeners)
	b.mu.Unlock()

	event := ClosedEvent{Bootstrap: b, App: app}
	for _, listener := range listeners {
		listener(event)
	}
}
