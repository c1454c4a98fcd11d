package bootstrap_test

import (
	"testing"

	"github.com/km-arc/go-bootstrap/framework/bootstrap"
	"github.com/km-arc/go-bootstrap/framework/container"
)

// ── Close delivery ───────────────────────────────────────────────────────────

func TestClose_DeliversInRegistrationOrder(t *testing.T) {
	boot := bootstrap.New()
	var order []string
	for _, name := range []string{"L1", "L2", "L3"} {
		name := name
		boot.AddCloseListener(func(bootstrap.ClosedEvent) {
			order = append(order, name)
		})
	}

	boot.Close(container.New())

	if len(order) != 3 {
		t.Fatalf("deliveries: got %d, want 3", len(order))
	}
	for i, want := range []string{"L1", "L2", "L3"} {
		if order[i] != want {
			t.Errorf("delivery %d: got %s, want %s", i, order[i], want)
		}
	}
}

func TestClose_EventCarriesBootstrapAndApp(t *testing.T) {
	boot := bootstrap.New()
	boot.Register("greeting", bootstrap.SupplierOf("hello"))
	c := container.New()

	var seen bootstrap.ClosedEvent
	boot.AddCloseListener(func(ev bootstrap.ClosedEvent) { seen = ev })
	boot.Close(c)

	if seen.App != c {
		t.Error("event should carry the prepared container")
	}
	// The retiring context is still readable from listeners.
	got, err := seen.Bootstrap.Get("greeting")
	if err != nil || got != "hello" {
		t.Errorf("event context Get: got (%v, %v)", got, err)
	}
}

func TestClose_PromotionIntoContainer(t *testing.T) {
	boot := bootstrap.New()
	boot.Register("greeting", bootstrap.SupplierOf("hello"))
	boot.AddCloseListener(func(ev bootstrap.ClosedEvent) {
		ev.App.Instance("greeting", bootstrap.MustResolve[string](ev.Bootstrap, "greeting"))
	})

	c := container.New()
	boot.Close(c)

	if got := container.Resolve[string](c, "greeting"); got != "hello" {
		t.Errorf("promoted instance: got %v, want hello", got)
	}
}

func TestClose_DuplicateListener_FiresPerRegistration(t *testing.T) {
	boot := bootstrap.New()
	count := 0
	listener := func(bootstrap.ClosedEvent) { count++ }
	boot.AddCloseListener(listener)
	boot.AddCloseListener(listener)

	boot.Close(container.New())

	if count != 2 {
		t.Errorf("deliveries: got %d, want 2", count)
	}
}

func TestClose_ListenerPanic_AbortsRemaining(t *testing.T) {
	boot := bootstrap.New()
	var delivered []string
	boot.AddCloseListener(func(bootstrap.ClosedEvent) { delivered = append(delivered, "L1") })
	boot.AddCloseListener(func(bootstrap.ClosedEvent) { panic("L2 refuses") })
	boot.AddCloseListener(func(bootstrap.ClosedEvent) { delivered = append(delivered, "L3") })

	func() {
		defer func() {
			if recover() == nil {
				t.Error("a listener panic should propagate out of Close")
			}
		}()
		boot.Close(container.New())
	}()

	if len(delivered) != 1 || delivered[0] != "L1" {
		t.Errorf("delivered %v, want only L1 before the failing listener", delivered)
	}
}

func TestAddCloseListener_Nil_Panics(t *testing.T) {
	boot := bootstrap.New()
	defer func() {
		if recover() == nil {
			t.Error("nil listener should panic")
		}
	}()
	boot.AddCloseListener(nil)
}
