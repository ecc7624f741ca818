package scheduler

import (
	"errors"
	"testing"
	"time"
)

func TestUpdateHandlerIsolatedOnError(t *testing.T) {
	calls := 0
	update := func(dt time.Duration) error {
		calls++
		return errors.New("boom")
	}
	render := func(dt time.Duration) error { return nil }

	s := New(update, render)
	s.lastTick = time.Now().Add(-5 * s.tickRate)
	s.Frame()

	if calls != 1 {
		t.Fatalf("expected update to run exactly once before disabling, got %d calls", calls)
	}
	if !s.updateDead {
		t.Fatalf("expected updateDead to be set after a failing update")
	}

	s.lastTick = time.Now().Add(-5 * s.tickRate)
	s.Frame()
	if calls != 1 {
		t.Fatalf("expected the disabled update handler to stay a no-op, got %d total calls", calls)
	}
}

func TestRenderHandlerIsolatedOnPanic(t *testing.T) {
	calls := 0
	update := func(dt time.Duration) error { return nil }
	render := func(dt time.Duration) error {
		calls++
		panic("render exploded")
	}

	s := New(update, render)
	s.Frame()

	if calls != 1 || !s.renderDead {
		t.Fatalf("expected exactly one render call then renderDead=true, got calls=%d renderDead=%v", calls, s.renderDead)
	}

	s.Frame()
	if calls != 1 {
		t.Fatalf("expected the disabled render handler to stay a no-op, got %d total calls", calls)
	}
}

func TestUpdateCatchUpBoundedByLimit(t *testing.T) {
	ticks := 0
	update := func(dt time.Duration) error { ticks++; return nil }
	render := func(dt time.Duration) error { return nil }

	s := New(update, render)
	s.lastTick = time.Now().Add(-10 * time.Second) // far more than updateLimit's worth

	s.Frame()

	maxTicks := int(TicksPerFrame) + 1 // allow the boundary tick from accumulation rounding
	if ticks > maxTicks {
		t.Fatalf("update ran %d times in one frame, want <= %d (updateLimit = tickRate * TicksPerFrame)", ticks, maxTicks)
	}
}

func TestHealthyHandlersRunEveryFrame(t *testing.T) {
	updates, renders := 0, 0
	update := func(dt time.Duration) error { updates++; return nil }
	render := func(dt time.Duration) error { renders++; return nil }

	s := New(update, render)
	for i := 0; i < 3; i++ {
		s.lastTick = time.Now().Add(-s.tickRate)
		s.Frame()
	}

	if renders != 3 {
		t.Fatalf("expected render to run once per Frame call, got %d", renders)
	}
	if updates == 0 {
		t.Fatalf("expected at least one update tick across 3 frames spaced a full tick apart")
	}
}
