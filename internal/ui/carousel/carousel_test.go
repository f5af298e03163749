package carousel

import (
	"math/rand"
	"testing"
	"time"

	"github.com/greenaire/site/internal/ui/catalog"
	"github.com/greenaire/site/internal/ui/model"
)

type fakeTimer struct {
	fn      func()
	d       time.Duration
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	wasLive := !t.stopped
	t.stopped = true
	return wasLive
}

type fakeScheduler struct {
	timers []*fakeTimer
}

func (s *fakeScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	t := &fakeTimer{fn: fn, d: d}
	s.timers = append(s.timers, t)
	return t
}

func (s *fakeScheduler) live() []*fakeTimer {
	var out []*fakeTimer
	for _, t := range s.timers {
		if !t.stopped {
			out = append(out, t)
		}
	}
	return out
}

// fire runs the single live timer, as the runtime would once the interval elapses.
func (s *fakeScheduler) fire(t *testing.T) {
	t.Helper()
	live := s.live()
	if len(live) != 1 {
		t.Fatalf("expected exactly one live timer, got %d", len(live))
	}
	live[0].stopped = true
	live[0].fn()
}

func newCarousel(t *testing.T) (*Controller, *fakeScheduler) {
	t.Helper()
	sched := &fakeScheduler{}
	return New(catalog.Categories, WithScheduler(sched)), sched
}

func TestWrapsAtBothEnds(t *testing.T) {
	c, _ := newCarousel(t)
	if c.Len() != 6 {
		t.Fatalf("expected 6 categories, got %d", c.Len())
	}
	c.Prev()
	if got := c.State(); got.Index != 5 || got.Direction != model.DirectionLeft {
		t.Fatalf("prev from 0 should land on 5 moving left, got %+v", got)
	}
	c.Next()
	if got := c.State(); got.Index != 0 || got.Direction != model.DirectionRight {
		t.Fatalf("next from 5 should land on 0 moving right, got %+v", got)
	}
}

func TestIndexStaysInRangeForRandomSequences(t *testing.T) {
	c, _ := newCarousel(t)
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		switch rng.Intn(3) {
		case 0:
			c.Next()
		case 1:
			c.Prev()
		default:
			c.GoTo(rng.Intn(c.Len()))
		}
		if idx := c.State().Index; idx < 0 || idx >= c.Len() {
			t.Fatalf("step %d: index %d out of range", i, idx)
		}
	}
}

func TestTickAdvancesRightAndKeepsCategories(t *testing.T) {
	c, _ := newCarousel(t)
	c.Prev()
	c.Tick()
	if got := c.State(); got.Index != 0 || got.Direction != model.DirectionRight {
		t.Fatalf("tick from 5 should wrap to 0 moving right, got %+v", got)
	}
	if cats := c.Categories(); len(cats) != c.Len() || cats[0].ID != catalog.Categories[0].ID {
		t.Fatalf("controller should expose the categories it was built with")
	}
}

func TestGoToDirection(t *testing.T) {
	c, _ := newCarousel(t)
	c.GoTo(3)
	if got := c.State(); got.Index != 3 || got.Direction != model.DirectionRight {
		t.Fatalf("expected index 3 right, got %+v", got)
	}
	c.GoTo(1)
	if got := c.State(); got.Index != 1 || got.Direction != model.DirectionLeft {
		t.Fatalf("expected index 1 left, got %+v", got)
	}
	c.GoTo(1)
	if got := c.State(); got.Index != 1 || got.Direction != model.DirectionLeft {
		t.Fatalf("same index should report left, got %+v", got)
	}
}

func TestTimerCyclesThroughAllCategories(t *testing.T) {
	c, sched := newCarousel(t)
	c.Start()
	var seen []int
	for i := 0; i < c.Len()*2; i++ {
		sched.fire(t)
		seen = append(seen, c.State().Index)
	}
	for i, idx := range seen {
		want := (i + 1) % c.Len()
		if idx != want {
			t.Fatalf("tick %d: expected index %d got %d (sequence %v)", i, want, idx, seen)
		}
	}
	if got := c.State().Direction; got != model.DirectionRight {
		t.Fatalf("auto-advance should move right, got %v", got)
	}
	if live := sched.live(); len(live) != 1 || live[0].d != DefaultInterval {
		t.Fatalf("expected one live timer at the default interval, got %+v", live)
	}
}

func TestManualNavigationRearmsSingleTimer(t *testing.T) {
	c, sched := newCarousel(t)
	c.Start()
	first := sched.live()[0]

	c.Next()
	if !first.stopped {
		t.Fatalf("manual navigation must stop the pending timer")
	}
	if live := sched.live(); len(live) != 1 {
		t.Fatalf("expected a single live timer after rearm, got %d", len(live))
	}

	// The stale callback must not advance the slider even if the runtime still delivers it.
	first.fn()
	if got := c.State().Index; got != 1 {
		t.Fatalf("stale tick advanced carousel to %d", got)
	}
}

func TestStopCancelsTimer(t *testing.T) {
	c, sched := newCarousel(t)
	c.Start()
	pending := sched.live()[0]
	c.Stop()
	if len(sched.live()) != 0 {
		t.Fatalf("expected no live timers after stop")
	}
	pending.fn()
	if got := c.State().Index; got != 0 {
		t.Fatalf("tick after stop mutated state: %d", got)
	}
	c.Next()
	if len(sched.live()) != 0 {
		t.Fatalf("manual navigation on a stopped carousel must not arm a timer")
	}
}

func TestStartIsIdempotent(t *testing.T) {
	c, sched := newCarousel(t)
	c.Start()
	c.Start()
	if len(sched.timers) != 1 {
		t.Fatalf("expected one timer, got %d", len(sched.timers))
	}
}

func TestWithIntervalAndOnChange(t *testing.T) {
	sched := &fakeScheduler{}
	var changes []model.CarouselState
	c := New(catalog.Categories,
		WithScheduler(sched),
		WithInterval(2*time.Second),
		WithOnChange(func(s model.CarouselState) { changes = append(changes, s) }),
	)
	c.Start()
	if sched.live()[0].d != 2*time.Second {
		t.Fatalf("expected custom interval")
	}
	sched.fire(t)
	c.Prev()
	if len(changes) != 2 || changes[0].Index != 1 || changes[1].Index != 0 {
		t.Fatalf("unexpected change log %+v", changes)
	}
}

func TestNewPanicsWithoutCategories(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for empty categories")
		}
	}()
	New(nil)
}

func TestOffsets(t *testing.T) {
	if EnterOffset(model.DirectionRight) != SlideOffset || ExitOffset(model.DirectionRight) != -SlideOffset {
		t.Fatalf("right transitions enter from the right and leave to the left")
	}
	if EnterOffset(model.DirectionLeft) != -SlideOffset || ExitOffset(model.DirectionLeft) != SlideOffset {
		t.Fatalf("left transitions enter from the left and leave to the right")
	}
}

func TestWallClockAdvances(t *testing.T) {
	done := make(chan model.CarouselState, 1)
	c := New(catalog.Categories,
		WithInterval(5*time.Millisecond),
		WithOnChange(func(s model.CarouselState) {
			select {
			case done <- s:
			default:
			}
		}),
	)
	c.Start()
	defer c.Stop()
	select {
	case s := <-done:
		if s.Index != 1 {
			t.Fatalf("expected first automatic tick to land on 1, got %d", s.Index)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for automatic advance")
	}
}
