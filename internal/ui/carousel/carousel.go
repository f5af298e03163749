// Package carousel drives the auto-advancing product category slider.
//
// A Controller owns exactly one timer handle. Every index change (automatic or
// manual) stops that handle and schedules a fresh one, so a manual click
// restarts the countdown instead of racing the pending tick.
package carousel

import (
	"sync"
	"time"

	"github.com/greenaire/site/internal/ui/model"
)

// DefaultInterval is the auto-advance period.
const DefaultInterval = 8000 * time.Millisecond

// SlideOffset is the horizontal distance (px) slides travel when entering or leaving.
const SlideOffset = 1000

// Timer is a cancellable scheduled callback.
type Timer interface {
	Stop() bool
}

// Scheduler schedules fn to run once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

type wallClock struct{}

func (wallClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// Option configures a Controller.
type Option func(*Controller)

// WithInterval overrides the auto-advance period. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithScheduler replaces the wall-clock scheduler.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) {
		if s != nil {
			c.scheduler = s
		}
	}
}

// WithOnChange registers a callback invoked after each state change.
func WithOnChange(fn func(model.CarouselState)) Option {
	return func(c *Controller) {
		c.onChange = fn
	}
}

// Controller tracks the visible category and the last transition direction.
type Controller struct {
	mu         sync.Mutex
	categories []model.Category
	interval   time.Duration
	scheduler  Scheduler
	onChange   func(model.CarouselState)

	state  model.CarouselState
	timer  Timer
	gen    uint64
	active bool
}

// New builds a Controller positioned on the first category. It panics when
// categories is empty.
func New(categories []model.Category, opts ...Option) *Controller {
	if len(categories) == 0 {
		panic("carousel: no categories")
	}
	c := &Controller{
		categories: categories,
		interval:   DefaultInterval,
		scheduler:  wallClock{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Len returns the number of categories.
func (c *Controller) Len() int {
	return len(c.categories)
}

// Categories returns the category sequence.
func (c *Controller) Categories() []model.Category {
	return c.categories
}

// State returns a snapshot of index and direction.
func (c *Controller) State() model.CarouselState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Start arms the auto-advance timer. Calling Start on a running controller is a no-op.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active {
		return
	}
	c.active = true
	c.rearmLocked()
}

// Stop cancels the timer. A tick already in flight is discarded.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = false
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// Tick advances one slide to the right, as the timer does.
func (c *Controller) Tick() {
	c.Next()
}

// Next advances one slide to the right, wrapping to the first.
func (c *Controller) Next() {
	c.move(func(i, n int) (int, model.Direction) {
		return (i + 1) % n, model.DirectionRight
	})
}

// Prev moves one slide to the left, wrapping to the last.
func (c *Controller) Prev() {
	c.move(func(i, n int) (int, model.Direction) {
		return (i - 1 + n) % n, model.DirectionLeft
	})
}

// GoTo jumps to index. The direction is right when moving forward, left otherwise.
func (c *Controller) GoTo(index int) {
	c.move(func(i, n int) (int, model.Direction) {
		target := ((index % n) + n) % n
		if target > i {
			return target, model.DirectionRight
		}
		return target, model.DirectionLeft
	})
}

func (c *Controller) move(step func(index, n int) (int, model.Direction)) {
	c.mu.Lock()
	before := c.state
	c.state.Index, c.state.Direction = step(c.state.Index, len(c.categories))
	if c.active && c.state.Index != before.Index {
		c.rearmLocked()
	}
	after := c.state
	onChange := c.onChange
	c.mu.Unlock()

	if onChange != nil && after != before {
		onChange(after)
	}
}

func (c *Controller) fire(gen uint64) {
	c.mu.Lock()
	if !c.active || gen != c.gen {
		c.mu.Unlock()
		return
	}
	before := c.state
	c.state.Direction = model.DirectionRight
	c.state.Index = (c.state.Index + 1) % len(c.categories)
	c.rearmLocked()
	after := c.state
	onChange := c.onChange
	c.mu.Unlock()

	if onChange != nil && after != before {
		onChange(after)
	}
}

func (c *Controller) rearmLocked() {
	if c.timer != nil {
		c.timer.Stop()
	}
	c.gen++
	gen := c.gen
	c.timer = c.scheduler.AfterFunc(c.interval, func() { c.fire(gen) })
}

// EnterOffset is the x offset an entering slide starts from.
func EnterOffset(d model.Direction) int {
	if d == model.DirectionRight {
		return SlideOffset
	}
	return -SlideOffset
}

// ExitOffset is the x offset a leaving slide travels to.
func ExitOffset(d model.Direction) int {
	return -EnterOffset(d)
}
