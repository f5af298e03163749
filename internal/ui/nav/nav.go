// Package nav implements the header navigation state: desktop dropdowns,
// the mobile drawer with its expandable submenus, and the scroll-driven
// "scrolled" flag used to restyle the header.
package nav

import (
	"sync"
	"time"

	"github.com/greenaire/site/internal/ui/catalog"
	"github.com/greenaire/site/internal/ui/model"
)

// ScrollThreshold is the vertical offset (px) past which the header counts as scrolled.
const ScrollThreshold = 10

// Header background colours keyed off the scrolled flag.
const (
	HeaderBackgroundTop      = "rgba(8, 28, 58, 1)"
	HeaderBackgroundScrolled = "rgba(8, 28, 58, 0.95)"
	HeaderTransition         = 300 * time.Millisecond
)

// Router performs client-side route changes.
type Router interface {
	Navigate(path string)
	CurrentPath() string
}

// Viewport delivers vertical scroll offsets. The returned func removes the listener.
type Viewport interface {
	OnScroll(func(offsetY float64)) (release func())
}

// Option configures a Controller.
type Option func(*Controller)

// WithOnChange registers a callback invoked with the new state after every mutation.
func WithOnChange(fn func(model.NavigationState)) Option {
	return func(c *Controller) {
		c.onChange = fn
	}
}

// Controller owns the navigation state for one mounted header.
type Controller struct {
	mu       sync.Mutex
	items    []model.NavItem
	router   Router
	state    model.NavigationState
	onChange func(model.NavigationState)
	release  func()
	mounted  bool
}

// New builds a Controller with every field at its default (closed/none/false).
func New(items []model.NavItem, router Router, opts ...Option) *Controller {
	c := &Controller{
		items:  items,
		router: router,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Items returns the navigation table the controller was built with.
func (c *Controller) Items() []model.NavItem {
	return c.items
}

// State returns a snapshot of the current state.
func (c *Controller) State() model.NavigationState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Mount subscribes to the viewport's scroll signal. Mounting twice replaces the
// previous subscription.
func (c *Controller) Mount(v Viewport) {
	c.Unmount()
	if v == nil {
		return
	}
	c.mu.Lock()
	c.mounted = true
	c.mu.Unlock()

	release := v.OnScroll(func(offsetY float64) {
		c.mu.Lock()
		mounted := c.mounted
		c.mu.Unlock()
		if mounted {
			c.OnScroll(offsetY)
		}
	})

	c.mu.Lock()
	c.release = release
	c.mu.Unlock()
}

// Unmount removes the scroll listener. Scroll events delivered afterwards are ignored.
func (c *Controller) Unmount() {
	c.mu.Lock()
	release := c.release
	c.release = nil
	c.mounted = false
	c.mu.Unlock()
	if release != nil {
		release()
	}
}

// OnScroll updates the scrolled flag from the current vertical offset.
func (c *Controller) OnScroll(offsetY float64) {
	c.update(func(s *model.NavigationState) {
		s.Scrolled = offsetY > ScrollThreshold
	})
}

// OnHoverEnter opens the dropdown for name, closing any other.
func (c *Controller) OnHoverEnter(name string) {
	if !c.hasSubItems(name) {
		return
	}
	c.update(func(s *model.NavigationState) {
		s.ActiveDropdown = name
	})
}

// OnHoverLeave closes the dropdown for name if it is the open one.
func (c *Controller) OnHoverLeave(name string) {
	if !c.hasSubItems(name) {
		return
	}
	c.update(func(s *model.NavigationState) {
		if s.ActiveDropdown == name {
			s.ActiveDropdown = ""
		}
	})
}

// ToggleMenu opens or closes the mobile drawer. Closing collapses any expanded submenu.
func (c *Controller) ToggleMenu() {
	c.update(func(s *model.NavigationState) {
		s.MenuOpen = !s.MenuOpen
		if !s.MenuOpen {
			s.ExpandedMobileSubmenu = ""
		}
	})
}

// ToggleMobileSubmenu expands name, or collapses it when already expanded.
func (c *Controller) ToggleMobileSubmenu(name string) {
	if !c.hasSubItems(name) {
		return
	}
	c.update(func(s *model.NavigationState) {
		if s.ExpandedMobileSubmenu == name {
			s.ExpandedMobileSubmenu = ""
		} else {
			s.ExpandedMobileSubmenu = name
		}
	})
}

// Navigate asks the router for path and collapses all menu UI.
func (c *Controller) Navigate(path string) {
	if c.router != nil {
		c.router.Navigate(path)
	}
	c.update(func(s *model.NavigationState) {
		s.MenuOpen = false
		s.ExpandedMobileSubmenu = ""
		s.ActiveDropdown = ""
	})
}

// IsActive reports whether path is the router's current path (exact match).
func (c *Controller) IsActive(path string) bool {
	if c.router == nil {
		return false
	}
	return c.router.CurrentPath() == path
}

// HeaderBackground returns the header colour for the current scrolled flag.
func (c *Controller) HeaderBackground() string {
	return HeaderBackground(c.State().Scrolled)
}

// HeaderBackground maps the scrolled flag to the header background colour.
func HeaderBackground(scrolled bool) string {
	if scrolled {
		return HeaderBackgroundScrolled
	}
	return HeaderBackgroundTop
}

func (c *Controller) hasSubItems(name string) bool {
	item, ok := catalog.FindNavItem(c.items, name)
	return ok && item.HasSubItems()
}

func (c *Controller) update(mutate func(*model.NavigationState)) {
	c.mu.Lock()
	before := c.state
	mutate(&c.state)
	after := c.state
	onChange := c.onChange
	c.mu.Unlock()

	if onChange != nil && after != before {
		onChange(after)
	}
}
