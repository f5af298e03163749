package nav

import (
	"testing"

	"github.com/greenaire/site/internal/ui/catalog"
	"github.com/greenaire/site/internal/ui/model"
)

type fakeRouter struct {
	path    string
	visited []string
}

func (r *fakeRouter) Navigate(path string) {
	r.path = path
	r.visited = append(r.visited, path)
}

func (r *fakeRouter) CurrentPath() string { return r.path }

type fakeViewport struct {
	listeners []func(float64)
	released  int
}

func (v *fakeViewport) OnScroll(fn func(float64)) func() {
	v.listeners = append(v.listeners, fn)
	return func() { v.released++ }
}

func (v *fakeViewport) scroll(y float64) {
	for _, fn := range v.listeners {
		fn(y)
	}
}

func newController(t *testing.T) (*Controller, *fakeRouter) {
	t.Helper()
	router := &fakeRouter{path: "/"}
	return New(catalog.NavLinks, router), router
}

func TestNewStartsAtDefaults(t *testing.T) {
	c, _ := newController(t)
	if got := c.State(); got != (model.NavigationState{}) {
		t.Fatalf("expected zero state, got %+v", got)
	}
}

func TestOnScrollThreshold(t *testing.T) {
	c, _ := newController(t)
	cases := []struct {
		offset float64
		want   bool
	}{
		{offset: 0, want: false},
		{offset: 10, want: false},
		{offset: 10.5, want: true},
		{offset: 400, want: true},
		{offset: 3, want: false},
	}
	for _, tc := range cases {
		c.OnScroll(tc.offset)
		if got := c.State().Scrolled; got != tc.want {
			t.Fatalf("offset %v: expected scrolled=%v got %v", tc.offset, tc.want, got)
		}
	}
}

func TestHoverIsExclusiveLastWriterWins(t *testing.T) {
	c, _ := newController(t)
	c.OnHoverEnter("Products")
	c.OnHoverEnter("OEM")
	if got := c.State().ActiveDropdown; got != "OEM" {
		t.Fatalf("expected OEM dropdown, got %q", got)
	}
	c.OnHoverLeave("Products")
	if got := c.State().ActiveDropdown; got != "OEM" {
		t.Fatalf("leaving an inactive item must not close OEM, got %q", got)
	}
	c.OnHoverLeave("OEM")
	if got := c.State().ActiveDropdown; got != "" {
		t.Fatalf("expected no dropdown, got %q", got)
	}
}

func TestHoverIgnoresItemsWithoutSubItems(t *testing.T) {
	c, _ := newController(t)
	c.OnHoverEnter("Home")
	c.OnHoverEnter("Unknown")
	if got := c.State().ActiveDropdown; got != "" {
		t.Fatalf("expected no dropdown for leaf items, got %q", got)
	}
}

func TestToggleMenuClosingCollapsesSubmenu(t *testing.T) {
	c, _ := newController(t)
	c.ToggleMenu()
	c.ToggleMobileSubmenu("Products")
	if got := c.State(); !got.MenuOpen || got.ExpandedMobileSubmenu != "Products" {
		t.Fatalf("expected open menu with Products expanded, got %+v", got)
	}
	c.ToggleMenu()
	if got := c.State(); got.MenuOpen || got.ExpandedMobileSubmenu != "" {
		t.Fatalf("closing must collapse submenu, got %+v", got)
	}
	c.ToggleMenu()
	if got := c.State(); !got.MenuOpen || got.ExpandedMobileSubmenu != "" {
		t.Fatalf("reopened menu should start collapsed, got %+v", got)
	}
}

func TestToggleMobileSubmenuExclusive(t *testing.T) {
	c, _ := newController(t)
	c.ToggleMobileSubmenu("Products")
	c.ToggleMobileSubmenu("OEM")
	if got := c.State().ExpandedMobileSubmenu; got != "OEM" {
		t.Fatalf("expected OEM expanded, got %q", got)
	}
	c.ToggleMobileSubmenu("OEM")
	if got := c.State().ExpandedMobileSubmenu; got != "" {
		t.Fatalf("second toggle should collapse, got %q", got)
	}
	c.ToggleMobileSubmenu("Contact")
	if got := c.State().ExpandedMobileSubmenu; got != "" {
		t.Fatalf("leaf items cannot expand, got %q", got)
	}
}

func TestNavigateCollapsesMobileUI(t *testing.T) {
	c, router := newController(t)
	c.ToggleMenu()
	c.ToggleMobileSubmenu("OEM")
	c.OnHoverEnter("Products")

	c.Navigate("/Trane")

	if router.path != "/Trane" || len(router.visited) != 1 {
		t.Fatalf("expected router to receive /Trane once, got %+v", router.visited)
	}
	got := c.State()
	if got.MenuOpen || got.ExpandedMobileSubmenu != "" || got.ActiveDropdown != "" {
		t.Fatalf("expected collapsed menus after navigate, got %+v", got)
	}
}

func TestIsActiveExactMatch(t *testing.T) {
	c, router := newController(t)
	router.path = "/Products"
	if !c.IsActive("/Products") {
		t.Fatalf("expected /Products active")
	}
	if c.IsActive("/products") || c.IsActive("/") {
		t.Fatalf("match must be exact")
	}
}

func TestMountUnmountReleasesListener(t *testing.T) {
	c, _ := newController(t)
	vp := &fakeViewport{}
	c.Mount(vp)
	vp.scroll(50)
	if !c.State().Scrolled {
		t.Fatalf("expected scrolled after viewport event")
	}
	c.Unmount()
	if vp.released != 1 {
		t.Fatalf("expected listener released once, got %d", vp.released)
	}
	vp.scroll(0)
	if !c.State().Scrolled {
		t.Fatalf("events after unmount must be ignored")
	}
}

func TestOnChangeFiresOnlyOnMutation(t *testing.T) {
	var calls []model.NavigationState
	c := New(catalog.NavLinks, &fakeRouter{}, WithOnChange(func(s model.NavigationState) {
		calls = append(calls, s)
	}))
	c.OnScroll(0)
	c.OnScroll(20)
	c.OnScroll(30)
	if len(calls) != 1 || !calls[0].Scrolled {
		t.Fatalf("expected a single change notification, got %+v", calls)
	}
}

func TestHeaderBackground(t *testing.T) {
	c, _ := newController(t)
	if got := c.HeaderBackground(); got != HeaderBackgroundTop {
		t.Fatalf("expected top colour, got %q", got)
	}
	c.OnScroll(11)
	if got := c.HeaderBackground(); got != HeaderBackgroundScrolled {
		t.Fatalf("expected scrolled colour, got %q", got)
	}
}
