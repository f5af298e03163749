//go:build js && wasm

package wasm

import (
	"strconv"
	"syscall/js"
	"time"

	"github.com/greenaire/site/internal/ui/carousel"
	"github.com/greenaire/site/internal/ui/catalog"
	"github.com/greenaire/site/internal/ui/forms"
	"github.com/greenaire/site/internal/ui/model"
	"github.com/greenaire/site/internal/ui/nav"
	"github.com/greenaire/site/internal/ui/relay"
	"github.com/greenaire/site/internal/ui/view"
	"github.com/greenaire/site/logging"
)

// Document references the global browser document for DOM interactions.
var Document js.Value

type appConfig struct {
	relayEndpoint    string
	fallbackEmail    string
	carouselInterval time.Duration
}

type app struct {
	root   js.Value
	cfg    appConfig
	logger *logging.Logger

	router   *historyRouter
	nav      *nav.Controller
	relay    *relay.Client
	carousel *carousel.Controller
	contact  *forms.ContactBinding

	header js.Value
	page   js.Value
	footer js.Value

	handlers []js.Func
}

func newApp(root js.Value, cfg appConfig, logger *logging.Logger) *app {
	a := &app{root: root, cfg: cfg, logger: logger}
	a.relay = relay.New(cfg.relayEndpoint, relay.WithLogger(logger))
	a.router = newHistoryRouter(a.renderRoute)
	a.nav = nav.New(catalog.NavLinks, a.router, nav.WithOnChange(func(model.NavigationState) {
		a.renderHeader()
	}))
	return a
}

func (a *app) start() {
	a.root.Set("innerHTML", `<div id="site-header"></div><main id="page"></main><div id="site-footer"></div>`)
	a.header = Document.Call("getElementById", "site-header")
	a.page = Document.Call("getElementById", "page")
	a.footer = Document.Call("getElementById", "site-footer")

	a.addHandler(a.root, "click", a.handleClick)
	a.addHandler(a.root, "mouseover", a.handleMouseOver)
	a.addHandler(a.root, "mouseout", a.handleMouseOut)
	a.addHandler(js.Global(), "pagehide", func(js.Value, []js.Value) any {
		a.teardown()
		return nil
	})

	a.nav.Mount(windowViewport{})
	a.footer.Set("innerHTML", view.Footer(time.Now().Year()))
	a.renderRoute(a.router.CurrentPath())
}

func (a *app) renderHeader() {
	if !a.header.Truthy() {
		return
	}
	a.header.Set("innerHTML", view.Header(a.nav.Items(), a.nav.State(), a.nav.IsActive))
}

// renderRoute swaps the page body for path, tearing down widgets owned by the
// previous page first.
func (a *app) renderRoute(path string) {
	a.unmountWidgets()

	body, known := view.Page(path)
	if !known {
		a.logger.Warn(logging.CategoryGeneral, "unknown route", map[string]any{"path": path})
	}
	switch path {
	case view.CarouselRoute:
		body += `<div id="carousel-root"></div>`
	case view.ContactRoute:
		body += `<div class="contact-layout"><div id="contact-root"></div>` + view.ContactDetails(catalog.ContactDetails) + `</div>`
	}
	a.page.Set("innerHTML", body)
	a.renderHeader()
	js.Global().Call("scrollTo", 0, 0)

	switch path {
	case view.CarouselRoute:
		a.mountCarousel()
	case view.ContactRoute:
		a.mountContact()
	}
}

func (a *app) mountCarousel() {
	target := Document.Call("getElementById", "carousel-root")
	var c *carousel.Controller
	render := func(st model.CarouselState) {
		target.Set("innerHTML", view.Carousel(st, c.Categories()))
	}
	c = carousel.New(catalog.Categories,
		carousel.WithInterval(a.cfg.carouselInterval),
		carousel.WithOnChange(render),
	)
	a.carousel = c
	render(c.State())
	c.Start()
}

func (a *app) mountContact() {
	target := Document.Call("getElementById", "contact-root")
	a.contact = forms.MountContactForm(target, a.relay,
		forms.WithAlerter(forms.AlerterFunc(func(message string) {
			js.Global().Call("alert", message)
		})),
		forms.WithLogger(a.logger),
		forms.WithFallbackEmail(a.cfg.fallbackEmail),
	)
}

func (a *app) unmountWidgets() {
	if a.carousel != nil {
		a.carousel.Stop()
		a.carousel = nil
	}
	if a.contact != nil {
		a.contact.Close()
		a.contact = nil
	}
}

func (a *app) handleClick(this js.Value, args []js.Value) any {
	if len(args) == 0 {
		return nil
	}
	event := args[0]
	target := event.Get("target")

	if el := closest(target, "[data-menu-toggle]"); el.Truthy() {
		a.nav.ToggleMenu()
		return nil
	}
	if el := closest(target, "[data-mobile-toggle]"); el.Truthy() {
		a.nav.ToggleMobileSubmenu(el.Call("getAttribute", "data-mobile-toggle").String())
		return nil
	}
	if a.carousel != nil {
		if el := closest(target, "[data-carousel-prev]"); el.Truthy() {
			a.carousel.Prev()
			return nil
		}
		if el := closest(target, "[data-carousel-next]"); el.Truthy() {
			a.carousel.Next()
			return nil
		}
		if el := closest(target, "[data-carousel-goto]"); el.Truthy() {
			if idx, err := strconv.Atoi(el.Call("getAttribute", "data-carousel-goto").String()); err == nil {
				a.carousel.GoTo(idx)
			}
			return nil
		}
	}
	if el := closest(target, "a[data-nav-path]"); el.Truthy() {
		if event.Get("button").Int() != 0 || event.Get("metaKey").Bool() || event.Get("ctrlKey").Bool() || event.Get("shiftKey").Bool() {
			return nil
		}
		event.Call("preventDefault")
		a.nav.Navigate(el.Call("getAttribute", "data-nav-path").String())
	}
	return nil
}

func (a *app) handleMouseOver(this js.Value, args []js.Value) any {
	if len(args) == 0 {
		return nil
	}
	if el := closest(args[0].Get("target"), "[data-dropdown]"); el.Truthy() {
		a.nav.OnHoverEnter(el.Call("getAttribute", "data-dropdown").String())
	}
	return nil
}

func (a *app) handleMouseOut(this js.Value, args []js.Value) any {
	if len(args) == 0 {
		return nil
	}
	event := args[0]
	el := closest(event.Get("target"), "[data-dropdown]")
	if !el.Truthy() {
		return nil
	}
	if related := event.Get("relatedTarget"); related.Truthy() && el.Call("contains", related).Bool() {
		return nil
	}
	a.nav.OnHoverLeave(el.Call("getAttribute", "data-dropdown").String())
	return nil
}

func closest(node js.Value, selector string) js.Value {
	if !node.Truthy() || node.Get("closest").Type() != js.TypeFunction {
		return js.Null()
	}
	return node.Call("closest", selector)
}

func (a *app) addHandler(node js.Value, event string, handler func(js.Value, []js.Value) any) {
	if !node.Truthy() {
		return
	}
	fn := js.FuncOf(handler)
	node.Call("addEventListener", event, fn)
	a.handlers = append(a.handlers, fn)
}

// teardown stops timers, detaches the form and releases every js.Func.
func (a *app) teardown() {
	a.unmountWidgets()
	a.nav.Unmount()
	a.router.release()
	for _, fn := range a.handlers {
		fn.Release()
	}
	a.handlers = nil
}
