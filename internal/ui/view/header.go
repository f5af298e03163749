package view

import (
	"strconv"
	"strings"

	"github.com/greenaire/site/internal/ui/model"
	"github.com/greenaire/site/internal/ui/nav"
)

// Header renders the sticky site header: desktop links with hover dropdowns,
// the burger button and the mobile drawer. isActive decides the highlighted
// entries; it may be nil.
func Header(items []model.NavItem, state model.NavigationState, isActive func(string) bool) string {
	if isActive == nil {
		isActive = func(string) bool { return false }
	}
	var b strings.Builder

	headerClass := "site-header"
	if state.Scrolled {
		headerClass += " is-scrolled"
	}
	b.WriteString(`<header class="` + headerClass + `" style="background-color: ` + nav.HeaderBackground(state.Scrolled) +
		`; transition: background-color ` + strconv.FormatInt(nav.HeaderTransition.Milliseconds(), 10) + `ms ease">`)
	b.WriteString(`<div class="header-inner">`)
	b.WriteString(`<a class="brand" href="/" data-nav-path="/"><img src="/logo.png" alt="Green Aire logo" /><span>Green Aire</span></a>`)

	b.WriteString(`<nav class="desktop-nav" aria-label="Main"><ul>`)
	for _, item := range items {
		writeDesktopItem(&b, item, state, isActive)
	}
	b.WriteString(`</ul></nav>`)

	expanded := "false"
	label := "Open menu"
	if state.MenuOpen {
		expanded = "true"
		label = "Close menu"
	}
	b.WriteString(`<button type="button" class="menu-toggle" data-menu-toggle aria-expanded="` + expanded + `" aria-label="` + label + `">`)
	if state.MenuOpen {
		b.WriteString(`&times;`)
	} else {
		b.WriteString(`&#9776;`)
	}
	b.WriteString(`</button></div>`)

	if state.MenuOpen {
		b.WriteString(`<nav class="mobile-nav" aria-label="Mobile"><ul>`)
		for _, item := range items {
			writeMobileItem(&b, item, state, isActive)
		}
		b.WriteString(`</ul></nav>`)
	}
	b.WriteString(`</header>`)
	return b.String()
}

func linkClass(base string, active bool) string {
	if active {
		return base + " is-active"
	}
	return base
}

func writeDesktopItem(b *strings.Builder, item model.NavItem, state model.NavigationState, isActive func(string) bool) {
	name := escape(item.Name)
	if !item.HasSubItems() {
		b.WriteString(`<li class="nav-item"><a class="` + linkClass("nav-link", isActive(item.Path)) + `" href="` + escape(item.Path) +
			`" data-nav-path="` + escape(item.Path) + `">` + name + `</a></li>`)
		return
	}

	open := state.ActiveDropdown == item.Name
	b.WriteString(`<li class="nav-item has-dropdown" data-dropdown="` + name + `">`)
	b.WriteString(`<a class="` + linkClass("nav-link", isActive(item.Path)) + `" href="` + escape(item.Path) +
		`" data-nav-path="` + escape(item.Path) + `" aria-haspopup="true" aria-expanded="` + strconv.FormatBool(open) + `">` + name + ` <span class="caret">&#9662;</span></a>`)
	if open {
		b.WriteString(`<ul class="dropdown">`)
		for _, sub := range item.SubItems {
			b.WriteString(`<li><a class="` + linkClass("dropdown-link", isActive(sub.Path)) + `" href="` + escape(sub.Path) +
				`" data-nav-path="` + escape(sub.Path) + `">` + escape(sub.Name) + `</a></li>`)
		}
		b.WriteString(`</ul>`)
	}
	b.WriteString(`</li>`)
}

func writeMobileItem(b *strings.Builder, item model.NavItem, state model.NavigationState, isActive func(string) bool) {
	name := escape(item.Name)
	if !item.HasSubItems() {
		b.WriteString(`<li><a class="` + linkClass("mobile-link", isActive(item.Path)) + `" href="` + escape(item.Path) +
			`" data-nav-path="` + escape(item.Path) + `">` + name + `</a></li>`)
		return
	}

	expanded := state.ExpandedMobileSubmenu == item.Name
	b.WriteString(`<li class="has-submenu">`)
	b.WriteString(`<button type="button" class="mobile-link submenu-toggle" data-mobile-toggle="` + name + `" aria-expanded="` + strconv.FormatBool(expanded) + `">` + name + `</button>`)
	if expanded {
		b.WriteString(`<ul class="mobile-submenu">`)
		for _, sub := range item.SubItems {
			b.WriteString(`<li><a class="` + linkClass("mobile-sublink", isActive(sub.Path)) + `" href="` + escape(sub.Path) +
				`" data-nav-path="` + escape(sub.Path) + `">` + escape(sub.Name) + `</a></li>`)
		}
		b.WriteString(`</ul>`)
	}
	b.WriteString(`</li>`)
}
