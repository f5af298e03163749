package view

import (
	"strconv"
	"strings"

	"github.com/greenaire/site/internal/ui/catalog"
)

// Footer renders the link columns, contact lines and copyright notice for year.
func Footer(year int) string {
	var b strings.Builder
	b.WriteString(`<footer class="site-footer"><div class="footer-grid">`)
	b.WriteString(`<div class="footer-brand"><h3>` + escape(catalog.CompanyName) + `</h3>`)
	b.WriteString(`<p>Reliable HVAC design, supply, installation and maintenance.</p></div>`)
	for _, group := range catalog.FooterLinks {
		b.WriteString(`<div class="footer-links"><h4>` + escape(group.Title) + `</h4><ul>`)
		for _, link := range group.Links {
			b.WriteString(`<li><a href="` + escape(link.Path) + `" data-nav-path="` + escape(link.Path) + `">` + escape(link.Name) + `</a></li>`)
		}
		b.WriteString(`</ul></div>`)
	}
	b.WriteString(`<div class="footer-contact"><h4>Contact</h4><ul>`)
	for _, d := range catalog.ContactDetails {
		b.WriteString(`<li><span>` + escape(d.Label) + `:</span> `)
		if d.Href != "" {
			b.WriteString(`<a href="` + escape(d.Href) + `">` + escape(d.Value) + `</a>`)
		} else {
			b.WriteString(escape(d.Value))
		}
		b.WriteString(`</li>`)
	}
	b.WriteString(`</ul></div></div>`)
	b.WriteString(`<p class="copyright">&copy; ` + strconv.Itoa(year) + ` ` + escape(catalog.CompanyName) + `. All rights reserved.</p>`)
	b.WriteString(`</footer>`)
	return b.String()
}
