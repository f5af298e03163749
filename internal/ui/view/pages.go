// Package view renders the site's HTML fragments. Every function is pure: it
// takes controller snapshots and returns markup, leaving DOM work to the
// browser binding.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Routes that host interactive widgets.
const (
	CarouselRoute = "/about"
	ContactRoute  = "/Contact"
)

//go:embed pages/*.md
var pageFiles embed.FS

var pageSources = map[string]string{
	"/":           "home.md",
	"/about":      "about.md",
	"/Products":   "products.md",
	"/Oem":        "oem.md",
	"/Dunhumbush": "dunhumbush.md",
	"/Trane":      "trane.md",
	"/Contact":    "contact.md",
	"/privacy":    "privacy.md",
	"/terms":      "terms.md",
	"/warranty":   "warranty.md",
	"/faq":        "faq.md",
}

const notFoundPage = "notfound.md"

var (
	renderOnce sync.Once
	rendered   map[string]string
	renderErr  error
)

func markdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
}

func renderPages() {
	md := markdown()
	rendered = make(map[string]string, len(pageSources)+1)
	files := map[string]string{"": notFoundPage}
	for path, file := range pageSources {
		files[path] = file
	}
	for path, file := range files {
		src, err := pageFiles.ReadFile("pages/" + file)
		if err != nil {
			renderErr = fmt.Errorf("read page %s: %w", file, err)
			return
		}
		var buf bytes.Buffer
		if err := md.Convert(src, &buf); err != nil {
			renderErr = fmt.Errorf("render page %s: %w", file, err)
			return
		}
		rendered[path] = buf.String()
	}
}

// Page returns the rendered copy for path and whether the path is known.
// Unknown paths yield the not-found block.
func Page(path string) (string, bool) {
	renderOnce.Do(renderPages)
	if renderErr != nil {
		return `<section class="page page-error"><p>` + escape(renderErr.Error()) + `</p></section>`, false
	}
	body, ok := rendered[path]
	if !ok {
		body = rendered[""]
	}
	return `<section class="page">` + body + `</section>`, ok
}

// KnownPage reports whether path has page copy.
func KnownPage(path string) bool {
	_, ok := pageSources[path]
	return ok
}
