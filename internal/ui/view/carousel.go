package view

import (
	"strconv"
	"strings"

	"github.com/greenaire/site/internal/ui/carousel"
	"github.com/greenaire/site/internal/ui/model"
)

// Carousel renders the visible category slide with its arrows and dot indicators.
func Carousel(state model.CarouselState, categories []model.Category) string {
	if len(categories) == 0 {
		return ""
	}
	index := state.Index
	if index < 0 || index >= len(categories) {
		index = 0
	}
	current := categories[index]

	var b strings.Builder
	b.WriteString(`<section class="carousel" aria-roledescription="carousel">`)

	slideAttrs := `class="carousel-slide" data-index="` + strconv.Itoa(index) + `"`
	if state.Direction != model.DirectionNone {
		slideAttrs += ` data-direction="` + state.Direction.String() + `" style="--enter-x: ` +
			strconv.Itoa(carousel.EnterOffset(state.Direction)) + `px; --exit-x: ` +
			strconv.Itoa(carousel.ExitOffset(state.Direction)) + `px"`
	}
	b.WriteString(`<div ` + slideAttrs + `>`)
	b.WriteString(`<h2 class="carousel-title">` + escape(current.Label) + `</h2>`)
	if current.Description != "" {
		b.WriteString(`<p class="carousel-description">` + escape(current.Description) + `</p>`)
	}
	b.WriteString(`<div class="carousel-products">`)
	for _, product := range current.Products {
		b.WriteString(`<article class="product-card">`)
		if product.Image != "" {
			b.WriteString(`<img src="` + escape(product.Image) + `" alt="` + escape(product.Name) + `" loading="lazy" />`)
		}
		b.WriteString(`<h3>` + escape(product.Name) + `</h3>`)
		for _, spec := range product.Specs {
			b.WriteString(`<p class="product-spec">` + escape(spec) + `</p>`)
		}
		b.WriteString(`</article>`)
	}
	b.WriteString(`</div></div>`)

	b.WriteString(`<button type="button" class="carousel-arrow carousel-prev" data-carousel-prev aria-label="Previous slide">&#8249;</button>`)
	b.WriteString(`<button type="button" class="carousel-arrow carousel-next" data-carousel-next aria-label="Next slide">&#8250;</button>`)

	b.WriteString(`<div class="carousel-dots" role="tablist">`)
	for i, category := range categories {
		class := "carousel-dot"
		selected := "false"
		if i == index {
			class += " is-active"
			selected = "true"
		}
		b.WriteString(`<button type="button" class="` + class + `" role="tab" aria-selected="` + selected +
			`" aria-label="` + escape(category.Label) + `" data-carousel-goto="` + strconv.Itoa(i) + `"></button>`)
	}
	b.WriteString(`</div></section>`)
	return b.String()
}
