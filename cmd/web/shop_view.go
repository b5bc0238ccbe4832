package main

import (
	"html/template"

	"aerostride.shop/web/internal/catalog"
	"aerostride.shop/web/internal/content"
	"aerostride.shop/web/internal/format"
)

// ShopView drives the product grid and the filter bar. Exactly one
// filter is active at a time; re-rendering is a full grid replace.
type ShopView struct {
	Filter      string
	Filters     []FilterOption
	Products    []ProductCard
	Empty       bool
	Unavailable bool
}

// FilterOption is one control in the filter bar.
type FilterOption struct {
	Value  string
	Label  string
	Active bool
}

// ProductCard is one grid card: image, category, name, formatted price.
type ProductCard struct {
	ID         int
	Name       string
	Category   string
	Image      string
	PriceLabel string
}

// QuickView carries the quick-view modal fragment for one product.
type QuickView struct {
	Card        ProductCard
	Color       string
	Description template.HTML
}

func buildShopView(c *catalog.Catalog, filter string) ShopView {
	if filter == "" {
		filter = catalog.FilterAll
	}
	view := ShopView{
		Filter:      filter,
		Unavailable: c.Len() == 0,
	}
	view.Filters = append(view.Filters, FilterOption{
		Value:  catalog.FilterAll,
		Label:  "All",
		Active: filter == catalog.FilterAll,
	})
	for _, cat := range c.Categories() {
		view.Filters = append(view.Filters, FilterOption{
			Value:  cat,
			Label:  cat,
			Active: filter == cat,
		})
	}
	for _, p := range c.FilterByCategory(filter) {
		view.Products = append(view.Products, productCard(p))
	}
	view.Empty = len(view.Products) == 0
	return view
}

func productCard(p catalog.Product) ProductCard {
	return ProductCard{
		ID:         p.ID,
		Name:       p.Name,
		Category:   p.Category,
		Image:      p.Image,
		PriceLabel: format.USD(p.Price),
	}
}

func buildQuickView(p catalog.Product) QuickView {
	view := QuickView{Card: productCard(p), Color: p.Color}
	if p.Description != "" {
		if html, err := content.RenderMarkdown(p.Description); err == nil {
			view.Description = html
		}
	}
	return view
}
