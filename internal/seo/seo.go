// Package seo builds the meta tags and schema.org payloads the
// storefront pages embed in their head.
package seo

// OpenGraph carries the og: properties for link previews.
type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
}

// Meta is the per-page head metadata.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	OG          OpenGraph
}

// PageMeta fills a Meta for a regular storefront page, mirroring the
// title and description into the OpenGraph block.
func PageMeta(title, description, canonical string) Meta {
	return Meta{
		Title:       title,
		Description: description,
		Canonical:   canonical,
		OG: OpenGraph{
			Title:       title,
			Description: description,
			Type:        "website",
		},
	}
}
