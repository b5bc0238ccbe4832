// Package nav computes the active state of the header and drawer
// navigation links for the current page. Recomputation is idempotent:
// every render derives the full active set from the request path alone.
package nav

import "strings"

// Item is one navigation link. Links whose Href targets an in-page
// anchor ("#...") are never highlighted.
type Item struct {
	Href  string
	Label string
}

// RenderedItem is the template view of a link with its active flag.
type RenderedItem struct {
	Href   string
	Label  string
	Active bool
}

// Main is the primary navigation shown in the header and in the menu
// drawer.
var Main = []Item{
	{Href: "/", Label: "Home"},
	{Href: "/shop", Label: "Shop"},
	{Href: "/collections", Label: "Collections"},
	{Href: "#new-season", Label: "New Season"},
}

// Build marks the link matching the current path active and clears all
// others. Anchor links are always cleared.
func Build(currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		items = append(items, RenderedItem{
			Href:   it.Href,
			Label:  it.Label,
			Active: isActive(it.Href, currentPath),
		})
	}
	return items
}

func isActive(href, currentPath string) bool {
	// in-page anchors are excluded from highlighting entirely
	if strings.HasPrefix(href, "#") {
		return false
	}
	if href == "/" {
		return currentPath == "/"
	}
	// exact or prefix boundary: "/shop" matches "/shop" and "/shop/..."
	return currentPath == href || strings.HasPrefix(currentPath, href+"/")
}

// PageID names the current page for templates and logging; "/" maps to
// "index", anything else to its first path segment.
func PageID(currentPath string) string {
	p := strings.Trim(currentPath, "/")
	if p == "" {
		return "index"
	}
	if i := strings.IndexByte(p, '/'); i >= 0 {
		p = p[:i]
	}
	return p
}
