package main

import (
	"html/template"
	"net/http"

	"aerostride.shop/web/internal/content"
	"aerostride.shop/web/internal/drawer"
	mw "aerostride.shop/web/internal/middleware"
	"aerostride.shop/web/internal/nav"
	"aerostride.shop/web/internal/seo"
)

const defaultDescription = "Performance footwear engineered for motion. Running, lifestyle, and training shoes from AeroStride."

// PageData is the shared view model for full page renders. Every page
// carries the navigation, the cart summary for the badge and drawer,
// and the drawer state; the page-specific payloads are optional.
type PageData struct {
	Title  string
	Meta   seo.Meta
	JSONLD []template.JS
	Path   string
	PageID string
	// CSRFToken is emitted as an hx-headers attribute on the body so
	// htmx sends it back as X-CSRF-Token on every mutation.
	CSRFToken string
	Nav       []nav.RenderedItem
	Cart      CartView
	Drawer    drawer.ViewModel

	Shop        *ShopView
	Collections []content.Collection
}

// buildPageData assembles the parts every page needs. The cart view is
// rebuilt from the session on each render so it can never go stale
// after a mutation.
func buildPageData(r *http.Request, title string) PageData {
	store := cartStoreFor(r)
	return PageData{
		Title:     title,
		Meta:      seo.PageMeta(title, defaultDescription, r.URL.Path),
		Path:      r.URL.Path,
		PageID:    nav.PageID(r.URL.Path),
		CSRFToken: mw.GetSession(r).CSRFToken,
		Nav:       nav.Build(r.URL.Path),
		Cart:      buildCartView(store.Lines()),
		Drawer:    drawer.NewController().View(),
	}
}

// addJSONLD appends a schema.org payload to the page head.
func (p *PageData) addJSONLD(v map[string]any) {
	if s := seo.JSON(v); s != "" {
		p.JSONLD = append(p.JSONLD, template.JS(s))
	}
}
