package main

import (
	"net/http"

	"aerostride.shop/web/internal/seo"
)

// HomeHandler renders the landing page: hero, collections teaser, and
// the shop grid section.
func HomeHandler(w http.ResponseWriter, r *http.Request) {
	vm := buildPageData(r, "AeroStride | Engineered for Motion")
	view := buildShopView(shopCatalog, r.URL.Query().Get("filter"))
	vm.Shop = &view
	vm.Collections = collections
	vm.addJSONLD(seo.Organization("AeroStride", "/", "/assets/img/logo.webp"))
	vm.addJSONLD(seo.WebSite("AeroStride", "/"))
	renderPage(w, r, "home", vm)
}
