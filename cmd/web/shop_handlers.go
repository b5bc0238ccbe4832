package main

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"aerostride.shop/web/internal/seo"
)

// ShopHandler renders the shop page with the product grid and filter bar.
func ShopHandler(w http.ResponseWriter, r *http.Request) {
	vm := buildPageData(r, "Shop | AeroStride")
	view := buildShopView(shopCatalog, r.URL.Query().Get("filter"))
	vm.Shop = &view
	urls := make([]string, 0, len(view.Products))
	for _, p := range shopCatalog.FilterByCategory(view.Filter) {
		u := fmt.Sprintf("/shop/quick-view/%d", p.ID)
		urls = append(urls, u)
		price := fmt.Sprintf("%d.%02d", p.Price/100, p.Price%100)
		vm.addJSONLD(seo.Product(p.Name, p.Description, u, p.Image, strconv.Itoa(p.ID), price, "USD"))
	}
	vm.addJSONLD(seo.ItemList(urls))
	renderPage(w, r, "shop", vm)
}

// ShopGridFrag re-renders the grid for a filter change. The swap is a
// full grid replace, not an incremental diff.
func ShopGridFrag(w http.ResponseWriter, r *http.Request) {
	view := buildShopView(shopCatalog, r.URL.Query().Get("filter"))
	push := "/shop"
	if view.Filter != "all" {
		push += "?filter=" + view.Filter
	}
	w.Header().Set("HX-Push-Url", push)
	renderTemplate(w, r, "frag_shop_grid", view)
}

// QuickViewFrag renders the quick-view modal for one product.
func QuickViewFrag(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	p, ok := shopCatalog.FindByID(id)
	if !ok {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}
	renderTemplate(w, r, "frag_quick_view", buildQuickView(p))
}
