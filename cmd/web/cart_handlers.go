package main

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"aerostride.shop/web/internal/cart"
	"aerostride.shop/web/internal/drawer"
)

// CartHandler renders the cart page.
func CartHandler(w http.ResponseWriter, r *http.Request) {
	vm := buildPageData(r, "Your Bag | AeroStride")
	renderPage(w, r, "cart", vm)
}

// CartDrawerFrag renders the cart drawer contents.
func CartDrawerFrag(w http.ResponseWriter, r *http.Request) {
	store := cartStoreFor(r)
	renderCartDrawer(w, r, store, false)
}

// CartAddHandler puts one unit of a product in the cart, persists, and
// instructs the frontend to open the cart drawer. An id unknown to the
// catalog leaves the cart unchanged — same response, no error.
func CartAddHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(r.FormValue("product_id"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	store := cartStoreFor(r)
	added, err := store.Add(id)
	if err != nil {
		logger.Error("cart add", zap.Int("product_id", id), zap.Error(err))
	}
	renderCartDrawer(w, r, store, added)
}

// CartQuantityHandler applies a signed delta to a line's quantity.
// Reaching zero or below removes the line entirely.
func CartQuantityHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	delta, err := strconv.Atoi(r.FormValue("delta"))
	if err != nil {
		http.Error(w, "invalid delta", http.StatusBadRequest)
		return
	}
	store := cartStoreFor(r)
	if err := store.UpdateQuantity(id, delta); err != nil {
		logger.Error("cart quantity", zap.Int("product_id", id), zap.Error(err))
	}
	renderCartDrawer(w, r, store, false)
}

// CartRemoveHandler deletes a line, if present.
func CartRemoveHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	store := cartStoreFor(r)
	if err := store.Remove(id); err != nil {
		logger.Error("cart remove", zap.Int("product_id", id), zap.Error(err))
	}
	renderCartDrawer(w, r, store, false)
}

// renderCartDrawer re-renders the drawer fragment from the store's
// current snapshot and emits the htmx events the page listens for.
func renderCartDrawer(w http.ResponseWriter, r *http.Request, store *cart.Store, open bool) {
	view := buildCartView(store.Lines())

	events := map[string]any{
		"cart:updated": map[string]int{"count": view.Count},
	}
	if open {
		events["cart:open"] = map[string]string{}
	}
	if raw, err := json.Marshal(events); err == nil {
		w.Header().Set("HX-Trigger", string(raw))
	}

	ctrl := drawer.NewController()
	if open {
		ctrl.Open(drawer.Cart)
	}
	renderTemplate(w, r, "frag_cart_drawer", map[string]any{
		"Cart":   view,
		"Drawer": ctrl.View(),
	})
}
