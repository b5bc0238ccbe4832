package main

import "net/http"

// CollectionsHandler renders the curated collections page.
func CollectionsHandler(w http.ResponseWriter, r *http.Request) {
	vm := buildPageData(r, "Collections | AeroStride")
	vm.Collections = collections
	renderPage(w, r, "collections", vm)
}

// CheckoutHandler renders the order review page. There is no payment
// flow behind it; the page is the cart review plus a disabled-or-not
// checkout affordance.
func CheckoutHandler(w http.ResponseWriter, r *http.Request) {
	vm := buildPageData(r, "Checkout | AeroStride")
	renderPage(w, r, "checkout", vm)
}
