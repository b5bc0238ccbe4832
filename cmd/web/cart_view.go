package main

import (
	"aerostride.shop/web/internal/cart"
	"aerostride.shop/web/internal/format"
)

// CartView is a pure projection of the current cart lines for the cart
// drawer, the cart page, and the header badge. Rendering it is
// idempotent; it never mutates the store.
type CartView struct {
	Items           []CartItem
	Empty           bool
	Count           int
	TotalLabel      string
	CheckoutEnabled bool
}

// CartItem is one rendered cart line: image, name, optional color,
// quantity stepper bounds, and the formatted line subtotal.
type CartItem struct {
	ID            int
	Name          string
	Color         string
	Image         string
	Qty           int
	PriceLabel    string
	SubtotalLabel string
}

func buildCartView(lines []cart.Line) CartView {
	view := CartView{
		Empty:           len(lines) == 0,
		TotalLabel:      format.USD(0),
		CheckoutEnabled: len(lines) > 0,
	}
	var total int64
	for _, l := range lines {
		view.Items = append(view.Items, CartItem{
			ID:            l.ProductID,
			Name:          l.Name,
			Color:         l.Color,
			Image:         l.Image,
			Qty:           l.Qty,
			PriceLabel:    format.USD(l.Price),
			SubtotalLabel: format.USD(l.Subtotal()),
		})
		view.Count += l.Qty
		total += l.Subtotal()
	}
	if !view.Empty {
		view.TotalLabel = format.USD(total)
	}
	return view
}
