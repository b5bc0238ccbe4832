// Package cart owns the shopper's in-progress selection. The Store is
// the only writer; everything else sees snapshots. Every mutation is
// persisted in full before the call returns, so the storage backend
// always holds exactly the in-memory state.
package cart

import (
	"fmt"

	"aerostride.shop/web/internal/catalog"
)

// Line is one product-and-quantity entry. Product fields are copied at
// add time; later catalog changes do not affect existing lines.
type Line struct {
	ProductID int    `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category,omitempty"`
	Price     int64  `json:"priceCents"`
	Image     string `json:"image,omitempty"`
	Color     string `json:"color,omitempty"`
	Qty       int    `json:"qty"`
}

// Subtotal is the line's price × qty in cents.
func (l Line) Subtotal() int64 {
	return l.Price * int64(l.Qty)
}

// Store holds the authoritative cart state for one shopper.
type Store struct {
	catalog *catalog.Catalog
	storage Storage
	lines   []Line
}

// NewStore restores the cart from storage. Missing or malformed stored
// state initializes an empty cart; restore never fails the caller.
func NewStore(cat *catalog.Catalog, storage Storage) *Store {
	s := &Store{catalog: cat, storage: storage}
	lines, err := storage.Load()
	if err != nil {
		lines = nil
	}
	// Drop entries that violate the qty >= 1 invariant; they can only
	// appear through tampered or out-of-date stored state.
	for _, l := range lines {
		if l.Qty >= 1 {
			s.lines = append(s.lines, l)
		}
	}
	return s
}

// Add puts one unit of the product in the cart. An id absent from the
// catalog is a no-op and returns false. An existing line increments in
// place; a new line is appended with qty 1.
func (s *Store) Add(productID int) (bool, error) {
	p, ok := s.catalog.FindByID(productID)
	if !ok {
		return false, nil
	}
	if i := s.indexOf(productID); i >= 0 {
		s.lines[i].Qty++
	} else {
		s.lines = append(s.lines, Line{
			ProductID: p.ID,
			Name:      p.Name,
			Category:  p.Category,
			Price:     p.Price,
			Image:     p.Image,
			Color:     p.Color,
			Qty:       1,
		})
	}
	return true, s.persist()
}

// Remove deletes the line with the matching id, if present.
func (s *Store) Remove(productID int) error {
	i := s.indexOf(productID)
	if i < 0 {
		return nil
	}
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	return s.persist()
}

// UpdateQuantity adds delta to the line's quantity. A resulting
// quantity of zero or less removes the line entirely. An unknown id is
// a no-op.
func (s *Store) UpdateQuantity(productID, delta int) error {
	i := s.indexOf(productID)
	if i < 0 {
		return nil
	}
	s.lines[i].Qty += delta
	if s.lines[i].Qty <= 0 {
		s.lines = append(s.lines[:i], s.lines[i+1:]...)
	}
	return s.persist()
}

// Lines returns a snapshot of the cart in insertion order.
func (s *Store) Lines() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Total is the sum of price × qty across all lines, in cents. Display
// rounding to two decimals happens at format time only.
func (s *Store) Total() int64 {
	var total int64
	for _, l := range s.lines {
		total += l.Subtotal()
	}
	return total
}

// Count is the sum of quantities across lines (the badge number, not
// the line count).
func (s *Store) Count() int {
	n := 0
	for _, l := range s.lines {
		n += l.Qty
	}
	return n
}

func (s *Store) indexOf(productID int) int {
	for i, l := range s.lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}

func (s *Store) persist() error {
	if err := s.storage.Save(s.Lines()); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}
