package main

import (
	"encoding/json"
	"fmt"
	"net/http"

	"aerostride.shop/web/internal/cart"
	mw "aerostride.shop/web/internal/middleware"
)

// sessionCartStorage keeps the serialized cart inside the signed
// session cookie — the shopper's durable local storage. Save rewrites
// the full payload and marks the session dirty so the cookie goes out
// with the response of the mutating request.
type sessionCartStorage struct {
	sd *mw.SessionData
}

func (s sessionCartStorage) Load() ([]cart.Line, error) {
	if len(s.sd.Cart) == 0 {
		return nil, nil
	}
	var lines []cart.Line
	if err := json.Unmarshal(s.sd.Cart, &lines); err != nil {
		return nil, fmt.Errorf("decode cart payload: %w", err)
	}
	return lines, nil
}

func (s sessionCartStorage) Save(lines []cart.Line) error {
	b, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encode cart payload: %w", err)
	}
	s.sd.Cart = b
	s.sd.MarkDirty()
	return nil
}

// cartStoreFor restores the request's cart from its session. Malformed
// stored state degrades to an empty cart inside cart.NewStore.
func cartStoreFor(r *http.Request) *cart.Store {
	return cart.NewStore(shopCatalog, sessionCartStorage{sd: mw.GetSession(r)})
}
