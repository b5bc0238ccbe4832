package drawer

import "testing"

func TestPanelsStartClosed(t *testing.T) {
	c := NewController()
	if c.State(Cart) != Closed || c.State(Menu) != Closed {
		t.Fatalf("expected both panels closed initially")
	}
	if c.ScrollLocked() {
		t.Fatalf("scroll must not be locked while everything is closed")
	}
}

func TestOpenCloseTransitions(t *testing.T) {
	c := NewController()

	c.Open(Cart)
	if !c.IsOpen(Cart) {
		t.Fatalf("cart should be open")
	}
	if c.IsOpen(Menu) {
		t.Fatalf("menu state must be independent of cart")
	}
	if !c.ScrollLocked() {
		t.Fatalf("open panel must lock background scroll")
	}

	c.Close(Cart)
	if c.IsOpen(Cart) {
		t.Fatalf("cart should be closed")
	}
	if c.ScrollLocked() {
		t.Fatalf("closing the panel must release the scroll lock")
	}
}

func TestViewModel(t *testing.T) {
	c := NewController()
	c.Open(Menu)
	vm := c.View()
	if vm.CartOpen || !vm.MenuOpen || !vm.ScrollLocked {
		t.Fatalf("unexpected view model: %+v", vm)
	}
}
