package nav

import "testing"

func TestBuildMarksExactlyOneActive(t *testing.T) {
	items := Build("/shop")
	active := 0
	for _, it := range items {
		if it.Active {
			active++
			if it.Href != "/shop" {
				t.Fatalf("expected /shop active, got %q", it.Href)
			}
		}
	}
	if active != 1 {
		t.Fatalf("expected exactly one active link, got %d", active)
	}
}

func TestBuildPrefixBoundary(t *testing.T) {
	for _, it := range Build("/collections/retro-court") {
		if it.Href == "/collections" && !it.Active {
			t.Fatalf("expected /collections active for nested path")
		}
		if it.Href == "/" && it.Active {
			t.Fatalf("home must not be active on nested path")
		}
	}
	// "/shopping" must not activate "/shop"
	for _, it := range Build("/shopping") {
		if it.Active {
			t.Fatalf("no link should be active for /shopping, got %q", it.Href)
		}
	}
}

func TestAnchorLinksNeverActive(t *testing.T) {
	for _, path := range []string{"/", "/shop", "/new-season"} {
		for _, it := range Build(path) {
			if it.Href == "#new-season" && it.Active {
				t.Fatalf("anchor link highlighted on %q", path)
			}
		}
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	a := Build("/shop")
	b := Build("/shop")
	if len(a) != len(b) {
		t.Fatalf("length mismatch")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("recomputation differs at %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestPageID(t *testing.T) {
	cases := map[string]string{
		"/":                 "index",
		"":                  "index",
		"/shop":             "shop",
		"/collections/abc":  "collections",
		"/checkout":         "checkout",
	}
	for path, want := range cases {
		if got := PageID(path); got != want {
			t.Errorf("PageID(%q) = %q, want %q", path, got, want)
		}
	}
}
