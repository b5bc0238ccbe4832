package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleJSON = `[
  {"id": 1, "name": "Velocity Run", "category": "running", "price": 129.99, "image": "/assets/img/velocity.webp", "color": "Crimson / White"},
  {"id": 2, "name": "Court Classic", "category": "lifestyle", "price": 89.50, "image": "/assets/img/court.webp"},
  {"id": 3, "name": "Trail Grip", "category": "running", "price": 140.00, "image": "/assets/img/trail.webp", "color": "Moss"}
]`

func writeSample(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	return path
}

func loadedCatalog(t *testing.T) *Catalog {
	t.Helper()
	c := New(nil)
	if err := c.Load(writeSample(t, sampleJSON)); err != nil {
		t.Fatalf("load: %v", err)
	}
	return c
}

func TestLoadConvertsPricesToCents(t *testing.T) {
	c := loadedCatalog(t)
	want := []Product{
		{ID: 1, Name: "Velocity Run", Category: "running", Price: 12999, Image: "/assets/img/velocity.webp", Color: "Crimson / White"},
		{ID: 2, Name: "Court Classic", Category: "lifestyle", Price: 8950, Image: "/assets/img/court.webp"},
		{ID: 3, Name: "Trail Grip", Category: "running", Price: 14000, Image: "/assets/img/trail.webp", Color: "Moss"},
	}
	if diff := cmp.Diff(want, c.FilterByCategory(FilterAll)); diff != "" {
		t.Fatalf("loaded products mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingFileLeavesCatalogEmpty(t *testing.T) {
	c := New(nil)
	if err := c.Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if c.Len() != 0 {
		t.Fatalf("expected empty catalog, got %d products", c.Len())
	}
}

func TestLoadMalformedKeepsPreviousCollection(t *testing.T) {
	c := loadedCatalog(t)
	if err := c.Load(writeSample(t, "{not json")); err == nil {
		t.Fatalf("expected decode error")
	}
	if c.Len() != 3 {
		t.Fatalf("expected previous collection retained, got %d products", c.Len())
	}
}

func TestFindByID(t *testing.T) {
	c := loadedCatalog(t)
	p, ok := c.FindByID(2)
	if !ok {
		t.Fatalf("expected product 2 to be found")
	}
	if p.Name != "Court Classic" || p.Price != 8950 {
		t.Fatalf("unexpected product: %+v", p)
	}
	if _, ok := c.FindByID(99); ok {
		t.Fatalf("expected id 99 to be absent")
	}
}

func TestFilterByCategory(t *testing.T) {
	c := loadedCatalog(t)

	all := c.FilterByCategory("all")
	if len(all) != 3 {
		t.Fatalf("filter all: expected 3 products, got %d", len(all))
	}
	for i, id := range []int{1, 2, 3} {
		if all[i].ID != id {
			t.Fatalf("filter all: expected original order, got %v", all)
		}
	}

	running := c.FilterByCategory("running")
	if len(running) != 2 || running[0].ID != 1 || running[1].ID != 3 {
		t.Fatalf("filter running: unexpected result %v", running)
	}

	if got := c.FilterByCategory("nonexistent"); len(got) != 0 {
		t.Fatalf("filter nonexistent: expected empty, got %v", got)
	}
}

func TestCategoriesFirstSeenOrder(t *testing.T) {
	c := loadedCatalog(t)
	want := []string{"running", "lifestyle"}
	if diff := cmp.Diff(want, c.Categories()); diff != "" {
		t.Fatalf("categories mismatch (-want +got):\n%s", diff)
	}
}
