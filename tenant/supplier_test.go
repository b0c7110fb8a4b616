package tenant

import (
	"net/url"
	"testing"
)

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse %q: %v", raw, err)
	}
	return u
}

func testSuppliers() []Supplier {
	return []Supplier{
		{Code: "a", Suffix: "shopa", MallName: "罗文烟花商城"},
		{Code: "b", Suffix: "ShopB", MallName: "承天烟花商城"},
	}
}

func TestResolveSupplier_Match(t *testing.T) {
	suppliers := testSuppliers()

	got := ResolveSupplier(mustParse(t, "/shopa/cart"), suppliers)
	if got.Code != "a" {
		t.Fatalf("expected supplier a, got %s", got.Code)
	}
}

func TestResolveSupplier_CaseInsensitive(t *testing.T) {
	suppliers := testSuppliers()

	got := ResolveSupplier(mustParse(t, "/SHOPB/products?d=gz"), suppliers)
	if got.Code != "b" {
		t.Fatalf("expected supplier b, got %s", got.Code)
	}
}

func TestResolveSupplier_NoMatch(t *testing.T) {
	suppliers := testSuppliers()

	for _, raw := range []string{"/", "/unknown/cart", ""} {
		got := ResolveSupplier(mustParse(t, raw), suppliers)
		if got.Code != "default" || got.Suffix != "" {
			t.Fatalf("path %q: expected default supplier, got %+v", raw, got)
		}
	}
}

func TestResolveSupplier_EmptyDirectory(t *testing.T) {
	got := ResolveSupplier(mustParse(t, "/shopa"), nil)
	if got.Code != "default" {
		t.Fatalf("expected default supplier, got %s", got.Code)
	}
}

func TestResolveSupplier_NilURL(t *testing.T) {
	got := ResolveSupplier(nil, testSuppliers())
	if got.Code != "default" {
		t.Fatalf("expected default supplier, got %s", got.Code)
	}
}

func TestBuildPath(t *testing.T) {
	gz := Supplier{Code: "gz", Suffix: "gz"}

	cases := []struct {
		supplier Supplier
		logical  string
		want     string
	}{
		{DefaultSupplier, "/cart", "/cart"},
		{DefaultSupplier, "cart", "/cart"},
		{gz, "/", "/gz"},
		{gz, "/cart", "/gz/cart"},
		{gz, "orders", "/gz/orders"},
	}
	for _, c := range cases {
		if got := BuildPath(c.supplier, c.logical); got != c.want {
			t.Fatalf("BuildPath(%q, %q) = %q, want %q", c.supplier.Suffix, c.logical, got, c.want)
		}
	}
}
