package pageroutes

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewTable(t *testing.T) {
	tests := []struct {
		name    string
		routes  []Route
		wantErr string // expected ConfigurationError reason, "" for success
	}{
		{
			name:   "Empty table",
			routes: nil,
		},
		{
			name:   "Shop table",
			routes: shopRoutes(),
		},
		{
			name:    "Duplicate path",
			routes:  []Route{{Path: "/a", View: homeView}, {Path: "/a", View: cartView}},
			wantErr: "duplicate path",
		},
		{
			name:    "Empty path",
			routes:  []Route{{Path: "", View: homeView}},
			wantErr: "empty path",
		},
		{
			name:    "Relative path",
			routes:  []Route{{Path: "cart", View: cartView}},
			wantErr: "path must start with /",
		},
		{
			name:    "Nil view",
			routes:  []Route{{Path: "/cart"}},
			wantErr: "nil view",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewTable(tt.routes...)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("NewTable() unexpected error: %v", err)
				}
				if table.Len() != len(tt.routes) {
					t.Errorf("Len() = %d, want %d", table.Len(), len(tt.routes))
				}
				return
			}
			var ce *ConfigurationError
			if !errors.As(err, &ce) {
				t.Fatalf("NewTable() error = %v, want *ConfigurationError", err)
			}
			if ce.Reason != tt.wantErr {
				t.Errorf("Reason = %q, want %q", ce.Reason, tt.wantErr)
			}
		})
	}
}

func TestTableRoutesOrderAndCopy(t *testing.T) {
	table, err := NewTable(shopRoutes()...)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, r := range table.Routes() {
		got = append(got, r.Path)
	}
	want := []string{"/", "/login", "/register", "/cart", "/profile"}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("Routes() order mismatch (-got +want):\n%s", diff)
	}

	routes := table.Routes()
	routes[0].Path = "/mutated"
	if _, ok := table.Lookup("/"); !ok {
		t.Error("mutating Routes() result changed the table")
	}
}

func TestTableLookup(t *testing.T) {
	table, err := NewTable(shopRoutes()...)
	if err != nil {
		t.Fatal(err)
	}
	r, ok := table.Lookup("/register")
	if !ok || r.View != registerView {
		t.Errorf("Lookup(/register) = %v, %v", r, ok)
	}
	if _, ok := table.Lookup("/register/"); ok {
		t.Error("Lookup must use exact matching")
	}
}

func TestRouteString(t *testing.T) {
	if got := (Route{Path: "/", View: homeView, Name: "Home"}).String(); got != "Home" {
		t.Errorf("String() = %q, want Home", got)
	}
	if got := (Route{Path: "/", View: homeView}).String(); got != "pageroutes.testComponent" {
		t.Errorf("String() = %q, want pageroutes.testComponent", got)
	}
}
