package tui

import (
	"testing"

	"github.com/Urdemonlord/mangagueh/internal/domain"
)

func TestRouteFor(t *testing.T) {
	tests := []struct {
		path   string
		ok     bool
		filter domain.FilterMode
	}{
		{"/", true, domain.FilterNone},
		{"/popular", true, domain.FilterPopular},
		{"/latest", true, domain.FilterLatest},
		{"/settings", false, domain.FilterNone},
		{"", false, domain.FilterNone},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			route, ok := RouteFor(tt.path)
			if ok != tt.ok {
				t.Fatalf("RouteFor(%q) ok = %v, want %v", tt.path, ok, tt.ok)
			}
			if ok && route.Filter != tt.filter {
				t.Errorf("RouteFor(%q) filter = %v, want %v", tt.path, route.Filter, tt.filter)
			}
		})
	}
}
