package tui

import "github.com/Urdemonlord/mangagueh/internal/domain"

// Route maps a path to the list it shows
type Route struct {
	Path   string
	Label  string
	Filter domain.FilterMode
}

// Routes are the navigable pages, in tab order
var Routes = []Route{
	{Path: "/", Label: "Home", Filter: domain.FilterNone},
	{Path: "/popular", Label: "Popular", Filter: domain.FilterPopular},
	{Path: "/latest", Label: "Latest", Filter: domain.FilterLatest},
}

// RouteFor returns the route registered for path
func RouteFor(path string) (Route, bool) {
	idx := routeIndex(path)
	if idx < 0 {
		return Route{}, false
	}
	return Routes[idx], true
}

func routeIndex(path string) int {
	for i, r := range Routes {
		if r.Path == path {
			return i
		}
	}
	return -1
}
