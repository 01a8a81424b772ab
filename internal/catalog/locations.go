// Package catalog holds the curated narrative content of the map: the named
// locations, the collections of markers and routes, the default view and
// the site navigation.
package catalog

import (
	"sort"

	"github.com/maxvelasco/portuguese-map/internal/domain"
)

// Location coordinates, looked up with https://labs.mapbox.com/location-helper.
var locations = map[string]domain.Coordinates{
	"brazil_default": {Lon: -51.37135, Lat: -14.75244},
	"rio":            {Lon: -43.21043, Lat: -22.90947},
	"sao_paulo":      {Lon: -46.59564, Lat: -23.68277},
	"brasilia":       {Lon: -47.79709, Lat: -15.77545},
	"vitoria":        {Lon: -40.33564, Lat: -20.30453},
	"niteroi":        {Lon: -43.119678, Lat: -22.893564},
	"minas_gerais":   {Lon: -44.287671, Lat: -18.26705},
	"portugal":       {Lon: -8.562731, Lat: 39.600995},
	"serra_leoa":     {Lon: -11.791922, Lat: 8.560284},
	"roraima":        {Lon: -61.40579, Lat: 2.065531},
	"porto_alegre":   {Lon: -51.22773, Lat: -30.02812},
	"ibiuna":         {Lon: -47.18121, Lat: -23.65516},
	"olinda":         {Lon: -34.83907, Lat: -7.99931},
	"cova_da_moura":  {Lon: -9.16682, Lat: 38.70759},
	"havana":         {Lon: -82.35958, Lat: 23.13689},
	"paris":          {Lon: 2.34365, Lat: 48.85059},
	"lisbon":         {Lon: -9.13719, Lat: 38.70716},
}

// Location returns the coordinates of a named location.
func Location(name string) (domain.Coordinates, bool) {
	c, ok := locations[name]
	return c, ok
}

// LocationNames returns every known location name, sorted.
func LocationNames() []string {
	out := make([]string, 0, len(locations))
	for name := range locations {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// View is the initial camera and style of the map.
type View struct {
	Center   domain.Coordinates `json:"-"`
	Zoom     float64            `json:"zoom"`
	Style    string             `json:"style"`
	Language string             `json:"language"`
}

// DefaultView centres the map on Brazil.
func DefaultView() View {
	return View{
		Center:   locations["brazil_default"],
		Zoom:     3.5,
		Style:    "mapbox://styles/mapbox/streets-v11",
		Language: "pt",
	}
}

// NavItem is one entry of the site toolbar.
type NavItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// Navigation returns the toolbar entries in display order.
func Navigation() []NavItem {
	return []NavItem{
		{Label: "Mapas", Path: "/"},
		{Label: "Sobre o Projeto", Path: "/sobre"},
		{Label: "Intervenções Artísticas", Path: "/intervencoes"},
		{Label: "Podcasts", Path: "/podcasts"},
		{Label: "Entrevistas", Path: "/entrevistas"},
		{Label: "Vídeo-ensaios", Path: "/video-ensaios"},
		{Label: "Ensaios", Path: "/ensaios"},
		{Label: "Colaboradores", Path: "/colaboradores"},
		{Label: "Fale Conosco", Path: "/fale-conosco"},
	}
}
