package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxvelasco/portuguese-map/internal/domain"
)

func TestCollectionsAreValid(t *testing.T) {
	cols := Collections()
	require.Len(t, cols, 1)
	c := cols[0]
	assert.Equal(t, "Aline Motta", c.Name)
	assert.Len(t, c.Markers, 18)
	assert.Len(t, c.Routes, 12)

	for _, m := range c.Markers {
		_, err := m.Entry.Key()
		assert.NoError(t, err, "marker %q", m.Entry.Title)
	}
	for _, r := range c.Routes {
		assert.NoError(t, r.Validate())
		assert.Nil(t, r.Popup.Coordinates, "route popups are not grouped")
	}
}

func TestSharedLocationsFormGroups(t *testing.T) {
	counts := map[string]int{}
	for _, m := range Collections()[0].Markers {
		k, _ := m.Entry.Key()
		counts[k]++
	}

	rio, _ := Location("rio")
	havana, _ := Location("havana")
	saoPaulo, _ := Location("sao_paulo")
	assert.Equal(t, 3, counts[rio.Key()])
	assert.Equal(t, 2, counts[havana.Key()])
	assert.Equal(t, 2, counts[saoPaulo.Key()])
	assert.Len(t, counts, 14)
}

func TestEmptyURLHasNoLink(t *testing.T) {
	for _, m := range Collections()[0].Markers {
		if m.Entry.Title == "36º Festival del Nuevo Cinema Latino-Americano de Havana, Cuba (2014)" {
			assert.Nil(t, m.Entry.Link)
			return
		}
	}
	t.Fatal("festival entry missing")
}

func TestCollectionsReturnFreshValues(t *testing.T) {
	a := Collections()
	a[0].Markers[0].Entry.Coordinates.Lon = 0

	b := Collections()
	assert.Equal(t, -43.119678, b[0].Markers[0].Entry.Coordinates.Lon)
}

func TestDefaultView(t *testing.T) {
	v := DefaultView()
	assert.Equal(t, domain.Coordinates{Lon: -51.37135, Lat: -14.75244}, v.Center)
	assert.Equal(t, 3.5, v.Zoom)
	assert.Equal(t, "pt", v.Language)
}

func TestNavigation(t *testing.T) {
	nav := Navigation()
	require.Len(t, nav, 9)
	assert.Equal(t, NavItem{Label: "Mapas", Path: "/"}, nav[0])
	assert.Equal(t, "/fale-conosco", nav[len(nav)-1].Path)
}
