package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msolana/videojuegos-api/internal/domain"
)

func filterFixture() []domain.Videojuego {
	return []domain.Videojuego{
		{ID: 1, Titulo: "Elden Ring", Genero: "RPG", Plataforma: "PC"},
		{ID: 2, Titulo: "Forza Horizon", Genero: "Carreras", Plataforma: "Xbox"},
		{ID: 3, Titulo: "Persona 5", Genero: "jrpg", Plataforma: "PlayStation"},
	}
}

func TestFilterSubstringCaseInsensitive(t *testing.T) {
	matched, err := Filter(filterFixture(), "genero", "rpg")

	require.NoError(t, err)
	require.Len(t, matched, 2)
	assert.Equal(t, "Elden Ring", matched[0].Titulo)
	assert.Equal(t, "Persona 5", matched[1].Titulo)
}

func TestFilterNeverAnchored(t *testing.T) {
	matched, err := Filter(filterFixture(), "titulo", "horizon")

	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, 2, matched[0].ID)
}

func TestFilterWithoutKeyOrValueReturnsInputUnchanged(t *testing.T) {
	collection := filterFixture()

	for _, pair := range [][2]string{{"", ""}, {"genero", ""}, {"", "rpg"}} {
		matched, err := Filter(collection, pair[0], pair[1])
		require.NoError(t, err)
		assert.Equal(t, collection, matched)
	}
}

func TestFilterUnknownFieldFailsWholeFilter(t *testing.T) {
	_, err := Filter(filterFixture(), "puntaje", "10")

	assert.ErrorIs(t, err, ErrFilterField)
}

func TestFilterOnNumericFieldFails(t *testing.T) {
	// id is stored as an integer, not a string field.
	_, err := Filter(filterFixture(), "id", "1")

	assert.ErrorIs(t, err, ErrFilterField)
}

func TestFilterNoMatches(t *testing.T) {
	matched, err := Filter(filterFixture(), "plataforma", "switch")

	require.NoError(t, err)
	assert.Empty(t, matched)
}

func TestFilterSpaceSeparatedFieldNames(t *testing.T) {
	collection := []domain.Videojuego{
		{ID: 1, Titulo: "A", ModoDeJuego: "Multijugador", PrecioVenta: "59.99"},
		{ID: 2, Titulo: "B", ModoDeJuego: "Un jugador", PrecioVenta: "19.99"},
	}

	matched, err := Filter(collection, "modo de juego", "multi")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, 1, matched[0].ID)

	matched, err = Filter(collection, "precio venta", "19")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, 2, matched[0].ID)
}
