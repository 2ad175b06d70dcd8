package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/msolana/videojuegos-api/internal/domain"
)

// ErrFilterField is returned when the filter clave does not name a
// string-valued field of the record. The whole filter fails rather than
// skipping records, so a typo in clave is not mistaken for an empty
// result.
var ErrFilterField = errors.New("filter field is not a filterable string field")

// filterFields maps wire-format field names to accessors for the
// string-valued fields a filter may target. id is deliberately absent:
// it is numeric and filtering on it fails with ErrFilterField.
var filterFields = map[string]func(*domain.Videojuego) string{
	"titulo":        func(v *domain.Videojuego) string { return v.Titulo },
	"plataforma":    func(v *domain.Videojuego) string { return v.Plataforma },
	"genero":        func(v *domain.Videojuego) string { return v.Genero },
	"lanzamiento":   func(v *domain.Videojuego) string { return v.Lanzamiento },
	"estudio":       func(v *domain.Videojuego) string { return v.Estudio },
	"modo de juego": func(v *domain.Videojuego) string { return v.ModoDeJuego },
	"precio venta":  func(v *domain.Videojuego) string { return v.PrecioVenta },
	"created_at":    func(v *domain.Videojuego) string { return v.CreatedAt },
	"updated_at":    func(v *domain.Videojuego) string { return v.UpdatedAt },
}

// Filter narrows the collection to records whose clave field contains
// valor as a case-insensitive, unanchored substring. If either clave or
// valor is empty the input is returned unchanged.
func Filter(collection []domain.Videojuego, clave, valor string) ([]domain.Videojuego, error) {
	if clave == "" || valor == "" {
		return collection, nil
	}

	field, ok := filterFields[clave]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFilterField, clave)
	}

	needle := strings.ToLower(valor)
	var matched []domain.Videojuego
	for i := range collection {
		if strings.Contains(strings.ToLower(field(&collection[i])), needle) {
			matched = append(matched, collection[i])
		}
	}
	return matched, nil
}
