package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// TimestampLayout is the wire format for created_at and updated_at.
const TimestampLayout = "2006-01-02 15:04"

// ReleaseDateLayout is the wire format for lanzamiento (ISO-8601 date).
const ReleaseDateLayout = "2006-01-02"

// Videojuego represents one video game entry in the collection.
// Field names on the wire follow the persisted document, including the
// space-separated keys "modo de juego" and "precio venta".
type Videojuego struct {
	ID          int    `json:"id"`
	Titulo      string `json:"titulo"          validate:"required"`
	Plataforma  string `json:"plataforma"      validate:"required"`
	Genero      string `json:"genero"          validate:"required"`
	Lanzamiento string `json:"lanzamiento"     validate:"required,datetime=2006-01-02"`
	Estudio     string `json:"estudio"         validate:"required"`
	ModoDeJuego string `json:"modo de juego"   validate:"required"`
	PrecioVenta string `json:"precio venta"    validate:"required"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// recordValidator checks structural validity of incoming records.
// Field names in error messages use the JSON keys so clients see the
// names they actually sent.
var recordValidator = newRecordValidator()

func newRecordValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(jsonTagName)
	return v
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// Validate checks that every required field is present and that
// lanzamiento parses as an ISO-8601 date. It fails fast on the first
// violated field rather than aggregating all violations, and never
// coerces or strips fields.
func (v *Videojuego) Validate() error {
	err := recordValidator.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		return fmt.Errorf("%w: %s", ErrInvalidRecord, fieldViolationMessage(first))
	}

	return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
}

// fieldViolationMessage renders a single validation failure as a short
// client-facing message naming the violated field.
func fieldViolationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", fe.Field())
	case "datetime":
		return fmt.Sprintf("%q must be an ISO-8601 date (%s)", fe.Field(), ReleaseDateLayout)
	default:
		return fmt.Sprintf("%q is invalid", fe.Field())
	}
}

// StampCreated sets created_at to the given local time. It never touches
// any other field.
func (v *Videojuego) StampCreated(now time.Time) {
	v.CreatedAt = now.Format(TimestampLayout)
}

// StampUpdated sets updated_at to the given local time.
func (v *Videojuego) StampUpdated(now time.Time) {
	v.UpdatedAt = now.Format(TimestampLayout)
}
