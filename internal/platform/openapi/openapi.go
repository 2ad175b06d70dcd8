// Package openapi builds the OpenAPI 3 document describing the HTTP
// surface of the service. The document is assembled programmatically so
// it cannot drift silently from the registered routes without a test
// catching it.
package openapi

import (
	"encoding/json"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"
)

// Document returns the OpenAPI 3 description of the API.
func Document() *openapi3.T {
	videojuegoSchema := openapi3.NewObjectSchema().
		WithProperty("id", openapi3.NewIntegerSchema()).
		WithProperty("titulo", openapi3.NewStringSchema()).
		WithProperty("plataforma", openapi3.NewStringSchema()).
		WithProperty("genero", openapi3.NewStringSchema()).
		WithProperty("lanzamiento", openapi3.NewStringSchema().WithFormat("date")).
		WithProperty("estudio", openapi3.NewStringSchema()).
		WithProperty("modo de juego", openapi3.NewStringSchema()).
		WithProperty("precio venta", openapi3.NewStringSchema()).
		WithProperty("created_at", openapi3.NewStringSchema()).
		WithProperty("updated_at", openapi3.NewStringSchema())
	videojuegoSchema.Required = []string{
		"titulo", "plataforma", "genero", "lanzamiento",
		"estudio", "modo de juego", "precio venta",
	}

	recordBody := &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().
			WithRequired(true).
			WithJSONSchema(videojuegoSchema),
	}

	idParam := &openapi3.ParameterRef{
		Value: openapi3.NewPathParameter("id").
			WithSchema(openapi3.NewIntegerSchema()).
			WithDescription("ID del videojuego"),
	}

	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       "Videojuegos API",
			Description: "CRUD sobre una colección de videojuegos persistida como documento JSON",
			Version:     "1.0.0",
		},
		Paths: openapi3.NewPaths(
			openapi3.WithPath("/Videojuegos", &openapi3.PathItem{
				Get: &openapi3.Operation{
					Summary: "Obtener videojuegos con filtros opcionales",
					Parameters: openapi3.Parameters{
						{Value: openapi3.NewQueryParameter("clave").
							WithSchema(openapi3.NewStringSchema()).
							WithDescription("Clave por la cual filtrar los registros")},
						{Value: openapi3.NewQueryParameter("valor").
							WithSchema(openapi3.NewStringSchema()).
							WithDescription("Valor por el cual filtrar los registros")},
					},
					Responses: openapi3.NewResponses(
						okResponse("Arreglo con los videojuegos encontrados"),
						badRequestResponse(),
						serverErrorResponse(),
					),
				},
			}),
			openapi3.WithPath("/Videojuegos/{id}", &openapi3.PathItem{
				Parameters: openapi3.Parameters{idParam},
				Get: &openapi3.Operation{
					Summary: "Obtener un videojuego por su ID",
					Responses: openapi3.NewResponses(
						okResponse("El videojuego correspondiente al ID"),
						notFoundResponse(),
						serverErrorResponse(),
					),
				},
				Put: &openapi3.Operation{
					Summary:     "Actualizar la información de un videojuego existente",
					RequestBody: recordBody,
					Responses: openapi3.NewResponses(
						okResponse("Videojuego actualizado"),
						badRequestResponse(),
						notFoundResponse(),
						serverErrorResponse(),
					),
				},
				Delete: &openapi3.Operation{
					Summary: "Eliminar un videojuego existente",
					Responses: openapi3.NewResponses(
						okResponse("Confirmación de borrado (idempotente)"),
						serverErrorResponse(),
					),
				},
			}),
			openapi3.WithPath("/Videojuegos/Guardarjuegos", &openapi3.PathItem{
				Post: &openapi3.Operation{
					Summary:     "Agregar un nuevo videojuego",
					RequestBody: recordBody,
					Responses: openapi3.NewResponses(
						openapi3.WithStatus(201, &openapi3.ResponseRef{
							Value: openapi3.NewResponse().WithDescription("Videojuego creado"),
						}),
						badRequestResponse(),
						serverErrorResponse(),
					),
				},
			}),
			openapi3.WithPath("/Videojuegos/ActualizarFecha", &openapi3.PathItem{
				Put: &openapi3.Operation{
					Summary: "Rellenar el campo updated_at en los registros que no lo tengan",
					Responses: openapi3.NewResponses(
						okResponse("Campos updated_at actualizados"),
						serverErrorResponse(),
					),
				},
			}),
		),
	}
}

// JSON renders the document as JSON.
func JSON() ([]byte, error) {
	return json.MarshalIndent(Document(), "", "  ")
}

// YAML renders the document as YAML, going through the JSON form so the
// openapi3 marshalling rules apply.
func YAML() ([]byte, error) {
	data, err := json.Marshal(Document())
	if err != nil {
		return nil, err
	}

	var intermediate map[string]interface{}
	if err := json.Unmarshal(data, &intermediate); err != nil {
		return nil, err
	}
	return yaml.Marshal(intermediate)
}

func okResponse(description string) openapi3.NewResponsesOption {
	return openapi3.WithStatus(200, &openapi3.ResponseRef{
		Value: openapi3.NewResponse().WithDescription(description),
	})
}

func badRequestResponse() openapi3.NewResponsesOption {
	return openapi3.WithStatus(400, &openapi3.ResponseRef{
		Value: openapi3.NewResponse().WithDescription("Solicitud inválida"),
	})
}

func notFoundResponse() openapi3.NewResponsesOption {
	return openapi3.WithStatus(404, &openapi3.ResponseRef{
		Value: openapi3.NewResponse().WithDescription("No se encontró el videojuego"),
	})
}

func serverErrorResponse() openapi3.NewResponsesOption {
	return openapi3.WithStatus(500, &openapi3.ResponseRef{
		Value: openapi3.NewResponse().WithDescription("Error del servidor"),
	})
}
