package graph

import (
	"errors"

	"cat-map-api/internal/domain/cats"
	"cat-map-api/internal/ports/auth"
	"cat-map-api/internal/ports/identity"
)

// Códigos machine-readable que viajan en extensions.code.
const (
	CodeNotAuthorized = "NOT_AUTHORIZED"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeNotFound      = "NOT_FOUND"
	CodeBadUserInput  = "BAD_USER_INPUT"
)

// Error es el error estructurado que expone el API: mensaje humano
// + código en extensions (contrato que la librería recoge vía Extensions()).
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.Code}
}

// translate mapea errores del dominio y del boundary de federación al
// error estructurado del API. Lo que no se reconoce pasa tal cual
// (p.ej. fallas del store, que no se envuelven).
func translate(err error) error {
	var remote *identity.RemoteError

	switch {
	case errors.Is(err, auth.ErrNotAuthorized):
		return &Error{Code: CodeNotAuthorized, Message: "Not authorized"}
	case errors.Is(err, auth.ErrUnauthorized):
		return &Error{Code: CodeUnauthorized, Message: "Unauthorized"}
	case errors.As(err, &remote):
		// status text del remoto como mensaje, código fijo
		return &Error{Code: CodeNotFound, Message: remote.Status}
	case errors.Is(err, cats.ErrInvalidInput):
		return &Error{Code: CodeBadUserInput, Message: err.Error()}
	}
	return err
}
