package auth

import (
	"errors"
	"strings"
)

var (
	// ErrNotAuthorized: falta token (o rol insuficiente) en mutaciones de cats.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrUnauthorized: misma precondición local, pero reservado para las
	// mutaciones de cuenta de usuario. Son dos códigos distintos hacia el
	// cliente, así que se mantienen como sentinelas separados.
	ErrUnauthorized = errors.New("unauthorized")
)

// RequireAuthenticated exige presencia de token. Nada más: no valida
// el token ni mira ownership (eso vive en el predicado del repo).
func RequireAuthenticated(c Claims) error {
	if strings.TrimSpace(c.Token) == "" {
		return ErrNotAuthorized
	}
	return nil
}

// RequireAdmin exige token presente y rol admin.
func RequireAdmin(c Claims) error {
	if strings.TrimSpace(c.Token) == "" || c.Role != RoleAdmin {
		return ErrNotAuthorized
	}
	return nil
}
