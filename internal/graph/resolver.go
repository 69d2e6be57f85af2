// Package graph implementa la capa de resolvers: traduce argumentos del
// API a queries del store, aplica los guards antes de cualquier mutación
// y federa el campo owner contra el auth-server.
package graph

import (
	"cat-map-api/internal/domain/cats"
	"cat-map-api/internal/platform/logger"
	"cat-map-api/internal/ports/identity"
)

// Resolver es el root resolver (queries + mutations).
type Resolver struct {
	cats  *cats.Service
	users identity.UserService
	log   logger.Logger
}

func NewResolver(catsSvc *cats.Service, users identity.UserService, log logger.Logger) *Resolver {
	return &Resolver{
		cats:  catsSvc,
		users: users,
		log:   log,
	}
}
