package auth

import "context"

// AuthVerifier resuelve un token a claims, o error.
// La implementación real delega en el auth-server (GET /users/token);
// en tests se sustituye por un fake.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
