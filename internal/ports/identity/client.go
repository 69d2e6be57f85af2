package identity

import "context"

// UserService es el contrato con el auth-server (system of record de users).
// Cada llamada es un único round-trip HTTP; sin retry ni circuit breaking.
// Un status no-2xx se traduce a *RemoteError.
type UserService interface {
	Users(ctx context.Context) ([]User, error)
	UserByID(ctx context.Context, id string) (User, error)

	// CheckToken reenvía el bearer token; el auth-server resuelve el user.
	CheckToken(ctx context.Context, token string) (User, error)

	Register(ctx context.Context, u User) (LoginResponse, error)
	Login(ctx context.Context, in LoginInput) (LoginResponse, error)

	// UpdateUser/DeleteUser nunca mandan user id: el auth-server lo saca
	// del token que va en Authorization.
	UpdateUser(ctx context.Context, token string, u User) (LoginResponse, error)
	DeleteUser(ctx context.Context, token string) (LoginResponse, error)
}
