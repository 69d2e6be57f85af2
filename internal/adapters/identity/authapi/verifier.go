package authapi

import (
	"context"
	"errors"
	"strings"

	"cat-map-api/internal/ports/auth"
)

var ErrTokenEmpty = errors.New("token is empty")

// Verifier implementa auth.AuthVerifier delegando en el auth-server:
// GET /users/token con el bearer. La verificación es 100% remota,
// acá no se decodifica nada.
type Verifier struct {
	client *Client
}

func NewVerifier(client *Client) *Verifier {
	return &Verifier{client: client}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || v.client == nil {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	u, err := v.client.CheckToken(ctx, token)
	if err != nil {
		return auth.Claims{}, err
	}
	if strings.TrimSpace(u.ID) == "" {
		return auth.Claims{}, errors.New("auth-server response missing user id")
	}

	return auth.Claims{
		UserID: u.ID,
		Role:   u.Role,
		Token:  token,
	}, nil
}
