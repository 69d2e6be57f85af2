package identity

import (
	"context"
	"errors"
)

var ErrNotConfigured = errors.New("auth-server not configured")

// Unconfigured es el UserService de modo dev sin AUTH_URL: toda llamada
// falla explícito en vez de "permitir" sin control.
type Unconfigured struct{}

func (Unconfigured) Users(ctx context.Context) ([]User, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) UserByID(ctx context.Context, id string) (User, error) {
	return User{}, ErrNotConfigured
}

func (Unconfigured) CheckToken(ctx context.Context, token string) (User, error) {
	return User{}, ErrNotConfigured
}

func (Unconfigured) Register(ctx context.Context, u User) (LoginResponse, error) {
	return LoginResponse{}, ErrNotConfigured
}

func (Unconfigured) Login(ctx context.Context, in LoginInput) (LoginResponse, error) {
	return LoginResponse{}, ErrNotConfigured
}

func (Unconfigured) UpdateUser(ctx context.Context, token string, u User) (LoginResponse, error) {
	return LoginResponse{}, ErrNotConfigured
}

func (Unconfigured) DeleteUser(ctx context.Context, token string) (LoginResponse, error) {
	return LoginResponse{}, ErrNotConfigured
}
