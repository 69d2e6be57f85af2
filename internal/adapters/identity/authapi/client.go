package authapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"cat-map-api/internal/platform/httpclient"
	"cat-map-api/internal/ports/identity"
)

var ErrNotConfigured = errors.New("auth-server client not configured")

// Config del cliente del auth-server.
// BaseURL viene inyectada (normalmente de AUTH_URL), no se lee del
// ambiente en cada llamada: así se puede sustituir por un stub en tests.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client implementa identity.UserService contra el auth-server.
// Cada método es un único round-trip; un status no-2xx se traduce a
// *identity.RemoteError con el status text del remoto. Sin retries.
type Client struct {
	http *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, ErrNotConfigured
	}
	hc, err := httpclient.NewWithBaseURL(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	return &Client{http: hc}, nil
}

// NewClientWithTransport permite inyectar un RoundTripper (tests).
func NewClientWithTransport(baseURL string, tr http.RoundTripper) (*Client, error) {
	c, err := NewClient(Config{BaseURL: baseURL})
	if err != nil {
		return nil, err
	}
	c.http = httpclient.NewWithTransport(0, tr)
	c.http.BaseURL = strings.TrimRight(baseURL, "/")
	return c, nil
}

func (c *Client) Users(ctx context.Context) ([]identity.User, error) {
	var out []identity.User
	if err := c.http.DoJSON(ctx, http.MethodGet, "/users", nil, nil, &out); err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (c *Client) UserByID(ctx context.Context, id string) (identity.User, error) {
	var out identity.User
	if err := c.http.DoJSON(ctx, http.MethodGet, "/users/"+strings.TrimSpace(id), nil, nil, &out); err != nil {
		return identity.User{}, translate(err)
	}
	return out, nil
}

func (c *Client) CheckToken(ctx context.Context, token string) (identity.User, error) {
	var out identity.User
	if err := c.http.DoJSON(ctx, http.MethodGet, "/users/token", bearer(token), nil, &out); err != nil {
		return identity.User{}, translate(err)
	}
	return out, nil
}

func (c *Client) Register(ctx context.Context, u identity.User) (identity.LoginResponse, error) {
	var out identity.LoginResponse
	if err := c.http.DoJSON(ctx, http.MethodPost, "/users", nil, u, &out); err != nil {
		return identity.LoginResponse{}, translate(err)
	}
	return out, nil
}

func (c *Client) Login(ctx context.Context, in identity.LoginInput) (identity.LoginResponse, error) {
	var out identity.LoginResponse
	if err := c.http.DoJSON(ctx, http.MethodPost, "/auth/login", nil, in, &out); err != nil {
		return identity.LoginResponse{}, translate(err)
	}
	return out, nil
}

// UpdateUser no manda user id: el auth-server resuelve la cuenta desde
// el token del header Authorization.
func (c *Client) UpdateUser(ctx context.Context, token string, u identity.User) (identity.LoginResponse, error) {
	var out identity.LoginResponse
	if err := c.http.DoJSON(ctx, http.MethodPut, "/users", bearer(token), u, &out); err != nil {
		return identity.LoginResponse{}, translate(err)
	}
	return out, nil
}

func (c *Client) DeleteUser(ctx context.Context, token string) (identity.LoginResponse, error) {
	var out identity.LoginResponse
	if err := c.http.DoJSON(ctx, http.MethodDelete, "/users", bearer(token), nil, &out); err != nil {
		return identity.LoginResponse{}, translate(err)
	}
	return out, nil
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// translate convierte el HTTPError del transporte en el error uniforme
// del boundary de federación. Otros errores (red, json) pasan tal cual.
func translate(err error) error {
	var he *httpclient.HTTPError
	if errors.As(err, &he) {
		return identity.NewRemoteError(he.StatusCode)
	}
	return err
}
