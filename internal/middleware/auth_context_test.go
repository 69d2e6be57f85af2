package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cat-map-api/internal/ports/auth"
)

type fakeVerifier struct {
	claims auth.Claims
	err    error
	gotTok string
}

func (f *fakeVerifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	f.gotTok = token
	return f.claims, f.err
}

func runWith(verifier auth.AuthVerifier, mutate func(*http.Request)) (auth.Claims, bool) {
	var (
		claims auth.Claims
		ok     bool
	)
	h := AuthContext(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok = GetClaims(r.Context())
	}))

	req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	mutate(req)
	h.ServeHTTP(httptest.NewRecorder(), req)
	return claims, ok
}

func TestAuthContext_VerifierMode_SetsClaims(t *testing.T) {
	v := &fakeVerifier{claims: auth.Claims{UserID: "u1", Role: "admin", Token: "tok"}}

	claims, ok := runWith(v, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer tok")
	})
	if !ok {
		t.Fatal("expected claims in context")
	}
	if claims.UserID != "u1" || claims.Role != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if v.gotTok != "tok" {
		t.Fatalf("verifier got token %q", v.gotTok)
	}
}

func TestAuthContext_InvalidToken_StaysAnonymous(t *testing.T) {
	v := &fakeVerifier{err: errors.New("boom")}

	_, ok := runWith(v, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer bad")
	})
	if ok {
		t.Fatal("expected anonymous request on verify failure")
	}
}

func TestAuthContext_NoBearer_NoClaims(t *testing.T) {
	v := &fakeVerifier{claims: auth.Claims{UserID: "u1"}}

	if _, ok := runWith(v, func(r *http.Request) {}); ok {
		t.Fatal("expected no claims without Authorization header")
	}
	if _, ok := runWith(v, func(r *http.Request) {
		r.Header.Set("Authorization", "Basic abc")
	}); ok {
		t.Fatal("expected no claims for non-bearer scheme")
	}
}

func TestAuthContext_DevMode_DebugHeaders(t *testing.T) {
	claims, ok := runWith(nil, func(r *http.Request) {
		r.Header.Set("X-Debug-User-ID", "dev-user")
		r.Header.Set("X-Debug-Role", "admin")
	})
	if !ok {
		t.Fatal("expected claims in dev mode")
	}
	if claims.UserID != "dev-user" || claims.Role != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.Token == "" {
		t.Fatal("dev claims must carry a synthetic token for the guards")
	}
}

func TestAuthContext_DevMode_NoHeaders_Anonymous(t *testing.T) {
	if _, ok := runWith(nil, func(r *http.Request) {}); ok {
		t.Fatal("expected anonymous request in dev mode without debug headers")
	}
}
