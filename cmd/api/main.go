package main

import (
	"net/http"
	"os"
	"time"

	"cat-map-api/internal/adapters/identity/authapi"
	"cat-map-api/internal/platform/logger"
	"cat-map-api/internal/ports/auth"
	"cat-map-api/internal/ports/identity"
	"cat-map-api/internal/router"
)

func main() {
	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	var (
		users    identity.UserService
		verifier auth.AuthVerifier
	)

	// AUTH_URL: base del auth-server. Sin él, corre en modo dev
	// (claims por X-Debug-User-ID y sin federación de users).
	if base := os.Getenv("AUTH_URL"); base != "" {
		client, err := authapi.NewClient(authapi.Config{BaseURL: base})
		if err != nil {
			log.Error("invalid AUTH_URL", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		users = client
		verifier = authapi.NewVerifier(client)
	} else {
		log.Warn("AUTH_URL not set, running in dev mode", nil)
	}

	r := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		Identity:     users,
		Log:          log,
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
}
