package router

import (
	"database/sql"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/graph-gophers/graphql-go/relay"
	mongodrv "go.mongodb.org/mongo-driver/mongo"

	mem "cat-map-api/internal/adapters/storage/memory"
	mgo "cat-map-api/internal/adapters/storage/mongo"
	pg "cat-map-api/internal/adapters/storage/postgres"
	"cat-map-api/internal/domain/cats"
	"cat-map-api/internal/graph"
	"cat-map-api/internal/middleware"
	"cat-map-api/internal/platform/logger"
	"cat-map-api/internal/ports/auth"
	"cat-map-api/internal/ports/identity"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Identity es el cliente del auth-server. Obligatorio para resolver
	// owners y las operaciones de users.
	Identity identity.UserService

	// Backend del store, en orden de preferencia: Mongo, luego DB (pgx),
	// si no hay ninguno => in-memory.
	Mongo *mongodrv.Database
	DB    *sql.DB

	Log logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	repo := pickRepo(opts, log)

	users := opts.Identity
	if users == nil {
		users = identity.Unconfigured{}
	}

	resolver := graph.NewResolver(cats.NewService(repo), users, log)
	r.Handle("/graphql", &relay.Handler{Schema: graph.NewSchema(resolver)})

	return r
}

// pickRepo elige backend. Si no viene explícito, intenta por env
// (para dev/handoff): MONGO_URL > DB_DSN > in-memory.
func pickRepo(opts Options, log logger.Logger) cats.Repository {
	if opts.Mongo != nil {
		return mgo.NewCatsRepo(opts.Mongo)
	}
	if opts.DB != nil {
		return pg.NewCatsRepo(opts.DB)
	}

	if uri := os.Getenv("MONGO_URL"); uri != "" {
		dbName := os.Getenv("MONGO_DB")
		if dbName == "" {
			dbName = "catmap"
		}
		db, err := mgo.Open(uri, dbName)
		if err == nil {
			return mgo.NewCatsRepo(db)
		}
		log.Warn("mongo unavailable, falling back", map[string]any{"err": err.Error()})
	}

	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		db, err := pg.Open(dsn)
		if err == nil {
			return pg.NewCatsRepo(db)
		}
		log.Warn("postgres unavailable, falling back", map[string]any{"err": err.Error()})
	}

	return mem.NewCatRepo()
}
