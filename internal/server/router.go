// Package server assembles the HTTP routes.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/tammam101/temox/backend/internal/auth"
	"github.com/tammam101/temox/backend/internal/catalog"
	"github.com/tammam101/temox/backend/internal/contact"
	"github.com/tammam101/temox/backend/internal/middleware"
	"github.com/tammam101/temox/backend/internal/web"
)

// Deps are the collaborators behind the routes. Limiter and Assets are
// optional: a nil Limiter disables rate limiting and a nil Assets leaves
// /assets unrouted. TrustProxy takes the client address from
// X-Forwarded-For / X-Real-IP; leave it off unless a proxy that overwrites
// those headers sits in front, since the rate limiter keys on that address.
type Deps struct {
	Catalog     *catalog.Catalog
	Validator   contact.Validator
	Users       auth.Registrar
	Contacts    contact.Submitter
	Views       *web.Views
	Limiter     middleware.Limiter
	Assets      web.AssetStore
	CORSOrigins []string
	TrustProxy  bool
	Log         *slog.Logger
}

func NewRouter(d Deps) http.Handler {
	authHandler := auth.NewHandler(d.Users)
	contactHandler := contact.NewHandler(d.Contacts)
	pages := web.NewHandler(d.Views, d.Catalog, d.Validator, d.Contacts, d.Log)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	if d.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(chimw.RequestLogger(&chimw.DefaultLogFormatter{
		Logger:  slog.NewLogLogger(d.Log.Handler(), slog.LevelInfo),
		NoColor: true,
	}))
	r.Use(chimw.Recoverer)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: d.CORSOrigins,
			AllowedMethods: []string{"POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
			MaxAge:         300,
		}))
		r.With(middleware.RateLimit(d.Limiter, "register", d.Log)).Post("/auth/register", authHandler.Register)
		r.With(middleware.RateLimit(d.Limiter, "contact-api", d.Log)).Post("/contact", contactHandler.Create)
	})

	r.Get("/", pages.Home)
	r.Get("/services/{slug}", pages.ServiceDetail)
	r.Get("/contact", pages.ContactForm)
	r.With(middleware.RateLimit(d.Limiter, "contact", d.Log)).Post("/contact", pages.ContactSubmit)

	if d.Assets != nil {
		r.Get("/assets/*", web.NewAssets(d.Assets, d.Log).Serve)
	}

	r.NotFound(pages.NotFound)
	return r
}
