package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"beandex/internal/engine"
)

// NewRouter wires the collection store behind the JSON API consumed by a
// companion presentation layer.
func NewRouter(store *engine.Store, logger *slog.Logger) http.Handler {
	h := &handler{store: store, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.health)

		r.Route("/items", func(r chi.Router) {
			r.Get("/", h.listItems)
			r.Post("/", h.addItem)
			r.Delete("/", h.clearCollection)
			r.Delete("/{id}", h.removeItem)
		})

		r.Get("/status", h.status)
		r.Get("/achievements", h.achievements)
		r.Get("/challenge", h.challenge)
		r.Post("/login-bonus", h.loginBonus)
		r.Post("/profile", h.updateProfile)

		r.Get("/notifications", h.notifications)
		r.Post("/notifications/clear", h.clearNotifications)
	})

	return r
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}
