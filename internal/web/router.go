package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger)
	r.Use(h.recoverPanic)
	r.Use(middleware.Timeout(15 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	h.Register(r)
	return r
}

// recoverPanic converts a handler panic into the generic 500 page. The panic
// value and stack stay in the server log.
func (h *Handler) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil && rec != http.ErrAbortHandler {
				h.logf("panic in %s %s: %v", r.Method, r.URL.Path, rec)
				h.render(w, http.StatusInternalServerError, "500.html", pageData{Title: "Server Error"})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
