package app

import (
	"net/http"
	"time"

	"github.com/Minpi-0/traveler-app/internal/config"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Request logging
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, req)
			log.Debugf("%s %s (%s)", req.Method, req.URL.Path, time.Since(start))
		})
	})

	// Single-user app for now; the header is accepted but nothing enforces it.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if userIdHeader := req.Header.Get("X-User-Id"); userIdHeader != "" {
				log.Tracef("request carries user id %s", userIdHeader)
			}
			next.ServeHTTP(w, req)
		})
	})
}
