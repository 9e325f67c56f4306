// Package server exposes the favorites garage and scoring functions over a
// JSON HTTP API.
package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/carwise/carwise/internal/service"
)

// NewHTTPServer returns an HTTP server serving the carwise API on addr.
func NewHTTPServer(addr string, store service.Storage) *http.Server {
	h := NewHandler(store)
	r := mux.NewRouter()
	h.RegisterRoutes(r)

	return &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
