// Package tutorial provides the HTTP handlers for the tutorial resource.
package tutorial

import (
	"net/http"

	tutUC "tutorial-api/internal/usecase/tutorial"
)

// Register registers all tutorial HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc tutUC.Service) {
	mux.Handle("GET    /api/tutorials", ListHandler{svc})
	mux.Handle("POST   /api/tutorials", CreateHandler{svc})
	mux.Handle("DELETE /api/tutorials", DeleteAllHandler{svc})
	mux.Handle("GET    /api/tutorials/published", PublishedHandler{svc})
	mux.Handle("GET    /api/tutorials/{id}", GetHandler{svc})
	mux.Handle("PUT    /api/tutorials/{id}", UpdateHandler{svc})
	mux.Handle("DELETE /api/tutorials/{id}", DeleteHandler{svc})
}
