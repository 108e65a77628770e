package tutorial

import (
	"net/http"

	"tutorial-api/internal/handler/http/respond"
	tutUC "tutorial-api/internal/usecase/tutorial"
)

// PublishedHandler serves GET /api/tutorials/published.
type PublishedHandler struct{ Svc tutUC.Service }

func (h PublishedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.ListPublished(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(list))
}
