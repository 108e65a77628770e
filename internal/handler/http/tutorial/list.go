package tutorial

import (
	"net/http"

	"tutorial-api/internal/handler/http/respond"
	tutUC "tutorial-api/internal/usecase/tutorial"
)

// ListHandler serves GET /api/tutorials.
// An optional ?title= query narrows the result to titles containing it, ignoring case.
type ListHandler struct{ Svc tutUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.List(r.Context(), r.URL.Query().Get("title"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(list))
}
