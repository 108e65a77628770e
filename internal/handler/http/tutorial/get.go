package tutorial

import (
	"net/http"

	"tutorial-api/internal/handler/http/pathutil"
	"tutorial-api/internal/handler/http/respond"
	tutUC "tutorial-api/internal/usecase/tutorial"
)

// GetHandler serves GET /api/tutorials/{id}.
type GetHandler struct{ Svc tutUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, idPrefix)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	t, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(t))
}
