package tutorial

import (
	"net/http"

	"tutorial-api/internal/handler/http/pathutil"
	"tutorial-api/internal/handler/http/respond"
	tutUC "tutorial-api/internal/usecase/tutorial"
)

// UpdateHandler serves PUT /api/tutorials/{id}.
// Fields missing from the body keep their stored values.
type UpdateHandler struct{ Svc tutUC.Service }

func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, idPrefix)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req updateRequest
	if err := decodeBody(r, &req); err != nil {
		respond.Fail(w, http.StatusBadRequest, err)
		return
	}

	t, err := h.Svc.Update(r.Context(), tutUC.UpdateInput{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Published:   req.Published,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(t))
}
