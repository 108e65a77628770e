package tutorial

import (
	"net/http"

	"tutorial-api/internal/handler/http/respond"
	tutUC "tutorial-api/internal/usecase/tutorial"
)

// CreateHandler serves POST /api/tutorials and answers 201 with the stored tutorial.
type CreateHandler struct{ Svc tutUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := decodeBody(r, &req); err != nil {
		respond.Fail(w, http.StatusBadRequest, err)
		return
	}

	t, err := h.Svc.Create(r.Context(), tutUC.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Published:   req.Published,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(t))
}
