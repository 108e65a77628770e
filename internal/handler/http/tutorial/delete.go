package tutorial

import (
	"log/slog"
	"net/http"

	"tutorial-api/internal/handler/http/pathutil"
	"tutorial-api/internal/handler/http/respond"
	"tutorial-api/internal/observability/logging"
	tutUC "tutorial-api/internal/usecase/tutorial"
)

// DeleteHandler serves DELETE /api/tutorials/{id}.
// Deleting a missing tutorial still answers 204.
type DeleteHandler struct{ Svc tutUC.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, idPrefix)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	respond.Status(w, http.StatusNoContent)
}

// DeleteAllHandler serves DELETE /api/tutorials.
type DeleteAllHandler struct{ Svc tutUC.Service }

func (h DeleteAllHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	n, err := h.Svc.DeleteAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	logging.FromContext(r.Context()).Info("all tutorials deleted", slog.Int64("deleted", n))
	respond.Status(w, http.StatusNoContent)
}
