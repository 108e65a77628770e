package tutorial

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"tutorial-api/internal/handler/http/respond"
	tutUC "tutorial-api/internal/usecase/tutorial"
)

const idPrefix = "/api/tutorials/"

// writeError maps use case errors onto status codes.
// Not found answers 404 with an empty body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case tutUC.IsNotFound(err):
		respond.Status(w, http.StatusNotFound)
	case tutUC.IsInvalidInput(err):
		respond.Error(w, http.StatusBadRequest, err)
	case errors.Is(err, context.DeadlineExceeded):
		respond.JSON(w, http.StatusGatewayTimeout, map[string]string{"error": "request timeout"})
	default:
		respond.SafeErrorCtx(r, w, http.StatusInternalServerError, err)
	}
}

// decodeBody decodes a JSON request body into v.
// The returned error is a *respond.AppError ready for respond.Fail.
func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return respond.NewAppError(http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit), err)
		}
		return respond.NewAppError(http.StatusBadRequest, "invalid request body", err)
	}
	return nil
}
