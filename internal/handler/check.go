package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/vaultpass/passcheck-go/internal/model"
	"github.com/vaultpass/passcheck-go/internal/service"
)

// CheckHandler handles HTTP requests for password checks.
type CheckHandler struct {
	service *service.CheckerService
}

// NewCheckHandler creates a new CheckHandler.
func NewCheckHandler(svc *service.CheckerService) *CheckHandler {
	return &CheckHandler{service: svc}
}

// HandleCheck handles POST /api/v1/check requests.
func (h *CheckHandler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	var req model.CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDecodeError(w, err)
		return
	}

	resp, err := h.service.Check(req)
	if err != nil {
		if errors.Is(err, service.ErrPasswordTooLong) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		slog.ErrorContext(r.Context(), "password check failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
