package estimate

import (
	"errors"
	"log/slog"
	"net/http"

	"zenith-backend/internal/httpx"
	"zenith-backend/internal/middleware"
	"zenith-backend/internal/transport"
	"zenith-backend/internal/validation"
)

type Request struct {
	Plans []Selection `json:"plans" validate:"required,min=1,dive"`
}

type Handler struct {
	val *validation.Validator
	log *slog.Logger
}

func NewHandler(val *validation.Validator, log *slog.Logger) *Handler {
	return &Handler{val: val, log: log}
}

// Estimate prices a batch of plan cards in one call; each card is
// independent, so one result per submitted selection.
func (h *Handler) Estimate(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req Request
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("estimate: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("estimate: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	results := make([]Result, 0, len(req.Plans))
	for _, sel := range req.Plans {
		result, err := Calculate(sel)
		if err != nil {
			if errors.Is(err, ErrUnknownService) {
				transport.WriteError(w, http.StatusBadRequest, "validation error", map[string]string{"service": "unknown"})
				return
			}
			log.Error("estimate: failed", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusInternalServerError, "estimate failed", nil)
			return
		}
		results = append(results, result)
	}

	log.Info("estimate: ok", slog.Int("count", len(results)))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items": results,
	})
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return h.log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
