package stats

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"zenith-backend/internal/httpx"
	"zenith-backend/internal/middleware"
	"zenith-backend/internal/transport"
	"zenith-backend/internal/validation"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service *Service
	val     *validation.Validator
	log     *slog.Logger
}

func NewHandler(service *Service, val *validation.Validator, log *slog.Logger) *Handler {
	return &Handler{
		service: service,
		val:     val,
		log:     log,
	}
}

func (h *Handler) PublicList(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	stats, err := h.service.PublicList(ctx)
	if err != nil {
		log.Error("stats public list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items": stats,
	})
}

func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	stats, err := h.service.AdminList(ctx)
	if err != nil {
		log.Error("admin stats list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin stats list: ok", slog.Int("count", len(stats)))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items": stats,
	})
}

func (h *Handler) AdminSave(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req SaveRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin stats save: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("admin stats save: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	stats, err := h.service.SaveAll(ctx, req.Stats)
	if err != nil {
		log.Error("admin stats save: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin stats save: ok", slog.Int("count", len(stats)))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items": stats,
	})
}

func (h *Handler) AdminDelete(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("admin stats delete: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	remaining, err := h.service.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("admin stats delete: not found", slog.String("stat_id", id))
			transport.WriteError(w, http.StatusNotFound, "stat not found", nil)
			return
		}
		log.Error("admin stats delete: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin stats delete: ok", slog.String("stat_id", id))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items": remaining,
	})
}

func (h *Handler) AdminMove(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("admin stats move: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	var req MoveRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin stats move: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("admin stats move: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	stats, err := h.service.Move(ctx, id, req.Direction)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("admin stats move: not found", slog.String("stat_id", id))
			transport.WriteError(w, http.StatusNotFound, "stat not found", nil)
			return
		}
		log.Error("admin stats move: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin stats move: ok", slog.String("stat_id", id), slog.String("direction", req.Direction))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items": stats,
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
