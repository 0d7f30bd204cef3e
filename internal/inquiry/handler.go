package inquiry

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"zenith-backend/internal/httpx"
	"zenith-backend/internal/mailer"
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

// PublicCreate handles the visitor contact form.
func (h *Handler) PublicCreate(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req CreateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("inquiry create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("inquiry create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	inq, err := h.service.Create(ctx, req)
	if err != nil {
		log.Error("inquiry create: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("inquiry create: ok", slog.String("inquiry_id", inq.ID), slog.String("type", inq.InquiryType))
	transport.WriteJSON(w, http.StatusCreated, inq)
}

func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	limit, offset, err := httpx.ParseLimitOffset(r.URL.Query(), 50, 200)
	if err != nil {
		log.Warn("admin inquiries list: invalid query", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	filter := ListFilter{
		Name:   r.URL.Query().Get("name"),
		Type:   r.URL.Query().Get("type"),
		Status: r.URL.Query().Get("status"),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	list, total, err := h.service.List(ctx, filter, limit, offset)
	if err != nil {
		log.Error("admin inquiries list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin inquiries list: ok", slog.Int("count", len(list)))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items":  list,
		"limit":  limit,
		"offset": offset,
		"total":  total,
	})
}

func (h *Handler) AdminSetStatus(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("admin inquiry status: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	var req StatusRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin inquiry status: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("admin inquiry status: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	inq, err := h.service.SetStatus(ctx, id, req.Status)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("admin inquiry status: not found", slog.String("inquiry_id", id))
			transport.WriteError(w, http.StatusNotFound, "inquiry not found", nil)
			return
		}
		log.Error("admin inquiry status: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin inquiry status: ok", slog.String("inquiry_id", id), slog.String("status", req.Status))
	transport.WriteJSON(w, http.StatusOK, inq)
}

func (h *Handler) AdminDelete(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("admin inquiry delete: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("admin inquiry delete: not found", slog.String("inquiry_id", id))
			transport.WriteError(w, http.StatusNotFound, "inquiry not found", nil)
			return
		}
		log.Error("admin inquiry delete: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin inquiry delete: ok", slog.String("inquiry_id", id))
	transport.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// AdminReply emails the submitter and marks the inquiry resolved.
func (h *Handler) AdminReply(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("admin inquiry reply: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	var req ReplyRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin inquiry reply: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("admin inquiry reply: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	inq, messageID, err := h.service.Reply(ctx, id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			log.Warn("admin inquiry reply: not found", slog.String("inquiry_id", id))
			transport.WriteError(w, http.StatusNotFound, "inquiry not found", nil)
		case errors.Is(err, mailer.ErrAuth):
			transport.WriteError(w, http.StatusBadGateway, "Authentication failed. Please check SMTP credentials.", nil)
		case errors.Is(err, mailer.ErrConnect):
			transport.WriteError(w, http.StatusBadGateway, "Could not connect to mail server. Please check SMTP settings.", nil)
		case errors.Is(err, mailer.ErrTimeout):
			transport.WriteError(w, http.StatusGatewayTimeout, "Connection timed out. Please try again.", nil)
		default:
			log.Error("admin inquiry reply: failed", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusInternalServerError, "failed to send reply", nil)
		}
		return
	}

	log.Info("admin inquiry reply: ok", slog.String("inquiry_id", id), slog.String("message_id", messageID))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"messageId": messageID,
		"inquiry":   inq,
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
