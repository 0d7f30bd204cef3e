package sitecontent

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

func (h *Handler) PublicLogos(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	logos, err := h.service.ListLogos(ctx)
	if err != nil {
		log.Error("partner logos: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items": logos,
	})
}

func (h *Handler) PublicHero(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	hero, err := h.service.GetHero(ctx)
	if err != nil {
		log.Error("hero background: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, hero)
}

func (h *Handler) AdminAddLogo(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req LogoRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin logo add: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("admin logo add: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	logo, err := h.service.AddLogo(ctx, req)
	if err != nil {
		log.Error("admin logo add: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin logo add: ok", slog.String("logo_id", logo.ID))
	transport.WriteJSON(w, http.StatusCreated, logo)
}

func (h *Handler) AdminDeleteLogo(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("admin logo delete: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.DeleteLogo(ctx, id); err != nil {
		if errors.Is(err, ErrLogoNotFound) {
			log.Warn("admin logo delete: not found", slog.String("logo_id", id))
			transport.WriteError(w, http.StatusNotFound, "partner logo not found", nil)
			return
		}
		log.Error("admin logo delete: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin logo delete: ok", slog.String("logo_id", id))
	transport.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) AdminUpdateHero(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req HeroRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin hero update: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("admin hero update: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	hero, err := h.service.UpdateHero(ctx, req)
	if err != nil {
		log.Error("admin hero update: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin hero update: ok", slog.String("type", hero.Type))
	transport.WriteJSON(w, http.StatusOK, hero)
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
