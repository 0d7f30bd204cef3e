package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"zenith-backend/internal/cache"
	"zenith-backend/internal/httpx"
	"zenith-backend/internal/middleware"
	"zenith-backend/internal/transport"
	"zenith-backend/internal/validation"

	"github.com/go-chi/chi/v5"
)

const cacheKeyPlans = "pricing:plans"

type Handler struct {
	service  *Service
	val      *validation.Validator
	log      *slog.Logger
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewHandler(service *Service, val *validation.Validator, log *slog.Logger, store cache.Cache, cacheTTL time.Duration) *Handler {
	return &Handler{
		service:  service,
		val:      val,
		log:      log,
		cache:    store,
		cacheTTL: cacheTTL,
	}
}

func (h *Handler) PublicPlans(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	if cached, ok, err := h.cache.Get(r.Context(), cacheKeyPlans); err == nil && ok {
		log.Info("pricing plans: cache hit")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(cached)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	plans, err := h.service.PublicPlans(ctx)
	if err != nil {
		log.Error("pricing plans: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	response := map[string]interface{}{
		"items": plans,
	}
	if payload, err := json.Marshal(response); err == nil {
		_ = h.cache.Set(r.Context(), cacheKeyPlans, payload, h.cacheTTL)
	}

	log.Info("pricing plans: ok", slog.Int("count", len(plans)))
	transport.WriteJSON(w, http.StatusOK, response)
}

func (h *Handler) PublicPlanBySlug(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	slug := strings.TrimSpace(chi.URLParam(r, "slug"))
	if slug == "" {
		log.Warn("pricing plan get: missing slug")
		transport.WriteError(w, http.StatusBadRequest, "missing slug", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	plan, err := h.service.PublicPlanBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			log.Warn("pricing plan get: not found", slog.String("slug", slug))
			transport.WriteError(w, http.StatusNotFound, "pricing plan not found", nil)
			return
		}
		log.Error("pricing plan get: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, plan)
}

func (h *Handler) PublicComparison(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	features, err := h.service.PublicFeatures(ctx)
	if err != nil {
		log.Error("pricing comparison: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items": features,
	})
}

func (h *Handler) PublicCalculator(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	calc, found, err := h.service.GetCalculator(ctx)
	if err != nil {
		log.Error("pricing calculator: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}
	if !found {
		transport.WriteError(w, http.StatusNotFound, "calculator not configured", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, calc)
}

func (h *Handler) AdminPlans(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	plans, err := h.service.AdminPlans(ctx)
	if err != nil {
		log.Error("admin pricing plans: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin pricing plans: ok", slog.Int("count", len(plans)))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items": plans,
	})
}

func (h *Handler) AdminSavePlans(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req SavePlansRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin pricing save: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("admin pricing save: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	plans, err := h.service.SavePlans(ctx, req.Plans)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidSlug):
			transport.WriteError(w, http.StatusBadRequest, "validation error", map[string]string{"slug": "invalid"})
		case errors.Is(err, ErrDuplicateSlug):
			transport.WriteError(w, http.StatusBadRequest, "validation error", map[string]string{"slug": "duplicated in batch"})
		case errors.Is(err, ErrSlugExists):
			transport.WriteError(w, http.StatusConflict, "slug already exists", nil)
		default:
			log.Error("admin pricing save: database error", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		}
		return
	}

	h.invalidatePlans(r)
	log.Info("admin pricing save: ok", slog.Int("count", len(plans)))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items": plans,
	})
}

func (h *Handler) AdminDeletePlan(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("admin pricing delete: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	remaining, err := h.service.DeletePlan(ctx, id)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			log.Warn("admin pricing delete: not found", slog.String("plan_id", id))
			transport.WriteError(w, http.StatusNotFound, "pricing plan not found", nil)
			return
		}
		log.Error("admin pricing delete: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	h.invalidatePlans(r)
	log.Info("admin pricing delete: ok", slog.String("plan_id", id))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items": remaining,
	})
}

func (h *Handler) AdminMovePlan(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("admin pricing move: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	var req MoveRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin pricing move: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("admin pricing move: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	plans, err := h.service.MovePlan(ctx, id, req.Direction)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			log.Warn("admin pricing move: not found", slog.String("plan_id", id))
			transport.WriteError(w, http.StatusNotFound, "pricing plan not found", nil)
			return
		}
		log.Error("admin pricing move: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	h.invalidatePlans(r)
	log.Info("admin pricing move: ok", slog.String("plan_id", id), slog.String("direction", req.Direction))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items": plans,
	})
}

func (h *Handler) AdminFeatures(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	features, err := h.service.AdminFeatures(ctx)
	if err != nil {
		log.Error("admin pricing features: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items": features,
	})
}

func (h *Handler) AdminSaveFeatures(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req SaveFeaturesRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin pricing features save: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("admin pricing features save: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	features, err := h.service.SaveFeatures(ctx, req.Features)
	if err != nil {
		log.Error("admin pricing features save: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin pricing features save: ok", slog.Int("count", len(features)))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items": features,
	})
}

func (h *Handler) AdminDeleteFeature(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("admin pricing feature delete: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	remaining, err := h.service.DeleteFeature(ctx, id)
	if err != nil {
		if errors.Is(err, ErrFeatureNotFound) {
			log.Warn("admin pricing feature delete: not found", slog.String("feature_id", id))
			transport.WriteError(w, http.StatusNotFound, "comparison feature not found", nil)
			return
		}
		log.Error("admin pricing feature delete: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin pricing feature delete: ok", slog.String("feature_id", id))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items": remaining,
	})
}

func (h *Handler) AdminMoveFeature(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("admin pricing feature move: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	var req MoveRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin pricing feature move: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("admin pricing feature move: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	features, err := h.service.MoveFeature(ctx, id, req.Direction)
	if err != nil {
		if errors.Is(err, ErrFeatureNotFound) {
			log.Warn("admin pricing feature move: not found", slog.String("feature_id", id))
			transport.WriteError(w, http.StatusNotFound, "comparison feature not found", nil)
			return
		}
		log.Error("admin pricing feature move: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin pricing feature move: ok", slog.String("feature_id", id), slog.String("direction", req.Direction))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items": features,
	})
}

func (h *Handler) AdminCalculator(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	calc, found, err := h.service.GetCalculator(ctx)
	if err != nil {
		log.Error("admin pricing calculator: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}
	if !found {
		transport.WriteError(w, http.StatusNotFound, "calculator not configured", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, calc)
}

func (h *Handler) AdminSaveCalculator(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req SaveCalculatorRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin pricing calculator save: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("admin pricing calculator save: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	calc, err := h.service.SaveCalculator(ctx, req)
	if err != nil {
		log.Error("admin pricing calculator save: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin pricing calculator save: ok", slog.Int("services", len(calc.Services)))
	transport.WriteJSON(w, http.StatusOK, calc)
}

func (h *Handler) invalidatePlans(r *http.Request) {
	if err := h.cache.Delete(r.Context(), cacheKeyPlans); err != nil {
		h.logWithRequest(r).Warn("pricing cache invalidate failed", slog.String("error", err.Error()))
	}
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
