package analytics

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"zenith-backend/internal/middleware"
	"zenith-backend/internal/transport"
)

type Handler struct {
	client *Client
	log    *slog.Logger
}

func NewHandler(client *Client, log *slog.Logger) *Handler {
	return &Handler{
		client: client,
		log:    log,
	}
}

// Overview handles GET /api/admin/analytics?range=today|7days|30days.
func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	overview, err := h.client.Overview(ctx, r.URL.Query().Get("range"))
	if err != nil {
		log.Error("analytics overview: failed", slog.String("error", err.Error()))
		transport.WriteJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   "Failed to fetch analytics data",
			"details": err.Error(),
		})
		return
	}

	log.Info("analytics overview: ok", slog.String("range", overview.Range), slog.Int("rows", overview.TotalRows))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":             true,
		"range":               overview.Range,
		"historicalData":      overview.HistoricalData,
		"realtimeActiveUsers": overview.RealtimeActiveUsers,
		"trafficSources":      overview.TrafficSources,
		"topPages":            overview.TopPages,
		"geo":                 overview.Geo,
		"devices":             overview.Devices,
		"totalRows":           overview.TotalRows,
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
