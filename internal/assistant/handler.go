package assistant

import (
	"context"
	"log/slog"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"zenith-backend/internal/httpx"
	"zenith-backend/internal/middleware"
	"zenith-backend/internal/transport"
)

// Served instead of a hard error when the upstream model is unreachable:
// the chat widget always gets a usable answer and a 200.
var fallbackResponses = []string{
	"I specialize in digital marketing services like SEO, social media marketing, and web development. How can I help your business grow online?",
	"As Combine Zenith's AI assistant, I can help with digital strategy, content creation, and brand development. What specific area are you interested in?",
	"Let me tell you about our digital marketing services. We offer SEO, social media management, and web development to boost your online presence.",
}

type ChatRequest struct {
	Message string `json:"message"`
}

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

// Chat handles POST /api/chat.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req ChatRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("chat: invalid json")
		transport.WriteJSON(w, http.StatusOK, map[string]string{
			"response": "Please enter a message.",
		})
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		transport.WriteJSON(w, http.StatusOK, map[string]string{
			"response": "Please enter a message.",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 25*time.Second)
	defer cancel()

	reply, err := h.client.Complete(ctx, message)
	if err != nil {
		log.Warn("chat: upstream failed, serving fallback", slog.String("error", err.Error()))
		transport.WriteJSON(w, http.StatusOK, map[string]string{
			"response": fallbackResponses[rand.Intn(len(fallbackResponses))],
		})
		return
	}

	log.Info("chat: ok")
	transport.WriteJSON(w, http.StatusOK, map[string]string{
		"response": reply,
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
