package mailer

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"zenith-backend/internal/httpx"
	"zenith-backend/internal/middleware"
	"zenith-backend/internal/transport"
	"zenith-backend/internal/validation"
)

type SendRequest struct {
	To      string `json:"to" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type Handler struct {
	mailer *Mailer
	val    *validation.Validator
	log    *slog.Logger
}

func NewHandler(mailer *Mailer, val *validation.Validator, log *slog.Logger) *Handler {
	return &Handler{
		mailer: mailer,
		val:    val,
		log:    log,
	}
}

// Send handles POST /api/send-email. The response keeps the
// {success, message, messageId} shape the admin front end consumes, and
// failure causes are reported with operator-readable messages.
func (h *Handler) Send(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req SendRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("send-email: invalid json")
		transport.WriteJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"message": "Missing required fields: to, subject, message",
		})
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("send-email: validation error")
		transport.WriteJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"message": "Missing required fields: to, subject, message",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	messageID, err := h.mailer.Send(ctx, req.To, req.Subject, req.Message)
	if err != nil {
		message := "Failed to send email"
		switch {
		case errors.Is(err, ErrAuth):
			message = "Authentication failed. Please check SMTP credentials."
		case errors.Is(err, ErrConnect):
			message = "Could not connect to mail server. Please check SMTP settings."
		case errors.Is(err, ErrTimeout):
			message = "Connection timed out. Please try again."
		}
		log.Error("send-email: failed", slog.String("error", err.Error()))
		transport.WriteJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"message": message,
			"details": err.Error(),
		})
		return
	}

	log.Info("send-email: ok", slog.String("message_id", messageID), slog.String("to", req.To))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"message":   "Email sent successfully",
		"messageId": messageID,
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
