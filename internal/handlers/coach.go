package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"fitmitra/internal/coach"
	"fitmitra/internal/middleware"
	"fitmitra/internal/models"
	"fitmitra/internal/profile"
	"fitmitra/internal/store"
)

type CoachHandler struct {
	coach    *coach.Coach
	profiles *profile.Service
	timeout  time.Duration
	logger   *zap.Logger
}

func NewCoachHandler(c *coach.Coach, profiles *profile.Service, timeout time.Duration, logger *zap.Logger) *CoachHandler {
	return &CoachHandler{coach: c, profiles: profiles, timeout: timeout, logger: logger}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// Chat forwards the message to the coach with the user's profile as
// context. The coach soft-fails, so this always answers 200 with a reply.
func (h *CoachHandler) Chat(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	var p *models.Profile
	got, err := h.profiles.Get(r.Context(), userID)
	if err == nil {
		p = got
	} else if !errors.Is(err, store.ErrNotFound) {
		h.logger.Warn("profile lookup for chat failed", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	writeJSON(w, http.StatusOK, chatResponse{Reply: h.coach.Respond(ctx, userID, req.Message, p)})
}
