package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"fitmitra/internal/auth"
)

type AuthHandler struct {
	manager   *auth.Manager
	jwtSecret []byte
	logger    *zap.Logger
}

func NewAuthHandler(manager *auth.Manager, jwtSecret []byte, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{manager: manager, jwtSecret: jwtSecret, logger: logger}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Identifier string `json:"identifier"` // username or email
	Password   string `json:"password"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	res, err := h.manager.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		h.logger.Error("register failed", zap.Error(err))
		http.Error(w, "could not create user", http.StatusInternalServerError)
		return
	}
	if !res.OK {
		writeJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "message": res.Message})
		return
	}

	token, err := h.issueJWT(res.User.ID)
	if err != nil {
		http.Error(w, "could not issue token", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"ok":      true,
		"message": res.Message,
		"token":   token,
		"user":    res.User,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	res, err := h.manager.Login(r.Context(), strings.TrimSpace(req.Identifier), req.Password)
	if err != nil {
		h.logger.Error("login failed", zap.Error(err))
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	if !res.OK {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"ok": false, "message": res.Message})
		return
	}

	token, err := h.issueJWT(res.User.ID)
	if err != nil {
		http.Error(w, "could not issue token", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"message": res.Message,
		"token":   token,
		"user":    res.User,
	})
}

func (h *AuthHandler) issueJWT(userID int) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.jwtSecret)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
