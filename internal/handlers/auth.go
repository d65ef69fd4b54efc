package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/JosuePG/pokemon-trader/configs"
	"github.com/JosuePG/pokemon-trader/internal/httputil"
	"github.com/JosuePG/pokemon-trader/internal/models"
	"github.com/JosuePG/pokemon-trader/internal/store"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func (h *Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		httputil.WriteError(w, http.StatusBadRequest, "username, email and password are required")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.log.Error("failed to hash password", zap.Error(err))
		httputil.WriteError(w, http.StatusInternalServerError, "registration failed")
		return
	}

	roster, err := h.starters.Roll(r.Context())
	if err != nil {
		h.log.Error("failed to fetch starter pokemon", zap.Error(err))
		httputil.WriteError(w, http.StatusBadGateway, "failed to assign starter pokemon")
		return
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hash),
		Pokemon:  roster,
	}
	if err := h.users.Create(r.Context(), &user); err != nil {
		h.log.Error("failed to create user", zap.String("email", req.Email), zap.Error(err))
		httputil.WriteError(w, http.StatusBadRequest, "registration failed")
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, map[string]string{
		"message": "user created with starter pokemon",
	})
}

func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		httputil.WriteError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.users.FindByEmail(r.Context(), req.Email)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			h.log.Error("failed to look up user", zap.Error(err))
		}
		httputil.WriteError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		httputil.WriteError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	claims := jwt.MapClaims{
		"sub": user.ID,
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.AppConfig.JWT.SECRET))
	if err != nil {
		h.log.Error("failed to sign jwt", zap.Error(err))
		httputil.WriteError(w, http.StatusInternalServerError, "failed to create token")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, LoginResponse{Token: signed})
}
