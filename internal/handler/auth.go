// internal/handler/auth.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/openvolunteering/orghub/internal/domain"
	"github.com/openvolunteering/orghub/internal/model"
	"github.com/openvolunteering/orghub/internal/service"
)

type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

type AuthResponse struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

func (h *AuthHandler) SignupHandler(w http.ResponseWriter, r *http.Request) {
	var input service.SignupInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithDetail(w, http.StatusBadRequest, "Invalid request payload.")
		return
	}
	defer r.Body.Close()

	output, err := h.userService.Signup(r.Context(), input)
	if err != nil {
		slog.ErrorContext(r.Context(), "User registration error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		switch {
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			respondWithDetail(w, http.StatusConflict, "Email already exists.")
		case errors.Is(err, domain.ErrInvalidInput):
			respondWithDetail(w, http.StatusBadRequest, err.Error())
		default:
			respondWithDetail(w, http.StatusInternalServerError, "Internal server error.")
		}
		return
	}

	respondWithJSON(w, http.StatusCreated, AuthResponse{User: output.User, Token: output.Token})
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithDetail(w, http.StatusBadRequest, "Invalid request payload.")
		return
	}
	defer r.Body.Close()

	output, err := h.userService.Login(r.Context(), input)
	if err != nil {
		slog.ErrorContext(r.Context(), "User login error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			respondWithDetail(w, http.StatusUnauthorized, "Invalid email or password.")
		case errors.Is(err, domain.ErrInvalidInput):
			respondWithDetail(w, http.StatusBadRequest, err.Error())
		default:
			respondWithDetail(w, http.StatusInternalServerError, "Internal server error.")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, AuthResponse{User: output.User, Token: output.Token})
}
