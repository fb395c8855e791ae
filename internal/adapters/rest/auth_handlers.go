package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
	"listings-service/internal/core/port/usecases_port"
)

type AuthHandlers struct {
	registerUC usecases_port.RegisterUserUseCase
	loginUC    usecases_port.LoginUserUseCase
}

func NewAuthHandlers(registerUC usecases_port.RegisterUserUseCase, loginUC usecases_port.LoginUserUseCase) *AuthHandlers {
	return &AuthHandlers{
		registerUC: registerUC,
		loginUC:    loginUC,
	}
}

// Register handles POST /auth/register.
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Register"})

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode register request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		logger.Warn("Email and password are required", nil)
		WriteJSONError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	role := domain.Role(req.Role)
	if req.Role == "" {
		role = domain.RoleClient
	}

	handlerLogger := logger.WithFields(port.Fields{"email": req.Email})
	handlerLogger.Info("Processing register request", nil)

	user, token, err := h.registerUC.Execute(r.Context(), req.Email, req.Password, req.Name, role)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailInUse):
			handlerLogger.Warn("Registration failed: email already in use", nil)
			WriteJSONError(w, http.StatusConflict, err.Error())
		case errors.Is(err, domain.ErrValidation):
			handlerLogger.Warn("Registration failed: invalid input", port.Fields{"error": err.Error()})
			WriteJSONError(w, http.StatusBadRequest, err.Error())
		default:
			handlerLogger.Error("Register use case failed with an unexpected error", err, nil)
			WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	handlerLogger.Info("User registered successfully", port.Fields{"user_id": user.ID})

	RespondWithJSON(w, http.StatusCreated, AuthResponse{
		Token:  token,
		UserID: user.ID.String(),
		Role:   string(user.Role),
	})
}

// Login handles POST /auth/login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Login"})

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode login request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{"email": req.Email})
	handlerLogger.Info("Processing login request", nil)

	user, token, err := h.loginUC.Execute(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrUserNotFound):
			handlerLogger.Warn("Login failed: invalid credentials", nil)
			WriteJSONError(w, http.StatusUnauthorized, err.Error())
		case errors.Is(err, domain.ErrUserSuspended):
			handlerLogger.Warn("Login refused: account suspended", nil)
			WriteJSONError(w, http.StatusForbidden, "Account is suspended")
		default:
			handlerLogger.Error("Login use case failed with an unexpected error", err, nil)
			WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	handlerLogger.Info("User logged in successfully", port.Fields{"user_id": user.ID})

	RespondWithJSON(w, http.StatusOK, AuthResponse{
		Token:  token,
		UserID: user.ID.String(),
		Role:   string(user.Role),
	})
}
