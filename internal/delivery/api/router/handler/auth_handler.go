package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"mapic/internal/delivery/api/response"
	"mapic/internal/domain/entity"
	"mapic/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves the unauthenticated /auth routes.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
	Password string `json:"password" validate:"required"`
}

// EmailCodeRequest carries an email and the code sent to it.
type EmailCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,numeric"`
}

// EmailRequest carries a bare email.
type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// VerifyOtpRequest checks a code without consuming it.
type VerifyOtpRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Code       string `json:"code" validate:"required,numeric"`
	Purpose    string `json:"purpose" validate:"required"`
}

// ResetPasswordRequest is the body of POST /auth/reset-password.
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Code        string `json:"code" validate:"required,numeric"`
	NewPassword string `json:"new_password" validate:"required"`
}

// RefreshRequest is the body of POST /auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Register creates an inactive account and sends the activation code.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, toUserResponse(user))
}

func (h *AuthHandler) Activate(c echo.Context) error {
	var req EmailCodeRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.authUC.Activate(c.Request().Context(), req.Email, req.Code); err != nil {
		return err
	}

	return response.OK(c, "Account activated")
}

func (h *AuthHandler) ResendActivation(c echo.Context) error {
	var req EmailRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.authUC.ResendActivation(c.Request().Context(), req.Email); err != nil {
		return err
	}

	return response.OK(c, "Activation code sent")
}

// Login exchanges credentials for a token pair.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	out, err := h.authUC.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, &LoginResponse{
		User:   toUserResponse(out.User),
		Tokens: out.Tokens,
	})
}

func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req EmailRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.authUC.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return err
	}

	return response.OK(c, "Reset code sent")
}

func (h *AuthHandler) VerifyOtp(c echo.Context) error {
	var req VerifyOtpRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	valid, err := h.authUC.VerifyOtp(c.Request().Context(), req.Identifier, req.Code, entity.OtpPurpose(strings.ToUpper(req.Purpose)))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]bool{"valid": valid})
}

func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.authUC.ResetPassword(c.Request().Context(), req.Email, req.Code, req.NewPassword); err != nil {
		return err
	}

	return response.OK(c, "Password reset")
}

// Refresh issues a new pair from a refresh token.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	tokens, err := h.authUC.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, tokens)
}
