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

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler serves /api/v1/users for the caller's own account.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler.
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// UpdateProfileRequest holds optional profile fields.
type UpdateProfileRequest struct {
	Name      *string `json:"name" validate:"omitempty,max=100"`
	AvatarURL *string `json:"avatar_url" validate:"omitempty,url"`
}

// ChangePasswordRequest is the body of PUT /users/password.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

// SendChangeOtpRequest targets a new email (CHANGE_EMAIL) or phone (CHANGE_PHONE).
type SendChangeOtpRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Purpose    string `json:"purpose" validate:"required"`
}

// ChangeEmailRequest is the body of PUT /users/email.
type ChangeEmailRequest struct {
	NewEmail string `json:"new_email" validate:"required,email"`
	Code     string `json:"code" validate:"required,numeric"`
}

// ChangePhoneRequest is the body of PUT /users/phone.
type ChangePhoneRequest struct {
	NewPhone string `json:"new_phone" validate:"required,max=20"`
	Code     string `json:"code" validate:"required,numeric"`
}

func (h *AccountHandler) Me(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	user, err := h.accountUC.Me(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.accountUC.UpdateProfile(c.Request().Context(), userID, &usecase.UpdateProfileInput{
		Name:      req.Name,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

func (h *AccountHandler) ChangePassword(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req ChangePasswordRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.accountUC.ChangePassword(c.Request().Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		return err
	}

	return response.OK(c, "Password changed")
}

func (h *AccountHandler) SendChangeOtp(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req SendChangeOtpRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	purpose := entity.OtpPurpose(strings.ToUpper(req.Purpose))
	if err := h.accountUC.SendChangeOtp(c.Request().Context(), userID, req.Identifier, purpose); err != nil {
		return err
	}

	return response.OK(c, "Verification code sent")
}

func (h *AccountHandler) ChangeEmail(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req ChangeEmailRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.accountUC.ChangeEmail(c.Request().Context(), userID, req.NewEmail, req.Code)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

func (h *AccountHandler) ChangePhone(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req ChangePhoneRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.accountUC.ChangePhone(c.Request().Context(), userID, req.NewPhone, req.Code)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}
