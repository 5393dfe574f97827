package handler

import (
	"log/slog"
	"net/http"

	"mapic/internal/delivery/api/response"
	"mapic/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FriendHandlerParams holds dependencies for FriendHandler, injected by Fx.
type FriendHandlerParams struct {
	fx.In

	FriendUC usecase.FriendUsecase
	Logger   *slog.Logger
}

// FriendHandler serves friend graph mutations under /api/v1/friends.
type FriendHandler struct {
	friendUC usecase.FriendUsecase
	logger   *slog.Logger
}

// NewFriendHandler is the constructor for FriendHandler.
func NewFriendHandler(params FriendHandlerParams) *FriendHandler {
	return &FriendHandler{
		friendUC: params.FriendUC,
		logger:   params.Logger,
	}
}

// AddFriendRequest is the body of POST /friends/add.
type AddFriendRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// InviteRequest carries the payload scanned from an invite QR code.
type InviteRequest struct {
	QRData string `json:"qr_data" validate:"required"`
}

func (h *FriendHandler) AddFriend(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req AddFriendRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	friendship, err := h.friendUC.AddFriend(c.Request().Context(), userID, req.Email)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, toFriendshipResponse(friendship))
}

// AcceptInvite sends a friend request to the owner of a scanned invite.
func (h *FriendHandler) AcceptInvite(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req InviteRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	friendship, err := h.friendUC.AddFriendFromInvite(c.Request().Context(), userID, req.QRData)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, toFriendshipResponse(friendship))
}

func (h *FriendHandler) AcceptFriend(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	friendshipID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	friendship, err := h.friendUC.AcceptFriend(c.Request().Context(), userID, friendshipID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toFriendshipResponse(friendship))
}

func (h *FriendHandler) RemoveFriend(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	friendID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.friendUC.RemoveFriend(c.Request().Context(), userID, friendID); err != nil {
		return err
	}

	return response.OK(c, "Friend removed")
}

func (h *FriendHandler) PendingRequests(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	requests, err := h.friendUC.PendingRequests(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, requests)
}

// InviteQR returns the caller's invite code as a PNG.
func (h *FriendHandler) InviteQR(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	png, err := h.friendUC.InviteQR(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
