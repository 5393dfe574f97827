package handler

import (
	"net/http"
	"testing"

	"mapic/internal/domain/entity"
	domainerrors "mapic/internal/domain/errors"
	mocks "mapic/internal/mocks/usecase"
	"mapic/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAccountTestEcho(t *testing.T) (*echo.Echo, *mocks.MockAccountUsecase) {
	accountUC := mocks.NewMockAccountUsecase(t)
	h := NewAccountHandler(AccountHandlerParams{AccountUC: accountUC})

	e := newTestEcho()
	g := e.Group("/users", asCaller)
	g.GET("/me", h.Me)
	g.PUT("/profile", h.UpdateProfile)
	g.PUT("/password", h.ChangePassword)
	g.POST("/send-change-otp", h.SendChangeOtp)
	g.PUT("/email", h.ChangeEmail)
	g.PUT("/phone", h.ChangePhone)

	return e, accountUC
}

func TestAccountHandler_Me(t *testing.T) {
	e, accountUC := newAccountTestEcho(t)
	accountUC.EXPECT().Me(mock.Anything, testCallerID).
		Return(&entity.User{ID: testCallerID, Name: "Alice", Email: "alice@example.com", PasswordHash: "$2a$12$hash"}, nil)

	rec, env := do(t, e, http.MethodGet, "/users/me", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Alice", decodeData[UserResponse](t, env).Name)
	assert.NotContains(t, rec.Body.String(), "hash")
}

func TestAccountHandler_Me_Unauthenticated(t *testing.T) {
	accountUC := mocks.NewMockAccountUsecase(t)
	h := NewAccountHandler(AccountHandlerParams{AccountUC: accountUC})
	e := newTestEcho()
	e.GET("/users/me", h.Me)

	rec, env := do(t, e, http.MethodGet, "/users/me", "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_TOKEN", env.Error.Code)
}

func TestAccountHandler_UpdateProfile(t *testing.T) {
	e, accountUC := newAccountTestEcho(t)
	accountUC.EXPECT().UpdateProfile(mock.Anything, testCallerID, mock.MatchedBy(func(in *usecase.UpdateProfileInput) bool {
		return in.Name != nil && *in.Name == "Alicia" && in.AvatarURL == nil
	})).Return(&entity.User{ID: testCallerID, Name: "Alicia"}, nil)

	rec, _ := do(t, e, http.MethodPut, "/users/profile", `{"name":"Alicia"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAccountHandler_ChangePassword_Wrong(t *testing.T) {
	e, accountUC := newAccountTestEcho(t)
	accountUC.EXPECT().ChangePassword(mock.Anything, testCallerID, "old", "newpass").Return(domainerrors.ErrWrongPassword)

	rec, env := do(t, e, http.MethodPut, "/users/password", `{"old_password":"old","new_password":"newpass"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "WRONG_PASSWORD", env.Error.Code)
}

func TestAccountHandler_SendChangeOtp(t *testing.T) {
	e, accountUC := newAccountTestEcho(t)
	accountUC.EXPECT().SendChangeOtp(mock.Anything, testCallerID, "+886912345678", entity.OtpChangePhone).Return(nil)

	rec, _ := do(t, e, http.MethodPost, "/users/send-change-otp", `{"identifier":"+886912345678","purpose":"change_phone"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAccountHandler_ChangeEmail(t *testing.T) {
	t.Run("changed", func(t *testing.T) {
		e, accountUC := newAccountTestEcho(t)
		accountUC.EXPECT().ChangeEmail(mock.Anything, testCallerID, "new@example.com", "123456").
			Return(&entity.User{ID: testCallerID, Email: "new@example.com"}, nil)

		rec, env := do(t, e, http.MethodPut, "/users/email", `{"new_email":"new@example.com","code":"123456"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "new@example.com", decodeData[UserResponse](t, env).Email)
	})

	t.Run("taken", func(t *testing.T) {
		e, accountUC := newAccountTestEcho(t)
		accountUC.EXPECT().ChangeEmail(mock.Anything, testCallerID, "new@example.com", "123456").Return(nil, domainerrors.ErrEmailInUse)

		rec, _ := do(t, e, http.MethodPut, "/users/email", `{"new_email":"new@example.com","code":"123456"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestAccountHandler_ChangePhone_InvalidOtp(t *testing.T) {
	e, accountUC := newAccountTestEcho(t)
	accountUC.EXPECT().ChangePhone(mock.Anything, testCallerID, "0912345678", "123456").Return(nil, domainerrors.ErrInvalidOtp)

	rec, env := do(t, e, http.MethodPut, "/users/phone", `{"new_phone":"0912345678","code":"123456"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_OTP", env.Error.Code)
}
