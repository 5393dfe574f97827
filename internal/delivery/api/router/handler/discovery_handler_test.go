package handler

import (
	"net/http"
	"testing"

	"mapic/internal/domain/entity"
	domainerrors "mapic/internal/domain/errors"
	mocks "mapic/internal/mocks/usecase"
	"mapic/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscoveryTestEcho(t *testing.T) (*echo.Echo, *mocks.MockDiscoveryUsecase) {
	discoveryUC := mocks.NewMockDiscoveryUsecase(t)
	h := NewDiscoveryHandler(DiscoveryHandlerParams{DiscoveryUC: discoveryUC})

	e := newTestEcho()
	g := e.Group("/friends", asCaller)
	g.POST("/search", h.Search)
	g.GET("/list", h.List)
	g.GET("/nearby", h.Nearby)
	g.GET("/:id/profile", h.Profile)

	return e, discoveryUC
}

func TestDiscoveryHandler_List(t *testing.T) {
	e, discoveryUC := newDiscoveryTestEcho(t)
	discoveryUC.EXPECT().Search(mock.Anything, testCallerID, mock.MatchedBy(func(c *usecase.DiscoveryCriteria) bool {
		return c.Presence == entity.PresenceOnline &&
			c.Activity == "walking" &&
			c.MaxDistanceMeters != nil && *c.MaxDistanceMeters == 1000 &&
			c.HasOrigin() && *c.Latitude == 25.033 && *c.Longitude == 121.5654
	})).Return(&usecase.DiscoveryResult{Friends: []*usecase.FriendSnapshot{{Name: "Bob"}}}, nil)

	rec, env := do(t, e, http.MethodGet, "/friends/list?status=online&activityStatus=walking&maxDistance=1000&userLatitude=25.033&userLongitude=121.5654", "")

	require.Equal(t, http.StatusOK, rec.Code)
	result := decodeData[usecase.DiscoveryResult](t, env)
	require.Len(t, result.Friends, 1)
	assert.False(t, result.Degraded)
}

func TestDiscoveryHandler_Search_Degraded(t *testing.T) {
	e, discoveryUC := newDiscoveryTestEcho(t)
	discoveryUC.EXPECT().Search(mock.Anything, testCallerID, mock.Anything).
		Return(&usecase.DiscoveryResult{Friends: []*usecase.FriendSnapshot{}, Degraded: true}, nil)

	rec, env := do(t, e, http.MethodPost, "/friends/search", `{"query":"bo"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	result := decodeData[usecase.DiscoveryResult](t, env)
	assert.True(t, result.Degraded)
	assert.Empty(t, result.Friends)
}

func TestDiscoveryHandler_Search_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{"unknown status", http.MethodPost, "/friends/search", `{"status":"BUSY"}`},
		{"latitude out of range", http.MethodPost, "/friends/search", `{"user_latitude":91,"user_longitude":0}`},
		{"unparsable distance", http.MethodGet, "/friends/list?maxDistance=far", ""},
		{"nearby without lat", http.MethodGet, "/friends/nearby?lng=121.5", ""},
		{"nearby bad limit", http.MethodGet, "/friends/nearby?lat=25&lng=121&limit=x", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newDiscoveryTestEcho(t)

			rec, env := do(t, e, tt.method, tt.target, tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		})
	}
}

func TestDiscoveryHandler_Nearby(t *testing.T) {
	e, discoveryUC := newDiscoveryTestEcho(t)
	discoveryUC.EXPECT().Nearby(mock.Anything, testCallerID, 25.0, 121.5, 5).
		Return(&usecase.DiscoveryResult{Friends: []*usecase.FriendSnapshot{}}, nil)

	rec, _ := do(t, e, http.MethodGet, "/friends/nearby?lat=25&lng=121.5&limit=5", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDiscoveryHandler_Profile(t *testing.T) {
	friendID := uuid.New()

	t.Run("found", func(t *testing.T) {
		e, discoveryUC := newDiscoveryTestEcho(t)
		discoveryUC.EXPECT().Profile(mock.Anything, testCallerID, friendID, (*float64)(nil), (*float64)(nil)).
			Return(&usecase.FriendProfile{
				FriendSnapshot: &usecase.FriendSnapshot{UserID: friendID, Name: "Bob", Presence: entity.PresenceAway},
				History:        []usecase.HistoryPoint{},
			}, nil)

		rec, env := do(t, e, http.MethodGet, "/friends/"+friendID.String()+"/profile", "")

		require.Equal(t, http.StatusOK, rec.Code)
		profile := decodeData[map[string]any](t, env)
		assert.Equal(t, "Bob", profile["name"])
		assert.Equal(t, "AWAY", profile["presence"])
	})

	t.Run("not friends", func(t *testing.T) {
		e, discoveryUC := newDiscoveryTestEcho(t)
		discoveryUC.EXPECT().Profile(mock.Anything, testCallerID, friendID, mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrNotFriends)

		rec, env := do(t, e, http.MethodGet, "/friends/"+friendID.String()+"/profile?userLatitude=25&userLongitude=121", "")

		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "NOT_FRIENDS", env.Error.Code)
	})
}
