package handler

import (
	"net/http"
	"testing"
	"time"

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

func newPlaceTestEcho(t *testing.T) (*echo.Echo, *mocks.MockPlaceUsecase) {
	placeUC := mocks.NewMockPlaceUsecase(t)
	h := NewPlaceHandler(PlaceHandlerParams{PlaceUC: placeUC})

	e := newTestEcho()
	g := e.Group("/places")
	g.POST("/search", h.Search)
	g.GET("/nearby", h.Nearby)
	g.GET("/categories", h.Categories)
	g.GET("/popular", h.Popular)
	g.GET("/:placeId", h.GetPlace)
	g.POST("/:placeId/checkin", h.CheckIn, asCaller)

	return e, placeUC
}

func TestPlaceHandler_Nearby(t *testing.T) {
	cafe := entity.CategoryCafe

	tests := []struct {
		name       string
		target     string
		wantRadius float64
		wantCat    *entity.PlaceCategory
	}{
		{"default radius", "/places/nearby?latitude=25&longitude=121", 0, nil},
		{"explicit radius and category", "/places/nearby?latitude=25&longitude=121&radius=800&category=cafe", 800, &cafe},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, placeUC := newPlaceTestEcho(t)
			placeUC.EXPECT().Nearby(mock.Anything, 25.0, 121.0, tt.wantRadius, tt.wantCat).Return([]*usecase.PlaceView{}, nil)

			rec, _ := do(t, e, http.MethodGet, tt.target, "")

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestPlaceHandler_Search(t *testing.T) {
	e, placeUC := newPlaceTestEcho(t)
	placeUC.EXPECT().Search(mock.Anything, mock.MatchedBy(func(c *usecase.PlaceSearchCriteria) bool {
		return c.Query == "tea" && *c.Category == entity.CategoryOther && c.Latitude == nil
	})).Return([]*usecase.PlaceView{{Name: "Tea House"}}, nil)

	rec, env := do(t, e, http.MethodPost, "/places/search", `{"query":"tea","category":"teahouse"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	places := decodeData[[]usecase.PlaceView](t, env)
	require.Len(t, places, 1)
	assert.Equal(t, "Tea House", places[0].Name)
}

func TestPlaceHandler_Popular(t *testing.T) {
	e, placeUC := newPlaceTestEcho(t)
	placeUC.EXPECT().TopPlaces(mock.Anything, 25.0, 121.0, 3, 2.5).Return([]*usecase.PlaceView{}, nil)

	rec, _ := do(t, e, http.MethodGet, "/places/popular?lat=25&lng=121&limit=3&radius=2.5", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPlaceHandler_GetPlace_NotFound(t *testing.T) {
	e, placeUC := newPlaceTestEcho(t)
	placeID := uuid.New()
	placeUC.EXPECT().GetPlace(mock.Anything, placeID, (*float64)(nil), (*float64)(nil)).
		Return(nil, domainerrors.ErrPlaceNotFound.WrapMessage("get place failed"))

	rec, env := do(t, e, http.MethodGet, "/places/"+placeID.String(), "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PLACE_NOT_FOUND", env.Error.Code)
}

func TestPlaceHandler_CheckIn(t *testing.T) {
	placeID := uuid.New()
	zone := time.FixedZone("UTC+8", 8*3600)

	t.Run("recorded", func(t *testing.T) {
		e, placeUC := newPlaceTestEcho(t)
		placeUC.EXPECT().CheckIn(mock.Anything, placeID, testCallerID, 25.0, 121.0).Return(&entity.CheckIn{
			ID:          uuid.New(),
			PlaceID:     placeID,
			UserID:      testCallerID,
			CheckedInAt: time.Date(2025, 3, 1, 23, 30, 0, 0, zone),
			Day:         time.Date(2025, 3, 1, 0, 0, 0, 0, zone),
		}, nil)

		rec, env := do(t, e, http.MethodPost, "/places/"+placeID.String()+"/checkin", `{"latitude":25,"longitude":121}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "2025-03-01", decodeData[CheckInResponse](t, env).Day)
	})

	t.Run("too far", func(t *testing.T) {
		e, placeUC := newPlaceTestEcho(t)
		placeUC.EXPECT().CheckIn(mock.Anything, placeID, testCallerID, 25.0, 121.0).Return(nil, domainerrors.ErrTooFar.WithDetails("150 m from place"))

		rec, env := do(t, e, http.MethodPost, "/places/"+placeID.String()+"/checkin", `{"latitude":25,"longitude":121}`)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "TOO_FAR", env.Error.Code)
	})

	t.Run("duplicate", func(t *testing.T) {
		e, placeUC := newPlaceTestEcho(t)
		placeUC.EXPECT().CheckIn(mock.Anything, placeID, testCallerID, 25.0, 121.0).Return(nil, domainerrors.ErrDuplicateCheckIn)

		rec, _ := do(t, e, http.MethodPost, "/places/"+placeID.String()+"/checkin", `{"latitude":25,"longitude":121}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("missing coordinates", func(t *testing.T) {
		e, _ := newPlaceTestEcho(t)

		rec, env := do(t, e, http.MethodPost, "/places/"+placeID.String()+"/checkin", `{"latitude":25}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `[{"field":"longitude","rule":"required"}]`, string(env.Error.Details))
	})
}
