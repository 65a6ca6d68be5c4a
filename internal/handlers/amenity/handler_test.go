package amenity_test

import (
	"encoding/json"
	otelMocks "hotelbook/infras/otel/mocks"
	"hotelbook/internal/domains/amenity/mocks"
	"hotelbook/internal/domains/amenity/model/dto"
	"hotelbook/internal/handlers/amenity"
	"hotelbook/shared/failure"
	"hotelbook/transport/http/response"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*mocks.MockAmenityService, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockAmenityService(ctrl)
	handler := amenity.New(service, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)
	router.Route("/admin", handler.AdminRouter)

	return service, router
}

func TestHandler_CreateAmenity(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMocks func(service *mocks.MockAmenityService)
		expectCode int
		expectKind string
	}{
		{
			name: "created",
			body: `{"name":"Spa","icon":"spa"}`,
			setupMocks: func(service *mocks.MockAmenityService) {
				service.EXPECT().Create(gomock.Any(), dto.CreateAmenityRequest{Name: "Spa", Icon: "spa"}).
					Return(dto.AmenityResponse{ID: "amenity-1", Name: "Spa"}, nil)
			},
			expectCode: http.StatusCreated,
		},
		{
			name:       "missing name",
			body:       `{"icon":"spa"}`,
			setupMocks: func(*mocks.MockAmenityService) {},
			expectCode: http.StatusBadRequest,
			expectKind: string(failure.KindInvalidInput),
		},
		{
			name: "name already used",
			body: `{"name":"spa"}`,
			setupMocks: func(service *mocks.MockAmenityService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(dto.AmenityResponse{}, failure.DuplicateEntry("amenity already exists"))
			},
			expectCode: http.StatusConflict,
			expectKind: string(failure.KindDuplicateEntry),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, router := newRouter(t)
			tt.setupMocks(service)

			req := httptest.NewRequest(http.MethodPost, "/admin/amenities", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectCode, rec.Code)

			if tt.expectKind != "" {
				var body response.Error
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.expectKind, body.Kind)
			}
		})
	}
}

func TestHandler_GetAmenities(t *testing.T) {
	service, router := newRouter(t)

	service.EXPECT().GetAll(gomock.Any(), gomock.Any()).Return(dto.GetAmenitiesResponse{
		Amenities: []dto.AmenityResponse{{ID: "amenity-1", Name: "Free WiFi"}},
		TotalData: 1,
		TotalPage: 1,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/amenities", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body response.Data[dto.GetAmenitiesResponse]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Data)
	assert.Equal(t, "Free WiFi", body.Data.Amenities[0].Name)
}

func TestHandler_GetHotelAmenities(t *testing.T) {
	tests := []struct {
		name       string
		result     []dto.AmenityResponse
		err        error
		expectCode int
	}{
		{name: "listed", result: []dto.AmenityResponse{{ID: "amenity-1", Name: "Bar"}}, expectCode: http.StatusOK},
		{name: "unknown hotel", err: failure.NotFound("hotel not found"), expectCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, router := newRouter(t)
			service.EXPECT().GetByHotel(gomock.Any(), "hotel-1").Return(tt.result, tt.err)

			req := httptest.NewRequest(http.MethodGet, "/hotels/hotel-1/amenities", nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectCode, rec.Code)
		})
	}
}

func TestHandler_DeleteAmenity(t *testing.T) {
	service, router := newRouter(t)
	service.EXPECT().Delete(gomock.Any(), "amenity-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/admin/amenities/amenity-1", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
