package booking_test

import (
	"context"
	"encoding/json"
	otelMocks "hotelbook/infras/otel/mocks"
	"hotelbook/internal/domains/booking/mocks"
	"hotelbook/internal/domains/booking/model/dto"
	"hotelbook/internal/handlers/booking"
	gDto "hotelbook/shared/dto"
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

func newRouter(t *testing.T) (*mocks.MockBookingService, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockBookingService(ctrl)
	handler := booking.New(service, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)
	router.Route("/admin", handler.AdminRouter)

	return service, router
}

func TestHandler_CreateBooking(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMocks func(service *mocks.MockBookingService)
		expectCode int
		expectKind string
	}{
		{
			name: "booked",
			body: `{"room_id":"room-1","check_in_date":"2025-03-01","check_out_date":"2025-03-04","guests":2}`,
			setupMocks: func(service *mocks.MockBookingService) {
				service.EXPECT().Create(gomock.Any(), dto.CreateBookingRequest{
					RoomID: "room-1", CheckInDate: "2025-03-01", CheckOutDate: "2025-03-04", Guests: 2,
				}).Return(dto.BookingResponse{ID: "booking-1", RoomID: "room-1", Nights: 3}, nil)
			},
			expectCode: http.StatusCreated,
		},
		{
			name:       "missing room",
			body:       `{"check_in_date":"2025-03-01","check_out_date":"2025-03-04","guests":2}`,
			setupMocks: func(*mocks.MockBookingService) {},
			expectCode: http.StatusBadRequest,
			expectKind: string(failure.KindInvalidInput),
		},
		{
			name: "room already held",
			body: `{"room_id":"room-1","check_in_date":"2025-03-01","check_out_date":"2025-03-04","guests":2}`,
			setupMocks: func(service *mocks.MockBookingService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(dto.BookingResponse{}, failure.RoomUnavailable("room is no longer available"))
			},
			expectCode: http.StatusConflict,
			expectKind: string(failure.KindRoomUnavailable),
		},
		{
			name: "inverted stay",
			body: `{"room_id":"room-1","check_in_date":"2025-03-04","check_out_date":"2025-03-01","guests":2}`,
			setupMocks: func(service *mocks.MockBookingService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(dto.BookingResponse{}, failure.InvalidDateRange("check-out must be after check-in"))
			},
			expectCode: http.StatusUnprocessableEntity,
			expectKind: string(failure.KindInvalidDateRange),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, router := newRouter(t)
			tt.setupMocks(service)

			req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(tt.body))
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

func TestHandler_GetMyBookings(t *testing.T) {
	service, router := newRouter(t)

	service.EXPECT().MyBookings(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error) {
			assert.Equal(t, 2, req.Page)
			assert.Len(t, filter.Filters, 1)

			return dto.GetBookingsResponse{TotalData: 1, TotalPage: 1}, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/bookings/mine?page=2&status=Confirmed", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_Transitions(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		method     string
		setupMocks func(service *mocks.MockBookingService)
		expectCode int
	}{
		{
			name:   "confirm pending",
			path:   "/admin/bookings/booking-1/confirm",
			method: http.MethodPost,
			setupMocks: func(service *mocks.MockBookingService) {
				service.EXPECT().Confirm(gomock.Any(), "booking-1").Return(nil)
			},
			expectCode: http.StatusOK,
		},
		{
			name:   "confirm cancelled",
			path:   "/admin/bookings/booking-1/confirm",
			method: http.MethodPost,
			setupMocks: func(service *mocks.MockBookingService) {
				service.EXPECT().Confirm(gomock.Any(), "booking-1").
					Return(failure.InvalidState("cannot confirm a booking in its current status"))
			},
			expectCode: http.StatusConflict,
		},
		{
			name:   "customer cancels",
			path:   "/bookings/booking-1/cancel",
			method: http.MethodPost,
			setupMocks: func(service *mocks.MockBookingService) {
				service.EXPECT().Cancel(gomock.Any(), "booking-1").Return(nil)
			},
			expectCode: http.StatusOK,
		},
		{
			name:   "cancel someone else's booking",
			path:   "/bookings/booking-2/cancel",
			method: http.MethodPost,
			setupMocks: func(service *mocks.MockBookingService) {
				service.EXPECT().Cancel(gomock.Any(), "booking-2").Return(failure.NotFound("booking not found"))
			},
			expectCode: http.StatusNotFound,
		},
		{
			name:   "admin deletes",
			path:   "/admin/bookings/booking-1",
			method: http.MethodDelete,
			setupMocks: func(service *mocks.MockBookingService) {
				service.EXPECT().Delete(gomock.Any(), "booking-1").Return(nil)
			},
			expectCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, router := newRouter(t)
			tt.setupMocks(service)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectCode, rec.Code)
		})
	}
}
