package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotelbook/config"
	otelMocks "hotelbook/infras/otel/mocks"
	bookingMocks "hotelbook/internal/domains/booking/mocks"
	"hotelbook/internal/domains/booking/model"
	"hotelbook/internal/domains/booking/model/dto"
	"hotelbook/internal/domains/booking/repository"
	"hotelbook/internal/domains/booking/service"
	roomMocks "hotelbook/internal/domains/room/mocks"
	roomModel "hotelbook/internal/domains/room/model"
	cacheMocks "hotelbook/shared/cache/mocks"
	"hotelbook/shared/constant"
	gDto "hotelbook/shared/dto"
	"hotelbook/shared/failure"
	publisherMocks "hotelbook/shared/publisher/mocks"
	"hotelbook/shared/session"
)

type fixture struct {
	repo      *bookingMocks.MockBooking
	rooms     *roomMocks.MockRoom
	publisher *publisherMocks.MockPublisher
	svc       service.Booking
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := bookingMocks.NewMockBooking(ctrl)
	rooms := roomMocks.NewMockRoom(ctrl)
	pub := publisherMocks.NewMockPublisher(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil")).AnyTimes()
	cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Booking.ConsumerStatus = model.StatusConfirmed
	cfg.Booking.AdminStatus = model.StatusPending

	return fixture{
		repo:      repo,
		rooms:     rooms,
		publisher: pub,
		svc:       service.New(repo, rooms, pub, cfg, cache, otelMocks.NewOtel()),
	}
}

func userCtx(id string) context.Context {
	return session.WithSession(context.Background(), session.New(id, constant.RoleUser))
}

func adminCtx() context.Context {
	return session.WithSession(context.Background(), session.New("admin-1", constant.RoleAdmin))
}

func deluxeRoom() roomModel.Room {
	return roomModel.Room{
		ID:                 "r-1",
		RoomNumber:         "101",
		AvailabilityStatus: roomModel.StatusAvailable,
		CategoryName:       "Deluxe",
		BasePrice:          100,
		Capacity:           2,
		HotelName:          "Seaside",
	}
}

func TestBookingService_Create(t *testing.T) {
	valid := dto.CreateBookingRequest{RoomID: "r-1", CheckInDate: "2025-03-01", CheckOutDate: "2025-03-04", Guests: 2}

	tests := []struct {
		name     string
		ctx      context.Context
		req      dto.CreateBookingRequest
		setup    func(f fixture)
		wantKind failure.Kind
	}{
		{
			name: "confirmed booking costs nights times base price",
			ctx:  userCtx("u-1"),
			req:  valid,
			setup: func(f fixture) {
				f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(deluxeRoom(), nil)
				f.repo.EXPECT().CreateWithHold(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, booking model.Booking) error {
					assert.Equal(t, "u-1", booking.UserID)
					assert.Equal(t, model.StatusConfirmed, booking.Status)
					assert.InDelta(t, 300.0, booking.TotalCost, 0.001)

					return nil
				})
				f.publisher.EXPECT().Publish(gomock.Any(), model.TopicCreated, gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "publish failure does not fail the booking",
			ctx:  userCtx("u-1"),
			req:  valid,
			setup: func(f fixture) {
				f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(deluxeRoom(), nil)
				f.repo.EXPECT().CreateWithHold(gomock.Any(), gomock.Any()).Return(nil)
				f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
			},
		},
		{
			name:     "anonymous caller",
			ctx:      context.Background(),
			req:      valid,
			setup:    func(fixture) {},
			wantKind: failure.KindUnauthorized,
		},
		{
			name:     "malformed date",
			ctx:      userCtx("u-1"),
			req:      dto.CreateBookingRequest{RoomID: "r-1", CheckInDate: "03/01/2025", CheckOutDate: "2025-03-04", Guests: 1},
			setup:    func(fixture) {},
			wantKind: failure.KindInvalidInput,
		},
		{
			name:     "check-out equals check-in",
			ctx:      userCtx("u-1"),
			req:      dto.CreateBookingRequest{RoomID: "r-1", CheckInDate: "2025-03-01", CheckOutDate: "2025-03-01", Guests: 1},
			setup:    func(fixture) {},
			wantKind: failure.KindInvalidDateRange,
		},
		{
			name:     "no guests",
			ctx:      userCtx("u-1"),
			req:      dto.CreateBookingRequest{RoomID: "r-1", CheckInDate: "2025-03-01", CheckOutDate: "2025-03-02"},
			setup:    func(fixture) {},
			wantKind: failure.KindInvalidInput,
		},
		{
			name: "unknown room",
			ctx:  userCtx("u-1"),
			req:  valid,
			setup: func(f fixture) {
				f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.Room{}, nil)
			},
			wantKind: failure.KindNotFound,
		},
		{
			name: "too many guests for the room",
			ctx:  userCtx("u-1"),
			req:  dto.CreateBookingRequest{RoomID: "r-1", CheckInDate: "2025-03-01", CheckOutDate: "2025-03-02", Guests: 3},
			setup: func(f fixture) {
				f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(deluxeRoom(), nil)
			},
			wantKind: failure.KindInvalidInput,
		},
		{
			name: "room already booked",
			ctx:  userCtx("u-1"),
			req:  valid,
			setup: func(f fixture) {
				f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(deluxeRoom(), nil)
				f.repo.EXPECT().CreateWithHold(gomock.Any(), gomock.Any()).Return(repository.ErrRoomUnavailable)
			},
			wantKind: failure.KindRoomUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			res, err := f.svc.Create(tt.ctx, tt.req)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, 3, res.Nights)
			assert.Equal(t, "Deluxe", res.RoomType)
			assert.Equal(t, "Seaside", res.HotelName)
		})
	}
}

func TestBookingService_AdminCreate(t *testing.T) {
	tests := []struct {
		name       string
		status     string
		wantStatus string
	}{
		{name: "defaults to pending", wantStatus: model.StatusPending},
		{name: "explicit confirmed", status: model.StatusConfirmed, wantStatus: model.StatusConfirmed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(deluxeRoom(), nil)
			f.repo.EXPECT().CreateWithHold(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, booking model.Booking) error {
				assert.Equal(t, "u-9", booking.UserID)
				assert.Equal(t, tt.wantStatus, booking.Status)
				assert.Equal(t, "admin-1", booking.CreatedBy)

				return nil
			})
			f.publisher.EXPECT().Publish(gomock.Any(), model.TopicCreated, gomock.Any(), gomock.Any()).Return(nil)

			_, err := f.svc.AdminCreate(adminCtx(), dto.AdminCreateBookingRequest{
				UserID: "u-9",
				Status: tt.status,
				CreateBookingRequest: dto.CreateBookingRequest{
					RoomID: "r-1", CheckInDate: "2025-05-10", CheckOutDate: "2025-05-12", Guests: 1,
				},
			})
			assert.NoError(t, err)
		})
	}
}

func TestBookingService_Confirm(t *testing.T) {
	pending := model.Booking{ID: "b-1", UserID: "u-1", RoomID: "r-1", Status: model.StatusPending}

	tests := []struct {
		name     string
		setup    func(f fixture)
		wantKind failure.Kind
	}{
		{
			name: "pending becomes confirmed",
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pending, nil)
				f.repo.EXPECT().Confirm(gomock.Any(), "b-1", "admin-1").Return(true, nil)
				f.publisher.EXPECT().Publish(gomock.Any(), model.TopicConfirmed, "b-1", gomock.Any()).Return(nil)
			},
		},
		{
			name: "already confirmed is a no-op",
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pending, nil)
				f.repo.EXPECT().Confirm(gomock.Any(), "b-1", "admin-1").Return(false, nil)
			},
		},
		{
			name: "cancelled cannot be confirmed",
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pending, nil)
				f.repo.EXPECT().Confirm(gomock.Any(), "b-1", "admin-1").Return(false, repository.ErrInvalidTransition)
			},
			wantKind: failure.KindInvalidState,
		},
		{
			name: "missing booking",
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			wantKind: failure.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			err := f.svc.Confirm(adminCtx(), "b-1")

			if tt.wantKind == "" {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, tt.wantKind, failure.GetKind(err))
			}
		})
	}
}

func TestBookingService_Cancel(t *testing.T) {
	owned := model.Booking{ID: "b-1", UserID: "u-1", RoomID: "r-1", Status: model.StatusConfirmed}

	tests := []struct {
		name     string
		ctx      context.Context
		setup    func(f fixture)
		wantKind failure.Kind
	}{
		{
			name: "owner cancels",
			ctx:  userCtx("u-1"),
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(owned, nil)
				f.repo.EXPECT().Cancel(gomock.Any(), "b-1", "u-1").Return(true, nil)
				f.publisher.EXPECT().Publish(gomock.Any(), model.TopicCancelled, "b-1", gomock.Any()).Return(nil)
			},
		},
		{
			name: "admin cancels any booking",
			ctx:  adminCtx(),
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(owned, nil)
				f.repo.EXPECT().Cancel(gomock.Any(), "b-1", "admin-1").Return(true, nil)
				f.publisher.EXPECT().Publish(gomock.Any(), model.TopicCancelled, "b-1", gomock.Any()).Return(nil)
			},
		},
		{
			name: "second cancel is silent",
			ctx:  userCtx("u-1"),
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(owned, nil)
				f.repo.EXPECT().Cancel(gomock.Any(), "b-1", "u-1").Return(false, nil)
			},
		},
		{
			name: "someone else's booking",
			ctx:  userCtx("u-2"),
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(owned, nil)
			},
			wantKind: failure.KindNotFound,
		},
		{
			name: "removed between read and cancel",
			ctx:  adminCtx(),
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(owned, nil)
				f.repo.EXPECT().Cancel(gomock.Any(), "b-1", "admin-1").Return(false, repository.ErrNotFound)
			},
			wantKind: failure.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			err := f.svc.Cancel(tt.ctx, "b-1")

			if tt.wantKind == "" {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, tt.wantKind, failure.GetKind(err))
			}
		})
	}
}

func TestBookingService_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{ID: "b-1"}, nil)
		f.repo.EXPECT().Delete(gomock.Any(), "b-1").Return(nil)
		f.publisher.EXPECT().Publish(gomock.Any(), model.TopicDeleted, "b-1", gomock.Any()).Return(nil)

		assert.NoError(t, f.svc.Delete(adminCtx(), "b-1"))
	})

	t.Run("missing", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		err := f.svc.Delete(adminCtx(), "b-1")
		assert.True(t, failure.IsKind(err, failure.KindNotFound))
	})
}

func TestBookingService_Get(t *testing.T) {
	booking := model.Booking{ID: "b-1", UserID: "u-1", Status: model.StatusPending}

	tests := []struct {
		name    string
		ctx     context.Context
		wantErr bool
	}{
		{name: "owner", ctx: userCtx("u-1")},
		{name: "admin", ctx: adminCtx()},
		{name: "other customer", ctx: userCtx("u-2"), wantErr: true},
		{name: "anonymous", ctx: context.Background(), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

			res, err := f.svc.Get(tt.ctx, "b-1")

			if tt.wantErr {
				assert.True(t, failure.IsKind(err, failure.KindNotFound))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "b-1", res.ID)
		})
	}
}

func TestBookingService_MyBookings(t *testing.T) {
	t.Run("scoped to the caller", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
			where, args := filter.GetWhereClause()
			assert.Contains(t, where, "bookings.user_id = :user_id")
			assert.Contains(t, where, "bookings.status = :status")
			assert.Equal(t, "u-1", args["user_id"])

			return 1, nil
		})
		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Booking{{ID: "b-1", UserID: "u-1"}}, nil)

		filter := dto.BookingFilter{Status: model.StatusConfirmed}.ToFilterGroup()

		res, err := f.svc.MyBookings(userCtx("u-1"), gDto.QueryParams{Page: 1, Limit: 10}, filter)
		require.NoError(t, err)
		assert.Len(t, res.Bookings, 1)
	})

	t.Run("admin session is rejected", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.MyBookings(adminCtx(), gDto.QueryParams{}, gDto.FilterGroup{})
		assert.True(t, failure.IsKind(err, failure.KindUnauthorized))
	})
}

func TestBookingService_Reconcile(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().Reconcile(gomock.Any()).Return(int64(2), nil)

	fixed, err := f.svc.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), fixed)
}
