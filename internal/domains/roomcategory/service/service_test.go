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
	hotelMocks "hotelbook/internal/domains/hotel/mocks"
	hotelModel "hotelbook/internal/domains/hotel/model"
	categoryMocks "hotelbook/internal/domains/roomcategory/mocks"
	"hotelbook/internal/domains/roomcategory/model"
	"hotelbook/internal/domains/roomcategory/model/dto"
	"hotelbook/internal/domains/roomcategory/repository"
	"hotelbook/internal/domains/roomcategory/service"
	cacheMocks "hotelbook/shared/cache/mocks"
	"hotelbook/shared/failure"
	gDto "hotelbook/shared/dto"
)

func newService(t *testing.T) (*categoryMocks.MockRoomCategory, *hotelMocks.MockHotel, service.RoomCategory) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := categoryMocks.NewMockRoomCategory(ctrl)
	hotels := hotelMocks.NewMockHotel(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil")).AnyTimes()
	cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	return repo, hotels, service.New(repo, hotels, cfg, cache, otelMocks.NewOtel())
}

func TestRoomCategoryService_Create(t *testing.T) {
	req := dto.CreateCategoryRequest{CategoryName: "Deluxe", BasePrice: 120, Capacity: 2}

	tests := []struct {
		name     string
		setup    func(repo *categoryMocks.MockRoomCategory, hotels *hotelMocks.MockHotel)
		wantKind failure.Kind
		wantErr  bool
	}{
		{
			name: "created under the hotel",
			setup: func(repo *categoryMocks.MockRoomCategory, hotels *hotelMocks.MockHotel) {
				hotels.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, category model.RoomCategory) error {
					assert.Equal(t, "h-1", category.HotelID)
					assert.InDelta(t, 120.0, category.BasePrice, 0.001)

					return nil
				})
			},
		},
		{
			name: "unknown hotel",
			setup: func(_ *categoryMocks.MockRoomCategory, hotels *hotelMocks.MockHotel) {
				hotels.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantKind: failure.KindNotFound,
			wantErr:  true,
		},
		{
			name: "duplicate name in the same hotel",
			setup: func(repo *categoryMocks.MockRoomCategory, hotels *hotelMocks.MockHotel) {
				hotels.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantKind: failure.KindDuplicateEntry,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, hotels, svc := newService(t)
			tt.setup(repo, hotels)

			_, err := svc.Create(context.Background(), "h-1", req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomCategoryService_GetByHotel(t *testing.T) {
	repo, hotels, svc := newService(t)

	minPrice, maxPrice := 90.0, 300.0
	hotels.EXPECT().GetSummary(gomock.Any(), "h-1").Return(hotelModel.Summary{
		Hotel:         hotelModel.Hotel{ID: "h-1"},
		CategoryCount: 2,
		MinPrice:      &minPrice,
		MaxPrice:      &maxPrice,
	}, nil)
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.RoomCategory{
		{ID: "c-1", HotelID: "h-1", CategoryName: "Standard", BasePrice: 90, Capacity: 2},
		{ID: "c-2", HotelID: "h-1", CategoryName: "Suite", BasePrice: 300, Capacity: 4},
	}, nil)

	res, err := svc.GetByHotel(context.Background(), "h-1", gDto.QueryParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, res.Categories, 2)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, &minPrice, res.MinPrice)
	assert.Equal(t, &maxPrice, res.MaxPrice)

	hotels.EXPECT().GetSummary(gomock.Any(), "nope").Return(hotelModel.Summary{}, nil)

	_, err = svc.GetByHotel(context.Background(), "nope", gDto.QueryParams{Page: 1, Limit: 10})
	assert.True(t, failure.IsKind(err, failure.KindNotFound))
}

func TestRoomCategoryService_UpdateAndDelete(t *testing.T) {
	repo, _, svc := newService(t)

	assert.True(t, failure.IsKind(svc.Update(context.Background(), dto.UpdateCategoryRequest{}, "c-1"), failure.KindInvalidInput))

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomCategory{ID: "c-1", HotelID: "h-1"}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	assert.NoError(t, svc.Update(context.Background(), dto.UpdateCategoryRequest{BasePrice: 150}, "c-1"))

	repo.EXPECT().DeleteCascade(gomock.Any(), "c-1").Return(nil)
	assert.NoError(t, svc.Delete(context.Background(), "c-1"))

	repo.EXPECT().DeleteCascade(gomock.Any(), "c-2").Return(repository.ErrNotFound)
	assert.True(t, failure.IsKind(svc.Delete(context.Background(), "c-2"), failure.KindNotFound))
}
