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
	s3Mocks "hotelbook/infras/s3/mocks"
	amenityMocks "hotelbook/internal/domains/amenity/mocks"
	amenityModel "hotelbook/internal/domains/amenity/model"
	hotelMocks "hotelbook/internal/domains/hotel/mocks"
	"hotelbook/internal/domains/hotel/model"
	"hotelbook/internal/domains/hotel/model/dto"
	"hotelbook/internal/domains/hotel/repository"
	"hotelbook/internal/domains/hotel/service"
	cacheMocks "hotelbook/shared/cache/mocks"
	"hotelbook/shared/constant"
	"hotelbook/shared/failure"
	"hotelbook/shared/session"
)

// 1x1 transparent png
const pngDataURL = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII="

type fixture struct {
	repo      *hotelMocks.MockHotel
	amenities *amenityMocks.MockAmenity
	storage   *s3Mocks.MockS3
	cache     *cacheMocks.MockRedisCache
	svc       service.Hotel
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f := fixture{
		repo:      hotelMocks.NewMockHotel(ctrl),
		amenities: amenityMocks.NewMockAmenity(ctrl),
		storage:   s3Mocks.NewMockS3(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.repo, f.amenities, f.storage, cfg, f.cache, otelMocks.NewOtel())

	return f
}

func adminCtx() context.Context {
	return session.WithSession(context.Background(), session.New("admin-1", constant.RoleAdmin))
}

func strPtr(s string) *string { return &s }

func TestHotelService_Create(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.CreateHotelRequest
		setup    func(f fixture)
		wantKind failure.Kind
		wantErr  bool
	}{
		{
			name: "creates hotel with image and amenities",
			req:  dto.CreateHotelRequest{Name: "Grand", Location: "Lisbon", StarRating: 4, Image: pngDataURL, AmenityIDs: []string{"wifi", "pool"}},
			setup: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.storage.EXPECT().Put(gomock.Any(), model.ImageDirectory, gomock.Any(), "image/png", gomock.Any()).Return("https://cdn/hotels/x.png", nil)
				f.repo.EXPECT().CreateWithAmenities(gomock.Any(), gomock.Any(), []string{"wifi", "pool"}).DoAndReturn(func(_ context.Context, hotel model.Hotel, _ []string) error {
					require.NotNil(t, hotel.ImagePath)
					assert.Equal(t, "https://cdn/hotels/x.png", *hotel.ImagePath)
					assert.Equal(t, "admin-1", hotel.CreatedBy)

					return nil
				})
			},
		},
		{
			name: "duplicate name and location",
			req:  dto.CreateHotelRequest{Name: "Grand", Location: "Lisbon", StarRating: 4},
			setup: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantKind: failure.KindDuplicateEntry,
			wantErr:  true,
		},
		{
			name: "image that is not a data url",
			req:  dto.CreateHotelRequest{Name: "Grand", Location: "Lisbon", StarRating: 4, Image: "hello"},
			setup: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantKind: failure.KindInvalidInput,
			wantErr:  true,
		},
		{
			name: "uploaded image is removed when insert fails",
			req:  dto.CreateHotelRequest{Name: "Grand", Location: "Lisbon", StarRating: 4, Image: pngDataURL},
			setup: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.storage.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("https://cdn/hotels/x.png", nil)
				f.repo.EXPECT().CreateWithAmenities(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))
				f.storage.EXPECT().Remove(gomock.Any(), "https://cdn/hotels/x.png").Return(nil)
			},
			wantKind: failure.KindStorageError,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			res, err := f.svc.Create(adminCtx(), tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, res.ID)
		})
	}
}

func TestHotelService_Get(t *testing.T) {
	f := newFixture(t)
	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil")).AnyTimes()

	f.repo.EXPECT().GetSummary(gomock.Any(), "missing").Return(model.Summary{}, nil)

	_, err := f.svc.Get(context.Background(), "missing")
	assert.True(t, failure.IsKind(err, failure.KindNotFound))

	minPrice, maxPrice := 80.0, 250.0
	f.repo.EXPECT().GetSummary(gomock.Any(), "h-1").Return(model.Summary{
		Hotel:         model.Hotel{ID: "h-1", Name: "Grand", Location: "Lisbon", StarRating: 4},
		CategoryCount: 3,
		MinPrice:      &minPrice,
		MaxPrice:      &maxPrice,
	}, nil)
	f.amenities.EXPECT().GetByHotel(gomock.Any(), "h-1").Return([]amenityModel.Amenity{{ID: "a-1", Name: "WiFi"}}, nil)

	res, err := f.svc.Get(context.Background(), "h-1")
	require.NoError(t, err)
	assert.Equal(t, 3, res.CategoryCount)
	assert.Equal(t, &maxPrice, res.MaxPrice)
	assert.Len(t, res.Amenities, 1)
}

func TestHotelService_Update(t *testing.T) {
	current := model.Hotel{ID: "h-1", Name: "Grand", Location: "Lisbon", StarRating: 4, ImagePath: strPtr("https://cdn/hotels/old.png")}

	tests := []struct {
		name     string
		req      dto.UpdateHotelRequest
		setup    func(f fixture)
		wantKind failure.Kind
		wantErr  bool
	}{
		{
			name:     "empty request",
			setup:    func(fixture) {},
			wantKind: failure.KindInvalidInput,
			wantErr:  true,
		},
		{
			name: "missing hotel",
			req:  dto.UpdateHotelRequest{StarRating: 5},
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{}, nil)
			},
			wantKind: failure.KindNotFound,
			wantErr:  true,
		},
		{
			name: "rename collides with another hotel",
			req:  dto.UpdateHotelRequest{Name: "Ritz"},
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantKind: failure.KindDuplicateEntry,
			wantErr:  true,
		},
		{
			name: "clearing amenities keeps the image",
			req:  dto.UpdateHotelRequest{AmenityIDs: &[]string{}},
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
				f.repo.EXPECT().UpdateWithAmenities(gomock.Any(), "h-1", gomock.Any(), &[]string{}).Return(nil)
			},
		},
		{
			name: "new image replaces the old one",
			req:  dto.UpdateHotelRequest{Image: pngDataURL},
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
				f.storage.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("https://cdn/hotels/new.png", nil)
				f.repo.EXPECT().UpdateWithAmenities(gomock.Any(), "h-1", gomock.Any(), gomock.Nil()).DoAndReturn(func(_ context.Context, _ string, fields map[string]any, _ *[]string) error {
					assert.Equal(t, "https://cdn/hotels/new.png", fields[model.FieldImagePath])

					return nil
				})
				f.storage.EXPECT().Remove(gomock.Any(), "https://cdn/hotels/old.png").Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			err := f.svc.Update(adminCtx(), tt.req, "h-1")

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHotelService_Delete(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{ID: "h-1", ImagePath: strPtr("https://cdn/hotels/a.png")}, nil)
	f.repo.EXPECT().DeleteCascade(gomock.Any(), "h-1").Return(nil)
	f.storage.EXPECT().Remove(gomock.Any(), "https://cdn/hotels/a.png").Return(errors.New("bucket gone"))

	assert.NoError(t, f.svc.Delete(adminCtx(), "h-1"))

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{ID: "h-2"}, nil)
	f.repo.EXPECT().DeleteCascade(gomock.Any(), "h-2").Return(repository.ErrNotFound)

	assert.True(t, failure.IsKind(f.svc.Delete(adminCtx(), "h-2"), failure.KindNotFound))
}
