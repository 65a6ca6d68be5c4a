package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Hotel=MockHotelService

import (
	"context"
	"errors"
	"fmt"
	"hotelbook/config"
	"hotelbook/infras/otel"
	"hotelbook/infras/s3"
	amenityModel "hotelbook/internal/domains/amenity/model"
	amenityDto "hotelbook/internal/domains/amenity/model/dto"
	amenityRepo "hotelbook/internal/domains/amenity/repository"
	bookingModel "hotelbook/internal/domains/booking/model"
	"hotelbook/internal/domains/hotel/model"
	"hotelbook/internal/domains/hotel/model/dto"
	"hotelbook/internal/domains/hotel/repository"
	reportModel "hotelbook/internal/domains/report/model"
	roomModel "hotelbook/internal/domains/room/model"
	categoryModel "hotelbook/internal/domains/roomcategory/model"
	"hotelbook/shared"
	"hotelbook/shared/base64"
	"hotelbook/shared/cache"
	"hotelbook/shared/constant"
	gDto "hotelbook/shared/dto"
	"hotelbook/shared/failure"
	"hotelbook/shared/session"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetHotel    = model.CachePrefix + "get"
	cacheGetAllHotel = model.CachePrefix + "gets"
	cacheCountHotel  = model.CachePrefix + "count"
)

type Hotel interface {
	Create(ctx context.Context, req dto.CreateHotelRequest) (dto.HotelResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetHotelsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.HotelResponse, error)
	Update(ctx context.Context, req dto.UpdateHotelRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.Hotel
	amenityRepo amenityRepo.Amenity
	storage     s3.S3
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(repo repository.Hotel, amenityRepo amenityRepo.Amenity, storage s3.S3, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Hotel {
	return &serviceImpl{
		repo:        repo,
		amenityRepo: amenityRepo,
		storage:     storage,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateHotelRequest) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.ensureUnique(ctx, req.Name, req.Location, constant.Empty); err != nil {
		return res, err
	}

	imagePath, err := s.upload(ctx, req.Image)
	if err != nil {
		return res, err
	}

	hotel := req.ToModel(session.Actor(ctx), imagePath)

	if err = s.repo.CreateWithAmenities(ctx, hotel, req.AmenityIDs); err != nil {
		log.Error().Err(err).Msg("failed to create hotel")

		s.removeImage(ctx, imagePath)

		return res, fmt.Errorf("failed to create hotel: %w", err)
	}

	s.invalidate(ctx)

	res.FromModel(hotel)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetHotelsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	req.Qualify(model.TableName, model.FieldName, model.FieldLocation, model.FieldStarRating)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllHotel, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotels")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count hotels")

		return res, fmt.Errorf("failed to count hotels: %w", err)
	}

	summaries, err := s.repo.GetSummaries(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotels")

		return res, fmt.Errorf("failed to get hotels: %w", err)
	}

	res.FromModels(summaries, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotels to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountHotel, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count hotels")

		return res, fmt.Errorf("failed to count hotels: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotel count to cache")
		}
	}()

	return res, nil
}

// Get returns the hotel with its amenities and the price range of its room categories.
func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetHotel, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotel")

		return res, nil
	}

	summary, err := s.repo.GetSummary(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel")

		return res, fmt.Errorf("failed to get hotel: %w", err)
	}

	if summary.ID == constant.Empty {
		return res, failure.NotFound("hotel not found") // nolint:wrapcheck
	}

	amenities, err := s.amenityRepo.GetByHotel(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel amenities")

		return res, fmt.Errorf("failed to get hotel amenities: %w", err)
	}

	res.FromSummary(summary)
	res.Amenities = amenityDto.FromModels(amenities)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotel to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateHotelRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateHotelRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	current, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel")

		return fmt.Errorf("failed to get hotel: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("hotel not found") // nolint:wrapcheck
	}

	if req.Name != constant.Empty || req.Location != constant.Empty {
		name, location := current.Name, current.Location
		if req.Name != constant.Empty {
			name = req.Name
		}

		if req.Location != constant.Empty {
			location = req.Location
		}

		if err = s.ensureUnique(ctx, name, location, id); err != nil {
			return err
		}
	}

	fields := shared.TransformFields(req, session.Actor(ctx))

	imagePath, err := s.upload(ctx, req.Image)
	if err != nil {
		return err
	}

	if imagePath != nil {
		fields[model.FieldImagePath] = *imagePath
	}

	if err = s.repo.UpdateWithAmenities(ctx, id, fields, req.AmenityIDs); err != nil {
		log.Error().Err(err).Msg("failed to update hotel")

		s.removeImage(ctx, imagePath)

		if errors.Is(err, repository.ErrNotFound) {
			return failure.NotFound("hotel not found") // nolint:wrapcheck
		}

		return fmt.Errorf("failed to update hotel: %w", err)
	}

	if imagePath != nil {
		s.removeImage(ctx, current.ImagePath)
	}

	s.invalidate(ctx)

	return nil
}

// Delete removes the hotel with its categories, rooms, their bookings and amenity links. The image is
// removed afterwards and a failure there is only logged.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	current, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel")

		return fmt.Errorf("failed to get hotel: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("hotel not found") // nolint:wrapcheck
	}

	if err = s.repo.DeleteCascade(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return failure.NotFound("hotel not found") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to delete hotel")

		return fmt.Errorf("failed to delete hotel: %w", err)
	}

	s.removeImage(ctx, current.ImagePath)

	s.invalidate(ctx, categoryModel.CachePrefix, roomModel.CachePrefix, bookingModel.CachePrefix, reportModel.CachePrefix)

	return nil
}

// ensureUnique rejects a (name, location) pair already used by another hotel.
func (s *serviceImpl) ensureUnique(ctx context.Context, name, location, exceptID string) error {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    "LOWER(hotels.name)",
				Operator: gDto.FilterOperatorEq,
				Value:    strings.ToLower(strings.TrimSpace(name)),
				ArgName:  model.FieldName,
			},
			gDto.Filter{
				Field:    "LOWER(hotels.location)",
				Operator: gDto.FilterOperatorEq,
				Value:    strings.ToLower(strings.TrimSpace(location)),
				ArgName:  model.FieldLocation,
			},
		},
	}

	if exceptID != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldID,
			Operator: gDto.FilterOperatorNotEq,
			Value:    exceptID,
			Table:    model.TableName,
		})
	}

	exists, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if hotel exists")

		return fmt.Errorf("failed to check if hotel exists: %w", err)
	}

	if exists {
		return failure.DuplicateEntry("a hotel with this name already exists at this location") // nolint:wrapcheck
	}

	return nil
}

// upload stores a data URL image and returns its public path, or nil when no image was sent.
func (s *serviceImpl) upload(ctx context.Context, dataURL string) (*string, error) {
	if dataURL == constant.Empty {
		return nil, nil
	}

	image, err := base64.DecodeImage(dataURL)
	if err != nil {
		return nil, failure.InvalidInput(err.Error()) // nolint:wrapcheck
	}

	url, err := s.storage.Put(ctx, model.ImageDirectory, uuid.NewString()+"."+image.Extension, image.ContentType, image.Data)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload hotel image")

		return nil, fmt.Errorf("failed to upload hotel image: %w", err)
	}

	return &url, nil
}

func (s *serviceImpl) removeImage(ctx context.Context, imagePath *string) {
	if imagePath == nil || *imagePath == constant.Empty {
		return
	}

	if err := s.storage.Remove(ctx, *imagePath); err != nil {
		log.Warn().Err(err).Str("image", *imagePath).Msg("failed to remove hotel image")
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, prefixes ...string) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, model.CachePrefix)
		shared.InvalidateCaches(c, s.cache, amenityModel.CachePrefix)

		for _, prefix := range prefixes {
			shared.InvalidateCaches(c, s.cache, prefix)
		}
	}()
}
