package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Amenity=MockAmenityService

import (
	"context"
	"fmt"
	"hotelbook/config"
	"hotelbook/infras/otel"
	"hotelbook/internal/domains/amenity/model"
	"hotelbook/internal/domains/amenity/model/dto"
	"hotelbook/internal/domains/amenity/repository"
	hotelModel "hotelbook/internal/domains/hotel/model"
	"hotelbook/shared"
	"hotelbook/shared/cache"
	"hotelbook/shared/constant"
	gDto "hotelbook/shared/dto"
	"hotelbook/shared/failure"
	"hotelbook/shared/session"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllAmenity = model.CachePrefix + "gets"
	cacheHotelAmenity  = model.CachePrefix + "hotel"
)

type Amenity interface {
	Create(ctx context.Context, req dto.CreateAmenityRequest) (dto.AmenityResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams) (dto.GetAmenitiesResponse, error)
	GetByHotel(ctx context.Context, hotelID string) ([]dto.AmenityResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Amenity
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Amenity, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Amenity {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAmenityRequest) (res dto.AmenityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.repo.Exist(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    "LOWER(" + model.TableName + "." + model.FieldName + ")",
				Operator: gDto.FilterOperatorEq,
				Value:    strings.ToLower(strings.TrimSpace(req.Name)),
				ArgName:  model.FieldName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check if amenity exists")

		return res, fmt.Errorf("failed to check if amenity exists: %w", err)
	}

	if exists {
		return res, failure.DuplicateEntry("amenity already exists") // nolint:wrapcheck
	}

	amenity := req.ToModel(session.Actor(ctx))

	if err = s.repo.Insert(ctx, amenity); err != nil {
		log.Error().Err(err).Msg("failed to create amenity")

		return res, fmt.Errorf("failed to create amenity: %w", err)
	}

	s.invalidate(ctx)

	res.FromModel(amenity)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams) (res dto.GetAmenitiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	req.Qualify(model.TableName, model.FieldName)

	filter := gDto.FilterGroup{}
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllAmenity, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for amenities")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count amenities")

		return res, fmt.Errorf("failed to count amenities: %w", err)
	}

	amenities, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get amenities")

		return res, fmt.Errorf("failed to get amenities: %w", err)
	}

	res.FromModels(amenities, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save amenities to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetByHotel(ctx context.Context, hotelID string) (res []dto.AmenityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByHotel")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheHotelAmenity, hotelID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	amenities, err := s.repo.GetByHotel(ctx, hotelID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel amenities")

		return nil, fmt.Errorf("failed to get hotel amenities: %w", err)
	}

	res = dto.FromModels(amenities)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotel amenities to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if amenity exists")

		return fmt.Errorf("failed to check if amenity exists: %w", err)
	}

	if !exist {
		return failure.NotFound("amenity not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete amenity")

		return fmt.Errorf("failed to delete amenity: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, model.CachePrefix)
		shared.InvalidateCaches(c, s.cache, hotelModel.CachePrefix)
	}()
}
