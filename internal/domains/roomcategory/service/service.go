package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=RoomCategory=MockRoomCategoryService

import (
	"context"
	"errors"
	"fmt"
	"hotelbook/config"
	"hotelbook/infras/otel"
	bookingModel "hotelbook/internal/domains/booking/model"
	hotelModel "hotelbook/internal/domains/hotel/model"
	hotelRepo "hotelbook/internal/domains/hotel/repository"
	reportModel "hotelbook/internal/domains/report/model"
	roomModel "hotelbook/internal/domains/room/model"
	"hotelbook/internal/domains/roomcategory/model"
	"hotelbook/internal/domains/roomcategory/model/dto"
	"hotelbook/internal/domains/roomcategory/repository"
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
	cacheGetCategory    = model.CachePrefix + "get"
	cacheGetAllCategory = model.CachePrefix + "gets"
)

type RoomCategory interface {
	Create(ctx context.Context, hotelID string, req dto.CreateCategoryRequest) (dto.CategoryResponse, error)
	GetByHotel(ctx context.Context, hotelID string, req gDto.QueryParams) (dto.GetCategoriesResponse, error)
	Get(ctx context.Context, id string) (dto.CategoryResponse, error)
	Update(ctx context.Context, req dto.UpdateCategoryRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.RoomCategory
	hotelRepo hotelRepo.Hotel
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.RoomCategory, hotelRepo hotelRepo.Hotel, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) RoomCategory {
	return &serviceImpl{
		repo:      repo,
		hotelRepo: hotelRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, hotelID string, req dto.CreateCategoryRequest) (res dto.CategoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.hotelRepo.Exist(ctx, shared.FilterByID(hotelID, hotelModel.FieldID, hotelModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if hotel exists")

		return res, fmt.Errorf("failed to check if hotel exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("hotel not found") // nolint:wrapcheck
	}

	if err = s.ensureUnique(ctx, hotelID, req.CategoryName, constant.Empty); err != nil {
		return res, err
	}

	category := req.ToModel(session.Actor(ctx), hotelID)

	if err = s.repo.Insert(ctx, category); err != nil {
		log.Error().Err(err).Msg("failed to create room category")

		return res, fmt.Errorf("failed to create room category: %w", err)
	}

	s.invalidate(ctx)

	res.FromModel(category)

	return res, nil
}

func (s *serviceImpl) GetByHotel(ctx context.Context, hotelID string, req gDto.QueryParams) (res dto.GetCategoriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByHotel")
	defer scope.End()
	defer scope.TraceIfError(err)

	req.Qualify(model.TableName, model.FieldCategoryName, model.FieldBasePrice, model.FieldCapacity)

	filter := shared.FilterByID(hotelID, model.FieldHotelID, model.TableName)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCategory, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room categories")

		return res, nil
	}

	summary, err := s.hotelRepo.GetSummary(ctx, hotelID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel")

		return res, fmt.Errorf("failed to get hotel: %w", err)
	}

	if summary.ID == constant.Empty {
		return res, failure.NotFound("hotel not found") // nolint:wrapcheck
	}

	categories, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room categories")

		return res, fmt.Errorf("failed to get room categories: %w", err)
	}

	res.FromModels(categories, summary.CategoryCount, req.Limit)
	res.MinPrice = summary.MinPrice
	res.MaxPrice = summary.MaxPrice

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room categories to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CategoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetCategory, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	category, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room category")

		return res, fmt.Errorf("failed to get room category: %w", err)
	}

	if category.ID == constant.Empty {
		return res, failure.NotFound("room category not found") // nolint:wrapcheck
	}

	res.FromModel(category)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room category to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCategoryRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateCategoryRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room category")

		return fmt.Errorf("failed to get room category: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("room category not found") // nolint:wrapcheck
	}

	if req.CategoryName != constant.Empty {
		if err = s.ensureUnique(ctx, current.HotelID, req.CategoryName, id); err != nil {
			return err
		}
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, session.Actor(ctx)), filter); err != nil {
		log.Error().Err(err).Msg("failed to update room category")

		return fmt.Errorf("failed to update room category: %w", err)
	}

	s.invalidate(ctx, roomModel.CachePrefix)

	return nil
}

// Delete removes the category with its rooms and their bookings.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.DeleteCascade(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return failure.NotFound("room category not found") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to delete room category")

		return fmt.Errorf("failed to delete room category: %w", err)
	}

	s.invalidate(ctx, roomModel.CachePrefix, bookingModel.CachePrefix, reportModel.CachePrefix)

	return nil
}

func (s *serviceImpl) ensureUnique(ctx context.Context, hotelID, name, exceptID string) error {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldHotelID, Operator: gDto.FilterOperatorEq, Value: hotelID, Table: model.TableName},
			gDto.Filter{
				Field:    "LOWER(room_categories.category_name)",
				Operator: gDto.FilterOperatorEq,
				Value:    strings.ToLower(strings.TrimSpace(name)),
				ArgName:  model.FieldCategoryName,
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
		log.Error().Err(err).Msg("failed to check if room category exists")

		return fmt.Errorf("failed to check if room category exists: %w", err)
	}

	if exists {
		return failure.DuplicateEntry("room category already exists for this hotel") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, prefixes ...string) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, model.CachePrefix)
		shared.InvalidateCaches(c, s.cache, hotelModel.CachePrefix)

		for _, prefix := range prefixes {
			shared.InvalidateCaches(c, s.cache, prefix)
		}
	}()
}
