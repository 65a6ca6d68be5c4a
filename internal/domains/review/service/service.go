package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Review=MockReviewService

import (
	"context"
	"fmt"
	"hotelbook/config"
	"hotelbook/infras/otel"
	reportModel "hotelbook/internal/domains/report/model"
	"hotelbook/internal/domains/review/model"
	"hotelbook/internal/domains/review/model/dto"
	"hotelbook/internal/domains/review/repository"
	"hotelbook/shared"
	"hotelbook/shared/cache"
	"hotelbook/shared/constant"
	gDto "hotelbook/shared/dto"
	"hotelbook/shared/failure"
	"hotelbook/shared/session"
	"hotelbook/shared/timezone"

	"github.com/rs/zerolog/log"
)

const cacheGetAllReview = model.CachePrefix + "gets"

type Review interface {
	Submit(ctx context.Context, req dto.SubmitReviewRequest) (dto.ReviewResponse, error)
	List(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReviewsResponse, error)
	MyReviews(ctx context.Context, req gDto.QueryParams) (dto.GetReviewsResponse, error)
}

type serviceImpl struct {
	repo  repository.Review
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Review, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Review {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Submit stores feedback from the signed-in customer. Reviews are never edited afterwards.
func (s *serviceImpl) Submit(ctx context.Context, req dto.SubmitReviewRequest) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	sess := session.FromContext(ctx)
	if !sess.IsUser() {
		return res, failure.Unauthorized("please log in to leave feedback") // nolint:wrapcheck
	}

	if req.Rating < model.MinRating || req.Rating > model.MaxRating {
		return res, failure.InvalidInput(fmt.Sprintf("rating must be between %d and %d", model.MinRating, model.MaxRating)) // nolint:wrapcheck
	}

	review := req.ToModel(sess.IdentityID, timezone.Now())

	if err = s.repo.Insert(ctx, review); err != nil {
		log.Error().Err(err).Msg("failed to submit review")

		return res, fmt.Errorf("failed to submit review: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, model.CachePrefix)
		shared.InvalidateCaches(c, s.cache, reportModel.CachePrefix)
	}()

	res.FromModel(review)

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReviewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.SortBy == "" {
		req.SortBy, req.SortDir = model.FieldReviewDate, gDto.SortDirDesc
	}

	req.Qualify(model.TableName, model.FieldRating, model.FieldReviewDate)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReview, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reviews")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reviews")

		return res, fmt.Errorf("failed to count reviews: %w", err)
	}

	reviews, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reviews")

		return res, fmt.Errorf("failed to get reviews: %w", err)
	}

	res.FromModels(reviews, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reviews to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) MyReviews(ctx context.Context, req gDto.QueryParams) (res dto.GetReviewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MyReviews")
	defer scope.End()
	defer scope.TraceIfError(err)

	sess := session.FromContext(ctx)
	if !sess.IsUser() {
		return res, failure.Unauthorized("please log in to see your feedback") // nolint:wrapcheck
	}

	return s.List(ctx, req, shared.FilterByID(sess.IdentityID, model.FieldUserID, model.TableName))
}
