package review

import (
	"hotelbook/infras/otel"
	"hotelbook/internal/domains/review/model/dto"
	"hotelbook/internal/domains/review/service"
	"hotelbook/shared/constant"
	gDto "hotelbook/shared/dto"
	"hotelbook/shared/validator"
	"hotelbook/transport/http/response"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Review
	otel    otel.Otel
}

func New(service service.Review, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/reviews", handler.SubmitReview)
	router.Get("/reviews/mine", handler.GetMyReviews)
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Get("/reviews", handler.GetReviews)
}

// SubmitReview records feedback from the logged in customer.
// @Summary Submit a review
// @Tags Review
// @Accept json
// @Produce json
// @Param request body dto.SubmitReviewRequest true "Submit Review Request"
// @Success 201 {object} response.Data[dto.ReviewResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/reviews [post]
// @Security BearerAuth
func (handler *Handler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitReview")
	defer scope.End()

	req := dto.SubmitReviewRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	review, err := handler.service.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit review")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Review submitted successfully")

	response.WithJSON(w, http.StatusCreated, review)
}

// GetMyReviews
// @Summary Get my reviews
// @Tags Review
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetReviewsResponse]
// @Failure 401 {object} response.Error
// @Router /v1/reviews/mine [get]
// @Security BearerAuth
func (handler *Handler) GetMyReviews(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyReviews")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	reviews, err := handler.service.MyReviews(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user reviews")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, reviews)
}

// GetReviews lists all feedback, newest first unless sorted otherwise.
// @Summary Get all reviews
// @Tags Review
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param rating query int false "Filter by rating (1-5)"
// @Success 200 {object} response.Data[dto.GetReviewsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/admin/reviews [get]
// @Security BearerAuth
func (handler *Handler) GetReviews(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReviews")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filter := dto.ReviewFilter{}
	if rating, err := strconv.Atoi(r.URL.Query().Get(constant.QueryParamRating)); err == nil {
		filter.Rating = rating
	}

	reviews, err := handler.service.List(ctx, queryParams, filter.ToFilterGroup())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reviews")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, reviews)
}
