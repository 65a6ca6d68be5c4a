package amenity

import (
	"hotelbook/infras/otel"
	"hotelbook/internal/domains/amenity/model/dto"
	"hotelbook/internal/domains/amenity/service"
	"hotelbook/shared/constant"
	gDto "hotelbook/shared/dto"
	"hotelbook/shared/validator"
	"hotelbook/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Amenity
	otel    otel.Otel
}

func New(service service.Amenity, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/amenities", handler.GetAmenities)
	router.Get("/hotels/{id}/amenities", handler.GetHotelAmenities)
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Get("/amenities", handler.GetAmenities)
	router.Post("/amenities", handler.CreateAmenity)
	router.Delete("/amenities/{id}", handler.DeleteAmenity)
}

// CreateAmenity
// @Summary Create an amenity
// @Tags Amenity
// @Accept json
// @Produce json
// @Param request body dto.CreateAmenityRequest true "Create Amenity Request"
// @Success 201 {object} response.Data[dto.AmenityResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/admin/amenities [post]
// @Security BearerAuth
func (handler *Handler) CreateAmenity(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAmenity")
	defer scope.End()

	req := dto.CreateAmenityRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	amenity, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create amenity")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, amenity)
}

// GetAmenities
// @Summary Get all amenities
// @Tags Amenity
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetAmenitiesResponse]
// @Failure 500 {object} response.Error
// @Router /v1/amenities [get]
func (handler *Handler) GetAmenities(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAmenities")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	amenities, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get amenities")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, amenities)
}

// GetHotelAmenities
// @Summary Get the amenities of a hotel
// @Tags Amenity
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} response.Data[[]dto.AmenityResponse]
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id}/amenities [get]
func (handler *Handler) GetHotelAmenities(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotelAmenities")
	defer scope.End()

	hotelID := chi.URLParam(r, constant.RequestParamID)

	amenities, err := handler.service.GetByHotel(ctx, hotelID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotel amenities")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, amenities)
}

// DeleteAmenity
// @Summary Delete an amenity by ID
// @Tags Amenity
// @Produce json
// @Param id path string true "Amenity ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/admin/amenities/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteAmenity(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAmenity")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete amenity")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Amenity deleted successfully")
}
