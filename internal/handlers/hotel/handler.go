package hotel

import (
	"hotelbook/infras/otel"
	"hotelbook/internal/domains/hotel/model/dto"
	"hotelbook/internal/domains/hotel/service"
	categoryDto "hotelbook/internal/domains/roomcategory/model/dto"
	categoryService "hotelbook/internal/domains/roomcategory/service"
	"hotelbook/shared/constant"
	gDto "hotelbook/shared/dto"
	"hotelbook/shared/validator"
	"hotelbook/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service         service.Hotel
	categoryService categoryService.RoomCategory
	otel            otel.Otel
}

func New(service service.Hotel, categoryService categoryService.RoomCategory, otel otel.Otel) Handler {
	return Handler{
		service:         service,
		categoryService: categoryService,
		otel:            otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/hotels", handler.GetHotels)
	router.Get("/hotels/{id}", handler.GetHotelByID)
	router.Get("/hotels/{id}/categories", handler.GetCategories)
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Post("/hotels", handler.CreateHotel)
	router.Get("/hotels", handler.GetHotels)
	router.Get("/hotels/{id}", handler.GetHotelByID)
	router.Patch("/hotels/{id}", handler.UpdateHotel)
	router.Delete("/hotels/{id}", handler.DeleteHotel)

	router.Get("/hotels/{id}/categories", handler.GetCategories)
	router.Post("/hotels/{id}/categories", handler.CreateCategory)
	router.Get("/categories/{id}", handler.GetCategoryByID)
	router.Patch("/categories/{id}", handler.UpdateCategory)
	router.Delete("/categories/{id}", handler.DeleteCategory)
}

// CreateHotel handles the creation of a new hotel.
// @Summary Create a new hotel
// @Description Create a hotel with its amenity set and an optional base64 image.
// @Tags Hotel
// @Accept json
// @Produce json
// @Param request body dto.CreateHotelRequest true "Create Hotel Request"
// @Success 201 {object} response.Data[dto.HotelResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/hotels [post]
// @Security BearerAuth
func (handler *Handler) CreateHotel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateHotel")
	defer scope.End()

	req := dto.CreateHotelRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	hotel, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create hotel")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotel created successfully")

	response.WithJSON(w, http.StatusCreated, hotel)
}

// GetHotels lists hotels with their category summary.
// @Summary Get all hotels
// @Tags Hotel
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param location query string false "Location substring"
// @Param name query string false "Name substring"
// @Success 200 {object} response.Data[dto.GetHotelsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels [get]
func (handler *Handler) GetHotels(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotels")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filter := dto.HotelFilter{
		Location: r.URL.Query().Get(constant.QueryParamLocation),
		Name:     r.URL.Query().Get(constant.QueryParamName),
	}

	hotels, err := handler.service.GetAll(ctx, queryParams, filter.ToFilterGroup())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotels")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, hotels)
}

// GetHotelByID returns a hotel with its amenities and price range.
// @Summary Get a hotel by ID
// @Tags Hotel
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} response.Data[dto.HotelResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id} [get]
func (handler *Handler) GetHotelByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotelByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	hotel, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotel by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, hotel)
}

// UpdateHotel updates an existing hotel by its ID.
// @Summary Update a hotel by ID
// @Description Sending amenity_ids replaces the whole amenity set. A new image replaces the stored one.
// @Tags Hotel
// @Accept json
// @Produce json
// @Param id path string true "Hotel ID"
// @Param request body dto.UpdateHotelRequest true "Update Hotel Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/admin/hotels/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateHotel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateHotel")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateHotelRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update hotel")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotel updated successfully")

	response.WithMessage(w, http.StatusOK, "Hotel updated successfully")
}

// DeleteHotel removes a hotel with its categories, rooms and bookings.
// @Summary Delete a hotel by ID
// @Tags Hotel
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/hotels/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteHotel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteHotel")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete hotel")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotel deleted successfully")

	response.WithMessage(w, http.StatusOK, "Hotel deleted successfully")
}

// GetCategories lists the room categories of a hotel.
// @Summary Get room categories of a hotel
// @Tags Room Category
// @Produce json
// @Param id path string true "Hotel ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[categoryDto.GetCategoriesResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id}/categories [get]
func (handler *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCategories")
	defer scope.End()

	hotelID := chi.URLParam(r, constant.RequestParamID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	categories, err := handler.categoryService.GetByHotel(ctx, hotelID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room categories")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, categories)
}

// CreateCategory adds a room category to a hotel.
// @Summary Create a room category
// @Tags Room Category
// @Accept json
// @Produce json
// @Param id path string true "Hotel ID"
// @Param request body categoryDto.CreateCategoryRequest true "Create Category Request"
// @Success 201 {object} response.Data[categoryDto.CategoryResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/admin/hotels/{id}/categories [post]
// @Security BearerAuth
func (handler *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCategory")
	defer scope.End()

	hotelID := chi.URLParam(r, constant.RequestParamID)

	req := categoryDto.CreateCategoryRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	category, err := handler.categoryService.Create(ctx, hotelID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room category")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room category created successfully")

	response.WithJSON(w, http.StatusCreated, category)
}

// GetCategoryByID
// @Summary Get a room category by ID
// @Tags Room Category
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} response.Data[categoryDto.CategoryResponse]
// @Failure 404 {object} response.Error
// @Router /v1/admin/categories/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetCategoryByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCategoryByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	category, err := handler.categoryService.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room category by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, category)
}

// UpdateCategory
// @Summary Update a room category by ID
// @Tags Room Category
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body categoryDto.UpdateCategoryRequest true "Update Category Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/admin/categories/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCategory")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := categoryDto.UpdateCategoryRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.categoryService.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room category")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room category updated successfully")

	response.WithMessage(w, http.StatusOK, "Room category updated successfully")
}

// DeleteCategory removes a category with its rooms and their bookings.
// @Summary Delete a room category by ID
// @Tags Room Category
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/admin/categories/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCategory")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.categoryService.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room category")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room category deleted successfully")

	response.WithMessage(w, http.StatusOK, "Room category deleted successfully")
}
