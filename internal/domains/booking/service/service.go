package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"errors"
	"fmt"
	"hotelbook/config"
	"hotelbook/infras/otel"
	"hotelbook/internal/domains/booking/model"
	"hotelbook/internal/domains/booking/model/dto"
	"hotelbook/internal/domains/booking/repository"
	reportModel "hotelbook/internal/domains/report/model"
	roomModel "hotelbook/internal/domains/room/model"
	roomRepo "hotelbook/internal/domains/room/repository"
	userModel "hotelbook/internal/domains/user/model"
	"hotelbook/shared"
	"hotelbook/shared/cache"
	"hotelbook/shared/constant"
	gDto "hotelbook/shared/dto"
	"hotelbook/shared/failure"
	"hotelbook/shared/publisher"
	"hotelbook/shared/session"
	"hotelbook/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = model.CachePrefix + "get"
	cacheGetAllBooking = model.CachePrefix + "gets"
	cacheCountBooking  = model.CachePrefix + "count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	AdminCreate(ctx context.Context, req dto.AdminCreateBookingRequest) (dto.BookingResponse, error)
	Confirm(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	MyBookings(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Reconcile(ctx context.Context) (int64, error)
}

type serviceImpl struct {
	repo      repository.Booking
	roomRepo  roomRepo.Room
	publisher publisher.Publisher
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Booking, roomRepo roomRepo.Room, publisher publisher.Publisher, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:      repo,
		roomRepo:  roomRepo,
		publisher: publisher,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

// Create books a room for the signed-in customer.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	sess := session.FromContext(ctx)
	if !sess.IsUser() {
		return res, failure.Unauthorized("please log in to book a room") // nolint:wrapcheck
	}

	return s.create(ctx, sess.IdentityID, req, statusOrDefault(s.cfg.Booking.ConsumerStatus, model.StatusConfirmed))
}

func (s *serviceImpl) AdminCreate(ctx context.Context, req dto.AdminCreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AdminCreate")
	defer scope.End()
	defer scope.TraceIfError(err)

	status := statusOrDefault(s.cfg.Booking.AdminStatus, model.StatusPending)
	if req.Status != "" {
		status = req.Status
	}

	return s.create(ctx, req.UserID, req.CreateBookingRequest, status)
}

func (s *serviceImpl) create(ctx context.Context, userID string, req dto.CreateBookingRequest, status string) (res dto.BookingResponse, err error) {
	checkIn, checkOut, err := req.Stay()
	if err != nil {
		return res, failure.InvalidInput("dates must use the YYYY-MM-DD format") // nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return res, failure.InvalidDateRange("check-out date must be after check-in date") // nolint:wrapcheck
	}

	if req.Guests < 1 {
		return res, failure.InvalidInput("at least one guest is required") // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	if room.Capacity > 0 && req.Guests > room.Capacity {
		return res, failure.InvalidInput(fmt.Sprintf("this room holds at most %d guests", room.Capacity)) // nolint:wrapcheck
	}

	totalCost := float64(timezone.Nights(checkIn, checkOut)) * room.BasePrice
	booking := req.ToModel(session.Actor(ctx), userID, status, checkIn, checkOut, totalCost)

	if err = s.repo.CreateWithHold(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrRoomUnavailable) {
			return res, failure.RoomUnavailable("room is not available") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.publish(ctx, model.TopicCreated, booking)
	s.invalidate(ctx)

	booking.RoomNumber = room.RoomNumber
	booking.CategoryName = room.CategoryName
	booking.HotelID = room.HotelID
	booking.HotelName = room.HotelName

	res.FromModel(booking)

	return res, nil
}

// Confirm is a no-op for a booking that is already Confirmed.
func (s *serviceImpl) Confirm(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.load(ctx, id)
	if err != nil {
		return err
	}

	changed, err := s.repo.Confirm(ctx, id, session.Actor(ctx))
	if err != nil {
		return s.mapTransitionError(err, "confirm")
	}

	if changed {
		booking.Status = model.StatusConfirmed
		s.publish(ctx, model.TopicConfirmed, booking)
		s.invalidate(ctx)
	}

	return nil
}

// Cancel frees the room of an active booking. Customers may only cancel their own bookings and a
// second cancel succeeds without touching availability.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.load(ctx, id)
	if err != nil {
		return err
	}

	if sess := session.FromContext(ctx); !sess.IsAdmin() && (sess == nil || booking.UserID != sess.IdentityID) {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	changed, err := s.repo.Cancel(ctx, id, session.Actor(ctx))
	if err != nil {
		return s.mapTransitionError(err, "cancel")
	}

	if changed {
		booking.Status = model.StatusCancelled
		s.publish(ctx, model.TopicCancelled, booking)
		s.invalidate(ctx)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.load(ctx, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		return s.mapTransitionError(err, "delete")
	}

	s.publish(ctx, model.TopicDeleted, booking)
	s.invalidate(ctx)

	return nil
}

// Get hides other customers' bookings behind NotFound.
func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")
	} else {
		booking, loadErr := s.load(ctx, id)
		if loadErr != nil {
			return res, loadErr
		}

		res.FromModel(booking)

		go func() {
			c := context.WithoutCancel(ctx)

			if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
				log.Error().Err(err).Msg("failed to save booking to cache")
			}
		}()
	}

	if sess := session.FromContext(ctx); !sess.IsAdmin() && (sess == nil || res.UserID != sess.IdentityID) {
		return dto.BookingResponse{}, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	req.Qualify(model.TableName, model.FieldCheckInDate, model.FieldCheckOutDate, model.FieldTotalCost, model.FieldStatus, constant.FieldCreatedAt)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

// MyBookings lists only the signed-in customer's bookings.
func (s *serviceImpl) MyBookings(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MyBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	sess := session.FromContext(ctx)
	if !sess.IsUser() {
		return res, failure.Unauthorized("please log in to see your bookings") // nolint:wrapcheck
	}

	return s.GetAll(ctx, req, ownedBy(filter, sess.IdentityID))
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

// Reconcile repairs room availability that drifted from the active bookings.
func (s *serviceImpl) Reconcile(ctx context.Context) (fixed int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reconcile")
	defer scope.End()
	defer scope.TraceIfError(err)

	fixed, err = s.repo.Reconcile(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to reconcile room availability")

		return 0, fmt.Errorf("failed to reconcile room availability: %w", err)
	}

	if fixed > 0 {
		log.Warn().Int64("rooms", fixed).Msg("room availability drift repaired")
		s.invalidate(ctx)
	}

	return fixed, nil
}

func (s *serviceImpl) load(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) mapTransitionError(err error, action string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return failure.NotFound("booking not found") // nolint:wrapcheck
	case errors.Is(err, repository.ErrInvalidTransition):
		return failure.InvalidState("cannot " + action + " a booking in its current status") // nolint:wrapcheck
	}

	log.Error().Err(err).Str("action", action).Msg("failed to change booking")

	return fmt.Errorf("failed to %s booking: %w", action, err)
}

// publish runs after the transaction committed, so a broker failure never undoes the booking.
func (s *serviceImpl) publish(ctx context.Context, topic string, booking model.Booking) {
	if err := s.publisher.Publish(ctx, topic, booking.ID, model.NewEvent(booking, timezone.Now())); err != nil {
		log.Error().Err(err).Str("topic", topic).Str("booking", booking.ID).Msg("failed to publish booking event")
	}
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		for _, prefix := range []string{model.CachePrefix, roomModel.CachePrefix, reportModel.CachePrefix, userModel.CachePrefix} {
			shared.InvalidateCaches(c, s.cache, prefix)
		}
	}()
}

func ownedBy(filter gDto.FilterGroup, userID string) gDto.FilterGroup {
	owner := gDto.Filter{
		Field:    model.FieldUserID,
		Operator: gDto.FilterOperatorEq,
		Value:    userID,
		Table:    model.TableName,
	}

	if len(filter.Filters) == 0 {
		return gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: []any{owner}}
	}

	return gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: []any{filter, owner}}
}

func statusOrDefault(status, fallback string) string {
	if status == model.StatusPending || status == model.StatusConfirmed {
		return status
	}

	return fallback
}
