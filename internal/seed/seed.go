// Package seed fills an empty database with the default admin and a browsable sample catalog.
package seed

import (
	"context"
	"fmt"
	"hotelbook/config"
	adminModel "hotelbook/internal/domains/admin/model"
	adminRepo "hotelbook/internal/domains/admin/repository"
	amenityDto "hotelbook/internal/domains/amenity/model/dto"
	amenityRepo "hotelbook/internal/domains/amenity/repository"
	hotelDto "hotelbook/internal/domains/hotel/model/dto"
	hotelRepo "hotelbook/internal/domains/hotel/repository"
	roomDto "hotelbook/internal/domains/room/model/dto"
	roomRepo "hotelbook/internal/domains/room/repository"
	categoryDto "hotelbook/internal/domains/roomcategory/model/dto"
	categoryRepo "hotelbook/internal/domains/roomcategory/repository"
	"hotelbook/shared/constant"
	gDto "hotelbook/shared/dto"
	gModel "hotelbook/shared/model"
	"hotelbook/shared/password"
	"hotelbook/shared/timezone"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const roomsPerCategory = 2

type Seeder struct {
	cfg          *config.Config
	hasher       password.Hasher
	adminRepo    adminRepo.Admin
	amenityRepo  amenityRepo.Amenity
	hotelRepo    hotelRepo.Hotel
	categoryRepo categoryRepo.RoomCategory
	roomRepo     roomRepo.Room
}

func New(
	cfg *config.Config,
	hasher password.Hasher,
	adminRepo adminRepo.Admin,
	amenityRepo amenityRepo.Amenity,
	hotelRepo hotelRepo.Hotel,
	categoryRepo categoryRepo.RoomCategory,
	roomRepo roomRepo.Room,
) *Seeder {
	return &Seeder{
		cfg:          cfg,
		hasher:       hasher,
		adminRepo:    adminRepo,
		amenityRepo:  amenityRepo,
		hotelRepo:    hotelRepo,
		categoryRepo: categoryRepo,
		roomRepo:     roomRepo,
	}
}

// Run is idempotent: every step checks its table first and only inserts into an empty one.
func (s *Seeder) Run(ctx context.Context) error {
	if !s.cfg.Seed.Enable {
		return nil
	}

	if err := s.seedAdmin(ctx); err != nil {
		return err
	}

	if !s.cfg.Seed.SampleCatalog {
		return nil
	}

	return s.seedCatalog(ctx)
}

func (s *Seeder) seedAdmin(ctx context.Context) error {
	count, err := s.adminRepo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}

	if count > 0 {
		return nil
	}

	if s.cfg.Seed.AdminEmail == "" || s.cfg.Seed.AdminPassword == "" {
		log.Warn().Msg("No admin exists and SEED_ADMIN_EMAIL or SEED_ADMIN_PASSWORD is empty, skipping admin seed")

		return nil
	}

	digest, err := s.hasher.Hash(s.cfg.Seed.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	name := s.cfg.Seed.AdminName
	if name == "" {
		name = "Admin"
	}

	admin := adminModel.Admin{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    strings.ToLower(strings.TrimSpace(s.cfg.Seed.AdminEmail)),
		Password: digest,
		Active:   true,
		Metadata: gModel.NewMetadata(constant.ContextSystem, timezone.Now()),
	}

	if err = s.adminRepo.Insert(ctx, admin); err != nil {
		return fmt.Errorf("failed to insert default admin: %w", err)
	}

	log.Info().Str("email", admin.Email).Msg("Default admin seeded")

	return nil
}

func (s *Seeder) seedCatalog(ctx context.Context) error {
	count, err := s.hotelRepo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		return fmt.Errorf("failed to count hotels: %w", err)
	}

	if count > 0 {
		return nil
	}

	amenityIDs, err := s.seedAmenities(ctx)
	if err != nil {
		return err
	}

	for _, sample := range sampleHotels {
		req := sample.hotel
		req.AmenityIDs = pick(amenityIDs, sample.amenities)

		hotel := req.ToModel(constant.ContextSystem, nil)

		if err = s.hotelRepo.CreateWithAmenities(ctx, hotel, req.AmenityIDs); err != nil {
			return fmt.Errorf("failed to insert sample hotel %s: %w", hotel.Name, err)
		}

		for floor, categoryReq := range sample.categories {
			category := categoryReq.ToModel(constant.ContextSystem, hotel.ID)

			if err = s.categoryRepo.Insert(ctx, category); err != nil {
				return fmt.Errorf("failed to insert sample category %s: %w", category.CategoryName, err)
			}

			for number := 1; number <= roomsPerCategory; number++ {
				roomReq := roomDto.CreateRoomRequest{RoomNumber: strconv.Itoa((floor+1)*100 + number)}

				if err = s.roomRepo.Insert(ctx, roomReq.ToModel(constant.ContextSystem, category.ID)); err != nil {
					return fmt.Errorf("failed to insert sample room %s: %w", roomReq.RoomNumber, err)
				}
			}
		}
	}

	log.Info().Int("hotels", len(sampleHotels)).Msg("Sample catalog seeded")

	return nil
}

// seedAmenities returns the ids of the sample amenities in their listed order. Existing amenities are reused.
func (s *Seeder) seedAmenities(ctx context.Context) ([]string, error) {
	existing, err := s.amenityRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		return nil, fmt.Errorf("failed to list amenities: %w", err)
	}

	byName := make(map[string]string, len(existing))
	for _, amenity := range existing {
		byName[strings.ToLower(amenity.Name)] = amenity.ID
	}

	ids := make([]string, 0, len(sampleAmenities))

	for _, req := range sampleAmenities {
		if id, ok := byName[strings.ToLower(req.Name)]; ok {
			ids = append(ids, id)

			continue
		}

		amenity := req.ToModel(constant.ContextSystem)

		if err = s.amenityRepo.Insert(ctx, amenity); err != nil {
			return nil, fmt.Errorf("failed to insert sample amenity %s: %w", amenity.Name, err)
		}

		ids = append(ids, amenity.ID)
	}

	return ids, nil
}

type window struct {
	from, to int
}

func pick(ids []string, w window) []string {
	from, to := max(w.from, 0), min(w.to, len(ids))
	if from >= to {
		return nil
	}

	return ids[from:to]
}

type sampleHotel struct {
	hotel      hotelDto.CreateHotelRequest
	categories []categoryDto.CreateCategoryRequest
	amenities  window
}

var sampleAmenities = []amenityDto.CreateAmenityRequest{
	{Name: "Free WiFi", Icon: "📶"},
	{Name: "Swimming Pool", Icon: "🏊"},
	{Name: "Free Parking", Icon: "🚗"},
	{Name: "Restaurant", Icon: "🍽️"},
	{Name: "Fitness Center", Icon: "💪"},
	{Name: "Spa", Icon: "💆"},
	{Name: "Room Service", Icon: "🛎️"},
	{Name: "Air Conditioning", Icon: "❄️"},
	{Name: "Bar", Icon: "🍹"},
	{Name: "Conference Room", Icon: "👥"},
	{Name: "Pet Friendly", Icon: "🐾"},
	{Name: "Laundry", Icon: "👕"},
	{Name: "Beach Access", Icon: "🏖️"},
}

var sampleHotels = []sampleHotel{
	{
		hotel: hotelDto.CreateHotelRequest{
			Name:        "Luxury Grand Hotel",
			Location:    "New York, USA",
			Description: "Experience luxury in the heart of New York City with premium amenities and views of the skyline.",
			StarRating:  5,
		},
		categories: []categoryDto.CreateCategoryRequest{
			{CategoryName: "Standard Room", Description: "Comfortable room with city view", BasePrice: 150, Capacity: 2},
			{CategoryName: "Deluxe Room", Description: "Spacious room with premium amenities", BasePrice: 250, Capacity: 2},
			{CategoryName: "Executive Suite", Description: "Luxury suite with separate living area", BasePrice: 350, Capacity: 4},
		},
		amenities: window{0, 7},
	},
	{
		hotel: hotelDto.CreateHotelRequest{
			Name:        "Ocean View Resort",
			Location:    "Miami, USA",
			Description: "Beachfront resort with direct beach access, multiple pools and world-class dining.",
			StarRating:  4,
		},
		categories: []categoryDto.CreateCategoryRequest{
			{CategoryName: "Garden View Room", Description: "Peaceful room with garden views", BasePrice: 180, Capacity: 2},
			{CategoryName: "Ocean View Room", Description: "Beautiful room with ocean views", BasePrice: 250, Capacity: 2},
			{CategoryName: "Beach Suite", Description: "Spacious suite steps from the beach", BasePrice: 380, Capacity: 4},
		},
		amenities: window{2, 9},
	},
	{
		hotel: hotelDto.CreateHotelRequest{
			Name:        "Mountain Retreat Lodge",
			Location:    "Aspen, USA",
			Description: "Cozy lodge for winter skiing and summer hiking with mountain views.",
			StarRating:  4,
		},
		categories: []categoryDto.CreateCategoryRequest{
			{CategoryName: "Standard Cabin", Description: "Cozy cabin with mountain views", BasePrice: 120, Capacity: 2},
			{CategoryName: "Deluxe Cabin", Description: "Larger cabin with fireplace", BasePrice: 200, Capacity: 4},
			{CategoryName: "Family Lodge", Description: "Large lodge for families or groups", BasePrice: 320, Capacity: 6},
		},
		amenities: window{4, 11},
	},
	{
		hotel: hotelDto.CreateHotelRequest{
			Name:        "City Center Hotel",
			Location:    "Chicago, USA",
			Description: "Modern downtown hotel for business and leisure travelers.",
			StarRating:  3,
		},
		categories: []categoryDto.CreateCategoryRequest{
			{CategoryName: "Economy Room", Description: "Compact room for the budget traveler", BasePrice: 90, Capacity: 1},
			{CategoryName: "Business Room", Description: "Comfortable room with work desk", BasePrice: 150, Capacity: 2},
			{CategoryName: "Business Suite", Description: "Suite with separate work area", BasePrice: 240, Capacity: 2},
		},
		amenities: window{0, 5},
	},
	{
		hotel: hotelDto.CreateHotelRequest{
			Name:        "Beachfront Villa",
			Location:    "Malibu, USA",
			Description: "Exclusive villas with private access to the beach.",
			StarRating:  5,
		},
		categories: []categoryDto.CreateCategoryRequest{
			{CategoryName: "Standard Villa", Description: "Villa with partial ocean view", BasePrice: 400, Capacity: 4},
			{CategoryName: "Premium Villa", Description: "Villa with full ocean view", BasePrice: 600, Capacity: 4},
			{CategoryName: "Family Villa", Description: "Expansive villa for large groups", BasePrice: 800, Capacity: 8},
		},
		amenities: window{len(sampleAmenities) - 6, len(sampleAmenities)},
	},
}
