package dto

import (
	amenityDto "hotelbook/internal/domains/amenity/model/dto"
	"hotelbook/internal/domains/hotel/model"
	"hotelbook/shared"
	gDto "hotelbook/shared/dto"
	gModel "hotelbook/shared/model"
	"hotelbook/shared/timezone"
	"strings"

	"github.com/google/uuid"
)

// CreateHotelRequest carries an optional image as a base64 data URL.
type CreateHotelRequest struct {
	Name        string   `json:"name"        validate:"required,max=150"`
	Location    string   `json:"location"    validate:"required,max=150"`
	Description string   `json:"description" validate:"omitempty,max=2000"`
	StarRating  int      `json:"star_rating" validate:"required,gte=1,lte=5"`
	Image       string   `json:"image"       validate:"omitempty"`
	AmenityIDs  []string `json:"amenity_ids" validate:"omitempty,dive,required"`
}

func (r *CreateHotelRequest) ToModel(actor string, imagePath *string) model.Hotel {
	hotel := model.Hotel{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(r.Name),
		Location:   strings.TrimSpace(r.Location),
		StarRating: r.StarRating,
		ImagePath:  imagePath,
		Metadata:   gModel.NewMetadata(actor, timezone.Now()),
	}

	if description := strings.TrimSpace(r.Description); description != "" {
		hotel.Description = &description
	}

	return hotel
}

// UpdateHotelRequest replaces the amenity set only when AmenityIDs is present, an empty list clears it.
type UpdateHotelRequest struct {
	Name        string    `db:"name"        json:"name"        validate:"omitempty,max=150"`
	Location    string    `db:"location"    json:"location"    validate:"omitempty,max=150"`
	Description string    `db:"description" json:"description" validate:"omitempty,max=2000"`
	StarRating  int       `db:"star_rating" json:"star_rating" validate:"omitempty,gte=1,lte=5"`
	Image       string    `db:"-"           json:"image"       validate:"omitempty"`
	AmenityIDs  *[]string `db:"-"           json:"amenity_ids" validate:"omitempty,dive,required"`
}

type HotelResponse struct {
	ID            string                       `json:"id"`
	Name          string                       `json:"name"`
	Location      string                       `json:"location"`
	Description   *string                      `json:"description,omitempty"`
	StarRating    int                          `json:"star_rating"`
	ImagePath     *string                      `json:"image_path,omitempty"`
	CategoryCount int                          `json:"category_count"`
	MinPrice      *float64                     `json:"min_price,omitempty"`
	MaxPrice      *float64                     `json:"max_price,omitempty"`
	Amenities     []amenityDto.AmenityResponse `json:"amenities,omitempty"`
	gDto.Metadata
}

func (r *HotelResponse) FromModel(hotel model.Hotel) {
	r.ID = hotel.ID
	r.Name = hotel.Name
	r.Location = hotel.Location
	r.Description = hotel.Description
	r.StarRating = hotel.StarRating
	r.ImagePath = hotel.ImagePath
	r.Metadata.FromModel(hotel.Metadata)
}

func (r *HotelResponse) FromSummary(summary model.Summary) {
	r.FromModel(summary.Hotel)
	r.CategoryCount = summary.CategoryCount
	r.MinPrice = summary.MinPrice
	r.MaxPrice = summary.MaxPrice
}

type GetHotelsResponse struct {
	Hotels    []HotelResponse `json:"hotels"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetHotelsResponse) FromModels(models []model.Summary, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Hotels = make([]HotelResponse, len(models))
	for i, mod := range models {
		r.Hotels[i].FromSummary(mod)
	}
}

// HotelFilter matches location and name as case-insensitive substrings.
type HotelFilter struct {
	Location string
	Name     string
}

func (f HotelFilter) ToFilterGroup() gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: []any{}}

	if location := strings.TrimSpace(f.Location); location != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldLocation,
			Operator: gDto.FilterOperatorLike,
			Value:    location,
			Table:    model.TableName,
		})
	}

	if name := strings.TrimSpace(f.Name); name != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	return group
}
