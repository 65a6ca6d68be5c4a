package dto

import (
	"hotelbook/internal/domains/roomcategory/model"
	"hotelbook/shared"
	gDto "hotelbook/shared/dto"
	gModel "hotelbook/shared/model"
	"hotelbook/shared/timezone"
	"strings"

	"github.com/google/uuid"
)

type CreateCategoryRequest struct {
	CategoryName string  `json:"category_name" validate:"required,max=100"`
	Description  string  `json:"description"   validate:"omitempty,max=2000"`
	BasePrice    float64 `json:"base_price"    validate:"required,gt=0"`
	Capacity     int     `json:"capacity"      validate:"required,gt=0"`
}

func (r *CreateCategoryRequest) ToModel(actor, hotelID string) model.RoomCategory {
	category := model.RoomCategory{
		ID:           uuid.NewString(),
		HotelID:      hotelID,
		CategoryName: strings.TrimSpace(r.CategoryName),
		BasePrice:    r.BasePrice,
		Capacity:     r.Capacity,
		Metadata:     gModel.NewMetadata(actor, timezone.Now()),
	}

	if description := strings.TrimSpace(r.Description); description != "" {
		category.Description = &description
	}

	return category
}

type UpdateCategoryRequest struct {
	CategoryName string  `db:"category_name" json:"category_name" validate:"omitempty,max=100"`
	Description  string  `db:"description"   json:"description"   validate:"omitempty,max=2000"`
	BasePrice    float64 `db:"base_price"    json:"base_price"    validate:"omitempty,gt=0"`
	Capacity     int     `db:"capacity"      json:"capacity"      validate:"omitempty,gt=0"`
}

type CategoryResponse struct {
	ID           string  `json:"id"`
	HotelID      string  `json:"hotel_id"`
	CategoryName string  `json:"category_name"`
	Description  *string `json:"description,omitempty"`
	BasePrice    float64 `json:"base_price"`
	Capacity     int     `json:"capacity"`
	gDto.Metadata
}

func (r *CategoryResponse) FromModel(category model.RoomCategory) {
	r.ID = category.ID
	r.HotelID = category.HotelID
	r.CategoryName = category.CategoryName
	r.Description = category.Description
	r.BasePrice = category.BasePrice
	r.Capacity = category.Capacity
	r.Metadata.FromModel(category.Metadata)
}

// GetCategoriesResponse lists one hotel's categories with the price range over all of them.
type GetCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
	MinPrice   *float64           `json:"min_price,omitempty"`
	MaxPrice   *float64           `json:"max_price,omitempty"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetCategoriesResponse) FromModels(models []model.RoomCategory, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Categories = make([]CategoryResponse, len(models))
	for i, mod := range models {
		r.Categories[i].FromModel(mod)
	}
}
