package dto

import (
	"hotelbook/internal/domains/amenity/model"
	"hotelbook/shared"
	gModel "hotelbook/shared/model"
	"hotelbook/shared/timezone"
	"strings"

	"github.com/google/uuid"
)

type CreateAmenityRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	Icon string `json:"icon" validate:"omitempty,max=100"`
}

func (r *CreateAmenityRequest) ToModel(actor string) model.Amenity {
	amenity := model.Amenity{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(r.Name),
		Metadata: gModel.NewMetadata(actor, timezone.Now()),
	}

	if icon := strings.TrimSpace(r.Icon); icon != "" {
		amenity.Icon = &icon
	}

	return amenity
}

type AmenityResponse struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Icon *string `json:"icon,omitempty"`
}

func (r *AmenityResponse) FromModel(amenity model.Amenity) {
	r.ID = amenity.ID
	r.Name = amenity.Name
	r.Icon = amenity.Icon
}

func FromModels(models []model.Amenity) []AmenityResponse {
	res := make([]AmenityResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

type GetAmenitiesResponse struct {
	Amenities []AmenityResponse `json:"amenities"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetAmenitiesResponse) FromModels(models []model.Amenity, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
	r.Amenities = FromModels(models)
}
