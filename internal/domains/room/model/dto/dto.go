package dto

import (
	"hotelbook/internal/domains/room/model"
	"hotelbook/shared"
	gDto "hotelbook/shared/dto"
	gModel "hotelbook/shared/model"
	"hotelbook/shared/timezone"
	"strings"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	RoomNumber string `json:"room_number" validate:"required,max=20"`
}

// ToModel always starts a room as Available. Availability is only changed by bookings.
func (r *CreateRoomRequest) ToModel(actor, categoryID string) model.Room {
	return model.Room{
		ID:                 uuid.NewString(),
		CategoryID:         categoryID,
		RoomNumber:         strings.TrimSpace(r.RoomNumber),
		AvailabilityStatus: model.StatusAvailable,
		Metadata:           gModel.NewMetadata(actor, timezone.Now()),
	}
}

type UpdateRoomRequest struct {
	RoomNumber string `db:"room_number" json:"room_number" validate:"required,max=20"`
}

type RoomResponse struct {
	ID                 string  `json:"id"`
	CategoryID         string  `json:"category_id"`
	RoomNumber         string  `json:"room_number"`
	AvailabilityStatus string  `json:"availability_status"`
	RoomType           string  `json:"room_type"`
	BasePrice          float64 `json:"base_price"`
	Capacity           int     `json:"capacity"`
	HotelID            string  `json:"hotel_id"`
	HotelName          string  `json:"hotel_name"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(room model.Room) {
	r.ID = room.ID
	r.CategoryID = room.CategoryID
	r.RoomNumber = room.RoomNumber
	r.AvailabilityStatus = room.AvailabilityStatus
	r.RoomType = room.CategoryName
	r.BasePrice = room.BasePrice
	r.Capacity = room.Capacity
	r.HotelID = room.HotelID
	r.HotelName = room.HotelName
	r.Metadata.FromModel(room.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

// RoomFilter narrows rooms to a category or a hotel and optionally to one availability status.
type RoomFilter struct {
	CategoryID string
	HotelID    string
	Status     string
}

func (f RoomFilter) ToFilterGroup() gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: []any{}}

	if f.CategoryID != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldCategoryID,
			Operator: gDto.FilterOperatorEq,
			Value:    f.CategoryID,
			Table:    model.TableName,
		})
	}

	if f.HotelID != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldHotelID,
			Operator: gDto.FilterOperatorEq,
			Value:    f.HotelID,
			Table:    model.CategoryTableName,
		})
	}

	if f.Status != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldAvailabilityStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    f.Status,
			Table:    model.TableName,
		})
	}

	return group
}
