package model

import "hotelbook/shared/model"

const (
	TableName   = "room_categories"
	EntityName  = "room_category"
	CachePrefix = "roomcategory:"

	FieldID           = "id"
	FieldHotelID      = "hotel_id"
	FieldCategoryName = "category_name"
	FieldDescription  = "description"
	FieldBasePrice    = "base_price"
	FieldCapacity     = "capacity"
)

type RoomCategory struct {
	ID           string  `db:"id"`
	HotelID      string  `db:"hotel_id"`
	CategoryName string  `db:"category_name"`
	Description  *string `db:"description"`
	BasePrice    float64 `db:"base_price"`
	Capacity     int     `db:"capacity"`
	model.Metadata
}
