package model

import "hotelbook/shared/model"

const (
	TableName   = "amenities"
	EntityName  = "amenity"
	CachePrefix = "amenity:"

	FieldID   = "id"
	FieldName = "name"
	FieldIcon = "icon"

	JoinTableName = "hotel_amenities"
	FieldHotelID  = "hotel_id"
	FieldAmenity  = "amenity_id"
)

type Amenity struct {
	ID   string  `db:"id"`
	Name string  `db:"name"`
	Icon *string `db:"icon"`
	model.Metadata
}
