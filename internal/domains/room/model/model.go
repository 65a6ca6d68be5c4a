package model

import "hotelbook/shared/model"

const (
	TableName   = "rooms"
	EntityName  = "room"
	CachePrefix = "room:"

	FieldID                 = "id"
	FieldCategoryID         = "category_id"
	FieldRoomNumber         = "room_number"
	FieldAvailabilityStatus = "availability_status"
	FieldHotelID            = "hotel_id"

	CategoryTableName = "room_categories"
	HotelTableName    = "hotels"
)

const (
	StatusAvailable = "Available"
	StatusBooked    = "Booked"
)

// Room is a bookable instance of a room category. The joined fields are read-only and come from the
// category and its hotel, so the room type shown to guests is always the category name.
type Room struct {
	ID                 string  `db:"id"`
	CategoryID         string  `db:"category_id"`
	RoomNumber         string  `db:"room_number"`
	AvailabilityStatus string  `db:"availability_status"`
	CategoryName       string  `db:"category_name" table:"room_categories"`
	BasePrice          float64 `db:"base_price"    table:"room_categories"`
	Capacity           int     `db:"capacity"      table:"room_categories"`
	HotelID            string  `db:"hotel_id"      table:"room_categories"`
	HotelName          string  `column:"name"      db:"hotel_name"         table:"hotels"`
	model.Metadata
}

func (Room) GetJoinQuery() string {
	return `JOIN room_categories ON room_categories.id = rooms.category_id
	JOIN hotels ON hotels.id = room_categories.hotel_id`
}
