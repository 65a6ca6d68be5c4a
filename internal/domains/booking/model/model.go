package model

import (
	"hotelbook/shared/model"
	"time"
)

const (
	TableName   = "bookings"
	EntityName  = "booking"
	CachePrefix = "booking:"

	FieldID           = "id"
	FieldUserID       = "user_id"
	FieldRoomID       = "room_id"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
	FieldGuests       = "guests"
	FieldTotalCost    = "total_cost"
	FieldStatus       = "status"
)

const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusCancelled = "Cancelled"
)

// Booking is a reservation of one room. The joined fields describe the room, its hotel and the
// customer for listings and are never written.
type Booking struct {
	ID                string    `db:"id"`
	UserID            string    `db:"user_id"`
	RoomID            string    `db:"room_id"`
	CheckInDate       time.Time `db:"check_in_date"`
	CheckOutDate      time.Time `db:"check_out_date"`
	Guests            int       `db:"guests"`
	TotalCost         float64   `db:"total_cost"`
	Status            string    `db:"status"`
	RoomNumber        string    `db:"room_number"         table:"rooms"`
	CategoryName      string    `db:"category_name"       table:"room_categories"`
	HotelID           string    `db:"hotel_id"            table:"room_categories"`
	HotelName         string    `column:"name"            db:"hotel_name"           table:"hotels"`
	CustomerFirstName string    `column:"first_name"      db:"customer_first_name"  table:"users"`
	CustomerLastName  string    `column:"last_name"       db:"customer_last_name"   table:"users"`
	CustomerEmail     string    `column:"email"           db:"customer_email"       table:"users"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return `JOIN rooms ON rooms.id = bookings.room_id
	JOIN room_categories ON room_categories.id = rooms.category_id
	JOIN hotels ON hotels.id = room_categories.hotel_id
	JOIN users ON users.id = bookings.user_id`
}

// IsActive reports whether the booking still holds its room.
func IsActive(status string) bool {
	return status == StatusPending || status == StatusConfirmed
}
