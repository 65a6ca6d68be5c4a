package model

import "time"

const (
	TopicCreated   = "booking.created"
	TopicConfirmed = "booking.confirmed"
	TopicCancelled = "booking.cancelled"
	TopicDeleted   = "booking.deleted"
)

// Topics lists every topic a booking event is published to.
var Topics = []string{TopicCreated, TopicConfirmed, TopicCancelled, TopicDeleted}

type BookingEvent struct {
	BookingID  string    `json:"booking_id"`
	UserID     string    `json:"user_id"`
	RoomID     string    `json:"room_id"`
	Status     string    `json:"status"`
	TotalCost  float64   `json:"total_cost"`
	CheckIn    string    `json:"check_in"`
	CheckOut   string    `json:"check_out"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewEvent(booking Booking, occurredAt time.Time) BookingEvent {
	return BookingEvent{
		BookingID:  booking.ID,
		UserID:     booking.UserID,
		RoomID:     booking.RoomID,
		Status:     booking.Status,
		TotalCost:  booking.TotalCost,
		CheckIn:    booking.CheckInDate.Format(time.DateOnly),
		CheckOut:   booking.CheckOutDate.Format(time.DateOnly),
		OccurredAt: occurredAt,
	}
}
