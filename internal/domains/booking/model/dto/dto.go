package dto

import (
	"hotelbook/internal/domains/booking/model"
	"hotelbook/shared"
	"hotelbook/shared/constant"
	gDto "hotelbook/shared/dto"
	gModel "hotelbook/shared/model"
	"hotelbook/shared/timezone"
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID       string `json:"room_id"        validate:"required"`
	CheckInDate  string `json:"check_in_date"  validate:"required"`
	CheckOutDate string `json:"check_out_date" validate:"required"`
	Guests       int    `json:"guests"`
}

// Stay parses both dates in the application timezone.
func (r *CreateBookingRequest) Stay() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(constant.DateOnlyFormat, strings.TrimSpace(r.CheckInDate))
	if err != nil {
		return checkIn, checkOut, err //nolint:wrapcheck
	}

	checkOut, err = timezone.Parse(constant.DateOnlyFormat, strings.TrimSpace(r.CheckOutDate))

	return checkIn, checkOut, err //nolint:wrapcheck
}

func (r *CreateBookingRequest) ToModel(actor, userID, status string, checkIn, checkOut time.Time, totalCost float64) model.Booking {
	return model.Booking{
		ID:           uuid.NewString(),
		UserID:       userID,
		RoomID:       r.RoomID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Guests:       r.Guests,
		TotalCost:    totalCost,
		Status:       status,
		Metadata:     gModel.NewMetadata(actor, timezone.Now()),
	}
}

// AdminCreateBookingRequest books on behalf of a customer. Status falls back to the configured admin default.
type AdminCreateBookingRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Status string `json:"status"  validate:"omitempty,oneof=Pending Confirmed"`
	CreateBookingRequest
}

type BookingResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	RoomID        string  `json:"room_id"`
	CheckInDate   string  `json:"check_in_date"`
	CheckOutDate  string  `json:"check_out_date"`
	Nights        int     `json:"nights"`
	Guests        int     `json:"guests"`
	TotalCost     float64 `json:"total_cost"`
	Status        string  `json:"status"`
	RoomNumber    string  `json:"room_number"`
	RoomType      string  `json:"room_type"`
	HotelID       string  `json:"hotel_id"`
	HotelName     string  `json:"hotel_name"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.UserID = booking.UserID
	r.RoomID = booking.RoomID
	r.CheckInDate = booking.CheckInDate.Format(constant.DateOnlyFormat)
	r.CheckOutDate = booking.CheckOutDate.Format(constant.DateOnlyFormat)
	r.Nights = timezone.Nights(booking.CheckInDate, booking.CheckOutDate)
	r.Guests = booking.Guests
	r.TotalCost = booking.TotalCost
	r.Status = booking.Status
	r.RoomNumber = booking.RoomNumber
	r.RoomType = booking.CategoryName
	r.HotelID = booking.HotelID
	r.HotelName = booking.HotelName
	r.CustomerName = strings.TrimSpace(booking.CustomerFirstName + " " + booking.CustomerLastName)
	r.CustomerEmail = booking.CustomerEmail
	r.Metadata.FromModel(booking.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// BookingFilter is the listing filter shared by the admin and the customer views.
// From and To bound check_in_date inclusively.
type BookingFilter struct {
	Search string
	From   string
	To     string
	Status string
}

func (f BookingFilter) ToFilterGroup() gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: []any{}}

	if search := strings.TrimSpace(f.Search); search != "" {
		group.Filters = append(group.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{Field: "CONCAT(users.first_name, ' ', users.last_name)", Operator: gDto.FilterOperatorLike, Value: search, ArgName: "search_customer"},
				gDto.Filter{Field: "category_name", Operator: gDto.FilterOperatorLike, Value: search, Table: "room_categories", ArgName: "search_category"},
				gDto.Filter{Field: "name", Operator: gDto.FilterOperatorLike, Value: search, Table: "hotels", ArgName: "search_hotel"},
				gDto.Filter{Field: "room_number", Operator: gDto.FilterOperatorLike, Value: search, Table: "rooms", ArgName: "search_room"},
			},
		})
	}

	if f.From != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldCheckInDate,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    f.From,
			Table:    model.TableName,
			ArgName:  "check_in_from",
		})
	}

	if f.To != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldCheckInDate,
			Operator: gDto.FilterOperatorLessEq,
			Value:    f.To,
			Table:    model.TableName,
			ArgName:  "check_in_to",
		})
	}

	if f.Status != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    f.Status,
			Table:    model.TableName,
		})
	}

	return group
}
