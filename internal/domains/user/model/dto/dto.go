package dto

import (
	bookingModel "hotelbook/internal/domains/booking/model"
	"hotelbook/internal/domains/user/model"
	"hotelbook/shared"
	"hotelbook/shared/constant"
	gDto "hotelbook/shared/dto"
	gModel "hotelbook/shared/model"
	"hotelbook/shared/timezone"
	"strings"

	"github.com/google/uuid"
)

// RecentBookingsLimit is how many bookings the back office shows on a user's detail page.
const RecentBookingsLimit = 5

type CreateUserRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name"  validate:"omitempty,max=100"`
	Email     string `json:"email"      validate:"required,email,max=255"`
	Phone     string `json:"phone"      validate:"omitempty,max=30"`
	Address   string `json:"address"    validate:"omitempty,max=255"`
	Password  string `json:"password"   validate:"required,min=6"`
	Active    *bool  `json:"active"`
}

func (r *CreateUserRequest) ToModel(actor, hashedPassword string) model.User {
	active := true
	if r.Active != nil {
		active = *r.Active
	}

	return model.User{
		ID:        uuid.NewString(),
		FirstName: strings.TrimSpace(r.FirstName),
		LastName:  strings.TrimSpace(r.LastName),
		Email:     strings.ToLower(strings.TrimSpace(r.Email)),
		Phone:     optional(r.Phone),
		Address:   optional(r.Address),
		Password:  hashedPassword,
		Active:    active,
		Metadata:  gModel.NewMetadata(actor, timezone.Now()),
	}
}

// UpdateUserRequest is the back office edit. Password is hashed by the service and only when given.
type UpdateUserRequest struct {
	FirstName string `db:"first_name" json:"first_name" validate:"omitempty,max=100"`
	LastName  string `db:"last_name"  json:"last_name"  validate:"omitempty,max=100"`
	Email     string `db:"email"      json:"email"      validate:"omitempty,email,max=255"`
	Phone     string `db:"phone"      json:"phone"      validate:"omitempty,max=30"`
	Address   string `db:"address"    json:"address"    validate:"omitempty,max=255"`
	Password  string `db:"-"          json:"password"   validate:"omitempty,min=6"`
	Active    *bool  `db:"active"     json:"active"`
}

type UpdateProfileRequest struct {
	FirstName string `db:"first_name" json:"first_name" validate:"omitempty,max=100"`
	LastName  string `db:"last_name"  json:"last_name"  validate:"omitempty,max=100"`
	Phone     string `db:"phone"      json:"phone"      validate:"omitempty,max=30"`
	Address   string `db:"address"    json:"address"    validate:"omitempty,max=255"`
}

type UserResponse struct {
	ID        string  `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	FullName  string  `json:"full_name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
	Active    bool    `json:"active"`
	LastLogin *string `json:"last_login,omitempty"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(user model.User) {
	r.ID = user.ID
	r.FirstName = user.FirstName
	r.LastName = user.LastName
	r.FullName = user.FullName()
	r.Email = user.Email
	r.Phone = user.Phone
	r.Address = user.Address
	r.Active = user.Active

	if user.LastLogin != nil {
		lastLogin := timezone.Format(*user.LastLogin, constant.DateFormat)
		r.LastLogin = &lastLogin
	}

	r.Metadata.FromModel(user.Metadata)
}

type RecentBooking struct {
	ID           string  `json:"id"`
	HotelName    string  `json:"hotel_name"`
	CategoryName string  `json:"category_name"`
	RoomNumber   string  `json:"room_number"`
	CheckInDate  string  `json:"check_in_date"`
	CheckOutDate string  `json:"check_out_date"`
	TotalCost    float64 `json:"total_cost"`
	Status       string  `json:"status"`
}

func (r *RecentBooking) FromModel(booking bookingModel.Booking) {
	r.ID = booking.ID
	r.HotelName = booking.HotelName
	r.CategoryName = booking.CategoryName
	r.RoomNumber = booking.RoomNumber
	r.CheckInDate = booking.CheckInDate.Format(constant.DateOnlyFormat)
	r.CheckOutDate = booking.CheckOutDate.Format(constant.DateOnlyFormat)
	r.TotalCost = booking.TotalCost
	r.Status = booking.Status
}

type UserSummaryResponse struct {
	UserResponse
	BookingCount   int             `json:"booking_count"`
	TotalSpent     float64         `json:"total_spent"`
	RecentBookings []RecentBooking `json:"recent_bookings,omitempty"`
}

func (r *UserSummaryResponse) FromModel(summary model.Summary) {
	r.UserResponse.FromModel(summary.User)
	r.BookingCount = summary.BookingCount
	r.TotalSpent = summary.TotalSpent
}

func (r *UserSummaryResponse) WithRecentBookings(bookings []bookingModel.Booking) {
	r.RecentBookings = make([]RecentBooking, len(bookings))
	for i, booking := range bookings {
		r.RecentBookings[i].FromModel(booking)
	}
}

type GetUsersResponse struct {
	Users     []UserSummaryResponse `json:"users"`
	TotalPage int                   `json:"total_page"`
	TotalData int                   `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.Summary, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserSummaryResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}

// UserFilter narrows the back office user list by free text over name and email and by active flag.
type UserFilter struct {
	Search string
	Active *bool
}

func (f UserFilter) ToFilterGroup() gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: []any{}}

	if search := strings.TrimSpace(f.Search); search != "" {
		group.Filters = append(group.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{Field: "CONCAT(users.first_name, ' ', users.last_name)", Operator: gDto.FilterOperatorLike, Value: search, ArgName: "search_name"},
				gDto.Filter{Field: model.FieldEmail, Operator: gDto.FilterOperatorLike, Value: search, Table: model.TableName, ArgName: "search_email"},
			},
		})
	}

	if f.Active != nil {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *f.Active,
			Table:    model.TableName,
		})
	}

	return group
}

func optional(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	return &value
}
