package model

import "time"

const (
	TableName   = "reports"
	EntityName  = "report"
	CachePrefix = "report:"

	FieldID          = "id"
	FieldKind        = "kind"
	FieldGeneratedBy = "generated_by"
	FieldGeneratedAt = "generated_at"

	DefaultTrailingMonths = 6
	MinRating             = 1
	MaxRating             = 5
)

const (
	KindRevenue  = "revenue"
	KindBookings = "bookings"
	KindHotels   = "hotels"
)

// Kinds lists the report kinds in the order the back office offers them.
var Kinds = []string{KindRevenue, KindBookings, KindHotels}

type DashboardStats struct {
	TotalBookings int     `db:"total_bookings"`
	TotalRevenue  float64 `db:"total_revenue"`
	ActiveUsers   int     `db:"active_users"`
	HotelsListed  int     `db:"hotels_listed"`
}

// MonthlyPoint is one calendar month of booking activity keyed as YYYY-MM.
type MonthlyPoint struct {
	Month    string  `db:"month"`
	Revenue  float64 `db:"revenue"`
	Bookings int     `db:"bookings"`
}

type BookingStats struct {
	Month     string `db:"month"`
	Total     int    `db:"total"`
	Confirmed int    `db:"confirmed"`
	Pending   int    `db:"pending"`
	Cancelled int    `db:"cancelled"`
}

type HotelPerformance struct {
	HotelName     string  `db:"hotel_name"`
	Location      string  `db:"location"`
	TotalBookings int     `db:"total_bookings"`
	Revenue       float64 `db:"revenue"`
	Confirmed     int     `db:"confirmed"`
	Pending       int     `db:"pending"`
	Cancelled     int     `db:"cancelled"`
}

type RatingCount struct {
	Rating int `db:"rating"`
	Count  int `db:"count"`
}

// Snapshot records that a report was generated, by whom and for which period.
type Snapshot struct {
	ID          string    `db:"id"`
	Kind        string    `db:"kind"`
	GeneratedBy string    `db:"generated_by"`
	GeneratedAt time.Time `db:"generated_at"`
	PeriodFrom  time.Time `db:"period_from"`
	PeriodTo    time.Time `db:"period_to"`
}
