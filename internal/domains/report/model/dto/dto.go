package dto

import (
	"hotelbook/internal/domains/report/model"
	"hotelbook/shared"
	"hotelbook/shared/constant"
	"hotelbook/shared/timezone"
	"math"
	"strconv"
	"time"
)

type DashboardResponse struct {
	TotalBookings int     `json:"total_bookings"`
	TotalRevenue  float64 `json:"total_revenue"`
	ActiveUsers   int     `json:"active_users"`
	HotelsListed  int     `json:"hotels_listed"`
}

func (r *DashboardResponse) FromModel(stats model.DashboardStats) {
	r.TotalBookings = stats.TotalBookings
	r.TotalRevenue = stats.TotalRevenue
	r.ActiveUsers = stats.ActiveUsers
	r.HotelsListed = stats.HotelsListed
}

type SeriesPoint struct {
	Month    string  `json:"month"`
	Label    string  `json:"label"`
	Revenue  float64 `json:"revenue"`
	Bookings int     `json:"bookings"`
}

type SeriesResponse struct {
	Points []SeriesPoint `json:"points"`
}

// FromModels lays the aggregated rows over months, leaving months without bookings at zero.
func (r *SeriesResponse) FromModels(months []time.Time, rows []model.MonthlyPoint) {
	byMonth := make(map[string]model.MonthlyPoint, len(rows))
	for _, row := range rows {
		byMonth[row.Month] = row
	}

	r.Points = make([]SeriesPoint, len(months))
	for i, month := range months {
		key := month.Format(constant.MonthKeyFormat)
		row := byMonth[key]

		r.Points[i] = SeriesPoint{
			Month:    key,
			Label:    month.Format(constant.MonthFormat),
			Revenue:  row.Revenue,
			Bookings: row.Bookings,
		}
	}
}

// Table is a rendered report. Every cell is already formatted, numbers without currency symbols.
type Table struct {
	Kind    string     `json:"kind"`
	From    string     `json:"from"`
	To      string     `json:"to"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

func NewTable(kind string, from, to time.Time, columns ...string) Table {
	return Table{
		Kind:    kind,
		From:    from.Format(constant.DateOnlyFormat),
		To:      to.Format(constant.DateOnlyFormat),
		Columns: columns,
		Rows:    [][]string{},
	}
}

func (t *Table) Append(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

func Money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func Count(v int) string {
	return strconv.Itoa(v)
}

// MonthLabel turns a YYYY-MM key into "Jan 2006". Unparseable keys are returned untouched.
func MonthLabel(key string) string {
	month, err := time.Parse(constant.MonthKeyFormat, key)
	if err != nil {
		return key
	}

	return month.Format(constant.MonthFormat)
}

// ParsePeriod reads an inclusive YYYY-MM-DD range. An empty from starts the trailing window of
// months ending now, an empty to means today.
func ParsePeriod(from, to string, now time.Time, trailingMonths int) (start, end time.Time, err error) {
	if trailingMonths <= 0 {
		trailingMonths = model.DefaultTrailingMonths
	}

	start = timezone.TrailingMonths(now, trailingMonths)[0]
	end = now

	if from != "" {
		if start, err = timezone.Parse(constant.DateOnlyFormat, from); err != nil {
			return start, end, err //nolint:wrapcheck
		}
	}

	if to != "" {
		if end, err = timezone.Parse(constant.DateOnlyFormat, to); err != nil {
			return start, end, err //nolint:wrapcheck
		}
	}

	return start, end, nil
}

type SnapshotResponse struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	GeneratedBy string `json:"generated_by"`
	GeneratedAt string `json:"generated_at"`
	PeriodFrom  string `json:"period_from"`
	PeriodTo    string `json:"period_to"`
}

func (r *SnapshotResponse) FromModel(snapshot model.Snapshot) {
	r.ID = snapshot.ID
	r.Kind = snapshot.Kind
	r.GeneratedBy = snapshot.GeneratedBy
	r.GeneratedAt = timezone.Format(snapshot.GeneratedAt, constant.DateFormat)
	r.PeriodFrom = snapshot.PeriodFrom.Format(constant.DateOnlyFormat)
	r.PeriodTo = snapshot.PeriodTo.Format(constant.DateOnlyFormat)
}

type GetSnapshotsResponse struct {
	Snapshots []SnapshotResponse `json:"snapshots"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetSnapshotsResponse) FromModels(models []model.Snapshot, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Snapshots = make([]SnapshotResponse, len(models))
	for i, mod := range models {
		r.Snapshots[i].FromModel(mod)
	}
}

type RatingCount struct {
	Rating int `json:"rating"`
	Count  int `json:"count"`
}

type ReviewSummaryResponse struct {
	Average float64       `json:"average"`
	Total   int           `json:"total"`
	Ratings []RatingCount `json:"ratings"`
}

// FromModels reports every rating from 1 to 5, with the average rounded to two decimals.
func (r *ReviewSummaryResponse) FromModels(rows []model.RatingCount) {
	counts := make(map[int]int, len(rows))
	sum := 0

	for _, row := range rows {
		counts[row.Rating] += row.Count
		r.Total += row.Count
		sum += row.Rating * row.Count
	}

	r.Ratings = make([]RatingCount, 0, model.MaxRating)
	for rating := model.MinRating; rating <= model.MaxRating; rating++ {
		r.Ratings = append(r.Ratings, RatingCount{Rating: rating, Count: counts[rating]})
	}

	if r.Total > 0 {
		r.Average = math.Round(float64(sum)/float64(r.Total)*100) / 100
	}
}
