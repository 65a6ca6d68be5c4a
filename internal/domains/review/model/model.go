package model

import (
	"hotelbook/shared/model"
	"time"
)

const (
	TableName   = "reviews"
	EntityName  = "review"
	CachePrefix = "review:"

	FieldID         = "id"
	FieldUserID     = "user_id"
	FieldRating     = "rating"
	FieldComments   = "comments"
	FieldReviewDate = "review_date"

	MinRating = 1
	MaxRating = 5
)

// Review keeps its row when the author is deleted, so the user columns are nullable.
type Review struct {
	ID            string    `db:"id"`
	UserID        *string   `db:"user_id"`
	Rating        int       `db:"rating"`
	Comments      *string   `db:"comments"`
	ReviewDate    time.Time `db:"review_date"`
	UserFirstName *string   `column:"first_name" db:"user_first_name" table:"users"`
	UserLastName  *string   `column:"last_name"  db:"user_last_name"  table:"users"`
	model.Metadata
}

func (Review) GetJoinQuery() string {
	return `LEFT JOIN users ON users.id = reviews.user_id`
}
