package model

import "hotelbook/shared/model"

const (
	TableName   = "hotels"
	EntityName  = "hotel"
	CachePrefix = "hotel:"

	FieldID          = "id"
	FieldName        = "name"
	FieldLocation    = "location"
	FieldDescription = "description"
	FieldStarRating  = "star_rating"
	FieldImagePath   = "image_path"

	ImageDirectory = "hotels"
)

type Hotel struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Location    string  `db:"location"`
	Description *string `db:"description"`
	StarRating  int     `db:"star_rating"`
	ImagePath   *string `db:"image_path"`
	model.Metadata
}

// Summary is a hotel row with the aggregates of its room categories.
type Summary struct {
	Hotel
	CategoryCount int      `db:"category_count"`
	MinPrice      *float64 `db:"min_price"`
	MaxPrice      *float64 `db:"max_price"`
}
