package dto

import (
	"hotelbook/internal/domains/review/model"
	"hotelbook/shared"
	"hotelbook/shared/constant"
	gDto "hotelbook/shared/dto"
	gModel "hotelbook/shared/model"
	"hotelbook/shared/timezone"
	"strings"
	"time"

	"github.com/google/uuid"
)

type SubmitReviewRequest struct {
	Rating   int    `json:"rating"`
	Comments string `json:"comments" validate:"omitempty,max=1000"`
}

func (r *SubmitReviewRequest) ToModel(userID string, now time.Time) model.Review {
	review := model.Review{
		ID:         uuid.NewString(),
		UserID:     &userID,
		Rating:     r.Rating,
		ReviewDate: now,
		Metadata:   gModel.NewMetadata(userID, now),
	}

	if comments := strings.TrimSpace(r.Comments); comments != "" {
		review.Comments = &comments
	}

	return review
}

type ReviewResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id,omitempty"`
	UserName   string `json:"user_name"`
	Rating     int    `json:"rating"`
	Comments   string `json:"comments"`
	ReviewDate string `json:"review_date"`
}

// FromModel names reviews of deleted accounts "Deleted user".
func (r *ReviewResponse) FromModel(review model.Review) {
	r.ID = review.ID
	r.Rating = review.Rating
	r.ReviewDate = timezone.Format(review.ReviewDate, constant.DateFormat)
	r.UserName = "Deleted user"

	if review.UserID != nil {
		r.UserID = *review.UserID
	}

	if review.Comments != nil {
		r.Comments = *review.Comments
	}

	if review.UserFirstName != nil {
		name := *review.UserFirstName
		if review.UserLastName != nil {
			name += " " + *review.UserLastName
		}

		r.UserName = strings.TrimSpace(name)
	}
}

type GetReviewsResponse struct {
	Reviews   []ReviewResponse `json:"reviews"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetReviewsResponse) FromModels(models []model.Review, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reviews = make([]ReviewResponse, len(models))
	for i, mod := range models {
		r.Reviews[i].FromModel(mod)
	}
}

type ReviewFilter struct {
	Rating int
}

func (f ReviewFilter) ToFilterGroup() gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: []any{}}

	if f.Rating >= model.MinRating && f.Rating <= model.MaxRating {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldRating,
			Operator: gDto.FilterOperatorEq,
			Value:    f.Rating,
			Table:    model.TableName,
		})
	}

	return group
}
