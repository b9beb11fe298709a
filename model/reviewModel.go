package model

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID           uuid.UUID  `json:"review_id"`
	ListingID    uuid.UUID  `json:"listing_id"`
	ReviewerID   int64      `json:"reviewer_id"`
	ReviewerName string     `json:"reviewer_name,omitempty"`
	BookingID    *uuid.UUID `json:"booking_id,omitempty"`
	Rating       int        `json:"rating"`
	Comment      string     `json:"comment"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// CreateReviewReq represents review creation payload.
// swagger:model CreateReviewReq
type CreateReviewReq struct {
	Rating    int     `json:"rating" validate:"required,gte=1,lte=5"`
	Comment   string  `json:"comment" validate:"required"`
	BookingID *string `json:"booking_id" validate:"omitempty,uuid4"`
}
