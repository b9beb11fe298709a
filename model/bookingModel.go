package model

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

type Booking struct {
	ID              uuid.UUID     `json:"booking_id"`
	ListingID       uuid.UUID     `json:"listing_id"`
	GuestID         int64         `json:"guest_id"`
	CheckInDate     time.Time     `json:"check_in_date"`
	CheckOutDate    time.Time     `json:"check_out_date"`
	NumberOfGuests  int           `json:"number_of_guests"`
	TotalPrice      float64       `json:"total_price"`
	Status          BookingStatus `json:"status"`
	SpecialRequests *string       `json:"special_requests,omitempty"`
	DurationDays    int           `json:"duration_days"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// CreateBookingReq represents booking creation payload. Dates use the
// YYYY-MM-DD wire format.
// swagger:model CreateBookingReq
type CreateBookingReq struct {
	ListingID       string  `json:"listing_id" validate:"required,uuid4"`
	CheckInDate     string  `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	CheckOutDate    string  `json:"check_out_date" validate:"required,datetime=2006-01-02"`
	NumberOfGuests  int     `json:"number_of_guests" validate:"required,gte=1"`
	SpecialRequests *string `json:"special_requests"`
}

// UpdateBookingDatesReq re-runs the availability gate for an existing booking,
// excluding the booking itself from the conflict scan.
// swagger:model UpdateBookingDatesReq
type UpdateBookingDatesReq struct {
	CheckInDate    string `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	CheckOutDate   string `json:"check_out_date" validate:"required,datetime=2006-01-02"`
	NumberOfGuests int    `json:"number_of_guests" validate:"required,gte=1"`
}

// UpdateBookingStatusReq drives externally-owned status transitions.
// swagger:model UpdateBookingStatusReq
type UpdateBookingStatusReq struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
}
