package model

import (
	"time"

	"github.com/google/uuid"
)

type PropertyType string

const (
	PropertyApartment PropertyType = "apartment"
	PropertyHouse     PropertyType = "house"
	PropertyHotel     PropertyType = "hotel"
	PropertyVilla     PropertyType = "villa"
	PropertyCabin     PropertyType = "cabin"
	PropertyOther     PropertyType = "other"
)

type Listing struct {
	ID            uuid.UUID    `json:"listing_id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Location      string       `json:"location"`
	PricePerNight float64      `json:"price_per_night"`
	PropertyType  PropertyType `json:"property_type"`
	MaxGuests     int          `json:"max_guests"`
	Bedrooms      int          `json:"bedrooms"`
	Bathrooms     int          `json:"bathrooms"`
	HostID        int64        `json:"host_id"`
	HostName      string       `json:"host_name,omitempty"`
	HasWifi       bool         `json:"has_wifi"`
	HasParking    bool         `json:"has_parking"`
	HasKitchen    bool         `json:"has_kitchen"`
	HasPool       bool         `json:"has_pool"`
	AllowsPets    bool         `json:"allows_pets"`
	IsAvailable   bool         `json:"is_available"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`

	// Derived on read, never stored.
	AverageRating float64  `json:"average_rating"`
	TotalReviews  int      `json:"total_reviews"`
	Reviews       []Review `json:"reviews,omitempty"`
}

// CreateListingReq represents listing creation payload
// swagger:model CreateListingReq
type CreateListingReq struct {
	Title         string  `json:"title" validate:"required,max=200"`
	Description   string  `json:"description" validate:"required"`
	Location      string  `json:"location" validate:"required,max=200"`
	PricePerNight float64 `json:"price_per_night" validate:"gte=0"`
	PropertyType  string  `json:"property_type" validate:"required,oneof=apartment house hotel villa cabin other"`
	MaxGuests     int     `json:"max_guests" validate:"required,gte=1,lte=20"`
	Bedrooms      int     `json:"bedrooms" validate:"gte=0"`
	Bathrooms     int     `json:"bathrooms" validate:"gte=0"`
	HasWifi       bool    `json:"has_wifi"`
	HasParking    bool    `json:"has_parking"`
	HasKitchen    bool    `json:"has_kitchen"`
	HasPool       bool    `json:"has_pool"`
	AllowsPets    bool    `json:"allows_pets"`
	IsAvailable   *bool   `json:"is_available"`
}

// UpdateListingReq mirrors CreateListingReq for full updates by the host.
// swagger:model UpdateListingReq
type UpdateListingReq struct {
	Title         string  `json:"title" validate:"required,max=200"`
	Description   string  `json:"description" validate:"required"`
	Location      string  `json:"location" validate:"required,max=200"`
	PricePerNight float64 `json:"price_per_night" validate:"gte=0"`
	PropertyType  string  `json:"property_type" validate:"required,oneof=apartment house hotel villa cabin other"`
	MaxGuests     int     `json:"max_guests" validate:"required,gte=1,lte=20"`
	Bedrooms      int     `json:"bedrooms" validate:"gte=0"`
	Bathrooms     int     `json:"bathrooms" validate:"gte=0"`
	HasWifi       bool    `json:"has_wifi"`
	HasParking    bool    `json:"has_parking"`
	HasKitchen    bool    `json:"has_kitchen"`
	HasPool       bool    `json:"has_pool"`
	AllowsPets    bool    `json:"allows_pets"`
	IsAvailable   bool    `json:"is_available"`
}
