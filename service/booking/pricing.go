package bookingsvc

import (
	"math"
	"time"

	"github.com/google/uuid"

	bookingrepo "github.com/francistate/alx-travel-app-0x00/repository/booking"

	"github.com/francistate/alx-travel-app-0x00/model"
)

// DateLayout is the wire format for check-in/check-out dates.
const DateLayout = "2006-01-02"

// DurationNights returns the length of the stay in whole nights.
// Check-out must be strictly after check-in.
func DurationNights(checkIn, checkOut time.Time) (int, error) {
	if !checkOut.After(checkIn) {
		return 0, fieldErr(ErrDateOrder, "check_out_date", "Check-out date must be after check-in date")
	}
	return int(checkOut.Sub(checkIn).Hours() / 24), nil
}

// TotalPrice is nightly rate times nights, kept at currency scale.
func TotalPrice(nightlyRate float64, checkIn, checkOut time.Time) (float64, error) {
	nights, err := DurationNights(checkIn, checkOut)
	if err != nil {
		return 0, err
	}
	return math.Round(nightlyRate*float64(nights)*100) / 100, nil
}

// overlaps reports whether two half-open date ranges [aIn, aOut) and
// [bIn, bOut) intersect. Touching endpoints do not conflict: a check-out
// on the same day as another booking's check-in is allowed.
func overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && aOut.After(bIn)
}

// validateStay is the single-shot gate run before a booking is created or its
// dates changed. Checks run in order: date ordering, listing availability,
// guest capacity, then date conflicts against the listing's pending and
// confirmed bookings. exclude skips the booking being updated.
func validateStay(l *model.Listing, checkIn, checkOut time.Time, guests int, active []bookingrepo.Window, exclude uuid.UUID) error {
	if _, err := DurationNights(checkIn, checkOut); err != nil {
		return err
	}
	if !l.IsAvailable {
		return fieldErr(ErrNotAvailable, "listing_id", "This listing is not available for booking")
	}
	if guests > l.MaxGuests {
		return fieldErrf(ErrCapacity, "number_of_guests",
			"Number of guests (%d) exceeds listing capacity (%d)", guests, l.MaxGuests)
	}
	for _, w := range active {
		if w.ID == exclude {
			continue
		}
		if overlaps(checkIn, checkOut, w.CheckIn, w.CheckOut) {
			return fieldErr(ErrDatesTaken, "check_in_date", "These dates are not available for booking")
		}
	}
	return nil
}
