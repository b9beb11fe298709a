package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/francistate/alx-travel-app-0x00/model"
)

func TestFields_FlattensByField(t *testing.T) {
	v := New()

	err := v.Validate(model.CreateBookingReq{
		ListingID:      "not-a-uuid",
		CheckInDate:    "2025-03-01",
		CheckOutDate:   "03/05/2025",
		NumberOfGuests: 0,
	})
	require.Error(t, err)

	fields := Fields(err)
	require.Contains(t, fields, "listing_id")
	require.Contains(t, fields, "check_out_date")
	require.Contains(t, fields, "number_of_guests")
	require.NotContains(t, fields, "check_in_date")
	require.Equal(t, []string{"must be a valid UUID"}, fields["listing_id"])
}

func TestFields_NonValidatorError(t *testing.T) {
	fields := Fields(errors.New("boom"))
	require.Equal(t, map[string][]string{"non_field_errors": {"boom"}}, fields)
}

func TestSnake(t *testing.T) {
	require.Equal(t, "check_in_date", snake("CheckInDate"))
	require.Equal(t, "rating", snake("Rating"))
	require.Equal(t, "number_of_guests", snake("NumberOfGuests"))

	// trailing initialisms stay one word
	require.Equal(t, "listing_id", snake("ListingID"))
	require.Equal(t, "booking_id", snake("BookingID"))
	require.Equal(t, "id", snake("ID"))
}

func TestFields_InitialismKeys(t *testing.T) {
	v := New()

	bad := "nope"
	err := v.Validate(model.CreateReviewReq{
		Rating:    5,
		Comment:   "Great stay here!",
		BookingID: &bad,
	})
	require.Error(t, err)

	fields := Fields(err)
	require.Contains(t, fields, "booking_id")
	require.NotContains(t, fields, "booking_i_d")
}
