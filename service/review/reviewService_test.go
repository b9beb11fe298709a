package reviewsvc

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/francistate/alx-travel-app-0x00/model"
)

type repoMock struct {
	insertFn func(ctx context.Context, rv *model.Review) error
	listFn   func(ctx context.Context, listingID uuid.UUID) ([]model.Review, error)
}

func (m *repoMock) Insert(ctx context.Context, rv *model.Review) error {
	if m.insertFn == nil {
		return nil
	}
	return m.insertFn(ctx, rv)
}
func (m *repoMock) ListByListing(ctx context.Context, listingID uuid.UUID) ([]model.Review, error) {
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(ctx, listingID)
}

func TestCreate_RatingRange(t *testing.T) {
	svc := New(&repoMock{})
	ctx := context.Background()
	listingID := uuid.New()

	for _, rating := range []int{0, -1, 6} {
		_, err := svc.Create(ctx, 7, listingID, model.CreateReviewReq{
			Rating:  rating,
			Comment: "Great stay here!",
		})
		require.Error(t, err, "rating %d", rating)
		require.Equal(t, ErrBadRating, Code(err))
		require.Equal(t, "rating", Field(err))
	}

	for _, rating := range []int{1, 5} {
		_, err := svc.Create(ctx, 7, listingID, model.CreateReviewReq{
			Rating:  rating,
			Comment: "Great stay here!",
		})
		require.NoError(t, err, "rating %d", rating)
	}
}

func TestCreate_ShortComment(t *testing.T) {
	svc := New(&repoMock{})

	_, err := svc.Create(context.Background(), 7, uuid.New(), model.CreateReviewReq{
		Rating:  4,
		Comment: "short",
	})
	require.Error(t, err)
	require.Equal(t, ErrShortComment, Code(err))
	require.Equal(t, "comment", Field(err))

	// whitespace padding does not help
	_, err = svc.Create(context.Background(), 7, uuid.New(), model.CreateReviewReq{
		Rating:  4,
		Comment: "   short      ",
	})
	require.Error(t, err)
	require.Equal(t, ErrShortComment, Code(err))
}

func TestCreate_StoresTrimmedComment(t *testing.T) {
	var stored *model.Review
	m := &repoMock{
		insertFn: func(ctx context.Context, rv *model.Review) error {
			stored = rv
			return nil
		},
	}
	svc := New(m)
	listingID := uuid.New()

	rv, err := svc.Create(context.Background(), 7, listingID, model.CreateReviewReq{
		Rating:  5,
		Comment: "  Great stay here!  ",
	})
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, "Great stay here!", stored.Comment)
	require.Equal(t, listingID, rv.ListingID)
	require.Equal(t, int64(7), rv.ReviewerID)
	require.Nil(t, rv.BookingID)
}

func TestCreate_WithBookingRef(t *testing.T) {
	svc := New(&repoMock{})
	bookingID := uuid.New().String()

	rv, err := svc.Create(context.Background(), 7, uuid.New(), model.CreateReviewReq{
		Rating:    5,
		Comment:   "Great stay here!",
		BookingID: &bookingID,
	})
	require.NoError(t, err)
	require.NotNil(t, rv.BookingID)
	require.Equal(t, bookingID, rv.BookingID.String())

	bad := "nope"
	_, err = svc.Create(context.Background(), 7, uuid.New(), model.CreateReviewReq{
		Rating:    5,
		Comment:   "Great stay here!",
		BookingID: &bad,
	})
	require.Error(t, err)
	require.Equal(t, ErrBadInput, Code(err))
}

func TestCreate_DuplicateReview(t *testing.T) {
	m := &repoMock{
		insertFn: func(ctx context.Context, rv *model.Review) error {
			return &pgconn.PgError{
				Code:           pgerrcode.UniqueViolation,
				ConstraintName: "unique_review_per_user_per_listing",
			}
		},
	}
	svc := New(m)

	_, err := svc.Create(context.Background(), 7, uuid.New(), model.CreateReviewReq{
		Rating:  4,
		Comment: "Great stay here!",
	})
	require.Error(t, err)
	require.Equal(t, ErrDuplicate, Code(err))
}

func TestCreate_ForeignKeyMapping(t *testing.T) {
	cases := []struct {
		constraint string
		want       ErrCode
	}{
		{"reviews_listing_id_fkey", ErrListingNotFound},
		{"reviews_booking_id_fkey", ErrBookingNotFound},
	}
	for _, tc := range cases {
		m := &repoMock{
			insertFn: func(ctx context.Context, rv *model.Review) error {
				return &pgconn.PgError{
					Code:           pgerrcode.ForeignKeyViolation,
					ConstraintName: tc.constraint,
				}
			},
		}
		svc := New(m)
		_, err := svc.Create(context.Background(), 7, uuid.New(), model.CreateReviewReq{
			Rating:  4,
			Comment: "Great stay here!",
		})
		require.Error(t, err)
		require.Equal(t, tc.want, Code(err), tc.constraint)
	}
}

func TestCreate_UncodedErrorPassesThrough(t *testing.T) {
	m := &repoMock{
		insertFn: func(ctx context.Context, rv *model.Review) error {
			return errors.New("db down")
		},
	}
	svc := New(m)

	_, err := svc.Create(context.Background(), 7, uuid.New(), model.CreateReviewReq{
		Rating:  4,
		Comment: "Great stay here!",
	})
	require.Error(t, err)
	require.Equal(t, ErrCode(""), Code(err))
}
