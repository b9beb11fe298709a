package reviewsvc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/francistate/alx-travel-app-0x00/model"
)

type ErrCode string

const (
	ErrBadInput        ErrCode = "BAD_INPUT"
	ErrBadRating       ErrCode = "BAD_RATING"
	ErrShortComment    ErrCode = "SHORT_COMMENT"
	ErrDuplicate       ErrCode = "DUPLICATE_REVIEW"
	ErrListingNotFound ErrCode = "LISTING_NOT_FOUND"
	ErrBookingNotFound ErrCode = "BOOKING_NOT_FOUND"
)

const minCommentLen = 10

type codedError struct {
	code  ErrCode
	field string
	msg   string
}

func (e codedError) Error() string {
	if e.msg != "" {
		return e.msg
	}
	return string(e.code)
}
func (e codedError) Code() ErrCode { return e.code }

func fieldErr(c ErrCode, field, msg string) error {
	return codedError{code: c, field: field, msg: msg}
}

func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

func Field(err error) string {
	var ce codedError
	if errors.As(err, &ce) {
		return ce.field
	}
	return ""
}

type Repo interface {
	Insert(ctx context.Context, rv *model.Review) error
	ListByListing(ctx context.Context, listingID uuid.UUID) ([]model.Review, error)
}

type Service interface {
	// Create validates and stores a review; the store's uniqueness constraint
	// rejects a second review by the same reviewer for the same listing.
	Create(ctx context.Context, reviewerID int64, listingID uuid.UUID, req model.CreateReviewReq) (*model.Review, error)
	ListByListing(ctx context.Context, listingID uuid.UUID) ([]model.Review, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Create(ctx context.Context, reviewerID int64, listingID uuid.UUID, req model.CreateReviewReq) (*model.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fieldErr(ErrBadRating, "rating", "Rating must be between 1 and 5")
	}

	comment := strings.TrimSpace(req.Comment)
	if utf8.RuneCountInString(comment) < minCommentLen {
		return nil, fieldErr(ErrShortComment, "comment",
			fmt.Sprintf("Comment must be at least %d characters long", minCommentLen))
	}

	var bookingID *uuid.UUID
	if req.BookingID != nil && *req.BookingID != "" {
		id, err := uuid.Parse(*req.BookingID)
		if err != nil {
			return nil, fieldErr(ErrBadInput, "booking_id", "invalid booking id")
		}
		bookingID = &id
	}

	rv := &model.Review{
		ID:         uuid.New(),
		ListingID:  listingID,
		ReviewerID: reviewerID,
		BookingID:  bookingID,
		Rating:     req.Rating,
		Comment:    comment, // stored trimmed
	}
	if err := s.r.Insert(ctx, rv); err != nil {
		if mapped := mapIntegrityErr(err); mapped != nil {
			return nil, mapped
		}
		return nil, err
	}
	return rv, nil
}

func (s *service) ListByListing(ctx context.Context, listingID uuid.UUID) ([]model.Review, error) {
	return s.r.ListByListing(ctx, listingID)
}

// mapIntegrityErr turns constraint violations surfaced by the store into
// coded errors; anything else passes through untouched.
func mapIntegrityErr(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return fieldErr(ErrDuplicate, "listing_id", "You have already reviewed this listing")
	case pgerrcode.ForeignKeyViolation:
		cn := strings.ToLower(pgErr.ConstraintName)
		if strings.Contains(cn, "booking") {
			return fieldErr(ErrBookingNotFound, "booking_id", "Invalid booking ID")
		}
		return fieldErr(ErrListingNotFound, "listing_id", "Invalid listing ID")
	case pgerrcode.CheckViolation:
		return fieldErr(ErrBadRating, "rating", "Rating must be between 1 and 5")
	}
	return nil
}
