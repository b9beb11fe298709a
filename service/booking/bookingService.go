package bookingsvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/francistate/alx-travel-app-0x00/model"
	bookingrepo "github.com/francistate/alx-travel-app-0x00/repository/booking"
)

// errors used by controllers

type ErrCode string

const (
	ErrBadInput        ErrCode = "BAD_INPUT"
	ErrListingNotFound ErrCode = "LISTING_NOT_FOUND"
	ErrBookingNotFound ErrCode = "BOOKING_NOT_FOUND"
	ErrNotGuest        ErrCode = "NOT_GUEST"
	ErrDateOrder       ErrCode = "DATE_ORDER"
	ErrNotAvailable    ErrCode = "NOT_AVAILABLE"
	ErrCapacity        ErrCode = "CAPACITY"
	ErrDatesTaken      ErrCode = "DATES_TAKEN"
)

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

func fieldErrf(c ErrCode, field, format string, args ...any) error {
	return codedError{code: c, field: field, msg: fmt.Sprintf(format, args...)}
}

// Code extracts the error code, or "" for uncoded errors.
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// Field returns the request field a validation failure is attributed to.
func Field(err error) string {
	var ce codedError
	if errors.As(err, &ce) {
		return ce.field
	}
	return ""
}

// DB begins transactions; satisfied by *pgxpool.Pool.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Listings is the listing access the booking gate needs.
type Listings interface {
	ByID(ctx context.Context, id uuid.UUID) (*model.Listing, error)
	ByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*model.Listing, error)
}

type Repo interface {
	Insert(ctx context.Context, tx pgx.Tx, b *model.Booking) error
	ActiveWindows(ctx context.Context, tx pgx.Tx, listingID uuid.UUID) ([]bookingrepo.Window, error)
	ByID(ctx context.Context, id uuid.UUID) (*model.Booking, error)
	ByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*model.Booking, error)
	ListByGuest(ctx context.Context, guestID int64) ([]model.Booking, error)
	UpdateStay(ctx context.Context, tx pgx.Tx, b *model.Booking) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.BookingStatus) (bool, error)
}

type Service interface {
	// Create runs the availability gate and books the stay for guestID.
	Create(ctx context.Context, guestID int64, req model.CreateBookingReq) (*model.Booking, error)

	// UpdateStay re-runs the gate for new dates, excluding the booking itself
	// from the conflict scan, and reprices the stay.
	UpdateStay(ctx context.Context, guestID int64, bookingID uuid.UUID, req model.UpdateBookingDatesReq) (*model.Booking, error)

	// UpdateStatus applies an externally-driven status transition.
	UpdateStatus(ctx context.Context, actorID int64, bookingID uuid.UUID, status model.BookingStatus) error

	// MyBookings lists the acting user's bookings.
	MyBookings(ctx context.Context, guestID int64) ([]model.Booking, error)
}

// ----- Service implementation -----

type service struct {
	db DB
	lr Listings
	br Repo
}

func New(db DB, lr Listings, br Repo) Service {
	return &service{db: db, lr: lr, br: br}
}

func parseDate(field, s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fieldErr(ErrBadInput, field, "invalid date, expected YYYY-MM-DD")
	}
	return t, nil
}

func (s *service) Create(ctx context.Context, guestID int64, req model.CreateBookingReq) (*model.Booking, error) {
	listingID, err := uuid.Parse(req.ListingID)
	if err != nil {
		return nil, fieldErr(ErrBadInput, "listing_id", "invalid listing id")
	}
	checkIn, err := parseDate("check_in_date", req.CheckInDate)
	if err != nil {
		return nil, err
	}
	checkOut, err := parseDate("check_out_date", req.CheckOutDate)
	if err != nil {
		return nil, err
	}

	// Reject bad date ordering before touching the database.
	nights, err := DurationNights(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	// The row lock serialises concurrent bookings of the same listing, so the
	// conflict scan below cannot race a concurrent insert.
	l, err := s.lr.ByIDForUpdate(ctx, tx, listingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fieldErr(ErrListingNotFound, "listing_id", "Invalid listing ID")
		}
		return nil, err
	}

	active, err := s.br.ActiveWindows(ctx, tx, listingID)
	if err != nil {
		return nil, err
	}

	if err = validateStay(l, checkIn, checkOut, req.NumberOfGuests, active, uuid.Nil); err != nil {
		return nil, err
	}

	total, err := TotalPrice(l.PricePerNight, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	b := &model.Booking{
		ID:              uuid.New(),
		ListingID:       listingID,
		GuestID:         guestID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumberOfGuests:  req.NumberOfGuests,
		TotalPrice:      total,
		Status:          model.BookingPending,
		SpecialRequests: req.SpecialRequests,
		DurationDays:    nights,
	}
	if err = s.br.Insert(ctx, tx, b); err != nil {
		return nil, err
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) UpdateStay(ctx context.Context, guestID int64, bookingID uuid.UUID, req model.UpdateBookingDatesReq) (*model.Booking, error) {
	checkIn, err := parseDate("check_in_date", req.CheckInDate)
	if err != nil {
		return nil, err
	}
	checkOut, err := parseDate("check_out_date", req.CheckOutDate)
	if err != nil {
		return nil, err
	}
	nights, err := DurationNights(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	b, err := s.br.ByIDForUpdate(ctx, tx, bookingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fieldErr(ErrBookingNotFound, "booking_id", "booking not found")
		}
		return nil, err
	}
	if b.GuestID != guestID {
		return nil, fieldErr(ErrNotGuest, "booking_id", "booking belongs to another guest")
	}

	l, err := s.lr.ByIDForUpdate(ctx, tx, b.ListingID)
	if err != nil {
		return nil, err
	}

	active, err := s.br.ActiveWindows(ctx, tx, b.ListingID)
	if err != nil {
		return nil, err
	}

	if err = validateStay(l, checkIn, checkOut, req.NumberOfGuests, active, b.ID); err != nil {
		return nil, err
	}

	total, err := TotalPrice(l.PricePerNight, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	b.CheckInDate = checkIn
	b.CheckOutDate = checkOut
	b.NumberOfGuests = req.NumberOfGuests
	b.TotalPrice = total
	b.DurationDays = nights
	if err = s.br.UpdateStay(ctx, tx, b); err != nil {
		return nil, err
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) UpdateStatus(ctx context.Context, actorID int64, bookingID uuid.UUID, status model.BookingStatus) error {
	b, err := s.br.ByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fieldErr(ErrBookingNotFound, "booking_id", "booking not found")
		}
		return err
	}
	if b.GuestID != actorID {
		// The listing's host may also drive transitions (confirm, complete).
		l, lerr := s.lr.ByID(ctx, b.ListingID)
		if lerr != nil || l.HostID != actorID {
			return fieldErr(ErrNotGuest, "booking_id", "booking belongs to another guest")
		}
	}
	ok, err := s.br.UpdateStatus(ctx, bookingID, status)
	if err != nil {
		return err
	}
	if !ok {
		return fieldErr(ErrBookingNotFound, "booking_id", "booking not found")
	}
	return nil
}

func (s *service) MyBookings(ctx context.Context, guestID int64) ([]model.Booking, error) {
	out, err := s.br.ListByGuest(ctx, guestID)
	if err != nil {
		return nil, err
	}
	for i := range out {
		if n, derr := DurationNights(out[i].CheckInDate, out[i].CheckOutDate); derr == nil {
			out[i].DurationDays = n
		}
	}
	return out, nil
}
