package bookingrepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/francistate/alx-travel-app-0x00/model"
	"github.com/francistate/alx-travel-app-0x00/util/database"
)

// Window is the slice of a booking the conflict scan needs.
type Window struct {
	ID       uuid.UUID
	CheckIn  time.Time
	CheckOut time.Time
}

type Repo interface {
	Insert(ctx context.Context, tx pgx.Tx, b *model.Booking) error
	// ActiveWindows returns the date ranges of pending and confirmed bookings
	// for a listing. Cancelled and completed bookings never block new dates.
	ActiveWindows(ctx context.Context, tx pgx.Tx, listingID uuid.UUID) ([]Window, error)
	ByID(ctx context.Context, id uuid.UUID) (*model.Booking, error)
	ByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*model.Booking, error)
	ListByGuest(ctx context.Context, guestID int64) ([]model.Booking, error)
	UpdateStay(ctx context.Context, tx pgx.Tx, b *model.Booking) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.BookingStatus) (bool, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

const bookingCols = `
	id, listing_id, guest_id, check_in_date, check_out_date,
	number_of_guests, total_price, status, special_requests,
	created_at, updated_at`

func scanBooking(row pgx.Row, b *model.Booking) error {
	return row.Scan(
		&b.ID, &b.ListingID, &b.GuestID, &b.CheckInDate, &b.CheckOutDate,
		&b.NumberOfGuests, &b.TotalPrice, &b.Status, &b.SpecialRequests,
		&b.CreatedAt, &b.UpdatedAt,
	)
}

func (r *repo) Insert(ctx context.Context, tx pgx.Tx, b *model.Booking) error {
	return tx.QueryRow(ctx, `
		INSERT INTO bookings (
			id, listing_id, guest_id, check_in_date, check_out_date,
			number_of_guests, total_price, status, special_requests
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING created_at, updated_at`,
		b.ID, b.ListingID, b.GuestID, b.CheckInDate, b.CheckOutDate,
		b.NumberOfGuests, b.TotalPrice, b.Status, b.SpecialRequests,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
}

func (r *repo) ActiveWindows(ctx context.Context, tx pgx.Tx, listingID uuid.UUID) ([]Window, error) {
	rows, err := tx.Query(ctx, `
		SELECT id, check_in_date, check_out_date
		FROM bookings
		WHERE listing_id = $1
		AND status IN ('pending','confirmed')`,
		listingID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Window
	for rows.Next() {
		var w Window
		if err := rows.Scan(&w.ID, &w.CheckIn, &w.CheckOut); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (r *repo) ByID(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	b := &model.Booking{}
	err := scanBooking(r.db.Pool.QueryRow(ctx, `
		SELECT`+bookingCols+`
		FROM bookings
		WHERE id = $1`,
		id,
	), b)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *repo) ByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*model.Booking, error) {
	b := &model.Booking{}
	err := scanBooking(tx.QueryRow(ctx, `
		SELECT`+bookingCols+`
		FROM bookings
		WHERE id = $1
		FOR UPDATE`,
		id,
	), b)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *repo) ListByGuest(ctx context.Context, guestID int64) ([]model.Booking, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT`+bookingCols+`
		FROM bookings
		WHERE guest_id = $1
		ORDER BY created_at DESC`,
		guestID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Booking
	for rows.Next() {
		var b model.Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *repo) UpdateStay(ctx context.Context, tx pgx.Tx, b *model.Booking) error {
	return tx.QueryRow(ctx, `
		UPDATE bookings
		SET check_in_date = $2, check_out_date = $3, number_of_guests = $4,
			total_price = $5, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`,
		b.ID, b.CheckInDate, b.CheckOutDate, b.NumberOfGuests, b.TotalPrice,
	).Scan(&b.UpdatedAt)
}

func (r *repo) UpdateStatus(ctx context.Context, id uuid.UUID, status model.BookingStatus) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx, `
		UPDATE bookings
		SET status = $2, updated_at = now()
		WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
