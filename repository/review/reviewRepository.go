package reviewrepo

import (
	"context"

	"github.com/google/uuid"

	"github.com/francistate/alx-travel-app-0x00/model"
	"github.com/francistate/alx-travel-app-0x00/util/database"
)

type Repo interface {
	Insert(ctx context.Context, rv *model.Review) error
	ListByListing(ctx context.Context, listingID uuid.UUID) ([]model.Review, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

// Insert relies on the unique_review_per_user_per_listing constraint to
// reject a second review for the same (listing, reviewer) pair.
func (r *repo) Insert(ctx context.Context, rv *model.Review) error {
	return r.db.Pool.QueryRow(ctx, `
		INSERT INTO reviews (id, listing_id, reviewer_id, booking_id, rating, comment)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING created_at, updated_at`,
		rv.ID, rv.ListingID, rv.ReviewerID, rv.BookingID, rv.Rating, rv.Comment,
	).Scan(&rv.CreatedAt, &rv.UpdatedAt)
}

func (r *repo) ListByListing(ctx context.Context, listingID uuid.UUID) ([]model.Review, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT
			rv.id, rv.listing_id, rv.reviewer_id, rv.booking_id,
			rv.rating, rv.comment, rv.created_at, rv.updated_at,
			u.first_name || ' ' || u.last_name AS reviewer_name
		FROM reviews rv
		JOIN users u ON u.id = rv.reviewer_id
		WHERE rv.listing_id = $1
		ORDER BY rv.created_at DESC`,
		listingID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Review
	for rows.Next() {
		var rv model.Review
		if err := rows.Scan(
			&rv.ID, &rv.ListingID, &rv.ReviewerID, &rv.BookingID,
			&rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.UpdatedAt,
			&rv.ReviewerName,
		); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}
