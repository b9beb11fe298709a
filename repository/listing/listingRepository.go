package listingrepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/francistate/alx-travel-app-0x00/model"
	"github.com/francistate/alx-travel-app-0x00/util/database"
)

type Repo interface {
	Create(ctx context.Context, l *model.Listing) error
	List(ctx context.Context) ([]model.Listing, error)
	ByID(ctx context.Context, id uuid.UUID) (*model.Listing, error)
	// ByIDForUpdate locks the listing row for the lifetime of tx, serialising
	// concurrent booking attempts against the same listing.
	ByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*model.Listing, error)
	Update(ctx context.Context, l *model.Listing) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

const listingCols = `
	id, title, description, location, price_per_night, property_type,
	max_guests, bedrooms, bathrooms, host_id,
	has_wifi, has_parking, has_kitchen, has_pool, allows_pets,
	is_available, created_at, updated_at`

func scanListing(row pgx.Row, l *model.Listing) error {
	return row.Scan(
		&l.ID, &l.Title, &l.Description, &l.Location, &l.PricePerNight, &l.PropertyType,
		&l.MaxGuests, &l.Bedrooms, &l.Bathrooms, &l.HostID,
		&l.HasWifi, &l.HasParking, &l.HasKitchen, &l.HasPool, &l.AllowsPets,
		&l.IsAvailable, &l.CreatedAt, &l.UpdatedAt,
	)
}

func (r *repo) Create(ctx context.Context, l *model.Listing) error {
	return r.db.Pool.QueryRow(ctx, `
		INSERT INTO listings (
			id, title, description, location, price_per_night, property_type,
			max_guests, bedrooms, bathrooms, host_id,
			has_wifi, has_parking, has_kitchen, has_pool, allows_pets, is_available
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
		RETURNING created_at, updated_at`,
		l.ID, l.Title, l.Description, l.Location, l.PricePerNight, l.PropertyType,
		l.MaxGuests, l.Bedrooms, l.Bathrooms, l.HostID,
		l.HasWifi, l.HasParking, l.HasKitchen, l.HasPool, l.AllowsPets, l.IsAvailable,
	).Scan(&l.CreatedAt, &l.UpdatedAt)
}

// List returns all listings with their review aggregates computed in-query.
func (r *repo) List(ctx context.Context) ([]model.Listing, error) {
	const q = `
		SELECT
			l.id, l.title, l.description, l.location, l.price_per_night, l.property_type,
			l.max_guests, l.bedrooms, l.bathrooms, l.host_id,
			l.has_wifi, l.has_parking, l.has_kitchen, l.has_pool, l.allows_pets,
			l.is_available, l.created_at, l.updated_at,
			u.first_name || ' ' || u.last_name AS host_name,
			COALESCE(AVG(rv.rating), 0)::FLOAT8 AS average_rating,
			COUNT(rv.id)::INT AS total_reviews
		FROM listings l
		JOIN users u ON u.id = l.host_id
		LEFT JOIN reviews rv ON rv.listing_id = l.id
		GROUP BY l.id, u.first_name, u.last_name
		ORDER BY l.created_at DESC`
	rows, err := r.db.Pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Listing
	for rows.Next() {
		var l model.Listing
		if err := rows.Scan(
			&l.ID, &l.Title, &l.Description, &l.Location, &l.PricePerNight, &l.PropertyType,
			&l.MaxGuests, &l.Bedrooms, &l.Bathrooms, &l.HostID,
			&l.HasWifi, &l.HasParking, &l.HasKitchen, &l.HasPool, &l.AllowsPets,
			&l.IsAvailable, &l.CreatedAt, &l.UpdatedAt,
			&l.HostName, &l.AverageRating, &l.TotalReviews,
		); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *repo) ByID(ctx context.Context, id uuid.UUID) (*model.Listing, error) {
	l := &model.Listing{}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT
			l.id, l.title, l.description, l.location, l.price_per_night, l.property_type,
			l.max_guests, l.bedrooms, l.bathrooms, l.host_id,
			l.has_wifi, l.has_parking, l.has_kitchen, l.has_pool, l.allows_pets,
			l.is_available, l.created_at, l.updated_at,
			u.first_name || ' ' || u.last_name AS host_name
		FROM listings l
		JOIN users u ON u.id = l.host_id
		WHERE l.id = $1`,
		id,
	).Scan(
		&l.ID, &l.Title, &l.Description, &l.Location, &l.PricePerNight, &l.PropertyType,
		&l.MaxGuests, &l.Bedrooms, &l.Bathrooms, &l.HostID,
		&l.HasWifi, &l.HasParking, &l.HasKitchen, &l.HasPool, &l.AllowsPets,
		&l.IsAvailable, &l.CreatedAt, &l.UpdatedAt,
		&l.HostName,
	)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *repo) ByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*model.Listing, error) {
	l := &model.Listing{}
	err := scanListing(tx.QueryRow(ctx, `
		SELECT`+listingCols+`
		FROM listings
		WHERE id = $1
		FOR UPDATE`,
		id,
	), l)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *repo) Update(ctx context.Context, l *model.Listing) error {
	return r.db.Pool.QueryRow(ctx, `
		UPDATE listings
		SET title = $2, description = $3, location = $4, price_per_night = $5,
			property_type = $6, max_guests = $7, bedrooms = $8, bathrooms = $9,
			has_wifi = $10, has_parking = $11, has_kitchen = $12, has_pool = $13,
			allows_pets = $14, is_available = $15,
			updated_at = now()
		WHERE id = $1
		RETURNING updated_at`,
		l.ID, l.Title, l.Description, l.Location, l.PricePerNight,
		l.PropertyType, l.MaxGuests, l.Bedrooms, l.Bathrooms,
		l.HasWifi, l.HasParking, l.HasKitchen, l.HasPool,
		l.AllowsPets, l.IsAvailable,
	).Scan(&l.UpdatedAt)
}

// Delete removes the listing; bookings and reviews go with it via
// ON DELETE CASCADE.
func (r *repo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
