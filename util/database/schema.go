package database

import "context"

// ddl is applied at startup. Constraint names matter: services map
// unique-violation errors back to user-facing conflicts by name.
const ddl = `
CREATE TABLE IF NOT EXISTS users (
	id            BIGSERIAL PRIMARY KEY,
	first_name    TEXT NOT NULL,
	last_name     TEXT NOT NULL,
	email         TEXT NOT NULL,
	username      TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	CONSTRAINT users_email_key UNIQUE (email),
	CONSTRAINT users_username_key UNIQUE (username)
);

CREATE TABLE IF NOT EXISTS listings (
	id              UUID PRIMARY KEY,
	title           TEXT NOT NULL,
	description     TEXT NOT NULL,
	location        TEXT NOT NULL,
	price_per_night NUMERIC(10,2) NOT NULL CHECK (price_per_night >= 0),
	property_type   TEXT NOT NULL DEFAULT 'apartment'
		CHECK (property_type IN ('apartment','house','hotel','villa','cabin','other')),
	max_guests      INT NOT NULL DEFAULT 1 CHECK (max_guests BETWEEN 1 AND 20),
	bedrooms        INT NOT NULL DEFAULT 1 CHECK (bedrooms >= 0),
	bathrooms       INT NOT NULL DEFAULT 1 CHECK (bathrooms >= 0),
	host_id         BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	has_wifi        BOOLEAN NOT NULL DEFAULT FALSE,
	has_parking     BOOLEAN NOT NULL DEFAULT FALSE,
	has_kitchen     BOOLEAN NOT NULL DEFAULT FALSE,
	has_pool        BOOLEAN NOT NULL DEFAULT FALSE,
	allows_pets     BOOLEAN NOT NULL DEFAULT FALSE,
	is_available    BOOLEAN NOT NULL DEFAULT TRUE,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS listings_location_idx ON listings (location);
CREATE INDEX IF NOT EXISTS listings_property_type_idx ON listings (property_type);
CREATE INDEX IF NOT EXISTS listings_is_available_idx ON listings (is_available);

CREATE TABLE IF NOT EXISTS bookings (
	id               UUID PRIMARY KEY,
	listing_id       UUID NOT NULL REFERENCES listings(id) ON DELETE CASCADE,
	guest_id         BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	check_in_date    DATE NOT NULL,
	check_out_date   DATE NOT NULL,
	number_of_guests INT NOT NULL CHECK (number_of_guests >= 1),
	total_price      NUMERIC(10,2) NOT NULL CHECK (total_price >= 0),
	status           TEXT NOT NULL DEFAULT 'pending'
		CHECK (status IN ('pending','confirmed','cancelled','completed')),
	special_requests TEXT,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
	CONSTRAINT check_out_after_check_in CHECK (check_out_date > check_in_date)
);
CREATE INDEX IF NOT EXISTS bookings_listing_id_idx ON bookings (listing_id);
CREATE INDEX IF NOT EXISTS bookings_status_idx ON bookings (status);

CREATE TABLE IF NOT EXISTS reviews (
	id          UUID PRIMARY KEY,
	listing_id  UUID NOT NULL REFERENCES listings(id) ON DELETE CASCADE,
	reviewer_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	booking_id  UUID REFERENCES bookings(id) ON DELETE SET NULL,
	rating      INT NOT NULL CHECK (rating BETWEEN 1 AND 5),
	comment     TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	CONSTRAINT unique_review_per_user_per_listing UNIQUE (listing_id, reviewer_id)
);
CREATE INDEX IF NOT EXISTS reviews_listing_id_idx ON reviews (listing_id);
`

// EnsureSchema creates the tables and constraints the repositories rely on.
func (d *DB) EnsureSchema(ctx context.Context) error {
	_, err := d.Pool.Exec(ctx, ddl)
	return err
}
