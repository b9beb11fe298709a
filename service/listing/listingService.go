package listingsvc

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/francistate/alx-travel-app-0x00/model"
)

type ErrCode string

const (
	ErrBadInput ErrCode = "BAD_INPUT"
	ErrNotFound ErrCode = "NOT_FOUND"
	ErrNotOwner ErrCode = "NOT_OWNER"
)

type codedError struct {
	code ErrCode
	msg  string
}

func (e codedError) Error() string {
	if e.msg != "" {
		return e.msg
	}
	return string(e.code)
}
func (e codedError) Code() ErrCode { return e.code }

func makeErr(c ErrCode, msg string) error { return codedError{code: c, msg: msg} }

func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// maxNightlyRate caps what a host can charge per night.
const maxNightlyRate = 10000

type Repo interface {
	Create(ctx context.Context, l *model.Listing) error
	List(ctx context.Context) ([]model.Listing, error)
	ByID(ctx context.Context, id uuid.UUID) (*model.Listing, error)
	Update(ctx context.Context, l *model.Listing) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type Reviews interface {
	ListByListing(ctx context.Context, listingID uuid.UUID) ([]model.Review, error)
}

type Service interface {
	Create(ctx context.Context, hostID int64, req model.CreateListingReq) (*model.Listing, error)
	List(ctx context.Context) ([]model.Listing, error)
	// Detail loads the listing with its reviews and read-time aggregates.
	Detail(ctx context.Context, id uuid.UUID) (*model.Listing, error)
	Update(ctx context.Context, hostID int64, id uuid.UUID, req model.UpdateListingReq) (*model.Listing, error)
	Delete(ctx context.Context, hostID int64, id uuid.UUID) error
}

type service struct {
	r  Repo
	rr Reviews
}

func New(r Repo, rr Reviews) Service { return &service{r: r, rr: rr} }

// AverageRating is the arithmetic mean of the reviews' ratings, 0 when there
// are none.
func AverageRating(reviews []model.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, rv := range reviews {
		sum += rv.Rating
	}
	return float64(sum) / float64(len(reviews))
}

func checkRate(rate float64) error {
	if rate < 0 {
		return makeErr(ErrBadInput, "Price per night must not be negative")
	}
	if rate > maxNightlyRate {
		return makeErr(ErrBadInput, "Price per night cannot exceed $10,000")
	}
	return nil
}

func (s *service) Create(ctx context.Context, hostID int64, req model.CreateListingReq) (*model.Listing, error) {
	if err := checkRate(req.PricePerNight); err != nil {
		return nil, err
	}
	if req.MaxGuests < 1 || req.MaxGuests > 20 {
		return nil, makeErr(ErrBadInput, "Max guests must be between 1 and 20")
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	l := &model.Listing{
		ID:            uuid.New(),
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		PricePerNight: req.PricePerNight,
		PropertyType:  model.PropertyType(req.PropertyType),
		MaxGuests:     req.MaxGuests,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		HostID:        hostID,
		HasWifi:       req.HasWifi,
		HasParking:    req.HasParking,
		HasKitchen:    req.HasKitchen,
		HasPool:       req.HasPool,
		AllowsPets:    req.AllowsPets,
		IsAvailable:   available,
	}
	if err := s.r.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *service) List(ctx context.Context) ([]model.Listing, error) {
	return s.r.List(ctx)
}

func (s *service) Detail(ctx context.Context, id uuid.UUID) (*model.Listing, error) {
	l, err := s.r.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, makeErr(ErrNotFound, "listing not found")
		}
		return nil, err
	}
	reviews, err := s.rr.ListByListing(ctx, id)
	if err != nil {
		return nil, err
	}
	l.Reviews = reviews
	l.AverageRating = AverageRating(reviews)
	l.TotalReviews = len(reviews)
	return l, nil
}

func (s *service) Update(ctx context.Context, hostID int64, id uuid.UUID, req model.UpdateListingReq) (*model.Listing, error) {
	if err := checkRate(req.PricePerNight); err != nil {
		return nil, err
	}
	if req.MaxGuests < 1 || req.MaxGuests > 20 {
		return nil, makeErr(ErrBadInput, "Max guests must be between 1 and 20")
	}

	l, err := s.r.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, makeErr(ErrNotFound, "listing not found")
		}
		return nil, err
	}
	if l.HostID != hostID {
		return nil, makeErr(ErrNotOwner, "listing belongs to another host")
	}

	l.Title = req.Title
	l.Description = req.Description
	l.Location = req.Location
	l.PricePerNight = req.PricePerNight
	l.PropertyType = model.PropertyType(req.PropertyType)
	l.MaxGuests = req.MaxGuests
	l.Bedrooms = req.Bedrooms
	l.Bathrooms = req.Bathrooms
	l.HasWifi = req.HasWifi
	l.HasParking = req.HasParking
	l.HasKitchen = req.HasKitchen
	l.HasPool = req.HasPool
	l.AllowsPets = req.AllowsPets
	l.IsAvailable = req.IsAvailable

	if err := s.r.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// Delete removes a host's listing; the store cascades the delete to the
// listing's bookings and reviews.
func (s *service) Delete(ctx context.Context, hostID int64, id uuid.UUID) error {
	l, err := s.r.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return makeErr(ErrNotFound, "listing not found")
		}
		return err
	}
	if l.HostID != hostID {
		return makeErr(ErrNotOwner, "listing belongs to another host")
	}

	ok, err := s.r.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return makeErr(ErrNotFound, "listing not found")
	}
	return nil
}
