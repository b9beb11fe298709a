package listingsvc

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/francistate/alx-travel-app-0x00/model"
)

type repoMock struct {
	createFn func(ctx context.Context, l *model.Listing) error
	listFn   func(ctx context.Context) ([]model.Listing, error)
	byIDFn   func(ctx context.Context, id uuid.UUID) (*model.Listing, error)
	updateFn func(ctx context.Context, l *model.Listing) error
	deleteFn func(ctx context.Context, id uuid.UUID) (bool, error)
}

func (m *repoMock) Create(ctx context.Context, l *model.Listing) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, l)
}
func (m *repoMock) List(ctx context.Context) ([]model.Listing, error) { return m.listFn(ctx) }
func (m *repoMock) ByID(ctx context.Context, id uuid.UUID) (*model.Listing, error) {
	return m.byIDFn(ctx, id)
}
func (m *repoMock) Update(ctx context.Context, l *model.Listing) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(ctx, l)
}
func (m *repoMock) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.deleteFn == nil {
		return true, nil
	}
	return m.deleteFn(ctx, id)
}

type reviewsMock struct {
	listFn func(ctx context.Context, listingID uuid.UUID) ([]model.Review, error)
}

func (m *reviewsMock) ListByListing(ctx context.Context, listingID uuid.UUID) ([]model.Review, error) {
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(ctx, listingID)
}

func validCreateReq() model.CreateListingReq {
	return model.CreateListingReq{
		Title:         "Cozy Downtown Apartment",
		Description:   "Beautiful apartment in the heart of the city.",
		Location:      "New York, NY",
		PricePerNight: 150.00,
		PropertyType:  "apartment",
		MaxGuests:     4,
		Bedrooms:      2,
		Bathrooms:     1,
	}
}

func TestAverageRating(t *testing.T) {
	require.Equal(t, 0.0, AverageRating(nil))
	require.Equal(t, 0.0, AverageRating([]model.Review{}))

	reviews := []model.Review{{Rating: 3}, {Rating: 4}, {Rating: 5}}
	require.Equal(t, 4.0, AverageRating(reviews))

	require.Equal(t, 2.5, AverageRating([]model.Review{{Rating: 2}, {Rating: 3}}))
}

func TestCreate_SetsHostAndDefaults(t *testing.T) {
	var created *model.Listing
	m := &repoMock{
		createFn: func(ctx context.Context, l *model.Listing) error {
			created = l
			return nil
		},
	}
	svc := New(m, &reviewsMock{})

	l, err := svc.Create(context.Background(), 42, validCreateReq())
	require.NoError(t, err)
	require.NotNil(t, created)
	require.Equal(t, int64(42), l.HostID)
	require.True(t, l.IsAvailable)
	require.NotEqual(t, uuid.Nil, l.ID)
	require.Equal(t, model.PropertyApartment, l.PropertyType)
}

func TestCreate_RateBounds(t *testing.T) {
	svc := New(&repoMock{}, &reviewsMock{})

	req := validCreateReq()
	req.PricePerNight = -1
	_, err := svc.Create(context.Background(), 42, req)
	require.Error(t, err)
	require.Equal(t, ErrBadInput, Code(err))

	req.PricePerNight = 10001
	_, err = svc.Create(context.Background(), 42, req)
	require.Error(t, err)
	require.Equal(t, ErrBadInput, Code(err))
}

func TestDetail_Aggregates(t *testing.T) {
	id := uuid.New()
	m := &repoMock{
		byIDFn: func(ctx context.Context, got uuid.UUID) (*model.Listing, error) {
			require.Equal(t, id, got)
			return &model.Listing{ID: id, HostID: 42}, nil
		},
	}
	rm := &reviewsMock{
		listFn: func(ctx context.Context, listingID uuid.UUID) ([]model.Review, error) {
			return []model.Review{{Rating: 3}, {Rating: 4}, {Rating: 5}}, nil
		},
	}
	svc := New(m, rm)

	l, err := svc.Detail(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, 4.0, l.AverageRating)
	require.Equal(t, 3, l.TotalReviews)
	require.Len(t, l.Reviews, 3)
}

func TestDetail_NoReviews(t *testing.T) {
	id := uuid.New()
	m := &repoMock{
		byIDFn: func(ctx context.Context, got uuid.UUID) (*model.Listing, error) {
			return &model.Listing{ID: id}, nil
		},
	}
	svc := New(m, &reviewsMock{})

	l, err := svc.Detail(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, 0.0, l.AverageRating)
	require.Equal(t, 0, l.TotalReviews)
}

func TestDetail_NotFound(t *testing.T) {
	m := &repoMock{
		byIDFn: func(ctx context.Context, id uuid.UUID) (*model.Listing, error) {
			return nil, pgx.ErrNoRows
		},
	}
	svc := New(m, &reviewsMock{})

	_, err := svc.Detail(context.Background(), uuid.New())
	require.Error(t, err)
	require.Equal(t, ErrNotFound, Code(err))
}

func TestUpdate_OwnerOnly(t *testing.T) {
	id := uuid.New()
	m := &repoMock{
		byIDFn: func(ctx context.Context, got uuid.UUID) (*model.Listing, error) {
			return &model.Listing{ID: id, HostID: 42}, nil
		},
	}
	svc := New(m, &reviewsMock{})

	req := model.UpdateListingReq{
		Title:         "Updated Title",
		Description:   "Updated description of the place.",
		Location:      "New York, NY",
		PricePerNight: 175.00,
		PropertyType:  "apartment",
		MaxGuests:     4,
		IsAvailable:   true,
	}

	_, err := svc.Update(context.Background(), 13, id, req)
	require.Error(t, err)
	require.Equal(t, ErrNotOwner, Code(err))

	l, err := svc.Update(context.Background(), 42, id, req)
	require.NoError(t, err)
	require.Equal(t, "Updated Title", l.Title)
	require.Equal(t, 175.00, l.PricePerNight)
}

func TestDelete_OwnerOnly(t *testing.T) {
	id := uuid.New()
	deleted := false
	m := &repoMock{
		byIDFn: func(ctx context.Context, got uuid.UUID) (*model.Listing, error) {
			return &model.Listing{ID: id, HostID: 42}, nil
		},
		deleteFn: func(ctx context.Context, got uuid.UUID) (bool, error) {
			deleted = true
			return true, nil
		},
	}
	svc := New(m, &reviewsMock{})

	err := svc.Delete(context.Background(), 13, id)
	require.Error(t, err)
	require.Equal(t, ErrNotOwner, Code(err))
	require.False(t, deleted)

	require.NoError(t, svc.Delete(context.Background(), 42, id))
	require.True(t, deleted)
}
