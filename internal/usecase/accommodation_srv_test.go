package usecase

import (
	"context"
	"testing"
	"time"

	"resort-admin/internal/data/entity"
	"resort-admin/internal/data/repository"
	"resort-admin/internal/dto/request"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAccommodationRepo struct {
	repository.AccommodationRepository
	items   map[uuid.UUID]*entity.Accommodation
	updated []*entity.Accommodation
}

func (f *fakeAccommodationRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Accommodation, error) {
	acc, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	clone := *acc
	return &clone, nil
}

func (f *fakeAccommodationRepo) Create(_ context.Context, acc *entity.Accommodation) error {
	f.items[acc.ID] = acc
	return nil
}

func (f *fakeAccommodationRepo) Update(_ context.Context, acc *entity.Accommodation) error {
	f.updated = append(f.updated, acc)
	return nil
}

func newTestAccommodationService(accs *fakeAccommodationRepo) *accommodationService {
	return &accommodationService{
		repo: &repository.Repository{Accommodation: accs},
		log:  zap.NewNop(),
		now:  func() time.Time { return fixedNow },
	}
}

func newAccommodationServiceWithMock(t *testing.T) (*accommodationService, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return &accommodationService{
		repo: repository.NewRepository(mock, zap.NewNop()),
		db:   mock,
		log:  zap.NewNop(),
		now:  func() time.Time { return fixedNow },
	}, mock
}

func TestAccommodationService_CreateAppliesDefaults(t *testing.T) {
	accs := &fakeAccommodationRepo{items: map[uuid.UUID]*entity.Accommodation{}}
	svc := newTestAccommodationService(accs)

	resp, err := svc.CreateAccommodation(context.Background(), &request.CreateAccommodationRequest{
		Name:        "Lake Villa",
		Description: "Private deck over the water",
		Type:        "villa",
		Price:       7500,
		Images:      []string{"/uploads/accommodation/a.webp", "/uploads/accommodation/b.webp"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Lake Villa", resp.Name)
	assert.Equal(t, entity.DefaultAvailableRooms, resp.AvailableRooms)
	assert.Equal(t, entity.DefaultCapacity, resp.Capacity)
	assert.Equal(t, 1, resp.Version)
	assert.True(t, resp.Available)
	assert.Equal(t, []string{}, resp.Features)
	require.NotNil(t, resp.ImageURL)
	assert.Equal(t, "/uploads/accommodation/a.webp", *resp.ImageURL)
	assert.Len(t, accs.items, 1)
}

func TestAccommodationService_CreateRequiresImages(t *testing.T) {
	svc := newTestAccommodationService(&fakeAccommodationRepo{})

	_, err := svc.CreateAccommodation(context.Background(), &request.CreateAccommodationRequest{
		Name:        "Tent",
		Description: "Canvas",
		Type:        "tent",
		Price:       900,
	})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "images")
}

func TestAccommodationService_UpdateMergesAmenities(t *testing.T) {
	id := uuid.New()
	accs := &fakeAccommodationRepo{items: map[uuid.UUID]*entity.Accommodation{
		id: {
			Base:  entity.NewBase(fixedNow.AddDate(0, -1, 0)),
			Title: "Garden Cottage",
			Price: 3000,
			Amenities: entity.Amenities{
				Type:     "cottage",
				Capacity: 3,
				Features: []string{"wifi"},
				Images:   []string{"/old.webp"},
				Version:  2,
			},
			AvailableRooms: 4,
			Available:      true,
		},
	}}
	accs.items[id].ID = id
	svc := newTestAccommodationService(accs)

	capacity := 4
	resp, err := svc.UpdateAccommodation(context.Background(), id.String(), &request.UpdateAccommodationRequest{
		Capacity: &capacity,
		Images:   []string{"/new.webp"},
	})
	require.NoError(t, err)

	assert.Equal(t, 4, resp.Capacity)
	assert.Equal(t, "cottage", resp.Type)
	assert.Equal(t, []string{"wifi"}, resp.Features)
	assert.Equal(t, 3, resp.Version)
	require.NotNil(t, resp.ImageURL)
	assert.Equal(t, "/new.webp", *resp.ImageURL)
	require.Len(t, accs.updated, 1)
	assert.Equal(t, fixedNow, accs.updated[0].UpdatedAt)
}

func TestAccommodationService_UpdateRejectsEmptyPatch(t *testing.T) {
	svc := newTestAccommodationService(&fakeAccommodationRepo{})

	_, err := svc.UpdateAccommodation(context.Background(), uuid.NewString(), &request.UpdateAccommodationRequest{})
	assert.ErrorIs(t, err, ErrValidation)
}

func expectInventoryLock(mock pgxmock.PgxPoolIface, id uuid.UUID, rooms int) {
	mock.ExpectQuery(`SELECT available_rooms FROM accommodations WHERE id = \$1 FOR UPDATE`).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"available_rooms"}).AddRow(rooms))
}

func TestAccommodationService_DeleteWithActiveBookings(t *testing.T) {
	svc, mock := newAccommodationServiceWithMock(t)
	id := uuid.New()

	mock.ExpectBegin()
	expectInventoryLock(mock, id, 4)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings`).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(2)))
	mock.ExpectRollback()

	err := svc.DeleteAccommodation(context.Background(), id.String())
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "cannot delete accommodation with 2 active booking(s)", Message(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccommodationService_DeleteLocksBeforeCounting(t *testing.T) {
	svc, mock := newAccommodationServiceWithMock(t)
	id := uuid.New()

	mock.ExpectBegin()
	expectInventoryLock(mock, id, 4)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings`).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectExec(`DELETE FROM accommodations WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	require.NoError(t, svc.DeleteAccommodation(context.Background(), id.String()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccommodationService_DeleteMissing(t *testing.T) {
	svc, mock := newAccommodationServiceWithMock(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT available_rooms FROM accommodations WHERE id = \$1 FOR UPDATE`).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	err := svc.DeleteAccommodation(context.Background(), id.String())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "accommodation not found", Message(err))
	assert.NoError(t, mock.ExpectationsWereMet())

	assert.ErrorIs(t, svc.DeleteAccommodation(context.Background(), "not-a-uuid"), ErrValidation)
}
