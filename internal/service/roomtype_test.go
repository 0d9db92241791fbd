package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stpnv0/HostelBooker/internal/domain"
	"github.com/stpnv0/HostelBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type roomTypeDeps struct {
	repo         *mocks.MockRoomTypeRepo
	reservations *mocks.MockReservationRepo
	locker       *mocks.MockRoomTypeLocker
}

func newRoomTypeService(t *testing.T, limits Limits) (*RoomTypeService, roomTypeDeps) {
	t.Helper()
	deps := roomTypeDeps{
		repo:         mocks.NewMockRoomTypeRepo(t),
		reservations: mocks.NewMockReservationRepo(t),
		locker:       mocks.NewMockRoomTypeLocker(t),
	}
	svc := NewRoomTypeService(deps.repo, deps.reservations, deps.locker, newTestLogger(t), limits)
	return svc, deps
}

func ptr[T any](v T) *T { return &v }

func TestRoomTypeService_Create_DormBeds(t *testing.T) {
	svc, deps := newRoomTypeService(t, Limits{})

	deps.repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(rt *domain.RoomType) bool {
		return rt.Version == 1 && rt.PropertyID == "p1"
	})).Return(nil)

	rt, err := svc.Create(context.Background(), "p1", domain.CreateRoomTypeInput{
		Description:  "6-bed mixed dorm",
		Kind:         domain.RoomKindDorm,
		MaxOccupancy: 6,
		Inventory:    2,
		BaseRate:     18,
		Currency:     "EUR",
	})

	require.NoError(t, err)
	require.Len(t, rt.Products, 2)
	assert.Len(t, rt.Products[0].Beds, 6)
	assert.Equal(t, 12, rt.BedCount())

	seen := make(map[string]bool)
	for _, bed := range rt.Beds() {
		assert.False(t, seen[bed], "duplicate bed id %s", bed)
		seen[bed] = true
	}
}

func TestRoomTypeService_Create_PrivateRoomsHaveOneBed(t *testing.T) {
	svc, deps := newRoomTypeService(t, Limits{})

	deps.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	rt, err := svc.Create(context.Background(), "p1", domain.CreateRoomTypeInput{
		Description:  "Double room",
		Kind:         domain.RoomKindPrivate,
		MaxOccupancy: 2,
		Inventory:    3,
		BaseRate:     60,
		Currency:     "EUR",
	})

	require.NoError(t, err)
	assert.Len(t, rt.Products, 3)
	assert.Equal(t, 3, rt.BedCount())
}

func TestRoomTypeService_Create_Validation(t *testing.T) {
	svc, _ := newRoomTypeService(t, Limits{})

	_, err := svc.Create(context.Background(), "p1", domain.CreateRoomTypeInput{
		Description:  "Suite",
		Kind:         "suite",
		MaxOccupancy: 2,
		Inventory:    1,
		Currency:     "EUR",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRoomTypeService_Create_OverlappingInitialOverrides(t *testing.T) {
	svc, _ := newRoomTypeService(t, Limits{})

	_, err := svc.Create(context.Background(), "p1", domain.CreateRoomTypeInput{
		Description:  "Dorm",
		Kind:         domain.RoomKindDorm,
		MaxOccupancy: 4,
		Inventory:    1,
		Currency:     "EUR",
		Overrides: []domain.OverrideInput{
			{StartDate: d0, EndDate: d0.AddDays(5), CustomRate: ptr(30.0)},
			{StartDate: d0.AddDays(5), EndDate: d0.AddDays(9), CustomRate: ptr(40.0)},
		},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestRoomTypeService_InsertOverride_SplitsExistingRange(t *testing.T) {
	svc, deps := newRoomTypeService(t, Limits{})

	rt := dormRoomType("a", "b")
	rt.Version = 3
	rt.RatesAndAvailability = []domain.AvailabilityRange{
		{ID: "old", StartDate: d0, EndDate: d0.AddDays(19), CustomRate: ptr(50.0)},
	}

	expectLock(deps.locker, "rt1")
	deps.repo.EXPECT().GetByID(mock.Anything, "rt1").Return(rt, nil)
	deps.repo.EXPECT().UpdateTimeline(mock.Anything, "rt1", int64(3),
		mock.MatchedBy(func(ranges []domain.AvailabilityRange) bool { return len(ranges) == 3 }),
	).Return(nil)

	persisted, err := svc.InsertOverride(context.Background(), "rt1", domain.OverrideInput{
		StartDate:  d0.AddDays(4),
		EndDate:    d0.AddDays(9),
		CustomRate: ptr(80.0),
	})

	require.NoError(t, err)
	require.Len(t, persisted, 3)
	assert.Equal(t, d0.AddDays(3), persisted[0].EndDate)
	assert.Equal(t, 80.0, *persisted[1].CustomRate)
	assert.Equal(t, d0.AddDays(10), persisted[2].StartDate)
}

func TestRoomTypeService_InsertOverride_BelowDemand(t *testing.T) {
	svc, deps := newRoomTypeService(t, Limits{})

	expectLock(deps.locker, "rt1")
	deps.reservations.EXPECT().
		ListActiveOverlapping(mock.Anything, "rt1", d0, d0.AddDays(3)).
		Return([]*domain.Reservation{booking("r1", 0, 2, 2), booking("r2", 1, 1, 1)}, nil)

	_, err := svc.InsertOverride(context.Background(), "rt1", domain.OverrideInput{
		StartDate:          d0,
		EndDate:            d0.AddDays(2),
		CustomAvailability: ptr(2),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAvailabilityBelowDemand)
	var below *domain.AvailabilityBelowDemandError
	require.True(t, errors.As(err, &below))
	assert.Equal(t, 3, below.Minimum)
	assert.Equal(t, 2, below.Requested)
}

func TestRoomTypeService_InsertOverride_AvailabilityCoveringDemand(t *testing.T) {
	svc, deps := newRoomTypeService(t, Limits{})

	expectLock(deps.locker, "rt1")
	deps.reservations.EXPECT().
		ListActiveOverlapping(mock.Anything, "rt1", d0, d0.AddDays(1)).
		Return([]*domain.Reservation{booking("r1", 0, 2, 2)}, nil)
	deps.repo.EXPECT().GetByID(mock.Anything, "rt1").Return(dormRoomType("a", "b", "c"), nil)
	deps.repo.EXPECT().UpdateTimeline(mock.Anything, "rt1", int64(1), mock.Anything).Return(nil)

	persisted, err := svc.InsertOverride(context.Background(), "rt1", domain.OverrideInput{
		StartDate:          d0,
		EndDate:            d0,
		CustomAvailability: ptr(2),
	})

	require.NoError(t, err)
	assert.Len(t, persisted, 1)
}

func TestRoomTypeService_InsertOverride_RetriesVersionConflict(t *testing.T) {
	svc, deps := newRoomTypeService(t, Limits{})

	stale := dormRoomType("a")
	fresh := dormRoomType("a")
	fresh.Version = 2
	fresh.RatesAndAvailability = []domain.AvailabilityRange{
		{ID: "x", StartDate: d0.AddDays(1), EndDate: d0.AddDays(1), CustomRate: ptr(10.0)},
	}

	expectLock(deps.locker, "rt1")
	deps.repo.EXPECT().GetByID(mock.Anything, "rt1").Return(stale, nil).Once()
	deps.repo.EXPECT().GetByID(mock.Anything, "rt1").Return(fresh, nil).Once()
	deps.repo.EXPECT().UpdateTimeline(mock.Anything, "rt1", int64(1), mock.Anything).
		Return(domain.ErrVersionConflict).Once()
	deps.repo.EXPECT().UpdateTimeline(mock.Anything, "rt1", int64(2),
		mock.MatchedBy(func(ranges []domain.AvailabilityRange) bool { return len(ranges) == 1 }),
	).Return(nil).Once()

	persisted, err := svc.InsertOverride(context.Background(), "rt1", domain.OverrideInput{
		StartDate:  d0,
		EndDate:    d0.AddDays(2),
		CustomRate: ptr(15.0),
	})

	require.NoError(t, err)
	assert.Len(t, persisted, 1)
}

func TestRoomTypeService_InsertOverride_RetryBudgetExhausted(t *testing.T) {
	svc, deps := newRoomTypeService(t, Limits{TimelineMaxRetries: 2})

	expectLock(deps.locker, "rt1")
	deps.repo.EXPECT().GetByID(mock.Anything, "rt1").Return(dormRoomType("a"), nil).Times(2)
	deps.repo.EXPECT().UpdateTimeline(mock.Anything, "rt1", int64(1), mock.Anything).
		Return(domain.ErrVersionConflict).Times(2)

	_, err := svc.InsertOverride(context.Background(), "rt1", domain.OverrideInput{
		StartDate:  d0,
		EndDate:    d0,
		CustomRate: ptr(15.0),
	})

	assert.ErrorIs(t, err, domain.ErrConcurrentModification)
}

func TestRoomTypeService_InsertOverride_LockTimeout(t *testing.T) {
	svc, deps := newRoomTypeService(t, Limits{})

	deps.locker.EXPECT().Lock(mock.Anything, "rt1").Return(nil, domain.ErrConcurrentModification)

	_, err := svc.InsertOverride(context.Background(), "rt1", domain.OverrideInput{
		StartDate: d0,
		EndDate:   d0,
	})

	assert.ErrorIs(t, err, domain.ErrConcurrentModification)
}

func TestRoomTypeService_InsertOverride_InvalidRange(t *testing.T) {
	svc, _ := newRoomTypeService(t, Limits{})

	_, err := svc.InsertOverride(context.Background(), "rt1", domain.OverrideInput{
		StartDate: d0.AddDays(3),
		EndDate:   d0,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestRoomTypeService_ActiveRangeFor(t *testing.T) {
	svc, deps := newRoomTypeService(t, Limits{})

	rt := dormRoomType("a")
	rt.RatesAndAvailability = []domain.AvailabilityRange{
		{ID: "o1", StartDate: d0, EndDate: d0.AddDays(2), CustomRate: ptr(10.0)},
	}
	deps.repo.EXPECT().GetByID(mock.Anything, "rt1").Return(rt, nil)

	r, err := svc.ActiveRangeFor(context.Background(), "rt1", d0.AddDays(2))
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, "o1", r.ID)

	r, err = svc.ActiveRangeFor(context.Background(), "rt1", d0.AddDays(3))
	require.NoError(t, err)
	assert.Nil(t, r)
}
