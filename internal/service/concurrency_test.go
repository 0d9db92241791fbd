package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"testing"

	"github.com/stpnv0/HostelBooker/internal/calendar"
	"github.com/stpnv0/HostelBooker/internal/domain"
	"github.com/stpnv0/HostelBooker/internal/lock"
	"github.com/stpnv0/HostelBooker/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory stores. Every read hands out a copy so callers race on their own
// values, the way rows from the database behave.

type memRoomTypes struct {
	mu    sync.Mutex
	items map[string]*domain.RoomType
}

func (m *memRoomTypes) Create(_ context.Context, rt *domain.RoomType) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[rt.ID] = cloneRoomType(rt)
	return nil
}

func (m *memRoomTypes) GetByID(_ context.Context, id string) (*domain.RoomType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rt, ok := m.items[id]
	if !ok {
		return nil, domain.ErrRoomTypeNotFound
	}
	return cloneRoomType(rt), nil
}

func (m *memRoomTypes) ListByProperty(_ context.Context, propertyID string) ([]*domain.RoomType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.RoomType
	for _, rt := range m.items {
		if rt.PropertyID == propertyID {
			out = append(out, cloneRoomType(rt))
		}
	}
	return out, nil
}

func (m *memRoomTypes) UpdateTimeline(_ context.Context, id string, expectedVersion int64, ranges []domain.AvailabilityRange) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rt, ok := m.items[id]
	if !ok {
		return domain.ErrRoomTypeNotFound
	}
	if rt.Version != expectedVersion {
		return fmt.Errorf("%w: room type %s", domain.ErrVersionConflict, id)
	}
	rt.RatesAndAvailability = slices.Clone(ranges)
	rt.Version++
	return nil
}

func cloneRoomType(rt *domain.RoomType) *domain.RoomType {
	c := *rt
	c.RatesAndAvailability = slices.Clone(rt.RatesAndAvailability)
	c.Products = make([]domain.Product, len(rt.Products))
	for i, p := range rt.Products {
		c.Products[i] = domain.Product{ID: p.ID, Beds: slices.Clone(p.Beds)}
	}
	return &c
}

type memReservations struct {
	mu    sync.Mutex
	items map[string]*domain.Reservation
}

func (m *memReservations) Create(_ context.Context, r *domain.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[r.ID] = cloneReservation(r)
	return nil
}

func (m *memReservations) GetByID(_ context.Context, id string) (*domain.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.items[id]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}
	return cloneReservation(r), nil
}

func (m *memReservations) ListActiveOverlapping(_ context.Context, roomTypeID string, from, to calendar.Day) ([]*domain.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Reservation
	for _, r := range m.items {
		if r.RoomTypeID == roomTypeID && r.Status.Active() && r.Intersects(from, to) {
			out = append(out, cloneReservation(r))
		}
	}
	return out, nil
}

func (m *memReservations) ListNeedingBeds(_ context.Context, roomTypeID string, day calendar.Day) ([]*domain.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Reservation
	for _, r := range m.items {
		if r.RoomTypeID == roomTypeID && r.Status.Active() && r.Occupies(day) && !r.FullyAssigned() {
			out = append(out, cloneReservation(r))
		}
	}
	return out, nil
}

func (m *memReservations) UpdateStay(_ context.Context, id string, in domain.UpdateStayInput, totalPrice float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.items[id]
	if !ok {
		return domain.ErrReservationNotFound
	}
	if !r.Status.Active() {
		return domain.ErrIllegalTransition
	}
	r.CheckIn, r.CheckOut, r.NumberOfGuests = in.CheckIn, in.CheckOut, in.NumberOfGuests
	r.TotalPrice = totalPrice
	r.AssignedBeds = nil
	return nil
}

func (m *memReservations) UpdateStatus(_ context.Context, id string, from, to domain.ReservationStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.items[id]
	if !ok {
		return domain.ErrReservationNotFound
	}
	if r.Status != from {
		return domain.ErrConcurrentModification
	}
	r.Status = to
	return nil
}

func (m *memReservations) UpdatePaymentStatus(_ context.Context, id string, status domain.PaymentStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.items[id]
	if !ok {
		return domain.ErrReservationNotFound
	}
	r.PaymentStatus = status
	return nil
}

func (m *memReservations) SetAssignedBeds(_ context.Context, id string, beds []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.items[id]
	if !ok {
		return domain.ErrReservationNotFound
	}
	r.AssignedBeds = slices.Clone(beds)
	return nil
}

func cloneReservation(r *domain.Reservation) *domain.Reservation {
	c := *r
	c.AssignedBeds = slices.Clone(r.AssignedBeds)
	return &c
}

type memProperties struct{}

func (memProperties) GetByID(_ context.Context, id string) (*domain.Property, error) {
	return &domain.Property{ID: id}, nil
}

func (memProperties) ListIDs(context.Context) ([]string, error) {
	return []string{"p1"}, nil
}

type discardNotifier struct{}

func (discardNotifier) NotifyReservationCreated(context.Context, *domain.Property, *domain.Reservation) {
}

func (discardNotifier) NotifyReservationCancelled(context.Context, *domain.Property, *domain.Reservation) {
}

// noLock lets every caller through so only the version check guards writes.
type noLock struct{}

func (noLock) Lock(context.Context, string) (func(), error) { return func() {}, nil }

type memStore struct {
	roomTypes    *memRoomTypes
	reservations *memReservations
}

func newMemStore(rt *domain.RoomType) memStore {
	s := memStore{
		roomTypes:    &memRoomTypes{items: make(map[string]*domain.RoomType)},
		reservations: &memReservations{items: make(map[string]*domain.Reservation)},
	}
	s.roomTypes.items[rt.ID] = cloneRoomType(rt)
	return s
}

func TestConcurrentCreate_LastBedGoesToOneGuest(t *testing.T) {
	store := newMemStore(dormRoomType("only-bed"))
	svc := NewReservationService(store.reservations, store.roomTypes, memProperties{}, lock.NewLocal(),
		discardNotifier{}, newTestLogger(t), Limits{})

	const attempts = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		refused   int
		other     []error
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(context.Background(), createInput(0, 2, 1))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, domain.ErrNoAvailability):
				refused++
			default:
				other = append(other, err)
			}
		}()
	}
	wg.Wait()

	assert.Empty(t, other)
	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, refused)

	booked, err := store.reservations.ListActiveOverlapping(context.Background(), "rt1", d0, d0.AddDays(2))
	require.NoError(t, err)
	require.Len(t, booked, 1)
	assert.Equal(t, []string{"only-bed"}, booked[0].AssignedBeds)
}

func TestCancelReleasesBedForRebooking(t *testing.T) {
	store := newMemStore(dormRoomType("a", "b"))
	svc := NewReservationService(store.reservations, store.roomTypes, memProperties{}, lock.NewLocal(),
		discardNotifier{}, newTestLogger(t), Limits{})
	ctx := context.Background()

	first, err := svc.Create(ctx, createInput(0, 3, 2))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, first.AssignedBeds)

	_, err = svc.Create(ctx, createInput(1, 1, 1))
	require.ErrorIs(t, err, domain.ErrNoAvailability)

	_, err = svc.UpdateStatus(ctx, first.ID, domain.ReservationStatusCancelled)
	require.NoError(t, err)

	second, err := svc.Create(ctx, createInput(1, 1, 2))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, second.AssignedBeds)
}

func TestConcurrentOverrides_KeepTimelineDisjoint(t *testing.T) {
	store := newMemStore(dormRoomType("a", "b"))
	svc := NewRoomTypeService(store.roomTypes, store.reservations, noLock{}, newTestLogger(t),
		Limits{TimelineMaxRetries: 20})

	const writers = 8
	var wg sync.WaitGroup
	errs := make([]error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			day := d0.AddDays(i * 2)
			_, errs[i] = svc.InsertOverride(context.Background(), "rt1", domain.OverrideInput{
				StartDate:  day,
				EndDate:    day,
				CustomRate: ptr(float64(100 + i)),
			})
		}()
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "writer %d", i)
	}

	rt, err := store.roomTypes.GetByID(context.Background(), "rt1")
	require.NoError(t, err)
	require.NoError(t, timeline.Validate(rt.RatesAndAvailability))
	assert.Len(t, rt.RatesAndAvailability, writers)
	assert.Equal(t, int64(1+writers), rt.Version)

	for i := 0; i < writers; i++ {
		r, ok := timeline.ActiveRangeFor(rt.RatesAndAvailability, d0.AddDays(i*2))
		require.True(t, ok)
		assert.Equal(t, float64(100+i), *r.CustomRate)
	}
}
