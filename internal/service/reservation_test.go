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

type reservationDeps struct {
	reservations *mocks.MockReservationRepo
	roomTypes    *mocks.MockRoomTypeRepo
	properties   *mocks.MockPropertyRepo
	locker       *mocks.MockRoomTypeLocker
	notifier     *mocks.MockReservationNotifier
}

func newReservationService(t *testing.T) (*ReservationService, reservationDeps) {
	t.Helper()
	deps := reservationDeps{
		reservations: mocks.NewMockReservationRepo(t),
		roomTypes:    mocks.NewMockRoomTypeRepo(t),
		properties:   mocks.NewMockPropertyRepo(t),
		locker:       mocks.NewMockRoomTypeLocker(t),
		notifier:     mocks.NewMockReservationNotifier(t),
	}
	svc := NewReservationService(
		deps.reservations, deps.roomTypes, deps.properties, deps.locker, deps.notifier,
		newTestLogger(t), Limits{},
	)
	return svc, deps
}

func createInput(from, nights, guests int) domain.CreateReservationInput {
	return domain.CreateReservationInput{
		GuestID:        "g1",
		PropertyID:     "p1",
		RoomTypeID:     "rt1",
		Source:         "walk-in",
		CheckIn:        d0.AddDays(from),
		CheckOut:       d0.AddDays(from + nights),
		NumberOfGuests: guests,
	}
}

func TestReservationService_Create_AssignsFreeBedsAndNotifies(t *testing.T) {
	svc, deps := newReservationService(t)
	property := &domain.Property{ID: "p1", Name: "Sea Hostel"}
	done := make(chan struct{})

	deps.roomTypes.EXPECT().GetByID(mock.Anything, "rt1").Return(dormRoomType("a", "b", "c"), nil)
	expectLock(deps.locker, "rt1")
	deps.reservations.EXPECT().ListActiveOverlapping(mock.Anything, "rt1", d0, d0.AddDays(2)).
		Return([]*domain.Reservation{booking("r0", 1, 3, 1, "a")}, nil)
	deps.reservations.EXPECT().Create(mock.Anything, mock.MatchedBy(func(r *domain.Reservation) bool {
		return r.Status == domain.ReservationStatusConfirm &&
			r.PaymentStatus == domain.PaymentStatusPending &&
			r.TotalPrice == 100 &&
			r.Currency == "EUR"
	})).Return(nil)
	deps.reservations.EXPECT().SetAssignedBeds(mock.Anything, mock.AnythingOfType("string"), []string{"b", "c"}).Return(nil)
	deps.properties.EXPECT().GetByID(mock.Anything, "p1").Return(property, nil)
	deps.notifier.EXPECT().NotifyReservationCreated(mock.Anything, property, mock.Anything).
		Run(func(context.Context, *domain.Property, *domain.Reservation) { close(done) }).
		Return()

	r, err := svc.Create(context.Background(), createInput(0, 2, 2))

	require.NoError(t, err)
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, []string{"b", "c"}, r.AssignedBeds)
	assert.Equal(t, 100.0, r.TotalPrice)

	waitFor(t, done)
}

func TestReservationService_Create_UsesProvidedPriceAndStatus(t *testing.T) {
	svc, deps := newReservationService(t)
	done := make(chan struct{})

	deps.roomTypes.EXPECT().GetByID(mock.Anything, "rt1").Return(dormRoomType("a"), nil)
	expectLock(deps.locker, "rt1")
	deps.reservations.EXPECT().ListActiveOverlapping(mock.Anything, "rt1", d0, d0.AddDays(1)).Return(nil, nil)
	deps.reservations.EXPECT().Create(mock.Anything, mock.MatchedBy(func(r *domain.Reservation) bool {
		return r.TotalPrice == 12.5 && r.Status == domain.ReservationStatusProvisional &&
			r.PaymentStatus == domain.PaymentStatusPaid
	})).Return(nil)
	deps.reservations.EXPECT().SetAssignedBeds(mock.Anything, mock.Anything, []string{"a"}).Return(nil)
	deps.properties.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.Property{ID: "p1"}, nil)
	deps.notifier.EXPECT().NotifyReservationCreated(mock.Anything, mock.Anything, mock.Anything).
		Run(func(context.Context, *domain.Property, *domain.Reservation) { close(done) }).
		Return()

	in := createInput(0, 1, 1)
	in.TotalPrice = ptr(12.5)
	in.Status = domain.ReservationStatusProvisional
	in.PaymentStatus = domain.PaymentStatusPaid

	r, err := svc.Create(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, 12.5, r.TotalPrice)
	waitFor(t, done)
}

func TestReservationService_Create_NoAvailability(t *testing.T) {
	svc, deps := newReservationService(t)

	deps.roomTypes.EXPECT().GetByID(mock.Anything, "rt1").Return(dormRoomType("a", "b"), nil)
	expectLock(deps.locker, "rt1")
	deps.reservations.EXPECT().ListActiveOverlapping(mock.Anything, "rt1", d0, d0.AddDays(3)).
		Return([]*domain.Reservation{booking("r1", 2, 1, 2, "a", "b")}, nil)

	_, err := svc.Create(context.Background(), createInput(0, 3, 1))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoAvailability)
	assert.Contains(t, err.Error(), d0.AddDays(2).String())
}

func TestReservationService_Create_RoomTypeOfAnotherProperty(t *testing.T) {
	svc, deps := newReservationService(t)

	rt := dormRoomType("a")
	rt.PropertyID = "p2"
	deps.roomTypes.EXPECT().GetByID(mock.Anything, "rt1").Return(rt, nil)

	_, err := svc.Create(context.Background(), createInput(0, 1, 1))

	assert.ErrorIs(t, err, domain.ErrRoomTypeNotFound)
}

func TestReservationService_Create_Validation(t *testing.T) {
	svc, _ := newReservationService(t)

	in := createInput(0, 1, 1)
	in.GuestID = ""
	_, err := svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrValidation)

	in = createInput(0, 1, 1)
	in.Status = domain.ReservationStatusCancelled
	_, err = svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrValidation)

	in = createInput(3, -1, 1)
	_, err = svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestReservationService_Create_BedStoreFailureKeepsReservation(t *testing.T) {
	svc, deps := newReservationService(t)
	done := make(chan struct{})

	deps.roomTypes.EXPECT().GetByID(mock.Anything, "rt1").Return(dormRoomType("a"), nil)
	expectLock(deps.locker, "rt1")
	deps.reservations.EXPECT().ListActiveOverlapping(mock.Anything, "rt1", d0, d0.AddDays(1)).Return(nil, nil)
	deps.reservations.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	deps.reservations.EXPECT().SetAssignedBeds(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("db down"))
	deps.properties.EXPECT().GetByID(mock.Anything, "p1").Return(nil, domain.ErrPropertyNotFound).
		Run(func(context.Context, string) { close(done) })

	r, err := svc.Create(context.Background(), createInput(0, 1, 1))

	require.NoError(t, err)
	assert.Empty(t, r.AssignedBeds)
	waitFor(t, done)
}

func TestReservationService_UpdateStay_IgnoresOwnDemand(t *testing.T) {
	svc, deps := newReservationService(t)

	current := booking("r1", 0, 3, 1, "a")
	deps.reservations.EXPECT().GetByID(mock.Anything, "r1").Return(current, nil).Times(2)
	expectLock(deps.locker, "rt1")
	deps.roomTypes.EXPECT().GetByID(mock.Anything, "rt1").Return(dormRoomType("a"), nil)
	deps.reservations.EXPECT().ListActiveOverlapping(mock.Anything, "rt1", d0.AddDays(1), d0.AddDays(4)).
		Return([]*domain.Reservation{current}, nil)

	in := domain.UpdateStayInput{CheckIn: d0.AddDays(1), CheckOut: d0.AddDays(4), NumberOfGuests: 1}
	deps.reservations.EXPECT().UpdateStay(mock.Anything, "r1", in, 75.0).Return(nil)
	deps.reservations.EXPECT().SetAssignedBeds(mock.Anything, "r1", []string{"a"}).Return(nil)

	r, err := svc.UpdateStay(context.Background(), "r1", in)

	require.NoError(t, err)
	assert.Equal(t, d0.AddDays(1), r.CheckIn)
	assert.Equal(t, d0.AddDays(4), r.CheckOut)
	assert.Equal(t, 75.0, r.TotalPrice)
	assert.Equal(t, []string{"a"}, r.AssignedBeds)
	assert.Equal(t, d0, current.CheckIn, "stored reservation must not be mutated")
}

func TestReservationService_UpdateStay_NoAvailability(t *testing.T) {
	svc, deps := newReservationService(t)

	current := booking("r1", 0, 1, 1, "a")
	other := booking("r2", 1, 2, 1, "b")
	deps.reservations.EXPECT().GetByID(mock.Anything, "r1").Return(current, nil).Times(2)
	expectLock(deps.locker, "rt1")
	deps.roomTypes.EXPECT().GetByID(mock.Anything, "rt1").Return(dormRoomType("a", "b"), nil)
	deps.reservations.EXPECT().ListActiveOverlapping(mock.Anything, "rt1", d0, d0.AddDays(2)).
		Return([]*domain.Reservation{current, other}, nil)

	_, err := svc.UpdateStay(context.Background(), "r1",
		domain.UpdateStayInput{CheckIn: d0, CheckOut: d0.AddDays(2), NumberOfGuests: 2})

	assert.ErrorIs(t, err, domain.ErrNoAvailability)
}

func TestReservationService_UpdateStay_InactiveReservation(t *testing.T) {
	svc, deps := newReservationService(t)

	cancelled := booking("r1", 0, 1, 1)
	cancelled.Status = domain.ReservationStatusCancelled
	deps.reservations.EXPECT().GetByID(mock.Anything, "r1").Return(cancelled, nil).Times(2)
	expectLock(deps.locker, "rt1")

	_, err := svc.UpdateStay(context.Background(), "r1",
		domain.UpdateStayInput{CheckIn: d0, CheckOut: d0.AddDays(1), NumberOfGuests: 1})

	assert.ErrorIs(t, err, domain.ErrIllegalTransition)
}

func TestReservationService_UpdateStatus_CancelNotifies(t *testing.T) {
	svc, deps := newReservationService(t)
	property := &domain.Property{ID: "p1"}
	done := make(chan struct{})

	deps.reservations.EXPECT().GetByID(mock.Anything, "r1").Return(booking("r1", 0, 2, 1, "a"), nil)
	deps.reservations.EXPECT().
		UpdateStatus(mock.Anything, "r1", domain.ReservationStatusConfirm, domain.ReservationStatusCancelled).
		Return(nil)
	deps.properties.EXPECT().GetByID(mock.Anything, "p1").Return(property, nil)
	deps.notifier.EXPECT().NotifyReservationCancelled(mock.Anything, property, mock.Anything).
		Run(func(context.Context, *domain.Property, *domain.Reservation) { close(done) }).
		Return()

	r, err := svc.UpdateStatus(context.Background(), "r1", domain.ReservationStatusCancelled)

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusCancelled, r.Status)
	assert.Nil(t, r.ActiveBeds())
	waitFor(t, done)
}

func TestReservationService_UpdateStatus_ProvisionalToConfirm(t *testing.T) {
	svc, deps := newReservationService(t)

	provisional := booking("r1", 0, 2, 1)
	provisional.Status = domain.ReservationStatusProvisional
	deps.reservations.EXPECT().GetByID(mock.Anything, "r1").Return(provisional, nil)
	deps.reservations.EXPECT().
		UpdateStatus(mock.Anything, "r1", domain.ReservationStatusProvisional, domain.ReservationStatusConfirm).
		Return(nil)

	r, err := svc.UpdateStatus(context.Background(), "r1", domain.ReservationStatusConfirm)

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusConfirm, r.Status)
}

func TestReservationService_UpdateStatus_IllegalTransition(t *testing.T) {
	svc, deps := newReservationService(t)

	noShow := booking("r1", 0, 1, 1)
	noShow.Status = domain.ReservationStatusNoShow
	deps.reservations.EXPECT().GetByID(mock.Anything, "r1").Return(noShow, nil)

	_, err := svc.UpdateStatus(context.Background(), "r1", domain.ReservationStatusConfirm)

	assert.ErrorIs(t, err, domain.ErrIllegalTransition)
}

func TestReservationService_UpdateStatus_UnknownStatus(t *testing.T) {
	svc, _ := newReservationService(t)

	_, err := svc.UpdateStatus(context.Background(), "r1", "checked_in")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_UpdateStatus_LostRace(t *testing.T) {
	svc, deps := newReservationService(t)

	deps.reservations.EXPECT().GetByID(mock.Anything, "r1").Return(booking("r1", 0, 1, 1), nil)
	deps.reservations.EXPECT().UpdateStatus(mock.Anything, "r1", mock.Anything, mock.Anything).
		Return(domain.ErrConcurrentModification)

	_, err := svc.UpdateStatus(context.Background(), "r1", domain.ReservationStatusNoShow)

	assert.ErrorIs(t, err, domain.ErrConcurrentModification)
}

func TestReservationService_UpdatePaymentStatus_AllowedOnCancelled(t *testing.T) {
	svc, deps := newReservationService(t)

	cancelled := booking("r1", 0, 1, 1)
	cancelled.Status = domain.ReservationStatusCancelled
	deps.reservations.EXPECT().GetByID(mock.Anything, "r1").Return(cancelled, nil)
	deps.reservations.EXPECT().UpdatePaymentStatus(mock.Anything, "r1", domain.PaymentStatusRefunded).Return(nil)

	r, err := svc.UpdatePaymentStatus(context.Background(), "r1", domain.PaymentStatusRefunded)

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusRefunded, r.PaymentStatus)
}

func TestReservationService_UpdatePaymentStatus_Unknown(t *testing.T) {
	svc, _ := newReservationService(t)

	_, err := svc.UpdatePaymentStatus(context.Background(), "r1", "cancelled")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Get_NotFound(t *testing.T) {
	svc, deps := newReservationService(t)

	deps.reservations.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrReservationNotFound)

	_, err := svc.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestReservationService_AssignBedsForDay(t *testing.T) {
	svc, deps := newReservationService(t)

	holder := booking("r1", 0, 3, 1, "a")
	single := booking("r2", 0, 2, 1)
	group := booking("r3", 0, 1, 2)

	deps.roomTypes.EXPECT().ListByProperty(mock.Anything, "p1").Return([]*domain.RoomType{dormRoomType("a", "b", "c")}, nil)
	expectLock(deps.locker, "rt1")
	deps.reservations.EXPECT().ListNeedingBeds(mock.Anything, "rt1", d0).
		Return([]*domain.Reservation{single, group}, nil)
	deps.reservations.EXPECT().ListActiveOverlapping(mock.Anything, "rt1", d0, d0.AddDays(2)).
		Return([]*domain.Reservation{holder, single, group}, nil)
	deps.reservations.EXPECT().SetAssignedBeds(mock.Anything, "r2", []string{"b"}).Return(nil)

	report, err := svc.AssignBedsForDay(context.Background(), "p1", d0)

	require.NoError(t, err)
	assert.Equal(t, "p1", report.PropertyID)
	assert.Equal(t, []string{"r2"}, report.Assigned)
	require.Contains(t, report.Failed, "r3")
	assert.ErrorIs(t, report.Failed["r3"], domain.ErrInsufficientBeds)
	assert.Empty(t, report.FailedRoomTypes)
}

func TestReservationService_AssignBedsForDay_RoomTypeFailureIsReported(t *testing.T) {
	svc, deps := newReservationService(t)

	deps.roomTypes.EXPECT().ListByProperty(mock.Anything, "p1").Return([]*domain.RoomType{dormRoomType("a")}, nil)
	expectLock(deps.locker, "rt1")
	deps.reservations.EXPECT().ListNeedingBeds(mock.Anything, "rt1", d0).Return(nil, errors.New("db down"))

	report, err := svc.AssignBedsForDay(context.Background(), "p1", d0)

	require.NoError(t, err)
	assert.Contains(t, report.FailedRoomTypes, "rt1")
}

func TestReservationService_AssignBedsForAllProperties(t *testing.T) {
	svc, deps := newReservationService(t)

	deps.properties.EXPECT().ListIDs(mock.Anything).Return([]string{"p1", "p2"}, nil)
	deps.roomTypes.EXPECT().ListByProperty(mock.Anything, "p1").Return(nil, errors.New("db down"))
	deps.roomTypes.EXPECT().ListByProperty(mock.Anything, "p2").Return(nil, nil)

	reports, err := svc.AssignBedsForAllProperties(context.Background(), d0)

	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "p2", reports[0].PropertyID)
}
