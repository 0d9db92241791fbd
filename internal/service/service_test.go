package service

import (
	"testing"
	"time"

	"github.com/stpnv0/HostelBooker/internal/calendar"
	"github.com/stpnv0/HostelBooker/internal/domain"
	"github.com/stpnv0/HostelBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

var d0 = calendar.New(2024, time.September, 2)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func expectLock(locker *mocks.MockRoomTypeLocker, roomTypeID string) {
	locker.EXPECT().Lock(mock.Anything, roomTypeID).Return(func() {}, nil)
}

func dormRoomType(beds ...string) *domain.RoomType {
	return &domain.RoomType{
		ID:           "rt1",
		PropertyID:   "p1",
		Kind:         domain.RoomKindDorm,
		MaxOccupancy: len(beds),
		Inventory:    1,
		BaseRate:     25,
		Currency:     "EUR",
		Products:     []domain.Product{{ID: "room1", Beds: beds}},
		Version:      1,
	}
}

func booking(id string, from, nights, guests int, beds ...string) *domain.Reservation {
	return &domain.Reservation{
		ID:             id,
		PropertyID:     "p1",
		RoomTypeID:     "rt1",
		CheckIn:        d0.AddDays(from),
		CheckOut:       d0.AddDays(from + nights),
		NumberOfGuests: guests,
		Status:         domain.ReservationStatusConfirm,
		PaymentStatus:  domain.PaymentStatusPending,
		AssignedBeds:   beds,
	}
}

func waitFor(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("notification was not sent")
	}
}
