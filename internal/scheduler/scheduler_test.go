package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/HostelBooker/internal/calendar"
	"github.com/stpnv0/HostelBooker/internal/domain"
	"github.com/stpnv0/HostelBooker/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_AssignsBedsForToday(t *testing.T) {
	assigner := mocks.NewMockBedAssigner(t)
	log := newTestLogger(t)

	s := New(assigner, 50*time.Millisecond, log)
	day := calendar.New(2024, time.July, 1)
	s.today = func() calendar.Day { return day }

	reports := []*domain.BedAssignmentReport{
		{
			PropertyID: "p1",
			Day:        day,
			Assigned:   []string{"r1"},
			Failed:     map[string]error{"r2": domain.ErrInsufficientBeds},
		},
	}
	assigner.EXPECT().AssignBedsForAllProperties(mock.Anything, day).Return(reports, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(assigner.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	assigner := mocks.NewMockBedAssigner(t)
	log := newTestLogger(t)

	s := New(assigner, 50*time.Millisecond, log)

	assigner.EXPECT().AssignBedsForAllProperties(mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(assigner.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	assigner := mocks.NewMockBedAssigner(t)
	log := newTestLogger(t)

	s := New(assigner, time.Second, log)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	assigner := mocks.NewMockBedAssigner(t)
	log := newTestLogger(t)

	s := New(assigner, 30*time.Millisecond, log)

	assigner.EXPECT().AssignBedsForAllProperties(mock.Anything, mock.Anything).Return(nil, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(assigner.Calls), 3)
}
