package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/HostelBooker/internal/calendar"
	"github.com/stpnv0/HostelBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type bedAssigner interface {
	AssignBedsForAllProperties(ctx context.Context, day calendar.Day) ([]*domain.BedAssignmentReport, error)
}

// Scheduler periodically binds beds to today's reservations that still lack them.
type Scheduler struct {
	reservationService bedAssigner
	interval           time.Duration
	today              func() calendar.Day
	logger             logger.Logger
}

func New(
	reservationService bedAssigner,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reservationService: reservationService,
		interval:           interval,
		today:              calendar.Today,
		logger:             logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	day := s.today()

	reports, err := s.reservationService.AssignBedsForAllProperties(ctx, day)
	if err != nil {
		s.logger.Error("failed to run bed assignment sweep",
			logger.String("day", day.String()),
			logger.String("error", err.Error()),
		)
		return
	}

	for _, r := range reports {
		for id, ferr := range r.Failed {
			s.logger.Warn("reservation left without beds",
				logger.String("property_id", r.PropertyID),
				logger.String("reservation_id", id),
				logger.String("error", ferr.Error()),
			)
		}
		for id, ferr := range r.FailedRoomTypes {
			s.logger.Warn("room type skipped by sweep",
				logger.String("property_id", r.PropertyID),
				logger.String("room_type_id", id),
				logger.String("error", ferr.Error()),
			)
		}
		if len(r.Assigned) > 0 {
			s.logger.Info("beds assigned",
				logger.String("property_id", r.PropertyID),
				logger.String("day", r.Day.String()),
				logger.Int("reservations", len(r.Assigned)),
			)
		}
	}
}
