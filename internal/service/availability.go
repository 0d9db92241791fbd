package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/stpnv0/HostelBooker/internal/calendar"
	"github.com/stpnv0/HostelBooker/internal/domain"
	"github.com/stpnv0/HostelBooker/internal/occupancy"
	"github.com/stpnv0/HostelBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type AvailabilityService struct {
	roomTypes    ports.RoomTypeRepo
	reservations ports.ReservationRepo
	logger       logger.Logger
	limits       Limits
}

func NewAvailabilityService(
	roomTypes ports.RoomTypeRepo,
	reservations ports.ReservationRepo,
	logger logger.Logger,
	limits Limits,
) *AvailabilityService {
	return &AvailabilityService{
		roomTypes:    roomTypes,
		reservations: reservations,
		logger:       logger,
		limits:       limits.withDefaults(),
	}
}

// Check reports whether partySize guests fit every night of [checkIn, checkOut)
// and which beds are free for the whole stay.
func (s *AvailabilityService) Check(
	ctx context.Context,
	roomTypeID string,
	checkIn, checkOut calendar.Day,
	partySize int,
) (occupancy.Result, error) {
	if err := validateStay(checkIn, checkOut, partySize, s.limits.MaxSpanDays); err != nil {
		return occupancy.Result{}, err
	}

	rt, err := s.roomTypes.GetByID(ctx, roomTypeID)
	if err != nil {
		return occupancy.Result{}, fmt.Errorf("get room type: %w", err)
	}

	return s.evaluate(ctx, rt, occupancy.Request{
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		PartySize: partySize,
	})
}

func (s *AvailabilityService) evaluate(ctx context.Context, rt *domain.RoomType, req occupancy.Request) (occupancy.Result, error) {
	reservations, err := s.reservations.ListActiveOverlapping(ctx, rt.ID, req.CheckIn, req.CheckOut)
	if err != nil {
		return occupancy.Result{}, fmt.Errorf("list overlapping reservations: %w", err)
	}

	res, err := occupancy.Evaluate(rt, reservations, req)
	if err != nil {
		if errors.Is(err, occupancy.ErrBedPoolInconsistent) {
			s.logger.LogAttrs(ctx, logger.ErrorLevel, "bed pool invariant violated",
				logger.String("room_type_id", rt.ID),
				logger.String("check_in", req.CheckIn.String()),
				logger.String("check_out", req.CheckOut.String()),
				logger.Int("party_size", req.PartySize),
				logger.String("exclude_id", req.ExcludeID),
				logger.Int("bed_count", rt.BedCount()),
				logger.Int("overlapping", len(reservations)),
				logger.String("error", err.Error()),
			)
		}
		return occupancy.Result{}, fmt.Errorf("evaluate occupancy: %w", err)
	}

	return res, nil
}
