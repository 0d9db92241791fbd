package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stpnv0/HostelBooker/internal/calendar"
	"github.com/stpnv0/HostelBooker/internal/domain"
	"github.com/stpnv0/HostelBooker/internal/occupancy"
	"github.com/stpnv0/HostelBooker/internal/service/ports"
	"github.com/stpnv0/HostelBooker/internal/timeline"
	"github.com/wb-go/wbf/logger"
)

type RoomTypeService struct {
	repo         ports.RoomTypeRepo
	reservations ports.ReservationRepo
	locker       ports.RoomTypeLocker
	validate     *validator.Validate
	logger       logger.Logger
	limits       Limits
}

func NewRoomTypeService(
	repo ports.RoomTypeRepo,
	reservations ports.ReservationRepo,
	locker ports.RoomTypeLocker,
	logger logger.Logger,
	limits Limits,
) *RoomTypeService {
	return &RoomTypeService{
		repo:         repo,
		reservations: reservations,
		locker:       locker,
		validate:     validator.New(),
		logger:       logger,
		limits:       limits.withDefaults(),
	}
}

// Create generates the bed pool of a new room type: one bed per private room,
// MaxOccupancy beds per dorm room.
func (s *RoomTypeService) Create(ctx context.Context, propertyID string, input domain.CreateRoomTypeInput) (*domain.RoomType, error) {
	if propertyID == "" {
		return nil, fmt.Errorf("%w: property id is required", domain.ErrValidation)
	}
	if err := validateStruct(s.validate, input); err != nil {
		return nil, err
	}

	ranges := make([]domain.AvailabilityRange, 0, len(input.Overrides))
	for _, o := range input.Overrides {
		if err := validateOverrideSpan(o.StartDate, o.EndDate, s.limits.MaxSpanDays); err != nil {
			return nil, err
		}
		ranges = append(ranges, newRange(o))
	}
	if err := timeline.Validate(ranges); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	rt := &domain.RoomType{
		ID:                   uuid.New().String(),
		PropertyID:           propertyID,
		Description:          input.Description,
		Kind:                 input.Kind,
		MaxOccupancy:         input.MaxOccupancy,
		Inventory:            input.Inventory,
		BaseRate:             input.BaseRate,
		Currency:             input.Currency,
		RatesAndAvailability: ranges,
		Version:              1,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	rt.Products = generateProducts(rt.Inventory, rt.BedsPerProduct())

	if err := s.repo.Create(ctx, rt); err != nil {
		return nil, fmt.Errorf("create room type: %w", err)
	}

	s.logger.Info("room type created",
		logger.String("room_type_id", rt.ID),
		logger.String("property_id", propertyID),
		logger.Int("beds", rt.BedCount()),
	)

	return rt, nil
}

func (s *RoomTypeService) Get(ctx context.Context, id string) (*domain.RoomType, error) {
	return s.repo.GetByID(ctx, id)
}

// ActiveRangeFor returns the override covering day, or nil when the room
// type defaults apply.
func (s *RoomTypeService) ActiveRangeFor(ctx context.Context, roomTypeID string, day calendar.Day) (*domain.AvailabilityRange, error) {
	rt, err := s.repo.GetByID(ctx, roomTypeID)
	if err != nil {
		return nil, fmt.Errorf("get room type: %w", err)
	}

	r, ok := timeline.ActiveRangeFor(rt.RatesAndAvailability, day)
	if !ok {
		return nil, nil
	}
	return &r, nil
}

// InsertOverride writes a rate/availability override, splitting whatever it
// intersects. It returns the ranges actually written.
func (s *RoomTypeService) InsertOverride(ctx context.Context, roomTypeID string, input domain.OverrideInput) ([]domain.AvailabilityRange, error) {
	if err := validateStruct(s.validate, input); err != nil {
		return nil, err
	}
	if err := validateOverrideSpan(input.StartDate, input.EndDate, s.limits.MaxSpanDays); err != nil {
		return nil, err
	}

	// Bookings must not slip in between the demand check and the write.
	unlock, err := s.locker.Lock(ctx, roomTypeID)
	if err != nil {
		return nil, fmt.Errorf("lock room type: %w", err)
	}
	defer unlock()

	if input.CustomAvailability != nil {
		if err = s.checkDemand(ctx, roomTypeID, input); err != nil {
			return nil, err
		}
	}

	override := newRange(input)
	for attempt := 1; attempt <= s.limits.TimelineMaxRetries; attempt++ {
		rt, err := s.repo.GetByID(ctx, roomTypeID)
		if err != nil {
			return nil, fmt.Errorf("get room type: %w", err)
		}

		res, err := timeline.Insert(rt.RatesAndAvailability, override, newID)
		if err != nil {
			return nil, err
		}

		err = s.repo.UpdateTimeline(ctx, rt.ID, rt.Version, res.Timeline)
		if err == nil {
			s.logger.Info("availability override inserted",
				logger.String("room_type_id", rt.ID),
				logger.String("range_id", override.ID),
				logger.String("start_date", override.StartDate.String()),
				logger.String("end_date", override.EndDate.String()),
				logger.Int("removed", len(res.Removed)),
				logger.Int("persisted", len(res.Persisted)),
			)
			return res.Persisted, nil
		}
		if !errors.Is(err, domain.ErrVersionConflict) {
			return nil, fmt.Errorf("update timeline: %w", err)
		}

		s.logger.Debug("timeline version conflict, retrying",
			logger.String("room_type_id", rt.ID),
			logger.Int64("version", rt.Version),
			logger.Int("attempt", attempt),
		)
	}

	return nil, fmt.Errorf("%w: timeline of room type %s changed %d times in a row",
		domain.ErrConcurrentModification, roomTypeID, s.limits.TimelineMaxRetries)
}

func (s *RoomTypeService) checkDemand(ctx context.Context, roomTypeID string, input domain.OverrideInput) error {
	// overlap query is half-open, the override is inclusive
	booked, err := s.reservations.ListActiveOverlapping(ctx, roomTypeID, input.StartDate, input.EndDate.AddDays(1))
	if err != nil {
		return fmt.Errorf("list overlapping reservations: %w", err)
	}

	minimum := occupancy.MinimumAvailability(booked, input.StartDate, input.EndDate)
	if *input.CustomAvailability < minimum {
		return &domain.AvailabilityBelowDemandError{
			Requested: *input.CustomAvailability,
			Minimum:   minimum,
		}
	}
	return nil
}

func generateProducts(inventory, bedsPerProduct int) []domain.Product {
	products := make([]domain.Product, 0, inventory)
	for i := 0; i < inventory; i++ {
		beds := make([]string, 0, bedsPerProduct)
		for j := 0; j < bedsPerProduct; j++ {
			beds = append(beds, newID())
		}
		products = append(products, domain.Product{ID: newID(), Beds: beds})
	}
	return products
}

func newRange(o domain.OverrideInput) domain.AvailabilityRange {
	return domain.AvailabilityRange{
		ID:                 newID(),
		StartDate:          o.StartDate,
		EndDate:            o.EndDate,
		CustomRate:         o.CustomRate,
		CustomAvailability: o.CustomAvailability,
	}
}

func newID() string {
	return uuid.New().String()
}
