package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stpnv0/HostelBooker/internal/allocation"
	"github.com/stpnv0/HostelBooker/internal/calendar"
	"github.com/stpnv0/HostelBooker/internal/domain"
	"github.com/stpnv0/HostelBooker/internal/occupancy"
	"github.com/stpnv0/HostelBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ReservationService struct {
	reservations ports.ReservationRepo
	roomTypes    ports.RoomTypeRepo
	properties   ports.PropertyRepo
	locker       ports.RoomTypeLocker
	notifier     ports.ReservationNotifier
	availability *AvailabilityService
	validate     *validator.Validate
	logger       logger.Logger
	limits       Limits
}

func NewReservationService(
	reservations ports.ReservationRepo,
	roomTypes ports.RoomTypeRepo,
	properties ports.PropertyRepo,
	locker ports.RoomTypeLocker,
	notifier ports.ReservationNotifier,
	logger logger.Logger,
	limits Limits,
) *ReservationService {
	limits = limits.withDefaults()
	return &ReservationService{
		reservations: reservations,
		roomTypes:    roomTypes,
		properties:   properties,
		locker:       locker,
		notifier:     notifier,
		availability: NewAvailabilityService(roomTypes, reservations, logger, limits),
		validate:     validator.New(),
		logger:       logger,
		limits:       limits,
	}
}

// Create books the stay and binds beds to it. The occupancy check and the
// insert run under the room type lock so two bookings cannot both take the
// last bed.
func (s *ReservationService) Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error) {
	if err := validateStruct(s.validate, input); err != nil {
		return nil, err
	}
	if err := validateStay(input.CheckIn, input.CheckOut, input.NumberOfGuests, s.limits.MaxSpanDays); err != nil {
		return nil, err
	}

	rt, err := s.roomTypes.GetByID(ctx, input.RoomTypeID)
	if err != nil {
		return nil, fmt.Errorf("get room type: %w", err)
	}
	if rt.PropertyID != input.PropertyID {
		return nil, fmt.Errorf("%w: room type %s does not belong to property %s",
			domain.ErrRoomTypeNotFound, rt.ID, input.PropertyID)
	}

	unlock, err := s.locker.Lock(ctx, rt.ID)
	if err != nil {
		return nil, fmt.Errorf("lock room type: %w", err)
	}
	defer unlock()

	res, err := s.availability.evaluate(ctx, rt, occupancy.Request{
		CheckIn:   input.CheckIn,
		CheckOut:  input.CheckOut,
		PartySize: input.NumberOfGuests,
	})
	if err != nil {
		return nil, fmt.Errorf("check availability: %w", err)
	}
	if !res.Available {
		return nil, noAvailability(res)
	}

	now := time.Now().UTC()
	r := &domain.Reservation{
		ID:             uuid.New().String(),
		GuestID:        input.GuestID,
		PropertyID:     input.PropertyID,
		RoomTypeID:     rt.ID,
		Source:         input.Source,
		CheckIn:        input.CheckIn,
		CheckOut:       input.CheckOut,
		NumberOfGuests: input.NumberOfGuests,
		TotalPrice:     res.TotalPrice,
		Currency:       rt.Currency,
		Status:         input.Status,
		PaymentStatus:  input.PaymentStatus,
		SpecialRequest: input.SpecialRequest,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if input.TotalPrice != nil {
		r.TotalPrice = *input.TotalPrice
	}
	if r.Status == "" {
		r.Status = domain.ReservationStatusConfirm
	}
	if r.PaymentStatus == "" {
		r.PaymentStatus = domain.PaymentStatusPending
	}

	if err = s.reservations.Create(ctx, r); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.logger.Info("reservation created",
		logger.String("reservation_id", r.ID),
		logger.String("room_type_id", r.RoomTypeID),
		logger.String("check_in", r.CheckIn.String()),
		logger.String("check_out", r.CheckOut.String()),
		logger.Int("guests", r.NumberOfGuests),
	)

	s.bindBeds(ctx, r, res.CandidateBeds)

	go s.notify(context.WithoutCancel(ctx), r, s.notifier.NotifyReservationCreated)

	return r, nil
}

func (s *ReservationService) Get(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.reservations.GetByID(ctx, id)
}

// UpdateStay moves a reservation to new dates and/or guest count. Its own
// current demand and beds are ignored while checking the new stay.
func (s *ReservationService) UpdateStay(ctx context.Context, id string, input domain.UpdateStayInput) (*domain.Reservation, error) {
	if err := validateStay(input.CheckIn, input.CheckOut, input.NumberOfGuests, s.limits.MaxSpanDays); err != nil {
		return nil, err
	}

	current, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	unlock, err := s.locker.Lock(ctx, current.RoomTypeID)
	if err != nil {
		return nil, fmt.Errorf("lock room type: %w", err)
	}
	defer unlock()

	// re-read under the lock, status or dates may have changed meanwhile
	current, err = s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	if !current.Status.Active() {
		return nil, fmt.Errorf("%w: reservation %s is %s", domain.ErrIllegalTransition, id, current.Status)
	}

	rt, err := s.roomTypes.GetByID(ctx, current.RoomTypeID)
	if err != nil {
		return nil, fmt.Errorf("get room type: %w", err)
	}

	res, err := s.availability.evaluate(ctx, rt, occupancy.Request{
		CheckIn:   input.CheckIn,
		CheckOut:  input.CheckOut,
		PartySize: input.NumberOfGuests,
		ExcludeID: current.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("check availability: %w", err)
	}
	if !res.Available {
		return nil, noAvailability(res)
	}

	if err = s.reservations.UpdateStay(ctx, id, input, res.TotalPrice); err != nil {
		return nil, fmt.Errorf("update stay: %w", err)
	}

	updated := *current
	updated.CheckIn = input.CheckIn
	updated.CheckOut = input.CheckOut
	updated.NumberOfGuests = input.NumberOfGuests
	updated.TotalPrice = res.TotalPrice
	updated.AssignedBeds = nil
	updated.UpdatedAt = time.Now().UTC()

	s.logger.Info("reservation stay updated",
		logger.String("reservation_id", id),
		logger.String("check_in", updated.CheckIn.String()),
		logger.String("check_out", updated.CheckOut.String()),
		logger.Int("guests", updated.NumberOfGuests),
	)

	s.bindBeds(ctx, &updated, res.CandidateBeds)

	return &updated, nil
}

// UpdateStatus applies a reservation state machine transition. Moving to
// cancelled or no_show releases beds implicitly: occupancy only ever counts
// active reservations.
func (s *ReservationService) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) (*domain.Reservation, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown reservation status %q", domain.ErrValidation, status)
	}

	current, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	if !current.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrIllegalTransition, current.Status, status)
	}

	if err = s.reservations.UpdateStatus(ctx, id, current.Status, status); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	s.logger.Info("reservation status changed",
		logger.String("reservation_id", id),
		logger.String("from", string(current.Status)),
		logger.String("to", string(status)),
	)

	updated := *current
	updated.Status = status
	updated.UpdatedAt = time.Now().UTC()

	if status == domain.ReservationStatusCancelled {
		go s.notify(context.WithoutCancel(ctx), &updated, s.notifier.NotifyReservationCancelled)
	}

	return &updated, nil
}

// UpdatePaymentStatus is not gated by the reservation status.
func (s *ReservationService) UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) (*domain.Reservation, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown payment status %q", domain.ErrValidation, status)
	}

	current, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	if err = s.reservations.UpdatePaymentStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("update payment status: %w", err)
	}

	if !current.Status.Active() {
		s.logger.Warn("payment status changed on inactive reservation",
			logger.String("reservation_id", id),
			logger.String("reservation_status", string(current.Status)),
			logger.String("payment_status", string(status)),
		)
	}

	updated := *current
	updated.PaymentStatus = status
	updated.UpdatedAt = time.Now().UTC()

	return &updated, nil
}

// AssignBedsForDay binds beds to every active reservation of the property
// present on day that is missing some. One reservation failing does not stop
// the others.
func (s *ReservationService) AssignBedsForDay(ctx context.Context, propertyID string, day calendar.Day) (*domain.BedAssignmentReport, error) {
	roomTypes, err := s.roomTypes.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("list room types: %w", err)
	}

	report := &domain.BedAssignmentReport{
		PropertyID:      propertyID,
		Day:             day,
		Failed:          make(map[string]error),
		FailedRoomTypes: make(map[string]error),
	}
	for _, rt := range roomTypes {
		if err = s.assignRoomType(ctx, rt, day, report); err != nil {
			report.FailedRoomTypes[rt.ID] = err
			s.logger.Error("bed assignment skipped room type",
				logger.String("room_type_id", rt.ID),
				logger.String("day", day.String()),
				logger.String("error", err.Error()),
			)
		}
	}

	s.logger.Info("bed assignment sweep finished",
		logger.String("property_id", propertyID),
		logger.String("day", day.String()),
		logger.Int("assigned", len(report.Assigned)),
		logger.Int("failed", len(report.Failed)),
	)

	return report, nil
}

// AssignBedsForAllProperties runs AssignBedsForDay for every property.
func (s *ReservationService) AssignBedsForAllProperties(ctx context.Context, day calendar.Day) ([]*domain.BedAssignmentReport, error) {
	ids, err := s.properties.ListIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}

	reports := make([]*domain.BedAssignmentReport, 0, len(ids))
	for _, id := range ids {
		if ctx.Err() != nil {
			return reports, ctx.Err()
		}

		report, err := s.AssignBedsForDay(ctx, id, day)
		if err != nil {
			s.logger.Error("bed assignment failed for property",
				logger.String("property_id", id),
				logger.String("error", err.Error()),
			)
			continue
		}
		reports = append(reports, report)
	}

	return reports, nil
}

func (s *ReservationService) assignRoomType(ctx context.Context, rt *domain.RoomType, day calendar.Day, report *domain.BedAssignmentReport) error {
	unlock, err := s.locker.Lock(ctx, rt.ID)
	if err != nil {
		return fmt.Errorf("lock room type: %w", err)
	}
	defer unlock()

	pending, err := s.reservations.ListNeedingBeds(ctx, rt.ID, day)
	if err != nil {
		return fmt.Errorf("list reservations needing beds: %w", err)
	}
	if len(pending) == 0 {
		return nil
	}

	from, to := pending[0].CheckIn, pending[0].CheckOut
	for _, r := range pending[1:] {
		if r.CheckIn.Before(from) {
			from = r.CheckIn
		}
		if r.CheckOut.After(to) {
			to = r.CheckOut
		}
	}

	others, err := s.reservations.ListActiveOverlapping(ctx, rt.ID, from, to)
	if err != nil {
		return fmt.Errorf("list overlapping reservations: %w", err)
	}
	byID := make(map[string]*domain.Reservation, len(others))
	for _, o := range others {
		byID[o.ID] = o
	}

	for _, p := range pending {
		r, ok := byID[p.ID]
		if !ok {
			r = p
			others = append(others, r)
		}

		beds, err := allocation.Assign(r, allocation.Candidates(rt, r, others))
		if err != nil {
			report.Failed[r.ID] = err
			s.logger.Warn("bed assignment failed",
				logger.String("reservation_id", r.ID),
				logger.String("room_type_id", rt.ID),
				logger.String("error", err.Error()),
			)
			continue
		}

		if err = s.reservations.SetAssignedBeds(ctx, r.ID, beds); err != nil {
			report.Failed[r.ID] = fmt.Errorf("set assigned beds: %w", err)
			continue
		}
		r.AssignedBeds = beds
		report.Assigned = append(report.Assigned, r.ID)
	}

	return nil
}

// bindBeds assigns beds after the reservation is stored. A failure leaves the
// reservation unassigned for the next sweep.
func (s *ReservationService) bindBeds(ctx context.Context, r *domain.Reservation, candidates []string) {
	beds, err := allocation.Assign(r, candidates)
	if err != nil {
		s.logger.LogAttrs(ctx, logger.ErrorLevel, "bed assignment after availability check failed",
			logger.String("reservation_id", r.ID),
			logger.String("room_type_id", r.RoomTypeID),
			logger.Int("guests", r.NumberOfGuests),
			logger.Int("candidates", len(candidates)),
			logger.String("error", err.Error()),
		)
		return
	}

	if err = s.reservations.SetAssignedBeds(ctx, r.ID, beds); err != nil {
		s.logger.Error("failed to store assigned beds",
			logger.String("reservation_id", r.ID),
			logger.String("error", err.Error()),
		)
		return
	}
	r.AssignedBeds = beds
}

func (s *ReservationService) notify(
	ctx context.Context,
	r *domain.Reservation,
	send func(context.Context, *domain.Property, *domain.Reservation),
) {
	property, err := s.properties.GetByID(ctx, r.PropertyID)
	if err != nil {
		s.logger.Error("failed to get property for notification",
			logger.String("property_id", r.PropertyID),
			logger.String("error", err.Error()),
		)
		return
	}
	send(ctx, property, r)
}

func noAvailability(res occupancy.Result) error {
	n := res.BindingNight
	return fmt.Errorf("%w: night %s has %d of %d places left",
		domain.ErrNoAvailability, n.Day, max(n.Remaining(), 0), n.Capacity)
}
