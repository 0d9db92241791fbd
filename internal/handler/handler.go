package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/stpnv0/HostelBooker/internal/calendar"
	"github.com/stpnv0/HostelBooker/internal/domain"
	"github.com/stpnv0/HostelBooker/internal/handler/dto"
	"github.com/stpnv0/HostelBooker/internal/occupancy"
	"github.com/wb-go/wbf/ginext"
)

type RoomTypeSvc interface {
	Create(ctx context.Context, propertyID string, input domain.CreateRoomTypeInput) (*domain.RoomType, error)
	Get(ctx context.Context, id string) (*domain.RoomType, error)
	InsertOverride(ctx context.Context, roomTypeID string, input domain.OverrideInput) ([]domain.AvailabilityRange, error)
	ActiveRangeFor(ctx context.Context, roomTypeID string, day calendar.Day) (*domain.AvailabilityRange, error)
}

type AvailabilitySvc interface {
	Check(ctx context.Context, roomTypeID string, checkIn, checkOut calendar.Day, partySize int) (occupancy.Result, error)
}

type ReservationSvc interface {
	Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error)
	Get(ctx context.Context, id string) (*domain.Reservation, error)
	UpdateStay(ctx context.Context, id string, input domain.UpdateStayInput) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) (*domain.Reservation, error)
	UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) (*domain.Reservation, error)
	AssignBedsForDay(ctx context.Context, propertyID string, day calendar.Day) (*domain.BedAssignmentReport, error)
}

type OnboardingSvc interface {
	Register(ctx context.Context, input domain.RegisterInput) (*domain.Registration, error)
}

type Handler struct {
	roomTypeService     RoomTypeSvc
	availabilityService AvailabilitySvc
	reservationService  ReservationSvc
	onboardingService   OnboardingSvc
}

func NewHandler(
	roomTypeService RoomTypeSvc,
	availabilityService AvailabilitySvc,
	reservationService ReservationSvc,
	onboardingService OnboardingSvc,
) *Handler {
	return &Handler{
		roomTypeService:     roomTypeService,
		availabilityService: availabilityService,
		reservationService:  reservationService,
		onboardingService:   onboardingService,
	}
}

// Onboarding

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	reg, err := h.onboardingService.Register(c.Request.Context(), domain.RegisterInput{
		Email:          req.Email,
		Name:           req.Name,
		Password:       req.Password,
		PropertyName:   req.PropertyName,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRegistrationResponse(reg))
}

// Room types

func (h *Handler) CreateRoomType(c *ginext.Context) {
	propertyID, ok := pathUUID(c, "id", "invalid property id")
	if !ok {
		return
	}

	var req dto.CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	overrides := make([]domain.OverrideInput, 0, len(req.RatesAndAvailability))
	for _, o := range req.RatesAndAvailability {
		in, err := toOverrideInput(o)
		if err != nil {
			h.handleError(c, err)
			return
		}
		overrides = append(overrides, in)
	}

	rt, err := h.roomTypeService.Create(c.Request.Context(), propertyID, domain.CreateRoomTypeInput{
		Description:  req.Description,
		Kind:         domain.RoomKind(req.Type),
		MaxOccupancy: req.MaxOccupancy,
		Inventory:    req.Inventory,
		BaseRate:     req.BaseRate,
		Currency:     req.Currency,
		Overrides:    overrides,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRoomTypeResponse(rt))
}

func (h *Handler) GetRoomType(c *ginext.Context) {
	id, ok := pathUUID(c, "id", "invalid room type id")
	if !ok {
		return
	}

	rt, err := h.roomTypeService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomTypeResponse(rt))
}

func (h *Handler) InsertOverride(c *ginext.Context) {
	id, ok := pathUUID(c, "id", "invalid room type id")
	if !ok {
		return
	}

	var req dto.OverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	in, err := toOverrideInput(req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	persisted, err := h.roomTypeService.InsertOverride(c.Request.Context(), id, in)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAvailabilityRangeResponses(persisted))
}

func (h *Handler) GetActiveRange(c *ginext.Context) {
	id, ok := pathUUID(c, "id", "invalid room type id")
	if !ok {
		return
	}

	day, err := parseDay("date", c.Query("date"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	r, err := h.roomTypeService.ActiveRangeFor(c.Request.Context(), id, day)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if r == nil {
		c.JSON(http.StatusOK, ginext.H{"active_range": nil})
		return
	}

	c.JSON(http.StatusOK, ginext.H{"active_range": dto.ToAvailabilityRangeResponse(*r)})
}

func (h *Handler) CheckAvailability(c *ginext.Context) {
	id, ok := pathUUID(c, "id", "invalid room type id")
	if !ok {
		return
	}

	checkIn, err := parseDay("check_in", c.Query("check_in"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	checkOut, err := parseDay("check_out", c.Query("check_out"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	guests, err := strconv.Atoi(c.DefaultQuery("guests", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid guests, expected integer"})
		return
	}

	res, err := h.availabilityService.Check(c.Request.Context(), id, checkIn, checkOut, guests)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(res))
}

// Reservations

func (h *Handler) CreateReservation(c *ginext.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	checkIn, err := parseDay("check_in", req.CheckIn)
	if err != nil {
		h.handleError(c, err)
		return
	}
	checkOut, err := parseDay("check_out", req.CheckOut)
	if err != nil {
		h.handleError(c, err)
		return
	}

	r, err := h.reservationService.Create(c.Request.Context(), domain.CreateReservationInput{
		GuestID:        req.GuestID,
		PropertyID:     req.PropertyID,
		RoomTypeID:     req.RoomTypeID,
		Source:         req.Source,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		NumberOfGuests: req.NumberOfGuest,
		TotalPrice:     req.TotalPrice,
		Status:         domain.ReservationStatus(req.ReservationStatus),
		PaymentStatus:  domain.PaymentStatus(req.PaymentStatus),
		SpecialRequest: req.SpecialRequest,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(r))
}

func (h *Handler) GetReservation(c *ginext.Context) {
	id, ok := pathUUID(c, "id", "invalid reservation id")
	if !ok {
		return
	}

	r, err := h.reservationService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(r))
}

func (h *Handler) UpdateStay(c *ginext.Context) {
	id, ok := pathUUID(c, "id", "invalid reservation id")
	if !ok {
		return
	}

	var req dto.UpdateStayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	checkIn, err := parseDay("check_in", req.CheckIn)
	if err != nil {
		h.handleError(c, err)
		return
	}
	checkOut, err := parseDay("check_out", req.CheckOut)
	if err != nil {
		h.handleError(c, err)
		return
	}

	r, err := h.reservationService.UpdateStay(c.Request.Context(), id, domain.UpdateStayInput{
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		NumberOfGuests: req.NumberOfGuest,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(r))
}

func (h *Handler) UpdateStatus(c *ginext.Context) {
	id, ok := pathUUID(c, "id", "invalid reservation id")
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	r, err := h.reservationService.UpdateStatus(c.Request.Context(), id, domain.ReservationStatus(req.ReservationStatus))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(r))
}

func (h *Handler) UpdatePaymentStatus(c *ginext.Context) {
	id, ok := pathUUID(c, "id", "invalid reservation id")
	if !ok {
		return
	}

	var req dto.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	r, err := h.reservationService.UpdatePaymentStatus(c.Request.Context(), id, domain.PaymentStatus(req.PaymentStatus))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(r))
}

// AssignBeds takes the day as YYYYMMDD.
func (h *Handler) AssignBeds(c *ginext.Context) {
	propertyID, ok := pathUUID(c, "id", "invalid property id")
	if !ok {
		return
	}

	day, err := calendar.ParseCompact(c.Param("date"))
	if err != nil {
		h.handleError(c, fmt.Errorf("date: %w", err))
		return
	}

	report, err := h.reservationService.AssignBedsForDay(c.Request.Context(), propertyID, day)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBedAssignmentResponse(report))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var belowDemand *domain.AvailabilityBelowDemandError

	switch {
	case errors.As(err, &belowDemand):
		minimum := belowDemand.Minimum
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error:               err.Error(),
			MinimumAvailability: &minimum,
		})

	case errors.Is(err, domain.ErrRoomTypeNotFound),
		errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrPropertyNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNoAvailability),
		errors.Is(err, domain.ErrInsufficientBeds),
		errors.Is(err, domain.ErrIllegalTransition),
		errors.Is(err, domain.ErrConcurrentModification),
		errors.Is(err, domain.ErrVersionConflict),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrMalformedDate),
		errors.Is(err, domain.ErrInvalidRange):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrRegistrationFailed):
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: domain.ErrRegistrationFailed.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func pathUUID(c *ginext.Context, param, msg string) (string, bool) {
	id := c.Param(param)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})
		return "", false
	}
	return id, true
}

func parseDay(field, value string) (calendar.Day, error) {
	d, err := calendar.ParseHyphenated(value)
	if err != nil {
		return calendar.Day{}, fmt.Errorf("%s: %w", field, err)
	}
	return d, nil
}

func toOverrideInput(o dto.OverrideRequest) (domain.OverrideInput, error) {
	start, err := parseDay("start_date", o.StartDate)
	if err != nil {
		return domain.OverrideInput{}, err
	}
	end, err := parseDay("end_date", o.EndDate)
	if err != nil {
		return domain.OverrideInput{}, err
	}

	return domain.OverrideInput{
		StartDate:          start,
		EndDate:            end,
		CustomRate:         o.CustomRate,
		CustomAvailability: o.CustomAvailability,
	}, nil
}
