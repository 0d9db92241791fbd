package dto

import (
	"time"

	"github.com/stpnv0/HostelBooker/internal/domain"
	"github.com/stpnv0/HostelBooker/internal/occupancy"
)

type AvailabilityRangeResponse struct {
	ID                 string   `json:"_id"`
	StartDate          string   `json:"start_date"`
	EndDate            string   `json:"end_date"`
	CustomRate         *float64 `json:"custom_rate,omitempty"`
	CustomAvailability *int     `json:"custom_availability,omitempty"`
}

type ProductResponse struct {
	ID   string   `json:"id"`
	Beds []string `json:"beds"`
}

type RoomTypeResponse struct {
	ID                   string                      `json:"id"`
	PropertyID           string                      `json:"property_id"`
	Description          string                      `json:"description"`
	Type                 string                      `json:"type"`
	MaxOccupancy         int                         `json:"max_occupancy"`
	Inventory            int                         `json:"inventory"`
	BaseRate             float64                     `json:"base_rate"`
	Currency             string                      `json:"currency"`
	Products             []ProductResponse           `json:"products"`
	RatesAndAvailability []AvailabilityRangeResponse `json:"rates_and_availability"`
	CreatedAt            string                      `json:"created_at"`
}

type NightResponse struct {
	Date      string  `json:"date"`
	Demand    int     `json:"demand"`
	Capacity  int     `json:"capacity"`
	Remaining int     `json:"remaining"`
	Rate      float64 `json:"rate"`
}

type AvailabilityResponse struct {
	Available     bool            `json:"available"`
	TotalPrice    float64         `json:"total_price"`
	MinRemaining  int             `json:"min_remaining"`
	BindingNight  string          `json:"binding_night"`
	CandidateBeds []string        `json:"candidate_beds"`
	Nights        []NightResponse `json:"nights"`
}

type ReservationResponse struct {
	ID                string   `json:"id"`
	GuestID           string   `json:"guest_id"`
	PropertyID        string   `json:"property_id"`
	RoomTypeID        string   `json:"room_type_id"`
	Source            string   `json:"source"`
	CheckIn           string   `json:"check_in"`
	CheckOut          string   `json:"check_out"`
	NumberOfGuest     int      `json:"number_of_guest"`
	TotalPrice        float64  `json:"total_price"`
	Currency          string   `json:"currency"`
	ReservationStatus string   `json:"reservation_status"`
	PaymentStatus     string   `json:"payment_status"`
	SpecialRequest    string   `json:"special_request"`
	AssignedBeds      []string `json:"assigned_beds"`
	CreatedAt         string   `json:"created_at"`
	UpdatedAt         string   `json:"updated_at"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

type PropertyResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	CreatedBy      string `json:"created_by"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type RegistrationResponse struct {
	User     UserResponse     `json:"user"`
	Property PropertyResponse `json:"property"`
	Role     string           `json:"role"`
}

type BedAssignmentResponse struct {
	PropertyID      string            `json:"property_id"`
	Date            string            `json:"date"`
	Assigned        []string          `json:"assigned"`
	Failed          map[string]string `json:"failed"`
	FailedRoomTypes map[string]string `json:"failed_room_types"`
}

type ErrorResponse struct {
	Error               string `json:"error"`
	MinimumAvailability *int   `json:"minimum_availability,omitempty"`
}

func ToAvailabilityRangeResponse(r domain.AvailabilityRange) AvailabilityRangeResponse {
	return AvailabilityRangeResponse{
		ID:                 r.ID,
		StartDate:          r.StartDate.String(),
		EndDate:            r.EndDate.String(),
		CustomRate:         r.CustomRate,
		CustomAvailability: r.CustomAvailability,
	}
}

func ToAvailabilityRangeResponses(ranges []domain.AvailabilityRange) []AvailabilityRangeResponse {
	resp := make([]AvailabilityRangeResponse, 0, len(ranges))
	for _, r := range ranges {
		resp = append(resp, ToAvailabilityRangeResponse(r))
	}
	return resp
}

func ToRoomTypeResponse(rt *domain.RoomType) RoomTypeResponse {
	products := make([]ProductResponse, 0, len(rt.Products))
	for _, p := range rt.Products {
		products = append(products, ProductResponse{ID: p.ID, Beds: p.Beds})
	}

	return RoomTypeResponse{
		ID:                   rt.ID,
		PropertyID:           rt.PropertyID,
		Description:          rt.Description,
		Type:                 string(rt.Kind),
		MaxOccupancy:         rt.MaxOccupancy,
		Inventory:            rt.Inventory,
		BaseRate:             rt.BaseRate,
		Currency:             rt.Currency,
		Products:             products,
		RatesAndAvailability: ToAvailabilityRangeResponses(rt.RatesAndAvailability),
		CreatedAt:            rt.CreatedAt.Format(time.RFC3339),
	}
}

func ToAvailabilityResponse(res occupancy.Result) AvailabilityResponse {
	nights := make([]NightResponse, 0, len(res.Nights))
	for _, n := range res.Nights {
		nights = append(nights, NightResponse{
			Date:      n.Day.String(),
			Demand:    n.Demand,
			Capacity:  n.Capacity,
			Remaining: n.Remaining(),
			Rate:      n.Rate,
		})
	}

	candidates := res.CandidateBeds
	if candidates == nil {
		candidates = []string{}
	}

	return AvailabilityResponse{
		Available:     res.Available,
		TotalPrice:    res.TotalPrice,
		MinRemaining:  res.BindingNight.Remaining(),
		BindingNight:  res.BindingNight.Day.String(),
		CandidateBeds: candidates,
		Nights:        nights,
	}
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	beds := r.AssignedBeds
	if beds == nil {
		beds = []string{}
	}

	return ReservationResponse{
		ID:                r.ID,
		GuestID:           r.GuestID,
		PropertyID:        r.PropertyID,
		RoomTypeID:        r.RoomTypeID,
		Source:            r.Source,
		CheckIn:           r.CheckIn.String(),
		CheckOut:          r.CheckOut.String(),
		NumberOfGuest:     r.NumberOfGuests,
		TotalPrice:        r.TotalPrice,
		Currency:          r.Currency,
		ReservationStatus: string(r.Status),
		PaymentStatus:     string(r.PaymentStatus),
		SpecialRequest:    r.SpecialRequest,
		AssignedBeds:      beds,
		CreatedAt:         r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         r.UpdatedAt.Format(time.RFC3339),
	}
}

func ToRegistrationResponse(reg *domain.Registration) RegistrationResponse {
	resp := RegistrationResponse{
		User: UserResponse{
			ID:        reg.User.ID,
			Email:     reg.User.Email,
			Name:      reg.User.Name,
			CreatedAt: reg.User.CreatedAt.Format(time.RFC3339),
		},
		Property: PropertyResponse{
			ID:             reg.Property.ID,
			Name:           reg.Property.Name,
			CreatedBy:      reg.Property.CreatedBy,
			TelegramChatID: reg.Property.TelegramChatID,
			CreatedAt:      reg.Property.CreatedAt.Format(time.RFC3339),
		},
	}
	if reg.AccessControl != nil && len(reg.AccessControl.Grants) > 0 {
		resp.Role = string(reg.AccessControl.Grants[0].Role)
	}
	return resp
}

func ToBedAssignmentResponse(r *domain.BedAssignmentReport) BedAssignmentResponse {
	resp := BedAssignmentResponse{
		PropertyID:      r.PropertyID,
		Date:            r.Day.String(),
		Assigned:        r.Assigned,
		Failed:          make(map[string]string, len(r.Failed)),
		FailedRoomTypes: make(map[string]string, len(r.FailedRoomTypes)),
	}
	if resp.Assigned == nil {
		resp.Assigned = []string{}
	}
	for id, err := range r.Failed {
		resp.Failed[id] = err.Error()
	}
	for id, err := range r.FailedRoomTypes {
		resp.FailedRoomTypes[id] = err.Error()
	}
	return resp
}
