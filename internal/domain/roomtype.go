package domain

import (
	"time"

	"github.com/stpnv0/HostelBooker/internal/calendar"
)

type RoomKind string

const (
	RoomKindPrivate RoomKind = "private"
	RoomKindDorm    RoomKind = "dorm"
)

// Product is one physical room of a room type.
type Product struct {
	ID   string   `json:"id"`
	Beds []string `json:"beds"`
}

// AvailabilityRange overrides rate and/or capacity on [StartDate, EndDate],
// both ends inclusive.
type AvailabilityRange struct {
	ID                 string       `json:"_id"`
	StartDate          calendar.Day `json:"start_date"`
	EndDate            calendar.Day `json:"end_date"`
	CustomRate         *float64     `json:"custom_rate,omitempty"`
	CustomAvailability *int         `json:"custom_availability,omitempty"`
}

func (r AvailabilityRange) Covers(day calendar.Day) bool {
	return !day.Before(r.StartDate) && !day.After(r.EndDate)
}

// Overlaps reports whether the two inclusive ranges share at least one day.
func (r AvailabilityRange) Overlaps(o AvailabilityRange) bool {
	return !r.EndDate.Before(o.StartDate) && !o.EndDate.Before(r.StartDate)
}

type RoomType struct {
	ID                   string              `json:"id"`
	PropertyID           string              `json:"property_id"`
	Description          string              `json:"description"`
	Kind                 RoomKind            `json:"type"`
	MaxOccupancy         int                 `json:"max_occupancy"`
	Inventory            int                 `json:"inventory"`
	BaseRate             float64             `json:"base_rate"`
	Currency             string              `json:"currency"`
	Products             []Product           `json:"products"`
	RatesAndAvailability []AvailabilityRange `json:"rates_and_availability"`
	Version              int64               `json:"version"`
	CreatedAt            time.Time           `json:"created_at"`
	UpdatedAt            time.Time           `json:"updated_at"`
}

// Beds returns every bed id in room order, then bed order within the room.
func (rt *RoomType) Beds() []string {
	beds := make([]string, 0, rt.BedCount())
	for _, p := range rt.Products {
		beds = append(beds, p.Beds...)
	}
	return beds
}

func (rt *RoomType) BedCount() int {
	n := 0
	for _, p := range rt.Products {
		n += len(p.Beds)
	}
	return n
}

// BedsPerProduct is 1 for private rooms and MaxOccupancy for dorms.
func (rt *RoomType) BedsPerProduct() int {
	if rt.Kind == RoomKindPrivate {
		return 1
	}
	return rt.MaxOccupancy
}

type CreateRoomTypeInput struct {
	Description  string          `validate:"required"`
	Kind         RoomKind        `validate:"required,oneof=private dorm"`
	MaxOccupancy int             `validate:"gt=0"`
	Inventory    int             `validate:"gt=0"`
	BaseRate     float64         `validate:"gte=0"`
	Currency     string          `validate:"required,len=3"`
	Overrides    []OverrideInput `validate:"dive"`
}

type OverrideInput struct {
	StartDate          calendar.Day
	EndDate            calendar.Day
	CustomRate         *float64 `validate:"omitempty,gte=0"`
	CustomAvailability *int     `validate:"omitempty,gte=0"`
}
