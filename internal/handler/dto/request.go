package dto

type RegisterRequest struct {
	Email          string `json:"email"         binding:"required,email"`
	Name           string `json:"name"          binding:"required"`
	Password       string `json:"password"      binding:"required,min=8"`
	PropertyName   string `json:"property_name" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

// Dates are YYYY-MM-DD.
type OverrideRequest struct {
	StartDate          string   `json:"start_date" binding:"required"`
	EndDate            string   `json:"end_date"   binding:"required"`
	CustomRate         *float64 `json:"custom_rate"`
	CustomAvailability *int     `json:"custom_availability"`
}

type CreateRoomTypeRequest struct {
	Description          string            `json:"description"    binding:"required"`
	Type                 string            `json:"type"           binding:"required,oneof=private dorm"`
	MaxOccupancy         int               `json:"max_occupancy"  binding:"required,gt=0"`
	Inventory            int               `json:"inventory"      binding:"required,gt=0"`
	BaseRate             float64           `json:"base_rate"      binding:"gte=0"`
	Currency             string            `json:"currency"       binding:"required,len=3"`
	RatesAndAvailability []OverrideRequest `json:"rates_and_availability" binding:"dive"`
}

type CreateReservationRequest struct {
	GuestID           string   `json:"guest_id"        binding:"required"`
	PropertyID        string   `json:"property_id"     binding:"required,uuid"`
	RoomTypeID        string   `json:"room_type_id"    binding:"required,uuid"`
	Source            string   `json:"source"`
	CheckIn           string   `json:"check_in"        binding:"required"`
	CheckOut          string   `json:"check_out"       binding:"required"`
	NumberOfGuest     int      `json:"number_of_guest" binding:"required,gt=0"`
	TotalPrice        *float64 `json:"total_price"`
	ReservationStatus string   `json:"reservation_status"`
	PaymentStatus     string   `json:"payment_status"`
	SpecialRequest    string   `json:"special_request"`
}

type UpdateStayRequest struct {
	CheckIn       string `json:"check_in"        binding:"required"`
	CheckOut      string `json:"check_out"       binding:"required"`
	NumberOfGuest int    `json:"number_of_guest" binding:"required,gt=0"`
}

type UpdateStatusRequest struct {
	ReservationStatus string `json:"reservation_status" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}
