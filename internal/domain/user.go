package domain

import "time"

type Role string

const (
	RoleOwner   Role = "owner"
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Property struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	CreatedBy      string    `json:"created_by"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type Grant struct {
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
}

// AccessControl links a property to the users allowed to act on it.
type AccessControl struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"property_id"`
	Grants     []Grant   `json:"grants"`
	CreatedAt  time.Time `json:"created_at"`
}

type RegisterInput struct {
	Email          string `validate:"required,email"`
	Name           string `validate:"required"`
	Password       string `validate:"required,min=8"`
	PropertyName   string `validate:"required"`
	TelegramChatID *int64
}

// Registration is what onboarding persisted.
type Registration struct {
	User          *User
	Property      *Property
	AccessControl *AccessControl
}
