package identity

import (
	"github.com/stockline/backend/internal/domain/shared"
)

// UserRegisteredEvent fires when a new account is created.
type UserRegisteredEvent struct {
	shared.BaseDomainEvent
	Email string `json:"email"`
}

// NewUserRegisteredEvent creates a UserRegisteredEvent
func NewUserRegisteredEvent(u *User) *UserRegisteredEvent {
	return &UserRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("identity.user.registered", "User", u.ID, u.ID),
		Email:           u.Email,
	}
}
