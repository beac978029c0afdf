package entity

import (
	"time"

	"github.com/google/uuid"
)

// Purchase records a subscription plan bought by a business owner.
type Purchase struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Plan        string    `json:"plan"`  // Plan display name, e.g. "Monthly", "Yearly".
	Price       string    `json:"price"` // Display price as shown at purchase time.
	PurchasedAt time.Time `json:"purchased_at"`
}

// HelpRequest is a support message submitted from the help screen.
type HelpRequest struct {
	ID        uuid.UUID  `json:"id"`
	UserID    *uuid.UUID `json:"user_id,omitempty"` // Nil when submitted before signing in.
	Subject   string     `json:"subject"`
	Message   string     `json:"message"`
	CreatedAt time.Time  `json:"created_at"`
}
