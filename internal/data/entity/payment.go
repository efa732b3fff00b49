package entity

import "github.com/google/uuid"

type PaymentIntentStatus string

const (
	PaymentIntentCreated PaymentIntentStatus = "created"
)

// PaymentIntent records an intent opened with the payment processor so
// paid bookings stay reconcilable. Amount is in minor currency units.
// The client secret is intentionally not stored.
type PaymentIntent struct {
	BaseSimple
	UserID   uuid.UUID           `db:"user_id"`
	IntentID string              `db:"intent_id"`
	Amount   int64               `db:"amount"`
	Currency string              `db:"currency"`
	Status   PaymentIntentStatus `db:"status"`
}
