package request

// PaymentIntentRequest carries the amount in major currency units.
type PaymentIntentRequest struct {
	Amount float64 `json:"amount" validate:"required,gte=1"`
}
