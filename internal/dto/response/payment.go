package response

// PaymentIntentResponse is the minimum a client needs to complete
// confirmation with the processor.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
