package payment

import (
	"context"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"go.uber.org/zap"
)

// Intent is the artifact returned after opening a payment intent with
// the processor. The client secret is handed to the caller and never
// persisted.
type Intent struct {
	ID           string
	ClientSecret string
}

type StripeClient struct {
	api *client.API
	log *zap.Logger
}

func NewStripeClient(secretKey string, log *zap.Logger) *StripeClient {
	api := &client.API{}
	api.Init(secretKey, nil)

	return &StripeClient{
		api: api,
		log: log.With(zap.String("processor", "stripe")),
	}
}

// CreateIntent opens a payment intent for a minor-unit amount with
// automatic payment-method negotiation enabled.
func (c *StripeClient) CreateIntent(ctx context.Context, amount int64, currency string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}

	pi, err := c.api.PaymentIntents.New(params)
	if err != nil {
		c.log.Error("Failed to create payment intent",
			zap.Error(err),
			zap.Int64("amount", amount),
			zap.String("currency", currency),
		)
		return nil, err
	}

	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
	}, nil
}
