package wire

import (
	"eldercare-booking/internal/adaptor"
	"eldercare-booking/internal/data/repository"
	"eldercare-booking/pkg/middleware"
	"eldercare-booking/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePayment(
	r chi.Router,
	paymentHandler *adaptor.PaymentHandler,
	repo *repository.Repository,
	tokens *token.Service,
	log *zap.Logger,
) {
	// Intent creation requires a logged-in user so every intent stays
	// attributable to the account that opened it.
	r.With(middleware.Auth(tokens, repo.User, log)).
		Post("/api/create-payment-intent", paymentHandler.CreateIntent)
}
