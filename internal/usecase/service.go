package usecase

import (
	"eldercare-booking/internal/data/repository"
	"eldercare-booking/pkg/token"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Booking BookingService
	Payment PaymentService
}

func NewService(
	repo *repository.Repository,
	tokens *token.Service,
	processor PaymentProcessor,
	currency string,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:    NewAuthService(repo, tokens, log),
		User:    NewUserService(repo.User, log),
		Booking: NewBookingService(repo, log),
		Payment: NewPaymentService(repo, processor, currency, log),
	}
}
