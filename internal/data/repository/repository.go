package repository

import (
	"eldercare-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User          UserRepository
	Companionship CompanionshipRepository
	HomeNursing   HomeNursingRepository
	PaymentIntent PaymentIntentRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:          NewUserRepository(db, log),
		Companionship: NewCompanionshipRepository(db, log),
		HomeNursing:   NewHomeNursingRepository(db, log),
		PaymentIntent: NewPaymentIntentRepository(db, log),
	}
}
