package wire

import (
	"eldercare-booking/internal/adaptor"
	"eldercare-booking/internal/data/repository"
	"eldercare-booking/pkg/middleware"
	"eldercare-booking/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	tokens *token.Service,
	log *zap.Logger,
) {
	auth := middleware.Auth(tokens, repo.User, log)

	r.With(auth).Post("/api/companionship", bookingHandler.CreateCompanionship)
	r.With(auth).Get("/api/companionship", bookingHandler.ListCompanionships)
	r.With(auth).Post("/api/home-nursing", bookingHandler.CreateHomeNursing)
	r.With(auth).Get("/api/home-nursing", bookingHandler.ListHomeNursings)
}
