package wire

import (
	"eldercare-booking/internal/adaptor"
	"eldercare-booking/internal/data/repository"
	"eldercare-booking/pkg/middleware"
	"eldercare-booking/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	handler *adaptor.Handler,
	repo *repository.Repository,
	tokens *token.Service,
	log *zap.Logger,
) {
	// Public routes
	r.Post("/api/auth/register", handler.Auth.Register)
	r.Post("/api/auth/login", handler.Auth.Login)

	// Protected routes
	r.With(middleware.Auth(tokens, repo.User, log)).Get("/api/auth/me", handler.User.Me)
}
