package wire

import (
	"net/http"
	"time"

	"eldercare-booking/internal/adaptor"
	"eldercare-booking/internal/data/repository"
	"eldercare-booking/internal/usecase"
	"eldercare-booking/pkg/middleware"
	"eldercare-booking/pkg/payment"
	"eldercare-booking/pkg/token"
	"eldercare-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired application
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	processor := payment.NewStripeClient(config.Payment.SecretKey, logger)
	return WiringWithProcessor(repo, processor, config, logger)
}

// WiringWithProcessor wires everything around an explicit payment
// processor so tests can inject a fake.
func WiringWithProcessor(
	repo *repository.Repository,
	processor usecase.PaymentProcessor,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	tokens := token.NewService(
		config.JWT.Secret,
		time.Duration(config.JWT.ExpiryHours)*time.Hour,
		logger,
	)

	service := usecase.NewService(repo, tokens, processor, config.Payment.Currency, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, tokens, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	tokens *token.Service,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Feature routes
	wireAuth(r, handler, repo, tokens, logger)
	wireBooking(r, handler.Booking, repo, tokens, logger)
	wirePayment(r, handler.Payment, repo, tokens, logger)

	// Health check endpoint
	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, "Server is running", nil)
	})

	return r
}
