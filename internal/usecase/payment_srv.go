package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"eldercare-booking/internal/data/entity"
	"eldercare-booking/internal/data/repository"
	"eldercare-booking/internal/dto/request"
	"eldercare-booking/internal/dto/response"
	"eldercare-booking/pkg/payment"
	"eldercare-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// minimumAmount is the smallest accepted charge in major currency units.
const minimumAmount = 1

// PaymentProcessor opens payment intents with the external processor.
// Amounts are in minor currency units.
type PaymentProcessor interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (*payment.Intent, error)
}

type PaymentService interface {
	CreateIntent(ctx context.Context, userID uuid.UUID, req *request.PaymentIntentRequest) (*response.PaymentIntentResponse, error)
}

type paymentService struct {
	repo      *repository.Repository
	processor PaymentProcessor
	currency  string
	log       *zap.Logger
}

func NewPaymentService(
	repo *repository.Repository,
	processor PaymentProcessor,
	currency string,
	log *zap.Logger,
) PaymentService {
	return &paymentService{
		repo:      repo,
		processor: processor,
		currency:  currency,
		log:       log,
	}
}

func (s *paymentService) CreateIntent(ctx context.Context, userID uuid.UUID, req *request.PaymentIntentRequest) (*response.PaymentIntentResponse, error) {
	// 1. Validate before any processor contact
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Payment intent validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("invalid amount")
	}
	if req.Amount < minimumAmount {
		s.log.Warn("Amount below minimum", zap.Float64("amount", req.Amount))
		return nil, fmt.Errorf("invalid amount")
	}

	// 2. Major units -> minor units, rounded half-up on the scaled value
	// so fractional amounts like 499.5 charge exactly 49950
	amountMinor := int64(math.Round(req.Amount * 100))

	// 3. Open the intent with the processor. The raw error stays in the
	// logs; the client only sees a generic failure.
	intent, err := s.processor.CreateIntent(ctx, amountMinor, s.currency)
	if err != nil {
		s.log.Error("Payment processor error",
			zap.Error(err),
			zap.Int64("amount", amountMinor),
			zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("payment failed")
	}

	// 4. Record the intent against the user so the booking payment can
	// be reconciled later. The client already holds a usable secret, so
	// a failed write is logged rather than failing the request.
	record := &entity.PaymentIntent{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:   userID,
		IntentID: intent.ID,
		Amount:   amountMinor,
		Currency: s.currency,
		Status:   entity.PaymentIntentCreated,
	}
	if err := s.repo.PaymentIntent.Create(ctx, record); err != nil {
		s.log.Warn("Failed to record payment intent",
			zap.Error(err),
			zap.String("intent_id", intent.ID),
			zap.String("user_id", userID.String()))
	}

	s.log.Info("Payment intent created",
		zap.String("intent_id", intent.ID),
		zap.Int64("amount", amountMinor),
		zap.String("currency", s.currency),
		zap.String("user_id", userID.String()))

	return &response.PaymentIntentResponse{
		ClientSecret: intent.ClientSecret,
	}, nil
}
