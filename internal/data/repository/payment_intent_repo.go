package repository

import (
	"context"
	"fmt"

	"eldercare-booking/internal/data/entity"
	"eldercare-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PaymentIntentRepository interface {
	Create(ctx context.Context, intent *entity.PaymentIntent) error
	FindByIntentID(ctx context.Context, intentID string) (*entity.PaymentIntent, error)
}

type paymentIntentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentIntentRepository(db database.PgxIface, log *zap.Logger) PaymentIntentRepository {
	return &paymentIntentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment_intent")),
	}
}

func (r *paymentIntentRepository) Create(ctx context.Context, intent *entity.PaymentIntent) error {
	query := `
		INSERT INTO payment_intents (id, user_id, intent_id, amount, currency, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		intent.ID,
		intent.UserID,
		intent.IntentID,
		intent.Amount,
		intent.Currency,
		intent.Status,
		intent.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to record payment intent",
			zap.Error(err),
			zap.String("intent_id", intent.IntentID),
			zap.String("user_id", intent.UserID.String()),
		)
		return fmt.Errorf("create payment intent %s: %w", intent.IntentID, err)
	}

	return nil
}

func (r *paymentIntentRepository) FindByIntentID(ctx context.Context, intentID string) (*entity.PaymentIntent, error) {
	query := `
		SELECT id, user_id, intent_id, amount, currency, status, created_at
		FROM payment_intents
		WHERE intent_id = $1
	`

	var intent entity.PaymentIntent
	err := r.db.QueryRow(ctx, query, intentID).Scan(
		&intent.ID,
		&intent.UserID,
		&intent.IntentID,
		&intent.Amount,
		&intent.Currency,
		&intent.Status,
		&intent.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment intent",
			zap.Error(err),
			zap.String("intent_id", intentID),
		)
		return nil, fmt.Errorf("find payment intent %s: %w", intentID, err)
	}

	return &intent, nil
}
