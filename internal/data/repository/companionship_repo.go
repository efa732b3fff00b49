package repository

import (
	"context"
	"fmt"

	"eldercare-booking/internal/data/entity"
	"eldercare-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CompanionshipRepository interface {
	Create(ctx context.Context, booking *entity.Companionship) error
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Companionship, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}

type companionshipRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCompanionshipRepository(db database.PgxIface, log *zap.Logger) CompanionshipRepository {
	return &companionshipRepository{
		db:  db,
		log: log.With(zap.String("repository", "companionship")),
	}
}

func (r *companionshipRepository) Create(ctx context.Context, booking *entity.Companionship) error {
	query := `
		INSERT INTO companionships (id, user_id, companion_type, date, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.UserID,
		booking.CompanionType,
		booking.Date,
		booking.Notes,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create companionship booking",
			zap.Error(err),
			zap.String("user_id", booking.UserID.String()),
		)
		return fmt.Errorf("create companionship for user %s: %w", booking.UserID.String(), err)
	}

	return nil
}

func (r *companionshipRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Companionship, error) {
	query := `
		SELECT id, user_id, companion_type, date, notes, created_at, updated_at
		FROM companionships
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find companionship bookings",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find companionships for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Companionship
	for rows.Next() {
		var booking entity.Companionship
		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.CompanionType,
			&booking.Date,
			&booking.Notes,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan companionship row", zap.Error(err))
			return nil, fmt.Errorf("scan companionship row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate companionship rows: %w", err)
	}

	return bookings, nil
}

func (r *companionshipRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM companionships WHERE user_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count companionship bookings",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count companionships for user %s: %w", userID.String(), err)
	}

	return count, nil
}
