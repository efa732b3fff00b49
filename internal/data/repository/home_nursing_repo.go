package repository

import (
	"context"
	"fmt"

	"eldercare-booking/internal/data/entity"
	"eldercare-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type HomeNursingRepository interface {
	Create(ctx context.Context, booking *entity.HomeNursing) error
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.HomeNursing, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}

type homeNursingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewHomeNursingRepository(db database.PgxIface, log *zap.Logger) HomeNursingRepository {
	return &homeNursingRepository{
		db:  db,
		log: log.With(zap.String("repository", "home_nursing")),
	}
}

func (r *homeNursingRepository) Create(ctx context.Context, booking *entity.HomeNursing) error {
	query := `
		INSERT INTO home_nursings (id, user_id, nurse_type, date, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.UserID,
		booking.NurseType,
		booking.Date,
		booking.Notes,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create home nursing booking",
			zap.Error(err),
			zap.String("user_id", booking.UserID.String()),
		)
		return fmt.Errorf("create home nursing for user %s: %w", booking.UserID.String(), err)
	}

	return nil
}

func (r *homeNursingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.HomeNursing, error) {
	query := `
		SELECT id, user_id, nurse_type, date, notes, created_at, updated_at
		FROM home_nursings
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find home nursing bookings",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find home nursings for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.HomeNursing
	for rows.Next() {
		var booking entity.HomeNursing
		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.NurseType,
			&booking.Date,
			&booking.Notes,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan home nursing row", zap.Error(err))
			return nil, fmt.Errorf("scan home nursing row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate home nursing rows: %w", err)
	}

	return bookings, nil
}

func (r *homeNursingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM home_nursings WHERE user_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count home nursing bookings",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count home nursings for user %s: %w", userID.String(), err)
	}

	return count, nil
}
