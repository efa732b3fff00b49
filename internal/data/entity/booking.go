package entity

import (
	"time"

	"github.com/google/uuid"
)

// Companionship is a booked companionship visit.
type Companionship struct {
	BaseNoDelete
	UserID        uuid.UUID `db:"user_id"`
	CompanionType string    `db:"companion_type"`
	Date          time.Time `db:"date"`
	Notes         *string   `db:"notes"`
}

// HomeNursing is a booked home-nursing visit.
type HomeNursing struct {
	BaseNoDelete
	UserID    uuid.UUID `db:"user_id"`
	NurseType string    `db:"nurse_type"`
	Date      time.Time `db:"date"`
	Notes     *string   `db:"notes"`
}
