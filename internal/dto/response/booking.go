package response

import (
	"time"

	"eldercare-booking/internal/data/entity"
)

type CompanionshipResponse struct {
	ID            string    `json:"id"`
	CompanionType string    `json:"companionType"`
	Date          time.Time `json:"date"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type HomeNursingResponse struct {
	ID        string    `json:"id"`
	NurseType string    `json:"nurseType"`
	Date      time.Time `json:"date"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func CompanionshipToResponse(booking *entity.Companionship) CompanionshipResponse {
	return CompanionshipResponse{
		ID:            booking.ID.String(),
		CompanionType: booking.CompanionType,
		Date:          booking.Date,
		Notes:         booking.Notes,
		CreatedAt:     booking.CreatedAt,
	}
}

func HomeNursingToResponse(booking *entity.HomeNursing) HomeNursingResponse {
	return HomeNursingResponse{
		ID:        booking.ID.String(),
		NurseType: booking.NurseType,
		Date:      booking.Date,
		Notes:     booking.Notes,
		CreatedAt: booking.CreatedAt,
	}
}
