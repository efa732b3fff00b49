package request

import "time"

type CompanionshipRequest struct {
	CompanionType string    `json:"companionType" validate:"required"`
	Date          time.Time `json:"date" validate:"required"`
	Notes         *string   `json:"notes,omitempty"`
}

type HomeNursingRequest struct {
	NurseType string    `json:"nurseType" validate:"required"`
	Date      time.Time `json:"date" validate:"required"`
	Notes     *string   `json:"notes,omitempty"`
}
