package dto

import (
	"time"

	"grindup_backend/internal/models"
)

type SendInvitationRequest struct {
	CollegeProfileID string  `json:"college_profile_id" validate:"required"`
	JobID            string  `json:"job_id" validate:"required"`
	Message          *string `json:"message,omitempty" validate:"omitempty,max=1000"`
}

type InvitationResponse struct {
	ID          string                  `json:"id"`
	JobID       string                  `json:"job_id"`
	JobTitle    string                  `json:"job_title,omitempty"`
	CompanyName string                  `json:"company_name,omitempty"`
	CollegeName string                  `json:"college_name,omitempty"`
	Status      models.InvitationStatus `json:"status"`
	Message     *string                 `json:"message,omitempty"`
	InvitedAt   time.Time               `json:"invited_at"`
}

// AcceptInvitationResponse returns both sides of the atomic accept:
// the resolved invitation and the application it derived.
type AcceptInvitationResponse struct {
	Invitation  *InvitationResponse  `json:"invitation"`
	Application *ApplicationResponse `json:"application"`
}
