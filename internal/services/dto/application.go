package dto

import (
	"time"

	"grindup_backend/internal/models"
)

type ApplyRequest struct {
	CoverLetter string   `json:"cover_letter,omitempty" validate:"omitempty,max=10000"`
	ResumeURL   string   `json:"resume_url,omitempty" validate:"omitempty,url"`
	Skills      []string `json:"skills,omitempty"`
}

type UpdateApplicationStatusRequest struct {
	Status   models.ApplicationStatus `json:"status" validate:"required,oneof=applied under-review shortlisted interview-scheduled interviewed accepted rejected"`
	Feedback string                   `json:"feedback,omitempty" validate:"omitempty,max=5000"`
	Notes    string                   `json:"notes,omitempty" validate:"omitempty,max=5000"`
}

type WithdrawRequest struct {
	Reason string `json:"reason,omitempty" validate:"omitempty,max=1000"`
}

type ApplicationResponse struct {
	ID               string                   `json:"id"`
	JobID            string                   `json:"job_id"`
	JobTitle         string                   `json:"job_title,omitempty"`
	CompanyName      string                   `json:"company_name,omitempty"`
	CollegeProfileID string                   `json:"college_profile_id"`
	CollegeName      string                   `json:"college_name,omitempty"`
	Status           models.ApplicationStatus `json:"status"`
	CoverLetter      string                   `json:"cover_letter,omitempty"`
	ResumeURL        string                   `json:"resume_url,omitempty"`
	Skills           []string                 `json:"skills,omitempty"`
	Feedback         string                   `json:"feedback,omitempty"`
	IsWithdrawn      bool                     `json:"is_withdrawn"`
	WithdrawnAt      *time.Time               `json:"withdrawn_at,omitempty"`
	WithdrawnReason  string                   `json:"withdrawn_reason,omitempty"`
	Tracking         models.ProcessTracking   `json:"process_tracking"`
	AppliedAt        time.Time                `json:"applied_at"`
}
