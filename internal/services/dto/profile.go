package dto

import (
	"grindup_backend/internal/models"
)

type UpdateCollegeProfileRequest struct {
	CollegeName    *string        `json:"college_name,omitempty" validate:"omitempty,min=2,max=200"`
	City           *string        `json:"city,omitempty"`
	Website        *string        `json:"website,omitempty" validate:"omitempty,url"`
	ContactPerson  *string        `json:"contact_person,omitempty"`
	Phone          *string        `json:"phone,omitempty"`
	Description    *string        `json:"description,omitempty" validate:"omitempty,max=5000"`
	PlacementStats map[string]any `json:"placement_stats,omitempty"`
}

type UpdateCompanyProfileRequest struct {
	CompanyName   *string `json:"company_name,omitempty" validate:"omitempty,min=2,max=200"`
	Industry      *string `json:"industry,omitempty"`
	CompanySize   *string `json:"company_size,omitempty"`
	Location      *string `json:"location,omitempty"`
	Website       *string `json:"website,omitempty" validate:"omitempty,url"`
	ContactPerson *string `json:"contact_person,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Description   *string `json:"description,omitempty" validate:"omitempty,max=5000"`
}

type ApprovalRequest struct {
	Action string `json:"action" validate:"required,oneof=approve reject"`
}

type CollegeProfileResponse struct {
	*models.CollegeProfile
	PlacementStats map[string]any `json:"placement_stats"`
}

type ProfileListResponse struct {
	Colleges  []models.CollegeProfile `json:"colleges,omitempty"`
	Companies []models.CompanyProfile `json:"companies,omitempty"`
	Total     int64                   `json:"total"`
}
