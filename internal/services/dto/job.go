package dto

import (
	"time"

	"grindup_backend/internal/models"
)

type CreateJobRequest struct {
	Title               string     `json:"title" validate:"required,min=3,max=200"`
	Description         string     `json:"description" validate:"omitempty,max=10000"`
	JobType             string     `json:"job_type" validate:"omitempty,oneof=full-time part-time internship contract"`
	Location            string     `json:"location"`
	SalaryMin           float64    `json:"salary_min" validate:"omitempty,min=0"`
	SalaryMax           float64    `json:"salary_max" validate:"omitempty,min=0,gtefield=SalaryMin"`
	Vacancies           int        `json:"vacancies" validate:"omitempty,min=1"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
	SkillsRequired      []string   `json:"skills_required,omitempty"`
	Status              string     `json:"status" validate:"omitempty,oneof=draft active"`
}

type UpdateJobRequest struct {
	Title               *string    `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Description         *string    `json:"description,omitempty" validate:"omitempty,max=10000"`
	JobType             *string    `json:"job_type,omitempty" validate:"omitempty,oneof=full-time part-time internship contract"`
	Location            *string    `json:"location,omitempty"`
	SalaryMin           *float64   `json:"salary_min,omitempty" validate:"omitempty,min=0"`
	SalaryMax           *float64   `json:"salary_max,omitempty" validate:"omitempty,min=0"`
	Vacancies           *int       `json:"vacancies,omitempty" validate:"omitempty,min=1"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
	SkillsRequired      []string   `json:"skills_required,omitempty"`
	Status              *string    `json:"status,omitempty" validate:"omitempty,oneof=draft active paused closed"`
	IsActive            *bool      `json:"is_active,omitempty"`
}

type JobResponse struct {
	ID                  string           `json:"id"`
	CompanyProfileID    string           `json:"company_profile_id"`
	CompanyName         string           `json:"company_name,omitempty"`
	Title               string           `json:"title"`
	Description         string           `json:"description"`
	JobType             string           `json:"job_type"`
	Location            string           `json:"location"`
	SalaryMin           float64          `json:"salary_min"`
	SalaryMax           float64          `json:"salary_max"`
	Vacancies           int              `json:"vacancies"`
	ApplicationDeadline *time.Time       `json:"application_deadline,omitempty"`
	SkillsRequired      []string         `json:"skills_required"`
	Status              models.JobStatus `json:"status"`
	IsActive            bool             `json:"is_active"`
	IsOpen              bool             `json:"is_open"`
	Stats               *models.JobStats `json:"stats,omitempty"`
	CreatedAt           time.Time        `json:"created_at"`
}
