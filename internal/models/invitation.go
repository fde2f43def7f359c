package models

import "time"

// Invitation is company-initiated outreach to a college for a job.
// All relations reference profile ids; the identity is resolved once at
// the service boundary. A company may invite a given college to a given
// job at most once (composite unique index).
type Invitation struct {
	BaseModel
	JobID            string           `gorm:"not null;uniqueIndex:idx_invite_triple" json:"job_id"`
	CompanyProfileID string           `gorm:"not null;uniqueIndex:idx_invite_triple" json:"company_profile_id"`
	CollegeProfileID string           `gorm:"not null;uniqueIndex:idx_invite_triple" json:"college_profile_id"`
	Status           InvitationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	Message          *string          `json:"message,omitempty"`
	InvitedAt        time.Time        `gorm:"not null" json:"invited_at"`

	// Relations
	Job     *JobPosting     `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Company *CompanyProfile `gorm:"foreignKey:CompanyProfileID" json:"company,omitempty"`
	College *CollegeProfile `gorm:"foreignKey:CollegeProfileID" json:"college,omitempty"`
}
