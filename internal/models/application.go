package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// ProcessTracking is the timestamp ledger recording when an application
// reached each lifecycle milestone. A field is written exactly when the
// matching status is first set.
type ProcessTracking struct {
	AppliedAt            *time.Time `json:"applied_at,omitempty"`
	UnderReviewAt        *time.Time `json:"under_review_at,omitempty"`
	ShortlistedAt        *time.Time `json:"shortlisted_at,omitempty"`
	InterviewScheduledAt *time.Time `json:"interview_scheduled_at,omitempty"`
	InterviewedAt        *time.Time `json:"interviewed_at,omitempty"`
	FinalDecisionAt      *time.Time `json:"final_decision_at,omitempty"`
	Decision             string     `json:"decision,omitempty"` // accepted or rejected
}

// Application records a college's candidacy for a job posting, created
// either directly or by accepting an invitation. At most one application
// exists per (job, college) pair; the unique index is the concurrency
// backstop for racing invitation accepts.
type Application struct {
	BaseModel
	JobID            string            `gorm:"not null;uniqueIndex:idx_app_job_college" json:"job_id"`
	CollegeProfileID string            `gorm:"not null;uniqueIndex:idx_app_job_college" json:"college_profile_id"`
	Status           ApplicationStatus `gorm:"type:varchar(30);default:'applied'" json:"status"`
	CoverLetter      string            `json:"cover_letter"`
	ResumeURL        string            `json:"resume_url"`
	Skills           datatypes.JSON    `gorm:"type:jsonb" json:"skills"`
	Feedback         string            `json:"feedback"`
	Notes            string            `json:"notes"`
	AppliedAt        time.Time         `gorm:"not null" json:"applied_at"`

	IsWithdrawn     bool       `gorm:"default:false" json:"is_withdrawn"`
	WithdrawnAt     *time.Time `json:"withdrawn_at,omitempty"`
	WithdrawnReason string     `json:"withdrawn_reason,omitempty"`

	Tracking ProcessTracking `gorm:"embedded;embeddedPrefix:tracking_" json:"process_tracking"`

	// Relations
	Job     *JobPosting     `gorm:"foreignKey:JobID" json:"job,omitempty"`
	College *CollegeProfile `gorm:"foreignKey:CollegeProfileID" json:"college,omitempty"`
}

func (a *Application) GetSkills() []string {
	var skills []string
	if len(a.Skills) > 0 {
		_ = json.Unmarshal(a.Skills, &skills)
	}
	return skills
}

func (a *Application) SetSkills(skills []string) {
	data, _ := json.Marshal(skills)
	a.Skills = datatypes.JSON(data)
}
