package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// JobStats is the embedded counter summary on a posting. Counters are
// increment-only side effects of application status transitions; they
// are never recomputed from the applications table.
type JobStats struct {
	TotalApplications int `gorm:"default:0" json:"total_applications"`
	Shortlisted       int `gorm:"default:0" json:"shortlisted"`
	Interviewed       int `gorm:"default:0" json:"interviewed"`
	Hired             int `gorm:"default:0" json:"hired"`
	Rejected          int `gorm:"default:0" json:"rejected"`
}

type JobPosting struct {
	BaseModel
	CompanyProfileID    string         `gorm:"not null;index" json:"company_profile_id"`
	Title               string         `gorm:"not null" json:"title"`
	Description         string         `json:"description"`
	JobType             string         `json:"job_type"` // full-time, internship, ...
	Location            string         `json:"location"`
	SalaryMin           float64        `json:"salary_min"`
	SalaryMax           float64        `json:"salary_max"`
	Vacancies           int            `gorm:"default:1" json:"vacancies"`
	ApplicationDeadline *time.Time     `json:"application_deadline"`
	SkillsRequired      datatypes.JSON `gorm:"type:jsonb" json:"skills_required"`
	Status              JobStatus      `gorm:"type:varchar(20);default:'active'" json:"status"`
	IsActive            bool           `gorm:"default:true" json:"is_active"`
	Stats               JobStats       `gorm:"embedded;embeddedPrefix:stats_" json:"stats"`

	// Relations
	Company *CompanyProfile `gorm:"foreignKey:CompanyProfileID" json:"company,omitempty"`
}

// IsOpenForApplications is the single derivation point for "accepting
// applications". Status and IsActive express overlapping concerns; both
// are kept for compatibility but never consulted independently.
func (j *JobPosting) IsOpenForApplications(now time.Time) bool {
	if j.Status != JobStatusActive || !j.IsActive {
		return false
	}
	if j.ApplicationDeadline != nil && now.After(*j.ApplicationDeadline) {
		return false
	}
	return true
}

func (j *JobPosting) GetSkillsRequired() []string {
	var skills []string
	if len(j.SkillsRequired) > 0 {
		_ = json.Unmarshal(j.SkillsRequired, &skills)
	}
	return skills
}

func (j *JobPosting) SetSkillsRequired(skills []string) {
	data, _ := json.Marshal(skills)
	j.SkillsRequired = datatypes.JSON(data)
}
