package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// CollegeProfile is the business-facing record for a college identity.
// One profile per user; ApprovalStatus is flipped only by admin action.
type CollegeProfile struct {
	BaseModel
	UserID             string         `gorm:"uniqueIndex;not null" json:"user_id"`
	CollegeName        string         `gorm:"uniqueIndex;not null" json:"college_name"`
	Email              string         `gorm:"uniqueIndex;not null" json:"email"`
	City               string         `json:"city"`
	Website            string         `json:"website"`
	ContactPerson      string         `json:"contact_person"`
	Phone              string         `json:"phone"`
	Description        string         `json:"description"`
	PlacementStats     datatypes.JSON `gorm:"type:jsonb" json:"placement_stats"` // {"year": {"placed": n, "total": n}}
	PlacementRecordURL string         `json:"placement_record_url"`              // opaque, stored verbatim
	ApprovalStatus     ApprovalStatus `gorm:"type:varchar(20);default:'pending'" json:"approval_status"`
}

// GetPlacementStats decodes the stats blob into a generic map.
func (c *CollegeProfile) GetPlacementStats() map[string]any {
	stats := make(map[string]any)
	if len(c.PlacementStats) > 0 {
		_ = json.Unmarshal(c.PlacementStats, &stats)
	}
	return stats
}

// SetPlacementStats encodes the stats map into the JSONB column.
func (c *CollegeProfile) SetPlacementStats(stats map[string]any) {
	data, _ := json.Marshal(stats)
	c.PlacementStats = datatypes.JSON(data)
}

// CompanyProfile is the business-facing record for a company identity.
type CompanyProfile struct {
	BaseModel
	UserID         string         `gorm:"uniqueIndex;not null" json:"user_id"`
	CompanyName    string         `gorm:"uniqueIndex;not null" json:"company_name"`
	Email          string         `gorm:"uniqueIndex;not null" json:"email"`
	Industry       string         `json:"industry"`
	CompanySize    string         `json:"company_size"`
	Location       string         `json:"location"`
	Website        string         `json:"website"`
	ContactPerson  string         `json:"contact_person"`
	Phone          string         `json:"phone"`
	Description    string         `json:"description"`
	ApprovalStatus ApprovalStatus `gorm:"type:varchar(20);default:'pending'" json:"approval_status"`

	// Relations
	Jobs []JobPosting `gorm:"foreignKey:CompanyProfileID" json:"jobs,omitempty"`
}
