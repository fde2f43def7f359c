package models

import "time"

// User is the login identity. Business data lives on the role's
// organization profile; Role is immutable after creation.
type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`
	IsVerified   bool     `gorm:"default:false" json:"is_verified"`

	// VerificationCode and VerificationExpiry are set together at
	// registration and cleared together when the code is consumed.
	VerificationCode   *string    `json:"-"`
	VerificationExpiry *time.Time `json:"-"`

	ResetToken    string     `json:"-"`
	ResetTokenExp *time.Time `json:"-"`

	// Relations
	CollegeProfile *CollegeProfile `gorm:"foreignKey:UserID" json:"college_profile,omitempty"`
	CompanyProfile *CompanyProfile `gorm:"foreignKey:UserID" json:"company_profile,omitempty"`
	RefreshTokens  []RefreshToken  `gorm:"foreignKey:UserID" json:"-"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index" json:"user_id"`
	Token     string    `gorm:"not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}
