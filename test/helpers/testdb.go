package helpers

import (
	"fmt"
	"os"
	"testing"
	"time"

	"grindup_backend/database"
	"grindup_backend/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OpenTestDB connects to the Postgres instance named by DATABASE_URL
// and migrates the schema. Tests calling it are skipped when the
// variable is unset, so the suite stays runnable without a database.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set; skipping integration test")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to test database (%s): %v", dsn, err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// ClearTables wipes all rows between tests.
func ClearTables(t *testing.T, db *gorm.DB) {
	t.Helper()
	err := db.Exec("TRUNCATE TABLE notifications, applications, invitations, job_postings, college_profiles, company_profiles, refresh_tokens, users RESTART IDENTITY CASCADE").Error
	if err != nil {
		t.Fatalf("failed to clear tables: %v", err)
	}
}

// CreateUser inserts a verified user, hashing the raw password.
func CreateUser(t *testing.T, db *gorm.DB, email, password string, role models.UserRole) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		IsVerified:   true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user %s: %v", email, err)
	}
	return user
}

// CreateCollege creates a verified college account with an approved
// profile. Names and emails are stamped to stay unique across calls.
func CreateCollege(t *testing.T, db *gorm.DB) *models.CollegeProfile {
	t.Helper()
	stamp := time.Now().UnixNano()
	email := fmt.Sprintf("college_%d@test.com", stamp)
	user := CreateUser(t, db, email, "password123", models.UserRoleCollege)

	profile := &models.CollegeProfile{
		UserID:         user.ID,
		CollegeName:    fmt.Sprintf("Test College %d", stamp),
		Email:          email,
		City:           "Bengaluru",
		ApprovalStatus: models.ApprovalStatusApproved,
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create college profile: %v", err)
	}
	return profile
}

// CreateCompany creates a verified company account with an approved
// profile.
func CreateCompany(t *testing.T, db *gorm.DB) *models.CompanyProfile {
	t.Helper()
	stamp := time.Now().UnixNano()
	email := fmt.Sprintf("company_%d@test.com", stamp)
	user := CreateUser(t, db, email, "password123", models.UserRoleCompany)

	profile := &models.CompanyProfile{
		UserID:         user.ID,
		CompanyName:    fmt.Sprintf("Test Company %d", stamp),
		Email:          email,
		Industry:       "software",
		ApprovalStatus: models.ApprovalStatusApproved,
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create company profile: %v", err)
	}
	return profile
}

// CreateJob creates an active posting owned by the given company.
func CreateJob(t *testing.T, db *gorm.DB, companyProfileID string) *models.JobPosting {
	t.Helper()
	job := &models.JobPosting{
		CompanyProfileID: companyProfileID,
		Title:            "Backend Engineer",
		JobType:          "full-time",
		Vacancies:        2,
		Status:           models.JobStatusActive,
		IsActive:         true,
	}
	if err := db.Create(job).Error; err != nil {
		t.Fatalf("failed to create job posting: %v", err)
	}
	return job
}
