package services

import (
	"grindup_backend/internal/email"
	"grindup_backend/internal/repositories"
	"grindup_backend/internal/storage"

	"gorm.io/gorm"
)

// ServiceContainer wires every service over a shared set of
// repositories.
type ServiceContainer struct {
	Auth         AuthService
	Profile      ProfileService
	Job          JobService
	Invitation   InvitationService
	Application  ApplicationService
	Admin        AdminService
	Analytics    AnalyticsService
	Notification NotificationService
	Email        *EmailService
}

func NewServiceContainer(db *gorm.DB, provider email.Provider, store storage.Storage) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	tokenRepo := repositories.NewRefreshTokenRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	invitationRepo := repositories.NewInvitationRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	analyticsRepo := repositories.NewAnalyticsRepository(db)

	emailService := NewEmailService(provider)

	return &ServiceContainer{
		Auth:         NewAuthService(userRepo, profileRepo, tokenRepo, emailService),
		Profile:      NewProfileService(profileRepo, store),
		Job:          NewJobService(jobRepo, profileRepo),
		Invitation:   NewInvitationService(invitationRepo, applicationRepo, jobRepo, profileRepo, notificationRepo, emailService),
		Application:  NewApplicationService(applicationRepo, jobRepo, profileRepo, notificationRepo, emailService),
		Admin:        NewAdminService(profileRepo, notificationRepo, emailService),
		Analytics:    NewAnalyticsService(analyticsRepo),
		Notification: NewNotificationService(notificationRepo),
		Email:        emailService,
	}
}
