package handlers

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	ProfileHandler      *ProfileHandler
	JobHandler          *JobHandler
	InvitationHandler   *InvitationHandler
	ApplicationHandler  *ApplicationHandler
	AdminHandler        *AdminHandler
	AnalyticsHandler    *AnalyticsHandler
	NotificationHandler *NotificationHandler
}
