package services

import (
	"grindup_backend/internal/email"
	"grindup_backend/internal/logger"
	"grindup_backend/internal/models"
)

// EmailService wraps the notifier collaborator with domain-level send
// methods. Every method is best-effort: failures are logged and
// reported, never escalated into the primary operation's result.
type EmailService struct {
	provider email.Provider
}

func NewEmailService(provider email.Provider) *EmailService {
	return &EmailService{provider: provider}
}

func (s *EmailService) SendVerificationOTP(to, code string, ttlMinutes int) bool {
	return s.send(to, "Verify your GrindUp account", email.TemplateVerificationOTP, email.TemplateData{
		"Code":       code,
		"TTLMinutes": ttlMinutes,
	})
}

func (s *EmailService) SendApprovalDecision(to, name string, status models.ApprovalStatus) bool {
	return s.send(to, "Your profile review is complete", email.TemplateApprovalDecision, email.TemplateData{
		"Name":     name,
		"Decision": string(status),
	})
}

func (s *EmailService) SendApplicationReceived(to, collegeName, jobTitle string) bool {
	return s.send(to, "New application received", email.TemplateApplicationReceipt, email.TemplateData{
		"CollegeName": collegeName,
		"JobTitle":    jobTitle,
	})
}

func (s *EmailService) SendApplicationConfirmation(to, jobTitle, companyName string) bool {
	return s.send(to, "Application submitted", email.TemplateApplicationSent, email.TemplateData{
		"JobTitle":    jobTitle,
		"CompanyName": companyName,
	})
}

func (s *EmailService) SendInvitation(to, companyName, jobTitle string, message *string) bool {
	data := email.TemplateData{
		"CompanyName": companyName,
		"JobTitle":    jobTitle,
	}
	if message != nil {
		data["Message"] = *message
	}
	return s.send(to, "You have been invited to apply", email.TemplateInvitation, data)
}

func (s *EmailService) SendPasswordReset(to, token string) bool {
	return s.send(to, "Password reset", email.TemplatePasswordReset, email.TemplateData{
		"Token": token,
	})
}

func (s *EmailService) send(to, subject, templateName string, data email.TemplateData) bool {
	if err := s.provider.SendTemplate([]string{to}, subject, templateName, data); err != nil {
		logger.Warn("email delivery failed", "template", templateName, "to", to, "error", err)
		return false
	}
	return true
}
