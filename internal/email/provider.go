package email

// Provider is the notifier collaborator. Delivery is best-effort: a
// failed send is logged by the caller and never aborts the operation
// that triggered it.
type Provider interface {
	Send(email *Email) error
	SendTemplate(to []string, subject, templateName string, data TemplateData) error
	Close() error
}

// Template names used by the services.
const (
	TemplateVerificationOTP    = "verification_otp"
	TemplateApprovalDecision   = "approval_decision"
	TemplateApplicationReceipt = "application_receipt"
	TemplateApplicationSent    = "application_sent"
	TemplateInvitation         = "invitation"
	TemplatePasswordReset      = "password_reset"
)
