package models

type UserRole string
type ApprovalStatus string
type JobStatus string
type InvitationStatus string
type ApplicationStatus string

const (
	UserRoleCollege UserRole = "college"
	UserRoleCompany UserRole = "company"
	UserRoleAdmin   UserRole = "admin"

	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"

	JobStatusDraft  JobStatus = "draft"
	JobStatusActive JobStatus = "active"
	JobStatusPaused JobStatus = "paused"
	JobStatusClosed JobStatus = "closed"

	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusDeclined InvitationStatus = "declined"

	ApplicationStatusApplied            ApplicationStatus = "applied"
	ApplicationStatusUnderReview        ApplicationStatus = "under-review"
	ApplicationStatusShortlisted        ApplicationStatus = "shortlisted"
	ApplicationStatusInterviewScheduled ApplicationStatus = "interview-scheduled"
	ApplicationStatusInterviewed        ApplicationStatus = "interviewed"
	ApplicationStatusAccepted           ApplicationStatus = "accepted"
	ApplicationStatusRejected           ApplicationStatus = "rejected"
	ApplicationStatusWithdrawn          ApplicationStatus = "withdrawn"
)

// IsTerminal reports whether an application reached a final decision.
// Terminal applications accept no further status change, including withdrawal.
func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationStatusAccepted || s == ApplicationStatusRejected
}

// ValidApplicationStatuses lists the statuses a company may set on an
// application. Withdrawn is excluded: only the owning college reaches it,
// through the withdraw operation.
var ValidApplicationStatuses = map[ApplicationStatus]bool{
	ApplicationStatusApplied:            true,
	ApplicationStatusUnderReview:        true,
	ApplicationStatusShortlisted:        true,
	ApplicationStatusInterviewScheduled: true,
	ApplicationStatusInterviewed:        true,
	ApplicationStatusAccepted:           true,
	ApplicationStatusRejected:           true,
}
