package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"grindup_backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Notification type constants
const (
	NotificationTypeInvitationReceived  = "invitation_received"
	NotificationTypeInvitationResponse  = "invitation_response"
	NotificationTypeApplicationReceived = "application_received"
	NotificationTypeApplicationStatus   = "application_status"
	NotificationTypeProfileApproval     = "profile_approval"
)

type NotificationRepository interface {
	Create(notification *models.Notification) error
	ListByUser(userID string, limit, offset int) ([]models.Notification, int64, error)
	MarkAsRead(userID, notificationID string) error
	MarkAllAsRead(userID string) error
	UnreadCount(userID string) (int64, error)

	// Factory helpers for the notification kinds the lifecycle emits.
	CreateInvitationNotification(collegeUserID, companyName, jobTitle, invitationID string) error
	CreateInvitationResponseNotification(companyUserID, collegeName string, status models.InvitationStatus) error
	CreateApplicationReceivedNotification(companyUserID, collegeName, jobTitle, applicationID string) error
	CreateApplicationStatusNotification(collegeUserID, jobTitle string, status models.ApplicationStatus) error
	CreateApprovalNotification(userID string, status models.ApprovalStatus) error
}

type NotificationRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

func (r *NotificationRepositoryImpl) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *NotificationRepositoryImpl) ListByUser(userID string, limit, offset int) ([]models.Notification, int64, error) {
	var notifications []models.Notification
	var total int64

	query := r.db.Model(&models.Notification{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&notifications).Error
	return notifications, total, err
}

func (r *NotificationRepositoryImpl) MarkAsRead(userID, notificationID string) error {
	now := time.Now()
	result := r.db.Model(&models.Notification{}).Where("id = ? AND user_id = ?", notificationID, userID).
		Updates(map[string]interface{}{"is_read": true, "read_at": now})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepositoryImpl) MarkAllAsRead(userID string) error {
	now := time.Now()
	return r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = false", userID).
		Updates(map[string]interface{}{"is_read": true, "read_at": now}).Error
}

func (r *NotificationRepositoryImpl) UnreadCount(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = false", userID).Count(&count).Error
	return count, err
}

// Factory helpers

func (r *NotificationRepositoryImpl) CreateInvitationNotification(collegeUserID, companyName, jobTitle, invitationID string) error {
	data, _ := json.Marshal(map[string]string{"invitation_id": invitationID})
	return r.Create(&models.Notification{
		UserID:  collegeUserID,
		Type:    NotificationTypeInvitationReceived,
		Title:   "New invitation",
		Message: fmt.Sprintf("%s invited you to apply for %q", companyName, jobTitle),
		Data:    datatypes.JSON(data),
	})
}

func (r *NotificationRepositoryImpl) CreateInvitationResponseNotification(companyUserID, collegeName string, status models.InvitationStatus) error {
	return r.Create(&models.Notification{
		UserID:  companyUserID,
		Type:    NotificationTypeInvitationResponse,
		Title:   "Invitation " + string(status),
		Message: fmt.Sprintf("%s has %s your invitation", collegeName, status),
	})
}

func (r *NotificationRepositoryImpl) CreateApplicationReceivedNotification(companyUserID, collegeName, jobTitle, applicationID string) error {
	data, _ := json.Marshal(map[string]string{"application_id": applicationID})
	return r.Create(&models.Notification{
		UserID:  companyUserID,
		Type:    NotificationTypeApplicationReceived,
		Title:   "New application",
		Message: fmt.Sprintf("%s applied for %q", collegeName, jobTitle),
		Data:    datatypes.JSON(data),
	})
}

func (r *NotificationRepositoryImpl) CreateApplicationStatusNotification(collegeUserID, jobTitle string, status models.ApplicationStatus) error {
	return r.Create(&models.Notification{
		UserID:  collegeUserID,
		Type:    NotificationTypeApplicationStatus,
		Title:   "Application update",
		Message: fmt.Sprintf("Your application for %q is now %s", jobTitle, status),
	})
}

func (r *NotificationRepositoryImpl) CreateApprovalNotification(userID string, status models.ApprovalStatus) error {
	return r.Create(&models.Notification{
		UserID:  userID,
		Type:    NotificationTypeProfileApproval,
		Title:   "Profile " + string(status),
		Message: fmt.Sprintf("Your organization profile has been %s", status),
	})
}
