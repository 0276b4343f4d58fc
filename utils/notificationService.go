package utils

import (
	"fmt"

	"prflow/models"

	"gorm.io/gorm"
)

// NotificationTitle builds the title shown for a notification type.
func NotificationTitle(notifType, prNumber string) string {
	switch notifType {
	case models.NotifPRSubmitted:
		return fmt.Sprintf("%s Submitted", prNumber)
	case models.NotifPRApproved:
		return fmt.Sprintf("%s Approved", prNumber)
	case models.NotifPRRejected:
		return fmt.Sprintf("%s Rejected", prNumber)
	case models.NotifPRPendingApproval:
		return fmt.Sprintf("%s Pending Approval", prNumber)
	default:
		return fmt.Sprintf("%s Update", prNumber)
	}
}

// NotificationMessage builds the body shown for a notification type.
func NotificationMessage(notifType string, pr models.PurchaseRequest) string {
	switch notifType {
	case models.NotifPRSubmitted:
		return fmt.Sprintf("Purchase request submitted by %s for $%.2f", pr.RequesterName, pr.TotalAmount)
	case models.NotifPRApproved:
		return "Purchase request has been fully approved"
	case models.NotifPRRejected:
		return "Purchase request has been rejected"
	case models.NotifPRPendingApproval:
		return fmt.Sprintf("Purchase request is pending approval at step %d", pr.CurrentStep)
	default:
		return "Purchase request updated"
	}
}

// NotifyPRUpdate writes one notification for the requester and, when the
// first admin is a different user, a duplicate with identical content for
// the admin. Runs on the caller's handle so it joins the surrounding
// transaction.
func NotifyPRUpdate(db *gorm.DB, pr *models.PurchaseRequest, notifType string) error {
	notification := models.Notification{
		UserID:   pr.RequesterID,
		Type:     notifType,
		Title:    NotificationTitle(notifType, pr.PRNumber),
		Message:  NotificationMessage(notifType, *pr),
		PRID:     pr.ID,
		PRNumber: pr.PRNumber,
	}

	if err := db.Create(&notification).Error; err != nil {
		return err
	}

	// Also notify the admin
	var admin models.User
	err := db.Where("role = ?", models.RoleAdmin).Order("id ASC").First(&admin).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		return err
	}

	if admin.ID == pr.RequesterID {
		return nil
	}

	adminNotification := models.Notification{
		UserID:   admin.ID,
		Type:     notification.Type,
		Title:    notification.Title,
		Message:  notification.Message,
		PRID:     notification.PRID,
		PRNumber: notification.PRNumber,
	}

	return db.Create(&adminNotification).Error
}
