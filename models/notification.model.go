package models

import (
	"gorm.io/gorm"
)

// Notification types
const (
	NotifPRSubmitted       = "PR_SUBMITTED"
	NotifPRApproved        = "PR_APPROVED"
	NotifPRRejected        = "PR_REJECTED"
	NotifPRPendingApproval = "PR_PENDING_APPROVAL"
)

type Notification struct {
	gorm.Model
	UserID   uint   `json:"user_id" gorm:"not null;index"`
	Type     string `json:"type" gorm:"not null"` // PR_SUBMITTED, PR_APPROVED, PR_REJECTED, PR_PENDING_APPROVAL
	Title    string `json:"title"`
	Message  string `json:"message"`
	PRID     uint   `json:"pr_id" gorm:"index"`
	PRNumber string `json:"pr_number"`
	Read     bool   `json:"read" gorm:"default:false"`
}
