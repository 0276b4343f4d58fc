package models

import (
	"gorm.io/gorm"
)

// Approval decisions
const (
	DecisionApproved = "APPROVED"
	DecisionRejected = "REJECTED"
)

// Approval is one recorded decision at a given step of a purchase request.
// Rows are append-only; a decision is never edited or removed.
type Approval struct {
	gorm.Model
	PRID         uint   `json:"pr_id" gorm:"not null;index"`
	Step         int    `json:"step" gorm:"not null"`
	ApproverID   uint   `json:"approver_id" gorm:"not null"`
	ApproverName string `json:"approver_name"`
	Decision     string `json:"decision" gorm:"not null"` // APPROVED, REJECTED
	Comment      string `json:"comment" gorm:"default:''"`
}
