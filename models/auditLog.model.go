package models

import (
	"gorm.io/gorm"
)

// AuditLog records who did what to a purchase request. Append-only.
type AuditLog struct {
	gorm.Model
	PRID     uint   `json:"pr_id" gorm:"not null;index"`
	Action   string `json:"action" gorm:"not null"`
	UserID   uint   `json:"user_id" gorm:"not null"`
	UserName string `json:"user_name"`
	Details  string `json:"details" gorm:"default:''"`
}
