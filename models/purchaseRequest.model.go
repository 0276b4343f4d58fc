package models

import (
	"gorm.io/gorm"
)

// Purchase request statuses
const (
	PRDraft    = "DRAFT"
	PRPending  = "PENDING"
	PRApproved = "APPROVED"
	PRRejected = "REJECTED"
)

// Item priorities
const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
	PriorityUrgent = "URGENT"
)

// The two-step approval chain is fixed: step 1 = supervisor, step 2 = C level.
const PRTotalSteps = 2

type PurchaseRequest struct {
	gorm.Model
	PRNumber string `json:"pr_number" gorm:"unique;not null"` // PR-YYYYMMDDNN

	// Requester snapshot, copied at creation time. Not a live reference:
	// later edits to the user must not rewrite historical requests.
	RequesterID         uint   `json:"requester_id" gorm:"not null;index"`
	RequesterName       string `json:"requester_name"`
	RequesterPosition   string `json:"requester_position"`
	RequesterDepartment string `json:"requester_department" gorm:"index"`
	RequesterEmail      string `json:"requester_email"`

	Status      string  `json:"status" gorm:"default:'PENDING';index"` // DRAFT, PENDING, APPROVED, REJECTED
	CurrentStep int     `json:"current_step" gorm:"default:1"`
	TotalSteps  int     `json:"total_steps" gorm:"default:2"`
	TotalAmount float64 `json:"total_amount" gorm:"default:0"`

	Items     []PRItem   `json:"items" gorm:"foreignKey:PRID"`
	Approvals []Approval `json:"approvals" gorm:"foreignKey:PRID"`
	AuditLogs []AuditLog `json:"audit_log" gorm:"foreignKey:PRID"`
}

type PRItem struct {
	gorm.Model
	PRID           uint    `json:"pr_id" gorm:"not null;index"`
	ProductName    string  `json:"product_name" gorm:"not null"`
	Quantity       int     `json:"quantity" gorm:"not null"`
	Unit           string  `json:"unit" gorm:"default:''"`
	EstimatedPrice float64 `json:"estimated_price" gorm:"default:0"`
	Priority       string  `json:"priority" gorm:"default:'MEDIUM'"` // LOW, MEDIUM, HIGH, URGENT
}
