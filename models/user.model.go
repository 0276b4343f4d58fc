package models

import (
	"gorm.io/gorm"
)

// User roles
const (
	RoleAdmin      = "ADMIN"
	RoleCLevel     = "C_LEVEL"
	RoleSupervisor = "SUPERVISOR"
	RoleEmployee   = "EMPLOYEE"
)

// User statuses
const (
	UserActive   = "ACTIVE"
	UserInactive = "INACTIVE"
)

type User struct {
	gorm.Model
	Name       string `json:"name" gorm:"default:''"`
	Email      string `json:"email" gorm:"unique;not null"`
	Password   string `json:"-" gorm:"not null"`
	Department string `json:"department" gorm:"default:''"`
	Position   string `json:"position" gorm:"default:''"`
	Role       string `json:"role" gorm:"default:'EMPLOYEE'"` // ADMIN, C_LEVEL, SUPERVISOR, EMPLOYEE
	Status     string `json:"status" gorm:"default:'ACTIVE'"` // ACTIVE, INACTIVE
}
