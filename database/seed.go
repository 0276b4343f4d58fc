package database

import (
	"log"
	"time"

	"prflow/config"
	"prflow/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedDemoData loads the demo directory (one user per role) and a sample
// pending purchase request. Runs only against an empty users table.
func SeedDemoData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Demo seed skipped: users already exist.")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("ChangeMe123!"), config.AppConfig.SaltRound)
	if err != nil {
		return err
	}

	users := []models.User{
		{Name: "John Admin", Email: "admin@titancapital.com", Password: string(hashed),
			Department: "IT", Position: "System Administrator", Role: models.RoleAdmin},
		{Name: "Sarah CEO", Email: "ceo@titancapital.com", Password: string(hashed),
			Department: "Executive", Position: "Chief Executive Officer", Role: models.RoleCLevel},
		{Name: "Mike Supervisor", Email: "supervisor@titancapital.com", Password: string(hashed),
			Department: "Operations", Position: "Operations Manager", Role: models.RoleSupervisor},
		{Name: "Jane Employee", Email: "employee@titancapital.com", Password: string(hashed),
			Department: "Operations", Position: "Operations Specialist", Role: models.RoleEmployee},
	}

	if err := db.Create(&users).Error; err != nil {
		return err
	}

	requester := users[3]
	pr := models.PurchaseRequest{
		PRNumber:            "PR-" + time.Now().UTC().Format("20060102") + "01",
		RequesterID:         requester.ID,
		RequesterName:       requester.Name,
		RequesterPosition:   requester.Position,
		RequesterDepartment: requester.Department,
		RequesterEmail:      requester.Email,
		Status:              models.PRPending,
		CurrentStep:         1,
		TotalSteps:          models.PRTotalSteps,
		TotalAmount:         2500,
		Items: []models.PRItem{
			{ProductName: "Office Chairs", Quantity: 5, Unit: "pieces", EstimatedPrice: 300, Priority: models.PriorityMedium},
			{ProductName: "Standing Desks", Quantity: 2, Unit: "pieces", EstimatedPrice: 1000, Priority: models.PriorityHigh},
		},
		AuditLogs: []models.AuditLog{
			{Action: "PR Created", UserID: requester.ID, UserName: requester.Name,
				Details: "Purchase request submitted for approval"},
		},
	}

	if err := db.Create(&pr).Error; err != nil {
		return err
	}

	log.Println("Demo data seeded: 4 users, 1 pending purchase request.")
	return nil
}
