package utils

import (
	"prflow/models"

	"gorm.io/gorm"
)

// VisiblePRQuery narrows a purchase request query to the rows the user is
// allowed to see:
//   - ADMIN: everything.
//   - EMPLOYEE: own requests only.
//   - SUPERVISOR: requests from their department, plus every request sitting
//     at step 1 pending, whatever the department. The cross-department part
//     is intentional: any supervisor is a valid step-1 approver.
//   - C_LEVEL: requests sitting at step 2 pending.
func VisiblePRQuery(db *gorm.DB, user models.User) *gorm.DB {
	query := db.Model(&models.PurchaseRequest{})

	switch user.Role {
	case models.RoleAdmin:
		return query
	case models.RoleEmployee:
		return query.Where("requester_id = ?", user.ID)
	case models.RoleSupervisor:
		return query.Where("requester_department = ? OR (status = ? AND current_step = ?)",
			user.Department, models.PRPending, 1)
	case models.RoleCLevel:
		return query.Where("status = ? AND current_step = ?", models.PRPending, 2)
	default:
		return query.Where("1 = 0")
	}
}

// CanViewPR reports whether a single purchase request falls inside the
// user's visible set. Mirrors VisiblePRQuery for loaded rows.
func CanViewPR(user models.User, pr models.PurchaseRequest) bool {
	switch user.Role {
	case models.RoleAdmin:
		return true
	case models.RoleEmployee:
		return pr.RequesterID == user.ID
	case models.RoleSupervisor:
		return pr.RequesterDepartment == user.Department ||
			(pr.Status == models.PRPending && pr.CurrentStep == 1)
	case models.RoleCLevel:
		return pr.Status == models.PRPending && pr.CurrentStep == 2
	default:
		return false
	}
}

// CanApprovePR reports whether the user may decide the request at its
// current step. Only pending requests can be decided: step 1 belongs to
// supervisors of the requester's department, step 2 to C level. Admins may
// decide any pending request, employees none.
func CanApprovePR(user models.User, pr models.PurchaseRequest) bool {
	if pr.Status != models.PRPending {
		return false
	}

	switch user.Role {
	case models.RoleSupervisor:
		return pr.CurrentStep == 1 && pr.RequesterDepartment == user.Department
	case models.RoleCLevel:
		return pr.CurrentStep == 2
	case models.RoleAdmin:
		return true
	default:
		return false
	}
}
