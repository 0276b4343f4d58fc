package dashboardController

import (
	"prflow/database"
	"prflow/middleware"
	"prflow/models"
	"prflow/utils"

	"github.com/gofiber/fiber/v2"
)

// DashboardMetrics returns the summary counters for the authenticated user.
// Totals, approved/rejected counts and total value are company-wide;
// pending_approvals and my_prs are scoped to what the user can see. The
// scoped/global split matches the mobile app this backend replaces.
func DashboardMetrics(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ?", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var totalPRs, approvedPRs, rejectedPRs int64
	db.Model(&models.PurchaseRequest{}).Count(&totalPRs)
	db.Model(&models.PurchaseRequest{}).Where("status = ?", models.PRApproved).Count(&approvedPRs)
	db.Model(&models.PurchaseRequest{}).Where("status = ?", models.PRRejected).Count(&rejectedPRs)

	var totalValue float64
	db.Model(&models.PurchaseRequest{}).Select("COALESCE(SUM(total_amount), 0)").Scan(&totalValue)

	var myPRs, pendingApprovals int64
	utils.VisiblePRQuery(db, user).Count(&myPRs)
	utils.VisiblePRQuery(db, user).Where("status = ?", models.PRPending).Count(&pendingApprovals)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard metrics fetched successfully!", fiber.Map{
		"total_prs":         totalPRs,
		"pending_approvals": pendingApprovals,
		"approved_prs":      approvedPRs,
		"rejected_prs":      rejectedPRs,
		"total_value":       totalValue,
		"my_prs":            myPRs,
	})
}
