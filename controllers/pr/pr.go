package prController

import (
	"fmt"
	"log"
	"time"

	"prflow/database"
	"prflow/middleware"
	"prflow/models"
	"prflow/utils"
	prValidators "prflow/validators/pr"

	"github.com/gofiber/fiber/v2"
)

// CreatePR submits a new purchase request. The requester's profile is
// snapshotted onto the request, the total is computed once from the items,
// and the request enters the approval chain at step 1.
func CreatePR(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND status = ?", userId, models.UserActive).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedCreatePR").(*prValidators.CreatePRRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	totalAmount := 0.0
	for _, draft := range reqData.Items {
		totalAmount += float64(draft.Quantity) * draft.EstimatedPrice
	}

	// The PR number is derived from rows already committed, so two submits
	// racing for the same slot make the loser's insert hit the pr_number
	// unique constraint. Retry with a freshly derived number. Item rows are
	// rebuilt per attempt because a rolled-back insert leaves IDs behind.
	var pr models.PurchaseRequest
	for attempt := 0; ; attempt++ {
		items := make([]models.PRItem, len(reqData.Items))
		for i, draft := range reqData.Items {
			items[i] = models.PRItem{
				ProductName:    draft.ProductName,
				Quantity:       draft.Quantity,
				Unit:           draft.Unit,
				EstimatedPrice: draft.EstimatedPrice,
				Priority:       draft.Priority,
			}
		}

		tx := db.Begin()

		prNumber, err := utils.GeneratePRNumber(tx, time.Now())
		if err != nil {
			tx.Rollback()
			log.Printf("Error generating PR number: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create purchase request!", nil)
		}

		pr = models.PurchaseRequest{
			PRNumber:            prNumber,
			RequesterID:         user.ID,
			RequesterName:       user.Name,
			RequesterPosition:   user.Position,
			RequesterDepartment: user.Department,
			RequesterEmail:      user.Email,
			Status:              models.PRPending,
			CurrentStep:         1,
			TotalSteps:          models.PRTotalSteps,
			TotalAmount:         totalAmount,
			Items:               items,
			AuditLogs: []models.AuditLog{
				{Action: "PR Created", UserID: user.ID, UserName: user.Name,
					Details: "Purchase request submitted for approval"},
			},
		}

		if err := tx.Create(&pr).Error; err != nil {
			tx.Rollback()
			if utils.IsDuplicatePRNumber(err) && attempt < 2 {
				continue
			}
			log.Printf("Error saving purchase request: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create purchase request!", nil)
		}

		if err := utils.NotifyPRUpdate(tx, &pr, models.NotifPRSubmitted); err != nil {
			tx.Rollback()
			log.Printf("Error creating notifications for %s: %v", pr.PRNumber, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create purchase request!", nil)
		}

		if err := tx.Commit().Error; err != nil {
			log.Printf("Error committing purchase request %s: %v", pr.PRNumber, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create purchase request!", nil)
		}
		break
	}

	go utils.SendPRStatusEmail(pr.RequesterEmail, pr.RequesterName, pr, models.NotifPRSubmitted)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Purchase request created successfully!", pr)
}

// PRList returns the purchase requests visible to the authenticated user,
// newest first.
func PRList(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ?", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	query := utils.VisiblePRQuery(db, user)

	var total int64
	query.Count(&total)

	var prs []models.PurchaseRequest
	if err := query.Preload("Items").Preload("Approvals").Preload("AuditLogs").
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&prs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch purchase requests!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Purchase requests fetched successfully!", fiber.Map{
		"purchase_requests": prs,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// PRDetail returns one purchase request with its items, approvals and audit
// trail. Requests outside the user's visible set read as not found.
func PRDetail(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ?", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	prId, err := c.ParamsInt("id")
	if err != nil || prId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid purchase request ID!", nil)
	}

	var pr models.PurchaseRequest
	if err := db.Preload("Items").Preload("Approvals").Preload("AuditLogs").
		Where("id = ?", prId).First(&pr).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Purchase request not found!", nil)
	}

	if !utils.CanViewPR(user, pr) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Purchase request not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Purchase request fetched successfully!", fiber.Map{
		"purchase_request": pr,
		"can_approve":      utils.CanApprovePR(user, pr),
	})
}

// ApprovePR records an approval at the current step. The request advances to
// the next step, or becomes APPROVED when the last step signs off.
func ApprovePR(c *fiber.Ctx) error {
	return decidePR(c, models.DecisionApproved)
}

// RejectPR records a rejection. Rejection at any step is final.
func RejectPR(c *fiber.Ctx) error {
	return decidePR(c, models.DecisionRejected)
}

// decidePR is the single entry point for approval decisions. Authorization
// lives here, not in the UI: the acting user must be a valid approver for
// the request's current step, and decisions on terminal requests are
// refused outright. Approval row, audit entry, status change and
// notification fan-out commit as one transaction.
func decidePR(c *fiber.Ctx, decision string) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND status = ?", userId, models.UserActive).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedDecision").(*prValidators.DecisionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var pr models.PurchaseRequest
	if err := db.Where("id = ?", reqData.PRID).First(&pr).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Purchase request not found!", nil)
	}

	if pr.Status != models.PRPending {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Purchase request is not pending!", nil)
	}

	if !utils.CanApprovePR(user, pr) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not authorized to decide this request at its current step!", nil)
	}

	details := reqData.Comment
	if details == "" {
		details = "No comment provided"
	}

	tx := db.Begin()

	approval := models.Approval{
		PRID:         pr.ID,
		Step:         pr.CurrentStep,
		ApproverID:   user.ID,
		ApproverName: user.Name,
		Decision:     decision,
		Comment:      reqData.Comment,
	}
	if err := tx.Create(&approval).Error; err != nil {
		tx.Rollback()
		log.Printf("Error recording approval for %s: %v", pr.PRNumber, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record decision!", nil)
	}

	var action, notifType string
	if decision == models.DecisionApproved {
		action = fmt.Sprintf("Step %d Approved", pr.CurrentStep)
		if pr.CurrentStep >= pr.TotalSteps {
			pr.Status = models.PRApproved
			notifType = models.NotifPRApproved
		} else {
			pr.CurrentStep++
			notifType = models.NotifPRPendingApproval
		}
	} else {
		action = fmt.Sprintf("PR Rejected at Step %d", pr.CurrentStep)
		pr.Status = models.PRRejected
		notifType = models.NotifPRRejected
	}

	auditEntry := models.AuditLog{
		PRID:     pr.ID,
		Action:   action,
		UserID:   user.ID,
		UserName: user.Name,
		Details:  details,
	}
	if err := tx.Create(&auditEntry).Error; err != nil {
		tx.Rollback()
		log.Printf("Error recording audit entry for %s: %v", pr.PRNumber, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record decision!", nil)
	}

	if err := tx.Save(&pr).Error; err != nil {
		tx.Rollback()
		log.Printf("Error updating purchase request %s: %v", pr.PRNumber, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record decision!", nil)
	}

	if err := utils.NotifyPRUpdate(tx, &pr, notifType); err != nil {
		tx.Rollback()
		log.Printf("Error creating notifications for %s: %v", pr.PRNumber, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record decision!", nil)
	}

	if err := tx.Commit().Error; err != nil {
		log.Printf("Error committing decision on %s: %v", pr.PRNumber, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record decision!", nil)
	}

	go utils.SendPRStatusEmail(pr.RequesterEmail, pr.RequesterName, pr, notifType)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Decision recorded successfully!", pr)
}
