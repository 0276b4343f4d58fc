package prValidators

import (
	"strings"

	"prflow/middleware"
	"prflow/models"

	"github.com/gofiber/fiber/v2"
)

// A purchase request carries between 1 and 5 items.
const maxItems = 5

var validPriorities = map[string]bool{
	models.PriorityLow:    true,
	models.PriorityMedium: true,
	models.PriorityHigh:   true,
	models.PriorityUrgent: true,
}

type ItemDraft struct {
	ProductName    string  `json:"productName"`
	Quantity       int     `json:"quantity"`
	Unit           string  `json:"unit"`
	EstimatedPrice float64 `json:"estimatedPrice"`
	Priority       string  `json:"priority"`
}

type CreatePRRequest struct {
	Items []ItemDraft `json:"items"`
}

type DecisionRequest struct {
	PRID    uint   `json:"prId"`
	Comment string `json:"comment"`
}

func CreatePR() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreatePRRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(reqData.Items) == 0 {
			errors["items"] = "At least one item is required!"
		} else if len(reqData.Items) > maxItems {
			errors["items"] = "A purchase request can hold at most 5 items!"
		}

		for i := range reqData.Items {
			item := &reqData.Items[i]

			item.ProductName = strings.TrimSpace(item.ProductName)
			if item.ProductName == "" {
				errors["productName"] = "Product name is required for every item!"
			}

			if item.Quantity <= 0 {
				errors["quantity"] = "Quantity must be greater than 0!"
			}

			if item.EstimatedPrice < 0 {
				errors["estimatedPrice"] = "Estimated price must not be negative!"
			}

			item.Unit = strings.TrimSpace(item.Unit)

			item.Priority = strings.ToUpper(strings.TrimSpace(item.Priority))
			if item.Priority == "" {
				item.Priority = models.PriorityMedium
			} else if !validPriorities[item.Priority] {
				errors["priority"] = "Invalid priority! Allowed: LOW, MEDIUM, HIGH, URGENT"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreatePR", reqData)
		return c.Next()
	}
}

func ApprovePR() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(DecisionRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.PRID == 0 {
			errors["prId"] = "PR ID is required!"
		}

		reqData.Comment = strings.TrimSpace(reqData.Comment)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDecision", reqData)
		return c.Next()
	}
}

// RejectPR mirrors ApprovePR but a rejection must say why.
func RejectPR() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(DecisionRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.PRID == 0 {
			errors["prId"] = "PR ID is required!"
		}

		reqData.Comment = strings.TrimSpace(reqData.Comment)
		if reqData.Comment == "" {
			errors["comment"] = "A comment is required when rejecting!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDecision", reqData)
		return c.Next()
	}
}
