package notificationValidators

import (
	"prflow/middleware"

	"github.com/gofiber/fiber/v2"
)

type MarkReadRequest struct {
	NotificationID uint `json:"notificationId"`
}

func MarkRead() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(MarkReadRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.NotificationID == 0 {
			errors["notificationId"] = "Notification ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedMarkRead", reqData)
		return c.Next()
	}
}
