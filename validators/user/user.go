package userValidators

import (
	"regexp"
	"strings"

	"prflow/middleware"
	"prflow/models"

	"github.com/gofiber/fiber/v2"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

var validRoles = map[string]bool{
	models.RoleAdmin:      true,
	models.RoleCLevel:     true,
	models.RoleSupervisor: true,
	models.RoleEmployee:   true,
}

var validStatuses = map[string]bool{
	models.UserActive:   true,
	models.UserInactive: true,
}

type CreateUserRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Role       string `json:"role"`
}

type UpdateUserRequest struct {
	UserID     uint    `json:"userId"`
	Name       *string `json:"name"`
	Department *string `json:"department"`
	Position   *string `json:"position"`
	Role       *string `json:"role"`
	Status     *string `json:"status"`
}

func CreateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateUserRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Name = strings.TrimSpace(reqData.Name)
		if reqData.Name == "" {
			errors["name"] = "Name is required!"
		} else if len(reqData.Name) > 100 {
			errors["name"] = "Name must not exceed 100 characters!"
		}

		reqData.Email = strings.TrimSpace(strings.ToLower(reqData.Email))
		if reqData.Email == "" {
			errors["email"] = "Email is required!"
		} else if !emailRegex.MatchString(reqData.Email) {
			errors["email"] = "Invalid email address!"
		}

		if len(reqData.Password) < 8 {
			errors["password"] = "Password must be at least 8 characters long!"
		}

		reqData.Department = strings.TrimSpace(reqData.Department)
		if reqData.Department == "" {
			errors["department"] = "Department is required!"
		}

		reqData.Position = strings.TrimSpace(reqData.Position)
		if reqData.Position == "" {
			errors["position"] = "Position is required!"
		}

		reqData.Role = strings.ToUpper(strings.TrimSpace(reqData.Role))
		if reqData.Role == "" {
			reqData.Role = models.RoleEmployee
		} else if !validRoles[reqData.Role] {
			errors["role"] = "Invalid role! Allowed: ADMIN, C_LEVEL, SUPERVISOR, EMPLOYEE"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateUser", reqData)
		return c.Next()
	}
}

func UpdateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateUserRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.UserID == 0 {
			errors["userId"] = "User ID is required!"
		}

		if reqData.Name != nil {
			*reqData.Name = strings.TrimSpace(*reqData.Name)
			if *reqData.Name == "" {
				errors["name"] = "Name must not be empty!"
			}
		}

		if reqData.Role != nil {
			*reqData.Role = strings.ToUpper(strings.TrimSpace(*reqData.Role))
			if !validRoles[*reqData.Role] {
				errors["role"] = "Invalid role! Allowed: ADMIN, C_LEVEL, SUPERVISOR, EMPLOYEE"
			}
		}

		if reqData.Status != nil {
			*reqData.Status = strings.ToUpper(strings.TrimSpace(*reqData.Status))
			if !validStatuses[*reqData.Status] {
				errors["status"] = "Invalid status! Allowed: ACTIVE, INACTIVE"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUpdateUser", reqData)
		return c.Next()
	}
}
