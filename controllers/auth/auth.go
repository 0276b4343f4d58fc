package authController

import (
	"log"

	"prflow/database"
	"prflow/middleware"
	"prflow/models"
	authValidators "prflow/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Login checks credentials and returns a signed JWT for the user.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidators.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	if user.Status != models.UserActive {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Account is inactive!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		log.Printf("Error generating token for %s: %v", user.Email, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged in successfully!", fiber.Map{
		"token": token,
		"user":  user,
	})
}

// LoginAs lets an admin obtain a token for another user. This replaces the
// mobile app's "switch current user" demo mode: identity still changes, but
// only through an admin-issued token instead of a process-wide pointer.
func LoginAs(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var admin models.User
	if err := db.Where("id = ? AND role = ?", userId, models.RoleAdmin).First(&admin).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	reqData, ok := c.Locals("validatedLoginAs").(*authValidators.LoginAsRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var target models.User
	if err := db.Where("id = ?", reqData.UserID).First(&target).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if target.Status != models.UserActive {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Target account is inactive!", nil)
	}

	token, err := middleware.GenerateJWT(target.ID, target.Name, target.Role, target.Email)
	if err != nil {
		log.Printf("Error generating token for %s: %v", target.Email, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	target.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Token issued!", fiber.Map{
		"token": token,
		"user":  target,
	})
}
