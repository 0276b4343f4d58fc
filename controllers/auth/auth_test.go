package authController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"prflow/config"
	"prflow/database"
	"prflow/models"
	authRoutes "prflow/routers/authRoutes"
	userRoutes "prflow/routers/userRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.LoadConfig()

	dsn := fmt.Sprintf("file:authtest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)

	return app, db
}

func createUserWithPassword(t *testing.T, db *gorm.DB, name, email, role, status, password string) models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Name:       name,
		Email:      email,
		Password:   string(hashed),
		Department: "Operations",
		Position:   "Staff",
		Role:       role,
		Status:     status,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, apiResponse) {
	t.Helper()

	raw := []byte(nil)
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp.StatusCode, parsed
}

func extractToken(t *testing.T, resp apiResponse) string {
	t.Helper()
	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

func TestLogin(t *testing.T) {
	app, db := setupApp(t)
	createUserWithPassword(t, db, "Jane", "jane@example.com", models.RoleEmployee, models.UserActive, "secret123")

	code, resp := doJSON(t, app, http.MethodPost, "/auth/login", "",
		fiber.Map{"email": "jane@example.com", "password": "secret123"})
	require.Equal(t, http.StatusOK, code, resp.Message)

	token := extractToken(t, resp)

	// token works against a protected route
	code, me := doJSON(t, app, http.MethodGet, "/user/me", token, nil)
	require.Equal(t, http.StatusOK, code)

	var user models.User
	require.NoError(t, json.Unmarshal(me.Data, &user))
	assert.Equal(t, "jane@example.com", user.Email)
	assert.Empty(t, user.Password)
}

func TestLoginWrongPassword(t *testing.T) {
	app, db := setupApp(t)
	createUserWithPassword(t, db, "Jane", "jane@example.com", models.RoleEmployee, models.UserActive, "secret123")

	code, _ := doJSON(t, app, http.MethodPost, "/auth/login", "",
		fiber.Map{"email": "jane@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = doJSON(t, app, http.MethodPost, "/auth/login", "",
		fiber.Map{"email": "nobody@example.com", "password": "secret123"})
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestLoginInactiveAccount(t *testing.T) {
	app, db := setupApp(t)
	createUserWithPassword(t, db, "Jane", "jane@example.com", models.RoleEmployee, models.UserInactive, "secret123")

	code, _ := doJSON(t, app, http.MethodPost, "/auth/login", "",
		fiber.Map{"email": "jane@example.com", "password": "secret123"})
	assert.Equal(t, http.StatusForbidden, code)
}

func TestLoginAs(t *testing.T) {
	app, db := setupApp(t)
	admin := createUserWithPassword(t, db, "John", "admin@example.com", models.RoleAdmin, models.UserActive, "secret123")
	target := createUserWithPassword(t, db, "Jane", "jane@example.com", models.RoleEmployee, models.UserActive, "secret123")

	code, resp := doJSON(t, app, http.MethodPost, "/auth/login", "",
		fiber.Map{"email": "admin@example.com", "password": "secret123"})
	require.Equal(t, http.StatusOK, code)
	adminToken := extractToken(t, resp)

	code, resp = doJSON(t, app, http.MethodPost, "/auth/login-as", adminToken,
		fiber.Map{"userId": target.ID})
	require.Equal(t, http.StatusOK, code, resp.Message)
	targetToken := extractToken(t, resp)

	// issued token carries the target identity
	code, me := doJSON(t, app, http.MethodGet, "/user/me", targetToken, nil)
	require.Equal(t, http.StatusOK, code)
	var user models.User
	require.NoError(t, json.Unmarshal(me.Data, &user))
	assert.Equal(t, "jane@example.com", user.Email)

	// non-admins cannot impersonate
	code, _ = doJSON(t, app, http.MethodPost, "/auth/login-as", targetToken,
		fiber.Map{"userId": admin.ID})
	assert.Equal(t, http.StatusForbidden, code)

	// unknown target
	code, _ = doJSON(t, app, http.MethodPost, "/auth/login-as", adminToken,
		fiber.Map{"userId": 9999})
	assert.Equal(t, http.StatusNotFound, code)
}
