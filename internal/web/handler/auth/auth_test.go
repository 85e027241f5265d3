package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/barangay-is/barangay-is/internal/config"
	"github.com/barangay-is/barangay-is/internal/db/models"
	"github.com/barangay-is/barangay-is/internal/token"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	signer, err := token.NewSigner("test-secret", time.Hour)
	require.NoError(t, err)

	app := fiber.New()

	var s Service
	s.Init(app, &config.Config{}, db, signer)

	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)

	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	defer resp.Body.Close()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	return body
}

func TestRegister(t *testing.T) {
	t.Run("creates account with Staff default role", func(t *testing.T) {
		app, _ := setupApp(t)

		resp := postJSON(t, app, Path+"/register",
			`{"username":"clerk","password":"s3cret","full_name":"Clerk One"}`)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		body := decode(t, resp)
		assert.Equal(t, "clerk", body["username"])
		assert.Equal(t, "Clerk One", body["full_name"])
		assert.Equal(t, models.RoleStaff, body["role"])
		assert.NotContains(t, body, "password")
		assert.NotContains(t, body, "password_hash")
	})

	t.Run("duplicate username", func(t *testing.T) {
		app, _ := setupApp(t)

		resp := postJSON(t, app, Path+"/register",
			`{"username":"clerk","password":"s3cret","full_name":"Clerk One"}`)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
		resp.Body.Close()

		resp = postJSON(t, app, Path+"/register",
			`{"username":"clerk","password":"other","full_name":"Clerk Two"}`)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, MsgUsernameTaken, decode(t, resp)["message"])
	})

	t.Run("missing fields", func(t *testing.T) {
		app, db := setupApp(t)

		resp := postJSON(t, app, Path+"/register", `{}`)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()

		var count int64
		db.Model(&models.User{}).Count(&count)
		assert.EqualValues(t, 0, count)
	})

	t.Run("malformed body", func(t *testing.T) {
		app, _ := setupApp(t)

		resp := postJSON(t, app, Path+"/register", `{`)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestLogin(t *testing.T) {
	app, _ := setupApp(t)

	resp := postJSON(t, app, Path+"/register",
		`{"username":"clerk","password":"s3cret","full_name":"Clerk One"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	t.Run("valid credentials return token and user", func(t *testing.T) {
		resp := postJSON(t, app, Path+"/login", `{"username":"clerk","password":"s3cret"}`)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decode(t, resp)
		assert.NotEmpty(t, body["token"])

		u, ok := body["user"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "clerk", u["username"])
	})

	t.Run("wrong password", func(t *testing.T) {
		resp := postJSON(t, app, Path+"/login", `{"username":"clerk","password":"wrong"}`)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, MsgInvalidCredentials, decode(t, resp)["message"])
	})

	t.Run("unknown user", func(t *testing.T) {
		resp := postJSON(t, app, Path+"/login", `{"username":"ghost","password":"whatever"}`)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})
}

// TestRegisterLoginMeRoundTrip walks the full account flow: register, login
// with the same credentials, then read the identity back with the token.
func TestRegisterLoginMeRoundTrip(t *testing.T) {
	app, _ := setupApp(t)

	resp := postJSON(t, app, Path+"/register",
		`{"username":"clerk","password":"s3cret","full_name":"Clerk One"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, app, Path+"/login", `{"username":"clerk","password":"s3cret"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	tokenString, ok := decode(t, resp)["token"].(string)
	require.True(t, ok)

	req := httptest.NewRequest(http.MethodGet, Path+"/me", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tokenString)

	meResp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, meResp.StatusCode)

	me := decode(t, meResp)
	assert.Equal(t, "clerk", me["username"])
	assert.Equal(t, "Clerk One", me["full_name"])
	assert.Equal(t, models.RoleStaff, me["role"])
}

func TestMeRequiresToken(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, Path+"/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}
