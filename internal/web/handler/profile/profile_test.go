package profile

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/barangay-is/barangay-is/internal/config"
	"github.com/barangay-is/barangay-is/internal/db/models"
)

func passThrough(c *fiber.Ctx) error { return c.Next() }

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.BarangayProfile{}))

	app := fiber.New()

	var s Service
	s.Init(app, &config.Config{}, db, passThrough)

	return app, db
}

func getProfile(t *testing.T, app *fiber.App) models.BarangayProfile {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, Path, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	defer resp.Body.Close()

	var p models.BarangayProfile
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))

	return p
}

func putJSON(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPut, Path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)

	return resp
}

func TestGetReturnsDefaultObjectWhenUnsaved(t *testing.T) {
	app, _ := setupApp(t)

	p := getProfile(t, app)
	assert.EqualValues(t, models.SingletonID, p.ID)
	assert.Empty(t, p.BarangayName)
}

func TestSaveRoundTrip(t *testing.T) {
	app, db := setupApp(t)

	resp := putJSON(t, app,
		`{"barangay_name":"San Roque","municipality":"Naga","province":"Camarines Sur","place_issued":"Naga City"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	p := getProfile(t, app)
	assert.Equal(t, "San Roque", p.BarangayName)
	assert.Equal(t, "Naga", p.Municipality)
	assert.Equal(t, "Camarines Sur", p.Province)
	assert.Equal(t, "Naga City", p.PlaceIssued)

	// repeated writes keep a single row
	resp = putJSON(t, app,
		`{"barangay_name":"San Roque","municipality":"Naga","province":"Camarines Sur"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var count int64
	db.Model(&models.BarangayProfile{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestSaveValidation(t *testing.T) {
	app, db := setupApp(t)

	for _, body := range []string{
		`{}`,
		`{"barangay_name":"San Roque"}`,
		`{"barangay_name":"San Roque","municipality":"Naga"}`,
	} {
		resp := putJSON(t, app, body)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "body %s", body)
		resp.Body.Close()
	}

	var count int64
	db.Model(&models.BarangayProfile{}).Count(&count)
	assert.EqualValues(t, 0, count)
}
