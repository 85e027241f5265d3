package household

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
	require.NoError(t, db.AutoMigrate(&models.Resident{}, &models.Household{}, &models.HouseholdMember{}))

	app := fiber.New()

	var s Service
	s.Init(app, &config.Config{}, db, passThrough)

	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	return resp
}

func TestListIncludesMemberCounts(t *testing.T) {
	app, db := setupApp(t)

	require.NoError(t, db.Create(&[]models.Resident{
		{LastName: "Cruz", FirstName: "Ana", Sex: "Female"},
		{LastName: "Cruz", FirstName: "Ben", Sex: "Male"},
	}).Error)
	require.NoError(t, db.Create(&[]models.Household{
		{HouseholdName: "Cruz Family", Address: "Purok 1"},
		{HouseholdName: "Abad Family", Address: "Purok 2"},
	}).Error)
	require.NoError(t, db.Create(&[]models.HouseholdMember{
		{HouseholdID: 1, ResidentID: 1, RelationToHead: "Head"},
		{HouseholdID: 1, ResidentID: 2, RelationToHead: "Spouse"},
	}).Error)

	resp := doJSON(t, app, http.MethodGet, Path, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	defer resp.Body.Close()

	var rows []struct {
		HouseholdName string `json:"household_name"`
		MemberCount   int64  `json:"member_count"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
	require.Len(t, rows, 2)

	// ordered by name, zero-member household still listed
	assert.Equal(t, "Abad Family", rows[0].HouseholdName)
	assert.EqualValues(t, 0, rows[0].MemberCount)
	assert.Equal(t, "Cruz Family", rows[1].HouseholdName)
	assert.EqualValues(t, 2, rows[1].MemberCount)
}

func TestCreateAndUpdate(t *testing.T) {
	app, _ := setupApp(t)

	resp := doJSON(t, app, http.MethodPost, Path, `{"household_name":"Cruz Family","address":"Purok 1"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var row struct {
		ID          uint  `json:"id"`
		MemberCount int64 `json:"member_count"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&row))
	resp.Body.Close()
	assert.NotZero(t, row.ID)
	assert.EqualValues(t, 0, row.MemberCount)

	resp = doJSON(t, app, http.MethodPut, Path+"/1", `{"household_name":"Cruz Compound","address":"Purok 1","purok":"1"}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPut, Path+"/999", `{"household_name":"X","address":"Y"}`)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestCreateRequiresNameAndAddress(t *testing.T) {
	app, db := setupApp(t)

	for _, body := range []string{`{}`, `{"household_name":"Cruz Family"}`, `{"address":"Purok 1"}`} {
		resp := doJSON(t, app, http.MethodPost, Path, body)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "body %s", body)
		resp.Body.Close()
	}

	var count int64
	db.Model(&models.Household{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestMembers(t *testing.T) {
	app, db := setupApp(t)

	require.NoError(t, db.Create(&models.Household{HouseholdName: "Cruz Family", Address: "Purok 1"}).Error)
	require.NoError(t, db.Create(&models.Resident{LastName: "Cruz", FirstName: "Ana", Sex: "Female"}).Error)

	resp := doJSON(t, app, http.MethodPost, Path+"/1/members", `{"resident_id":1,"relation_to_head":"Head"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, Path+"/1/members", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	defer resp.Body.Close()

	var rows []struct {
		ResidentID     uint   `json:"resident_id"`
		LastName       string `json:"last_name"`
		RelationToHead string `json:"relation_to_head"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Cruz", rows[0].LastName)
	assert.Equal(t, "Head", rows[0].RelationToHead)
}

func TestAddMemberValidation(t *testing.T) {
	app, _ := setupApp(t)

	// unknown household
	resp := doJSON(t, app, http.MethodPost, Path+"/999/members", `{"resident_id":1}`)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestAddMemberRequiresResidentID(t *testing.T) {
	app, db := setupApp(t)

	require.NoError(t, db.Create(&models.Household{HouseholdName: "Cruz Family", Address: "Purok 1"}).Error)

	resp := doJSON(t, app, http.MethodPost, Path+"/1/members", `{}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}
