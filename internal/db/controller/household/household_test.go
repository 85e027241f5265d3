package household

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/barangay-is/barangay-is/internal/db/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.Resident{}, &models.Household{}, &models.HouseholdMember{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func seedResident(t *testing.T, db *gorm.DB, last, first string) models.Resident {
	t.Helper()

	r := models.Resident{LastName: last, FirstName: first, Sex: "Female"}
	require.NoError(t, db.Create(&r).Error)

	return r
}

func TestListMemberCounts(t *testing.T) {
	db := setupTestDB(t)

	empty, err := Create(db, models.Household{HouseholdName: "Dela Cruz Residence", Address: "Purok 1"})
	require.NoError(t, err)

	full, err := Create(db, models.Household{HouseholdName: "Santos Residence", Address: "Purok 2"})
	require.NoError(t, err)

	r1 := seedResident(t, db, "Santos", "Maria")
	r2 := seedResident(t, db, "Santos", "Jose")

	_, err = AddMember(db, full.ID, r1.ID, "Head")
	require.NoError(t, err)
	_, err = AddMember(db, full.ID, r2.ID, "Spouse")
	require.NoError(t, err)

	rows, err := List(db)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// ordered by household name; zero-member household still listed
	assert.Equal(t, "Dela Cruz Residence", rows[0].HouseholdName)
	assert.EqualValues(t, 0, rows[0].MemberCount)
	assert.Equal(t, "Santos Residence", rows[1].HouseholdName)
	assert.EqualValues(t, 2, rows[1].MemberCount)

	_ = empty
}

func TestCountTracksChildTable(t *testing.T) {
	db := setupTestDB(t)

	h, err := Create(db, models.Household{HouseholdName: "Reyes Residence", Address: "Purok 3"})
	require.NoError(t, err)
	assert.EqualValues(t, 0, h.MemberCount)

	for i, name := range []string{"Ana", "Ben", "Carla"} {
		r := seedResident(t, db, "Reyes", name)

		_, err = AddMember(db, h.ID, r.ID, "Child")
		require.NoError(t, err)

		got, err := GetByID(db, h.ID)
		require.NoError(t, err)
		assert.EqualValues(t, i+1, got.MemberCount, "count must reflect the child table at read time")
	}
}

func TestUpdate(t *testing.T) {
	db := setupTestDB(t)

	h, err := Create(db, models.Household{HouseholdName: "Reyes Residence", Address: "Purok 3"})
	require.NoError(t, err)

	updated, err := Update(db, h.ID, models.Household{
		HouseholdName: "Reyes Compound",
		Address:       "Purok 4",
		Purok:         "4",
	})
	require.NoError(t, err)
	assert.Equal(t, "Reyes Compound", updated.HouseholdName)
	assert.Equal(t, "4", updated.Purok)

	_, err = Update(db, 999, models.Household{HouseholdName: "X", Address: "Y"})
	require.ErrorIs(t, err, ErrHouseholdNotFound)
}

func TestMembers(t *testing.T) {
	db := setupTestDB(t)

	h, err := Create(db, models.Household{HouseholdName: "Santos Residence", Address: "Purok 2"})
	require.NoError(t, err)

	rB := seedResident(t, db, "Santos", "Bea")
	rA := seedResident(t, db, "Santos", "Ana")

	_, err = AddMember(db, h.ID, rB.ID, "Child")
	require.NoError(t, err)

	added, err := AddMember(db, h.ID, rA.ID, "Head")
	require.NoError(t, err)
	assert.Equal(t, "Ana", added.FirstName)
	assert.Equal(t, rA.ID, added.ResidentID)
	assert.Equal(t, "Head", added.RelationToHead)

	members, err := Members(db, h.ID)
	require.NoError(t, err)
	require.Len(t, members, 2)

	// ordered by resident name
	assert.Equal(t, "Ana", members[0].FirstName)
	assert.Equal(t, "Bea", members[1].FirstName)

	// unknown household simply has no members
	members, err = Members(db, 999)
	require.NoError(t, err)
	assert.Empty(t, members)
}
