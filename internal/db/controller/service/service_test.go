package service

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

	err = db.AutoMigrate(&models.Resident{}, &models.Service{}, &models.ServiceBeneficiary{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func TestListBeneficiaryCounts(t *testing.T) {
	db := setupTestDB(t)

	older, err := Create(db, models.Service{ServiceName: "Feeding Program", ServiceDate: "2025-07-01"})
	require.NoError(t, err)
	assert.EqualValues(t, 0, older.BeneficiaryCount)

	newer, err := Create(db, models.Service{ServiceName: "Medical Mission", ServiceDate: "2025-08-01"})
	require.NoError(t, err)

	r := models.Resident{LastName: "Santos", FirstName: "Maria", Sex: "Female"}
	require.NoError(t, db.Create(&r).Error)

	_, err = AddBeneficiary(db, newer.ID, r.ID, "senior citizen")
	require.NoError(t, err)

	rows, err := List(db)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// newest service date first; zero-beneficiary service still listed
	assert.Equal(t, "Medical Mission", rows[0].ServiceName)
	assert.EqualValues(t, 1, rows[0].BeneficiaryCount)
	assert.Equal(t, "Feeding Program", rows[1].ServiceName)
	assert.EqualValues(t, 0, rows[1].BeneficiaryCount)
}

func TestUpdate(t *testing.T) {
	db := setupTestDB(t)

	created, err := Create(db, models.Service{ServiceName: "Feeding Program"})
	require.NoError(t, err)

	updated, err := Update(db, created.ID, models.Service{
		ServiceName: "Feeding Program 2025",
		Location:    "Covered Court",
	})
	require.NoError(t, err)
	assert.Equal(t, "Feeding Program 2025", updated.ServiceName)
	assert.Equal(t, "Covered Court", updated.Location)

	_, err = Update(db, 999, models.Service{ServiceName: "X"})
	require.ErrorIs(t, err, ErrServiceNotFound)
}

func TestBeneficiaries(t *testing.T) {
	db := setupTestDB(t)

	s, err := Create(db, models.Service{ServiceName: "Medical Mission"})
	require.NoError(t, err)

	r1 := models.Resident{LastName: "Reyes", FirstName: "Ben", Sex: "Male"}
	r2 := models.Resident{LastName: "Cruz", FirstName: "Ana", Sex: "Female"}
	require.NoError(t, db.Create(&r1).Error)
	require.NoError(t, db.Create(&r2).Error)

	added, err := AddBeneficiary(db, s.ID, r1.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "Ben", added.FirstName)

	_, err = AddBeneficiary(db, s.ID, r2.ID, "pwd")
	require.NoError(t, err)

	rows, err := Beneficiaries(db, s.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// ordered by resident name
	assert.Equal(t, "Cruz", rows[0].LastName)
	assert.Equal(t, "pwd", rows[0].Notes)
	assert.Equal(t, "Reyes", rows[1].LastName)
}
