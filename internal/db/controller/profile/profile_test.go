package profile

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

	err = db.AutoMigrate(&models.BarangayProfile{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func TestGet(t *testing.T) {
	t.Run("nil database", func(t *testing.T) {
		p, err := Get(nil)
		require.ErrorIs(t, err, ErrDBNil)
		assert.Nil(t, p)
	})

	t.Run("absent row returns defaults not an error", func(t *testing.T) {
		db := setupTestDB(t)

		p, err := Get(db)
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, uint(models.SingletonID), p.ID)
		assert.Empty(t, p.BarangayName)
	})
}

func TestSave(t *testing.T) {
	db := setupTestDB(t)

	in := models.BarangayProfile{
		BarangayName: "San Roque",
		Municipality: "Quezon City",
		Province:     "Metro Manila",
	}

	created, err := Save(db, in)
	require.NoError(t, err)
	assert.Equal(t, uint(models.SingletonID), created.ID)
	assert.Equal(t, "San Roque", created.BarangayName)

	// second write updates in place
	in.PlaceIssued = "Quezon City Hall"
	updated, err := Save(db, in)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Quezon City Hall", updated.PlaceIssued)

	var count int64
	db.Model(&models.BarangayProfile{}).Count(&count)
	assert.EqualValues(t, 1, count, "upsert must never create a second row")
}

func TestSaveIdempotent(t *testing.T) {
	db := setupTestDB(t)

	in := models.BarangayProfile{
		BarangayName: "San Roque",
		Municipality: "Quezon City",
		Province:     "Metro Manila",
	}

	first, err := Save(db, in)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		again, err := Save(db, in)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
