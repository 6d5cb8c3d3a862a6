package repository

import (
	"context"
	"testing"
	"time"

	"atmos/internal/database"
	"atmos/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupSQLiteDB gives each test a fresh in-memory database with the full schema.
func setupSQLiteDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func snapshotFixture(tempK float64) models.WeatherSnapshot {
	return models.WeatherSnapshot{
		Name:  "Riga",
		Coord: models.Coordinates{Lat: 56.95, Lon: 24.11},
		Weather: []models.WeatherCondition{
			{Main: "Clouds", Description: "overcast clouds", Icon: "04d"},
		},
		Main: models.WeatherMain{Temp: tempK, FeelsLike: tempK - 1, Humidity: 71, Pressure: 1012},
		Wind: models.WeatherWind{Speed: 4.6},
		Sys:  models.WeatherSys{Country: "LV"},
		Dt:   1717000000,
	}
}

func TestWeatherRepository_RoundTrip(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewWeatherRepository(db)
	ctx := context.Background()

	userID := uint(7)
	captured := time.Date(2024, 5, 29, 18, 0, 0, 0, time.UTC)
	record := &models.WeatherRecord{
		UserID:    &userID,
		City:      "Riga",
		Latitude:  56.95,
		Longitude: 24.11,
		Weather:   snapshotFixture(293.15),
		Timestamp: captured,
	}

	require.NoError(t, repo.Create(ctx, record))

	records, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.Equal(t, "Riga", got.City)
	assert.InDelta(t, 56.95, got.Latitude, 0.0001)
	assert.InDelta(t, 24.11, got.Longitude, 0.0001)
	assert.True(t, captured.Equal(got.Timestamp))
	assert.InDelta(t, 293.15, got.Weather.Main.Temp, 0.0001)
	assert.Equal(t, "overcast clouds", got.Weather.Weather[0].Description)
}

func TestWeatherRepository_InsertionOrder(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewWeatherRepository(db)
	ctx := context.Background()

	userID := uint(7)
	cities := []string{"Riga", "Tallinn", "Vilnius"}
	for _, city := range cities {
		require.NoError(t, repo.Create(ctx, &models.WeatherRecord{
			UserID:    &userID,
			City:      city,
			Weather:   snapshotFixture(280),
			Timestamp: time.Now().UTC(),
		}))
	}

	records, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, records, 3)
	for i, city := range cities {
		assert.Equal(t, city, records[i].City)
	}
}

func TestWeatherRepository_ListByUserEmpty(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewWeatherRepository(db)

	records, err := repo.ListByUser(context.Background(), 999)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestWeatherRepository_DuplicatesAllowed(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewWeatherRepository(db)
	ctx := context.Background()

	userID := uint(7)
	captured := time.Date(2024, 5, 29, 18, 0, 0, 0, time.UTC)
	for i := 0; i < 2; i++ {
		require.NoError(t, repo.Create(ctx, &models.WeatherRecord{
			UserID:    &userID,
			City:      "Riga",
			Weather:   snapshotFixture(293.15),
			Timestamp: captured,
		}))
	}

	records, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestWeatherRepository_DeleteAllIdempotent(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewWeatherRepository(db)
	ctx := context.Background()

	// Deleting from an empty collection still succeeds.
	require.NoError(t, repo.DeleteAll(ctx))

	userID := uint(7)
	require.NoError(t, repo.Create(ctx, &models.WeatherRecord{
		UserID:    &userID,
		City:      "Riga",
		Weather:   snapshotFixture(280),
		Timestamp: time.Now().UTC(),
	}))

	require.NoError(t, repo.DeleteAll(ctx))
	records, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, records)

	require.NoError(t, repo.DeleteAll(ctx))
}

func TestUserRepository_DeleteAllIdempotent(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.DeleteAll(ctx))

	require.NoError(t, repo.Create(ctx, &models.User{Name: "alice", Email: "a@x.com", Password: "hash"}))
	require.NoError(t, repo.DeleteAll(ctx))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	require.NoError(t, repo.DeleteAll(ctx))
}
