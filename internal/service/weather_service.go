package service

import (
	"context"
	"strconv"
	"sync"
	"time"

	"atmos/internal/gateway"
	"atmos/internal/models"
	"atmos/internal/repository"
)

// AirQualityUnavailable is the sentinel reported when the air-quality
// provider has no data. It never fails the surrounding weather request.
const AirQualityUnavailable = "N/A"

type WeatherService struct {
	gw          gateway.API
	userRepo    repository.UserRepository
	weatherRepo repository.WeatherRepository
}

func NewWeatherService(gw gateway.API, userRepo repository.UserRepository, weatherRepo repository.WeatherRepository) *WeatherService {
	return &WeatherService{gw: gw, userRepo: userRepo, weatherRepo: weatherRepo}
}

// CurrentConditions fetches weather and air quality for the coordinates. The
// two upstream calls have no data dependency, so they run concurrently and
// are joined before responding.
func (s *WeatherService) CurrentConditions(ctx context.Context, lat, lon float64) (*models.WeatherSnapshot, error) {
	var (
		wg         sync.WaitGroup
		snapshot   *models.WeatherSnapshot
		weatherErr error
		pm25       float64
		airErr     error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		snapshot, weatherErr = s.gw.CurrentWeather(ctx, lat, lon)
	}()
	go func() {
		defer wg.Done()
		pm25, airErr = s.gw.AirQuality(ctx, lat, lon)
	}()
	wg.Wait()

	if weatherErr != nil {
		return nil, weatherErr
	}

	if airErr != nil {
		snapshot.AirQualityIndex = AirQualityUnavailable
	} else {
		snapshot.AirQualityIndex = strconv.FormatFloat(pm25, 'f', 2, 64)
	}

	return snapshot, nil
}

// SaveLookup fetches current conditions and persists them as a WeatherRecord.
// The weather payload, not the stored record, is returned. When a user id is
// supplied the user must exist.
func (s *WeatherService) SaveLookup(ctx context.Context, userID *uint, lat, lon float64) (*models.WeatherSnapshot, error) {
	if userID != nil {
		if _, err := s.userRepo.GetByID(ctx, *userID); err != nil {
			return nil, err
		}
	}

	snapshot, err := s.CurrentConditions(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	record := &models.WeatherRecord{
		UserID:    userID,
		City:      snapshot.Name,
		Latitude:  lat,
		Longitude: lon,
		Weather:   *snapshot,
		Timestamp: time.Unix(snapshot.Dt, 0).UTC(),
	}
	if err := s.weatherRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return snapshot, nil
}

// RecordInput is a client-supplied weather record for the per-user save endpoint.
type RecordInput struct {
	City      string
	Latitude  float64
	Longitude float64
	Weather   models.WeatherSnapshot
	Timestamp time.Time
}

// RecordLookup persists a weather record supplied by the client for the given
// user and returns the stored record.
func (s *WeatherService) RecordLookup(ctx context.Context, userID uint, in RecordInput) (*models.WeatherRecord, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	record := &models.WeatherRecord{
		UserID:    &userID,
		City:      in.City,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		Weather:   in.Weather,
		Timestamp: in.Timestamp,
	}
	if err := s.weatherRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// History returns the user's saved lookups in insertion order. A missing user
// and a user with no history are both 404s, with distinct messages.
func (s *WeatherService) History(ctx context.Context, userID uint) ([]models.WeatherRecord, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	records, err := s.weatherRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, models.NewNotFoundMessage("No weather data found for this user")
	}
	return records, nil
}

// ClearHistory removes every stored weather record. Succeeds even when the
// collection is already empty.
func (s *WeatherService) ClearHistory(ctx context.Context) error {
	return s.weatherRepo.DeleteAll(ctx)
}
