package service

import (
	"context"

	"atmos/internal/gateway"
	"atmos/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock of the repository.UserRepository interface.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByName(ctx context.Context, name string) (*models.User, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockWeatherRepository is a mock of the repository.WeatherRepository interface.
type MockWeatherRepository struct {
	mock.Mock
}

func (m *MockWeatherRepository) Create(ctx context.Context, record *models.WeatherRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockWeatherRepository) ListByUser(ctx context.Context, userID uint) ([]models.WeatherRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WeatherRecord), args.Error(1)
}

func (m *MockWeatherRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockGateway is a mock of the gateway.API interface.
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CurrentWeather(ctx context.Context, lat, lon float64) (*models.WeatherSnapshot, error) {
	args := m.Called(ctx, lat, lon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WeatherSnapshot), args.Error(1)
}

func (m *MockGateway) AirQuality(ctx context.Context, lat, lon float64) (float64, error) {
	args := m.Called(ctx, lat, lon)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockGateway) Timezone(ctx context.Context, lat, lon float64, timestamp int64) (*gateway.TimezoneInfo, error) {
	args := m.Called(ctx, lat, lon, timestamp)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.TimezoneInfo), args.Error(1)
}

func (m *MockGateway) BackgroundImage(ctx context.Context, query string) (*gateway.BackgroundImage, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.BackgroundImage), args.Error(1)
}

func (m *MockGateway) GeocodeCity(ctx context.Context, name string) (gateway.Place, bool, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(gateway.Place), args.Bool(1), args.Error(2)
}

func (m *MockGateway) ReverseGeocode(ctx context.Context, lat, lon float64) (gateway.Place, bool, error) {
	args := m.Called(ctx, lat, lon)
	return args.Get(0).(gateway.Place), args.Bool(1), args.Error(2)
}
