package testutil

import (
	"context"

	"donorbot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockDonorRepository is a mock for repository.DonorRepository
type MockDonorRepository struct {
	mock.Mock
}

func (m *MockDonorRepository) Upsert(donor *domain.Donor) error {
	args := m.Called(donor)
	return args.Error(0)
}

func (m *MockDonorRepository) GetByUserID(userID int64) (*domain.Donor, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donor), args.Error(1)
}

func (m *MockDonorRepository) ListByBloodType(bloodType domain.BloodType) ([]domain.Donor, error) {
	args := m.Called(bloodType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Donor), args.Error(1)
}

func (m *MockDonorRepository) ListAll() ([]domain.Donor, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Donor), args.Error(1)
}

// MockGeocoder is a mock for service.Geocoder
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Geocode(ctx context.Context, query string) (*domain.Coordinates, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Coordinates), args.Error(1)
}
