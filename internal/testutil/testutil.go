package testutil

import (
	"donorbot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestDonor creates a test donor at the given location
func NewTestDonor(userID int64, name string, bloodType domain.BloodType, lat, lon float64) domain.Donor {
	return domain.Donor{
		UserID:    userID,
		Name:      name,
		BloodType: bloodType,
		Latitude:  lat,
		Longitude: lon,
		Contact:   "+8801712345678",
	}
}
