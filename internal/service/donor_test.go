package service

import (
	"fmt"
	"testing"

	"donorbot/internal/domain"
	"donorbot/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestDonorService_Register(t *testing.T) {
	donor := &domain.Donor{
		UserID:    123,
		Name:      "Rahim",
		BloodType: domain.BloodOPos,
		Latitude:  23.8103,
		Longitude: 90.4125,
		Contact:   "+8801712345678",
	}

	mockRepo := new(testutil.MockDonorRepository)
	mockRepo.On("Upsert", donor).Return(nil)

	svc := NewDonorService(mockRepo)

	assert.NoError(t, svc.Register(donor))
	mockRepo.AssertExpectations(t)
}

func TestDonorService_Register_InvalidRecordNeverHitsStore(t *testing.T) {
	donor := &domain.Donor{
		UserID:    123,
		Name:      "",
		BloodType: domain.BloodOPos,
		Latitude:  23.8103,
		Longitude: 90.4125,
		Contact:   "+8801712345678",
	}

	mockRepo := new(testutil.MockDonorRepository)
	svc := NewDonorService(mockRepo)

	assert.Error(t, svc.Register(donor))
	mockRepo.AssertNotCalled(t, "Upsert")
}

func TestDonorService_Register_StoreError(t *testing.T) {
	donor := &domain.Donor{
		UserID:    123,
		Name:      "Rahim",
		BloodType: domain.BloodOPos,
		Latitude:  23.8103,
		Longitude: 90.4125,
		Contact:   "+8801712345678",
	}

	mockRepo := new(testutil.MockDonorRepository)
	mockRepo.On("Upsert", donor).Return(fmt.Errorf("connection refused"))

	svc := NewDonorService(mockRepo)

	assert.Error(t, svc.Register(donor))
}

func TestDonorService_Profile(t *testing.T) {
	donor := testutil.NewTestDonor(123, "Rahim", domain.BloodOPos, 23.8103, 90.4125)

	mockRepo := new(testutil.MockDonorRepository)
	mockRepo.On("GetByUserID", int64(123)).Return(&donor, nil)

	svc := NewDonorService(mockRepo)

	got, err := svc.Profile(123)
	assert.NoError(t, err)
	assert.Equal(t, "Rahim", got.Name)
}

func TestDonorService_Profile_NotRegistered(t *testing.T) {
	mockRepo := new(testutil.MockDonorRepository)
	mockRepo.On("GetByUserID", int64(456)).Return(nil, nil)

	svc := NewDonorService(mockRepo)

	got, err := svc.Profile(456)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestDonorService_IsRegistered(t *testing.T) {
	donor := testutil.NewTestDonor(123, "Rahim", domain.BloodOPos, 23.8103, 90.4125)

	tests := []struct {
		name       string
		userID     int64
		mockDonor  *domain.Donor
		mockError  error
		expected   bool
		expectsErr bool
	}{
		{name: "registered", userID: 123, mockDonor: &donor, expected: true},
		{name: "not registered", userID: 456, mockDonor: nil, expected: false},
		{name: "store error", userID: 789, mockError: fmt.Errorf("db error"), expectsErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockDonorRepository)
			if tt.mockDonor != nil {
				mockRepo.On("GetByUserID", tt.userID).Return(tt.mockDonor, nil)
			} else {
				mockRepo.On("GetByUserID", tt.userID).Return(nil, tt.mockError)
			}

			svc := NewDonorService(mockRepo)

			registered, err := svc.IsRegistered(tt.userID)
			if tt.expectsErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, registered)
			}
		})
	}
}
