package service

import (
	"fmt"

	"donorbot/internal/domain"
	"donorbot/internal/repository"
)

// DonorService handles donor registration and profile lookups
type DonorService struct {
	donorRepo repository.DonorRepository
}

// NewDonorService creates a new donor service
func NewDonorService(donorRepo repository.DonorRepository) *DonorService {
	return &DonorService{donorRepo: donorRepo}
}

// Register validates and persists a donor record. Re-registration by the
// same user overwrites the previous record.
func (s *DonorService) Register(donor *domain.Donor) error {
	if err := donor.Validate(); err != nil {
		return fmt.Errorf("invalid donor record: %w", err)
	}
	return s.donorRepo.Upsert(donor)
}

// Profile returns the user's donor record, or nil if not registered
func (s *DonorService) Profile(userID int64) (*domain.Donor, error) {
	return s.donorRepo.GetByUserID(userID)
}

// IsRegistered reports whether the user already has a donor record
func (s *DonorService) IsRegistered(userID int64) (bool, error) {
	donor, err := s.donorRepo.GetByUserID(userID)
	if err != nil {
		return false, err
	}
	return donor != nil, nil
}
