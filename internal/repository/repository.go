package repository

import (
	"donorbot/internal/domain"
)

// DonorRepository defines donor data operations
type DonorRepository interface {
	Upsert(donor *domain.Donor) error
	GetByUserID(userID int64) (*domain.Donor, error)
	ListByBloodType(bloodType domain.BloodType) ([]domain.Donor, error)
	ListAll() ([]domain.Donor, error)
}
