package postgres

import (
	"database/sql"

	"donorbot/internal/domain"
)

// DonorRepo implements repository.DonorRepository
type DonorRepo struct {
	db *sql.DB
}

// NewDonorRepo creates a new donor repository
func NewDonorRepo(db *sql.DB) *DonorRepo {
	return &DonorRepo{db: db}
}

// Upsert inserts or replaces the donor record keyed by user_id
func (r *DonorRepo) Upsert(donor *domain.Donor) error {
	query := `
		INSERT INTO donors (user_id, name, blood_type, latitude, longitude, contact, last_donation)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id)
		DO UPDATE SET
			name = EXCLUDED.name,
			blood_type = EXCLUDED.blood_type,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			contact = EXCLUDED.contact,
			last_donation = EXCLUDED.last_donation
	`

	var lastDonation sql.NullTime
	if donor.LastDonation != nil {
		lastDonation = sql.NullTime{Time: *donor.LastDonation, Valid: true}
	}

	_, err := r.db.Exec(query,
		donor.UserID, donor.Name, string(donor.BloodType),
		donor.Latitude, donor.Longitude, donor.Contact, lastDonation,
	)
	return err
}

// GetByUserID returns the donor record, or nil if the user is not registered
func (r *DonorRepo) GetByUserID(userID int64) (*domain.Donor, error) {
	query := `
		SELECT user_id, name, blood_type, latitude, longitude, contact, last_donation
		FROM donors
		WHERE user_id = $1
	`

	var d domain.Donor
	var bloodType string
	var lastDonation sql.NullTime
	err := r.db.QueryRow(query, userID).Scan(
		&d.UserID, &d.Name, &bloodType, &d.Latitude, &d.Longitude, &d.Contact, &lastDonation,
	)

	if err == sql.ErrNoRows {
		// User has not registered yet
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	d.BloodType = domain.BloodType(bloodType)
	if lastDonation.Valid {
		d.LastDonation = &lastDonation.Time
	}

	return &d, nil
}

// ListByBloodType returns all donors with an exact blood type match
func (r *DonorRepo) ListByBloodType(bloodType domain.BloodType) ([]domain.Donor, error) {
	query := `
		SELECT user_id, name, blood_type, latitude, longitude, contact, last_donation
		FROM donors
		WHERE blood_type = $1
	`

	rows, err := r.db.Query(query, string(bloodType))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDonors(rows)
}

// ListAll returns every registered donor
func (r *DonorRepo) ListAll() ([]domain.Donor, error) {
	query := `
		SELECT user_id, name, blood_type, latitude, longitude, contact, last_donation
		FROM donors
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDonors(rows)
}

func scanDonors(rows *sql.Rows) ([]domain.Donor, error) {
	var donors []domain.Donor
	for rows.Next() {
		var d domain.Donor
		var bloodType string
		var lastDonation sql.NullTime
		if err := rows.Scan(&d.UserID, &d.Name, &bloodType, &d.Latitude, &d.Longitude, &d.Contact, &lastDonation); err != nil {
			return nil, err
		}
		d.BloodType = domain.BloodType(bloodType)
		if lastDonation.Valid {
			d.LastDonation = &lastDonation.Time
		}
		donors = append(donors, d)
	}

	return donors, rows.Err()
}
