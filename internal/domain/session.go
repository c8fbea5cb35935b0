package domain

import "time"

// State represents a user's current position in the conversation
type State string

const (
	StateIdle               State = "idle"
	StateMenu               State = "menu"
	StateLocation           State = "location"
	StateBloodType          State = "blood_type"
	StateContact            State = "contact"
	StateProfileDate        State = "profile_date"
	StateLocationFind       State = "location_find"
	StateEmergencyBloodType State = "emergency_blood_type"
)

// Session holds the scratchpad for one user's in-flight conversation.
// Fields are filled state-by-state and consumed at the terminal step.
type Session struct {
	State State

	// Registration scratchpad
	Latitude    float64
	Longitude   float64
	HasLocation bool
	BloodType   BloodType
	Contact     string

	// Find/emergency scratchpad: blood type sought (BloodAny for plain find)
	SeekBloodType BloodType

	UpdatedAt time.Time
}

// SetLocation stores resolved coordinates in the scratchpad
func (s *Session) SetLocation(c Coordinates) {
	s.Latitude = c.Latitude
	s.Longitude = c.Longitude
	s.HasLocation = true
}

// Location returns the captured coordinates
func (s *Session) Location() Coordinates {
	return Coordinates{Latitude: s.Latitude, Longitude: s.Longitude}
}
