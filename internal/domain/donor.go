package domain

import (
	"fmt"
	"regexp"
	"time"
)

// BloodType is one of the 8 canonical blood types.
// The zero value ("") stands for "any" in find queries.
type BloodType string

const (
	BloodAPos  BloodType = "A+"
	BloodANeg  BloodType = "A-"
	BloodBPos  BloodType = "B+"
	BloodBNeg  BloodType = "B-"
	BloodABPos BloodType = "AB+"
	BloodABNeg BloodType = "AB-"
	BloodOPos  BloodType = "O+"
	BloodONeg  BloodType = "O-"

	BloodAny BloodType = ""
)

// BloodTypes lists the canonical types in keyboard order
var BloodTypes = []BloodType{
	BloodAPos, BloodANeg,
	BloodBPos, BloodBNeg,
	BloodABPos, BloodABNeg,
	BloodOPos, BloodONeg,
}

// ParseBloodType validates a raw blood type string
func ParseBloodType(s string) (BloodType, bool) {
	for _, bt := range BloodTypes {
		if string(bt) == s {
			return bt, true
		}
	}
	return "", false
}

// contactPattern matches Bangladesh phone numbers: +880 or 880 followed by 10 digits
var contactPattern = regexp.MustCompile(`^\+?880\d{10}$`)

// ValidContact reports whether s is a valid Bangladesh phone number
func ValidContact(s string) bool {
	return contactPattern.MatchString(s)
}

// Coordinates is a geographic point in decimal degrees (WGS 84)
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Valid reports whether both components are within range
func (c Coordinates) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// Donor represents a registered blood donor
type Donor struct {
	UserID       int64
	Name         string
	BloodType    BloodType
	Latitude     float64
	Longitude    float64
	Contact      string
	LastDonation *time.Time // nil means never donated
}

// Coordinates returns the donor's stored location
func (d *Donor) Coordinates() Coordinates {
	return Coordinates{Latitude: d.Latitude, Longitude: d.Longitude}
}

// Validate checks all invariants before the donor record is persisted
func (d *Donor) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("donor name cannot be empty")
	}
	if _, ok := ParseBloodType(string(d.BloodType)); !ok {
		return fmt.Errorf("invalid blood type %q", d.BloodType)
	}
	if !d.Coordinates().Valid() {
		return fmt.Errorf("coordinates out of range: %f, %f", d.Latitude, d.Longitude)
	}
	if !ValidContact(d.Contact) {
		return fmt.Errorf("invalid contact number %q", d.Contact)
	}
	return nil
}
