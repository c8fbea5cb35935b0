package domain

import "fmt"

// Match is one donor result of a nearest-donor query
type Match struct {
	Name       string
	Contact    string
	DistanceKm float64
}

// DisplayString returns the match as a single result line
func (m Match) DisplayString() string {
	return fmt.Sprintf("%s - %s (%.2f km)", m.Name, m.Contact, m.DistanceKm)
}
