package handler

import (
	"fmt"
	"testing"
	"time"

	"donorbot/internal/domain"
	"donorbot/internal/service"

	"github.com/stretchr/testify/assert"
	tele "gopkg.in/telebot.v3"
)

func TestParseLastDonation(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *time.Time
		ok       bool
	}{
		{name: "lowercase never", input: "never", expected: nil, ok: true},
		{name: "capitalized never", input: "Never", expected: nil, ok: true},
		{name: "uppercase never", input: "NEVER", expected: nil, ok: true},
		{
			name:  "valid date",
			input: "2023-05-01",
			expected: func() *time.Time {
				d := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
				return &d
			}(),
			ok: true,
		},
		{name: "never-mind rejected", input: "never-mind", ok: false},
		{name: "wrong date format", input: "01/05/2023", ok: false},
		{name: "impossible date", input: "2023-13-45", ok: false},
		{name: "empty", input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, ok := parseLastDonation(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				if tt.expected == nil {
					assert.Nil(t, date)
				} else {
					assert.NotNil(t, date)
					assert.True(t, tt.expected.Equal(*date))
				}
			}
		})
	}
}

func TestLocationFailureMessage(t *testing.T) {
	t.Run("unresolvable input", func(t *testing.T) {
		msg := locationFailureMessage(service.ErrLocationUnresolvable)
		assert.Equal(t, msgInvalidLocation, msg)
	})

	t.Run("geocoder outage", func(t *testing.T) {
		err := fmt.Errorf("%w: connection timed out", service.ErrGeocoderUnavailable)
		msg := locationFailureMessage(err)
		assert.Equal(t, msgLocationError, msg)
	})
}

func TestFormatMatches(t *testing.T) {
	matches := []domain.Match{
		{Name: "Rahim", Contact: "+8801712345678", DistanceKm: 1.234},
		{Name: "Karim", Contact: "8801812345678", DistanceKm: 12.5},
	}

	text := formatMatches(matches)

	assert.Contains(t, text, "Found the following donors near you:")
	assert.Contains(t, text, "Rahim - +8801712345678 (1.23 km)")
	assert.Contains(t, text, "Karim - 8801812345678 (12.50 km)")
}

func TestSenderName(t *testing.T) {
	tests := []struct {
		name     string
		user     *tele.User
		expected string
	}{
		{
			name:     "first and last name",
			user:     &tele.User{FirstName: "Rahim", LastName: "Uddin"},
			expected: "Rahim Uddin",
		},
		{
			name:     "first name only",
			user:     &tele.User{FirstName: "Rahim"},
			expected: "Rahim",
		},
		{
			name:     "falls back to username",
			user:     &tele.User{Username: "rahim99"},
			expected: "rahim99",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, senderName(tt.user))
		})
	}
}
