package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"donorbot/internal/domain"

	"go.uber.org/zap"
)

var (
	// ErrLocationUnresolvable means no strategy could make sense of the input
	ErrLocationUnresolvable = errors.New("location unresolvable")
	// ErrGeocoderUnavailable means the geocoding lookup itself failed
	ErrGeocoderUnavailable = errors.New("geocoder unavailable")
)

// Geocoder resolves a place name to coordinates. No result is (nil, nil).
type Geocoder interface {
	Geocode(ctx context.Context, query string) (*domain.Coordinates, error)
}

var (
	dmsPattern = regexp.MustCompile(`^(\d+)°(\d+)'([\d.]+)"([NS])\s*(\d+)°(\d+)'([\d.]+)"([EW])`)

	mapLinkPatterns = []*regexp.Regexp{
		regexp.MustCompile(`@(-?\d+\.\d+),(-?\d+\.\d+)`),
		regexp.MustCompile(`ll=(-?\d+\.\d+),(-?\d+\.\d+)`),
	}
)

// LocationService turns free-form text into coordinates, trying
// DMS notation, then map-link extraction, then geocoding.
type LocationService struct {
	geocoder Geocoder
	country  string
	timeout  time.Duration
	logger   *zap.Logger
}

// NewLocationService creates a new location service. country is appended
// to geocoding queries to scope lookups to the service area.
func NewLocationService(geocoder Geocoder, country string, timeout time.Duration, logger *zap.Logger) *LocationService {
	return &LocationService{
		geocoder: geocoder,
		country:  country,
		timeout:  timeout,
		logger:   logger,
	}
}

// Resolve parses text into coordinates. Strategies run in strict priority
// order and the first success wins.
func (s *LocationService) Resolve(text string) (domain.Coordinates, error) {
	if coords, ok := parseDMS(text); ok {
		return coords, nil
	}

	if coords, ok := extractMapLinkCoords(text); ok {
		return coords, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	query := fmt.Sprintf("%s, %s", text, s.country)
	coords, err := s.geocoder.Geocode(ctx, query)
	if err != nil {
		s.logger.Error("Geocoding failed",
			zap.String("query", query),
			zap.Error(err),
		)
		return domain.Coordinates{}, fmt.Errorf("%w: %v", ErrGeocoderUnavailable, err)
	}
	if coords == nil {
		return domain.Coordinates{}, ErrLocationUnresolvable
	}

	return *coords, nil
}

// parseDMS parses degrees-minutes-seconds notation like
// 23°46'12.0"N 90°23'55.0"E into decimal degrees.
func parseDMS(text string) (domain.Coordinates, bool) {
	m := dmsPattern.FindStringSubmatch(text)
	if m == nil {
		return domain.Coordinates{}, false
	}

	lat, err := dmsToDecimal(m[1], m[2], m[3])
	if err != nil {
		return domain.Coordinates{}, false
	}
	lon, err := dmsToDecimal(m[5], m[6], m[7])
	if err != nil {
		return domain.Coordinates{}, false
	}

	if m[4] == "S" {
		lat = -lat
	}
	if m[8] == "W" {
		lon = -lon
	}

	return domain.Coordinates{Latitude: lat, Longitude: lon}, true
}

func dmsToDecimal(deg, min, sec string) (float64, error) {
	d, err := strconv.ParseFloat(deg, 64)
	if err != nil {
		return 0, err
	}
	m, err := strconv.ParseFloat(min, 64)
	if err != nil {
		return 0, err
	}
	s, err := strconv.ParseFloat(sec, 64)
	if err != nil {
		return 0, err
	}
	return d + m/60 + s/3600, nil
}

// extractMapLinkCoords pulls decimal coordinates out of a Google Maps
// style link (@lat,lon or ll=lat,lon)
func extractMapLinkCoords(text string) (domain.Coordinates, bool) {
	for _, p := range mapLinkPatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		lat, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		lon, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			continue
		}
		return domain.Coordinates{Latitude: lat, Longitude: lon}, true
	}
	return domain.Coordinates{}, false
}
