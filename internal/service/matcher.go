package service

import (
	"sort"

	"donorbot/internal/domain"
	"donorbot/internal/repository"

	"github.com/golang/geo/s2"
	"go.uber.org/zap"
)

// DefaultMatchLimit is the number of donors returned by a find query
const DefaultMatchLimit = 5

const earthRadiusKm = 6371.0088

// MatchService ranks registered donors by distance to a query point
type MatchService struct {
	donorRepo repository.DonorRepository
	logger    *zap.Logger
}

// NewMatchService creates a new match service
func NewMatchService(donorRepo repository.DonorRepository, logger *zap.Logger) *MatchService {
	return &MatchService{
		donorRepo: donorRepo,
		logger:    logger,
	}
}

// FindNearest returns up to limit donors of the given blood type ordered
// by ascending geodesic distance from point. BloodAny matches every donor.
// Store failures are swallowed and reported as an empty result.
func (s *MatchService) FindNearest(point domain.Coordinates, bloodType domain.BloodType, limit int) []domain.Match {
	var donors []domain.Donor
	var err error

	if bloodType == domain.BloodAny {
		donors, err = s.donorRepo.ListAll()
	} else {
		donors, err = s.donorRepo.ListByBloodType(bloodType)
	}
	if err != nil {
		s.logger.Error("Failed to query donors",
			zap.String("blood_type", string(bloodType)),
			zap.Error(err),
		)
		return nil
	}

	matches := make([]domain.Match, 0, len(donors))
	for _, d := range donors {
		matches = append(matches, domain.Match{
			Name:       d.Name,
			Contact:    d.Contact,
			DistanceKm: DistanceKm(point, d.Coordinates()),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].DistanceKm < matches[j].DistanceKm
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	return matches
}

// DistanceKm returns the great-circle distance between two points in kilometers
func DistanceKm(a, b domain.Coordinates) float64 {
	p1 := s2.LatLngFromDegrees(a.Latitude, a.Longitude)
	p2 := s2.LatLngFromDegrees(b.Latitude, b.Longitude)
	return p1.Distance(p2).Radians() * earthRadiusKm
}
