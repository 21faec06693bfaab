package services

import (
	"github.com/Danik911/dublin-accommodation-bot/geo"
	"github.com/Danik911/dublin-accommodation-bot/models"
)

// CommuteAnalyzer computes distance, time bucket and transport score from a
// coordinate to the persona's fixed landmark destinations. Pure function of
// coordinates; no I/O.
type CommuteAnalyzer struct {
	landmarks []models.Landmark
}

// NewCommuteAnalyzer creates an analyzer over the persona's landmarks,
// keeping their declared order (college first, then workplace).
func NewCommuteAnalyzer(persona *models.PersonaProfile) *CommuteAnalyzer {
	return &CommuteAnalyzer{landmarks: persona.Landmarks}
}

// Analyze returns one CommuteAnalysis per landmark.
func (a *CommuteAnalyzer) Analyze(lat, lng float64) []models.CommuteAnalysis {
	result := make([]models.CommuteAnalysis, 0, len(a.landmarks))
	for _, lm := range a.landmarks {
		d := geo.Distance(lat, lng, lm.Lat, lm.Lng)
		result = append(result, models.CommuteAnalysis{
			DestinationName: lm.Name,
			DistanceKm:      d,
			EstimatedTime:   estimateCommuteTime(d),
			TransportScore:  scoreTransport(d),
		})
	}
	return result
}

// estimateCommuteTime buckets distance into rough Dublin transport times.
func estimateCommuteTime(distanceKm float64) string {
	switch {
	case distanceKm < 5:
		return "15-25 min"
	case distanceKm < 10:
		return "25-40 min"
	case distanceKm < 20:
		return "40-60 min"
	default:
		return "60+ min"
	}
}

// scoreTransport buckets distance into a qualitative accessibility score.
func scoreTransport(distanceKm float64) models.TransportScore {
	switch {
	case distanceKm < 5:
		return models.ScoreExcellent
	case distanceKm < 10:
		return models.ScoreGood
	case distanceKm < 20:
		return models.ScoreFair
	default:
		return models.ScorePoor
	}
}
