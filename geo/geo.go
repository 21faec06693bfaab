package geo

import (
	"fmt"
	"math"

	"github.com/Danik911/dublin-accommodation-bot/models"
)

// earthRadiusKm is the mean Earth radius used by the Haversine formula.
const earthRadiusKm = 6371

// Distance returns the great-circle distance in kilometers between two
// coordinates using the Haversine formula.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// GenerateGrid lays a gridSize x gridSize point grid over a bounding box
// sized to radiusKm around the center and keeps only points whose Haversine
// distance from the center is within the radius. Output order is row-major
// and stable for identical inputs.
func GenerateGrid(centerLat, centerLng, radiusKm float64, gridSize int) []models.SearchArea {
	if gridSize < 2 {
		return nil
	}

	// ~111 km per degree of latitude; longitude span shrinks with cos(lat).
	latRange := radiusKm / 111
	lngRange := radiusKm / (111 * math.Cos(centerLat*math.Pi/180))

	var points []models.SearchArea
	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			lat := centerLat + latRange*2*(float64(i)/float64(gridSize-1)-0.5)
			lng := centerLng + lngRange*2*(float64(j)/float64(gridSize-1)-0.5)

			d := Distance(centerLat, centerLng, lat, lng)
			if d <= radiusKm {
				points = append(points, models.SearchArea{
					Name:                 fmt.Sprintf("Grid_%d_%d", i, j),
					Lat:                  lat,
					Lng:                  lng,
					DistanceFromCenterKm: d,
				})
			}
		}
	}
	return points
}
