package geo

import (
	"strings"

	"github.com/Danik911/dublin-accommodation-bot/models"
)

type namedPoint struct {
	name string
	lat  float64
	lng  float64
}

// Fixed Dublin gazetteer: central areas, the compass-point suburbs within
// the catchment, and the postal districts.
var dublinGazetteer = []namedPoint{
	// Central
	{"Dublin City Centre", 53.3498, -6.2603},
	{"Temple Bar", 53.3456, -6.2672},
	{"Trinity College Area", 53.3438, -6.2546},
	{"St. Stephen's Green", 53.3381, -6.2592},

	// North
	{"Swords", 53.4597, -6.2181},
	{"Malahide", 53.4509, -6.1542},
	{"Howth", 53.3906, -6.0648},
	{"Balbriggan", 53.6117, -6.1814},
	{"Portmarnock", 53.4258, -6.1394},
	{"Clontarf", 53.3647, -6.2097},

	// West
	{"Blanchardstown", 53.3928, -6.3747},
	{"Lucan", 53.3575, -6.4489},
	{"Clonsilla", 53.3833, -6.4167},
	{"Maynooth", 53.3817, -6.5931},
	{"Celbridge", 53.3394, -6.5439},
	{"Leixlip", 53.3658, -6.4953},

	// South
	{"Tallaght", 53.2859, -6.3733},
	{"Dundrum", 53.2892, -6.2358},
	{"Rathfarnham", 53.3067, -6.2756},
	{"Dun Laoghaire", 53.2941, -6.1347},
	{"Bray", 53.2028, -6.0986},
	{"Blackrock", 53.3014, -6.1778},

	// East coast
	{"Greystones", 53.1406, -6.0631},
	{"Dalkey", 53.2758, -6.1006},
	{"Killiney", 53.2647, -6.1131},
	{"Sandycove", 53.2856, -6.1181},

	// Postal districts
	{"Dublin 1", 53.3515, -6.2489},
	{"Dublin 2", 53.3381, -6.2592},
	{"Dublin 3", 53.3647, -6.2097},
	{"Dublin 4", 53.3267, -6.2297},
	{"Dublin 6", 53.3167, -6.2597},
	{"Dublin 7", 53.3597, -6.2897},
	{"Dublin 8", 53.3397, -6.2997},
	{"Dublin 9", 53.3797, -6.2397},
	{"Dublin 11", 53.3897, -6.3197},
	{"Dublin 12", 53.3197, -6.3397},
	{"Dublin 14", 53.2897, -6.2597},
	{"Dublin 15", 53.3897, -6.3797},
	{"Dublin 18", 53.2697, -6.2097},
	{"Dublin 22", 53.2897, -6.3797},
	{"Dublin 24", 53.2597, -6.3997},
}

// AllAreas unions the fixed gazetteer with a generated search grid and
// filters the result to the radius. Every returned area satisfies
// DistanceFromCenterKm <= radiusKm. Output order is stable: gazetteer in
// declaration order, then grid points row-major.
func AllAreas(centerLat, centerLng, radiusKm float64, gridSize int) []models.SearchArea {
	var areas []models.SearchArea

	for _, p := range dublinGazetteer {
		d := Distance(centerLat, centerLng, p.lat, p.lng)
		if d <= radiusKm {
			areas = append(areas, models.SearchArea{
				Name:                 p.name,
				Lat:                  p.lat,
				Lng:                  p.lng,
				DistanceFromCenterKm: d,
			})
		}
	}

	areas = append(areas, GenerateGrid(centerLat, centerLng, radiusKm, gridSize)...)
	return areas
}

// Locate resolves a free-text location against the gazetteer by
// case-insensitive containment. The longest matching name wins, so
// "Dublin 15" resolves to Dublin 15 rather than the shorter "Dublin 1"
// prefix it also contains. Unknown locations report ok=false; callers
// typically fall back to the catchment center.
func Locate(location string) (lat, lng float64, ok bool) {
	lower := strings.ToLower(location)
	bestLen := 0
	for _, p := range dublinGazetteer {
		name := strings.ToLower(p.name)
		if len(name) > bestLen && strings.Contains(lower, name) {
			lat, lng, ok = p.lat, p.lng, true
			bestLen = len(name)
		}
	}
	return lat, lng, ok
}

// DublinAreaKeywords lists place names used for fallback location validation
// when a listing's location text cannot be geocoded.
var DublinAreaKeywords = []string{
	"dublin", "swords", "malahide", "howth", "balbriggan",
	"blanchardstown", "lucan", "maynooth", "celbridge",
	"tallaght", "dundrum", "bray", "dun laoghaire",
	"greystones", "dalkey", "killiney",
}
