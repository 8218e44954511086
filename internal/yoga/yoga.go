// Package yoga evaluates the fixed catalog of auspicious (Yoga) and
// inauspicious (Dosha) chart patterns. Every rule is an independent
// predicate over body-house and body-body relationships; the detector
// returns all matches in declared catalog order, so identical charts
// always produce identical match sets.
package yoga

import (
	"math"

	"github.com/Aniket-hybrid/Predictor/models"
)

// Угловые дома (кендры)
var kendraHouses = map[int]bool{1: true, 4: true, 7: true, 10: true}

// Дома, в которых Марс дает Мангал-дошу
var mangalHouses = map[int]bool{1: true, 2: true, 4: true, 7: true, 8: true, 12: true}

// Classic sign rulerships, used by the Parivarthan exchange check.
var signLords = map[models.Sign]models.Body{
	0:  models.Mars,    // Aries
	1:  models.Venus,   // Taurus
	2:  models.Mercury, // Gemini
	3:  models.Moon,    // Cancer
	4:  models.Sun,     // Leo
	5:  models.Mercury, // Virgo
	6:  models.Venus,   // Libra
	7:  models.Mars,    // Scorpio
	8:  models.Jupiter, // Sagittarius
	9:  models.Saturn,  // Capricorn
	10: models.Saturn,  // Aquarius
	11: models.Jupiter, // Pisces
}

// remedies is a static lookup keyed by pattern name; not derived logic.
var remedies = map[string][]string{
	"Mangal Dosha":    {"Wear red coral", "Recite Hanuman Chalisa daily"},
	"Kaal Sarp Dosha": {"Perform Nag Puja", "Worship Lord Shiva"},
	"Pitra Dosha":     {"Perform Pitra Shradh", "Help the needy"},
}

// rule - одно правило каталога. Check возвращает совпадение и тир
// серьезности; для йог серьезность всегда LOW (информационная).
type rule struct {
	name        string
	auspicious  bool
	description string
	check       func(chart *models.BirthChart) (bool, string)
}

// The catalog is fixed and closed; output order follows this slice.
var catalog = []rule{
	{
		name:        "Raj Yoga",
		auspicious:  true,
		description: "Jupiter in an angular house",
		check: func(chart *models.BirthChart) (bool, string) {
			return kendraHouses[chart.Placements[models.Jupiter].House], models.SeverityLow
		},
	},
	{
		name:        "Gaja Kesari Yoga",
		auspicious:  true,
		description: "Jupiter and Moon both angular",
		check: func(chart *models.BirthChart) (bool, string) {
			jupiterAngular := kendraHouses[chart.Placements[models.Jupiter].House]
			moonAngular := kendraHouses[chart.Placements[models.Moon].House]
			return jupiterAngular && moonAngular, models.SeverityLow
		},
	},
	{
		name:        "Parivarthan Yoga",
		auspicious:  true,
		description: "Two bodies exchange each other's signs",
		check: func(chart *models.BirthChart) (bool, string) {
			bodies := models.AllBodies()
			for i := 0; i < len(bodies); i++ {
				for j := i + 1; j < len(bodies); j++ {
					a := chart.Placements[bodies[i]]
					b := chart.Placements[bodies[j]]
					if signLords[a.Sign] == b.Body && signLords[b.Sign] == a.Body {
						return true, models.SeverityLow
					}
				}
			}
			return false, models.SeverityLow
		},
	},
	{
		name:        "Dhana Yoga",
		auspicious:  true,
		description: "Bodies occupy both wealth houses (2nd and 11th)",
		check: func(chart *models.BirthChart) (bool, string) {
			second, eleventh := false, false
			for _, placement := range chart.Placements {
				switch placement.House {
				case 2:
					second = true
				case 11:
					eleventh = true
				}
			}
			return second && eleventh, models.SeverityLow
		},
	},
	{
		name:        "Mangal Dosha",
		auspicious:  false,
		description: "Mars in an inauspicious house",
		check: func(chart *models.BirthChart) (bool, string) {
			house := chart.Placements[models.Mars].House
			if !mangalHouses[house] {
				return false, models.SeverityLow
			}
			// Тир зависит от конкретного дома
			switch house {
			case 8:
				return true, models.SeverityHigh
			case 2, 12:
				return true, models.SeverityMedium
			default:
				return true, models.SeverityLow
			}
		},
	},
	{
		name:        "Kaal Sarp Dosha",
		auspicious:  false,
		description: "All seven bodies on one side of the Rahu-Ketu axis",
		check: func(chart *models.BirthChart) (bool, string) {
			// Кету всегда ровно напротив Раху, так что ось делит круг
			// на две половины; доша есть, когда одна из них пуста
			rahuLon := chart.Placements[models.Rahu].Longitude
			ahead, behind := 0, 0
			for _, body := range models.AllBodies() {
				if body == models.Rahu || body == models.Ketu {
					continue
				}
				offset := math.Mod(chart.Placements[body].Longitude-rahuLon+360, 360)
				if offset < 180 {
					ahead++
				} else {
					behind++
				}
			}
			return ahead == 0 || behind == 0, models.SeverityMedium
		},
	},
	{
		name:        "Pitra Dosha",
		auspicious:  false,
		description: "Sun and Saturn conjunct",
		check: func(chart *models.BirthChart) (bool, string) {
			separation := AngularSeparation(
				chart.Placements[models.Sun].Longitude,
				chart.Placements[models.Saturn].Longitude,
			)
			return separation <= 10, models.SeverityMedium
		},
	},
}

// AngularSeparation returns the shorter arc between two longitudes,
// in [0,180].
func AngularSeparation(a, b float64) float64 {
	diff := math.Abs(a - b)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// Detect evaluates the full catalog against a completed chart.
// Side-effect-free; the slice is ordered by catalog position.
func Detect(chart *models.BirthChart) []models.PatternMatch {
	var matches []models.PatternMatch

	for _, r := range catalog {
		matched, severity := r.check(chart)
		if !matched {
			continue
		}
		match := models.PatternMatch{
			Name:        r.name,
			Auspicious:  r.auspicious,
			Severity:    severity,
			Description: r.description,
		}
		if !r.auspicious {
			match.Remedies = remedies[r.name]
		}
		matches = append(matches, match)
	}

	return matches
}
