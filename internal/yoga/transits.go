package yoga

import "github.com/Aniket-hybrid/Predictor/models"

// Sade Sati phases
const (
	SadeSatiNone  = "NONE"
	SadeSatiFirst = "FIRST_PHASE"
	SadeSatiPeak  = "PEAK_PHASE"
	SadeSatiFinal = "FINAL_PHASE"
)

// SadeSatiStatus - положение транзитного Сатурна относительно
// натальной Луны
type SadeSatiStatus struct {
	Active   bool    `json:"active"`
	Phase    string  `json:"phase"`
	Distance float64 `json:"distance"` // signed degrees, -180..180
}

// CheckSadeSati reports whether transit Saturn sits within 45 degrees
// of the natal Moon, and which phase of the passage is active.
func CheckSadeSati(natalMoonLon, transitSaturnLon float64) SadeSatiStatus {
	diff := transitSaturnLon - natalMoonLon
	// Нормализуем в -180..180
	for diff > 180 {
		diff -= 360
	}
	for diff < -180 {
		diff += 360
	}

	status := SadeSatiStatus{Distance: diff, Phase: SadeSatiNone}
	switch {
	case diff >= -45 && diff < -15:
		status.Active = true
		status.Phase = SadeSatiFirst
	case diff >= -15 && diff < 15:
		status.Active = true
		status.Phase = SadeSatiPeak
	case diff >= 15 && diff <= 45:
		status.Active = true
		status.Phase = SadeSatiFinal
	}
	return status
}

// HouseStrengths computes the simplified Ashtakavarga point table:
// benefics contribute four points to their house, hard malefics two.
func HouseStrengths(chart *models.BirthChart) map[int]int {
	points := make(map[int]int, 12)
	for house := 1; house <= 12; house++ {
		points[house] = 0
	}
	for _, placement := range chart.Placements {
		switch placement.Body {
		case models.Jupiter, models.Venus:
			points[placement.House] += 4
		case models.Saturn, models.Mars:
			points[placement.House] += 2
		}
	}
	return points
}
