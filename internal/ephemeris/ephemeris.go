// Package ephemeris computes mean ecliptic longitudes for the nine
// bodies of the chart. Positions use linear mean motion only, with no
// perturbation terms; the result is good to a few degrees, which is
// enough for sign, house and nakshatra placement but not for
// sub-degree work.
package ephemeris

import (
	"math"
	"time"

	"github.com/Aniket-hybrid/Predictor/models"
)

// J2000 epoch as a Julian day
const J2000 = 2451545.0

// meanMotion - линейная модель средней долготы: base + rate * T,
// где T - юлианские столетия от J2000
type meanMotion struct {
	base float64
	rate float64
}

// Mean longitude constants per body, centuries since J2000.
// The lunar nodes move on a day-based linear rate instead.
var centuryMotion = map[models.Body]meanMotion{
	models.Sun:     {280.4665, 36000.7698},
	models.Moon:    {218.3165, 481267.8813},
	models.Mercury: {252.3, 149474.0},
	models.Venus:   {181.9797, 58517.8156},
	models.Mars:    {355.4325, 19139.8585},
	models.Jupiter: {34.3515, 3034.9057},
	models.Saturn:  {50.0452, 1222.1136},
}

const (
	rahuBase = 351.5449
	rahuRate = -0.0529 // degrees per day, retrograde
)

// JulianDay converts an instant to a continuous Julian day count using
// the standard Gregorian algorithm with century correction.
func JulianDay(t time.Time) float64 {
	utc := t.UTC()

	y := utc.Year()
	m := int(utc.Month())
	d := utc.Day()
	h := float64(utc.Hour()) + float64(utc.Minute())/60 + float64(utc.Second())/3600

	// Январь и февраль считаются 13-м и 14-м месяцами предыдущего года
	if m <= 2 {
		y--
		m += 12
	}

	a := y / 100
	b := 2 - a + a/4

	jd := math.Floor(365.25*float64(y+4716)) + math.Floor(30.6001*float64(m+1)) + float64(d) + float64(b) - 1524.5
	jd += h / 24

	return jd
}

// Longitude returns the mean ecliptic longitude of a body at the given
// Julian day, normalized to [0,360).
func Longitude(jd float64, body models.Body) float64 {
	switch body {
	case models.Rahu:
		return Normalize(rahuBase + rahuRate*(jd-J2000))
	case models.Ketu:
		// Кету всегда строго напротив Раху
		return Normalize(rahuBase + rahuRate*(jd-J2000) + 180)
	default:
		mm := centuryMotion[body]
		t := (jd - J2000) / 36525
		return Normalize(mm.base + mm.rate*t)
	}
}

// AllLongitudes computes every body's longitude at the given Julian day.
func AllLongitudes(jd float64) map[models.Body]float64 {
	longitudes := make(map[models.Body]float64, models.BodyCount)
	for _, body := range models.AllBodies() {
		longitudes[body] = Longitude(jd, body)
	}
	return longitudes
}

// Normalize wraps a degree value into [0,360).
func Normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		// float rounding after the wrap-around add
		deg = 0
	}
	return deg
}
