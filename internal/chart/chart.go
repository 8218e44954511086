// Package chart derives the birth chart from body longitudes and the
// birth place: ascendant, house map and per-body placement.
//
// Houses use the equal-house system: twelve 30-degree arcs anchored at
// the ascendant degree. The source material mentions unequal systems
// but every house it actually assigns is an equal arc, so that is the
// behavior implemented here.
package chart

import (
	"math"
	"time"

	"github.com/Aniket-hybrid/Predictor/internal/ephemeris"
	"github.com/Aniket-hybrid/Predictor/models"
)

const nakshatraArc = 360.0 / 27.0

// GreenwichSiderealTime returns GMST in degrees for a Julian day.
func GreenwichSiderealTime(jd float64) float64 {
	return ephemeris.Normalize(280.46061837 + 360.98564724*(jd-ephemeris.J2000))
}

// LocalSiderealTime adds the geographic longitude to GMST.
func LocalSiderealTime(jd, geoLongitude float64) float64 {
	return ephemeris.Normalize(GreenwichSiderealTime(jd) + geoLongitude)
}

// AscendantDegree returns the ecliptic degree crossing the eastern
// horizon: 90 degrees behind the local meridian.
func AscendantDegree(jd, geoLongitude float64) float64 {
	return ephemeris.Normalize(LocalSiderealTime(jd, geoLongitude) - 90)
}

// SignOf maps an ecliptic longitude to its zodiac sign.
func SignOf(longitude float64) models.Sign {
	return models.Sign(int(ephemeris.Normalize(longitude)/30) % 12)
}

// HouseOf assigns a longitude to one of the twelve equal houses
// anchored at the ascendant degree. Wraparound at 0/360 is handled by
// the offset normalization, so the arcs partition the full circle.
func HouseOf(longitude, ascendantDeg float64) int {
	offset := ephemeris.Normalize(longitude - ascendantDeg)
	return int(offset/30) + 1
}

// NakshatraOf returns the lunar mansion and its quarter (pada) for a
// longitude.
func NakshatraOf(longitude float64) (models.Nakshatra, int) {
	lon := ephemeris.Normalize(longitude)
	idx := int(lon / nakshatraArc)
	if idx > 26 {
		idx = 26
	}
	within := lon - float64(idx)*nakshatraArc
	pada := int(within/(nakshatraArc/4)) + 1
	if pada > 4 {
		pada = 4
	}
	return models.Nakshatra(idx), pada
}

// Build computes the chart snapshot for a birth instant and place. The
// time-dependent cycle period and the pattern list are filled in by the
// caller; everything here is a pure function of its inputs.
func Build(birthInstant time.Time, latitude, longitude float64) *models.BirthChart {
	jd := ephemeris.JulianDay(birthInstant)

	ascDeg := AscendantDegree(jd, longitude)
	ascSign := SignOf(ascDeg)

	// Дома: 12 равных дуг по 30°, привязанных к асценденту
	houses := make(map[int]models.Sign, 12)
	for house := 1; house <= 12; house++ {
		cusp := ephemeris.Normalize(ascDeg + float64(house-1)*30)
		houses[house] = SignOf(cusp)
	}

	placements := make(map[models.Body]models.ChartPlacement, models.BodyCount)
	for _, body := range models.AllBodies() {
		lon := ephemeris.Longitude(jd, body)
		nakshatra, pada := NakshatraOf(lon)

		placements[body] = models.ChartPlacement{
			Body:      body,
			Longitude: lon,
			Sign:      SignOf(lon),
			Degree:    math.Mod(lon, 30),
			House:     HouseOf(lon, ascDeg),
			Nakshatra: nakshatra,
			Pada:      pada,
		}
	}

	return &models.BirthChart{
		Ascendant:       ascSign,
		AscendantDegree: ascDeg,
		Houses:          houses,
		Placements:      placements,
		MoonNakshatra:   placements[models.Moon].Nakshatra,
	}
}
