// Package wellness folds the fixed lifestyle metric set into one
// composite stress score with a risk tier and per-metric breakdown.
package wellness

import (
	"math"

	"github.com/Aniket-hybrid/Predictor/models"
)

// Reference maxima of the saturating transforms
const (
	workHoursMax     = 12.0
	sleepHoursIdeal  = 8.0
	exerciseIdeal    = 60.0
	meetingsMax      = 10.0
	caffeineMax      = 5.0
	meditationIdeal  = 20.0
	meditationEffect = 0.5 // meditation offsets at most half its scale
)

// Фиксированные веса свертки; в сумме ровно 1.0
const (
	weightWork       = 0.25
	weightSleep      = 0.25
	weightExercise   = 0.15
	weightMood       = 0.15
	weightMeetings   = 0.10
	weightCaffeine   = 0.05
	weightMeditation = 0.05
)

// Risk tier thresholds
const (
	riskModerateFrom = 30.0
	riskHighFrom     = 60.0
	riskCriticalFrom = 80.0
)

func saturate(value, refMax float64) float64 {
	if refMax <= 0 {
		return 0
	}
	return math.Min(value/refMax, 1) * 100
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Score computes the composite stress score. Contributions for sleep,
// exercise and meditation are inverted: more of them means less
// stress.
func Score(metrics models.WellnessMetrics) *models.StressAssessment {
	workStress := saturate(metrics.WorkHours, workHoursMax)
	sleepStress := 100 - saturate(metrics.SleepHours, sleepHoursIdeal)
	exerciseStress := 100 - saturate(metrics.ExerciseMinutes, exerciseIdeal)
	moodStress := clamp(100-metrics.MoodScore*10, 0, 100)
	meetingsStress := saturate(metrics.MeetingsCount, meetingsMax)
	caffeineStress := saturate(metrics.CaffeineCups, caffeineMax)
	meditationBenefit := saturate(metrics.MeditationMinutes, meditationIdeal) * meditationEffect
	meditationStress := 100 - meditationBenefit

	score := workStress*weightWork +
		sleepStress*weightSleep +
		exerciseStress*weightExercise +
		moodStress*weightMood +
		meetingsStress*weightMeetings +
		caffeineStress*weightCaffeine +
		meditationStress*weightMeditation
	score = clamp(score, 0, 100)

	return &models.StressAssessment{
		Score:     score,
		RiskLevel: riskLevel(score),
		Contributions: map[string]float64{
			"work_stress":        workStress,
			"sleep_stress":       sleepStress,
			"exercise_stress":    exerciseStress,
			"mood_stress":        moodStress,
			"meeting_stress":     meetingsStress,
			"caffeine_stress":    caffeineStress,
			"meditation_benefit": meditationBenefit,
		},
		Recommendations: recommendations(metrics),
	}
}

func riskLevel(score float64) string {
	switch {
	case score < riskModerateFrom:
		return models.RiskLow
	case score < riskHighFrom:
		return models.RiskModerate
	case score < riskCriticalFrom:
		return models.RiskHigh
	default:
		return models.RiskCritical
	}
}

// recommendations run independent per-metric threshold checks in a
// fixed declared order; no ranking, no dedup beyond exact text.
func recommendations(metrics models.WellnessMetrics) []string {
	var recs []string
	if metrics.SleepHours < 7 {
		recs = append(recs, "Prioritize sleep - aim for a consistent 7-8 hours daily")
	}
	if metrics.ExerciseMinutes < 30 {
		recs = append(recs, "Increase physical activity - 30-60 minutes daily")
	}
	if metrics.WorkHours > 10 {
		recs = append(recs, "Reduce work hours - sustained overtime raises stress")
	}
	if metrics.MoodScore <= 4 {
		recs = append(recs, "Low mood detected - consider talking to someone you trust")
	}
	if metrics.MeetingsCount > 6 {
		recs = append(recs, "Heavy meeting load - block focus time on the calendar")
	}
	if metrics.CaffeineCups > 4 {
		recs = append(recs, "Cut back on caffeine, especially after midday")
	}
	if metrics.MeditationMinutes < 10 {
		recs = append(recs, "Try meditation - even 10 minutes daily helps")
	}
	return recs
}
