package engine

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aniket-hybrid/Predictor/models"
)

func testEngine() *Engine {
	return New(Options{})
}

func mumbaiRequest() models.BirthChartRequest {
	ist := time.FixedZone("IST", int(5.5*3600))
	return models.BirthChartRequest{
		BirthInstant: time.Date(1990, 5, 15, 14, 30, 0, 0, ist),
		Latitude:     19.0760,
		Longitude:    72.8777,
		EvaluatedAt:  time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
}

func TestComputeBirthChartIdempotent(t *testing.T) {
	eng := testEngine()
	req := mumbaiRequest()

	first, err := eng.ComputeBirthChart(req)
	require.NoError(t, err)
	second, err := eng.ComputeBirthChart(req)
	require.NoError(t, err)

	// Побайтовое совпадение: никаких скрытых часов в ядре
	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON, "идентичные запросы должны давать идентичные карты")
}

func TestComputeBirthChartComplete(t *testing.T) {
	eng := testEngine()

	birthChart, err := eng.ComputeBirthChart(mumbaiRequest())
	require.NoError(t, err)

	assert.Len(t, birthChart.Placements, models.BodyCount)
	assert.Len(t, birthChart.Houses, 12)
	assert.Len(t, birthChart.Cycle.SubPeriods, models.BodyCount)
	assert.True(t, birthChart.Cycle.Start.Before(birthChart.Cycle.End), "границы цикла перепутаны")
}

func TestComputeBirthChartValidation(t *testing.T) {
	eng := testEngine()

	tests := []struct {
		name   string
		mutate func(*models.BirthChartRequest)
	}{
		{"Широта вне диапазона", func(r *models.BirthChartRequest) { r.Latitude = 91 }},
		{"Долгота вне диапазона", func(r *models.BirthChartRequest) { r.Longitude = -181 }},
		{"Оценка раньше рождения", func(r *models.BirthChartRequest) {
			r.EvaluatedAt = r.BirthInstant.Add(-time.Hour)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := mumbaiRequest()
			tt.mutate(&req)
			_, err := eng.ComputeBirthChart(req)
			var invalid *models.InvalidInputError
			assert.ErrorAs(t, err, &invalid)
		})
	}
}

func TestForecastThroughEngine(t *testing.T) {
	eng := testEngine()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	series := make([]models.TimeSeriesPoint, 12)
	for i := range series {
		series[i] = models.TimeSeriesPoint{
			Timestamp: start.AddDate(0, i, 0),
			Value:     100,
		}
	}

	result, err := eng.Forecast(models.ForecastRequest{Series: series, Horizon: 3})
	require.NoError(t, err)
	assert.Len(t, result.Steps, 3)
}

func TestForecastShortSeriesThroughEngine(t *testing.T) {
	// Короткий ряд - вопрос данных, а не формы запроса: сквозь фасад
	// должна проходить именно InsufficientDataError
	eng := testEngine()

	var insufficient *models.InsufficientDataError
	_, err := eng.Forecast(models.ForecastRequest{Series: nil, Horizon: 3})
	assert.ErrorAs(t, err, &insufficient, "для пустого ряда ожидалась InsufficientDataError")

	short := []models.TimeSeriesPoint{
		{Timestamp: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Value: 1},
		{Timestamp: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Value: 2},
	}
	_, err = eng.Forecast(models.ForecastRequest{Series: short, Horizon: 3})
	assert.ErrorAs(t, err, &insufficient, "для ряда из двух точек ожидалась InsufficientDataError")
}

func TestScoreWellnessValidation(t *testing.T) {
	eng := testEngine()

	_, err := eng.ScoreWellness(models.WellnessMetrics{
		WorkHours:  30, // больше суток
		SleepHours: 8,
		MoodScore:  5,
	})
	var invalid *models.InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}

func TestCombineUsesEngineWeights(t *testing.T) {
	eng := New(Options{
		HybridWeights: &models.HybridWeights{
			Astrology:       0.5,
			Behavior:        0.5,
			AgreeBonus:      0,
			ConflictPenalty: 0,
		},
	})

	prediction, err := eng.Combine(models.CombineRequest{
		AstroConfidence:    0.2,
		BehaviorConfidence: 0.8,
		Agreement:          models.AgreementAgree,
	})
	require.NoError(t, err)
	// 0.2*0.5 + 0.8*0.5 + 0 вместо дефолтных 0.3/0.7/+0.2
	assert.InDelta(t, 0.5, prediction.Combined, 1e-9, "должны применяться веса движка")
}
