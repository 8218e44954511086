package forecast

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/Aniket-hybrid/Predictor/models"
)

// generateSeries строит месячный ряд заданной длины из функции значения
func generateSeries(n int, value func(i int) float64) []models.TimeSeriesPoint {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	series := make([]models.TimeSeriesPoint, n)
	for i := 0; i < n; i++ {
		series[i] = models.TimeSeriesPoint{
			Timestamp: start.AddDate(0, i, 0),
			Value:     value(i),
		}
	}
	return series
}

func TestForecastConstantSeries(t *testing.T) {
	// Константный ряд: прогноз обязан оставаться на том же уровне
	const level = 42.0
	series := generateSeries(12, func(i int) float64 { return level })

	result, err := Forecast(series, 6, Options{})
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if len(result.Steps) != 6 {
		t.Fatalf("ожидалось 6 шагов, получено %d", len(result.Steps))
	}
	for _, step := range result.Steps {
		if math.Abs(step.Point-level) > level*0.01 {
			t.Errorf("шаг %d: %f, ожидалось ~%f", step.Step, step.Point, level)
		}
		if step.Upper-step.Lower > level*0.01 {
			t.Errorf("шаг %d: интервал [%f, %f] шире ожидаемого", step.Step, step.Lower, step.Upper)
		}
	}
	if result.Trend != models.TrendStable {
		t.Errorf("тренд = %s, ожидалось STABLE", result.Trend)
	}
	if result.Volatility != 0 {
		t.Errorf("волатильность константного ряда = %f, ожидалось 0", result.Volatility)
	}
}

func TestForecastTrendingSeries(t *testing.T) {
	series := generateSeries(24, func(i int) float64 { return 10 * float64(i) })

	result, err := Forecast(series, 6, Options{})
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if result.Trend != models.TrendUpward {
		t.Errorf("тренд = %s, ожидалось UPWARD", result.Trend)
	}
	if len(result.ModelsUsed) == 0 {
		t.Errorf("ни одна модель не вошла в ансамбль")
	}
	// Продолжение растущего ряда должно остаться выше последнего уровня
	last := series[len(series)-1].Value
	if result.Steps[len(result.Steps)-1].Point < last*0.9 {
		t.Errorf("прогноз %f резко ниже последнего значения %f", result.Steps[len(result.Steps)-1].Point, last)
	}
	for _, step := range result.Steps {
		if step.Lower > step.Point || step.Point > step.Upper {
			t.Errorf("шаг %d: точка %f вне интервала [%f, %f]", step.Step, step.Point, step.Lower, step.Upper)
		}
	}
}

func TestForecastLinearRampContinuation(t *testing.T) {
	// Линейный ряд после одного дифференцирования константен - это
	// чистый дрейф, и прогноз обязан продолжать прямую, а не
	// схлопываться к историческому среднему
	series := generateSeries(24, func(i int) float64 { return 10 * float64(i) })

	result, err := Forecast(series, 6, Options{})
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	for k, step := range result.Steps {
		expected := 10 * float64(24+k)
		if math.Abs(step.Point-expected) > 1e-6 {
			t.Errorf("шаг %d: %f, ожидалось продолжение прямой %f", step.Step, step.Point, expected)
		}
	}
	if result.Trend != models.TrendUpward {
		t.Errorf("тренд = %s, ожидалось UPWARD", result.Trend)
	}
}

func TestForecastDownwardTrend(t *testing.T) {
	series := generateSeries(24, func(i int) float64 { return 300 - 12*float64(i) })

	result, err := Forecast(series, 4, Options{})
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if result.Trend != models.TrendDownward {
		t.Errorf("тренд = %s, ожидалось DOWNWARD", result.Trend)
	}
}

func TestForecastSeasonalSeries(t *testing.T) {
	series := generateSeries(36, func(i int) float64 {
		return 200 + 50*math.Sin(2*math.Pi*float64(i)/12)
	})

	result, err := Forecast(series, 6, Options{})
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if !result.Seasonality.Detected {
		t.Errorf("годовой цикл не обнаружен")
	}
	if result.Seasonality.Detected && result.Seasonality.Period != 12 {
		t.Errorf("период = %d, ожидалось 12", result.Seasonality.Period)
	}
}

func TestForecastValidation(t *testing.T) {
	tests := []struct {
		name    string
		series  []models.TimeSeriesPoint
		horizon int
	}{
		{
			name:    "Слишком короткий ряд",
			series:  generateSeries(2, func(i int) float64 { return float64(i) }),
			horizon: 3,
		},
		{
			name:    "Пустой ряд",
			series:  nil,
			horizon: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Forecast(tt.series, tt.horizon, Options{})
			var insufficient *models.InsufficientDataError
			if !errors.As(err, &insufficient) {
				t.Errorf("ожидалась InsufficientDataError, получено %v", err)
			}
		})
	}
}

func TestForecastInvalidHorizon(t *testing.T) {
	series := generateSeries(10, func(i int) float64 { return float64(i) })

	_, err := Forecast(series, 0, Options{})
	var invalid *models.InvalidInputError
	if !errors.As(err, &invalid) {
		t.Errorf("для нулевого горизонта ожидалась InvalidInputError, получено %v", err)
	}
}

func TestForecastUnorderedTimestamps(t *testing.T) {
	series := generateSeries(10, func(i int) float64 { return float64(i) })
	series[3], series[4] = series[4], series[3]

	_, err := Forecast(series, 3, Options{})
	var invalid *models.InvalidInputError
	if !errors.As(err, &invalid) {
		t.Errorf("для неупорядоченного ряда ожидалась InvalidInputError, получено %v", err)
	}
}

func TestForecastDeterministic(t *testing.T) {
	series := generateSeries(24, func(i int) float64 {
		return 150 + 5*float64(i) + 20*math.Sin(2*math.Pi*float64(i)/6)
	})

	first, err := Forecast(series, 6, Options{})
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	second, _ := Forecast(series, 6, Options{})

	for i := range first.Steps {
		if first.Steps[i] != second.Steps[i] {
			t.Errorf("шаг %d отличается между запусками", i)
		}
	}
	if first.Trend != second.Trend {
		t.Errorf("тренд отличается между запусками")
	}
}
