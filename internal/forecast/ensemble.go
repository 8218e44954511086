// Package forecast fits a small ensemble of time-series models and
// merges them into one projection with confidence bounds.
//
// The ensemble band is the 2.5th/97.5th percentile of the individual
// models' point forecasts at each step: a cross-model-spread
// approximation, not a bootstrapped prediction interval.
package forecast

import (
	"math"
	"sort"
	"time"

	"github.com/Aniket-hybrid/Predictor/models"
)

// MinSeriesLength - минимально допустимая длина входного ряда
const MinSeriesLength = 3

// DefaultBudget bounds the ARIMA grid search wall-clock time.
const DefaultBudget = 2 * time.Second

const trendThreshold = 0.05 // ±5% of the forecast mean

// Options tune the ensemble run.
type Options struct {
	Budget time.Duration // grid search ceiling; DefaultBudget when zero
}

// modelForecast - результат одной модели-кандидата
type modelForecast struct {
	name   string
	points []float64
	lower  []float64
	upper  []float64
}

// Forecast validates the series, fits up to three candidate models and
// merges the successes. A single model's fit failure is recorded and
// excluded; when every candidate fails the whole call fails with
// InsufficientDataError.
func Forecast(series []models.TimeSeriesPoint, horizon int, opts Options) (*models.ForecastResult, error) {
	if horizon < 1 {
		return nil, models.NewInvalidInput("horizon", "must be a positive integer")
	}
	if len(series) < MinSeriesLength {
		return nil, &models.InsufficientDataError{Needed: MinSeriesLength, Got: len(series)}
	}
	for i := 1; i < len(series); i++ {
		if !series[i].Timestamp.After(series[i-1].Timestamp) {
			return nil, models.NewInvalidInput("series", "timestamps must be strictly increasing")
		}
	}

	budget := opts.Budget
	if budget <= 0 {
		budget = DefaultBudget
	}
	deadline := time.Now().Add(budget)

	values := make([]float64, len(series))
	for i, p := range series {
		values[i] = p.Value
	}

	seasonality := DetectSeasonality(values)

	var candidates []modelForecast

	// 1. Plain ARIMA, order picked by AIC over the bounded grid
	arima, arimaErr := bestARIMA(values, deadline, budget)
	if arimaErr == nil {
		points, lower, upper := arima.forecast(horizon)
		candidates = append(candidates, modelForecast{name: "ARIMA", points: points, lower: lower, upper: upper})
	} else if _, budgetExceeded := arimaErr.(*models.ComputationTimeoutError); budgetExceeded {
		return nil, arimaErr
	}

	// 2. Seasonal variant; without a dominant cycle the plain model is
	// reused and not reported twice
	if seasonality.Detected && arimaErr == nil {
		if seasonal, err := fitSeasonalARIMA(values, seasonality.Period, deadline, budget); err == nil {
			points, lower, upper := seasonal.forecast(horizon)
			candidates = append(candidates, modelForecast{name: "SARIMA", points: points, lower: lower, upper: upper})
		}
	}

	// 3. Exponential smoothing with additive trend
	seasonalPeriod := 0
	if seasonality.Detected {
		seasonalPeriod = seasonality.Period
	}
	if smoothing, err := fitSmoothing(values, seasonalPeriod); err == nil {
		points, lower, upper := smoothing.forecast(horizon, len(values))
		candidates = append(candidates, modelForecast{name: "EXP_SMOOTHING", points: points, lower: lower, upper: upper})
	}

	if len(candidates) == 0 {
		return nil, &models.InsufficientDataError{Reason: "all candidate models failed to fit"}
	}

	steps := make([]models.ForecastStep, horizon)
	ensemblePath := make([]float64, horizon)
	for k := 0; k < horizon; k++ {
		cross := make([]float64, 0, len(candidates))
		for _, c := range candidates {
			cross = append(cross, c.points[k])
		}
		sort.Float64s(cross)

		point := mean(cross)
		ensemblePath[k] = point
		steps[k] = models.ForecastStep{
			Step:  k + 1,
			Point: point,
			Lower: percentile(cross, 2.5),
			Upper: percentile(cross, 97.5),
		}
	}

	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		names = append(names, c.name)
	}

	result := &models.ForecastResult{
		Steps:       steps,
		Trend:       classifyTrend(ensemblePath),
		ModelsUsed:  names,
		Volatility:  stdDev(ensemblePath),
		Seasonality: seasonality,
	}
	result.Recommendations = recommendations(result, ensemblePath)
	return result, nil
}

// bestARIMA runs the bounded AIC grid search. Individual order
// failures are skipped; exhausting the wall-clock budget with no fit
// at all is a timeout, otherwise the best order found so far wins.
func bestARIMA(values []float64, deadline time.Time, budget time.Duration) (*arimaModel, error) {
	var best *arimaModel
	for _, order := range candidateOrders {
		if time.Now().After(deadline) {
			if best != nil {
				return best, nil
			}
			return nil, &models.ComputationTimeoutError{Budget: budget}
		}
		m, err := fitARIMA(values, order[0], order[1], order[2])
		if err != nil {
			continue // кандидат исключается, повторов нет
		}
		if best == nil || m.aic < best.aic {
			best = m
		}
	}
	if best == nil {
		return nil, errDegenerate
	}
	return best, nil
}

// fitSeasonalARIMA differences at the seasonal lag first, then runs
// the same grid on the deseasonalized series. The forecast inverts the
// seasonal differencing against the tail of the original series.
func fitSeasonalARIMA(values []float64, period int, deadline time.Time, budget time.Duration) (*seasonalARIMA, error) {
	if period < 2 || len(values) < period+MinSeriesLength {
		return nil, errDegenerate
	}
	deseasoned := make([]float64, len(values)-period)
	for i := period; i < len(values); i++ {
		deseasoned[i-period] = values[i] - values[i-period]
	}
	inner, err := bestARIMA(deseasoned, deadline, budget)
	if err != nil {
		return nil, errDegenerate
	}
	return &seasonalARIMA{inner: inner, period: period, tail: values[len(values)-period:]}, nil
}

type seasonalARIMA struct {
	inner  *arimaModel
	period int
	tail   []float64 // last full season of the original series
}

func (m *seasonalARIMA) forecast(h int) (points, lower, upper []float64) {
	innerPoints, innerLower, innerUpper := m.inner.forecast(h)

	points = make([]float64, h)
	lower = make([]float64, h)
	upper = make([]float64, h)
	// Инвертируем сезонное дифференцирование: x_{t} = d_t + x_{t-m}
	history := append([]float64(nil), m.tail...)
	for k := 0; k < h; k++ {
		base := history[len(history)-m.period]
		points[k] = innerPoints[k] + base
		lower[k] = innerLower[k] + base
		upper[k] = innerUpper[k] + base
		history = append(history, points[k])
	}
	return points, lower, upper
}

// classifyTrend compares the first-to-last change of the ensemble path
// against ±5% of its mean.
func classifyTrend(path []float64) string {
	if len(path) < 2 {
		return models.TrendStable
	}
	delta := path[len(path)-1] - path[0]
	threshold := trendThreshold * math.Abs(mean(path))
	switch {
	case delta > threshold:
		return models.TrendUpward
	case delta < -threshold:
		return models.TrendDownward
	default:
		return models.TrendStable
	}
}

// recommendations come from independent trend and volatility checks in
// a stable declared order.
func recommendations(result *models.ForecastResult, path []float64) []string {
	var recs []string
	switch result.Trend {
	case models.TrendUpward:
		recs = append(recs,
			"Trend is positive - consider investing the surplus",
			"Plan ahead - an upward trend suggests stability")
	case models.TrendDownward:
		recs = append(recs,
			"Trend is declining - build an emergency fund",
			"Review expenses and cut non-essential spending")
	}
	if result.Volatility > 0.3*math.Abs(mean(path)) {
		recs = append(recs, "High volatility - maintain a larger reserve")
	}
	return recs
}
