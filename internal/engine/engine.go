// Package engine exposes the four request/response contracts of the
// core: birth chart computation, ensemble forecasting, wellness
// scoring and hybrid combination. It owns validation and logging; the
// math lives in the leaf packages and stays pure.
package engine

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Aniket-hybrid/Predictor/internal/chart"
	"github.com/Aniket-hybrid/Predictor/internal/dasha"
	"github.com/Aniket-hybrid/Predictor/internal/forecast"
	"github.com/Aniket-hybrid/Predictor/internal/hybrid"
	"github.com/Aniket-hybrid/Predictor/internal/wellness"
	"github.com/Aniket-hybrid/Predictor/internal/yoga"
	"github.com/Aniket-hybrid/Predictor/models"
)

// Options configure an Engine instance. The zero value is usable.
type Options struct {
	Logger         *zerolog.Logger
	ForecastBudget time.Duration
	HybridWeights  *models.HybridWeights
}

// Engine is stateless between calls: every method reads only its
// inputs, so independent requests can run fully in parallel.
type Engine struct {
	logger         zerolog.Logger
	validate       *validator.Validate
	forecastBudget time.Duration
	hybridWeights  *models.HybridWeights
}

var (
	_ models.ChartEngine    = (*Engine)(nil)
	_ models.ForecastEngine = (*Engine)(nil)
	_ models.WellnessEngine = (*Engine)(nil)
	_ models.Combiner       = (*Engine)(nil)
)

// New creates an engine with the given options.
func New(opts Options) *Engine {
	logger := log.With().Str("component", "engine").Logger()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &Engine{
		logger:         logger,
		validate:       validator.New(),
		forecastBudget: opts.ForecastBudget,
		hybridWeights:  opts.HybridWeights,
	}
}

// ComputeBirthChart derives the full chart: placements, ascendant,
// house map, the active cycle period and the matched patterns. Pure
// function of the request; identical requests yield identical charts.
func (e *Engine) ComputeBirthChart(req models.BirthChartRequest) (*models.BirthChart, error) {
	if err := e.validate.Struct(req); err != nil {
		return nil, models.NewInvalidInput("birth_chart_request", err.Error())
	}
	if req.EvaluatedAt.Before(req.BirthInstant) {
		return nil, models.NewInvalidInput("evaluated_at", "evaluation instant precedes birth")
	}

	birthChart := chart.Build(req.BirthInstant, req.Latitude, req.Longitude)

	cycle, err := dasha.Compute(birthChart.MoonNakshatra, req.BirthInstant, req.EvaluatedAt)
	if err != nil {
		return nil, fmt.Errorf("computing cycle period: %w", err)
	}
	birthChart.Cycle = *cycle
	birthChart.Patterns = yoga.Detect(birthChart)

	e.logger.Debug().
		Str("ascendant", birthChart.Ascendant.String()).
		Str("cycle_lord", cycle.Lord.String()).
		Int("patterns", len(birthChart.Patterns)).
		Msg("Birth chart computed")

	return birthChart, nil
}

// Forecast runs the model ensemble over the historical series.
func (e *Engine) Forecast(req models.ForecastRequest) (*models.ForecastResult, error) {
	if err := e.validate.Struct(req); err != nil {
		return nil, models.NewInvalidInput("forecast_request", err.Error())
	}

	result, err := forecast.Forecast(req.Series, req.Horizon, forecast.Options{Budget: e.forecastBudget})
	if err != nil {
		return nil, err
	}

	e.logger.Debug().
		Str("trend", result.Trend).
		Strs("models", result.ModelsUsed).
		Msg("Ensemble forecast completed")

	return result, nil
}

// ScoreWellness folds the metric set into a stress assessment.
func (e *Engine) ScoreWellness(metrics models.WellnessMetrics) (*models.StressAssessment, error) {
	if err := e.validate.Struct(metrics); err != nil {
		return nil, models.NewInvalidInput("wellness_metrics", err.Error())
	}

	assessment := wellness.Score(metrics)

	e.logger.Debug().
		Float64("score", assessment.Score).
		Str("risk", assessment.RiskLevel).
		Msg("Wellness scored")

	return assessment, nil
}

// Combine merges both sides into the final recommendation.
func (e *Engine) Combine(req models.CombineRequest) (*models.HybridPrediction, error) {
	if req.Weights == nil {
		req.Weights = e.hybridWeights
	}
	prediction, err := hybrid.Combine(req)
	if err != nil {
		return nil, err
	}

	e.logger.Debug().
		Float64("combined", prediction.Combined).
		Str("tier", prediction.Tier).
		Msg("Hybrid prediction combined")

	return prediction, nil
}
