package main

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Aniket-hybrid/Predictor/config"
	"github.com/Aniket-hybrid/Predictor/internal/engine"
	"github.com/Aniket-hybrid/Predictor/internal/ephemeris"
	"github.com/Aniket-hybrid/Predictor/internal/yoga"
	"github.com/Aniket-hybrid/Predictor/models"
)

func init() {
	// если .env лежит в корне проекта, без аргумента он сам найдёт
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}
}

func main() {
	// 1) Загружаем конфиг и настраиваем логгер
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	setupLogging(cfg.LogLevel)
	log.Info().Msg("Starting Hybrid Predictor")

	weights, err := config.LoadWeights(cfg.WeightsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load weight overrides")
	}

	eng := engine.New(engine.Options{
		ForecastBudget: time.Duration(cfg.ForecastBudgetMS) * time.Millisecond,
		HybridWeights:  weights,
	})

	// 2) Натальная карта
	birthInstant, err := config.BirthInstant(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid birth instant")
	}

	now := time.Now()
	chart, err := eng.ComputeBirthChart(models.BirthChartRequest{
		BirthInstant: birthInstant,
		Latitude:     cfg.Latitude,
		Longitude:    cfg.Longitude,
		EvaluatedAt:  now,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Birth chart computation failed")
	}
	printChart(chart, now)

	// 3) Ансамблевый прогноз по историческому ряду
	series, err := loadSeries(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load series")
	}

	forecastResult, err := eng.Forecast(models.ForecastRequest{
		Series:  series,
		Horizon: cfg.ForecastHorizon,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Forecast failed")
	}
	printForecast(forecastResult)

	// 4) Оценка стресса по метрикам образа жизни
	assessment, err := eng.ScoreWellness(models.WellnessMetrics{
		WorkHours:         cfg.WorkHours,
		SleepHours:        cfg.SleepHours,
		ExerciseMinutes:   cfg.ExerciseMinutes,
		MoodScore:         cfg.MoodScore,
		MeetingsCount:     cfg.MeetingsCount,
		CaffeineCups:      cfg.CaffeineCups,
		MeditationMinutes: cfg.MeditationMinutes,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Wellness scoring failed")
	}
	printWellness(assessment)

	// 5) Гибридная комбинация двух сторон
	astroConfidence, astroActions := astrologySide(chart)
	behaviorConfidence, behaviorActions := behaviorSide(forecastResult, assessment)
	agreement := agreementSignal(chart, forecastResult)

	prediction, err := eng.Combine(models.CombineRequest{
		AstroConfidence:    astroConfidence,
		BehaviorConfidence: behaviorConfidence,
		Agreement:          agreement,
		AstroActions:       astroActions,
		BehaviorActions:    behaviorActions,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Hybrid combination failed")
	}

	// Идентификатор и штамп присваивает вызывающая сторона, не ядро
	prediction.PredictionID = uuid.NewString()
	prediction.Timestamp = time.Now()
	printPrediction(prediction)
}

func setupLogging(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}

// loadSeries reads "date,value" lines from SERIES_FILE, or generates a
// deterministic demo series when no file is configured.
func loadSeries(cfg *models.Config) ([]models.TimeSeriesPoint, error) {
	if cfg.SeriesFile == "" {
		return demoSeries(), nil
	}

	f, err := os.Open(cfg.SeriesFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var series []models.TimeSeriesPoint
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, ",", 2)
		if len(parts) != 2 {
			return nil, models.NewInvalidInput("series_file", "expected date,value per line")
		}
		ts, err := time.Parse("2006-01-02", strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, models.NewInvalidInput("series_file", err.Error())
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, models.NewInvalidInput("series_file", err.Error())
		}
		series = append(series, models.TimeSeriesPoint{Timestamp: ts, Value: value})
	}
	return series, scanner.Err()
}

// demoSeries - 24 месячных точки: тренд плюс годовой цикл
func demoSeries() []models.TimeSeriesPoint {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	series := make([]models.TimeSeriesPoint, 24)
	for i := 0; i < 24; i++ {
		value := 1000 + 15*float64(i) + 80*math.Sin(2*math.Pi*float64(i)/12)
		series[i] = models.TimeSeriesPoint{
			Timestamp: start.AddDate(0, i, 0),
			Value:     value,
		}
	}
	return series
}

// astrologySide derives a confidence from the pattern balance: each
// auspicious match raises it, inauspicious matches lower it by tier.
func astrologySide(chart *models.BirthChart) (float64, []models.ActionItem) {
	confidence := 0.5
	var actions []models.ActionItem

	for _, p := range chart.Patterns {
		if p.Auspicious {
			confidence += 0.1
			continue
		}
		switch p.Severity {
		case models.SeverityHigh:
			confidence -= 0.15
		case models.SeverityMedium:
			confidence -= 0.1
		default:
			confidence -= 0.05
		}
		for _, remedy := range p.Remedies {
			actions = append(actions, models.ActionItem{Text: remedy, Source: "ASTROLOGY", Priority: 2})
		}
	}

	confidence = math.Max(0, math.Min(1, confidence))
	return confidence, actions
}

func behaviorSide(forecastResult *models.ForecastResult, assessment *models.StressAssessment) (float64, []models.ActionItem) {
	// Чем больше моделей сошлось и чем ниже стресс, тем выше уверенность
	confidence := 0.4 + 0.1*float64(len(forecastResult.ModelsUsed)) - assessment.Score/400
	confidence = math.Max(0, math.Min(1, confidence))

	var actions []models.ActionItem
	for _, rec := range assessment.Recommendations {
		actions = append(actions, models.ActionItem{Text: rec, Source: "BEHAVIOR", Priority: 1})
	}
	for _, rec := range forecastResult.Recommendations {
		actions = append(actions, models.ActionItem{Text: rec, Source: "BEHAVIOR", Priority: 3})
	}
	return confidence, actions
}

func agreementSignal(chart *models.BirthChart, forecastResult *models.ForecastResult) models.Agreement {
	auspicious := 0
	inauspicious := 0
	for _, p := range chart.Patterns {
		if p.Auspicious {
			auspicious++
		} else {
			inauspicious++
		}
	}

	astroPositive := auspicious > inauspicious
	astroNegative := inauspicious > auspicious

	switch forecastResult.Trend {
	case models.TrendUpward:
		if astroPositive {
			return models.AgreementAgree
		}
		if astroNegative {
			return models.AgreementConflict
		}
	case models.TrendDownward:
		if astroNegative {
			return models.AgreementAgree
		}
		if astroPositive {
			return models.AgreementConflict
		}
	}
	return models.AgreementIndeterminate
}

func printChart(chart *models.BirthChart, now time.Time) {
	fmt.Printf("\n=== BIRTH CHART ===\n")
	fmt.Printf("Ascendant: %s (%.2f°)\n", chart.Ascendant, chart.AscendantDegree)
	fmt.Printf("Moon nakshatra: %s\n", chart.MoonNakshatra)
	for _, body := range models.AllBodies() {
		p := chart.Placements[body]
		fmt.Printf("  %-8s %-12s %6.2f°  house %2d  %s (pada %d)\n",
			p.Body, p.Sign, p.Degree, p.House, p.Nakshatra, p.Pada)
	}
	fmt.Printf("Cycle: %s Mahadasha (%s - %s), %s Antardasha\n",
		chart.Cycle.Lord,
		chart.Cycle.Start.Format("2006-01-02"),
		chart.Cycle.End.Format("2006-01-02"),
		chart.Cycle.SubLord)
	for _, p := range chart.Patterns {
		kind := "Yoga"
		if !p.Auspicious {
			kind = "Dosha"
		}
		fmt.Printf("  [%s] %s (%s): %s\n", kind, p.Name, p.Severity, p.Description)
	}

	// Текущий транзит Сатурна относительно натальной Луны
	transitSaturn := ephemeris.Longitude(ephemeris.JulianDay(now), models.Saturn)
	sadeSati := yoga.CheckSadeSati(chart.Placements[models.Moon].Longitude, transitSaturn)
	if sadeSati.Active {
		fmt.Printf("Sade Sati: %s (Saturn %.1f° from natal Moon)\n", sadeSati.Phase, sadeSati.Distance)
	}

	strengths := yoga.HouseStrengths(chart)
	strongest := 1
	for house := 2; house <= 12; house++ {
		if strengths[house] > strengths[strongest] {
			strongest = house
		}
	}
	fmt.Printf("Strongest house: %d (%d points)\n", strongest, strengths[strongest])
}

func printForecast(result *models.ForecastResult) {
	fmt.Printf("\n=== FORECAST (%s) ===\n", strings.Join(result.ModelsUsed, "+"))
	for _, step := range result.Steps {
		fmt.Printf("  step %d: %.2f [%.2f, %.2f]\n", step.Step, step.Point, step.Lower, step.Upper)
	}
	fmt.Printf("Trend: %s, volatility %.2f\n", result.Trend, result.Volatility)
	if result.Seasonality.Detected {
		fmt.Printf("Seasonality: period %d, strength %.2f\n", result.Seasonality.Period, result.Seasonality.Strength)
	}
}

func printWellness(assessment *models.StressAssessment) {
	fmt.Printf("\n=== WELLNESS ===\n")
	fmt.Printf("Stress score: %.1f (%s)\n", assessment.Score, assessment.RiskLevel)
	for _, rec := range assessment.Recommendations {
		fmt.Printf("  - %s\n", rec)
	}
}

func printPrediction(prediction *models.HybridPrediction) {
	fmt.Printf("\n=== HYBRID PREDICTION %s ===\n", prediction.PredictionID)
	fmt.Printf("Combined confidence: %.2f (%s, %s)\n",
		prediction.Combined, prediction.Tier, prediction.Agreement)
	for _, item := range prediction.ActionItems {
		fmt.Printf("  [%d][%s] %s\n", item.Priority, item.Source, item.Text)
	}
}
