package models

import (
	"fmt"
	"time"
)

type Config struct {
	LogLevel          string  `env:"LOG_LEVEL" envDefault:"info" default:"info"`
	BirthDate         string  `env:"BIRTH_DATE" envDefault:"1990-05-15" default:"1990-05-15"`
	BirthTime         string  `env:"BIRTH_TIME" envDefault:"14:30" default:"14:30"`
	TZOffsetHours     float64 `env:"TZ_OFFSET_HOURS" envDefault:"5.5" default:"5.5"`
	Latitude          float64 `env:"LATITUDE" envDefault:"19.0760" default:"19.0760"`
	Longitude         float64 `env:"LONGITUDE" envDefault:"72.8777" default:"72.8777"`
	ForecastHorizon   int     `env:"FORECAST_HORIZON" envDefault:"6" default:"6"`
	ForecastBudgetMS  int     `env:"FORECAST_BUDGET_MS" envDefault:"2000" default:"2000"`
	SeriesFile        string  `env:"SERIES_FILE" envDefault:""`
	WeightsFile       string  `env:"WEIGHTS_FILE" envDefault:""`
	WorkHours         float64 `env:"WORK_HOURS" envDefault:"8" default:"8"`
	SleepHours        float64 `env:"SLEEP_HOURS" envDefault:"7" default:"7"`
	ExerciseMinutes   float64 `env:"EXERCISE_MINUTES" envDefault:"30" default:"30"`
	MoodScore         float64 `env:"MOOD_SCORE" envDefault:"6" default:"6"`
	MeetingsCount     float64 `env:"MEETINGS_COUNT" envDefault:"4" default:"4"`
	CaffeineCups      float64 `env:"CAFFEINE_CUPS" envDefault:"2" default:"2"`
	MeditationMinutes float64 `env:"MEDITATION_MINUTES" envDefault:"10" default:"10"`
}

// Body - закрытое перечисление девяти грах (никаких строковых сравнений)
type Body int

const (
	Sun Body = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Rahu
	Ketu

	BodyCount = 9
)

var bodyNames = [BodyCount]string{
	"Sun", "Moon", "Mercury", "Venus", "Mars", "Jupiter", "Saturn", "Rahu", "Ketu",
}

func (b Body) String() string {
	if b < 0 || int(b) >= BodyCount {
		return fmt.Sprintf("Body(%d)", int(b))
	}
	return bodyNames[b]
}

func (b Body) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// AllBodies returns the nine bodies in their canonical order.
func AllBodies() [BodyCount]Body {
	return [BodyCount]Body{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Rahu, Ketu}
}

// Sign - знак зодиака, индекс 0-11
type Sign int

var signNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

func (s Sign) String() string {
	if s < 0 || s > 11 {
		return fmt.Sprintf("Sign(%d)", int(s))
	}
	return signNames[s]
}

func (s Sign) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Nakshatra - лунная стоянка, индекс 0-26
type Nakshatra int

var nakshatraNames = [27]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira",
	"Ardra", "Punarvasu", "Pushya", "Ashlesha", "Magha",
	"Purva Phalguni", "Uttara Phalguni", "Hasta", "Chitra", "Swati",
	"Visakha", "Anuradha", "Jyeshtha", "Mula", "Purva Ashadha",
	"Uttara Ashadha", "Shravana", "Dhanishtha", "Shatabhisha", "Purva Bhadrapada",
	"Uttara Bhadrapada", "Revati",
}

func (n Nakshatra) String() string {
	if n < 0 || n > 26 {
		return fmt.Sprintf("Nakshatra(%d)", int(n))
	}
	return nakshatraNames[n]
}

func (n Nakshatra) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// ChartPlacement describes a single body's position in the chart
type ChartPlacement struct {
	Body      Body      `json:"body"`
	Longitude float64   `json:"longitude"` // ecliptic longitude, [0,360)
	Sign      Sign      `json:"sign"`
	Degree    float64   `json:"degree_in_sign"` // [0,30)
	House     int       `json:"house"`          // 1-12
	Nakshatra Nakshatra `json:"nakshatra"`
	Pada      int       `json:"pada"` // 1-4
}

// BirthChart is a pure function of (birth instant, latitude, longitude,
// evaluation instant). Recomputing with identical inputs yields an
// identical chart.
type BirthChart struct {
	Ascendant       Sign                    `json:"ascendant"`
	AscendantDegree float64                 `json:"ascendant_degree"`
	Houses          map[int]Sign            `json:"houses"`
	Placements      map[Body]ChartPlacement `json:"placements"`
	MoonNakshatra   Nakshatra               `json:"moon_nakshatra"`
	Cycle           CyclePeriod             `json:"cycle"`
	Patterns        []PatternMatch          `json:"patterns"`
}

// SubPeriod - одна строка таблицы антардаш
type SubPeriod struct {
	Lord  Body      `json:"lord"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// CyclePeriod describes the active Dasha/Antardasha at the evaluation
// instant. Unlike the rest of BirthChart it depends on the evaluation time.
type CyclePeriod struct {
	Lord       Body        `json:"lord"`
	Start      time.Time   `json:"start"`
	End        time.Time   `json:"end"`
	SubLord    Body        `json:"sub_lord"`
	SubStart   time.Time   `json:"sub_start"`
	SubEnd     time.Time   `json:"sub_end"`
	SubPeriods []SubPeriod `json:"sub_periods"`
	Upcoming   []Body      `json:"upcoming"`
	ElapsedYrs float64     `json:"elapsed_years"`
}

// Severity tiers for pattern matches
const (
	SeverityLow    = "LOW"
	SeverityMedium = "MEDIUM"
	SeverityHigh   = "HIGH"
)

// PatternMatch - найденная йога или доша
type PatternMatch struct {
	Name        string   `json:"name"`
	Auspicious  bool     `json:"auspicious"`
	Severity    string   `json:"severity"`
	Description string   `json:"description"`
	Remedies    []string `json:"remedies,omitempty"`
}

// TimeSeriesPoint is a single observation of the behavioral series
type TimeSeriesPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// ForecastStep is one horizon step of the ensemble output
type ForecastStep struct {
	Step  int     `json:"step"`
	Point float64 `json:"point"`
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Trend classification constants
const (
	TrendUpward   = "UPWARD"
	TrendDownward = "DOWNWARD"
	TrendStable   = "STABLE"
)

// SeasonalityInfo - результат поиска доминирующего цикла
type SeasonalityInfo struct {
	Detected bool    `json:"detected"`
	Period   int     `json:"period"`
	Strength float64 `json:"strength"`
}

// ForecastResult is the ensemble output. The confidence band is the
// cross-model percentile spread, an approximation rather than a true
// prediction interval.
type ForecastResult struct {
	Steps           []ForecastStep  `json:"forecast"`
	Trend           string          `json:"trend"`
	ModelsUsed      []string        `json:"models_used"`
	Volatility      float64         `json:"volatility"`
	Seasonality     SeasonalityInfo `json:"seasonality"`
	Recommendations []string        `json:"recommendations,omitempty"`
}

// WellnessMetrics - фиксированный набор метрик образа жизни
type WellnessMetrics struct {
	WorkHours         float64 `json:"work_hours" validate:"gte=0,lte=24"`
	SleepHours        float64 `json:"sleep_hours" validate:"gte=0,lte=24"`
	ExerciseMinutes   float64 `json:"exercise_minutes" validate:"gte=0"`
	MoodScore         float64 `json:"mood_score" validate:"gte=1,lte=10"`
	MeetingsCount     float64 `json:"meetings_count" validate:"gte=0"`
	CaffeineCups      float64 `json:"caffeine_cups" validate:"gte=0"`
	MeditationMinutes float64 `json:"meditation_minutes" validate:"gte=0"`
}

// Risk tiers for the stress score
const (
	RiskLow      = "LOW"
	RiskModerate = "MODERATE"
	RiskHigh     = "HIGH"
	RiskCritical = "CRITICAL"
)

// StressAssessment is the wellness scorer output
type StressAssessment struct {
	Score           float64            `json:"score"` // 0-100
	RiskLevel       string             `json:"risk_level"`
	Contributions   map[string]float64 `json:"contributions"`
	Recommendations []string           `json:"recommendations"`
}

// Agreement describes whether the astrology side and the behavior side
// point the same way.
type Agreement string

const (
	AgreementAgree         Agreement = "agree"
	AgreementConflict      Agreement = "conflict"
	AgreementIndeterminate Agreement = "indeterminate"
)

// Recommendation tiers of the hybrid combiner
const (
	TierVeryHighOpportunity = "VERY_HIGH_OPPORTUNITY"
	TierModerate            = "MODERATE"
	TierCaution             = "CAUTION"
)

// ActionItem - пункт рекомендации с приоритетом для слияния
type ActionItem struct {
	Text     string `json:"text"`
	Source   string `json:"source"`   // ASTROLOGY or BEHAVIOR
	Priority int    `json:"priority"` // lower is more urgent
}

// HybridPrediction merges both sides into one confidence-scored
// recommendation. Ephemeral, generated per request; PredictionID and
// Timestamp are assigned by the caller, not by the core.
type HybridPrediction struct {
	PredictionID       string       `json:"prediction_id,omitempty"`
	AstroConfidence    float64      `json:"astrology_confidence"`
	BehaviorConfidence float64      `json:"behavior_confidence"`
	Agreement          Agreement    `json:"agreement"`
	Combined           float64      `json:"combined_confidence"` // [0,1]
	Tier               string       `json:"recommendation_tier"`
	ActionItems        []ActionItem `json:"action_items"`
	Timestamp          time.Time    `json:"timestamp,omitempty"`
}

// HybridWeights - веса комбинатора, могут быть переопределены из YAML
type HybridWeights struct {
	Astrology       float64 `yaml:"astrology" default:"0.3"`
	Behavior        float64 `yaml:"behavior" default:"0.7"`
	AgreeBonus      float64 `yaml:"agree_bonus" default:"0.2"`
	ConflictPenalty float64 `yaml:"conflict_penalty" default:"0.1"`
}
