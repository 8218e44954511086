package models

import "time"

// BirthChartRequest - входные данные для расчета натальной карты.
// BirthInstant carries its own UTC offset; EvaluatedAt selects the
// active cycle period.
type BirthChartRequest struct {
	BirthInstant time.Time `json:"birth_instant" validate:"required"`
	Latitude     float64   `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude    float64   `json:"longitude" validate:"gte=-180,lte=180"`
	EvaluatedAt  time.Time `json:"evaluated_at" validate:"required"`
}

// ForecastRequest - входные данные для ансамблевого прогноза. Длину
// ряда проверяет сам прогнозный слой: слишком короткий ряд - это
// InsufficientDataError, а не ошибка формы запроса.
type ForecastRequest struct {
	Series  []TimeSeriesPoint `json:"series"`
	Horizon int               `json:"horizon" validate:"gte=1"`
}

// CombineRequest - входные данные гибридного комбинатора
type CombineRequest struct {
	AstroConfidence    float64        `json:"astrology_confidence" validate:"gte=0,lte=1"`
	BehaviorConfidence float64        `json:"behavior_confidence" validate:"gte=0,lte=1"`
	Agreement          Agreement      `json:"agreement" validate:"oneof=agree conflict indeterminate"`
	AstroActions       []ActionItem   `json:"astrology_actions,omitempty"`
	BehaviorActions    []ActionItem   `json:"behavior_actions,omitempty"`
	Weights            *HybridWeights `json:"-"`
}
