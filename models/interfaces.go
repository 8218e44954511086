package models

// ChartEngine computes a full birth chart for a birth instant and place.
type ChartEngine interface {
	ComputeBirthChart(req BirthChartRequest) (*BirthChart, error)
}

// ForecastEngine projects a historical series onto future periods.
type ForecastEngine interface {
	Forecast(req ForecastRequest) (*ForecastResult, error)
}

// WellnessEngine scores lifestyle metrics into a stress assessment.
type WellnessEngine interface {
	ScoreWellness(metrics WellnessMetrics) (*StressAssessment, error)
}

// Combiner merges the two sides into one recommendation.
type Combiner interface {
	Combine(req CombineRequest) (*HybridPrediction, error)
}
