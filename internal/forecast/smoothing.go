package forecast

import "math"

// smoothingModel - экспоненциальное сглаживание с аддитивным трендом
// и, при обнаруженной сезонности, аддитивной сезонной компонентой
type smoothingModel struct {
	level    float64
	trend    float64
	seasonal []float64 // empty when no seasonal component
	period   int
	sigma    float64 // std dev of one-step fit errors
	sse      float64
}

var smoothingGrid = []float64{0.2, 0.5, 0.8}

// fitSmoothing fits Holt's linear method, extended to Holt-Winters
// when seasonalPeriod > 0, picking smoothing constants from a small
// fixed grid by one-step squared error.
func fitSmoothing(values []float64, seasonalPeriod int) (*smoothingModel, error) {
	if len(values) < 3 {
		return nil, errDegenerate
	}
	if seasonalPeriod > 0 && len(values) < 2*seasonalPeriod {
		// Недостаточно данных для сезонной инициализации
		seasonalPeriod = 0
	}

	var best *smoothingModel
	for _, alpha := range smoothingGrid {
		for _, beta := range smoothingGrid {
			if seasonalPeriod > 0 {
				for _, gamma := range smoothingGrid {
					m := runSmoothing(values, alpha, beta, gamma, seasonalPeriod)
					if best == nil || m.sse < best.sse {
						best = m
					}
				}
			} else {
				m := runSmoothing(values, alpha, beta, 0, 0)
				if best == nil || m.sse < best.sse {
					best = m
				}
			}
		}
	}

	if best == nil || math.IsNaN(best.sse) || math.IsInf(best.sse, 0) {
		return nil, errDegenerate
	}
	best.sigma = math.Sqrt(best.sse / float64(len(values)))
	return best, nil
}

func runSmoothing(values []float64, alpha, beta, gamma float64, period int) *smoothingModel {
	level := values[0]
	trend := values[1] - values[0]

	var seasonal []float64
	if period > 0 {
		// Инициализация сезонных индексов по первому циклу
		cycleMean := mean(values[:period])
		seasonal = make([]float64, period)
		for i := 0; i < period; i++ {
			seasonal[i] = values[i] - cycleMean
		}
	}

	sse := 0.0
	for t := 1; t < len(values); t++ {
		var fitted float64
		if period > 0 {
			fitted = level + trend + seasonal[t%period]
		} else {
			fitted = level + trend
		}
		err := values[t] - fitted
		sse += err * err

		prevLevel := level
		if period > 0 {
			level = alpha*(values[t]-seasonal[t%period]) + (1-alpha)*(level+trend)
			seasonal[t%period] = gamma*(values[t]-level) + (1-gamma)*seasonal[t%period]
		} else {
			level = alpha*values[t] + (1-alpha)*(level+trend)
		}
		trend = beta*(level-prevLevel) + (1-beta)*trend
	}

	return &smoothingModel{
		level:    level,
		trend:    trend,
		seasonal: seasonal,
		period:   period,
		sse:      sse,
	}
}

// forecast projects h steps ahead; the band grows with sqrt(h) from
// the one-step error spread.
func (m *smoothingModel) forecast(h int, seriesLen int) (points, lower, upper []float64) {
	points = make([]float64, h)
	lower = make([]float64, h)
	upper = make([]float64, h)

	for k := 1; k <= h; k++ {
		v := m.level + float64(k)*m.trend
		if m.period > 0 {
			v += m.seasonal[(seriesLen+k-1)%m.period]
		}
		se := m.sigma * math.Sqrt(float64(k))
		points[k-1] = v
		lower[k-1] = v - 1.96*se
		upper[k-1] = v + 1.96*se
	}
	return points, lower, upper
}
