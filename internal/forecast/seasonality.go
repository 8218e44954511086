package forecast

import (
	"math"

	"github.com/Aniket-hybrid/Predictor/models"
)

// DetectSeasonality looks for a dominant cycle via the periodogram
// peak and reports its strength as the largest autocorrelation among
// the first lags. A cycle only counts when it is shorter than half the
// series length.
func DetectSeasonality(values []float64) models.SeasonalityInfo {
	n := len(values)
	info := models.SeasonalityInfo{Period: 12}
	if n < 4 {
		return info
	}

	m := mean(values)
	r0 := autocovariance(values, 0)
	if r0 < 1e-12 {
		// Константный ряд - сезонности нет
		return info
	}

	// Периодограмма наивным ДПФ; ряды здесь короткие, O(n^2) достаточно
	bestPower := 0.0
	bestFreq := 0.0
	for k := 1; k <= n/2; k++ {
		freq := float64(k) / float64(n)
		var re, im float64
		for t := 0; t < n; t++ {
			angle := 2 * math.Pi * freq * float64(t)
			re += (values[t] - m) * math.Cos(angle)
			im -= (values[t] - m) * math.Sin(angle)
		}
		power := re*re + im*im
		if power > bestPower {
			bestPower = power
			bestFreq = freq
		}
	}

	if bestFreq > 0 {
		info.Period = int(math.Round(1 / bestFreq))
	}

	// Сила сезонности - максимум АКФ на первых лагах
	maxLag := 12
	if maxLag > n-1 {
		maxLag = n - 1
	}
	for lag := 1; lag <= maxLag; lag++ {
		acf := autocovariance(values, lag) / r0
		if acf > info.Strength {
			info.Strength = acf
		}
	}

	info.Detected = info.Period >= 2 && float64(info.Period) < float64(n)/2
	return info
}
