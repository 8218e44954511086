package forecast

import (
	"errors"
	"math"
)

var errDegenerate = errors.New("degenerate series: fit is singular")

// candidateOrders is the fixed (p,d,q) grid searched by AIC. Each
// component stays in {0,1,2}; the list is capped at nine orders so the
// search cost is bounded regardless of input.
var candidateOrders = [][3]int{
	{0, 1, 0},
	{0, 1, 1},
	{1, 0, 0},
	{1, 0, 1},
	{1, 1, 0},
	{1, 1, 1},
	{2, 0, 1},
	{2, 1, 1},
	{2, 1, 2},
}

// arimaModel - подобранная ARIMA(p,d,q) модель
type arimaModel struct {
	p, d, q int
	phi     []float64 // AR coefficients
	theta   []float64 // MA coefficients
	mu      float64   // mean of the differenced series
	sigma2  float64
	aic     float64
	w       []float64 // demeaned differenced series
	resid   []float64
	bases   []float64 // last value of each differencing level, for integration
}

// fitARIMA estimates an ARIMA(p,d,q) model with a two-stage
// Hannan-Rissanen scheme: a long AR fit supplies residual proxies,
// then one least-squares pass estimates the AR and MA coefficients
// jointly. A series whose d-times-differenced form is constant is a
// pure drift process and fits exactly as (0,d,0); orders the scheme
// cannot fit return errDegenerate.
func fitARIMA(values []float64, p, d, q int) (*arimaModel, error) {
	if len(values) <= d+p+q+1 {
		return nil, errDegenerate
	}

	diffed := difference(values, d)
	mu := mean(diffed)
	w := make([]float64, len(diffed))
	for i, v := range diffed {
		w[i] = v - mu
	}
	n := len(w)

	model := &arimaModel{p: p, d: d, q: q, mu: mu, w: w}
	// bases[k] - последнее значение ряда, продифференцированного k раз
	cur := values
	for k := 0; k < d; k++ {
		model.bases = append(model.bases, cur[len(cur)-1])
		cur = difference(cur, 1)
	}

	if autocovariance(w, 0) < 1e-12 {
		// Продифференцированный ряд константен. При d > 0 это чистый
		// дрейф: mu описывает его полностью, а оценивать AR/MA не на
		// чем. Константный исходный ряд (d = 0) моделью не считается.
		if d == 0 || p != 0 || q != 0 {
			return nil, errDegenerate
		}
		model.resid = make([]float64, n)
		model.sigma2 = 0
		model.aic = math.Inf(-1)
		return model, nil
	}

	switch {
	case p == 0 && q == 0:
		// Белый шум вокруг среднего
		model.phi = nil
		model.theta = nil
	case q == 0:
		phi := levinsonDurbin(w, p)
		if phi == nil {
			return nil, errDegenerate
		}
		model.phi = phi
	default:
		// Stage 1: long AR for residual proxies
		longOrder := p + q + 2
		if longOrder > n/2 {
			longOrder = n / 2
		}
		if longOrder < 1 {
			return nil, errDegenerate
		}
		longAR := levinsonDurbin(w, longOrder)
		if longAR == nil {
			return nil, errDegenerate
		}
		proxy := make([]float64, n)
		for t := longOrder; t < n; t++ {
			pred := 0.0
			for i, coeff := range longAR {
				pred += coeff * w[t-1-i]
			}
			proxy[t] = w[t] - pred
		}

		// Stage 2: least squares of w_t on its own lags and the
		// residual proxies
		start := longOrder + maxInt(p, q)
		rows := n - start
		dim := p + q
		if rows <= dim {
			return nil, errDegenerate
		}

		ata := make([][]float64, dim)
		for i := range ata {
			ata[i] = make([]float64, dim)
		}
		atb := make([]float64, dim)

		regressors := func(t int) []float64 {
			x := make([]float64, dim)
			for i := 0; i < p; i++ {
				x[i] = w[t-1-i]
			}
			for j := 0; j < q; j++ {
				x[p+j] = proxy[t-1-j]
			}
			return x
		}

		for t := start; t < n; t++ {
			x := regressors(t)
			for i := 0; i < dim; i++ {
				for j := 0; j < dim; j++ {
					ata[i][j] += x[i] * x[j]
				}
				atb[i] += x[i] * w[t]
			}
		}

		coeffs := solveLinear(ata, atb)
		if coeffs == nil {
			return nil, errDegenerate
		}
		model.phi = coeffs[:p]
		model.theta = coeffs[p:]
	}

	// Рекурсивно восстанавливаем остатки итоговой модели
	resid := make([]float64, n)
	sse := 0.0
	for t := 0; t < n; t++ {
		pred := 0.0
		for i, coeff := range model.phi {
			if t-1-i >= 0 {
				pred += coeff * w[t-1-i]
			}
		}
		for j, coeff := range model.theta {
			if t-1-j >= 0 {
				pred += coeff * resid[t-1-j]
			}
		}
		resid[t] = w[t] - pred
		sse += resid[t] * resid[t]
	}
	model.resid = resid
	model.sigma2 = sse / float64(n)

	if model.sigma2 <= 0 || math.IsNaN(model.sigma2) || math.IsInf(model.sigma2, 0) {
		return nil, errDegenerate
	}

	// AIC по гауссовскому приближению правдоподобия
	model.aic = float64(n)*math.Log(model.sigma2) + 2*float64(p+q+1)
	return model, nil
}

// forecast projects h steps ahead with a 95% band from the psi-weight
// variance recursion.
func (m *arimaModel) forecast(h int) (points, lower, upper []float64) {
	n := len(m.w)

	// Расширяем ряд прогнозами; будущие ошибки равны нулю
	extended := append([]float64(nil), m.w...)
	for k := 0; k < h; k++ {
		t := n + k
		pred := 0.0
		for i, coeff := range m.phi {
			idx := t - 1 - i
			if idx >= 0 {
				pred += coeff * extended[idx]
			}
		}
		for j, coeff := range m.theta {
			idx := t - 1 - j
			if idx >= 0 && idx < n {
				pred += coeff * m.resid[idx]
			}
		}
		extended = append(extended, pred)
	}

	diffForecast := make([]float64, h)
	for k := 0; k < h; k++ {
		diffForecast[k] = extended[n+k] + m.mu
	}

	// Интегрируем обратно d раз, от внутреннего уровня к исходному
	points = diffForecast
	for level := m.d - 1; level >= 0; level-- {
		integrated := make([]float64, h)
		acc := m.bases[level]
		for k := 0; k < h; k++ {
			acc += points[k]
			integrated[k] = acc
		}
		points = integrated
	}

	// Psi-веса: psi_j = theta_j + sum phi_i psi_{j-i}
	psi := make([]float64, h)
	for j := 0; j < h; j++ {
		v := 0.0
		if j == 0 {
			v = 1
		} else {
			if j-1 < len(m.theta) {
				v = m.theta[j-1]
			}
			for i, coeff := range m.phi {
				if j-1-i >= 0 {
					v += coeff * psi[j-1-i]
				}
			}
		}
		psi[j] = v
	}
	psi = integrateWeights(psi, m.d)

	lower = make([]float64, h)
	upper = make([]float64, h)
	cum := 0.0
	for k := 0; k < h; k++ {
		cum += psi[k] * psi[k]
		se := math.Sqrt(m.sigma2 * cum)
		lower[k] = points[k] - 1.96*se
		upper[k] = points[k] + 1.96*se
	}
	return points, lower, upper
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
