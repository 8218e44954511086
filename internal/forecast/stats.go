package forecast

import "math"

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func variance(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	sum := 0.0
	for _, v := range values {
		sum += (v - m) * (v - m)
	}
	return sum / float64(len(values))
}

func stdDev(values []float64) float64 {
	return math.Sqrt(variance(values))
}

// difference applies first-order differencing d times, returning the
// shortened series.
func difference(values []float64, d int) []float64 {
	out := append([]float64(nil), values...)
	for k := 0; k < d; k++ {
		next := make([]float64, len(out)-1)
		for i := 1; i < len(out); i++ {
			next[i-1] = out[i] - out[i-1]
		}
		out = next
	}
	return out
}

// autocovariance at lag k of a demeaned view of the series
func autocovariance(values []float64, lag int) float64 {
	n := len(values)
	if lag >= n {
		return 0
	}
	m := mean(values)
	sum := 0.0
	for i := lag; i < n; i++ {
		sum += (values[i] - m) * (values[i-lag] - m)
	}
	return sum / float64(n)
}

// levinsonDurbin solves the Yule-Walker equations for an AR(order)
// model. Returns nil when the series is numerically degenerate.
func levinsonDurbin(values []float64, order int) []float64 {
	r := make([]float64, order+1)
	for k := 0; k <= order; k++ {
		r[k] = autocovariance(values, k)
	}
	if r[0] < 1e-12 {
		return nil // нулевая дисперсия, решать нечего
	}

	phi := make([]float64, order+1)
	prev := make([]float64, order+1)
	e := r[0]

	for k := 1; k <= order; k++ {
		acc := r[k]
		for j := 1; j < k; j++ {
			acc -= prev[j] * r[k-j]
		}
		if e < 1e-12 {
			return nil
		}
		reflection := acc / e

		phi[k] = reflection
		for j := 1; j < k; j++ {
			phi[j] = prev[j] - reflection*prev[k-j]
		}
		e *= 1 - reflection*reflection

		copy(prev, phi)
	}

	return phi[1:]
}

// solveLinear solves A x = b in place via Gaussian elimination with
// partial pivoting. Returns nil for singular systems.
func solveLinear(a [][]float64, b []float64) []float64 {
	n := len(b)
	for col := 0; col < n; col++ {
		// Выбор ведущего элемента
		pivot := col
		for row := col + 1; row < n; row++ {
			if math.Abs(a[row][col]) > math.Abs(a[pivot][col]) {
				pivot = row
			}
		}
		if math.Abs(a[pivot][col]) < 1e-12 {
			return nil
		}
		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]

		for row := col + 1; row < n; row++ {
			factor := a[row][col] / a[col][col]
			for k := col; k < n; k++ {
				a[row][k] -= factor * a[col][k]
			}
			b[row] -= factor * b[col]
		}
	}

	x := make([]float64, n)
	for row := n - 1; row >= 0; row-- {
		acc := b[row]
		for k := row + 1; k < n; k++ {
			acc -= a[row][k] * x[k]
		}
		x[row] = acc / a[row][row]
	}
	return x
}

// percentile with linear interpolation between closest ranks, matching
// the conventional definition over a small sample.
func percentile(values []float64, q float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return values[0]
	}
	rank := q / 100 * float64(n-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return values[lo]
	}
	frac := rank - float64(lo)
	return values[lo] + frac*(values[hi]-values[lo])
}

// cumulativeSum applied in place d times; used to combine psi weights
// of an integrated process.
func integrateWeights(psi []float64, d int) []float64 {
	out := append([]float64(nil), psi...)
	for k := 0; k < d; k++ {
		for i := 1; i < len(out); i++ {
			out[i] += out[i-1]
		}
	}
	return out
}
