// Package dasha computes the Vimshottari cycle: the active top-level
// period (Mahadasha) and its active sub-period (Antardasha) at an
// evaluation instant, from the Moon's nakshatra at birth.
package dasha

import (
	"time"

	"github.com/Aniket-hybrid/Predictor/models"
)

// Каноничный порядок девяти владык цикла
var cyclicOrder = [models.BodyCount]models.Body{
	models.Ketu, models.Venus, models.Sun, models.Moon, models.Mars,
	models.Rahu, models.Jupiter, models.Saturn, models.Mercury,
}

// Fixed durations in years; they sum to exactly 120.
var lordYears = map[models.Body]float64{
	models.Ketu:    7,
	models.Venus:   20,
	models.Sun:     6,
	models.Moon:    10,
	models.Mars:    7,
	models.Rahu:    18,
	models.Jupiter: 16,
	models.Saturn:  19,
	models.Mercury: 17,
}

const (
	totalCycleYears = 120.0
	hoursPerYear    = 24 * 365.25
)

// TotalYears returns the full cycle duration, always 120.
func TotalYears() float64 {
	total := 0.0
	for _, years := range lordYears {
		total += years
	}
	return total
}

// CyclicOrder returns the canonical lord order.
func CyclicOrder() [models.BodyCount]models.Body {
	return cyclicOrder
}

func yearsToDuration(years float64) time.Duration {
	return time.Duration(years * hoursPerYear * float64(time.Hour))
}

// Compute walks the cyclic order from the birth lord, accumulating
// fixed durations until the elapsed time is covered, then partitions
// the matched period among all nine lords for the sub-period. Elapsed
// time beyond one full cycle wraps modulo 120.
func Compute(moonNakshatra models.Nakshatra, birth, evaluatedAt time.Time) (*models.CyclePeriod, error) {
	if moonNakshatra < 0 || moonNakshatra > 26 {
		return nil, models.NewInvalidInput("moon_nakshatra", "index must be in 0..26")
	}
	if evaluatedAt.Before(birth) {
		return nil, models.NewInvalidInput("evaluated_at", "evaluation instant precedes birth")
	}

	// time.Duration переполняется примерно на 292 годах, поэтому
	// прошедшее время считается через секунды, а база цикла
	// накапливается по одному 120-летнему шагу
	elapsedYears := float64(evaluatedAt.Unix()-birth.Unix()) / 3600 / hoursPerYear

	// Сколько полных циклов по 120 лет уже прошло
	completedCycles := int(elapsedYears / totalCycleYears)
	withinCycle := elapsedYears - float64(completedCycles)*totalCycleYears
	cycleBase := birth
	for c := 0; c < completedCycles; c++ {
		cycleBase = cycleBase.Add(yearsToDuration(totalCycleYears))
	}

	startIdx := int(moonNakshatra) % models.BodyCount

	// Walk the order until the running total exceeds the elapsed time;
	// terminates within 9 steps because the durations sum to 120.
	var (
		lord       models.Body
		lordIdx    int
		startYears float64
	)
	acc := 0.0
	for i := 0; i < models.BodyCount; i++ {
		idx := (startIdx + i) % models.BodyCount
		candidate := cyclicOrder[idx]
		duration := lordYears[candidate]
		if withinCycle < acc+duration {
			lord = candidate
			lordIdx = idx
			startYears = acc
			break
		}
		acc += duration
	}

	lordDuration := lordYears[lord]
	periodStart := cycleBase.Add(yearsToDuration(startYears))
	periodEnd := cycleBase.Add(yearsToDuration(startYears + lordDuration))

	// Антардаши: период владыки делится между всеми девятью владыками,
	// первая антардаша всегда принадлежит самому владыке периода
	subPeriods := make([]models.SubPeriod, 0, models.BodyCount)
	subStartTime := periodStart
	for i := 0; i < models.BodyCount; i++ {
		subLord := cyclicOrder[(lordIdx+i)%models.BodyCount]
		subYears := lordDuration * lordYears[subLord] / totalCycleYears
		subEndTime := subStartTime.Add(yearsToDuration(subYears))
		subPeriods = append(subPeriods, models.SubPeriod{
			Lord:  subLord,
			Start: subStartTime,
			End:   subEndTime,
		})
		subStartTime = subEndTime
	}

	// Активная антардаша - та, в чьи границы попадает момент оценки.
	// Последняя строка подхватывает хвост от накопленной float-ошибки.
	active := subPeriods[len(subPeriods)-1]
	for _, sp := range subPeriods {
		if !evaluatedAt.Before(sp.Start) && evaluatedAt.Before(sp.End) {
			active = sp
			break
		}
	}

	upcoming := make([]models.Body, 0, models.BodyCount-1)
	for i := 1; i < models.BodyCount; i++ {
		upcoming = append(upcoming, cyclicOrder[(lordIdx+i)%models.BodyCount])
	}

	return &models.CyclePeriod{
		Lord:       lord,
		Start:      periodStart,
		End:        periodEnd,
		SubLord:    active.Lord,
		SubStart:   active.Start,
		SubEnd:     active.End,
		SubPeriods: subPeriods,
		Upcoming:   upcoming,
		ElapsedYrs: elapsedYears,
	}, nil
}
