package predict

import "time"

// CarbEffectOptions configures CalculateCarbEffect and CalculateCOB.
type CarbEffectOptions struct {
	Dt                 int // grid spacing, minutes (default 5)
	AbsorptionDuration int // Scheiner curve width, minutes (default 180)
	AbsorptionDelay    int // minutes between meal and onset of absorption (default 10)
}

// DefaultCarbEffectOptions returns the spec-mandated defaults (spec.md §4.7).
func DefaultCarbEffectOptions() CarbEffectOptions {
	return CarbEffectOptions{Dt: 5, AbsorptionDuration: 180, AbsorptionDelay: 10}
}

func (o *CarbEffectOptions) applyDefaults() {
	if o.Dt == 0 {
		o.Dt = 5
	}
	if o.AbsorptionDuration == 0 {
		o.AbsorptionDuration = 180
	}
	if o.AbsorptionDelay == 0 {
		o.AbsorptionDelay = 10
	}
}

// CalculateCarbEffect converts meal events to a cumulative mg/dL effect
// series via the Scheiner GI curve, using time-of-day insulin-sensitivity
// and carb-ratio schedules. Non-meal doses are skipped. Returns an empty
// series for empty history.
func CalculateCarbEffect(history []DoseEvent, carbRatio, isf Schedule, opts CarbEffectOptions) EffectSeries {
	if len(history) == 0 {
		return EffectSeries{}
	}
	opts.applyDefaults()
	start, end := carbGridSpan(history, opts)
	grid := Grid(start, end, opts.Dt)
	amounts := make([]float64, len(grid))
	delay := float64(opts.AbsorptionDelay)
	duration := float64(opts.AbsorptionDuration)

	for _, e := range history {
		if e.Unit != UnitGrams {
			continue
		}
		sensitivity := isf.At(e.Start).Value
		ratio := carbRatio.At(e.Start).Value

		for i, ts := range grid {
			t := ts.Sub(e.Start).Minutes() - delay
			if ratio == 0 {
				continue
			}
			amounts[i] += (sensitivity / ratio) * e.Amount * CarbFrac(t, duration)
		}
	}

	series := make(EffectSeries, len(grid))
	for i, ts := range grid {
		series[i] = EffectPoint{Timestamp: ts, Amount: amounts[i], Unit: EffectMgDL}
	}
	return series
}

// CalculateCOB converts meal events to a cumulative remaining-grams
// series: the unabsorbed fraction of each meal's carbohydrates at each
// grid point. Returns an empty series for empty history.
func CalculateCOB(history []DoseEvent, opts CarbEffectOptions) EffectSeries {
	if len(history) == 0 {
		return EffectSeries{}
	}
	opts.applyDefaults()
	start, end := carbGridSpan(history, opts)
	grid := Grid(start, end, opts.Dt)
	amounts := make([]float64, len(grid))
	delay := float64(opts.AbsorptionDelay)
	duration := float64(opts.AbsorptionDuration)

	for _, e := range history {
		if e.Unit != UnitGrams {
			continue
		}
		for i, ts := range grid {
			t := ts.Sub(e.Start).Minutes() - delay
			if t < -delay {
				continue
			}
			amounts[i] += e.Amount * (1 - CarbFrac(t, duration))
		}
	}

	series := make(EffectSeries, len(grid))
	for i, ts := range grid {
		series[i] = EffectPoint{Timestamp: ts, Amount: amounts[i], Unit: EffectGrams}
	}
	return series
}

func carbGridSpan(history []DoseEvent, opts CarbEffectOptions) (time.Time, time.Time) {
	minStart := history[0].Start
	maxEnd := history[0].End
	for _, e := range history[1:] {
		if e.Start.Before(minStart) {
			minStart = e.Start
		}
		if e.End.After(maxEnd) {
			maxEnd = e.End
		}
	}
	start := FloorDt(minStart, opts.Dt)
	tail := time.Duration(opts.AbsorptionDuration+opts.AbsorptionDelay) * time.Minute
	end := CeilDt(maxEnd, opts.Dt).Add(tail)
	return start, end
}
