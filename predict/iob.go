package predict

import (
	"fmt"
	"time"
)

// IOBOptions configures CalculateIOB. Zero-value Dt/AbsorptionDelay are
// replaced by DefaultIOBOptions' values (5 and 10); VisualIOBOnly is used
// as given, so a struct built directly leaves it false unless set.
// Prefer DefaultIOBOptions().
type IOBOptions struct {
	Dt              int // grid spacing, minutes (default 5)
	AbsorptionDelay int // minutes between dose and onset of effect (default 10)
	BasalDosingEnd  *time.Time
	StartAt         *time.Time
	EndAt           *time.Time
	VisualIOBOnly   bool // default true
}

// DefaultIOBOptions returns the spec-mandated defaults (spec.md §4.5, §6).
func DefaultIOBOptions() IOBOptions {
	return IOBOptions{Dt: 5, AbsorptionDelay: 10, VisualIOBOnly: true}
}

// CalculateIOB sums residual insulin (in U) across all doses at each
// dt-spaced grid point. Returns an empty series for empty history.
// diaHours must be one of 3, 4, 5, 6.
func CalculateIOB(history []DoseEvent, diaHours float64, opts IOBOptions) (EffectSeries, error) {
	if len(history) == 0 {
		return EffectSeries{}, nil
	}
	diaMin := diaHours * 60
	if !ValidDIAMinutes(diaMin) {
		return nil, fmt.Errorf("predict: CalculateIOB: DIA must be 3, 4, 5, or 6 hours, got %v", diaHours)
	}
	dt := opts.Dt
	if dt == 0 {
		dt = 5
	}
	if opts.AbsorptionDelay == 0 {
		opts.AbsorptionDelay = 10
	}
	delay := float64(opts.AbsorptionDelay)

	start, end := iobGridSpan(history, diaHours, opts, dt)
	grid := Grid(start, end, dt)

	amounts := make([]float64, len(grid))
	for _, e := range history {
		for i, ts := range grid {
			t := ts.Sub(e.Start).Minutes() - delay
			if t < -delay {
				continue
			}

			var effect float64
			switch e.Unit {
			case UnitU:
				if opts.VisualIOBOnly || t >= 0 {
					effect = e.Amount * WalshIOB(t, diaMin)
				}
			case UnitUPerHour:
				doseEnd := e.End
				if e.Kind == KindTempBasal && opts.BasalDosingEnd != nil && doseEnd.After(*opts.BasalDosingEnd) {
					doseEnd = *opts.BasalDosingEnd
				}
				t0 := 0.0
				t1 := doseEnd.Sub(e.Start).Minutes()
				sumDelay := delay
				if !opts.VisualIOBOnly {
					sumDelay = 0
				}
				effect = e.Amount * (t1 - t0) / 60 * SumIOB(t0, t1, diaMin, t, float64(dt), sumDelay)
			default:
				continue
			}
			amounts[i] += effect
		}
	}

	series := make(EffectSeries, len(grid))
	for i, ts := range grid {
		series[i] = EffectPoint{Timestamp: ts, Amount: amounts[i], Unit: EffectU}
	}
	return series, nil
}

// iobGridSpan computes the [start, end] grid bounds for CalculateIOB,
// honoring StartAt/EndAt overrides (spec.md §4.5 step 1).
func iobGridSpan(history []DoseEvent, diaHours float64, opts IOBOptions, dt int) (time.Time, time.Time) {
	var start, end time.Time
	if opts.StartAt != nil {
		start = *opts.StartAt
	} else {
		minStart := history[0].Start
		for _, e := range history[1:] {
			if e.Start.Before(minStart) {
				minStart = e.Start
			}
		}
		start = FloorDt(minStart, dt)
	}

	if opts.EndAt != nil {
		end = *opts.EndAt
	} else {
		maxEnd := history[0].End
		for _, e := range history[1:] {
			if e.End.After(maxEnd) {
				maxEnd = e.End
			}
		}
		tail := time.Duration(diaHours*60)*time.Minute + time.Duration(opts.AbsorptionDelay)*time.Minute
		end = CeilDt(maxEnd, dt).Add(tail)
	}
	return start, end
}
