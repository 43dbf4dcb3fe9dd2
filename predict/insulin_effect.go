package predict

import (
	"fmt"
	"time"
)

// InsulinEffectOptions configures CalculateInsulinEffect.
type InsulinEffectOptions struct {
	Dt              int // grid spacing, minutes (default 5)
	AbsorptionDelay int // minutes between dose and onset of effect (default 10)
	BasalDosingEnd  *time.Time
}

// DefaultInsulinEffectOptions returns the spec-mandated defaults.
func DefaultInsulinEffectOptions() InsulinEffectOptions {
	return InsulinEffectOptions{Dt: 5, AbsorptionDelay: 10}
}

// CalculateInsulinEffect converts insulin doses (bolus and temp-basal) to
// a cumulative mg/dL effect series, using the Walsh IOB curve and a
// time-of-day insulin-sensitivity schedule. Carbs and unrecognized units
// are skipped. Returns an empty series for empty history.
func CalculateInsulinEffect(history []DoseEvent, diaHours float64, isf Schedule, opts InsulinEffectOptions) (EffectSeries, error) {
	if len(history) == 0 {
		return EffectSeries{}, nil
	}
	diaMin := diaHours * 60
	if !ValidDIAMinutes(diaMin) {
		return nil, fmt.Errorf("predict: CalculateInsulinEffect: DIA must be 3, 4, 5, or 6 hours, got %v", diaHours)
	}
	dt := opts.Dt
	if dt == 0 {
		dt = 5
	}
	if opts.AbsorptionDelay == 0 {
		opts.AbsorptionDelay = 10
	}
	delay := float64(opts.AbsorptionDelay)

	start, end := insulinGridSpan(history, diaHours, opts, dt)
	grid := Grid(start, end, dt)
	amounts := make([]float64, len(grid))

	for _, e := range history {
		if e.Unit != UnitU && e.Unit != UnitUPerHour {
			continue
		}

		doseEnd := e.End
		if e.Kind == KindTempBasal && opts.BasalDosingEnd != nil && doseEnd.After(*opts.BasalDosingEnd) {
			doseEnd = *opts.BasalDosingEnd
		}
		insulinEndDatetime := doseEnd.Add(time.Duration(diaHours*60) * time.Minute)

		for i, ts := range grid {
			t := ts.Sub(e.Start).Minutes() - delay

			sensitivityTime := e.Start
			if e.Unit == UnitUPerHour {
				sensitivityTime = ts
				if insulinEndDatetime.Before(ts) {
					sensitivityTime = insulinEndDatetime
				}
			}
			sensitivity := isf.At(sensitivityTime).Value

			var effect float64
			switch e.Unit {
			case UnitU:
				effect = -e.Amount * sensitivity * (1 - WalshIOB(t, diaMin))
			case UnitUPerHour:
				t0 := 0.0
				t1 := doseEnd.Sub(e.Start).Minutes()
				effect = (e.Amount / 60) * (-sensitivity) * ((t1 - t0) - IntegrateIOB(t0, t1, diaMin, t))
			}
			amounts[i] += effect
		}
	}

	series := make(EffectSeries, len(grid))
	for i, ts := range grid {
		series[i] = EffectPoint{Timestamp: ts, Amount: amounts[i], Unit: EffectMgDL}
	}
	return series, nil
}

func insulinGridSpan(history []DoseEvent, diaHours float64, opts InsulinEffectOptions, dt int) (time.Time, time.Time) {
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
	start := FloorDt(minStart, dt)
	tail := time.Duration(diaHours*60)*time.Minute + time.Duration(opts.AbsorptionDelay)*time.Minute
	end := CeilDt(maxEnd, dt).Add(tail)
	return start, end
}
