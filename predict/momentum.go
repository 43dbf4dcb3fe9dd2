package predict

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// MomentumOptions configures CalculateMomentumEffect.
type MomentumOptions struct {
	Dt             int // grid spacing, minutes (default 5)
	PredictionTime int // momentum horizon, minutes (default 30)
	FitPoints      int // regression window, CGM samples (default 3)
}

// DefaultMomentumOptions returns the spec-mandated defaults (spec.md §4.8).
func DefaultMomentumOptions() MomentumOptions {
	return MomentumOptions{Dt: 5, PredictionTime: 30, FitPoints: 3}
}

// CalculateMomentumEffect extracts a short-horizon glucose trend from the
// latest FitPoints CGM samples via least-squares linear regression,
// extrapolating forward PredictionTime minutes. Returns an empty series
// if there are too few samples, the samples span too wide a window, or a
// recent calibration makes the trend unreliable (spec.md §4.8, §7).
func CalculateMomentumEffect(recentGlucose []GlucoseSample, recentCalibrations []CalibrationSample, opts MomentumOptions) EffectSeries {
	dt := opts.Dt
	if dt == 0 {
		dt = 5
	}
	predictionTime := opts.PredictionTime
	if predictionTime == 0 {
		predictionTime = 30
	}
	fitPoints := opts.FitPoints
	if fitPoints == 0 {
		fitPoints = 3
	}

	if len(recentGlucose) < fitPoints {
		return EffectSeries{}
	}

	latest := recentGlucose[0]
	window := recentGlucose[:fitPoints]

	x := make([]float64, fitPoints)
	y := make([]float64, fitPoints)
	for i, s := range window {
		x[i] = s.Timestamp.Sub(latest.Timestamp).Seconds()
		y[i] = s.Value
	}

	maxSpan := time.Duration(dt*fitPoints) * time.Minute
	span := x[0] - x[fitPoints-1]
	if span < 0 {
		span = -span
	}
	if time.Duration(span*float64(time.Second)) > maxSpan {
		return EffectSeries{}
	}

	for _, c := range recentCalibrations {
		gap := latest.Timestamp.Sub(c.Timestamp)
		if gap < 0 {
			gap = -gap
		}
		if gap <= maxSpan {
			return EffectSeries{}
		}
	}

	_, slope := stat.LinearRegression(x, y, nil, false)

	simulationStart := FloorDt(latest.Timestamp, dt)
	simulationEnd := simulationStart.Add(time.Duration(predictionTime) * time.Minute)
	grid := Grid(simulationStart, simulationEnd, dt)

	series := make(EffectSeries, len(grid))
	for i, ts := range grid {
		elapsed := ts.Sub(latest.Timestamp).Seconds()
		if elapsed < 0 {
			elapsed = 0
		}
		series[i] = EffectPoint{Timestamp: ts, Amount: elapsed * slope, Unit: EffectMgDL}
	}
	return series
}
