package predict

import (
	"fmt"
	"time"
)

// Config collects every tunable knob named in spec.md §6's configuration
// surface. It is the shape ingest.LoadConfig decodes from YAML; the core
// engine itself takes plain parameters per-function (see
// FutureGlucoseOptions and friends) so that predict never depends on a
// serialization format.
type Config struct {
	Dt                 int        `yaml:"dt"`
	AbsorptionDelay    int        `yaml:"absorption_delay"`
	AbsorptionDuration int        `yaml:"absorption_duration"`
	BasalDosingEnd     *time.Time `yaml:"basal_dosing_end,omitempty"`
	PredictionTime     int        `yaml:"prediction_time"`
	FitPoints          int        `yaml:"fit_points"`
	VisualIOBOnly      bool       `yaml:"visual_iob_only"`
	StartAt            *time.Time `yaml:"start_at,omitempty"`
	EndAt              *time.Time `yaml:"end_at,omitempty"`
}

// DefaultConfig returns the spec-mandated defaults (spec.md §6).
func DefaultConfig() Config {
	return Config{
		Dt:                 5,
		AbsorptionDelay:    10,
		AbsorptionDuration: 180,
		PredictionTime:     30,
		FitPoints:          3,
		VisualIOBOnly:      true,
	}
}

// Validate checks that every numeric knob is in a sane range, the way the
// teacher's PolicyBundle.Validate checks policy configuration.
func (c Config) Validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("predict: Config: dt must be positive, got %d", c.Dt)
	}
	if c.AbsorptionDelay < 0 {
		return fmt.Errorf("predict: Config: absorption_delay must be non-negative, got %d", c.AbsorptionDelay)
	}
	if c.AbsorptionDuration <= 0 {
		return fmt.Errorf("predict: Config: absorption_duration must be positive, got %d", c.AbsorptionDuration)
	}
	if c.PredictionTime < 0 {
		return fmt.Errorf("predict: Config: prediction_time must be non-negative, got %d", c.PredictionTime)
	}
	if c.FitPoints <= 0 {
		return fmt.Errorf("predict: Config: fit_points must be positive, got %d", c.FitPoints)
	}
	if c.StartAt != nil && c.EndAt != nil && c.EndAt.Before(*c.StartAt) {
		return fmt.Errorf("predict: Config: end_at (%v) precedes start_at (%v)", *c.EndAt, *c.StartAt)
	}
	return nil
}

// FutureGlucoseOptions configures FutureGlucose.
type FutureGlucoseOptions struct {
	Dt              int
	AbsorptionDelay int
	BasalDosingEnd  *time.Time
}

// DefaultFutureGlucoseOptions returns the spec-mandated defaults.
func DefaultFutureGlucoseOptions() FutureGlucoseOptions {
	return FutureGlucoseOptions{Dt: 5, AbsorptionDelay: 10}
}

// FutureGlucose is the top-level convenience pipeline (spec.md §4.10): it
// builds insulin and carb effect series with matching dt/absorption_delay
// and composes them (without momentum) into a predicted glucose
// trajectory anchored to the latest CGM sample.
func FutureGlucose(
	history []DoseEvent,
	cgm []GlucoseSample,
	diaHours float64,
	isf, carbRatio Schedule,
	opts FutureGlucoseOptions,
) ([]GlucosePrediction, error) {
	dt := opts.Dt
	if dt == 0 {
		dt = 5
	}
	absorptionDelay := opts.AbsorptionDelay
	if absorptionDelay == 0 {
		absorptionDelay = 10
	}

	insulin, err := CalculateInsulinEffect(history, diaHours, isf, InsulinEffectOptions{
		Dt:              dt,
		AbsorptionDelay: absorptionDelay,
		BasalDosingEnd:  opts.BasalDosingEnd,
	})
	if err != nil {
		return nil, err
	}

	carb := CalculateCarbEffect(history, carbRatio, isf, CarbEffectOptions{
		Dt:              dt,
		AbsorptionDelay: absorptionDelay,
	})

	return CalculateGlucoseFromEffects([]EffectSeries{insulin, carb}, cgm, nil), nil
}
