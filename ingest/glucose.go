package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/openaps/glucose-predict/predict"
)

// NormalizeGlucoseSample picks a timestamp and a value out of a wire
// sample's recognized key set, first hit wins in the documented
// priority order: dateString, display_time, date for the timestamp;
// sgv, amount, glucose, meter_glucose for the value. Generalizes the
// original glucose_data_tuple's two-key lookup to the full documented
// set.
func NormalizeGlucoseSample(raw RawGlucoseSample) (predict.GlucoseSample, error) {
	ts, err := glucoseTimestamp(raw)
	if err != nil {
		return predict.GlucoseSample{}, err
	}
	value, ok := glucoseValue(raw)
	if !ok {
		return predict.GlucoseSample{}, fmt.Errorf("glucose sample has no recognized value field (sgv/amount/glucose/meter_glucose)")
	}
	return predict.GlucoseSample{Timestamp: ts, Value: value}, nil
}

func glucoseTimestamp(raw RawGlucoseSample) (time.Time, error) {
	switch {
	case raw.DateString != nil:
		return parseTimestamp(*raw.DateString)
	case raw.DisplayTime != nil:
		return parseTimestamp(*raw.DisplayTime)
	case raw.Date != nil:
		return parseDateField(raw.Date)
	default:
		return time.Time{}, fmt.Errorf("glucose sample has no recognized timestamp field (dateString/display_time/date)")
	}
}

func glucoseValue(raw RawGlucoseSample) (float64, bool) {
	switch {
	case raw.SGV != nil:
		return *raw.SGV, true
	case raw.Amount != nil:
		return *raw.Amount, true
	case raw.Glucose != nil:
		return *raw.Glucose, true
	case raw.MeterGlucose != nil:
		return *raw.MeterGlucose, true
	default:
		return 0, false
	}
}

// parseDateField handles "date" appearing either as an ISO-8601 string
// or as an epoch-millisecond number, per the external interface schema.
func parseDateField(v interface{}) (time.Time, error) {
	switch val := v.(type) {
	case string:
		return parseTimestamp(val)
	case float64:
		return epochMillis(val), nil
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return time.Time{}, fmt.Errorf("date field: %w", err)
		}
		return epochMillis(f), nil
	default:
		return time.Time{}, fmt.Errorf("date field has unsupported type %T", v)
	}
}

func epochMillis(ms float64) time.Time {
	return time.UnixMilli(int64(ms)).UTC()
}

// LoadCalibrations reads a JSON array of sensor calibration entries,
// reverse chronological, keeping only their timestamps (calibrations
// carry no glucose value of their own in the momentum veto).
func LoadCalibrations(path string) ([]predict.CalibrationSample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading calibrations file: %w", err)
	}
	var raw []RawGlucoseSample
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing calibrations file: %w", err)
	}
	samples := make([]predict.CalibrationSample, 0, len(raw))
	for _, r := range raw {
		ts, err := glucoseTimestamp(r)
		if err != nil {
			return nil, err
		}
		samples = append(samples, predict.CalibrationSample{Timestamp: ts})
	}
	return samples, nil
}

// LoadGlucoseSamples reads a JSON array of glucose entries, reverse
// chronological, and normalizes each one.
func LoadGlucoseSamples(path string) ([]predict.GlucoseSample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading glucose file: %w", err)
	}
	var raw []RawGlucoseSample
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing glucose file: %w", err)
	}
	samples := make([]predict.GlucoseSample, 0, len(raw))
	for _, r := range raw {
		sample, err := NormalizeGlucoseSample(r)
		if err != nil {
			return nil, err
		}
		samples = append(samples, sample)
	}
	return samples, nil
}
