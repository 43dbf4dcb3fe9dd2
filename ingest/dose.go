package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/openaps/glucose-predict/predict"
)

// doseKindByType maps the observed `type` values from the external
// interface schema onto predict.DoseKind. Unrecognized or absent type
// strings map to KindUnknown; dispatch still happens by unit, per the
// "do not inherit behavior" design note.
var doseKindByType = map[string]predict.DoseKind{
	"Bolus":     predict.KindBolus,
	"TempBasal": predict.KindTempBasal,
	"Meal":      predict.KindMeal,
	"Exercise":  predict.KindExercise,
}

var doseUnitByName = map[string]predict.Unit{
	"U":      predict.UnitU,
	"U/hour": predict.UnitUPerHour,
	"g":      predict.UnitGrams,
	"event":  predict.UnitEvent,
}

// NormalizeDoseEvent converts a wire-format dose entry into predict's
// semantic DoseEvent, parsing its timestamps and classifying its kind
// and unit. Unrecognized type/unit strings become KindUnknown/UnitOther
// rather than an error, matching the core's "skip unknown units"
// contract.
func NormalizeDoseEvent(raw RawDoseEvent) (predict.DoseEvent, error) {
	start, err := parseTimestamp(raw.StartAt)
	if err != nil {
		return predict.DoseEvent{}, fmt.Errorf("dose start_at: %w", err)
	}
	end := start
	if raw.EndAt != "" {
		end, err = parseTimestamp(raw.EndAt)
		if err != nil {
			return predict.DoseEvent{}, fmt.Errorf("dose end_at: %w", err)
		}
	}
	return predict.DoseEvent{
		Kind:   doseKindByType[raw.Type],
		Start:  start,
		End:    end,
		Amount: raw.Amount,
		Unit:   doseUnitByName[raw.Unit],
	}, nil
}

// LoadDoseHistory reads a JSON array of dose entries from path and
// normalizes each one.
func LoadDoseHistory(path string) ([]predict.DoseEvent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dose history: %w", err)
	}
	var raw []RawDoseEvent
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing dose history: %w", err)
	}
	history := make([]predict.DoseEvent, 0, len(raw))
	for _, r := range raw {
		event, err := NormalizeDoseEvent(r)
		if err != nil {
			return nil, err
		}
		history = append(history, event)
	}
	return history, nil
}

// parseTimestamp accepts both the offset-bearing RFC3339 form and the
// original interface's bare "2006-01-02T15:04:05" form. RFC3339 values
// carry a real UTC offset (including "Z"), so they're run through
// MakeNaive to collapse that offset into a single canonical naive frame
// before any ingested timestamp is compared or subtracted; the bare
// form has no offset to normalize and is returned as parsed.
func parseTimestamp(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return MakeNaive(t, time.UTC), nil
	}
	return time.Parse("2006-01-02T15:04:05", value)
}
