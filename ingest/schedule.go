package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/openaps/glucose-predict/predict"
)

// LoadISFSchedule reads an insulin-sensitivity schedule document (top
// level key "sensitivities") into a predict.Schedule.
func LoadISFSchedule(path string) (predict.Schedule, error) {
	var file RawISFScheduleFile
	if err := readJSONFile(path, &file); err != nil {
		return nil, fmt.Errorf("reading ISF schedule: %w", err)
	}
	return normalizeSchedule(file.Sensitivities, func(e RawScheduleEntry) (float64, bool) {
		if e.Sensitivity == nil {
			return 0, false
		}
		return *e.Sensitivity, true
	})
}

// LoadCRSchedule reads a carb-ratio schedule document (top level key
// "schedule") into a predict.Schedule.
func LoadCRSchedule(path string) (predict.Schedule, error) {
	var file RawCRScheduleFile
	if err := readJSONFile(path, &file); err != nil {
		return nil, fmt.Errorf("reading carb ratio schedule: %w", err)
	}
	return normalizeSchedule(file.Schedule, func(e RawScheduleEntry) (float64, bool) {
		if e.Ratio == nil {
			return 0, false
		}
		return *e.Ratio, true
	})
}

func normalizeSchedule(entries []RawScheduleEntry, value func(RawScheduleEntry) (float64, bool)) (predict.Schedule, error) {
	schedule := make(predict.Schedule, 0, len(entries))
	for _, e := range entries {
		start, err := time.Parse("15:04:05", e.Start)
		if err != nil {
			return nil, fmt.Errorf("schedule entry start %q: %w", e.Start, err)
		}
		v, ok := value(e)
		if !ok {
			return nil, fmt.Errorf("schedule entry at %q has no recognized value key", e.Start)
		}
		schedule = append(schedule, predict.ScheduleEntry{
			Start: predict.TimeOfDay(start),
			Value: v,
		})
	}
	return schedule, nil
}

func readJSONFile(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
