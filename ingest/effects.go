package ingest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/openaps/glucose-predict/predict"
)

// rawEffectEntry mirrors the {date, amount, unit} documents the CLI
// itself writes, so an effect series produced by one subcommand can be
// fed back in as input to the compose subcommand, the same way the
// original CLI chained commands through intermediate JSON files.
type rawEffectEntry struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

var effectUnitByName = map[string]predict.EffectUnit{
	"mg/dL": predict.EffectMgDL,
	"U":     predict.EffectU,
	"g":     predict.EffectGrams,
}

// LoadEffectSeries reads a JSON array of {date, amount, unit} entries
// into a predict.EffectSeries.
func LoadEffectSeries(path string) (predict.EffectSeries, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading effect series %s: %w", path, err)
	}
	var raw []rawEffectEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing effect series %s: %w", path, err)
	}
	series := make(predict.EffectSeries, 0, len(raw))
	for _, r := range raw {
		ts, err := parseTimestamp(r.Date)
		if err != nil {
			return nil, fmt.Errorf("effect series %s: %w", path, err)
		}
		unit, ok := effectUnitByName[r.Unit]
		if !ok {
			unit = predict.EffectMgDL
		}
		series = append(series, predict.EffectPoint{Timestamp: ts, Amount: r.Amount, Unit: unit})
	}
	return series, nil
}
