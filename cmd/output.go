package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/openaps/glucose-predict/predict"
)

// outputEntry is the external interface's output schema: {date, amount, unit}.
type outputEntry struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

func effectUnitName(u predict.EffectUnit) string {
	switch u {
	case predict.EffectU:
		return "U"
	case predict.EffectGrams:
		return "g"
	default:
		return "mg/dL"
	}
}

func writeEffectSeries(series predict.EffectSeries) {
	entries := make([]outputEntry, 0, len(series))
	for _, pt := range series {
		entries = append(entries, outputEntry{
			Date:   pt.Timestamp.Format(time.RFC3339),
			Amount: pt.Amount,
			Unit:   effectUnitName(pt.Unit),
		})
	}
	writeJSON(entries)
}

func writeGlucosePredictions(series []predict.GlucosePrediction) {
	entries := make([]outputEntry, 0, len(series))
	for _, pt := range series {
		entries = append(entries, outputEntry{
			Date:   pt.Timestamp.Format(time.RFC3339),
			Amount: pt.Value,
			Unit:   "mg/dL",
		})
	}
	writeJSON(entries)
}

func writeJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logrus.Fatalf("JSON marshal failed: %v", err)
	}
	fmt.Println(string(data))
}
