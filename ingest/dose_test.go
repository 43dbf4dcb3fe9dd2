package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openaps/glucose-predict/predict"
)

func TestNormalizeDoseEvent_Bolus(t *testing.T) {
	event, err := NormalizeDoseEvent(RawDoseEvent{
		Type: "Bolus", StartAt: "2020-01-01T12:00:00Z", EndAt: "2020-01-01T12:00:00Z",
		Amount: 1, Unit: "U",
	})
	require.NoError(t, err)
	assert.Equal(t, predict.KindBolus, event.Kind)
	assert.Equal(t, predict.UnitU, event.Unit)
	assert.Equal(t, 1.0, event.Amount)
}

func TestNormalizeDoseEvent_UnrecognizedTypeKeepsUnitDispatch(t *testing.T) {
	event, err := NormalizeDoseEvent(RawDoseEvent{
		Type: "SiteChange", StartAt: "2020-01-01T12:00:00Z", Unit: "event",
	})
	require.NoError(t, err)
	assert.Equal(t, predict.KindUnknown, event.Kind)
	assert.Equal(t, predict.UnitEvent, event.Unit)
}

func TestNormalizeDoseEvent_BadTimestamp(t *testing.T) {
	_, err := NormalizeDoseEvent(RawDoseEvent{StartAt: "not-a-time"})
	assert.Error(t, err)
}

func TestLoadDoseHistory_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history.json")
	body := `[
		{"type":"Bolus","start_at":"2020-01-01T12:00:00Z","end_at":"2020-01-01T12:00:00Z","amount":1,"unit":"U"},
		{"type":"Meal","start_at":"2020-01-01T14:30:00Z","end_at":"2020-01-01T14:30:00Z","amount":9,"unit":"g"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	history, err := LoadDoseHistory(path)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, predict.KindBolus, history[0].Kind)
	assert.Equal(t, predict.KindMeal, history[1].Kind)
	assert.Equal(t, 9.0, history[1].Amount)
}

func TestLoadDoseHistory_MissingFile(t *testing.T) {
	_, err := LoadDoseHistory(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
