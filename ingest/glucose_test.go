package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(v float64) *float64 { return &v }

func TestNormalizeGlucoseSample_DateStringAndSGV(t *testing.T) {
	sample, err := NormalizeGlucoseSample(RawGlucoseSample{
		DateString: strPtr("2020-01-01T12:00:00Z"),
		SGV:        f64Ptr(150),
	})
	require.NoError(t, err)
	assert.Equal(t, 150.0, sample.Value)
}

func TestNormalizeGlucoseSample_DisplayTimeAndMeterGlucose(t *testing.T) {
	sample, err := NormalizeGlucoseSample(RawGlucoseSample{
		DisplayTime:  strPtr("2020-01-01T12:05:00Z"),
		MeterGlucose: f64Ptr(148),
	})
	require.NoError(t, err)
	assert.Equal(t, 148.0, sample.Value)
}

func TestNormalizeGlucoseSample_EpochMillisDateField(t *testing.T) {
	var date interface{} = float64(1577880000000) // 2020-01-01T12:00:00Z
	sample, err := NormalizeGlucoseSample(RawGlucoseSample{
		Date:   date,
		Amount: f64Ptr(152),
	})
	require.NoError(t, err)
	assert.Equal(t, 152.0, sample.Value)
}

func TestNormalizeGlucoseSample_NoRecognizedTimestamp(t *testing.T) {
	_, err := NormalizeGlucoseSample(RawGlucoseSample{SGV: f64Ptr(150)})
	assert.Error(t, err)
}

func TestNormalizeGlucoseSample_NoRecognizedValue(t *testing.T) {
	_, err := NormalizeGlucoseSample(RawGlucoseSample{DateString: strPtr("2020-01-01T12:00:00Z")})
	assert.Error(t, err)
}

func TestLoadGlucoseSamples_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "glucose.json")
	body := `[
		{"dateString":"2020-01-01T12:00:00Z","sgv":150},
		{"display_time":"2020-01-01T11:55:00Z","glucose":147}
	]`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	samples, err := LoadGlucoseSamples(path)
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.Equal(t, 150.0, samples[0].Value)
	assert.Equal(t, 147.0, samples[1].Value)
}
