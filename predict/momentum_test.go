package predict

import (
	"math"
	"testing"
)

func risingSamples() []GlucoseSample {
	return []GlucoseSample{
		sampleAt("2020-01-01T12:00:00Z", 150),
		sampleAt("2020-01-01T11:55:00Z", 147),
		sampleAt("2020-01-01T11:50:00Z", 144),
	}
}

func TestCalculateMomentumEffect_TooFewSamples(t *testing.T) {
	samples := []GlucoseSample{sampleAt("2020-01-01T12:00:00Z", 150)}
	got := CalculateMomentumEffect(samples, nil, DefaultMomentumOptions())
	if len(got) != 0 {
		t.Errorf("expected empty momentum with too few samples, got %d points", len(got))
	}
}

func TestCalculateMomentumEffect_GrowsLinearly(t *testing.T) {
	got := CalculateMomentumEffect(risingSamples(), nil, DefaultMomentumOptions())
	if len(got) == 0 {
		t.Fatal("expected non-empty momentum series")
	}
	if amt, ok := findEffectAt(got, "2020-01-01T12:00:00Z"); !ok || math.Abs(amt) > 1e-9 {
		t.Errorf("momentum at anchor = %v (ok=%v), want 0", amt, ok)
	}
	if amt, ok := findEffectAt(got, "2020-01-01T12:05:00Z"); !ok || math.Abs(amt-3) > 0.01 {
		t.Errorf("momentum at +5m = %v (ok=%v), want ~3", amt, ok)
	}
	if amt, ok := findEffectAt(got, "2020-01-01T12:30:00Z"); !ok || math.Abs(amt-18) > 0.01 {
		t.Errorf("momentum at +30m = %v (ok=%v), want ~18", amt, ok)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Amount < got[i-1].Amount-1e-9 {
			t.Fatalf("momentum not monotone non-decreasing at %d", i)
		}
	}
}

func TestCalculateMomentumEffect_WideSpacingVeto(t *testing.T) {
	samples := []GlucoseSample{
		sampleAt("2020-01-01T12:00:00Z", 150),
		sampleAt("2020-01-01T11:55:00Z", 147),
		sampleAt("2020-01-01T11:40:00Z", 144),
	}
	got := CalculateMomentumEffect(samples, nil, DefaultMomentumOptions())
	if len(got) != 0 {
		t.Errorf("expected empty momentum when samples span too wide a window, got %d points", len(got))
	}
}

func TestCalculateMomentumEffect_CalibrationVeto(t *testing.T) {
	calibrations := []CalibrationSample{{Timestamp: mustTime("2020-01-01T11:58:00Z")}}
	got := CalculateMomentumEffect(risingSamples(), calibrations, DefaultMomentumOptions())
	if len(got) != 0 {
		t.Errorf("expected empty momentum with a nearby calibration, got %d points", len(got))
	}
}

func TestCalculateMomentumEffect_DistantCalibrationNoVeto(t *testing.T) {
	calibrations := []CalibrationSample{{Timestamp: mustTime("2020-01-01T10:00:00Z")}}
	got := CalculateMomentumEffect(risingSamples(), calibrations, DefaultMomentumOptions())
	if len(got) == 0 {
		t.Errorf("expected non-empty momentum with a distant calibration")
	}
}
