package predict

import (
	"math"
	"testing"
)

func TestCalculateInsulinEffect_EmptyHistory(t *testing.T) {
	series, err := CalculateInsulinEffect(nil, 4, flatSchedule(40), DefaultInsulinEffectOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != 0 {
		t.Errorf("expected empty series, got %d points", len(series))
	}
}

func TestCalculateInsulinEffect_BolusMonotoneAndTail(t *testing.T) {
	isf := flatSchedule(40)
	history := []DoseEvent{newBolus("2020-01-01T12:00:00Z", 1)}
	series, err := CalculateInsulinEffect(history, 4, isf, DefaultInsulinEffectOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) == 0 {
		t.Fatal("expected non-empty series")
	}

	for i := 1; i < len(series); i++ {
		if series[i].Amount > series[i-1].Amount+1e-9 {
			t.Fatalf("insulin effect not monotone non-increasing at %d: prev=%v cur=%v", i, series[i-1].Amount, series[i].Amount)
		}
	}

	last := series[len(series)-1]
	want := -1.0 * 40.0
	if math.Abs(last.Amount-want) > 1e-6 {
		t.Errorf("tail insulin effect = %v, want %v", last.Amount, want)
	}
}

func TestCalculateInsulinEffect_Linearity(t *testing.T) {
	isf := flatSchedule(40)
	base := []DoseEvent{newBolus("2020-01-01T12:00:00Z", 1)}
	scaled := []DoseEvent{newBolus("2020-01-01T12:00:00Z", 2.5)}

	baseSeries, err := CalculateInsulinEffect(base, 4, isf, DefaultInsulinEffectOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	scaledSeries, err := CalculateInsulinEffect(scaled, 4, isf, DefaultInsulinEffectOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(baseSeries) != len(scaledSeries) {
		t.Fatalf("series length mismatch: %d vs %d", len(baseSeries), len(scaledSeries))
	}
	for i := range baseSeries {
		want := baseSeries[i].Amount * 2.5
		if math.Abs(scaledSeries[i].Amount-want) > 1e-6 {
			t.Errorf("linearity violated at %d: got %v, want %v", i, scaledSeries[i].Amount, want)
		}
	}
}

func TestCalculateInsulinEffect_SkipsMeals(t *testing.T) {
	history := []DoseEvent{newMeal("2020-01-01T12:00:00Z", 30)}
	series, err := CalculateInsulinEffect(history, 4, flatSchedule(40), DefaultInsulinEffectOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, pt := range series {
		if pt.Amount != 0 {
			t.Errorf("expected zero insulin effect from a meal-only history, got %v at %s", pt.Amount, pt.Timestamp)
		}
	}
}
