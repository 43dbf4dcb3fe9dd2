package predict

import (
	"math"
	"testing"
)

func TestIntegrateIOB_BeforeDoseStart(t *testing.T) {
	// If tNow <= t0, WalshIOB(tNow-s) == 1 for every s in [t0, t1], so the
	// integral should equal the interval width.
	got := IntegrateIOB(0, 60, 240, 0)
	want := 60.0
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("IntegrateIOB = %v, want %v", got, want)
	}
}

func TestIntegrateIOB_AfterFullDecay(t *testing.T) {
	// If tNow - t0 >= DIA, WalshIOB(tNow-s) == 0 for every s in [t0, t1].
	got := IntegrateIOB(0, 60, 240, 1000)
	if math.Abs(got) > 1e-9 {
		t.Errorf("IntegrateIOB = %v, want 0", got)
	}
}

func TestIntegrateIOB_MatchesDiscreteSumApproximation(t *testing.T) {
	// SumIOB weights each slice by its share of the window, so it
	// approximates the integral divided by the window width. tNow lies
	// past t1, so SumIOB counts every slice of the window.
	t0, t1, dia, tNow := 0.0, 60.0, 240.0, 90.0
	continuous := IntegrateIOB(t0, t1, dia, tNow) / (t1 - t0)
	discrete := SumIOB(t0, t1, dia, tNow, 1, 0)
	if math.Abs(continuous-discrete) > 0.05 {
		t.Errorf("IntegrateIOB=%v and fine SumIOB=%v diverge more than tolerance", continuous, discrete)
	}
}

func TestSumIOB_ZeroBeforeDelay(t *testing.T) {
	// With tNow far in the past relative to the dose window and no delay
	// grace period, nothing should be summed.
	got := SumIOB(0, 60, 240, -1000, 5, 0)
	if got != 0 {
		t.Errorf("SumIOB = %v, want 0", got)
	}
}
