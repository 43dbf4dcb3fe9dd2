package predict

// simpsonN is the fixed, even number of subdivisons used by IntegrateIOB.
// Frozen per spec.md §4.4/§9 to reproduce reference outputs; must stay 50.
const simpsonN = 50

// IntegrateIOB approximates the integral over [t0, t1] of
// WalshIOB(tNow - s, diaMin) ds via composite Simpson's rule with a fixed
// 50 equal subintervals. Used to integrate residual insulin-on-board
// across a continuous (temp-basal/square-wave) dose interval.
func IntegrateIOB(t0, t1, diaMin, tNow float64) float64 {
	dx := (t1 - t0) / simpsonN
	integral := WalshIOB(tNow-t0, diaMin) + WalshIOB(tNow-t1, diaMin)

	for i := 1; i < simpsonN-1; i += 2 {
		integral += 4*WalshIOB(tNow-(t0+float64(i)*dx), diaMin) +
			2*WalshIOB(tNow-(t0+float64(i+1)*dx), diaMin)
	}
	integral += 4 * WalshIOB(tNow-(t0+float64(simpsonN-1)*dx), diaMin)

	return integral * dx / 3.0
}

// SumIOB discretely sums residual IOB across a dose window [t0, t1] in
// dt-minute slices, used by CalculateIOB for continuous (temp-basal)
// doses. Each slice starting at or before tNow+delay contributes its share
// of the window, (min(i+dt, t1) - i) / (t1 - t0), weighted by
// WalshIOB(tNow - i); later slices contribute nothing.
func SumIOB(t0, t1, diaMin, tNow, dt, delay float64) float64 {
	var sum float64
	for i := t0; i < t1+dt; i += dt {
		if tNow+delay < i {
			continue
		}
		sliceEnd := i + dt
		if sliceEnd > t1 {
			sliceEnd = t1
		}
		sum += (sliceEnd - i) / (t1 - t0) * WalshIOB(tNow-i, diaMin)
	}
	return sum
}
