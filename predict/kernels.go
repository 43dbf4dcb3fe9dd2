package predict

import "fmt"

// walshCoeffs holds the five quartic coefficients (c4..c0) for one
// permitted DIA, in minutes. Values and precision are load-bearing for
// reference fixtures (spec.md §4.3, §9) — treat as frozen.
type walshCoeffs struct{ c4, c3, c2, c1, c0 float64 }

var walshTable = map[float64]walshCoeffs{
	180: {-3.2030e-9, 1.354e-6, -1.759e-4, 9.255e-4, 0.99951},
	240: {-3.310e-10, 2.530e-7, -5.510e-5, -9.086e-4, 0.99950},
	300: {-2.950e-10, 2.320e-7, -5.550e-5, 4.490e-4, 0.99300},
	360: {-1.493e-10, 1.413e-7, -4.095e-5, 6.365e-4, 0.99700},
}

// WalshIOB returns the fraction (0..1) of a single insulin dose still
// active tMin minutes after delivery, per Walsh's IOB curve. diaMin must
// be one of 180, 240, 300, 360 (3/4/5/6 hours); any other value is a
// usage error and panics, since it is a contract violation the caller
// must never trigger (spec.md §7).
func WalshIOB(tMin, diaMin float64) float64 {
	c, ok := walshTable[diaMin]
	if !ok {
		panic(fmt.Sprintf("predict: WalshIOB: DIA %v minutes is not one of 180, 240, 300, 360", diaMin))
	}
	if tMin >= diaMin {
		return 0
	}
	if tMin <= 0 {
		return 1
	}
	t2 := tMin * tMin
	t3 := t2 * tMin
	t4 := t3 * tMin
	return c.c4*t4 + c.c3*t3 + c.c2*t2 + c.c1*tMin + c.c0
}

// ValidDIAMinutes reports whether diaMin is one of the four permitted
// Walsh DIA values (used by callers to turn the WalshIOB panic into a
// recoverable error before ever calling it).
func ValidDIAMinutes(diaMin float64) bool {
	_, ok := walshTable[diaMin]
	return ok
}

// CarbFrac returns the fraction (0..1) of a meal's total carbohydrate
// effect that has been absorbed tMin minutes after eating, per the
// Scheiner GI curve with total absorption time aMin.
func CarbFrac(tMin, aMin float64) float64 {
	switch {
	case tMin <= 0:
		return 0
	case tMin <= aMin/2:
		return 2 * tMin * tMin / (aMin * aMin)
	case tMin < aMin:
		return -1 + (4/aMin)*(tMin-tMin*tMin/(2*aMin))
	default:
		return 1
	}
}
