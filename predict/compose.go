package predict

import (
	"sort"
	"time"
)

// CalculateGlucoseFromEffects composes one or more cumulative effect
// series (insulin, carb, ...) plus an optional momentum series into a
// single predicted glucose trajectory, anchored to the most recent CGM
// sample. Returns nil if cgm is empty.
func CalculateGlucoseFromEffects(effects []EffectSeries, cgm []GlucoseSample, momentum EffectSeries) []GlucosePrediction {
	if len(cgm) == 0 {
		return nil
	}
	anchor := cgm[0]

	delta := make(map[time.Time]float64)
	for _, series := range effects {
		prev := 0.0
		for _, pt := range series {
			delta[pt.Timestamp] += pt.Amount - prev
			prev = pt.Amount
		}
	}

	blendMomentum(delta, momentum, anchor)

	keys := make([]time.Time, 0, len(delta))
	for k := range delta {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })

	result := make([]GlucosePrediction, 0, len(keys)+1)
	result = append(result, GlucosePrediction{Timestamp: anchor.Timestamp, Value: anchor.Value})

	last := anchor.Value
	for _, k := range keys {
		if !k.After(anchor.Timestamp) {
			continue
		}
		last += delta[k]
		result = append(result, GlucosePrediction{Timestamp: k, Value: last})
	}
	return result
}

// blendMomentum applies the linear blend at the momentum horizon
// described in spec.md §4.9, replacing (not adding to) delta entries at
// momentum timestamps. With exactly 2 momentum points the blend formula
// divides by zero; per the spec's resolved open question, the blend is
// skipped entirely for fewer than 3 points and delta is left untouched.
func blendMomentum(delta map[time.Time]float64, momentum EffectSeries, anchor GlucoseSample) {
	n := len(momentum)
	if n <= 1 {
		return
	}

	hasBlend := n > 2
	var dBlend, blendOffset float64
	if hasBlend {
		tm0 := momentum[0].Timestamp
		tm1 := momentum[1].Timestamp
		dtM := tm1.Sub(tm0).Seconds()
		off := anchor.Timestamp.Sub(tm0).Seconds() / dtM
		dBlend = 1.0 / float64(n-2)
		blendOffset = off * dBlend
	}

	prev := 0.0
	for i, pt := range momentum {
		dm := pt.Amount - prev
		prev = pt.Amount
		if !hasBlend {
			continue
		}
		split := float64(n-(i+1))/float64(n-2) + blendOffset
		split = clamp(split, 0, 1)
		delta[pt.Timestamp] = split*dm + (1-split)*delta[pt.Timestamp]
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
