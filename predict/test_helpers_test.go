package predict

func newBolus(start string, amount float64) DoseEvent {
	ts := mustTime(start)
	return DoseEvent{Kind: KindBolus, Start: ts, End: ts, Amount: amount, Unit: UnitU}
}

func newTempBasal(start, end string, unitsPerHour float64) DoseEvent {
	return DoseEvent{Kind: KindTempBasal, Start: mustTime(start), End: mustTime(end), Amount: unitsPerHour, Unit: UnitUPerHour}
}

func newMeal(start string, grams float64) DoseEvent {
	ts := mustTime(start)
	return DoseEvent{Kind: KindMeal, Start: ts, End: ts, Amount: grams, Unit: UnitGrams}
}

func flatSchedule(value float64) Schedule {
	return Schedule{{Start: 0, Value: value}}
}

func sampleAt(ts string, value float64) GlucoseSample {
	return GlucoseSample{Timestamp: mustTime(ts), Value: value}
}

func findAt(series []GlucosePrediction, ts string) (float64, bool) {
	target := mustTime(ts)
	for _, p := range series {
		if p.Timestamp.Equal(target) {
			return p.Value, true
		}
	}
	return 0, false
}

func findEffectAt(series EffectSeries, ts string) (float64, bool) {
	target := mustTime(ts)
	for _, p := range series {
		if p.Timestamp.Equal(target) {
			return p.Amount, true
		}
	}
	return 0, false
}
