// Package predict provides the effect-composition engine for near-future
// blood glucose forecasting.
//
// # Reading Guide
//
// Start with these files to understand the pipeline:
//   - types.go: the semantic value types (DoseEvent, GlucoseSample, EffectSeries, ...)
//   - kernels.go: the closed-form Walsh IOB and Scheiner carb-absorption curves
//   - iob.go, insulin_effect.go, carb_effect.go: dose -> grid-aligned effect series
//   - momentum.go: CGM trend extrapolation with a calibration veto
//   - compose.go: effect series + momentum -> predicted glucose trajectory
//   - pipeline.go: FutureGlucose, the top-level convenience entry point
//
// The package is pure: no I/O, no logging, no clock reads beyond the
// timestamps callers pass in. JSON decoding and freshness checks live in
// package ingest; the CLI lives in package cmd.
package predict
