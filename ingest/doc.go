// Package ingest is the external collaborator around the predict engine:
// it decodes JSON documents into predict's semantic types, loads YAML
// configuration, and performs the file-age and timestamp-normalization
// bookkeeping the engine itself stays silent about.
//
// Reading Guide:
//   - raw.go holds the JSON wire shapes (RawDoseEvent, RawGlucoseSample,
//     RawScheduleEntry, RawISFScheduleFile, RawCRScheduleFile), whose
//     fields carry the recognized keys of the external interface schema.
//   - dose.go, glucose.go, schedule.go convert those wire shapes into
//     predict.DoseEvent, predict.GlucoseSample, and predict.Schedule.
//   - naive.go strips timezone offsets to a naive representation so
//     arithmetic against other ingested timestamps is well-defined.
//   - freshness.go implements the "is this file too old" checks the
//     original CLI performed as asserts before running a prediction.
//   - config.go loads predict.Config from YAML with strict field
//     checking, mirroring the teacher's policy-bundle loader.
//
// Nothing in package predict imports this package; the dependency runs
// one way, ingest -> predict, as the engine's external collaborator.
package ingest
