package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/openaps/glucose-predict/ingest"
	"github.com/openaps/glucose-predict/predict"
)

var (
	composeEffectPaths      []string
	composeMomentumPath     string
	composeGlucosePath      string
	composeGlucoseMaxAgeMin int
)

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Compose effect series and a CGM anchor into a predicted glucose trajectory",
	Run: func(cmd *cobra.Command, args []string) {
		if len(composeEffectPaths) == 0 {
			logrus.Fatalf("at least one --effects flag is required")
		}
		if err := ingest.AssertFresh(composeGlucosePath, durationMinutes(composeGlucoseMaxAgeMin)); err != nil {
			logrus.Fatalf("%v", err)
		}

		cgm, err := ingest.LoadGlucoseSamples(composeGlucosePath)
		if err != nil {
			logrus.Fatalf("loading glucose samples: %v", err)
		}
		if len(cgm) > 0 {
			if err := ingest.AssertGlucoseConsistentWithFile(composeGlucosePath, cgm[0].Timestamp); err != nil {
				logrus.Fatalf("%v", err)
			}
		}

		effects := make([]predict.EffectSeries, 0, len(composeEffectPaths))
		for _, path := range composeEffectPaths {
			series, err := ingest.LoadEffectSeries(path)
			if err != nil {
				logrus.Fatalf("loading effect series %s: %v", path, err)
			}
			effects = append(effects, series)
		}

		var momentum predict.EffectSeries
		if composeMomentumPath != "" {
			momentum, err = ingest.LoadEffectSeries(composeMomentumPath)
			if err != nil {
				logrus.Fatalf("loading momentum series: %v", err)
			}
		}

		prediction := predict.CalculateGlucoseFromEffects(effects, cgm, momentum)
		writeGlucosePredictions(prediction)
	},
}

func init() {
	composeCmd.Flags().StringArrayVar(&composeEffectPaths, "effects", nil, "Path to a cumulative effect series JSON file (can be repeated, in insertion order)")
	_ = composeCmd.MarkFlagRequired("effects")
	composeCmd.Flags().StringVar(&composeMomentumPath, "momentum", "", "Path to a momentum effect series JSON file")
	composeCmd.Flags().StringVar(&composeGlucosePath, "glucose", "", "JSON-encoded glucose data file in reverse-chronological order")
	_ = composeCmd.MarkFlagRequired("glucose")
	composeCmd.Flags().IntVar(&composeGlucoseMaxAgeMin, "max-age", 15, "Reject a glucose file older than this many minutes")

	rootCmd.AddCommand(composeCmd)
}
