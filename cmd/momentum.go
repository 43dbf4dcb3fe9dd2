package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/openaps/glucose-predict/ingest"
	"github.com/openaps/glucose-predict/predict"
)

var (
	momentumCalibrationsPath string
	momentumDt               int
	momentumPredictionTime   int
	momentumFitPoints        int
	momentumGlucoseMaxAgeMin int
)

var momentumCmd = &cobra.Command{
	Use:   "momentum <glucose.json>",
	Short: "Predict short-term glucose trend from recent CGM samples",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		glucosePath := args[0]
		if err := ingest.AssertFresh(glucosePath, durationMinutes(momentumGlucoseMaxAgeMin)); err != nil {
			logrus.Fatalf("%v", err)
		}

		samples, err := ingest.LoadGlucoseSamples(glucosePath)
		if err != nil {
			logrus.Fatalf("loading glucose samples: %v", err)
		}

		var calibrations []predict.CalibrationSample
		if momentumCalibrationsPath != "" {
			calibrations, err = ingest.LoadCalibrations(momentumCalibrationsPath)
			if err != nil {
				logrus.Fatalf("loading calibrations: %v", err)
			}
		}

		series := predict.CalculateMomentumEffect(samples, calibrations, predict.MomentumOptions{
			Dt:             momentumDt,
			PredictionTime: momentumPredictionTime,
			FitPoints:      momentumFitPoints,
		})
		writeEffectSeries(series)
	},
}

func init() {
	momentumCmd.Flags().StringVar(&momentumCalibrationsPath, "calibrations", "", "JSON-encoded sensor calibrations file, reverse chronological")
	momentumCmd.Flags().IntVar(&momentumDt, "dt", 5, "Grid spacing in minutes")
	momentumCmd.Flags().IntVar(&momentumPredictionTime, "prediction-time", 30, "Total length of forward trend extrapolation in minutes")
	momentumCmd.Flags().IntVar(&momentumFitPoints, "fit-points", 3, "Number of recent CGM samples used for the regression fit")
	momentumCmd.Flags().IntVar(&momentumGlucoseMaxAgeMin, "max-age", 15, "Reject a glucose file older than this many minutes")

	rootCmd.AddCommand(momentumCmd)
}
