package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/openaps/glucose-predict/ingest"
	"github.com/openaps/glucose-predict/predict"
)

var (
	glucoseCRPath           string
	glucoseISFPath          string
	glucoseDIAHours         float64
	glucoseDt               int
	glucoseAbsorptionDelay  int
	glucoseBasalDosingEnd   string
	glucoseHistoryMaxAgeMin int
	glucoseGlucoseMaxAgeMin int
)

var glucoseCmd = &cobra.Command{
	Use:   "glucose <history.json> <glucose.json>",
	Short: "Predict a future glucose trajectory from dose history and recent CGM",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		historyPath, glucosePath := args[0], args[1]
		if err := ingest.AssertFresh(historyPath, durationMinutes(glucoseHistoryMaxAgeMin)); err != nil {
			logrus.Fatalf("%v", err)
		}
		if err := ingest.AssertFresh(glucosePath, durationMinutes(glucoseGlucoseMaxAgeMin)); err != nil {
			logrus.Fatalf("%v", err)
		}

		history, err := ingest.LoadDoseHistory(historyPath)
		if err != nil {
			logrus.Fatalf("loading dose history: %v", err)
		}
		cgm, err := ingest.LoadGlucoseSamples(glucosePath)
		if err != nil {
			logrus.Fatalf("loading glucose samples: %v", err)
		}
		if len(cgm) > 0 {
			if err := ingest.AssertGlucoseConsistentWithFile(glucosePath, cgm[0].Timestamp); err != nil {
				logrus.Fatalf("%v", err)
			}
		}
		carbRatio, err := ingest.LoadCRSchedule(glucoseCRPath)
		if err != nil {
			logrus.Fatalf("loading carb ratios: %v", err)
		}
		isf, err := ingest.LoadISFSchedule(glucoseISFPath)
		if err != nil {
			logrus.Fatalf("loading insulin sensitivities: %v", err)
		}

		opts := predict.FutureGlucoseOptions{Dt: glucoseDt, AbsorptionDelay: glucoseAbsorptionDelay}
		if glucoseBasalDosingEnd != "" {
			t, err := parseFlagTimestamp(glucoseBasalDosingEnd)
			if err != nil {
				logrus.Fatalf("--basal-dosing-end: %v", err)
			}
			opts.BasalDosingEnd = &t
		}

		prediction, err := predict.FutureGlucose(history, cgm, glucoseDIAHours, isf, carbRatio, opts)
		if err != nil {
			logrus.Fatalf("predicting future glucose: %v", err)
		}
		writeGlucosePredictions(prediction)
	},
}

func init() {
	glucoseCmd.Flags().StringVar(&glucoseCRPath, "carb-ratios", "", "JSON-encoded carb ratio schedule file")
	_ = glucoseCmd.MarkFlagRequired("carb-ratios")
	glucoseCmd.Flags().StringVar(&glucoseISFPath, "insulin-sensitivities", "", "JSON-encoded insulin sensitivity schedule file")
	_ = glucoseCmd.MarkFlagRequired("insulin-sensitivities")
	glucoseCmd.Flags().Float64Var(&glucoseDIAHours, "dia", 4, "Duration of insulin action in hours (3, 4, 5, or 6)")
	glucoseCmd.Flags().IntVar(&glucoseDt, "dt", 5, "Grid spacing in minutes")
	glucoseCmd.Flags().IntVar(&glucoseAbsorptionDelay, "absorption-delay", 10, "Delay between a dose event and the onset of measurable effect, in minutes")
	glucoseCmd.Flags().StringVar(&glucoseBasalDosingEnd, "basal-dosing-end", "", "Truncate temp-basal end times later than this ISO-8601 instant")
	glucoseCmd.Flags().IntVar(&glucoseHistoryMaxAgeMin, "history-max-age", 5, "Reject a history file older than this many minutes")
	glucoseCmd.Flags().IntVar(&glucoseGlucoseMaxAgeMin, "glucose-max-age", 15, "Reject a glucose file older than this many minutes")

	rootCmd.AddCommand(glucoseCmd)
}
