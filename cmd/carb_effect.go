package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/openaps/glucose-predict/ingest"
	"github.com/openaps/glucose-predict/predict"
)

var (
	carbEffectCRPath           string
	carbEffectISFPath          string
	carbEffectAbsorptionTime   int
	carbEffectAbsorptionDelay  int
	carbEffectDt               int
	carbEffectHistoryMaxAgeMin int
)

var carbEffectCmd = &cobra.Command{
	Use:   "carb-effect <history.json>",
	Short: "Calculate glucose effect of carbohydrates using the Scheiner GI curve",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		historyPath := args[0]
		if err := ingest.AssertFresh(historyPath, durationMinutes(carbEffectHistoryMaxAgeMin)); err != nil {
			logrus.Fatalf("%v", err)
		}

		history, err := ingest.LoadDoseHistory(historyPath)
		if err != nil {
			logrus.Fatalf("loading dose history: %v", err)
		}
		carbRatio, err := ingest.LoadCRSchedule(carbEffectCRPath)
		if err != nil {
			logrus.Fatalf("loading carb ratios: %v", err)
		}
		isf, err := ingest.LoadISFSchedule(carbEffectISFPath)
		if err != nil {
			logrus.Fatalf("loading insulin sensitivities: %v", err)
		}

		series := predict.CalculateCarbEffect(history, carbRatio, isf, predict.CarbEffectOptions{
			Dt:                 carbEffectDt,
			AbsorptionDelay:    carbEffectAbsorptionDelay,
			AbsorptionDuration: carbEffectAbsorptionTime,
		})
		writeEffectSeries(series)
	},
}

func init() {
	carbEffectCmd.Flags().StringVar(&carbEffectCRPath, "carb-ratios", "", "JSON-encoded carb ratio schedule file")
	_ = carbEffectCmd.MarkFlagRequired("carb-ratios")
	carbEffectCmd.Flags().StringVar(&carbEffectISFPath, "insulin-sensitivities", "", "JSON-encoded insulin sensitivity schedule file")
	_ = carbEffectCmd.MarkFlagRequired("insulin-sensitivities")
	carbEffectCmd.Flags().IntVar(&carbEffectAbsorptionTime, "absorption-time", 180, "Total length of carbohydrate absorption in minutes")
	carbEffectCmd.Flags().IntVar(&carbEffectAbsorptionDelay, "absorption-delay", 10, "Delay between a dose event and the onset of measurable effect, in minutes")
	carbEffectCmd.Flags().IntVar(&carbEffectDt, "dt", 5, "Grid spacing in minutes")
	carbEffectCmd.Flags().IntVar(&carbEffectHistoryMaxAgeMin, "max-age", 5, "Reject a history file older than this many minutes")

	rootCmd.AddCommand(carbEffectCmd)
}
