package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/openaps/glucose-predict/ingest"
	"github.com/openaps/glucose-predict/predict"
)

var (
	cobAbsorptionTime   int
	cobAbsorptionDelay  int
	cobDt               int
	cobHistoryMaxAgeMin int
)

var cobCmd = &cobra.Command{
	Use:   "cob <history.json>",
	Short: "Calculate unabsorbed carbohydrates using the Scheiner GI curve",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		historyPath := args[0]
		if err := ingest.AssertFresh(historyPath, durationMinutes(cobHistoryMaxAgeMin)); err != nil {
			logrus.Fatalf("%v", err)
		}

		history, err := ingest.LoadDoseHistory(historyPath)
		if err != nil {
			logrus.Fatalf("loading dose history: %v", err)
		}

		series := predict.CalculateCOB(history, predict.CarbEffectOptions{
			Dt:                 cobDt,
			AbsorptionDelay:    cobAbsorptionDelay,
			AbsorptionDuration: cobAbsorptionTime,
		})
		writeEffectSeries(series)
	},
}

func init() {
	cobCmd.Flags().IntVar(&cobAbsorptionTime, "absorption-time", 180, "Total length of carbohydrate absorption in minutes")
	cobCmd.Flags().IntVar(&cobAbsorptionDelay, "absorption-delay", 10, "Delay between a dose event and the onset of measurable effect, in minutes")
	cobCmd.Flags().IntVar(&cobDt, "dt", 5, "Grid spacing in minutes")
	cobCmd.Flags().IntVar(&cobHistoryMaxAgeMin, "max-age", 5, "Reject a history file older than this many minutes")

	rootCmd.AddCommand(cobCmd)
}
