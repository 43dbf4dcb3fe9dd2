package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/openaps/glucose-predict/ingest"
	"github.com/openaps/glucose-predict/predict"
)

var (
	insulinEffectISFPath          string
	insulinEffectDIAHours         float64
	insulinEffectDt               int
	insulinEffectAbsorptionDelay  int
	insulinEffectBasalDosingEnd   string
	insulinEffectHistoryMaxAgeMin int
)

var insulinEffectCmd = &cobra.Command{
	Use:   "insulin-effect <history.json>",
	Short: "Calculate glucose effect of insulin on board using the Walsh curve",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		historyPath := args[0]
		if err := ingest.AssertFresh(historyPath, durationMinutes(insulinEffectHistoryMaxAgeMin)); err != nil {
			logrus.Fatalf("%v", err)
		}

		history, err := ingest.LoadDoseHistory(historyPath)
		if err != nil {
			logrus.Fatalf("loading dose history: %v", err)
		}
		isf, err := ingest.LoadISFSchedule(insulinEffectISFPath)
		if err != nil {
			logrus.Fatalf("loading insulin sensitivities: %v", err)
		}

		opts := predict.InsulinEffectOptions{Dt: insulinEffectDt, AbsorptionDelay: insulinEffectAbsorptionDelay}
		if insulinEffectBasalDosingEnd != "" {
			t, err := parseFlagTimestamp(insulinEffectBasalDosingEnd)
			if err != nil {
				logrus.Fatalf("--basal-dosing-end: %v", err)
			}
			opts.BasalDosingEnd = &t
		}

		series, err := predict.CalculateInsulinEffect(history, insulinEffectDIAHours, isf, opts)
		if err != nil {
			logrus.Fatalf("calculating insulin effect: %v", err)
		}
		writeEffectSeries(series)
	},
}

func init() {
	insulinEffectCmd.Flags().StringVar(&insulinEffectISFPath, "insulin-sensitivities", "", "JSON-encoded insulin sensitivity schedule file")
	_ = insulinEffectCmd.MarkFlagRequired("insulin-sensitivities")
	insulinEffectCmd.Flags().Float64Var(&insulinEffectDIAHours, "dia", 4, "Duration of insulin action in hours (3, 4, 5, or 6)")
	insulinEffectCmd.Flags().IntVar(&insulinEffectDt, "dt", 5, "Grid spacing in minutes")
	insulinEffectCmd.Flags().IntVar(&insulinEffectAbsorptionDelay, "absorption-delay", 10, "Delay between a dose event and the onset of measurable effect, in minutes")
	insulinEffectCmd.Flags().StringVar(&insulinEffectBasalDosingEnd, "basal-dosing-end", "", "Truncate temp-basal end times later than this ISO-8601 instant")
	insulinEffectCmd.Flags().IntVar(&insulinEffectHistoryMaxAgeMin, "max-age", 5, "Reject a history file older than this many minutes")

	rootCmd.AddCommand(insulinEffectCmd)
}
