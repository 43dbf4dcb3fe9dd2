package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/openaps/glucose-predict/ingest"
	"github.com/openaps/glucose-predict/predict"
)

var (
	iobDIAHours         float64
	iobDt               int
	iobAbsorptionDelay  int
	iobBasalDosingEnd   string
	iobStartAt          string
	iobEndAt            string
	iobVisualIOBOnly    bool
	iobHistoryMaxAgeMin int
)

var iobCmd = &cobra.Command{
	Use:   "iob <history.json>",
	Short: "Calculate insulin-on-board from a dose history using the Walsh curve",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		historyPath := args[0]
		if err := ingest.AssertFresh(historyPath, durationMinutes(iobHistoryMaxAgeMin)); err != nil {
			logrus.Fatalf("%v", err)
		}

		history, err := ingest.LoadDoseHistory(historyPath)
		if err != nil {
			logrus.Fatalf("loading dose history: %v", err)
		}

		opts := predict.IOBOptions{Dt: iobDt, AbsorptionDelay: iobAbsorptionDelay, VisualIOBOnly: iobVisualIOBOnly}
		if iobBasalDosingEnd != "" {
			t, err := parseFlagTimestamp(iobBasalDosingEnd)
			if err != nil {
				logrus.Fatalf("--basal-dosing-end: %v", err)
			}
			opts.BasalDosingEnd = &t
		}
		if iobStartAt != "" {
			t, err := parseFlagTimestamp(iobStartAt)
			if err != nil {
				logrus.Fatalf("--start-at: %v", err)
			}
			opts.StartAt = &t
		}
		if iobEndAt != "" {
			t, err := parseFlagTimestamp(iobEndAt)
			if err != nil {
				logrus.Fatalf("--end-at: %v", err)
			}
			opts.EndAt = &t
		}

		series, err := predict.CalculateIOB(history, iobDIAHours, opts)
		if err != nil {
			logrus.Fatalf("calculating IOB: %v", err)
		}
		writeEffectSeries(series)
	},
}

func init() {
	iobCmd.Flags().Float64Var(&iobDIAHours, "dia", 4, "Duration of insulin action in hours (3, 4, 5, or 6)")
	iobCmd.Flags().IntVar(&iobDt, "dt", 5, "Grid spacing in minutes")
	iobCmd.Flags().IntVar(&iobAbsorptionDelay, "absorption-delay", 10, "Delay between a dose event and the onset of measurable effect, in minutes")
	iobCmd.Flags().StringVar(&iobBasalDosingEnd, "basal-dosing-end", "", "Truncate temp-basal end times later than this ISO-8601 instant")
	iobCmd.Flags().StringVar(&iobStartAt, "start-at", "", "Override the grid start instant (ISO-8601)")
	iobCmd.Flags().StringVar(&iobEndAt, "end-at", "", "Override the grid end instant (ISO-8601)")
	iobCmd.Flags().BoolVar(&iobVisualIOBOnly, "visual-iob-only", true, "Report IOB immediately at dose start rather than after absorption-delay")
	iobCmd.Flags().IntVar(&iobHistoryMaxAgeMin, "max-age", 5, "Reject a history file older than this many minutes")

	rootCmd.AddCommand(iobCmd)
}
