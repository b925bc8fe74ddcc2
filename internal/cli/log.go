package cli

import (
	"strings"

	"github.com/denismitr/cali"
	"github.com/spf13/cobra"
)

func newLogCommand(a *app) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:       "log <metric> <amount>",
		Short:     "Log nutrition data",
		Long:      "Add an amount to one metric. Metrics: " + strings.Join(cali.MetricNames(), ", ") + ".",
		Example:   "  cali log water 16\n  cali log protein 30 --date 2024-03-17",
		Args:      cobra.ExactArgs(2),
		ValidArgs: cali.MetricNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.logMetric(args[0], args[1], date)
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "date to log for (YYYY-MM-DD), defaults to today")

	return cmd
}
