package cli

import (
	"github.com/denismitr/cali"
	"github.com/spf13/cobra"
)

func newSummaryCommand(a *app) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show nutrition summary for a day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, _, err := a.resolveDate(date)
			if err != nil {
				return err
			}

			s, err := a.openStore()
			if err != nil {
				return err
			}

			_, found := s.Lookup(d)
			return a.renderer().Summary(cali.TotalsFor(s, d), found)
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "date to show (YYYY-MM-DD), defaults to today")

	return cmd
}
