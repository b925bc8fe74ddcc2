package cli

import (
	"github.com/spf13/cobra"
)

func newResetCommand(a *app) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset a day's nutrition data (today by default)",
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

			existed := s.Reset(d)
			if err := s.Save(); err != nil {
				return err
			}

			return a.renderer().Reset(d, existed)
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "date to reset (YYYY-MM-DD), defaults to today")

	return cmd
}
