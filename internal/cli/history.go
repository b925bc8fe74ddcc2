package cli

import (
	"github.com/denismitr/cali"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newHistoryCommand(a *app) *cobra.Command {
	var (
		from, to string
		reverse  bool
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show all recorded nutrition data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := cali.Q().Limit(limit)
			if reverse {
				q.Order(cali.Descend)
			}

			if from != "" {
				d, err := cali.ParseDate(from)
				if err != nil {
					return errors.Wrap(err, "--from")
				}
				q.Since(d)
			}

			if to != "" {
				d, err := cali.ParseDate(to)
				if err != nil {
					return errors.Wrap(err, "--to")
				}
				q.Until(d)
			}

			s, err := a.openStore()
			if err != nil {
				return err
			}

			return a.renderer().History(cali.History(s, q))
		},
	}

	f := cmd.Flags()
	f.StringVar(&from, "from", "", "first date to include (YYYY-MM-DD)")
	f.StringVar(&to, "to", "", "last date to include (YYYY-MM-DD)")
	f.BoolVarP(&reverse, "reverse", "r", false, "newest first")
	f.IntVarP(&limit, "limit", "n", 0, "show at most this many days")

	return cmd
}
