// Package cli wires configuration, the record store and the renderer
// into the cali command tree.
package cli

import (
	"io"
	"os"
	"time"

	"github.com/denismitr/cali"
	"github.com/denismitr/cali/internal/config"
	"github.com/denismitr/cali/internal/report"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Runtime is what the commands need from the outside world.
type Runtime struct {
	Out io.Writer
	Err io.Writer
	Now func() time.Time
}

func DefaultRuntime() Runtime {
	return Runtime{Out: os.Stdout, Err: os.Stderr, Now: time.Now}
}

type app struct {
	rt         Runtime
	configPath string
	dataFile   string
	verbose    bool
	cfg        config.Config
	logger     zerolog.Logger
}

func NewRootCommand(rt Runtime, version string) *cobra.Command {
	if rt.Now == nil {
		rt.Now = time.Now
	}

	a := &app{rt: rt, logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "cali [calories]",
		Short: "Track daily calories, water and macros",
		Long: "cali records calories, water, protein, carbs and fat per day in a local JSON file " +
			"and prints colourised summaries.\n\nPassing a bare number logs that many calories for today.",
		Version:           version,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			return a.logMetric(cali.Calories.String(), args[0], "")
		},
	}

	root.SetOut(rt.Out)
	root.SetErr(rt.Err)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", config.DefaultPath(), "config file path")
	pf.StringVar(&a.dataFile, "data-file", "", "data file path (overrides config)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(
		newLogCommand(a),
		newSummaryCommand(a),
		newHistoryCommand(a),
		newResetCommand(a),
		newConfigCommand(a),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	if a.dataFile != "" {
		cfg.Storage.DataFile = config.ExpandHome(a.dataFile)
	}

	level := cfg.LogLevel()
	if a.verbose {
		level = zerolog.DebugLevel
	}

	a.cfg = cfg
	a.logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        a.rt.Err,
		NoColor:    cfg.Display.Color == config.ColorNever,
		TimeFormat: time.Kitchen,
	}).Level(level).With().Timestamp().Logger()

	a.logger.Debug().
		Str("command", cmd.Name()).
		Str("config", a.configPath).
		Str("data_file", cfg.Storage.DataFile).
		Msg("configuration loaded")

	return nil
}

func (a *app) openStore() (*cali.Store, error) {
	return cali.Load(a.cfg.Storage.DataFile, &cali.Config{
		Logger:  &a.logger,
		Compact: a.cfg.Storage.Compact,
	})
}

func (a *app) renderer() *report.Renderer {
	return report.New(a.rt.Out, a.cfg.Display.Color)
}

func (a *app) today() cali.Date {
	return cali.DateOf(a.rt.Now().In(a.cfg.Location()))
}

// resolveDate parses an optional --date value, defaulting to today.
func (a *app) resolveDate(raw string) (date cali.Date, isToday bool, err error) {
	today := a.today()
	if raw == "" {
		return today, true, nil
	}

	date, err = cali.ParseDate(raw)
	if err != nil {
		return "", false, errors.Wrap(err, "--date")
	}

	return date, date == today, nil
}

func (a *app) logMetric(metricName, rawAmount, rawDate string) error {
	m, err := cali.ParseMetric(metricName)
	if err != nil {
		return err
	}

	amount, err := cali.ParseAmount(rawAmount)
	if err != nil {
		return err
	}

	date, isToday, err := a.resolveDate(rawDate)
	if err != nil {
		return err
	}

	s, err := a.openStore()
	if err != nil {
		return err
	}

	ent, err := s.AddMetric(date, m, amount)
	if err != nil {
		return err
	}

	if err := s.Save(); err != nil {
		return err
	}

	return a.renderer().Logged(m, amount, ent, isToday)
}
