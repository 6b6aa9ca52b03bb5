// Command aligndump reads an alignment snapshot, builds its curve
// decomposition, places the PI points, and prints the result.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/roadgeom/alignment"
	"github.com/roadgeom/alignment/internal/config"
	"github.com/roadgeom/alignment/internal/export"
	"github.com/roadgeom/alignment/internal/snapshot"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// options holds the command line flags. Flags that were set take
// precedence over the configuration file and the environment.
type options struct {
	configFile    string
	format        string
	sortByStation bool
	rawStations   bool
	logLevel      string
}

func (o *options) bind(fs *pflag.FlagSet) {
	fs.StringVar(&o.configFile, "config", "", "configuration file location")
	fs.StringVarP(&o.format, "format", "f", config.FormatText, "output format: text, json, or geojson")
	fs.BoolVar(&o.sortByStation, "sort", false, "order curves by start station instead of entity order")
	fs.BoolVar(&o.rawStations, "raw-stations", false, "use the recorded raw stations without correction")
	fs.StringVar(&o.logLevel, "log-level", "info", "log level")
}

// apply overrides cfg with the flags that were set on fs.
func (o *options) apply(fs *pflag.FlagSet, cfg *config.Config) error {
	if fs.Changed("format") {
		cfg.Format = o.format
	}
	if fs.Changed("sort") {
		cfg.SortByStation = o.sortByStation
	}
	if fs.Changed("raw-stations") {
		cfg.RawStations = o.rawStations
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	return cfg.Validate()
}

func newRootCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "aligndump [flags] SNAPSHOT",
		Short: "Print the curve decomposition of an alignment snapshot.",
		Long: `aligndump reads an alignment snapshot, classifies its entities into
lines, arcs, spirals, and compound curve groups, places the PI points of
the curves using the recorded geometry point stations, and prints the result
as a table, JSON, or GeoJSON.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(o.configFile)
			if err != nil {
				return err
			}
			if err := o.apply(cmd.Flags(), cfg); err != nil {
				return err
			}
			log, err := newLogger(cmd.ErrOrStderr(), cfg)
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), args[0], cfg, log)
		},
		DisableAutoGenTag: true,
	}
	o.bind(cmd.Flags())
	return cmd
}

func newLogger(w io.Writer, cfg *config.Config) (*logrus.Logger, error) {
	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
		DisableSorting:  true,
	})
	return log, nil
}

// run processes the snapshot at path and writes the result to w.
func run(w io.Writer, path string, cfg *config.Config, log *logrus.Logger) error {
	s, err := snapshot.Load(path)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"snapshot": path,
		"entities": len(s.Entities),
		"stations": len(s.Stations),
	}).Debug("loaded snapshot")

	cl := alignment.Classifier{Log: log}
	curves := cl.ClassifyAll(s.Records())
	if cfg.SortByStation {
		curves = alignment.SortByStation(curves)
	}

	p := alignment.StationProjector{Log: log}
	if !cfg.RawStations {
		p.Offsetter = s.Offsetter()
	}
	pis := p.AssignPIPoints(curves, s.Samples())
	log.WithField("pi_points", len(pis)).Info("placed PI points")

	return export.Write(w, cfg.Format, export.Result{
		Name:     s.Name,
		Curves:   curves,
		PIPoints: pis,
	})
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "aligndump:", err)
		os.Exit(1)
	}
}
