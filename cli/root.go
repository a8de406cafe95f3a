package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tuannh982/hashset/utils/collections"

	log "github.com/sirupsen/logrus"
)

const (
	formatYAML  = "yaml"
	formatLines = "lines"
)

type options struct {
	logLevel string
	format   string
	capacity int
}

func (o *options) addFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.logLevel, "log-level", log.InfoLevel.String(), "log level (trace, debug, info, warn, error)")
	fs.StringVar(&o.format, "format", formatYAML, "element file format: yaml or lines")
	fs.IntVar(&o.capacity, "capacity", collections.DefaultCapacity, "initial bucket count of loaded sets")
}

func (o *options) validate() error {
	if o.format != formatYAML && o.format != formatLines {
		return errors.Errorf("unknown format %q", o.format)
	}
	if o.capacity <= 0 {
		return errors.Errorf("capacity must be positive, got %d", o.capacity)
	}
	return nil
}

func NewRootCommand() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:           "hashset",
		Short:         "Set algebra over element files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(o.logLevel)
			if err != nil {
				return err
			}
			log.SetLevel(level)
			log.SetFormatter(&log.TextFormatter{
				FullTimestamp: true,
			})
			return o.validate()
		},
	}
	o.addFlags(cmd.PersistentFlags())
	cmd.AddCommand(
		newBinaryCommand(o, "union", "Print the values in A or B", collections.Union[string]),
		newBinaryCommand(o, "intersect", "Print the values in both A and B", collections.Intersection[string]),
		newBinaryCommand(o, "except", "Print the values in A but not in B", collections.Difference[string]),
		newBinaryCommand(o, "symdiff", "Print the values in exactly one of A and B", collections.SymmetricDifference[string]),
		newCompareCommand(o),
		newStatsCommand(o),
		newGenerateCommand(o),
	)
	return cmd
}
