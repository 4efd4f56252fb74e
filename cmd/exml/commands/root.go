package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KimNorgaard/go-exml"
)

var (
	strict   bool
	indent   int
	logLevel string

	logger *slog.Logger
)

// Execute runs the CLI with the process arguments.
func Execute() error {
	return newRootCmd(os.Stderr).Execute()
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "exml",
		Short:         "Inspect and edit launcher layout backups",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("log-level") {
				if env := os.Getenv("EXML_LOG_LEVEL"); env != "" {
					logLevel = env
				}
			}
			var level slog.Level
			if err := level.UnmarshalText([]byte(logLevel)); err != nil {
				return fmt.Errorf("invalid log level %q", logLevel)
			}
			logger = slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	root.PersistentFlags().BoolVar(&strict, "strict", false, "fail on malformed values and unknown item kinds")
	root.PersistentFlags().IntVar(&indent, "indent", 2, "spaces per nesting level when writing EXML (0 for compact)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	root.AddCommand(
		summaryCmd(),
		fmtCmd(),
		findCmd(),
		moveCmd(),
		removeCmd(),
		digestCmd(),
		exportCmd(),
		importCmd(),
		serveCmd(),
	)
	return root
}

func decodeOptions() []exml.Option {
	opts := []exml.Option{exml.Logger(logger)}
	if strict {
		opts = append(opts, exml.StrictValues(), exml.DisallowUnknownKinds())
	}
	return opts
}

func encodeOptions() []exml.Option {
	return []exml.Option{exml.Indent(indent)}
}

// load decodes the backup at path, or stdin when path is "-".
func load(cmd *cobra.Command, path string) (*exml.Document, error) {
	if path == "-" {
		return exml.NewDecoder(cmd.InOrStdin(), decodeOptions()...).Decode()
	}
	return exml.Load(path, decodeOptions()...)
}

// save writes doc to out, or back to in when out is empty. "-" writes to
// stdout.
func save(cmd *cobra.Command, doc *exml.Document, in, out string) error {
	if out == "" {
		out = in
	}
	if out == "-" {
		return exml.NewEncoder(cmd.OutOrStdout(), encodeOptions()...).Encode(doc)
	}
	if err := exml.Save(out, doc, encodeOptions()...); err != nil {
		return err
	}
	logger.Info("saved", "path", out)
	return nil
}

// regionFlag validates a --region value.
func regionFlag(name string) error {
	for _, r := range exml.Regions {
		if r == name {
			return nil
		}
	}
	return fmt.Errorf("unknown region %q (want one of %s)", name, strings.Join(exml.Regions, ", "))
}
