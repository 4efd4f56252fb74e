package commands

import (
	"bufio"
	"os"

	"github.com/spf13/cobra"

	"github.com/KimNorgaard/go-exml"
	"github.com/KimNorgaard/go-exml/internal/export"
)

func exportCmd() *cobra.Command {
	var format, out string
	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Convert a backup to JSON, YAML or MessagePack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			doc, err := load(cmd, args[0])
			if err != nil {
				return err
			}
			if out == "" || out == "-" {
				return export.Encode(cmd.OutOrStdout(), doc, f)
			}

			file, err := os.Create(out)
			if err != nil {
				return err
			}
			w := bufio.NewWriter(file)
			if err := export.Encode(w, doc, f); err != nil {
				file.Close()
				return err
			}
			if err := w.Flush(); err != nil {
				file.Close()
				return err
			}
			return file.Close()
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "json, yaml or msgpack")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}

func importCmd() *cobra.Command {
	var format, out string
	cmd := &cobra.Command{
		Use:   "import SNAPSHOT",
		Short: "Build a backup from an export snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			var doc *exml.Document
			if args[0] == "-" {
				doc, err = export.Decode(cmd.InOrStdin(), f)
			} else {
				var file *os.File
				file, err = os.Open(args[0])
				if err != nil {
					return err
				}
				defer file.Close()
				doc, err = export.Decode(bufio.NewReader(file), f)
			}
			if err != nil {
				return err
			}
			if out == "" {
				out = "-"
			}
			return save(cmd, doc, "", out)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "json, yaml or msgpack")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output EXML file (default stdout)")
	return cmd
}
