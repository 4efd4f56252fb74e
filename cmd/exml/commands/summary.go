package commands

import (
	"github.com/spf13/cobra"

	"github.com/KimNorgaard/go-exml/internal/report"
)

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary FILE",
		Short: "Print region counts and the layout grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := load(cmd, args[0])
			if err != nil {
				return err
			}
			return report.Write(cmd.OutOrStdout(), doc)
		},
	}
}
