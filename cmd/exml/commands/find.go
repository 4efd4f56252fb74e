package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KimNorgaard/go-exml/internal/report"
)

func findCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find FILE PACKAGE",
		Short: "List every placement of a package",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := load(cmd, args[0])
			if err != nil {
				return err
			}
			locs := report.Locate(doc, args[1])
			if len(locs) == 0 {
				return fmt.Errorf("%s not found", args[1])
			}
			for _, loc := range locs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", loc, loc.Item.Kind, loc.Item.ClassName)
			}
			return nil
		},
	}
}
