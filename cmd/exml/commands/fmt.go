package commands

import (
	"github.com/spf13/cobra"
)

func fmtCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "fmt FILE",
		Short: "Rewrite a backup in canonical form",
		Long: "Rewrite a backup in canonical form: layout settings first, regions in " +
			"their fixed order and default attributes left out. The file is replaced " +
			"in place unless --out is given.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := load(cmd, args[0])
			if err != nil {
				return err
			}
			return save(cmd, doc, args[0], out)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", `output file ("-" for stdout)`)
	return cmd
}
