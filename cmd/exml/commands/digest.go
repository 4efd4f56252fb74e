package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KimNorgaard/go-exml/internal/digest"
)

func digestCmd() *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "digest FILE...",
		Short: "Print the content hash of each backup",
		Long: "Print the BLAKE2b-256 hash of each backup's canonical encoding. Backups " +
			"that differ only in formatting or explicit defaults hash the same.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				doc, err := load(cmd, path)
				if err != nil {
					return err
				}
				d, err := digest.Sum(doc)
				if err != nil {
					return err
				}
				sum := d.String()
				if short {
					sum = d.Short()
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", sum, path)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&short, "short", "s", false, "print a 20 character prefix")
	return cmd
}
