package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func removeCmd() *cobra.Command {
	var (
		region    string
		page      int
		className string
		out       string
	)
	cmd := &cobra.Command{
		Use:   "remove FILE PACKAGE",
		Short: "Remove the first matching item from a region",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := regionFlag(region); err != nil {
				return err
			}
			doc, err := load(cmd, args[0])
			if err != nil {
				return err
			}

			pkg := args[1]
			var removed bool
			if paged := doc.Paged(region); paged != nil {
				removed = paged.Remove(page, pkg, className)
			} else {
				removed = doc.List(region).Remove(pkg, className)
			}
			if !removed {
				return fmt.Errorf("no %s/%s in %s", pkg, className, region)
			}
			logger.Info("removed", "region", region, "package", pkg)
			return save(cmd, doc, args[0], out)
		},
	}
	cmd.Flags().StringVarP(&region, "region", "r", "home", "region to edit")
	cmd.Flags().IntVar(&page, "page", 0, "page to edit (home and homeOnly)")
	cmd.Flags().StringVarP(&className, "class", "c", "", "class name of the item")
	cmd.Flags().StringVarP(&out, "out", "o", "", `output file ("-" for stdout)`)
	return cmd
}
