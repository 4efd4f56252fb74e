package commands

import (
	"errors"

	"github.com/spf13/cobra"
)

func moveCmd() *cobra.Command {
	var (
		region             string
		fromPage, toPage   int
		fromIndex, toIndex int
		out                string
	)
	cmd := &cobra.Command{
		Use:   "move FILE",
		Short: "Move an item within a region",
		Long: "Move the item at --from (on --from-page) to --to (on --to-page). The " +
			"destination index is clamped and a missing destination page is created. " +
			"Page flags are ignored for hotseat, hotseat_homeOnly and appOrder.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := regionFlag(region); err != nil {
				return err
			}
			doc, err := load(cmd, args[0])
			if err != nil {
				return err
			}

			var moved bool
			if paged := doc.Paged(region); paged != nil {
				if !cmd.Flags().Changed("to-page") {
					toPage = fromPage
				}
				moved = paged.Move(fromPage, fromIndex, toPage, toIndex)
			} else {
				moved = doc.List(region).Move(fromIndex, toIndex)
			}
			if !moved {
				return errors.New("no item at the source position")
			}
			logger.Info("moved", "region", region, "from", fromIndex, "to", toIndex)
			return save(cmd, doc, args[0], out)
		},
	}
	cmd.Flags().StringVarP(&region, "region", "r", "home", "region to edit")
	cmd.Flags().IntVar(&fromPage, "from-page", 0, "source page")
	cmd.Flags().IntVar(&fromIndex, "from", 0, "source index")
	cmd.Flags().IntVar(&toPage, "to-page", 0, "destination page (default: the source page)")
	cmd.Flags().IntVar(&toIndex, "to", 0, "destination index")
	cmd.Flags().StringVarP(&out, "out", "o", "", `output file ("-" for stdout)`)
	return cmd
}
