package cmd

import (
	"fmt"

	"objectfs/core/readiness"

	"github.com/spf13/cobra"
)

// readyCmd represents the ready command
var readyCmd = &cobra.Command{
	Use:   "ready",
	Short: "Report whether the object client is ready for use",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		_, logg, client, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer logg.Sync()

		d := readiness.NewChecker(readiness.NewLogObserver(logg)).Check(ctx, client, client.Config())
		if !d.Ready {
			return fmt.Errorf("object client is not ready (%s): %s", d.Step, d.Reason)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "ready")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(readyCmd)
}
