package cmd

import (
	"errors"

	"objectfs/core/diagnostics"
	"objectfs/core/metrics"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Test the connection and permissions of the object client",
	Long: `Connects to the configured storage and, when that succeeds, writes, reads
and optionally tries to delete a probe object. Every step prints a message.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, logg, client, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer logg.Sync()

		testDelete := cfg.Client.TestDelete
		if cmd.Flags().Changed("delete") {
			testDelete, _ = cmd.Flags().GetBool("delete")
		}
		asJSON, _ := cmd.Flags().GetBool("json")
		withRange, _ := cmd.Flags().GetBool("range")

		m := metrics.New(nil)
		opts := []diagnostics.Option{diagnostics.WithRunObserver(m.ObserveDiagnostics)}
		if withRange {
			opts = append(opts, diagnostics.WithRangeCheck())
		}

		messages := diagnostics.NewReporter(opts...).Render(ctx, client, testDelete)
		logg.Debug("Diagnostics finished", zap.Int("messages", len(messages)), zap.Bool("test_delete", testDelete))

		if err := printMessages(cmd.OutOrStdout(), messages, asJSON); err != nil {
			return err
		}
		if hasErrors(messages) {
			return errors.New("diagnostics reported errors")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Bool("delete", true, "Verify that the storage refuses deletes (defaults to client.test_delete)")
	checkCmd.Flags().Bool("json", false, "Print messages as JSON")
	checkCmd.Flags().Bool("range", false, "Also probe range request support")
}
