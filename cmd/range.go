package cmd

import (
	"os"

	"objectfs/core/objectclient"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rangeCmd represents the range command
var rangeCmd = &cobra.Command{
	Use:   "range <hash>",
	Short: "Fetch a byte range of a stored file through the object client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		_, logg, client, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer logg.Sync()

		from, _ := cmd.Flags().GetInt64("from")
		to, _ := cmd.Flags().GetInt64("to")
		size, _ := cmd.Flags().GetInt64("size")
		out, _ := cmd.Flags().GetString("out")

		rng := objectclient.NewRange(from, to)
		data, err := client.ProxyRangeRequest(ctx, objectclient.File{ContentHash: args[0], Size: size}, rng)
		if err != nil {
			return err
		}
		logg.Debug("Range fetched", zap.String("range", rng.Header()), zap.Int("bytes", len(data)))

		if out != "" {
			return os.WriteFile(out, data, 0644)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	RootCmd.AddCommand(rangeCmd)
	rangeCmd.Flags().Int64("from", 0, "First byte (inclusive)")
	rangeCmd.Flags().Int64("to", 0, "Last byte (inclusive)")
	rangeCmd.Flags().Int64("size", 0, "File size in bytes, 0 when unknown")
	rangeCmd.Flags().String("out", "", "Write the bytes to this file instead of stdout")
	_ = rangeCmd.MarkFlagRequired("to")
}
