package cmd

import (
	"fmt"

	"objectfs/core/objectclient"

	"github.com/spf13/cobra"
)

// presignCmd represents the presign command
var presignCmd = &cobra.Command{
	Use:   "presign <hash>",
	Short: "Generate a pre-signed download URL for a stored file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, logg, client, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer logg.Sync()

		headers := map[string]string{}
		if filename, _ := cmd.Flags().GetString("filename"); filename != "" {
			headers[objectclient.HeaderContentDisposition] = objectclient.AttachmentDisposition(filename)
		}
		if disposition, _ := cmd.Flags().GetString("disposition"); disposition != "" {
			headers[objectclient.HeaderContentDisposition] = disposition
		}
		if contentType, _ := cmd.Flags().GetString("content-type"); contentType != "" {
			headers[objectclient.HeaderContentType] = contentType
		}

		url, err := client.GeneratePresignedURL(ctx, args[0], headers)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), url)

		if cmd.Flags().Changed("size") {
			size, _ := cmd.Flags().GetInt64("size")
			fmt.Fprintf(cmd.ErrOrStderr(), "should_presign: %t\n", cfg.Client.ShouldPresign(client, size))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(presignCmd)
	presignCmd.Flags().String("disposition", "", "Content-Disposition of the download")
	presignCmd.Flags().String("filename", "", "Download as an attachment with this name")
	presignCmd.Flags().String("content-type", "", "Content-Type of the download")
	presignCmd.Flags().Int64("size", 0, "File size in bytes, reports whether the presign policy applies")
}
