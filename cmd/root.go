package cmd

import (
	"fmt"
	"os"
	"strings"

	"objectfs/core/logger"
	"objectfs/provider"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "objectfs",
	Short: "Object storage client diagnostics",
	Long: `objectfs checks and exercises the object storage client used to offload
file content to S3, Azure Blob Storage, Google Cloud Storage or MinIO.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var configDir string

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with the development config gives ISO8601 timestamps
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.Long += "\n\nProviders: " + strings.Join(provider.Names, ", ")
	RootCmd.PersistentFlags().StringVar(&configDir, "config", ".", "Directory holding the .env file")
}
