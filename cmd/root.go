package cmd

import (
	"fmt"
	"os"

	"page-server/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "page-server",
	Short: "Server-rendered web application server",
	Long: `page-server serves a server-rendered web application.
Requests under /api get a placeholder response, every other path is rendered
from the pages and public directories of the application root.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console only: the configuration may be what failed.
		l, closeLogs, logErr := logger.New(&logger.Config{Level: "debug"}, true)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			closeLogs()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
