// Package main is the entry point for the forge CLI, a terminal runner for
// the content generation pipeline.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"content-forge/config"
	"content-forge/logger"
)

var rootCmd = &cobra.Command{
	Use:   "forge",
	Short: "Generate publish-ready content drafts for a topic",
	Long: `forge runs the content generation pipeline from the terminal: it discovers
trending content about a topic across video, forum and news sources, analyzes
each item, flags near-duplicates and writes markdown drafts to disk.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.InitApp()
		logger.Log = logger.NewLogger(config.GetConfig().Logging.Level)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
