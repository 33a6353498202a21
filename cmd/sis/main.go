package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sis",
	Short: "Explore a sound-annotated short-story corpus",
	Long: `sis loads a corpus of per-paragraph sound annotations and a word-frequency
table from blob storage and serves filtering, pagination, export and
word-cloud views over them.

Configuration comes from SIS_* environment variables (store selection,
object keys, listen address); see the config package for the full list.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(serveCmd, exportCmd, statsCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
