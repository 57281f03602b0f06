package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tidy/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "tidy [file ...]",
	Short: "Line-oriented source style checker",
	Long: `tidy scans text files line by line and flags tab characters, CR
characters and lines over the column limit. With no arguments (or a "-"
argument) it reads standard input. Exit status is 1 when anything was
flagged, 0 when every input is clean.`,
	Args: cobra.ArbitraryArgs,
	RunE: runCheck,
}

// main wires the subcommands and persistent flags onto the root command
// and executes it. Any returned error, including the silent one used for
// "violations found", exits the process with status 1.
func main() {
	// Версия для автоматического флага --version
	rootCmd.Version = version.Version

	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
