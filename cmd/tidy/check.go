package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tidy/internal/checker"
	"tidy/internal/diag"
	"tidy/internal/diagfmt"
	"tidy/internal/gitcfg"
	"tidy/internal/source"
)

func init() {
	rootCmd.Flags().String("format", "plain", "output format (plain|pretty|json)")
	rootCmd.Flags().Int("cols", checker.DefaultMaxCols, "column limit for the line-length rule")
}

// runCheck executes the root command: it resolves the run configuration,
// scans every input in command-line order and renders the findings in
// the chosen format. Style violations exit with status 1 through a
// silent error; fatal I/O or decoding failures surface as real errors on
// stderr.
func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	cols, err := cmd.Flags().GetInt("cols")
	if err != nil {
		return fmt.Errorf("failed to get cols flag: %w", err)
	}

	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}

	switch format {
	case "plain", "pretty", "json":
		// supported
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	cfg := checker.Config{
		AutoCRLF: gitcfg.AutoCRLF(gitcfg.Git),
		MaxCols:  cols,
	}

	bag := diag.NewBag()
	var rep diag.Reporter = diag.BagReporter{Bag: bag}
	if format == "plain" {
		// Plain output streams: each violation is printed the moment the
		// scan finds it, in scan order.
		rep = diag.MultiReporter{
			diag.StreamReporter{W: cmd.OutOrStdout(), Render: diagfmt.Plain},
			diag.BagReporter{Bag: bag},
		}
	}

	if err := scanInputs(args, cfg, rep); err != nil {
		return err
	}

	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))
	switch format {
	case "pretty":
		diagfmt.Pretty(cmd.OutOrStdout(), bag, diagfmt.PrettyOpts{Color: useColor, MaxCols: cfg.MaxCols})
	case "json":
		if err := diagfmt.JSON(cmd.OutOrStdout(), bag); err != nil {
			return fmt.Errorf("failed to encode diagnostics: %w", err)
		}
	}

	if bag.HasErrors() {
		// Suppress cobra usage output on style violations
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("") // Silent error - diagnostics already printed
	}
	return nil
}

// scanInputs walks the inputs in the order given. No arguments, or a "-"
// argument, selects standard input.
func scanInputs(args []string, cfg checker.Config, rep diag.Reporter) error {
	chk := checker.New(cfg, rep)

	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		var (
			src *source.Source
			err error
		)
		if arg == "-" {
			src = source.Stdin()
		} else {
			src, err = source.Open(arg)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", arg, err)
			}
		}

		scanErr := chk.CheckSource(src)
		closeErr := src.Close()
		if scanErr != nil {
			return scanErr
		}
		if closeErr != nil {
			return fmt.Errorf("failed to close %s: %w", arg, closeErr)
		}
	}
	return nil
}
