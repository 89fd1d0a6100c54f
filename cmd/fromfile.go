package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/goconvdev/goconv/base"
	"github.com/goconvdev/goconv/batch"
	"github.com/goconvdev/goconv/config"
	"github.com/goconvdev/goconv/logger"
	"github.com/goconvdev/goconv/ui"
)

var (
	fromFileTarget  targetFlags
	fromFileVerbose bool
)

var fromFileCmd = &cobra.Command{
	Use:   "from-file <input_file> <output_file> <input_base>",
	Short: "Batch convert a file of numbers, one per line",
	Long: `Convert every line of the input file from its claimed base to the
target base, writing one converted line per success to the output file.

Lines that fail validation are recorded in a side error log and skipped;
a bad line never aborts the batch. The output file is created or
overwritten; the input file must exist.`,
	Example: "  goconv from-file nums.txt converted.txt b -d\n  goconv from-file hex.txt out.txt x -o",
	Args:    cobra.ExactArgs(3),
	RunE:    runFromFile,
}

func init() {
	rootCmd.AddCommand(fromFileCmd)
	fromFileTarget.register(fromFileCmd)
	fromFileCmd.Flags().BoolVarP(&fromFileVerbose, "verbose", "v", false, "show verbose output")
}

func runFromFile(cmd *cobra.Command, args []string) error {
	start := time.Now()
	ctx := cmd.Context()

	target, err := fromFileTarget.target()
	if err != nil {
		fmt.Println(err)
		return nil
	}
	from, err := base.ParseBase(args[2])
	if err != nil {
		fmt.Println(err)
		return nil
	}

	cfg, err := config.Load(".")
	if err != nil {
		ui.ErrorMsg("Failed to load config", err)
		return err
	}

	verbose := fromFileVerbose || cfg.Verbose
	ui.SetVerbose(verbose)
	logger.SetLogger(logger.New(verbose))

	inputPath, outputPath := args[0], args[1]

	opts := batch.DefaultOptions(outputPath)
	if cfg.ErrorLog != "" {
		opts.ErrorLog = cfg.ErrorLog
	}

	ui.Step(1, 2, fmt.Sprintf("Converting %s (%s to %s)", inputPath, from.Name(), target.Name()))

	var report *batch.Report
	err = ui.RunWithSpinner("Converting lines...", func() error {
		var runErr error
		report, runErr = batch.ConvertFile(ctx, inputPath, outputPath, from, target, opts)
		return runErr
	})
	if err != nil {
		ui.ErrorMsg("Batch conversion failed", err)
		return err
	}

	ui.Step(2, 2, "Writing results")
	printBatchSummary(outputPath, report, time.Since(start))
	return nil
}

func printBatchSummary(outputPath string, report *batch.Report, d time.Duration) {
	ui.Println()
	ui.SuccessMsg(fmt.Sprintf("Converted %d/%d lines (%s)", report.Converted, report.LinesRead, ui.FormatDuration(d)))
	ui.Detail(fmt.Sprintf("Output: %s", ui.Primary.Render(outputPath)))

	if len(report.Errors) == 0 {
		return
	}
	ui.WarnMsg(fmt.Sprintf("Skipped %d lines, recorded in %s", len(report.Errors), report.ErrorLog))
	for _, le := range report.Errors {
		ui.Verbosef("line %d: %s", le.Line, le.Msg)
	}
}
