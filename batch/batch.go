package batch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/goconvdev/goconv/base"
	"github.com/goconvdev/goconv/logger"
)

// DefaultErrorLog is the fixed name of the side file that accumulates
// per-line failures. It is truncated on each run.
const DefaultErrorLog = "conversion_errors.log"

// Options configures a batch run.
type Options struct {
	// ErrorLog is the path of the side file recording skipped lines.
	ErrorLog string
}

// DefaultOptions places the error log next to the output file.
func DefaultOptions(outputPath string) Options {
	return Options{
		ErrorLog: filepath.Join(filepath.Dir(outputPath), DefaultErrorLog),
	}
}

// LineError records one skipped input line.
type LineError struct {
	Line int
	Msg  string
}

// Report summarizes a batch run.
type Report struct {
	LinesRead int
	Converted int
	Errors    []LineError

	// ErrorLog is the path of the side log, empty when no line failed.
	ErrorLog string
}

// ConvertFile converts inputPath line by line from one base to another,
// writing one converted line per success to outputPath. Lines that fail
// validation are logged and skipped; failed lines produce no output line,
// so the output may hold fewer lines than the input. Only IO-level
// failures (and an unsupported target base) abort the batch.
func ConvertFile(ctx context.Context, inputPath, outputPath string, from, to base.Base, opts Options) (*Report, error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	if opts.ErrorLog == "" {
		opts.ErrorLog = DefaultOptions(outputPath).ErrorLog
	}

	// The side log reflects only this invocation. Clear any log left
	// over from a previous run before processing starts.
	if err := os.Remove(opts.ErrorLog); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to clear error log: %w", err)
	}

	report := &Report{}

	// Side log is recreated lazily on the first failed line; a clean
	// run leaves no log behind.
	var errLog *slog.Logger
	var errLogFile *os.File
	defer func() {
		if errLogFile != nil {
			errLogFile.Close()
		}
	}()

	w := bufio.NewWriter(out)
	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		line++
		report.LinesRead++
		token := strings.TrimSuffix(scanner.Text(), "\r")

		converted, convErr := convertLine(token, from, to)
		if convErr != nil {
			if !recoverable(convErr) {
				return nil, fmt.Errorf("line %d: %w", line, convErr)
			}
			if errLog == nil {
				errLogFile, err = os.Create(opts.ErrorLog)
				if err != nil {
					return nil, fmt.Errorf("failed to create error log: %w", err)
				}
				errLog = slog.New(slog.NewTextHandler(errLogFile, nil))
				report.ErrorLog = opts.ErrorLog
			}
			errLog.Error(convErr.Error(), "line", line)
			logger.Warn("skipping line", "line", line, "error", convErr.Error())
			report.Errors = append(report.Errors, LineError{Line: line, Msg: convErr.Error()})
			continue
		}

		if _, err := w.WriteString(converted + "\n"); err != nil {
			return nil, fmt.Errorf("failed to write output: %w", err)
		}
		report.Converted++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	if err := w.Flush(); err != nil {
		return nil, fmt.Errorf("failed to write output: %w", err)
	}

	logger.Debug("batch complete",
		"input", inputPath, "output", outputPath,
		"read", report.LinesRead, "converted", report.Converted, "skipped", len(report.Errors))

	return report, nil
}

func convertLine(token string, from, to base.Base) (string, error) {
	v, err := base.Parse(token, from)
	if err != nil {
		return "", err
	}
	return base.Format(v, to)
}

// recoverable reports whether a line-level error should be logged and
// skipped rather than aborting the batch.
func recoverable(err error) bool {
	var numErr *base.InvalidNumberError
	var baseErr *base.InvalidBaseError
	return errors.As(err, &numErr) || errors.As(err, &baseErr)
}
