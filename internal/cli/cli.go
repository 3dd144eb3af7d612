package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jdtait/bincal/internal/calendar"
	"github.com/jdtait/bincal/internal/config"
	"github.com/jdtait/bincal/internal/logger"
	"github.com/jdtait/bincal/internal/record"
	"github.com/jdtait/bincal/internal/scraper"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// errLogger reports non-fatal failures on stderr, keeping stdout for
// progress and the run summary.
var errLogger = logger.New(logger.LevelError, os.Stderr)

// NewRootCmd creates the root command
func NewRootCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "bincal",
		Short: "Generate an iCalendar file of upcoming Shropshire bin collections",
		Long: `Fetches the Shropshire council bin-collection calendar page, extracts
upcoming collection dates, and writes them to an iCalendar (.ics) file in
the working directory. One-shot: run, fetch, parse, write, exit.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg)
		},
	}
}

// run executes the whole pipeline for one configuration. A nil return
// means the output file question is settled: either events were written
// or a valid empty calendar was attempted.
func run(cfg *config.Config) error {
	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("loading timezone %q: %w", cfg.Timezone, err)
	}

	logger.Info("Fetching collection calendar page", logger.Fields{
		"url": cfg.URL,
	})

	cells, err := scraper.New(cfg).FetchCells()
	if err != nil {
		return fmt.Errorf("fetching calendar cells: %w", err)
	}

	logger.Info("Found calendar day cells", logger.Fields{
		"count": len(cells),
	})

	counters := logger.NewCounters()
	parser := record.NewParser(cfg.DateLayout)
	today := time.Now().In(loc)

	records := make([]*record.Record, 0, len(cells))
	for _, cell := range cells {
		rec, skip := parser.Parse(cell, today)
		counters.Incr(skip.String())

		switch skip {
		case record.SkipNone:
			records = append(records, rec)
			logger.Info("Accepted collection", logger.Fields{
				"type": rec.Type,
				"date": rec.Date.Format("2006-01-02"),
			})
		case record.SkipPastMarker, record.SkipPastDate:
			// Past cells are expected on a month-view calendar.
			logger.Debug("Skipping past cell", logger.Fields{
				"reason":    skip.String(),
				"date_text": cell.DateText,
			})
		default:
			logger.Warn("Skipping cell", logger.Fields{
				"reason":    skip.String(),
				"date_text": cell.DateText,
			})
		}
	}

	cal := calendar.Build(records, time.Now())

	if len(records) > 0 {
		if err := calendar.WriteFile(cal, cfg.OutputPath); err != nil {
			return fmt.Errorf("writing calendar: %w", err)
		}
		logger.Info("Wrote calendar file", logger.Fields{
			"path":   cfg.OutputPath,
			"events": len(records),
		})
	} else {
		// Keep the published path alive with a valid empty calendar so
		// consumers polling it never see a missing file. A write failure
		// here is reported but does not fail the run.
		logger.Info("No future collection dates parsed, writing empty calendar", logger.Fields{
			"path": cfg.OutputPath,
		})
		if err := calendar.WriteFile(cal, cfg.OutputPath); err != nil {
			errLogger.Error("Writing empty calendar file failed", logger.Fields{
				"path": cfg.OutputPath,
			}, err)
		}
	}

	logger.Info("Run complete", logger.Fields{
		"cells":    len(cells),
		"accepted": len(records),
		"skips":    counters.Snapshot(),
	})

	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd(config.Default()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
	os.Exit(ExitSuccess)
}
