package organizer

import (
	"context"
	"os"
	"path/filepath"

	"mediarch/internal/event"
	"mediarch/internal/fileutil"
	"mediarch/internal/logging"
	"mediarch/internal/services"
)

// GroupByEvents re-files already-organized media into event subfolders.
//
// Exactly two directory levels below targetRoot are traversed, and only
// entries with purely numeric names (year, then year-month) are descended
// into; anything else is skipped. Each file's capture date is matched
// against the event list in order, first match wins, and the file moves
// to target/<startYear>/<startYearMonth>/<eventName>/. Files matching no
// event are left untouched. Returns the number of files grouped (or that
// would be grouped under dry-run).
func (o *Organizer) GroupByEvents(ctx context.Context, targetRoot string, events []event.Event) (int, error) {
	years, err := os.ReadDir(targetRoot)
	if err != nil {
		return 0, services.Wrap(services.ErrConfiguration, "events", "read target", "unable to read target directory", err)
	}

	grouped := 0
	for _, yearEntry := range years {
		if !yearEntry.IsDir() || !isNumeric(yearEntry.Name()) {
			continue
		}
		yearDir := filepath.Join(targetRoot, yearEntry.Name())

		months, err := os.ReadDir(yearDir)
		if err != nil {
			o.logger.Error("read year directory failed", logging.String("path", yearDir), logging.Error(err))
			continue
		}
		for _, monthEntry := range months {
			if !monthEntry.IsDir() || !isNumeric(monthEntry.Name()) {
				continue
			}
			monthDir := filepath.Join(yearDir, monthEntry.Name())

			files, err := os.ReadDir(monthDir)
			if err != nil {
				o.logger.Error("read month directory failed", logging.String("path", monthDir), logging.Error(err))
				continue
			}
			for _, fileEntry := range files {
				if !fileEntry.Type().IsRegular() {
					continue
				}
				path := filepath.Join(monthDir, fileEntry.Name())
				if o.groupFile(ctx, targetRoot, path, events) {
					grouped++
				}
			}
		}
	}

	o.logger.Info("event grouping finished",
		logging.Int("grouped", grouped),
		logging.Bool("dry_run", o.dryRun),
	)
	return grouped, nil
}

func (o *Organizer) groupFile(ctx context.Context, targetRoot, path string, events []event.Event) bool {
	date, err := o.extractor.Extract(ctx, path)
	if err != nil {
		o.logger.Debug("skipping file without capture date", logging.String("path", path))
		return false
	}

	matched, ok := event.Match(events, date)
	if !ok {
		return false
	}

	year, yearMonth := matched.YearMonth()
	destDir := filepath.Join(targetRoot, year, yearMonth, matched.Name)
	dest := filepath.Join(destDir, filepath.Base(path))

	if o.dryRun {
		o.logger.Info("would move file into event",
			logging.String("path", path),
			logging.String("dest", dest),
			logging.String("event", matched.Name),
		)
		return true
	}

	if err := fileutil.EnsureDir(destDir); err != nil {
		o.logger.Error("create event directory failed", logging.String("path", destDir), logging.Error(err))
		return false
	}
	if err := fileutil.MoveFile(path, dest); err != nil {
		o.logger.Error("move into event failed", logging.String("path", path), logging.Error(err))
		return false
	}
	o.logger.Info("moved file into event",
		logging.String("dest", dest),
		logging.String("event", matched.Name),
	)
	return true
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
