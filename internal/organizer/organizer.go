package organizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"mediarch/internal/capturedate"
	"mediarch/internal/fileutil"
	"mediarch/internal/logging"
	"mediarch/internal/media"
	"mediarch/internal/services"
)

// Organizer files media into the year/month archive tree.
type Organizer struct {
	classifier *media.Classifier
	extractor  *capturedate.Extractor
	logger     *slog.Logger
	dryRun     bool
}

// Summary reports the outcome of an organize pass.
type Summary struct {
	Organized int
	Skipped   int
}

// New constructs an organizer. logger may be nil.
func New(classifier *media.Classifier, extractor *capturedate.Extractor, logger *slog.Logger, dryRun bool) *Organizer {
	return &Organizer{
		classifier: classifier,
		extractor:  extractor,
		logger:     logging.NewComponentLogger(logger, "organizer"),
		dryRun:     dryRun,
	}
}

// Run organizes every regular file directly inside sourceRoot into
// targetRoot. Files are visited in name order so dry-run logs are
// reproducible. A missing source directory aborts; per-file failures are
// logged, counted as skipped, and the pass continues.
func (o *Organizer) Run(ctx context.Context, sourceRoot, targetRoot string) (Summary, error) {
	entries, err := os.ReadDir(sourceRoot)
	if err != nil {
		return Summary{}, services.Wrap(services.ErrConfiguration, "organize", "read source", "unable to read source directory", err)
	}

	var summary Summary
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		path := filepath.Join(sourceRoot, entry.Name())
		moved, err := o.Process(ctx, path, targetRoot)
		if err != nil {
			o.logger.Error("organize failed", logging.String("path", path), logging.Error(err))
			summary.Skipped++
			continue
		}
		if moved {
			summary.Organized++
			if summary.Organized%100 == 0 {
				o.logger.Info("organize progress", logging.Int("organized", summary.Organized))
			}
		} else {
			summary.Skipped++
		}
	}

	o.logger.Info("organize finished",
		logging.Int("organized", summary.Organized),
		logging.Int("skipped", summary.Skipped),
		logging.Bool("dry_run", o.dryRun),
	)
	return summary, nil
}

// Process files a single path under targetRoot. It returns true when a
// move or copy occurred (or would occur under dry-run); files without a
// capture date, with an unknown extension, or already in place return
// false without error.
func (o *Organizer) Process(ctx context.Context, path, targetRoot string) (bool, error) {
	date, err := o.extractor.Extract(ctx, path)
	if err != nil {
		if errors.Is(err, capturedate.ErrNoDate) {
			o.logger.Info("skipping file without capture date", logging.String("path", path))
			return false, nil
		}
		return false, err
	}

	year := strconv.Itoa(date.Year())
	yearMonth := fmt.Sprintf("%d%02d", date.Year(), int(date.Month()))

	var destDir, action string
	switch o.classifier.Classify(path) {
	case media.KindPhoto:
		destDir = filepath.Join(targetRoot, year, yearMonth)
		action = "move"
	case media.KindVideo:
		// Videos are copied, not moved: the source stays available.
		destDir = filepath.Join(targetRoot, year, yearMonth, "video")
		action = "copy"
	default:
		o.logger.Info("skipping unknown media type", logging.String("path", path))
		return false, nil
	}

	dest := filepath.Join(destDir, filepath.Base(path))
	same, err := samePath(path, dest)
	if err != nil {
		return false, err
	}
	if same {
		o.logger.Debug("already organized", logging.String("path", path))
		return false, nil
	}

	if o.dryRun {
		o.logger.Info("would "+action+" file",
			logging.String("path", path),
			logging.String("dest", dest),
		)
		return true, nil
	}

	if err := fileutil.EnsureDir(destDir); err != nil {
		return false, err
	}
	if action == "move" {
		if err := fileutil.MoveFile(path, dest); err != nil {
			return false, err
		}
		o.logger.Info("moved photo", logging.String("dest", dest))
	} else {
		if err := fileutil.CopyFilePreserveTimes(path, dest); err != nil {
			return false, err
		}
		o.logger.Info("copied video", logging.String("dest", dest))
	}
	return true, nil
}

func samePath(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, err
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, err
	}
	return absA == absB, nil
}
