package capturedate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"mediarch/internal/logging"
	"mediarch/internal/media"
)

// ErrNoDate reports that no strategy produced a usable capture date.
var ErrNoDate = errors.New("no capture date found")

// Candidate years outside this window are rejected and the cascade moves on.
const (
	minYear = 1970
	maxYear = 2050
)

// Extractor resolves capture dates through the strategy cascade.
type Extractor struct {
	classifier *media.Classifier
	logger     *slog.Logger
	ffprobe    string
	strategies []strategy
}

type strategy struct {
	name    string
	applies func(media.Kind) bool
	extract func(ctx context.Context, path string) (time.Time, bool)
}

// New builds an extractor. ffprobeBinary may be empty to use "ffprobe"
// from PATH; logger may be nil.
func New(classifier *media.Classifier, ffprobeBinary string, logger *slog.Logger) *Extractor {
	e := &Extractor{
		classifier: classifier,
		logger:     logging.NewComponentLogger(logger, "capturedate"),
		ffprobe:    ffprobeBinary,
	}
	e.strategies = []strategy{
		{name: "filename", extract: e.fromFilename},
		{name: "exif", applies: isPhoto, extract: e.fromPhotoMetadata},
		{name: "video", applies: isVideo, extract: e.fromVideoMetadata},
		{name: "mtime", extract: e.fromModTime},
	}
	return e
}

// Extract returns the best-effort capture date for path. A wrapped
// ErrNoDate means every applicable strategy came up empty; callers treat
// that as an expected per-file outcome, not a batch failure.
func (e *Extractor) Extract(ctx context.Context, path string) (time.Time, error) {
	kind := e.classifier.Classify(path)
	for _, s := range e.strategies {
		if s.applies != nil && !s.applies(kind) {
			continue
		}
		if ts, ok := s.extract(ctx, path); ok {
			e.logger.Debug("capture date resolved",
				logging.String("path", path),
				logging.String("strategy", s.name),
				logging.Time("capture_date", ts),
			)
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %s", ErrNoDate, path)
}

func (e *Extractor) fromModTime(_ context.Context, path string) (time.Time, bool) {
	info, err := os.Stat(path)
	if err != nil {
		e.logger.Debug("stat failed", logging.String("path", path), logging.Error(err))
		return time.Time{}, false
	}
	ts := info.ModTime()
	if !inBounds(ts) {
		e.logger.Debug("mtime out of bounds", logging.String("path", path), logging.Time("mtime", ts))
		return time.Time{}, false
	}
	return ts, true
}

func isPhoto(kind media.Kind) bool { return kind == media.KindPhoto }

func isVideo(kind media.Kind) bool { return kind == media.KindVideo }

func inBounds(t time.Time) bool {
	return t.Year() >= minYear && t.Year() <= maxYear
}

// calendarDate validates components and builds a UTC midnight timestamp.
// The round-trip comparison rejects day overflow such as 20240230, which
// time.Date would silently normalize into March.
func calendarDate(year, month, day int) (time.Time, bool) {
	if year < minYear || year > maxYear || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	ts := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if ts.Year() != year || int(ts.Month()) != month || ts.Day() != day {
		return time.Time{}, false
	}
	return ts, true
}
