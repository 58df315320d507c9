package capturedate

import (
	"context"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"mediarch/internal/logging"
)

// First contiguous 8-digit run in the base name, read as YYYYMMDD.
var filenameDatePattern = regexp.MustCompile(`(\d{4})(\d{2})(\d{2})`)

func (e *Extractor) fromFilename(_ context.Context, path string) (time.Time, bool) {
	match := filenameDatePattern.FindStringSubmatch(filepath.Base(path))
	if match == nil {
		return time.Time{}, false
	}

	year, _ := strconv.Atoi(match[1])
	month, _ := strconv.Atoi(match[2])
	day, _ := strconv.Atoi(match[3])

	ts, ok := calendarDate(year, month, day)
	if !ok {
		// A pattern match is not terminal: out-of-range components fall
		// through to the remaining strategies.
		e.logger.Debug("filename date out of range",
			logging.String("path", path),
			logging.String("candidate", match[0]),
		)
		return time.Time{}, false
	}
	return ts, true
}
