package capturedate

import (
	"context"
	"strings"
	"time"

	"mediarch/internal/logging"
	"mediarch/internal/media/ffprobe"
)

// creation_time is ISO-8601, usually with a trailing Z and fractional
// seconds; some muxers use a space separator.
var creationTimeLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

func (e *Extractor) fromVideoMetadata(ctx context.Context, path string) (time.Time, bool) {
	result, err := ffprobe.Inspect(ctx, e.ffprobe, path)
	if err != nil {
		// Probe failures (missing binary, unreadable container) are
		// swallowed; the cascade proceeds.
		e.logger.Debug("ffprobe failed", logging.String("path", path), logging.Error(err))
		return time.Time{}, false
	}

	value := result.CreationTime()
	if value == "" {
		return time.Time{}, false
	}
	ts, ok := parseCreationTime(value)
	if !ok {
		e.logger.Debug("unparsable creation_time", logging.String("path", path), logging.String("value", value))
	}
	return ts, ok
}

func parseCreationTime(value string) (time.Time, bool) {
	value = strings.TrimSuffix(strings.TrimSpace(value), "Z")
	for _, layout := range creationTimeLayouts {
		if ts, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			if !inBounds(ts) {
				return time.Time{}, false
			}
			return ts, true
		}
	}
	return time.Time{}, false
}
