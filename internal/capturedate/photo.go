package capturedate

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"

	"mediarch/internal/logging"
)

const exifDateTimeLayout = "2006:01:02 15:04:05"

// EXIF tag preference order: capture time, digitization time, then the
// generic timestamp.
var exifDateFields = []exif.FieldName{exif.DateTimeOriginal, exif.DateTimeDigitized, exif.DateTime}

func (e *Extractor) fromPhotoMetadata(_ context.Context, path string) (time.Time, bool) {
	f, err := os.Open(path)
	if err != nil {
		e.logger.Debug("open for exif failed", logging.String("path", path), logging.Error(err))
		return time.Time{}, false
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		// Corrupt or EXIF-less containers are a "no result", never fatal.
		e.logger.Debug("exif decode failed", logging.String("path", path), logging.Error(err))
		return time.Time{}, false
	}

	for _, field := range exifDateFields {
		tag, err := x.Get(field)
		if err != nil {
			continue
		}
		value, err := tag.StringVal()
		if err != nil {
			continue
		}
		if ts, ok := parseEXIFDateTime(value); ok {
			return ts, true
		}
	}
	return time.Time{}, false
}

func parseEXIFDateTime(value string) (time.Time, bool) {
	ts, err := time.ParseInLocation(exifDateTimeLayout, strings.TrimSpace(value), time.Local)
	if err != nil || !inBounds(ts) {
		return time.Time{}, false
	}
	return ts, true
}
