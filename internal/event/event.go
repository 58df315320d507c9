package event

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/unicode/norm"

	"mediarch/internal/services"
)

const dateLayout = "20060102"

// Event is a named closed date interval. Start and End are UTC midnights.
type Event struct {
	Name  string
	Start time.Time
	End   time.Time
}

// YearMonth returns the event's start year and zero-padded year-month,
// the directory segments the grouping pass files matches under.
func (e Event) YearMonth() (string, string) {
	return fmt.Sprintf("%d", e.Start.Year()), fmt.Sprintf("%d%02d", e.Start.Year(), int(e.Start.Month()))
}

// Contains reports whether t falls inside the event, inclusive on both
// ends. Time-of-day is truncated before comparison.
func (e Event) Contains(t time.Time) bool {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(e.Start) && !day.After(e.End)
}

type document struct {
	Events []entry `toml:"events"`
}

// start and end may be 8-digit integers or strings in the definition file.
type entry struct {
	Name  string `toml:"name"`
	Start any    `toml:"start"`
	End   any    `toml:"end"`
}

// Load reads an ordered event list from a TOML document. A malformed
// document or entry is a structural error: the whole invocation aborts
// rather than skipping single entries.
func Load(path string) ([]Event, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "events", "load definitions", "unable to read events file", err)
	}

	var doc document
	if err := toml.Unmarshal(raw, &doc); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "events", "load definitions", "malformed events file", err)
	}

	events := make([]Event, 0, len(doc.Events))
	for i, e := range doc.Events {
		parsed, err := e.parse()
		if err != nil {
			return nil, services.Wrap(services.ErrConfiguration, "events", "load definitions", fmt.Sprintf("event %d invalid", i+1), err)
		}
		events = append(events, parsed)
	}
	return events, nil
}

// Match scans events in list order and returns the first one containing t.
func Match(events []Event, t time.Time) (Event, bool) {
	for _, e := range events {
		if e.Contains(t) {
			return e, true
		}
	}
	return Event{}, false
}

func (e entry) parse() (Event, error) {
	name, err := sanitizeName(e.Name)
	if err != nil {
		return Event{}, err
	}
	start, err := parseDate(e.Start)
	if err != nil {
		return Event{}, fmt.Errorf("start: %w", err)
	}
	end, err := parseDate(e.End)
	if err != nil {
		return Event{}, fmt.Errorf("end: %w", err)
	}
	if end.Before(start) {
		return Event{}, fmt.Errorf("range %s..%s ends before it starts", start.Format(dateLayout), end.Format(dateLayout))
	}
	return Event{Name: name, Start: start, End: end}, nil
}

func parseDate(value any) (time.Time, error) {
	var text string
	switch v := value.(type) {
	case nil:
		return time.Time{}, fmt.Errorf("date is required")
	case string:
		text = strings.TrimSpace(v)
	case int64:
		text = fmt.Sprintf("%08d", v)
	default:
		return time.Time{}, fmt.Errorf("date must be an 8-digit YYYYMMDD integer or string, got %T", value)
	}
	parsed, err := time.ParseInLocation(dateLayout, text, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q is not YYYYMMDD: %w", text, err)
	}
	return parsed, nil
}

// sanitizeName verifies the event name is safe to use as a directory
// segment and normalizes it to NFC so the same name always produces the
// same directory regardless of how the definition file was composed.
func sanitizeName(name string) (string, error) {
	name = norm.NFC.String(strings.TrimSpace(name))
	if name == "" {
		return "", fmt.Errorf("name is required")
	}
	if name == "." || name == ".." {
		return "", fmt.Errorf("name %q is not a valid directory segment", name)
	}
	if strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return "", fmt.Errorf("name %q contains path separators", name)
	}
	return name, nil
}
