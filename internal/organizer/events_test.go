package organizer

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"mediarch/internal/event"
	"mediarch/internal/testsupport"
)

func trip() []event.Event {
	return []event.Event{{
		Name:  "trip",
		Start: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC),
	}}
}

func TestGroupByEventsMovesMatchingFile(t *testing.T) {
	o := newTestOrganizer(false)
	target := t.TempDir()
	path := filepath.Join(target, "2024", "202406", "IMG_20240615.jpg")
	testsupport.WriteFileWithTime(t, path, "photo", time.Now())

	grouped, err := o.GroupByEvents(context.Background(), target, trip())
	if err != nil {
		t.Fatal(err)
	}
	if grouped != 1 {
		t.Fatalf("grouped = %d, want 1", grouped)
	}

	dest := filepath.Join(target, "2024", "202406", "trip", "IMG_20240615.jpg")
	if _, err := os.Stat(dest); err != nil {
		t.Fatalf("event destination missing: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("source should be gone after move, stat err: %v", err)
	}
}

func TestGroupByEventsLeavesNonMatchingFile(t *testing.T) {
	o := newTestOrganizer(false)
	target := t.TempDir()
	path := filepath.Join(target, "2024", "202406", "IMG_20240625.jpg")
	testsupport.WriteFileWithTime(t, path, "photo", time.Now())

	grouped, err := o.GroupByEvents(context.Background(), target, trip())
	if err != nil {
		t.Fatal(err)
	}
	if grouped != 0 {
		t.Fatalf("grouped = %d, want 0", grouped)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("non-matching file must stay in place: %v", err)
	}
}

func TestGroupByEventsSkipsNonNumericLevels(t *testing.T) {
	o := newTestOrganizer(false)
	target := t.TempDir()

	// Files under non-numeric directories must never be visited.
	stray := filepath.Join(target, "misc", "202406", "IMG_20240615.jpg")
	testsupport.WriteFileWithTime(t, stray, "photo", time.Now())
	deep := filepath.Join(target, "2024", "notes", "IMG_20240615.jpg")
	testsupport.WriteFileWithTime(t, deep, "photo", time.Now())
	// A file at year level is not two levels down.
	shallow := filepath.Join(target, "2024", "IMG_20240615.jpg")
	testsupport.WriteFileWithTime(t, shallow, "photo", time.Now())

	grouped, err := o.GroupByEvents(context.Background(), target, trip())
	if err != nil {
		t.Fatal(err)
	}
	if grouped != 0 {
		t.Fatalf("grouped = %d, want 0", grouped)
	}
	for _, path := range []string{stray, deep, shallow} {
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("file moved unexpectedly: %v", err)
		}
	}
}

func TestGroupByEventsFirstMatchWins(t *testing.T) {
	o := newTestOrganizer(false)
	target := t.TempDir()
	path := filepath.Join(target, "2024", "202406", "IMG_20240615.jpg")
	testsupport.WriteFileWithTime(t, path, "photo", time.Now())

	events := []event.Event{
		{Name: "first", Start: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), End: time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)},
		{Name: "second", Start: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), End: time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)},
	}

	if _, err := o.GroupByEvents(context.Background(), target, events); err != nil {
		t.Fatal(err)
	}
	dest := filepath.Join(target, "2024", "202406", "first", "IMG_20240615.jpg")
	if _, err := os.Stat(dest); err != nil {
		t.Fatalf("overlap must resolve to the first listed event: %v", err)
	}
}

func TestGroupByEventsDryRunLeavesFilesystemUntouched(t *testing.T) {
	o := newTestOrganizer(true)
	target := t.TempDir()
	path := filepath.Join(target, "2024", "202406", "IMG_20240615.jpg")
	testsupport.WriteFileWithTime(t, path, "photo", time.Now())

	before := testsupport.TreeSnapshot(t, target)
	grouped, err := o.GroupByEvents(context.Background(), target, trip())
	if err != nil {
		t.Fatal(err)
	}
	if grouped != 1 {
		t.Fatal("dry run must report the same logical decision")
	}
	after := testsupport.TreeSnapshot(t, target)
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("dry run mutated target tree: %v != %v", before, after)
	}
}

func TestGroupByEventsIdempotent(t *testing.T) {
	o := newTestOrganizer(false)
	target := t.TempDir()
	path := filepath.Join(target, "2024", "202406", "IMG_20240615.jpg")
	testsupport.WriteFileWithTime(t, path, "photo", time.Now())

	if _, err := o.GroupByEvents(context.Background(), target, trip()); err != nil {
		t.Fatal(err)
	}
	before := testsupport.TreeSnapshot(t, target)

	grouped, err := o.GroupByEvents(context.Background(), target, trip())
	if err != nil {
		t.Fatal(err)
	}
	if grouped != 0 {
		t.Fatalf("second run grouped %d files, want 0", grouped)
	}
	after := testsupport.TreeSnapshot(t, target)
	if !reflect.DeepEqual(before, after) {
		t.Fatal("second run changed the tree")
	}
}

func TestGroupByEventsMissingTargetAborts(t *testing.T) {
	o := newTestOrganizer(false)
	_, err := o.GroupByEvents(context.Background(), filepath.Join(t.TempDir(), "absent"), trip())
	if err == nil {
		t.Fatal("missing target directory must abort the invocation")
	}
}
