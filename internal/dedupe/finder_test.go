package dedupe

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"mediarch/internal/media"
	"mediarch/internal/services"
	"mediarch/internal/testsupport"
)

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestHashFileDeterministic(t *testing.T) {
	dir := t.TempDir()
	a := write(t, dir, "a.jpg", "same bytes")
	b := write(t, dir, "b.jpg", "same bytes")
	c := write(t, dir, "c.jpg", "same byteZ")

	ha, err := HashFile(a)
	if err != nil {
		t.Fatal(err)
	}
	hb, err := HashFile(b)
	if err != nil {
		t.Fatal(err)
	}
	hc, err := HashFile(c)
	if err != nil {
		t.Fatal(err)
	}
	if ha != hb {
		t.Fatal("identical bytes must yield identical digests")
	}
	if ha == hc {
		t.Fatal("differing bytes must yield differing digests")
	}
}

func TestHashFileUnreadable(t *testing.T) {
	if _, err := HashFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected error for unreadable file")
	}
}

func TestFindDuplicatesSkipsUniqueSizes(t *testing.T) {
	dir := t.TempDir()
	dup1 := write(t, dir, "dup1.jpg", "duplicate-bytes")
	dup2 := write(t, dir, "dup2.jpg", "duplicate-bytes")
	same := write(t, dir, "samesize.jpg", "different-bytes") // size collides, content differs
	unique := write(t, dir, "unique.jpg", "short")

	finder := NewFinder(nil, false)
	hashed := 0
	finder.hashFile = func(path string) (string, error) {
		hashed++
		return HashFile(path)
	}

	groups := finder.FindDuplicates([]string{dup1, dup2, same, unique})

	if hashed != 3 {
		t.Fatalf("hashed %d files, want 3 (singleton sizes must never be hashed)", hashed)
	}
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	for _, group := range groups {
		if len(group) != 2 {
			t.Fatalf("group = %v", group)
		}
	}
}

func TestFindDuplicatesExcludesHashFailures(t *testing.T) {
	dir := t.TempDir()
	a := write(t, dir, "a.jpg", "payload")
	b := write(t, dir, "b.jpg", "payload")
	c := write(t, dir, "c.jpg", "payl0ad")

	finder := NewFinder(nil, false)
	finder.hashFile = func(path string) (string, error) {
		if filepath.Base(path) == "b.jpg" {
			return "", errors.New("boom")
		}
		return HashFile(path)
	}

	groups := finder.FindDuplicates([]string{a, b, c})
	if len(groups) != 0 {
		t.Fatalf("failed hash should drop the file from its group: %v", groups)
	}
}

func TestDeleteDuplicatesRemovesLosers(t *testing.T) {
	dir := t.TempDir()
	keep := write(t, dir, "IMG_1.jpg", "bytes")
	lose := write(t, dir, "IMG_1_copy.jpg", "bytes")

	finder := NewFinder(nil, false)
	groups := finder.FindDuplicates([]string{keep, lose})
	if len(groups) != 1 {
		t.Fatalf("groups = %v", groups)
	}

	stats := finder.DeleteDuplicates(groups)
	if stats.Removed != 1 {
		t.Fatalf("removed = %d, want 1", stats.Removed)
	}
	if stats.Groups != 1 || stats.Duplicates != 1 {
		t.Fatalf("stats = %+v", stats)
	}
	if stats.ReclaimableBytes != int64(len("bytes")) {
		t.Fatalf("reclaimable = %d", stats.ReclaimableBytes)
	}
	if _, err := os.Stat(keep); err != nil {
		t.Fatalf("survivor deleted: %v", err)
	}
	if _, err := os.Stat(lose); !os.IsNotExist(err) {
		t.Fatalf("loser still present: %v", err)
	}
}

func TestDeleteDuplicatesDryRunLeavesFilesystemUntouched(t *testing.T) {
	dir := t.TempDir()
	a := write(t, dir, "IMG_1.jpg", "bytes")
	b := write(t, dir, "IMG_1_copy.jpg", "bytes")

	finder := NewFinder(nil, true)
	groups := finder.FindDuplicates([]string{a, b})
	stats := finder.DeleteDuplicates(groups)

	if stats.Removed != 0 {
		t.Fatalf("dry run removed %d files", stats.Removed)
	}
	if stats.Duplicates != 1 {
		t.Fatalf("dry run must still report the would-be deletion: %+v", stats)
	}
	for _, path := range []string{a, b} {
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("dry run mutated filesystem: %v", err)
		}
	}
}

func TestDeleteDuplicatesSurvivesUnlinkFailure(t *testing.T) {
	dir := t.TempDir()
	a := write(t, dir, "IMG_1.jpg", "bytes")
	b := write(t, dir, "IMG_1_copy.jpg", "bytes")
	c := write(t, dir, "IMG_1_copy2.jpg", "bytes")

	finder := NewFinder(nil, false)
	groups := finder.FindDuplicates([]string{a, b, c})

	// Delete one loser ahead of time to force an unlink failure.
	if err := os.Remove(b); err != nil {
		t.Fatal(err)
	}
	stats := finder.DeleteDuplicates(groups)
	if stats.Removed != 1 {
		t.Fatalf("removed = %d, want 1 (failure must not abort the batch)", stats.Removed)
	}
}

func TestCollectFilesPhotosOnly(t *testing.T) {
	dir := t.TempDir()
	classifier := media.NewClassifier(nil, nil)
	testsupport.WriteFile(t, filepath.Join(dir, "a.jpg"), 10)
	testsupport.WriteFile(t, filepath.Join(dir, "nested", "b.png"), 10)
	testsupport.WriteFile(t, filepath.Join(dir, "clip.mp4"), 10)
	testsupport.WriteFile(t, filepath.Join(dir, "notes.txt"), 10)

	files, err := CollectFiles(dir, media.KindPhoto, classifier)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Fatalf("collected %v", files)
	}
}

func TestCollectFilesRejectsVideos(t *testing.T) {
	classifier := media.NewClassifier(nil, nil)
	_, err := CollectFiles(t.TempDir(), media.KindVideo, classifier)
	if !errors.Is(err, services.ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}
