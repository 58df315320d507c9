package dedupe

import (
	"log/slog"
	"os"
	"sort"

	"mediarch/internal/logging"
)

// Finder groups files into exact duplicate sets and removes the losers.
type Finder struct {
	logger   *slog.Logger
	hashFile func(string) (string, error)
	dryRun   bool
}

// NewFinder constructs a Finder. logger may be nil.
func NewFinder(logger *slog.Logger, dryRun bool) *Finder {
	return &Finder{
		logger:   logging.NewComponentLogger(logger, "dedupe"),
		hashFile: HashFile,
		dryRun:   dryRun,
	}
}

// FindDuplicates partitions files by size, hashes only size-colliding
// files, and returns digest -> group for every group of two or more.
// Per-file stat or hash errors are logged and that file is excluded; the
// run continues.
func (f *Finder) FindDuplicates(files []string) map[string][]string {
	sizeGroups := make(map[int64][]string)
	var sizes []int64
	for _, path := range files {
		info, err := os.Stat(path)
		if err != nil {
			f.logger.Error("stat failed", logging.String("path", path), logging.Error(err))
			continue
		}
		if _, seen := sizeGroups[info.Size()]; !seen {
			sizes = append(sizes, info.Size())
		}
		sizeGroups[info.Size()] = append(sizeGroups[info.Size()], path)
	}

	hashGroups := make(map[string][]string)
	for _, size := range sizes {
		group := sizeGroups[size]
		// A unique size cannot be a duplicate; hashing it is wasted work.
		if len(group) < 2 {
			continue
		}
		for _, path := range group {
			digest, err := f.hashFile(path)
			if err != nil {
				f.logger.Error("hash failed", logging.String("path", path), logging.Error(err))
				continue
			}
			hashGroups[digest] = append(hashGroups[digest], path)
		}
	}

	duplicates := make(map[string][]string)
	for digest, group := range hashGroups {
		if len(group) > 1 {
			duplicates[digest] = group
		}
	}
	return duplicates
}

// Stats summarizes a deduplication run.
type Stats struct {
	Groups           int
	Duplicates       int
	Removed          int
	ReclaimableBytes int64
}

// DeleteDuplicates resolves a survivor per group and unlinks the rest.
// Dry-run reports the same decisions without touching the filesystem, so
// Removed stays zero while Duplicates and ReclaimableBytes still reflect
// the would-be deletions. Groups are processed in sorted digest order so
// logs are reproducible.
func (f *Finder) DeleteDuplicates(duplicates map[string][]string) Stats {
	digests := make([]string, 0, len(duplicates))
	for digest := range duplicates {
		digests = append(digests, digest)
	}
	sort.Strings(digests)

	stats := Stats{Groups: len(duplicates)}
	for _, digest := range digests {
		resolution := ResolveSurvivor(duplicates[digest])
		f.logger.Info("keeping original",
			logging.String("digest", digest),
			logging.String("path", resolution.Keep),
			logging.Int("duplicates", len(resolution.Remove)),
		)
		for _, path := range resolution.Remove {
			stats.Duplicates++
			if info, err := os.Stat(path); err == nil {
				stats.ReclaimableBytes += info.Size()
			}
			if f.dryRun {
				f.logger.Info("would delete duplicate", logging.String("path", path))
				continue
			}
			if err := os.Remove(path); err != nil {
				f.logger.Error("delete failed", logging.String("path", path), logging.Error(err))
				continue
			}
			f.logger.Info("deleted duplicate", logging.String("path", path))
			stats.Removed++
		}
	}

	f.logger.Info("deduplication finished",
		logging.Int("groups", stats.Groups),
		logging.Int("removed", stats.Removed),
		logging.Bool("dry_run", f.dryRun),
	)
	return stats
}
