package dedupe

import (
	"path/filepath"
	"sort"
	"strings"
)

// Resolution designates the surviving member of a duplicate group.
type Resolution struct {
	Keep   string
	Remove []string
}

// ResolveSurvivor picks which member of a duplicate group to keep.
//
// The most frequent filename stem (trailing underscores stripped, ties
// broken by first appearance) is treated as the original stem. Members
// whose stem matches it and that are not copy variants are keep
// candidates; the lexicographically smallest candidate wins. When every
// member looks like a copy variant the smallest path in the whole group
// wins instead.
func ResolveSurvivor(group []string) Resolution {
	if len(group) == 0 {
		return Resolution{}
	}

	originalStem := majorityStem(group)
	ext := strings.TrimPrefix(filepath.Ext(group[0]), ".")

	var candidates []string
	for _, path := range group {
		stem := cleanStem(path)
		if stem == originalStem && !isCopyVariant(path, originalStem, ext) {
			candidates = append(candidates, path)
		}
	}

	var keep string
	if len(candidates) > 0 {
		keep = minPath(candidates)
	} else {
		keep = minPath(group)
	}

	remove := make([]string, 0, len(group)-1)
	for _, path := range group {
		if path != keep {
			remove = append(remove, path)
		}
	}
	return Resolution{Keep: keep, Remove: remove}
}

// isCopyVariant reports whether the file's name marks it as a secondary
// copy of the original stem rather than the originally named file.
func isCopyVariant(path, originalStem, ext string) bool {
	name := strings.ToLower(filepath.Base(path))
	return strings.Contains(name, "copy") ||
		name == originalStem+"_."+ext ||
		strings.HasPrefix(name, originalStem+"_copy") ||
		strings.HasPrefix(name, "copy_of_"+originalStem)
}

func cleanStem(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return strings.TrimRight(stem, "_")
}

func majorityStem(group []string) string {
	counts := make(map[string]int, len(group))
	var order []string
	for _, path := range group {
		stem := cleanStem(path)
		if _, seen := counts[stem]; !seen {
			order = append(order, stem)
		}
		counts[stem]++
	}

	best := order[0]
	for _, stem := range order[1:] {
		if counts[stem] > counts[best] {
			best = stem
		}
	}
	return best
}

func minPath(paths []string) string {
	sorted := make([]string, len(paths))
	copy(sorted, paths)
	sort.Strings(sorted)
	return sorted[0]
}
