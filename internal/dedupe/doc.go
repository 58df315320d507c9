// Package dedupe finds and removes byte-identical photos.
//
// Detection runs in two passes: files are first partitioned by size, and
// only files whose size collides with another are hashed. Within a size
// partition, identical SHA-256 digests mark a duplicate group. One member
// of each group survives; the survivor is chosen to preserve the most
// original-looking filename (majority stem, not a copy variant), falling
// back to the lexicographically smallest path.
//
// Video deduplication is not implemented and is rejected up front with
// services.ErrUnsupported.
package dedupe
