// Package capturedate assigns a best-effort capture timestamp to a media
// file.
//
// Strategies run as an explicit ordered cascade: filename pattern,
// embedded photo metadata, embedded video metadata, filesystem
// modification time. The first strategy producing an in-bounds date wins;
// any strategy failure falls through to the next. The ordering trades
// precision for availability: a date embedded in the filename reflects
// explicit user or device intent, embedded metadata is next most
// trustworthy, and filesystem timestamps (rewritten by copies and
// transfers) are the last resort.
package capturedate
