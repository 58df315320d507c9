// Package organizer relocates media files into the year/month archive
// tree and re-files organized media into named event folders.
//
// Photos are moved; videos are copied with their metadata preserved so
// the source copy stays available. Both passes are strictly sequential,
// skip problem files rather than aborting, and honor dry-run by reporting
// the same decisions without filesystem side effects.
package organizer
