// Package media classifies filesystem entries into photo, video, or
// unknown kinds based on their extension.
package media
