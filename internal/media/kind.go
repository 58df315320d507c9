package media

import (
	"path/filepath"
	"strings"
)

// Kind identifies the broad media category of a file.
type Kind int

const (
	KindUnknown Kind = iota
	KindPhoto
	KindVideo
)

func (k Kind) String() string {
	switch k {
	case KindPhoto:
		return "photo"
	case KindVideo:
		return "video"
	default:
		return "unknown"
	}
}

// DefaultPhotoExtensions lists the photo extensions recognized when the
// configuration does not override them.
func DefaultPhotoExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".heic", ".tiff", ".dng"}
}

// DefaultVideoExtensions lists the video extensions recognized when the
// configuration does not override them.
func DefaultVideoExtensions() []string {
	return []string{".mp4", ".mov", ".avi", ".mkv"}
}

// Classifier resolves file paths to media kinds using two disjoint
// case-insensitive extension sets.
type Classifier struct {
	photo map[string]struct{}
	video map[string]struct{}
}

// NewClassifier builds a classifier from explicit extension lists. Empty
// lists fall back to the defaults. Extensions are normalized to a leading
// dot and lower case.
func NewClassifier(photoExts, videoExts []string) *Classifier {
	if len(photoExts) == 0 {
		photoExts = DefaultPhotoExtensions()
	}
	if len(videoExts) == 0 {
		videoExts = DefaultVideoExtensions()
	}
	return &Classifier{
		photo: buildSet(photoExts),
		video: buildSet(videoExts),
	}
}

// Classify returns the media kind for the given path.
func (c *Classifier) Classify(path string) Kind {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return KindUnknown
	}
	if _, ok := c.photo[ext]; ok {
		return KindPhoto
	}
	if _, ok := c.video[ext]; ok {
		return KindVideo
	}
	return KindUnknown
}

func (c *Classifier) IsPhoto(path string) bool { return c.Classify(path) == KindPhoto }

func (c *Classifier) IsVideo(path string) bool { return c.Classify(path) == KindVideo }

// NormalizeExtension lower-cases an extension and ensures a leading dot.
func NormalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

func buildSet(exts []string) map[string]struct{} {
	set := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		normalized := NormalizeExtension(ext)
		if normalized == "" {
			continue
		}
		set[normalized] = struct{}{}
	}
	return set
}
