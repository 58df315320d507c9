package dedupe

import (
	"io/fs"
	"path/filepath"

	"mediarch/internal/media"
	"mediarch/internal/services"
)

// CollectFiles walks root recursively and returns the files of the
// requested kind in traversal order. Only photos are supported; asking
// for videos is an explicit unsupported capability, not a silent no-op.
func CollectFiles(root string, kind media.Kind, classifier *media.Classifier) ([]string, error) {
	if kind != media.KindPhoto {
		return nil, services.Wrap(services.ErrUnsupported, "dedupe", "collect files",
			"deduplication is only implemented for photos", nil)
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if classifier.Classify(path) == media.KindPhoto {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "dedupe", "collect files", "unable to walk target directory", err)
	}
	return files, nil
}
