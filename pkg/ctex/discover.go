package ctex

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// Discover walks root recursively and returns every file whose extension
// case-insensitively matches the container extension, in traversal order.
// An empty slice means nothing to do, not an error.
func Discover(root string) ([]string, error) {
	var found []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ContainerExt) {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}
