// Package util holds small filesystem helpers shared by the CLI and tests.
package util

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// supported lists the image extensions the decoder understands.
var supported = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".webp": true,
}

// ImageFile is one image on disk.
type ImageFile struct {
	// Path is the location of the image file.
	Path string
	// Data is the raw bytes of the image file.
	Data []byte
}

// IsImagePath reports whether the path has a supported image extension.
func IsImagePath(path string) bool {
	return supported[strings.ToLower(filepath.Ext(path))]
}

// CollectImagePaths expands a path into image file paths. A file path is
// returned as-is; a directory yields its supported images in name order,
// without recursing.
//
// Arguments:
//   - path: A file or directory path.
//
// Returns:
//   - []string: The image paths found.
//   - error: An error if the path cannot be read.
func CollectImagePaths(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !IsImagePath(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(path, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// LoadDirectoryImageFiles reads every supported image in a directory.
//
// Arguments:
//   - dir: Directory path containing image files.
//
// Returns:
//   - []ImageFile: The images found, in name order.
//   - error: An error if reading fails.
func LoadDirectoryImageFiles(dir string) ([]ImageFile, error) {
	paths, err := CollectImagePaths(dir)
	if err != nil {
		return nil, err
	}
	files := make([]ImageFile, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		files = append(files, ImageFile{Path: p, Data: data})
	}
	return files, nil
}
