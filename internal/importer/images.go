package importer

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/piwi3910/atlaspack/internal/model"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// imageExtensions lists the file extensions considered for directory import,
// matching the decoders registered above.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

// IsImageFile reports whether the path has a supported image extension.
func IsImageFile(path string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(path))]
}

// ImportImage reads the dimensions of a single image file and returns a
// sprite named after the file. Only the header is decoded, not the pixels.
func ImportImage(path string) (model.Sprite, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Sprite{}, fmt.Errorf("cannot open image: %w", err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return model.Sprite{}, fmt.Errorf("cannot decode %s: %w", filepath.Base(path), err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return model.Sprite{}, fmt.Errorf("%s has degenerate dimensions %dx%d", filepath.Base(path), cfg.Width, cfg.Height)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	sprite := model.NewSprite(name, cfg.Width, cfg.Height)
	sprite.Source = path
	return sprite, nil
}

// ImportImageDir scans a directory (non-recursively) for image files and
// returns one sprite per readable image, sorted by file name so repeated
// imports of the same directory produce the same sprite order. Unreadable
// files become errors in the result rather than aborting the import.
func ImportImageDir(dir string) ImportResult {
	result := ImportResult{}

	entries, err := os.ReadDir(dir)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read directory: %v", err))
		return result
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !IsImageFile(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)

	if len(paths) == 0 {
		result.Warnings = append(result.Warnings, "No image files found")
		return result
	}

	for _, path := range paths {
		sprite, err := ImportImage(path)
		if err != nil {
			result.Errors = append(result.Errors, err.Error())
			continue
		}
		result.Sprites = append(result.Sprites, sprite)
	}

	return result
}
