// Package render composes packed atlas pages into page bitmaps. Sprites with
// a source image on disk are blitted (rotated when the placement says so);
// sprites known only by their dimensions get a flat placeholder fill so a
// layout can be previewed before any artwork exists.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/piwi3910/atlaspack/internal/model"

	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// placeholderColors cycles per placement when no source image is available.
var placeholderColors = []color.RGBA{
	{R: 141, G: 211, B: 199, A: 255},
	{R: 255, G: 255, B: 179, A: 255},
	{R: 190, G: 186, B: 218, A: 255},
	{R: 251, G: 128, B: 114, A: 255},
	{R: 128, G: 177, B: 211, A: 255},
	{R: 253, G: 180, B: 98, A: 255},
	{R: 179, G: 222, B: 105, A: 255},
	{R: 252, G: 205, B: 229, A: 255},
}

// ComposePage renders one page onto a transparent RGBA canvas of the
// candidate page size. Padding stays empty: the sprite pixels occupy the
// placement minus the padding on each axis.
func ComposePage(page model.Page, settings model.PackSettings) (*image.RGBA, error) {
	canvas := image.NewRGBA(image.Rect(0, 0, page.PageWidth, page.PageHeight))

	for i, pl := range page.Placements {
		w := pl.Width - settings.PaddingX
		h := pl.Height - settings.PaddingY
		target := image.Rect(pl.X, pl.Y, pl.X+w, pl.Y+h)

		if pl.Sprite.Source == "" {
			fill := placeholderColors[i%len(placeholderColors)]
			draw.Draw(canvas, target, &image.Uniform{C: fill}, image.Point{}, draw.Src)
			continue
		}

		src, err := loadImage(pl.Sprite.Source)
		if err != nil {
			return nil, fmt.Errorf("sprite %q: %w", pl.Sprite.Name, err)
		}
		if pl.Rotated {
			src = rotate90(src)
		}
		if src.Bounds().Dx() != w || src.Bounds().Dy() != h {
			return nil, fmt.Errorf("sprite %q: source is %dx%d but the placement needs %dx%d",
				pl.Sprite.Name, src.Bounds().Dx(), src.Bounds().Dy(), w, h)
		}
		draw.Draw(canvas, target, src, src.Bounds().Min, draw.Src)
	}

	return canvas, nil
}

// WritePage composes a page and writes it as PNG.
func WritePage(path string, page model.Page, settings model.PackSettings) error {
	canvas, err := ComposePage(page, settings)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, canvas); err != nil {
		return fmt.Errorf("cannot encode %s: %w", path, err)
	}
	return nil
}

// WriteResult writes every page of a result as PNG files named
// <base>-<page>.png in dir, returning the written paths in page order.
func WriteResult(dir, base string, result model.PackResult, settings model.PackSettings) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create output directory: %w", err)
	}

	paths := make([]string, 0, len(result.Pages))
	for i, page := range result.Pages {
		path := filepath.Join(dir, fmt.Sprintf("%s-%d.png", base, i))
		if err := WritePage(path, page, settings); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open source image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("cannot decode source image: %w", err)
	}
	return img, nil
}

// rotate90 returns the image turned a quarter turn clockwise, so a WxH
// source becomes HxW.
func rotate90(src image.Image) image.Image {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dy(), b.Dx()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.Set(b.Dy()-1-y, x, src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}
