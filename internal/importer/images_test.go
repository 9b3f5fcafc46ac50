package importer

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("cannot create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("cannot encode png: %v", err)
	}
}

func TestIsImageFile(t *testing.T) {
	cases := map[string]bool{
		"hero.png":    true,
		"HERO.PNG":    true,
		"photo.jpeg":  true,
		"scan.tiff":   true,
		"anim.webp":   true,
		"sprites.csv": false,
		"readme.txt":  false,
		"noext":       false,
	}
	for path, want := range cases {
		if got := IsImageFile(path); got != want {
			t.Errorf("IsImageFile(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestImportImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hero.png")
	writeTestPNG(t, path, 64, 48)

	sprite, err := ImportImage(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sprite.Name != "hero" {
		t.Errorf("expected name from file name, got %q", sprite.Name)
	}
	if sprite.Width != 64 || sprite.Height != 48 {
		t.Errorf("expected 64x48, got %dx%d", sprite.Width, sprite.Height)
	}
	if sprite.Source != path {
		t.Errorf("expected source path to be recorded, got %q", sprite.Source)
	}
	if !sprite.CanRotate {
		t.Error("imported sprites default to rotatable")
	}
}

func TestImportImage_NotAnImage(t *testing.T) {
	path := writeTempFile(t, "fake.png", "this is not a png")

	if _, err := ImportImage(path); err == nil {
		t.Error("expected a decode error")
	}
}

func TestImportImageDir(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, filepath.Join(dir, "b_coin.png"), 16, 16)
	writeTestPNG(t, filepath.Join(dir, "a_hero.png"), 64, 48)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o644); err != nil {
		t.Fatal(err)
	}

	result := ImportImageDir(dir)

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Sprites) != 2 {
		t.Fatalf("expected 2 sprites, got %d", len(result.Sprites))
	}
	// Sorted by file name for a stable import order.
	if result.Sprites[0].Name != "a_hero" || result.Sprites[1].Name != "b_coin" {
		t.Errorf("unexpected order: %q, %q", result.Sprites[0].Name, result.Sprites[1].Name)
	}
}

func TestImportImageDir_BadFileReportedOthersImported(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, filepath.Join(dir, "good.png"), 8, 8)
	if err := os.WriteFile(filepath.Join(dir, "bad.png"), []byte("junk"), 0o644); err != nil {
		t.Fatal(err)
	}

	result := ImportImageDir(dir)

	if len(result.Sprites) != 1 {
		t.Fatalf("expected 1 sprite, got %d", len(result.Sprites))
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error, got %v", result.Errors)
	}
}

func TestImportImageDir_Missing(t *testing.T) {
	result := ImportImageDir(filepath.Join(t.TempDir(), "nope"))

	if len(result.Errors) == 0 {
		t.Error("expected an error for a missing directory")
	}
}

func TestImportImageDir_Empty(t *testing.T) {
	result := ImportImageDir(t.TempDir())

	if len(result.Sprites) != 0 {
		t.Errorf("expected no sprites, got %d", len(result.Sprites))
	}
	if len(result.Warnings) == 0 {
		t.Error("expected a warning about no images")
	}
}
