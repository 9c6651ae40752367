package assets

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
	return path
}

func TestLoadAllKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	tiles := writePNG(t, dir, "tiles.png", 32, 16)
	font := writePNG(t, dir, "font.png", 8, 4)

	images, err := LoadAll(context.Background(), tiles, font)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(images) != 2 {
		t.Fatalf("expected 2 images, got %d", len(images))
	}
	if b := images[0].Bounds(); b.Dx() != 32 || b.Dy() != 16 {
		t.Fatalf("expected tiles first, got bounds %v", b)
	}
	if b := images[1].Bounds(); b.Dx() != 8 || b.Dy() != 4 {
		t.Fatalf("expected font second, got bounds %v", b)
	}
}

func TestLoadAllFailsWhenOneMissing(t *testing.T) {
	dir := t.TempDir()
	tiles := writePNG(t, dir, "tiles.png", 16, 16)
	missing := filepath.Join(dir, "font.png")

	images, err := LoadAll(context.Background(), tiles, missing)
	if err == nil {
		t.Fatal("expected error")
	}
	if images != nil {
		t.Fatal("expected no images on failure")
	}
	if !strings.Contains(err.Error(), "font.png") {
		t.Fatalf("expected error naming the failed path, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestLoadAllRejectsGarbage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.png")
	if err := os.WriteFile(path, []byte("not a png"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := LoadAll(context.Background(), path); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestLoadAllNoPaths(t *testing.T) {
	if _, err := LoadAll(context.Background()); err != ErrNoAssets {
		t.Fatalf("expected ErrNoAssets, got %v", err)
	}
}

func TestLoadAllCancelled(t *testing.T) {
	dir := t.TempDir()
	tiles := writePNG(t, dir, "tiles.png", 16, 16)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := LoadAll(ctx, tiles); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
