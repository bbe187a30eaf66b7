package catalog

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// writePNG creates a flat test image of the given size on disk.
func writePNG(t *testing.T, path string, width, height int) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test image: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
}

func TestProcessMissingFile(t *testing.T) {
	p := NewAvatarProcessor(zap.NewNop().Sugar())

	_, err := p.Process(filepath.Join(t.TempDir(), "nope.png"))
	if !errors.Is(err, ErrAvatarNotFound) {
		t.Errorf("expected ErrAvatarNotFound, got %v", err)
	}
}

func TestProcessDirectoryPath(t *testing.T) {
	p := NewAvatarProcessor(zap.NewNop().Sugar())

	_, err := p.Process(t.TempDir())
	if !errors.Is(err, ErrAvatarNotFound) {
		t.Errorf("expected ErrAvatarNotFound for a directory, got %v", err)
	}
}

func TestProcessThumbnailBounds(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		height     int
		wantWidth  int
		wantHeight int
	}{
		{"Large square downscaled", 600, 600, 300, 300},
		{"Wide image fit by width", 600, 300, 300, 150},
		{"Tall image fit by height", 300, 900, 100, 300},
		{"Small image never upscaled", 200, 200, 200, 200},
		{"Exactly at the bound", 300, 300, 300, 300},
	}

	p := NewAvatarProcessor(zap.NewNop().Sugar())
	dir := t.TempDir()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "src.png")
			writePNG(t, path, tt.width, tt.height)

			thumb, err := p.Process(path)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			bounds := thumb.Bounds()
			if bounds.Dx() != tt.wantWidth || bounds.Dy() != tt.wantHeight {
				t.Errorf("thumbnail is %dx%d, want %dx%d",
					bounds.Dx(), bounds.Dy(), tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestProcessWarnings(t *testing.T) {
	tests := []struct {
		name         string
		width        int
		height       int
		wantWarnings int
	}{
		{"Square and large enough", 400, 400, 0},
		{"Rectangular", 600, 400, 1},
		{"Under minimum resolution", 200, 200, 1},
		{"Rectangular and small", 200, 100, 2},
	}

	dir := t.TempDir()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.WarnLevel)
			p := NewAvatarProcessor(zap.New(core).Sugar())

			path := filepath.Join(dir, "src.png")
			writePNG(t, path, tt.width, tt.height)

			if _, err := p.Process(path); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if logs.Len() != tt.wantWarnings {
				t.Errorf("got %d warnings, want %d: %v", logs.Len(), tt.wantWarnings, logs.All())
			}
		})
	}
}
