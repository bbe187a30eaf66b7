package catalog

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	// Profile shots occasionally arrive as WebP, which imaging does not
	// register itself.
	_ "golang.org/x/image/webp"
)

// DefaultAvatarSize is the bounding box for designer thumbnails in pixels.
const DefaultAvatarSize = 300

// ErrAvatarNotFound is returned when the supplied image path does not
// reference an existing regular file.
var ErrAvatarNotFound = errors.New("avatar image is not a file")

// AvatarProcessor validates and downsizes designer profile images.
type AvatarProcessor struct {
	// MaxSize bounds both thumbnail dimensions.
	MaxSize int
	Logger  *zap.SugaredLogger
}

func NewAvatarProcessor(logger *zap.SugaredLogger) *AvatarProcessor {
	return &AvatarProcessor{MaxSize: DefaultAvatarSize, Logger: logger}
}

// Process opens the image at path and returns a thumbnail no larger than
// MaxSize in either dimension, preserving aspect ratio. Images already
// within the bound keep their original size; nothing is ever upscaled.
// Rectangular or under-sized sources only produce warnings.
func (p *AvatarProcessor) Process(path string) (image.Image, error) {
	stat, err := os.Stat(path)
	if err != nil || !stat.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", path, ErrAvatarNotFound)
	}

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", path, err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width != height {
		p.Logger.Warnf("image %s is rectangular (%dx%d) when it should be square", path, width, height)
	}
	if width < p.MaxSize || height < p.MaxSize {
		p.Logger.Warnf("image %s is smaller than %dx%dpx", path, p.MaxSize, p.MaxSize)
	}

	return imaging.Fit(img, p.MaxSize, p.MaxSize, imaging.Lanczos), nil
}
