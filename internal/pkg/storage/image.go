package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"

	"github.com/disintegration/imaging"
)

const defaultJPEGQuality = 80

// ImageProcessor resizes uploaded room and facility pictures.
type ImageProcessor struct {
	quality int
}

// NewImageProcessor creates a new ImageProcessor encoding JPEGs at the default quality.
func NewImageProcessor() *ImageProcessor {
	return &ImageProcessor{quality: defaultJPEGQuality}
}

// GenerateThumbnail fits the source image into a maxWidth x maxHeight box
// and returns it encoded as a JPEG.
func (p *ImageProcessor) GenerateThumbnail(content io.Reader, maxWidth, maxHeight int) (io.Reader, error) {
	img, _, err := image.Decode(content)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	thumbnail := imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, thumbnail, &jpeg.Options{Quality: p.quality}); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	return buf, nil
}

// DecodeConfig reads only the image header, used to reject non-images early.
func (p *ImageProcessor) DecodeConfig(content io.Reader) (image.Config, string, error) {
	cfg, format, err := image.DecodeConfig(content)
	if err != nil {
		return image.Config{}, "", fmt.Errorf("failed to read image header: %w", err)
	}
	return cfg, format, nil
}
